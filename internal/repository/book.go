package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/bibliotheca/lending-service/internal/errs"
	"github.com/bibliotheca/lending-service/internal/model"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var bookColumns = []string{"id", "title", "author", "description", "category", "img", "copies", "copies_available"}

func (r *repository) GetBook(ctx context.Context, bookID int) (model.Book, error) {
	return r.getBook(ctx, bookID, false)
}

// GetBookForUpdate locks the book row for the rest of the transaction, so
// concurrent checkouts of the same book serialize before reading the
// available count.
func (r *repository) GetBookForUpdate(ctx context.Context, bookID int) (model.Book, error) {
	return r.getBook(ctx, bookID, true)
}

func (r *repository) getBook(ctx context.Context, bookID int, forUpdate bool) (model.Book, error) {
	q := qb.Select(bookColumns...).
		From(bookTableName).
		Where(sq.Eq{"id": bookID})
	if forUpdate {
		q = q.Suffix("for update")
	}
	query, args, err := q.ToSql()
	if err != nil {
		return model.Book{}, err
	}
	var book model.Book
	if err := sqlx.GetContext(ctx, r.ext, &book, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Book{}, errs.ErrNotFound
		}
		return model.Book{}, err
	}
	return book, nil
}

func (r *repository) GetBooksByIDs(ctx context.Context, ids []int) ([]model.Book, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query, args, err := qb.Select(bookColumns...).
		From(bookTableName).
		Where(sq.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return nil, err
	}
	var books []model.Book
	if err := sqlx.SelectContext(ctx, r.ext, &books, query, args...); err != nil {
		return nil, err
	}
	return books, nil
}

func (r *repository) ListBooks(ctx context.Context, filter model.ListBooksFilter) ([]model.Book, error) {
	q := qb.Select(bookColumns...).
		From(bookTableName).
		OrderBy("id")
	if filter.Title != "" {
		q = q.Where(sq.ILike{"title": "%" + filter.Title + "%"})
	}
	if filter.Category != "" {
		q = q.Where(sq.Eq{"category": filter.Category})
	}
	if filter.Page != 0 && filter.Size != 0 {
		q = q.Limit(uint64(filter.Size)).Offset(uint64((filter.Page - 1) * filter.Size))
	}
	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	r.log.Debug("ListBooks", zap.String("query", query), zap.Any("args", args))

	var books []model.Book
	if err := sqlx.SelectContext(ctx, r.ext, &books, query, args...); err != nil {
		return nil, err
	}
	return books, nil
}

func (r *repository) CreateBook(ctx context.Context, book model.Book) (model.Book, error) {
	query, args, err := qb.Insert(bookTableName).
		Columns("title", "author", "description", "category", "img", "copies", "copies_available").
		Values(book.Title, book.Author, book.Description, book.Category, book.Img, book.Copies, book.CopiesAvailable).
		Suffix("returning id, title, author, description, category, img, copies, copies_available").
		ToSql()
	if err != nil {
		return model.Book{}, err
	}
	var created model.Book
	if err := sqlx.GetContext(ctx, r.ext, &created, query, args...); err != nil {
		r.log.Error("CreateBook", zap.String("q", query), zap.Any("args", args))
		return model.Book{}, err
	}
	return created, nil
}

func (r *repository) UpdateBookCopies(ctx context.Context, bookID, copiesDelta, availableDelta int) error {
	q := `
update book
    set copies = copies + $2,
        copies_available = copies_available + $3
where id = $1`
	res, err := r.ext.ExecContext(ctx, q, bookID, copiesDelta, availableDelta)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *repository) DeleteBook(ctx context.Context, bookID int) error {
	query, args, err := qb.Delete(bookTableName).
		Where(sq.Eq{"id": bookID}).
		ToSql()
	if err != nil {
		return err
	}
	res, err := r.ext.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return errs.ErrNotFound
	}
	return nil
}
