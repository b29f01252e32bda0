package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/bibliotheca/lending-service/internal/errs"
	"github.com/bibliotheca/lending-service/internal/model"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var loanColumns = []string{"id", "username", "book_id", "checkout_date", "due_date"}

func (r *repository) GetLoan(ctx context.Context, userName string, bookID int) (model.Loan, error) {
	query, args, err := qb.Select(loanColumns...).
		From(loanTableName).
		Where(sq.Eq{"username": userName}).
		Where(sq.Eq{"book_id": bookID}).
		ToSql()
	if err != nil {
		return model.Loan{}, err
	}
	var loan model.Loan
	if err := sqlx.GetContext(ctx, r.ext, &loan, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Loan{}, errs.ErrNotFound
		}
		return model.Loan{}, err
	}
	return loan, nil
}

func (r *repository) ListLoans(ctx context.Context, userName string) ([]model.Loan, error) {
	query, args, err := qb.Select(loanColumns...).
		From(loanTableName).
		Where(sq.Eq{"username": userName}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}
	var loans []model.Loan
	if err := sqlx.SelectContext(ctx, r.ext, &loans, query, args...); err != nil {
		return nil, err
	}
	return loans, nil
}

func (r *repository) CountLoans(ctx context.Context, userName string) (int, error) {
	q := `
	select count(*) from loan
	where username = $1
`
	var count int
	if err := r.ext.QueryRowxContext(ctx, q, userName).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *repository) CreateLoan(ctx context.Context, loan model.Loan) error {
	query, args, err := qb.Insert(loanTableName).
		Columns("username", "book_id", "checkout_date", "due_date").
		Values(loan.UserName, loan.BookID, loan.CheckoutDate, loan.DueDate).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := r.ext.ExecContext(ctx, query, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return errs.ErrAlreadyCheckedOut
		}
		r.log.Error("CreateLoan", zap.String("q", query), zap.Any("args", args))
		return err
	}
	return nil
}

func (r *repository) UpdateLoanDueDate(ctx context.Context, loanID int, dueDate model.Date) error {
	query, args, err := qb.Update(loanTableName).
		Set("due_date", dueDate).
		Where(sq.Eq{"id": loanID}).
		ToSql()
	if err != nil {
		return err
	}
	_, err = r.ext.ExecContext(ctx, query, args...)
	return err
}

func (r *repository) DeleteLoan(ctx context.Context, loanID int) error {
	res, err := r.ext.ExecContext(ctx, `delete from loan where id = $1`, loanID)
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

func (r *repository) DeleteLoansByBook(ctx context.Context, bookID int) error {
	_, err := r.ext.ExecContext(ctx, `delete from loan where book_id = $1`, bookID)
	return err
}
