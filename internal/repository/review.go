package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/bibliotheca/lending-service/internal/errs"
	"github.com/bibliotheca/lending-service/internal/model"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func (r *repository) HasReview(ctx context.Context, userName string, bookID int) (bool, error) {
	q := `
	select exists (
	    select 1 from review
	    where username = $1 and book_id = $2
	)
`
	var exists bool
	if err := r.ext.QueryRowxContext(ctx, q, userName, bookID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *repository) ListReviews(ctx context.Context, bookID int) ([]model.Review, error) {
	query, args, err := qb.Select("id", "username", "book_id", "rating", "description", "review_date").
		From(reviewTableName).
		Where(sq.Eq{"book_id": bookID}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}
	var reviews []model.Review
	if err := sqlx.SelectContext(ctx, r.ext, &reviews, query, args...); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *repository) CreateReview(ctx context.Context, review model.Review) error {
	query, args, err := qb.Insert(reviewTableName).
		Columns("username", "book_id", "rating", "description", "review_date").
		Values(review.UserName, review.BookID, review.Rating, review.Description, review.ReviewDate).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := r.ext.ExecContext(ctx, query, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return errs.ErrDuplicateReview
		}
		r.log.Error("CreateReview", zap.String("q", query), zap.Any("args", args))
		return err
	}
	return nil
}

func (r *repository) DeleteReviewsByBook(ctx context.Context, bookID int) error {
	_, err := r.ext.ExecContext(ctx, `delete from review where book_id = $1`, bookID)
	return err
}
