package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/bibliotheca/lending-service/internal/model"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

func (r *repository) CreateHistory(ctx context.Context, rec model.HistoryRecord) error {
	query, args, err := qb.Insert(historyTableName).
		Columns("username", "title", "author", "description", "img", "checkout_date", "returned_date").
		Values(rec.UserName, rec.Title, rec.Author, rec.Description, rec.Img, rec.CheckoutDate, rec.ReturnedDate).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := r.ext.ExecContext(ctx, query, args...); err != nil {
		r.log.Error("CreateHistory", zap.String("q", query), zap.Any("args", args))
		return err
	}
	return nil
}

func (r *repository) ListHistory(ctx context.Context, userName string) ([]model.HistoryRecord, error) {
	query, args, err := qb.Select("id", "username", "title", "author", "description", "img", "checkout_date", "returned_date").
		From(historyTableName).
		Where(sq.Eq{"username": userName}).
		OrderBy("id desc").
		ToSql()
	if err != nil {
		return nil, err
	}
	var recs []model.HistoryRecord
	if err := sqlx.SelectContext(ctx, r.ext, &recs, query, args...); err != nil {
		return nil, err
	}
	return recs, nil
}
