package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/bibliotheca/lending-service/internal/errs"
	"github.com/bibliotheca/lending-service/internal/model"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

func (r *repository) CreateMessage(ctx context.Context, msg model.Message) (model.Message, error) {
	query, args, err := qb.Insert(messageTableName).
		Columns("username", "title", "question").
		Values(msg.UserName, msg.Title, msg.Question).
		Suffix("returning id, username, title, question, admin_name, response, closed").
		ToSql()
	if err != nil {
		return model.Message{}, err
	}
	var created model.Message
	if err := sqlx.GetContext(ctx, r.ext, &created, query, args...); err != nil {
		r.log.Error("CreateMessage", zap.String("q", query), zap.Any("args", args))
		return model.Message{}, err
	}
	return created, nil
}

func (r *repository) ListMessages(ctx context.Context, userName string) ([]model.Message, error) {
	query, args, err := qb.Select("id", "username", "title", "question", "admin_name", "response", "closed").
		From(messageTableName).
		Where(sq.Eq{"username": userName}).
		OrderBy("id desc").
		ToSql()
	if err != nil {
		return nil, err
	}
	var msgs []model.Message
	if err := sqlx.SelectContext(ctx, r.ext, &msgs, query, args...); err != nil {
		return nil, err
	}
	return msgs, nil
}

func (r *repository) AnswerMessage(ctx context.Context, id int, adminName, response string) error {
	res, err := r.ext.ExecContext(ctx, `
update message
    set admin_name = $2,
        response = $3,
        closed = true
where id = $1`, id, adminName, response)
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
