package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/bibliotheca/lending-service/internal/errs"
	"github.com/bibliotheca/lending-service/internal/model"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

func (r *repository) GetFeeAccount(ctx context.Context, userName string) (model.FeeAccount, error) {
	query, args, err := qb.Select("id", "username", "balance").
		From(feeTableName).
		Where(sq.Eq{"username": userName}).
		ToSql()
	if err != nil {
		return model.FeeAccount{}, err
	}
	var acc model.FeeAccount
	if err := sqlx.GetContext(ctx, r.ext, &acc, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.FeeAccount{}, errs.ErrNotFound
		}
		return model.FeeAccount{}, err
	}
	return acc, nil
}

func (r *repository) CreateFeeAccount(ctx context.Context, userName string) error {
	q := `
insert into fee_account (username, balance)
values ($1, 0)
on conflict (username) do nothing`
	_, err := r.ext.ExecContext(ctx, q, userName)
	return err
}

func (r *repository) AddFee(ctx context.Context, userName string, units int64) error {
	res, err := r.ext.ExecContext(ctx,
		`update fee_account set balance = balance + $2 where username = $1`, userName, units)
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

func (r *repository) SettleFee(ctx context.Context, userName string) error {
	res, err := r.ext.ExecContext(ctx,
		`update fee_account set balance = 0 where username = $1`, userName)
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
