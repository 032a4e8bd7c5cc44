package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	sq "github.com/Masterminds/squirrel"

	"github.com/bookify/rent-service/internal/errs"
	"github.com/bookify/rent-service/internal/model"
)

// CreateRent flips the availability flag and writes the rent in one
// transaction. The conditional update is the arbiter: of any number of
// concurrent rents for the same book exactly one sees available = true.
func (r *repository) CreateRent(ctx context.Context, bookID int64, username string) (model.Rent, error) {
	var rent model.Rent
	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx,
			`update book set available = false where id = $1 and available = true`, bookID)
		if err != nil {
			return err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return errs.ErrBookUnavailable
		}

		q, args, err := qb.Insert(rentTableName).
			Columns("rent_uid", "book_id", "username", "status", "rent_date").
			Values(uuid.New(), bookID, username, model.StatusActive, time.Now().UTC()).
			Suffix("returning *").
			ToSql()
		if err != nil {
			return err
		}
		if err := tx.GetContext(ctx, &rent, q, args...); err != nil {
			r.log.Error("CreateRent", zap.String("q", q), zap.Any("args", args))
			return err
		}
		return nil
	})
	if err != nil {
		return model.Rent{}, classify(err)
	}
	return rent, nil
}

func (r *repository) GetRent(ctx context.Context, rentUid string) (model.Rent, error) {
	q, args, err := qb.Select("id", "rent_uid", "book_id", "username", "status", "rent_date", "return_date").
		From(rentTableName).
		Where(sq.Eq{"rent_uid": rentUid}).
		ToSql()
	if err != nil {
		return model.Rent{}, err
	}
	var rent model.Rent
	if err := r.db.GetContext(ctx, &rent, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Rent{}, errs.ErrNotFound
		}
		return model.Rent{}, err
	}
	return rent, nil
}

func (r *repository) ListRents(ctx context.Context) ([]model.Rent, error) {
	return r.listRents(ctx, qb.Select("id", "rent_uid", "book_id", "username", "status", "rent_date", "return_date").
		From(rentTableName).
		OrderBy("id"))
}

func (r *repository) ListRentsByUser(ctx context.Context, username string) ([]model.Rent, error) {
	return r.listRents(ctx, qb.Select("id", "rent_uid", "book_id", "username", "status", "rent_date", "return_date").
		From(rentTableName).
		Where(sq.Eq{"username": username}).
		OrderBy("id"))
}

func (r *repository) listRents(ctx context.Context, builder sq.SelectBuilder) ([]model.Rent, error) {
	q, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}
	var rents []model.Rent
	if err := r.db.SelectContext(ctx, &rents, q, args...); err != nil {
		return nil, err
	}
	return rents, nil
}

// CloseRent flips the rent to RETURNED and restores book availability in one
// transaction. The status guard makes the flip happen at most once: a
// concurrent return that lost the race sees zero rows.
func (r *repository) CloseRent(ctx context.Context, rentUid string, returnDate time.Time) (model.Rent, error) {
	var rent model.Rent
	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		q := `update rent set status = $2, return_date = $3
	where rent_uid = $1 and status = $4
	returning id, rent_uid, book_id, username, status, rent_date, return_date`
		if err := tx.GetContext(ctx, &rent, q, rentUid, model.StatusReturned, returnDate, model.StatusActive); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return errs.ErrAlreadyReturned
			}
			return err
		}
		_, err := tx.ExecContext(ctx, `update book set available = true where id = $1`, rent.BookID)
		return err
	})
	if err != nil {
		return model.Rent{}, classify(err)
	}
	return rent, nil
}
