package repository

import (
	"context"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	sq "github.com/Masterminds/squirrel"

	"github.com/bookify/rent-service/internal/errs"
	"github.com/bookify/rent-service/internal/model"
)

type BookRepository interface {
	CreateBook(ctx context.Context, req model.BookRequest) (model.Book, error)
	GetBook(ctx context.Context, id int64) (model.Book, error)
	ListBooks(ctx context.Context) ([]model.Book, error)
	UpdateBook(ctx context.Context, id int64, req model.BookRequest) (model.Book, error)
	DeleteBook(ctx context.Context, id int64) error
}

type RentRepository interface {
	CreateRent(ctx context.Context, bookID int64, username string) (model.Rent, error)
	GetRent(ctx context.Context, rentUid string) (model.Rent, error)
	ListRents(ctx context.Context) ([]model.Rent, error)
	ListRentsByUser(ctx context.Context, username string) ([]model.Rent, error)
	CloseRent(ctx context.Context, rentUid string, returnDate time.Time) (model.Rent, error)
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	bookTableName = `book`
	rentTableName = `rent`

	// bound on row-lock waits inside write transactions
	lockTimeout = `set local lock_timeout = '3s'`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func (r *repository) withTx(ctx context.Context, fn func(tx *sqlx.Tx) error) (err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin tx")
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				err = errors.Wrapf(err, "rollback tx: %v", rbErr)
			}
			return
		}
		if err = tx.Commit(); err != nil {
			err = errors.Wrap(err, "commit tx")
		}
	}()

	if _, err = tx.ExecContext(ctx, lockTimeout); err != nil {
		return errors.Wrap(err, "set lock_timeout")
	}
	err = fn(tx)
	return err
}

// classify maps postgres failure codes onto the service error taxonomy.
func classify(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		// the one-active-rent-per-book index lost a race
		return errs.ErrBookUnavailable
	case pgerrcode.LockNotAvailable, pgerrcode.SerializationFailure, pgerrcode.DeadlockDetected:
		return errs.ErrContention
	}
	return err
}
