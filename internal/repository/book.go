package repository

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	sq "github.com/Masterminds/squirrel"

	"github.com/bookify/rent-service/internal/errs"
	"github.com/bookify/rent-service/internal/model"
)

func (r *repository) CreateBook(ctx context.Context, req model.BookRequest) (model.Book, error) {
	q, args, err := qb.Insert(bookTableName).
		Columns("title", "description", "publication_year", "category", "author_name", "available").
		Values(req.Title, req.Description, req.PublicationYear, req.Category, req.AuthorName, req.Available).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Book{}, err
	}
	var book model.Book
	if err := r.db.GetContext(ctx, &book, q, args...); err != nil {
		r.log.Error("CreateBook", zap.String("q", q), zap.Any("args", args))
		return model.Book{}, err
	}
	return book, nil
}

func (r *repository) GetBook(ctx context.Context, id int64) (model.Book, error) {
	q, args, err := qb.Select("id", "title", "description", "publication_year", "category", "author_name", "available").
		From(bookTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}
	var book model.Book
	if err := r.db.GetContext(ctx, &book, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Book{}, errs.ErrNotFound
		}
		return model.Book{}, err
	}
	return book, nil
}

func (r *repository) ListBooks(ctx context.Context) ([]model.Book, error) {
	q, args, err := qb.Select("id", "title", "description", "publication_year", "category", "author_name", "available").
		From(bookTableName).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}
	var books []model.Book
	if err := r.db.SelectContext(ctx, &books, q, args...); err != nil {
		return nil, err
	}
	return books, nil
}

func (r *repository) UpdateBook(ctx context.Context, id int64, req model.BookRequest) (model.Book, error) {
	q, args, err := qb.Update(bookTableName).
		Set("title", req.Title).
		Set("description", req.Description).
		Set("publication_year", req.PublicationYear).
		Set("category", req.Category).
		Set("author_name", req.AuthorName).
		Set("available", req.Available).
		Where(sq.Eq{"id": id}).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Book{}, err
	}
	var book model.Book
	if err := r.db.GetContext(ctx, &book, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Book{}, errs.ErrNotFound
		}
		return model.Book{}, err
	}
	return book, nil
}

// DeleteBook removes a book together with its rent history. A book with an
// ACTIVE rent cannot be deleted.
func (r *repository) DeleteBook(ctx context.Context, id int64) error {
	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		var hasActive bool
		q := `select exists (select 1 from rent where book_id = $1 and status = 'ACTIVE')`
		if err := tx.QueryRowContext(ctx, q, id).Scan(&hasActive); err != nil {
			return err
		}
		if hasActive {
			return errs.ErrHasActiveRent
		}
		if _, err := tx.ExecContext(ctx, `delete from rent where book_id = $1`, id); err != nil {
			return err
		}
		res, err := tx.ExecContext(ctx, `delete from book where id = $1`, id)
		if err != nil {
			return err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return errs.ErrNotFound
		}
		return nil
	})
	return classify(err)
}
