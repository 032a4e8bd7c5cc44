package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bookify/rent-service/internal/errs"
	"github.com/bookify/rent-service/internal/model"
)

func TestService_DeleteBook(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("rejected while a rent is active", func(t *testing.T) {
		t.Parallel()
		repo := newMemRepo(model.Book{ID: 1, Available: true})
		svc, _ := newService(repo)

		_, err := svc.RentBook(ctx, 1, "alice")
		require.NoError(t, err)

		err = svc.DeleteBook(ctx, 1)
		require.ErrorIs(t, err, errs.ErrHasActiveRent)

		_, err = svc.GetBook(ctx, 1)
		require.NoError(t, err)
	})

	t.Run("allowed after return, removes rent history", func(t *testing.T) {
		t.Parallel()
		repo := newMemRepo(model.Book{ID: 1, Available: true})
		svc, _ := newService(repo)

		rent, err := svc.RentBook(ctx, 1, "alice")
		require.NoError(t, err)
		_, err = svc.ReturnBook(ctx, rent.RentUid, "alice")
		require.NoError(t, err)

		require.NoError(t, svc.DeleteBook(ctx, 1))

		_, err = svc.GetBook(ctx, 1)
		require.ErrorIs(t, err, errs.ErrNotFound)
		rents, err := svc.GetAllRents(ctx)
		require.NoError(t, err)
		require.Empty(t, rents)
	})

	t.Run("unknown book", func(t *testing.T) {
		t.Parallel()
		repo := newMemRepo()
		svc, _ := newService(repo)
		require.ErrorIs(t, svc.DeleteBook(ctx, 9), errs.ErrNotFound)
	})
}

func TestService_Books(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := newMemRepo()
	svc, _ := newService(repo)

	created, err := svc.CreateBook(ctx, model.BookRequest{
		Title:           "Clean Architecture",
		Description:     "A book about clean software architecture principles",
		PublicationYear: 2017,
		Category:        model.CategoryNonfiction,
		AuthorName:      "Robert C. Martin",
		Available:       true,
	})
	require.NoError(t, err)
	require.True(t, created.Available)

	updated, err := svc.UpdateBook(ctx, created.ID, model.BookRequest{
		Title:           "Clean Architecture",
		Description:     "Second edition",
		PublicationYear: 2018,
		Category:        model.CategoryNonfiction,
		AuthorName:      "Robert C. Martin",
		Available:       true,
	})
	require.NoError(t, err)
	require.Equal(t, "Second edition", updated.Description)

	books, err := svc.ListBooks(ctx)
	require.NoError(t, err)
	require.Len(t, books, 1)
}
