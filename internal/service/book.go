package service

import (
	"context"

	"github.com/bookify/rent-service/internal/model"
)

func (s *Service) CreateBook(ctx context.Context, req model.BookRequest) (model.Book, error) {
	return s.books.CreateBook(ctx, req)
}

func (s *Service) GetBook(ctx context.Context, id int64) (model.Book, error) {
	return s.books.GetBook(ctx, id)
}

func (s *Service) ListBooks(ctx context.Context) ([]model.Book, error) {
	return s.books.ListBooks(ctx)
}

func (s *Service) UpdateBook(ctx context.Context, id int64, req model.BookRequest) (model.Book, error) {
	return s.books.UpdateBook(ctx, id, req)
}

func (s *Service) DeleteBook(ctx context.Context, id int64) error {
	return s.books.DeleteBook(ctx, id)
}
