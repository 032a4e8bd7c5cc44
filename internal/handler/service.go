package handler

import (
	"context"

	"github.com/bookify/rent-service/internal/model"
	"github.com/bookify/rent-service/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type RentService interface {
	RentBook(ctx context.Context, bookID int64, username string) (model.Rent, error)
	ReturnBook(ctx context.Context, rentUid, username string) (model.Rent, error)
	GetAllRents(ctx context.Context) ([]model.Rent, error)
	GetRentsByUser(ctx context.Context, username string) ([]model.Rent, error)

	CreateBook(ctx context.Context, req model.BookRequest) (model.Book, error)
	GetBook(ctx context.Context, id int64) (model.Book, error)
	ListBooks(ctx context.Context) ([]model.Book, error)
	UpdateBook(ctx context.Context, id int64, req model.BookRequest) (model.Book, error)
	DeleteBook(ctx context.Context, id int64) error
}

var _ RentService = (*service.Service)(nil)
