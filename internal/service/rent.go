package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/bookify/rent-service/internal/errs"
	"github.com/bookify/rent-service/internal/model"
)

// RentBook creates an ACTIVE rent for the caller. The availability check is
// advisory: the repository re-checks it atomically, so two concurrent rents
// of one book end with exactly one rent and one errs.ErrBookUnavailable.
func (s *Service) RentBook(ctx context.Context, bookID int64, username string) (model.Rent, error) {
	book, err := s.books.GetBook(ctx, bookID)
	if err != nil {
		return model.Rent{}, err
	}
	if !book.Available {
		return model.Rent{}, errs.ErrBookUnavailable
	}

	rent, err := s.rents.CreateRent(ctx, bookID, username)
	if err != nil {
		return model.Rent{}, err
	}

	s.emit(model.EventRented, rent)
	return rent, nil
}

// ReturnBook closes the caller's rent. Only the owner may return it; the
// ownership check is intended to become bypassable by ADMIN once role-based
// overrides are wired up.
func (s *Service) ReturnBook(ctx context.Context, rentUid, username string) (model.Rent, error) {
	rent, err := s.rents.GetRent(ctx, rentUid)
	if err != nil {
		return model.Rent{}, err
	}
	if rent.Username != username {
		return model.Rent{}, errs.ErrForbidden
	}
	if rent.Status == model.StatusReturned {
		return model.Rent{}, errs.ErrAlreadyReturned
	}

	closed, err := s.rents.CloseRent(ctx, rentUid, time.Now().UTC())
	if err != nil {
		return model.Rent{}, err
	}

	s.emit(model.EventReturned, closed)
	return closed, nil
}

func (s *Service) GetAllRents(ctx context.Context) ([]model.Rent, error) {
	return s.rents.ListRents(ctx)
}

func (s *Service) GetRentsByUser(ctx context.Context, username string) ([]model.Rent, error) {
	return s.rents.ListRentsByUser(ctx, username)
}

func (s *Service) emit(eventType string, rent model.Rent) {
	if s.events == nil {
		return
	}
	err := s.events.Log(model.RentEvent{
		Type:     eventType,
		RentUid:  rent.RentUid,
		BookID:   rent.BookID,
		Username: rent.Username,
		At:       time.Now().UTC(),
	})
	if err != nil {
		s.log.Warn("rent event dropped",
			zap.String("type", eventType),
			zap.String("rentUid", rent.RentUid),
			zap.Error(err))
	}
}
