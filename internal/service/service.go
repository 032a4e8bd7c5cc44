package service

import (
	"go.uber.org/zap"

	"github.com/bookify/rent-service/internal/model"
	"github.com/bookify/rent-service/internal/repository"
)

// EventLog records rent activity for downstream consumers. Failures are
// reported to the caller of Log, never to the user-facing operation.
type EventLog interface {
	Log(event model.RentEvent) error
}

type Service struct {
	log    *zap.Logger
	books  repository.BookRepository
	rents  repository.RentRepository
	events EventLog
}

func NewService(books repository.BookRepository, rents repository.RentRepository, events EventLog, log *zap.Logger) *Service {
	return &Service{
		log:    log,
		books:  books,
		rents:  rents,
		events: events,
	}
}
