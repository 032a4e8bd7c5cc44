package model

import (
	"time"
)

type RentStatus string

const (
	StatusActive   RentStatus = "ACTIVE"
	StatusReturned RentStatus = "RETURNED"
	// StatusOverdue is reserved for a due-date feature and is never
	// produced by the current lifecycle.
	StatusOverdue RentStatus = "OVERDUE"
)

type Category string

const (
	CategoryFiction    Category = "FICTION"
	CategoryNonfiction Category = "NONFICTION"
	CategoryScience    Category = "SCIENCE"
	CategoryFantasy    Category = "FANTASY"
	CategoryHistory    Category = "HISTORY"
	CategoryBiography  Category = "BIOGRAPHY"
	CategoryOther      Category = "OTHER"
)

type Book struct {
	ID              int64    `json:"id" db:"id"`
	Title           string   `json:"title" db:"title"`
	Description     string   `json:"description" db:"description"`
	PublicationYear int      `json:"publicationYear" db:"publication_year"`
	Category        Category `json:"category" db:"category"`
	AuthorName      string   `json:"authorName" db:"author_name"`
	Available       bool     `json:"available" db:"available"`
}

type Rent struct {
	ID         int64      `json:"-" db:"id"`
	RentUid    string     `json:"rentUid" db:"rent_uid"`
	BookID     int64      `json:"bookId" db:"book_id"`
	Username   string     `json:"username" db:"username"`
	Status     RentStatus `json:"status" db:"status"`
	RentDate   time.Time  `json:"rentDate" db:"rent_date"`
	ReturnDate *time.Time `json:"returnDate" db:"return_date"`
}

type CreateRentRequest struct {
	BookID   int64  `json:"bookId" validate:"required,min=1"`
	Username string `json:"-" validate:"required"`
}

type BookRequest struct {
	Title           string   `json:"title" validate:"required,max=255"`
	Description     string   `json:"description" validate:"required,max=2000"`
	PublicationYear int      `json:"publicationYear" validate:"min=0"`
	Category        Category `json:"category" validate:"required,oneof=FICTION NONFICTION SCIENCE FANTASY HISTORY BIOGRAPHY OTHER"`
	AuthorName      string   `json:"authorName" validate:"required,max=255"`
	Available       bool     `json:"available"`
}

type RentEvent struct {
	Type     string    `json:"type"`
	RentUid  string    `json:"rentUid"`
	BookID   int64     `json:"bookId"`
	Username string    `json:"username"`
	At       time.Time `json:"at"`
}

const (
	EventRented   = "RENTED"
	EventReturned = "RETURNED"
)
