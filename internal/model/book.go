package model

import (
	"time"

	"gorm.io/gorm"
)

// BookStatus is the closed set of reservation states a book can be in.
type BookStatus string

const (
	StatusAvailable BookStatus = "Available"
	StatusReserved  BookStatus = "Reserved"
)

type Book struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"size:70;not null"`
	BookID      string `gorm:"size:100;not null;uniqueIndex"`
	ReleaseDate *time.Time
	Category    string     `gorm:"size:30;not null;index"`
	Price       float64    `gorm:"type:decimal(10,2);not null"`
	Status      BookStatus `gorm:"size:10;not null;default:Available"`
	// ReserveID is set by the first successful reservation and never
	// cleared afterwards; there is no un-reserve operation.
	ReserveID *int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (b *Book) BeforeCreate(tx *gorm.DB) (err error) {
	if b.Status == "" {
		b.Status = StatusAvailable
	}
	return
}
