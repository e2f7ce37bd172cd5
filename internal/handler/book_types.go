package handler

import (
	"bookcatalog/internal/model"
)

type CreateBookRequest struct {
	Title       string      `json:"title" binding:"required,min=3,max=70"`
	BookID      string      `json:"bookId" binding:"required,min=3,max=100"`
	ReleaseDate *model.Date `json:"releaseDate" swaggertype:"string" example:"2021-01-15"`
	Category    string      `json:"category" binding:"required,max=30,capitalized"`
	Price       float64     `json:"price" binding:"required,gte=1,lte=500"`
}

type EditBookRequest struct {
	ID          uint             `json:"id" binding:"required"`
	Title       string           `json:"title" binding:"required,min=3,max=70"`
	BookID      string           `json:"bookId" binding:"required,min=3,max=100"`
	ReleaseDate *model.Date      `json:"releaseDate" swaggertype:"string" example:"2021-01-15"`
	Category    string           `json:"category" binding:"required,max=30,capitalized"`
	Price       float64          `json:"price" binding:"required,gte=1,lte=500"`
	Status      model.BookStatus `json:"status" binding:"required,oneof=Available Reserved"`
	ReserveID   *int64           `json:"reserveId"`
}

type Book struct {
	ID          uint             `json:"id"`
	Title       string           `json:"title"`
	BookID      string           `json:"bookId"`
	ReleaseDate *model.Date      `json:"releaseDate,omitempty" swaggertype:"string" example:"2021-01-15"`
	Category    string           `json:"category"`
	Price       float64          `json:"price"`
	Status      model.BookStatus `json:"status"`
	ReserveID   *int64           `json:"reserveId,omitempty"`
}

type BookResponse struct {
	Data Book `json:"data"`
}

// CatalogResponse is the view model of the catalog page: the filtered book
// list, the distinct categories for the filter control, and the echoed
// filter values.
type CatalogResponse struct {
	Data         []Book   `json:"data"`
	Categories   []string `json:"categories"`
	BookCategory string   `json:"bookCategory,omitempty"`
	SearchString string   `json:"searchString,omitempty"`
}
