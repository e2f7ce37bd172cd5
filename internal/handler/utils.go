package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"bookcatalog/internal/model"
	"bookcatalog/internal/validation"
)

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

func writeError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, validation.ErrorResponse{
		Code:    code,
		Message: message,
	})
}

func toBookView(b model.Book) Book {
	var release *model.Date
	if b.ReleaseDate != nil && !b.ReleaseDate.IsZero() {
		release = &model.Date{Time: *b.ReleaseDate}
	}

	return Book{
		ID:          b.ID,
		Title:       b.Title,
		BookID:      b.BookID,
		ReleaseDate: release,
		Category:    b.Category,
		Price:       b.Price,
		Status:      b.Status,
		ReserveID:   b.ReserveID,
	}
}

func toBookResponse(b model.Book) BookResponse {
	return BookResponse{Data: toBookView(b)}
}

func toCatalogResponse(books []model.Book, categories []string, category, search string) CatalogResponse {
	views := make([]Book, 0, len(books))
	for _, b := range books {
		views = append(views, toBookView(b))
	}

	return CatalogResponse{
		Data:         views,
		Categories:   categories,
		BookCategory: category,
		SearchString: search,
	}
}
