package handler

import (
	"encoding/binary"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"bookcatalog/internal/model"
	"bookcatalog/internal/repository"
	"bookcatalog/internal/validation"
)

type BookHandler struct {
	repo repository.BookRepository
}

func NewBookHandler(repo repository.BookRepository) *BookHandler {
	return &BookHandler{repo: repo}
}

func (h *BookHandler) RegisterRoutes(r *gin.RouterGroup) {
	books := r.Group("/books")
	{
		books.GET("", h.Catalog)
		books.POST("", h.Create)
		books.GET("/:id", h.Detail)
		books.GET("/:id/edit", h.EditForm)
		books.POST("/:id/edit", h.Edit)
		books.GET("/:id/delete", h.DeleteForm)
		books.POST("/:id/delete", h.Delete)
		books.GET("/:id/reserve", h.ReserveForm)
		books.POST("/:id/reserve", h.Reserve)
		books.GET("/:id/confirm", h.Confirm)
	}
}

// Catalog godoc
// @Summary      List and search books
// @Description  List books filtered by title substring and/or exact category, plus the distinct categories for the filter control
// @Tags         books
// @Produce      json
// @Param        search    query     string  false  "Substring match on title"
// @Param        category  query     string  false  "Exact category filter"
// @Success      200  {object}  CatalogResponse
// @Failure      500  {object}  validation.ErrorResponse  "Store unavailable"
// @Router       /books [get]
func (h *BookHandler) Catalog(c *gin.Context) {
	ctx := c.Request.Context()

	category := c.Query("category")
	search := c.Query("search")

	categories, err := h.repo.Categories(ctx)
	if err != nil {
		h.writeStoreError(c, err, "BOOK_LIST_FAILED", "failed to fetch categories")
		return
	}

	books, err := h.repo.List(ctx, repository.CatalogFilter{
		Category: category,
		Search:   search,
	})
	if err != nil {
		h.writeStoreError(c, err, "BOOK_LIST_FAILED", "failed to fetch books")
		return
	}

	c.JSON(http.StatusOK, toCatalogResponse(books, categories, category, search))
}

// NewForm godoc
// @Summary      Empty create form
// @Description  Returns the empty form model for creating a book
// @Tags         books
// @Produce      json
// @Success      200  {object}  BookResponse
// @Router       /books/new [get]
func (h *BookHandler) NewForm(c *gin.Context) {
	c.JSON(http.StatusOK, BookResponse{
		Data: Book{Status: model.StatusAvailable},
	})
}

// Create godoc
// @Summary      Create a book
// @Description  Validates the submitted fields and persists a new book; status defaults to Available
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        payload  body  CreateBookRequest  true  "Book to create"
// @Success      303  {string}  string  "Redirect to /books"
// @Failure      400  {object}  validation.ErrorResponse  "Validation error with echoed input"
// @Failure      500  {object}  validation.ErrorResponse
// @Router       /books [post]
func (h *BookHandler) Create(c *gin.Context) {
	var req CreateBookRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	book := model.Book{
		Title:    req.Title,
		BookID:   req.BookID,
		Category: req.Category,
		Price:    req.Price,
		Status:   model.StatusAvailable,
	}
	if req.ReleaseDate != nil && !req.ReleaseDate.IsZero() {
		t := req.ReleaseDate.Time
		book.ReleaseDate = &t
	}

	if err := h.repo.Create(c.Request.Context(), &book); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			c.AbortWithStatusJSON(http.StatusBadRequest, validation.ErrorResponse{
				Message: "validation failed",
				Errors: []validation.FieldError{
					{Field: "bookId", Rule: "unique", Message: "bookId is already in the catalog"},
				},
				Data: req,
			})
			return
		}

		h.writeStoreError(c, err, "BOOK_CREATE_FAILED", "failed to create book")
		return
	}

	c.Redirect(http.StatusSeeOther, "/books")
}

// Detail godoc
// @Summary      Get a book by ID
// @Tags         books
// @Produce      json
// @Param        id   path      int  true  "Book ID"
// @Success      200  {object}  BookResponse
// @Failure      404  {object}  validation.ErrorResponse
// @Failure      500  {object}  validation.ErrorResponse
// @Router       /books/{id} [get]
func (h *BookHandler) Detail(c *gin.Context) {
	// gin's router cannot hold a static /books/new next to /books/:id,
	// so the create form is dispatched from here.
	if c.Param("id") == "new" {
		h.NewForm(c)
		return
	}

	h.showBook(c)
}

// EditForm godoc
// @Summary      Populated edit form
// @Tags         books
// @Produce      json
// @Param        id   path      int  true  "Book ID"
// @Success      200  {object}  BookResponse
// @Failure      404  {object}  validation.ErrorResponse
// @Router       /books/{id}/edit [get]
func (h *BookHandler) EditForm(c *gin.Context) {
	h.showBook(c)
}

// Edit godoc
// @Summary      Edit a book
// @Description  The path id must match the body id; a mismatch is treated as not found regardless of body validity
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        id       path  int              true  "Book ID"
// @Param        payload  body  EditBookRequest  true  "Updated record"
// @Success      303  {string}  string  "Redirect to /books"
// @Failure      400  {object}  validation.ErrorResponse  "Validation error with echoed input"
// @Failure      404  {object}  validation.ErrorResponse  "ID mismatch or record gone"
// @Failure      500  {object}  validation.ErrorResponse  "Unrecovered write conflict"
// @Router       /books/{id}/edit [post]
func (h *BookHandler) Edit(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		writeError(c, http.StatusNotFound, "BOOK_NOT_FOUND", "book not found")
		return
	}

	// Bind before validating the verdict: even an invalid body carries the
	// id we must compare against the path first.
	var req EditBookRequest
	bindErr := c.ShouldBindJSON(&req)

	if req.ID != id {
		writeError(c, http.StatusNotFound, "BOOK_NOT_FOUND", "book not found")
		return
	}

	if bindErr != nil {
		if verrs, ok := bindErr.(validator.ValidationErrors); ok {
			resp := validation.FormatValidationErrors(verrs)
			resp.Data = req
			c.AbortWithStatusJSON(http.StatusBadRequest, resp)
			return
		}
		c.AbortWithStatusJSON(http.StatusBadRequest, validation.ErrorResponse{
			Message: "invalid request body",
			Errors: []validation.FieldError{
				{Field: "", Rule: "syntax", Message: bindErr.Error()},
			},
		})
		return
	}

	book := model.Book{
		ID:        req.ID,
		Title:     req.Title,
		BookID:    req.BookID,
		Category:  req.Category,
		Price:     req.Price,
		Status:    req.Status,
		ReserveID: req.ReserveID,
	}
	if req.ReleaseDate != nil && !req.ReleaseDate.IsZero() {
		t := req.ReleaseDate.Time
		book.ReleaseDate = &t
	}

	ctx := c.Request.Context()

	if err := h.repo.Update(ctx, &book); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			exists, existsErr := h.repo.Exists(ctx, id)
			if existsErr == nil && !exists {
				writeError(c, http.StatusNotFound, "BOOK_NOT_FOUND", "book not found")
				return
			}
			writeError(c, http.StatusInternalServerError,
				"BOOK_UPDATE_CONFLICT", "conflicting update on book")
			return
		}

		h.writeStoreError(c, err, "BOOK_UPDATE_FAILED", "failed to update book")
		return
	}

	c.Redirect(http.StatusSeeOther, "/books")
}

// DeleteForm godoc
// @Summary      Delete confirmation view
// @Tags         books
// @Produce      json
// @Param        id   path      int  true  "Book ID"
// @Success      200  {object}  BookResponse
// @Failure      404  {object}  validation.ErrorResponse
// @Router       /books/{id}/delete [get]
func (h *BookHandler) DeleteForm(c *gin.Context) {
	h.showBook(c)
}

// Delete godoc
// @Summary      Delete a book
// @Description  Removes the book; a missing record is a no-op and still redirects
// @Tags         books
// @Produce      json
// @Param        id   path      int  true  "Book ID"
// @Success      303  {string}  string  "Redirect to /books"
// @Failure      500  {object}  validation.ErrorResponse  "Store unavailable"
// @Router       /books/{id}/delete [post]
func (h *BookHandler) Delete(c *gin.Context) {
	// An unparseable id deletes nothing, which is indistinguishable from a
	// missing record: both redirect.
	id, _ := parseIDParam(c)

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		h.writeStoreError(c, err, "BOOK_DELETE_FAILED", "failed to delete book")
		return
	}

	c.Redirect(http.StatusSeeOther, "/books")
}

// ReserveForm godoc
// @Summary      Reservation confirmation view
// @Tags         books
// @Produce      json
// @Param        id   path      int  true  "Book ID"
// @Success      200  {object}  BookResponse
// @Failure      404  {object}  validation.ErrorResponse
// @Router       /books/{id}/reserve [get]
func (h *BookHandler) ReserveForm(c *gin.Context) {
	h.showBook(c)
}

// Reserve godoc
// @Summary      Reserve a book
// @Description  Transitions an Available book to Reserved and assigns its reservation number. An already reserved book answers 200 with a status field error.
// @Tags         books
// @Produce      json
// @Param        id   path      int  true  "Book ID"
// @Success      303  {string}  string  "Redirect to /books/{id}/confirm"
// @Success      200  {object}  validation.ErrorResponse  "Already reserved; record echoed with field error"
// @Failure      500  {object}  validation.ErrorResponse
// @Router       /books/{id}/reserve [post]
func (h *BookHandler) Reserve(c *gin.Context) {
	id, _ := parseIDParam(c)
	ctx := c.Request.Context()

	book, err := h.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// A vanished record is not an error here: redirect to the
			// catalog with no change.
			c.Redirect(http.StatusSeeOther, "/books")
			return
		}
		h.writeStoreError(c, err, "BOOK_RESERVE_FAILED", "failed to fetch book")
		return
	}

	if book.Status != model.StatusAvailable {
		h.writeReserveConflict(c, *book)
		return
	}

	reserveID := newReserveID()
	if err := h.repo.Reserve(ctx, id, reserveID); err != nil {
		if errors.Is(err, repository.ErrBookReserved) {
			// Lost the race: someone else reserved it between our read
			// and write. Same answer as finding it reserved up front.
			if current, findErr := h.repo.FindByID(ctx, id); findErr == nil {
				book = current
			}
			h.writeReserveConflict(c, *book)
			return
		}
		h.writeStoreError(c, err, "BOOK_RESERVE_FAILED", "failed to reserve book")
		return
	}

	c.Redirect(http.StatusSeeOther, "/books/"+c.Param("id")+"/confirm")
}

// Confirm godoc
// @Summary      Reservation confirmation
// @Description  Shows the book with its assigned reservation number
// @Tags         books
// @Produce      json
// @Param        id   path      int  true  "Book ID"
// @Success      200  {object}  BookResponse
// @Failure      404  {object}  validation.ErrorResponse
// @Router       /books/{id}/confirm [get]
func (h *BookHandler) Confirm(c *gin.Context) {
	h.showBook(c)
}

// showBook renders the record for the read-only confirmation views and the
// detail page: 404 when the id is absent or matches nothing.
func (h *BookHandler) showBook(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		writeError(c, http.StatusNotFound, "BOOK_NOT_FOUND", "book not found")
		return
	}

	book, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeError(c, http.StatusNotFound, "BOOK_NOT_FOUND", "book not found")
			return
		}
		h.writeStoreError(c, err, "BOOK_FETCH_FAILED", "failed to fetch book")
		return
	}

	c.JSON(http.StatusOK, toBookResponse(*book))
}

// writeReserveConflict re-displays the record with a field-level error on
// status. Deliberately a 200: the caller gets the form back, not a failure.
func (h *BookHandler) writeReserveConflict(c *gin.Context, book model.Book) {
	c.JSON(http.StatusOK, validation.ErrorResponse{
		Message: "reservation error",
		Errors: []validation.FieldError{
			{
				Field:   "status",
				Rule:    "available",
				Message: "unfortunately this book has already been reserved",
			},
		},
		Data: toBookView(book),
	})
}

func (h *BookHandler) writeStoreError(c *gin.Context, err error, code, message string) {
	if errors.Is(err, repository.ErrStoreUnavailable) {
		writeError(c, http.StatusInternalServerError,
			"STORE_UNAVAILABLE", "book store is not initialized")
		return
	}
	writeError(c, http.StatusInternalServerError, code, message)
}

// newReserveID derives the reservation number from a fresh random UUID by
// reinterpreting its first 8 bytes as a little-endian signed integer.
func newReserveID() int64 {
	u := uuid.New()
	return int64(binary.LittleEndian.Uint64(u[:8]))
}
