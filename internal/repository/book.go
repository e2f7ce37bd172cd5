package repository

import (
	"context"
	"errors"

	"bookcatalog/internal/model"
	"gorm.io/gorm"
)

var (
	// ErrStoreUnavailable is returned when the repository was constructed
	// without a database handle. Callers treat it as a server error.
	ErrStoreUnavailable = errors.New("book store is not initialized")

	// ErrBookReserved is returned when a reservation write finds the book
	// no longer Available, including the case where a concurrent request
	// reserved it between read and write.
	ErrBookReserved = errors.New("book is already reserved")
)

// CatalogFilter narrows the catalog listing. Zero values mean "no filter"
// for that dimension.
type CatalogFilter struct {
	Category string
	Search   string
}

type BookRepository interface {
	Create(ctx context.Context, book *model.Book) error
	FindByID(ctx context.Context, id uint) (*model.Book, error)
	List(ctx context.Context, filter CatalogFilter) ([]model.Book, error)
	Categories(ctx context.Context) ([]string, error)
	Update(ctx context.Context, book *model.Book) error
	Exists(ctx context.Context, id uint) (bool, error)
	Delete(ctx context.Context, id uint) error
	Reserve(ctx context.Context, id uint, reserveID int64) error
}

type GormBookRepository struct {
	db *gorm.DB
}

func NewGormBookRepository(db *gorm.DB) *GormBookRepository {
	return &GormBookRepository{db: db}
}

func (r *GormBookRepository) guard() error {
	if r.db == nil {
		return ErrStoreUnavailable
	}
	return nil
}

func (r *GormBookRepository) Create(ctx context.Context, book *model.Book) error {
	if err := r.guard(); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(book).Error
}

func (r *GormBookRepository) FindByID(ctx context.Context, id uint) (*model.Book, error) {
	if err := r.guard(); err != nil {
		return nil, err
	}
	var book model.Book
	if err := r.db.WithContext(ctx).First(&book, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &book, nil
}

func (r *GormBookRepository) List(ctx context.Context, filter CatalogFilter) ([]model.Book, error) {
	if err := r.guard(); err != nil {
		return nil, err
	}

	q := r.db.WithContext(ctx).Model(&model.Book{})
	if filter.Search != "" {
		q = q.Where("title LIKE ?", "%"+filter.Search+"%")
	}
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}

	var books []model.Book
	if err := q.Order("id").Find(&books).Error; err != nil {
		return nil, err
	}
	return books, nil
}

// Categories returns the distinct category values across all stored books,
// in ascending order.
func (r *GormBookRepository) Categories(ctx context.Context) ([]string, error) {
	if err := r.guard(); err != nil {
		return nil, err
	}

	var categories []string
	err := r.db.WithContext(ctx).
		Model(&model.Book{}).
		Distinct().
		Order("category").
		Pluck("category", &categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *GormBookRepository) Update(ctx context.Context, book *model.Book) error {
	if err := r.guard(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&model.Book{}).
		Where("id = ?", book.ID).
		Updates(map[string]any{
			"title":        book.Title,
			"book_id":      book.BookID,
			"release_date": book.ReleaseDate,
			"category":     book.Category,
			"price":        book.Price,
			"status":       book.Status,
			"reserve_id":   book.ReserveID,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormBookRepository) Exists(ctx context.Context, id uint) (bool, error) {
	if err := r.guard(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Book{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Delete removes the book with the given id. A missing record is a no-op,
// not an error.
func (r *GormBookRepository) Delete(ctx context.Context, id uint) error {
	if err := r.guard(); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Delete(&model.Book{}, "id = ?", id).Error
}

// Reserve transitions the book to Reserved and assigns its reservation
// number. The update is guarded on the current status, so of two racing
// reservation attempts exactly one wins; the loser gets ErrBookReserved.
func (r *GormBookRepository) Reserve(ctx context.Context, id uint, reserveID int64) error {
	if err := r.guard(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&model.Book{}).
		Where("id = ? AND status = ?", id, model.StatusAvailable).
		Updates(map[string]any{
			"status":     model.StatusReserved,
			"reserve_id": reserveID,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBookReserved
	}
	return nil
}
