package handler

import (
	"context"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"bookcatalog/internal/model"
	"bookcatalog/internal/repository"
	"bookcatalog/internal/validation"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:testdb_" + uuid.New().String() + "?mode=memory&cache=shared"

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	if err := db.AutoMigrate(&model.Book{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB from gorm: %v", err)
	}

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return db
}

func setupRouterWithRepo(repo repository.BookRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	validation.RegisterValidators()

	r := gin.New()

	h := NewBookHandler(repo)
	h.RegisterRoutes(r.Group(""))

	return r
}

func setupRouter(db *gorm.DB) *gin.Engine {
	return setupRouterWithRepo(repository.NewGormBookRepository(db))
}

func seedCatalog(t *testing.T, db *gorm.DB) []model.Book {
	t.Helper()

	if err := model.Seed(db); err != nil {
		t.Fatalf("failed to seed catalog: %v", err)
	}

	var books []model.Book
	if err := db.Order("id").Find(&books).Error; err != nil {
		t.Fatalf("failed to load seeded catalog: %v", err)
	}

	return books
}

// fakeBookRepo lets tests script repository behavior per call, mainly for
// error paths the sqlite-backed tests cannot reach.
type fakeBookRepo struct {
	CreateFn     func(ctx context.Context, b *model.Book) error
	FindByIDFn   func(ctx context.Context, id uint) (*model.Book, error)
	ListFn       func(ctx context.Context, filter repository.CatalogFilter) ([]model.Book, error)
	CategoriesFn func(ctx context.Context) ([]string, error)
	UpdateFn     func(ctx context.Context, b *model.Book) error
	ExistsFn     func(ctx context.Context, id uint) (bool, error)
	DeleteFn     func(ctx context.Context, id uint) error
	ReserveFn    func(ctx context.Context, id uint, reserveID int64) error
}

func (f *fakeBookRepo) Create(ctx context.Context, b *model.Book) error {
	if f.CreateFn != nil {
		return f.CreateFn(ctx, b)
	}
	return nil
}

func (f *fakeBookRepo) FindByID(ctx context.Context, id uint) (*model.Book, error) {
	if f.FindByIDFn != nil {
		return f.FindByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeBookRepo) List(ctx context.Context, filter repository.CatalogFilter) ([]model.Book, error) {
	if f.ListFn != nil {
		return f.ListFn(ctx, filter)
	}
	return nil, nil
}

func (f *fakeBookRepo) Categories(ctx context.Context) ([]string, error) {
	if f.CategoriesFn != nil {
		return f.CategoriesFn(ctx)
	}
	return nil, nil
}

func (f *fakeBookRepo) Update(ctx context.Context, b *model.Book) error {
	if f.UpdateFn != nil {
		return f.UpdateFn(ctx, b)
	}
	return nil
}

func (f *fakeBookRepo) Exists(ctx context.Context, id uint) (bool, error) {
	if f.ExistsFn != nil {
		return f.ExistsFn(ctx, id)
	}
	return false, nil
}

func (f *fakeBookRepo) Delete(ctx context.Context, id uint) error {
	if f.DeleteFn != nil {
		return f.DeleteFn(ctx, id)
	}
	return nil
}

func (f *fakeBookRepo) Reserve(ctx context.Context, id uint, reserveID int64) error {
	if f.ReserveFn != nil {
		return f.ReserveFn(ctx, id, reserveID)
	}
	return nil
}
