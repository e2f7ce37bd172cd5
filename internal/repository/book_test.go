package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"bookcatalog/internal/model"
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

func seedCatalog(t *testing.T, db *gorm.DB) {
	t.Helper()

	if err := model.Seed(db); err != nil {
		t.Fatalf("failed to seed catalog: %v", err)
	}
}

func seedBook(t *testing.T, db *gorm.DB, title, category string, status model.BookStatus) model.Book {
	t.Helper()

	release := time.Date(2020, time.June, 1, 0, 0, 0, 0, time.UTC)

	book := model.Book{
		Title:       title,
		BookID:      uuid.New().String(),
		ReleaseDate: &release,
		Category:    category,
		Price:       25.50,
		Status:      status,
	}

	if err := db.Create(&book).Error; err != nil {
		t.Fatalf("failed to seed book %q: %v", title, err)
	}

	return book
}

func TestGormBookRepository_List_SearchByTitle(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormBookRepository(db)
	seedCatalog(t, db)

	books, err := repo.List(context.Background(), CatalogFilter{Search: "Tips"})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}

	if len(books) != 1 {
		t.Fatalf("expected 1 book, got %d", len(books))
	}
	if books[0].Title != "Visual Studio Tips" {
		t.Fatalf("expected %q, got %q", "Visual Studio Tips", books[0].Title)
	}
}

func TestGormBookRepository_List_FilterByCategory(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormBookRepository(db)
	seedCatalog(t, db)

	ctx := context.Background()

	books, err := repo.List(ctx, CatalogFilter{Category: "Programming"})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(books) != 3 {
		t.Fatalf("expected 3 books in Programming, got %d", len(books))
	}

	books, err = repo.List(ctx, CatalogFilter{Category: "Gardening"})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(books) != 0 {
		t.Fatalf("expected 0 books in Gardening, got %d", len(books))
	}
}

func TestGormBookRepository_List_ComposedFilters(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormBookRepository(db)
	seedCatalog(t, db)
	seedBook(t, db, "Cooking Tips", "Cooking", model.StatusAvailable)

	books, err := repo.List(context.Background(), CatalogFilter{
		Search:   "Tips",
		Category: "Programming",
	})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}

	if len(books) != 1 || books[0].Title != "Visual Studio Tips" {
		t.Fatalf("expected only the Programming title match, got %d books", len(books))
	}
}

func TestGormBookRepository_Categories_DistinctSorted(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormBookRepository(db)
	seedCatalog(t, db)

	categories, err := repo.Categories(context.Background())
	if err != nil {
		t.Fatalf("Categories returned error: %v", err)
	}

	if len(categories) != 1 || categories[0] != "Programming" {
		t.Fatalf("expected [Programming], got %v", categories)
	}

	seedBook(t, db, "Sourdough at Home", "Cooking", model.StatusAvailable)
	seedBook(t, db, "Another Loaf", "Cooking", model.StatusAvailable)

	categories, err = repo.Categories(context.Background())
	if err != nil {
		t.Fatalf("Categories returned error: %v", err)
	}

	want := []string{"Cooking", "Programming"}
	if len(categories) != len(want) {
		t.Fatalf("expected %v, got %v", want, categories)
	}
	for i := range want {
		if categories[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, categories)
		}
	}
}

func TestGormBookRepository_CreateDefaultsStatus(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormBookRepository(db)

	book := model.Book{
		Title:    "The Go Programming Language",
		BookID:   "978-0134190440",
		Category: "Programming",
		Price:    39.99,
	}

	if err := repo.Create(context.Background(), &book); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if book.ID == 0 {
		t.Fatal("expected assigned id")
	}

	stored, err := repo.FindByID(context.Background(), book.ID)
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}

	if stored.Status != model.StatusAvailable {
		t.Errorf("expected default status %q, got %q", model.StatusAvailable, stored.Status)
	}
	if stored.ReserveID != nil {
		t.Errorf("expected nil reserve id, got %v", *stored.ReserveID)
	}
}

func TestGormBookRepository_Reserve_Transition(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormBookRepository(db)
	book := seedBook(t, db, "Refactoring", "Programming", model.StatusAvailable)

	ctx := context.Background()

	if err := repo.Reserve(ctx, book.ID, 1234567890); err != nil {
		t.Fatalf("Reserve returned error: %v", err)
	}

	stored, err := repo.FindByID(ctx, book.ID)
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}

	if stored.Status != model.StatusReserved {
		t.Errorf("expected status %q, got %q", model.StatusReserved, stored.Status)
	}
	if stored.ReserveID == nil || *stored.ReserveID != 1234567890 {
		t.Errorf("expected reserve id 1234567890, got %v", stored.ReserveID)
	}
}

func TestGormBookRepository_Reserve_AlreadyReserved(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormBookRepository(db)
	book := seedBook(t, db, "Refactoring", "Programming", model.StatusAvailable)

	ctx := context.Background()

	if err := repo.Reserve(ctx, book.ID, 111); err != nil {
		t.Fatalf("first Reserve returned error: %v", err)
	}

	err := repo.Reserve(ctx, book.ID, 222)
	if !errors.Is(err, ErrBookReserved) {
		t.Fatalf("expected ErrBookReserved, got %v", err)
	}

	stored, err := repo.FindByID(ctx, book.ID)
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}
	if stored.ReserveID == nil || *stored.ReserveID != 111 {
		t.Errorf("reserve id must keep the first winner, got %v", stored.ReserveID)
	}
}

func TestGormBookRepository_Update_MissingRecord(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormBookRepository(db)

	book := model.Book{
		ID:       4242,
		Title:    "Ghost Record",
		BookID:   "none",
		Category: "Programming",
		Price:    10,
		Status:   model.StatusAvailable,
	}

	err := repo.Update(context.Background(), &book)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestGormBookRepository_Delete_MissingIsNoOp(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormBookRepository(db)
	seedCatalog(t, db)

	if err := repo.Delete(context.Background(), 9999); err != nil {
		t.Fatalf("Delete of missing id returned error: %v", err)
	}

	var count int64
	if err := db.Model(&model.Book{}).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 3 {
		t.Fatalf("expected catalog untouched (3 books), got %d", count)
	}
}

func TestGormBookRepository_NilHandle(t *testing.T) {
	repo := NewGormBookRepository(nil)
	ctx := context.Background()

	if _, err := repo.List(ctx, CatalogFilter{}); !errors.Is(err, ErrStoreUnavailable) {
		t.Errorf("List: expected ErrStoreUnavailable, got %v", err)
	}
	if _, err := repo.Categories(ctx); !errors.Is(err, ErrStoreUnavailable) {
		t.Errorf("Categories: expected ErrStoreUnavailable, got %v", err)
	}
	if err := repo.Delete(ctx, 1); !errors.Is(err, ErrStoreUnavailable) {
		t.Errorf("Delete: expected ErrStoreUnavailable, got %v", err)
	}
	if err := repo.Reserve(ctx, 1, 1); !errors.Is(err, ErrStoreUnavailable) {
		t.Errorf("Reserve: expected ErrStoreUnavailable, got %v", err)
	}
}

func TestSeed_Idempotent(t *testing.T) {
	db := setupTestDB(t)

	seedCatalog(t, db)
	seedCatalog(t, db)

	var count int64
	if err := db.Model(&model.Book{}).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 3 {
		t.Fatalf("expected 3 seeded books, got %d", count)
	}
}
