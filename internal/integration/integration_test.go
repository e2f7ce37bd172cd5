//go:build integration
// +build integration

package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"bookcatalog/internal/handler"
	"bookcatalog/internal/model"
	"bookcatalog/internal/repository"
	"bookcatalog/internal/validation"
)

var (
	testDB     *gorm.DB
	testRouter *gin.Engine
)

func TestMain(m *testing.M) {
	DBHost := os.Getenv("POSTGRES_HOST")
	DBPort := os.Getenv("POSTGRES_PORT")
	DBUser := os.Getenv("POSTGRES_USER")
	DBPass := os.Getenv("POSTGRES_PASSWORD")
	DBName := os.Getenv("POSTGRES_DB")
	DBSSLMode := "disable"
	TZ := os.Getenv("TZ")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		DBHost,
		DBUser,
		DBPass,
		DBName,
		DBPort,
		DBSSLMode,
		TZ,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		panic("failed to connect to test database: " + err.Error())
	}
	testDB = db

	if err := db.AutoMigrate(&model.Book{}); err != nil {
		panic("failed to migrate: " + err.Error())
	}

	gin.SetMode(gin.TestMode)
	validation.RegisterValidators()

	r := gin.New()

	bookRepo := repository.NewGormBookRepository(db)
	bookHandler := handler.NewBookHandler(bookRepo)
	bookHandler.RegisterRoutes(r.Group(""))

	testRouter = r

	code := m.Run()
	os.Exit(code)
}

func resetDB(t *testing.T) {
	t.Helper()

	if err := testDB.Exec("TRUNCATE TABLE books RESTART IDENTITY").Error; err != nil {
		t.Fatalf("failed to reset database: %v", err)
	}
}

func postJSON(t *testing.T, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	b, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("failed to marshal body: %v", err)
	}

	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	testRouter.ServeHTTP(w, req)
	return w
}

func TestBookLifecycle(t *testing.T) {
	resetDB(t)

	w := postJSON(t, "/books", map[string]any{
		"title":       "Effective Go Patterns",
		"bookId":      "bk-0042",
		"releaseDate": "2023-04-01",
		"category":    "Programming",
		"price":       49.90,
	})
	if w.Code != http.StatusSeeOther {
		t.Fatalf("create: expected 303, got %d, body=%s", w.Code, w.Body.String())
	}

	var book model.Book
	if err := testDB.First(&book, "book_id = ?", "bk-0042").Error; err != nil {
		t.Fatalf("expected book in db: %v", err)
	}
	if book.Status != model.StatusAvailable {
		t.Fatalf("expected Available, got %q", book.Status)
	}

	w = postJSON(t, fmt.Sprintf("/books/%d/reserve", book.ID), nil)
	if w.Code != http.StatusSeeOther {
		t.Fatalf("reserve: expected 303, got %d, body=%s", w.Code, w.Body.String())
	}

	if err := testDB.First(&book, "id = ?", book.ID).Error; err != nil {
		t.Fatalf("failed to reload book: %v", err)
	}
	if book.Status != model.StatusReserved || book.ReserveID == nil {
		t.Fatalf("expected Reserved with number, got %q %v", book.Status, book.ReserveID)
	}

	w = postJSON(t, fmt.Sprintf("/books/%d/reserve", book.ID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("second reserve: expected 200, got %d", w.Code)
	}

	w = postJSON(t, fmt.Sprintf("/books/%d/delete", book.ID), nil)
	if w.Code != http.StatusSeeOther {
		t.Fatalf("delete: expected 303, got %d", w.Code)
	}

	var count int64
	if err := testDB.Model(&model.Book{}).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected empty catalog, got %d", count)
	}
}
