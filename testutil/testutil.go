// Package testutil spins up the API against an in-memory sqlite database
// so handler tests can drive the real router end to end.
package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/junaidrashid-git/storefront-api/auth"
	"github.com/junaidrashid-git/storefront-api/config"
	"github.com/junaidrashid-git/storefront-api/models"
	"github.com/junaidrashid-git/storefront-api/routes"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewTestDB opens a fresh in-memory database with the full schema.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Cart{},
		&models.CartItem{},
		&models.Product{},
		&models.ProductImage{},
		&models.Category{},
		&models.Collection{},
		&models.Order{},
		&models.OrderItem{},
		&models.SiteContent{},
		&models.SiteBanner{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	return db
}

// NewRouter builds the full route table over the given database.
func NewRouter(t *testing.T, db *gorm.DB) *gin.Engine {
	t.Helper()
	auth.Configure("test-secret")

	gin.SetMode(gin.TestMode)
	r := gin.New()

	cfg := &config.Config{}
	cfg.Auth.TokenTTL = time.Hour
	routes.SetupRoutes(r, db, cfg)
	return r
}

// CreateUser inserts a user with a hashed password and an empty cart.
func CreateUser(t *testing.T, db *gorm.DB, name, email, password string, isAdmin bool) models.User {
	t.Helper()

	user := models.User{Name: name, Email: email, IsAdmin: isAdmin}
	if err := user.SetPassword(password); err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if err := db.Omit("Cart").Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	if err := db.Create(&models.Cart{UserID: user.ID}).Error; err != nil {
		t.Fatalf("create cart: %v", err)
	}
	return user
}

// CreateProduct inserts a product under a throwaway category.
func CreateProduct(t *testing.T, db *gorm.DB, name string, price string, stock int) models.Product {
	t.Helper()

	category := models.Category{Name: "cat-" + uuid.NewString()}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("create category: %v", err)
	}

	product := models.Product{
		Name:       name,
		Price:      decimal.RequireFromString(price),
		CategoryID: category.ID,
		Stock:      stock,
		Images:     []models.ProductImage{{URL: "/uploads/products/" + name + ".png"}},
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("create product: %v", err)
	}
	return product
}

// TokenFor issues a short-lived bearer token for the user.
func TokenFor(t *testing.T, user models.User) string {
	t.Helper()
	auth.Configure("test-secret")

	token, err := auth.IssueToken(user.ID, time.Hour)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return token
}

// DoJSON performs a request with an optional JSON body and bearer token.
func DoJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// FilePart names one fake image file to attach to a multipart request.
type FilePart struct {
	Field string
	Name  string
}

// DoMultipart performs a multipart form request with text fields, optional
// file parts and a bearer token.
func DoMultipart(t *testing.T, r *gin.Engine, method, path string, fields map[string]string, files []FilePart, token string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("write field %s: %v", k, err)
		}
	}
	for _, f := range files {
		fw, err := mw.CreateFormFile(f.Field, f.Name)
		if err != nil {
			t.Fatalf("create file part %s: %v", f.Field, err)
		}
		if _, err := fw.Write([]byte("fake image bytes for " + f.Name)); err != nil {
			t.Fatalf("write file part %s: %v", f.Field, err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// Decode unmarshals a recorded JSON response into dest.
func Decode(t *testing.T, w *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), dest); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}
