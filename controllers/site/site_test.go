package siteController_test

import (
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/junaidrashid-git/storefront-api/models"
	"github.com/junaidrashid-git/storefront-api/storage"
	"github.com/junaidrashid-git/storefront-api/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupUploads(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	storage.Configure(dir, "/uploads")
	return dir
}

func fileExists(dir, fileID string) bool {
	_, err := os.Stat(filepath.Join(dir, filepath.FromSlash(fileID)))
	return err == nil
}

func TestGetContentBeforeFirstWrite(t *testing.T) {
	db := testutil.NewTestDB(t)
	r := testutil.NewRouter(t, db)

	w := testutil.DoJSON(t, r, http.MethodGet, "/site-content", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestContentSingletonCreateThenUpdate(t *testing.T) {
	db := testutil.NewTestDB(t)
	r := testutil.NewRouter(t, db)
	setupUploads(t)
	admin := testutil.CreateUser(t, db, "Admin", "admin@example.com", "secret123", true)
	token := testutil.TokenFor(t, admin)

	w := testutil.DoMultipart(t, r, http.MethodPost, "/site-content", map[string]string{
		"about":        "Hand-picked kitchenware.",
		"contactEmail": "hello@example.com",
	}, nil, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// second write updates the same row, fields not sent stay put
	w = testutil.DoMultipart(t, r, http.MethodPost, "/site-content", map[string]string{
		"contactPhone": "555-0101",
	}, nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.SiteContent{}).Count(&count).Error)
	assert.Equal(t, int64(1), count, "content is a singleton")

	var content models.SiteContent
	require.NoError(t, db.First(&content).Error)
	assert.Equal(t, "Hand-picked kitchenware.", content.About)
	assert.Equal(t, "hello@example.com", content.ContactEmail)
	assert.Equal(t, "555-0101", content.ContactPhone)
	assert.Equal(t, admin.ID, content.UpdatedByID)

	w = testutil.DoJSON(t, r, http.MethodGet, "/site-content", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestContentBannerAndLogoUploads(t *testing.T) {
	db := testutil.NewTestDB(t)
	r := testutil.NewRouter(t, db)
	dir := setupUploads(t)
	admin := testutil.CreateUser(t, db, "Admin", "admin@example.com", "secret123", true)
	token := testutil.TokenFor(t, admin)

	w := testutil.DoMultipart(t, r, http.MethodPost, "/site-content",
		map[string]string{"about": "store"},
		[]testutil.FilePart{
			{Field: "banners", Name: "spring.png"},
			{Field: "banners", Name: "summer.png"},
			{Field: "logo", Name: "logo-v1.png"},
		}, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var content models.SiteContent
	require.NoError(t, db.Preload("Banners").First(&content).Error)
	require.Len(t, content.Banners, 2)
	assert.Equal(t, 0, content.Banners[0].Position)
	assert.Equal(t, 1, content.Banners[1].Position)
	for _, banner := range content.Banners {
		assert.True(t, fileExists(dir, banner.FileID), "banner file missing on disk")
	}
	require.NotEmpty(t, content.LogoFileID)
	assert.True(t, fileExists(dir, content.LogoFileID))
	oldLogoFileID := content.LogoFileID

	// another write appends a banner and replaces the logo file
	w = testutil.DoMultipart(t, r, http.MethodPost, "/site-content", nil,
		[]testutil.FilePart{
			{Field: "banners", Name: "autumn.png"},
			{Field: "logo", Name: "logo-v2.png"},
		}, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	content = models.SiteContent{}
	require.NoError(t, db.Preload("Banners").First(&content).Error)
	assert.Len(t, content.Banners, 3, "banners are appended, never replaced")
	assert.NotEqual(t, oldLogoFileID, content.LogoFileID)
	assert.True(t, fileExists(dir, content.LogoFileID))
	assert.False(t, fileExists(dir, oldLogoFileID), "replaced logo file should be gone")
}

func TestContentWriteRequiresAdmin(t *testing.T) {
	db := testutil.NewTestDB(t)
	r := testutil.NewRouter(t, db)
	user := testutil.CreateUser(t, db, "Asha", "asha@example.com", "secret123", false)

	w := testutil.DoMultipart(t, r, http.MethodPost, "/site-content",
		map[string]string{"about": "nope"}, nil, testutil.TokenFor(t, user))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestDeleteBanner(t *testing.T) {
	db := testutil.NewTestDB(t)
	r := testutil.NewRouter(t, db)
	setupUploads(t)
	admin := testutil.CreateUser(t, db, "Admin", "admin@example.com", "secret123", true)

	content := models.SiteContent{
		About: "store",
		Banners: []models.SiteBanner{
			{Position: 0, URL: "/uploads/banners/a.png", FileID: "banners/a.png"},
			{Position: 1, URL: "/uploads/banners/b.png", FileID: "banners/b.png"},
		},
	}
	require.NoError(t, db.Create(&content).Error)

	target := content.Banners[0]
	w := testutil.DoJSON(t, r, http.MethodDelete,
		"/site-content/banner/"+uitoa(target.ID), nil, testutil.TokenFor(t, admin))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var remaining []models.SiteBanner
	require.NoError(t, db.Find(&remaining).Error)
	require.Len(t, remaining, 1)
	assert.Equal(t, "banners/b.png", remaining[0].FileID)

	t.Run("unknown banner id", func(t *testing.T) {
		w := testutil.DoJSON(t, r, http.MethodDelete,
			"/site-content/banner/99999", nil, testutil.TokenFor(t, admin))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func uitoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
