package storage_test

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/storefront-api/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uploadContext(t *testing.T, field, filename string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte("png bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	c.Request = req
	return c
}

func TestSaveImage(t *testing.T) {
	dir := t.TempDir()
	storage.Configure(dir, "/uploads")

	c := uploadContext(t, "image", "my photo.png")
	file, err := c.FormFile("image")
	require.NoError(t, err)

	url, fileID, err := storage.SaveImage(c, file, "products")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "/uploads/products/"), url)
	assert.True(t, strings.HasPrefix(fileID, "products/"), fileID)
	assert.Contains(t, fileID, "my_photo", "spaces in the original name are replaced")
	assert.True(t, strings.HasSuffix(fileID, ".png"))

	data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(fileID)))
	require.NoError(t, err)
	assert.Equal(t, "png bytes", string(data))
}

func TestSaveImageNamesNeverCollide(t *testing.T) {
	dir := t.TempDir()
	storage.Configure(dir, "/uploads")

	c := uploadContext(t, "image", "mug.png")
	file, err := c.FormFile("image")
	require.NoError(t, err)

	_, first, err := storage.SaveImage(c, file, "products")
	require.NoError(t, err)
	_, second, err := storage.SaveImage(c, file, "products")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestRemove(t *testing.T) {
	dir := t.TempDir()
	storage.Configure(dir, "/uploads")

	c := uploadContext(t, "image", "mug.png")
	file, err := c.FormFile("image")
	require.NoError(t, err)
	_, fileID, err := storage.SaveImage(c, file, "products")
	require.NoError(t, err)

	require.NoError(t, storage.Remove(fileID))
	_, statErr := os.Stat(filepath.Join(dir, filepath.FromSlash(fileID)))
	assert.True(t, os.IsNotExist(statErr))

	t.Run("missing file is not an error", func(t *testing.T) {
		assert.NoError(t, storage.Remove(fileID))
	})

	t.Run("empty id is a no-op", func(t *testing.T) {
		assert.NoError(t, storage.Remove(""))
	})
}
