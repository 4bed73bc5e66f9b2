// Package storage saves uploaded images under the local uploads directory
// and hands back the public URL plus a file id that later deletes can use.
package storage

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	baseDir    = "./uploads"
	publicPath = "/uploads"
)

// Configure sets the on-disk directory and the URL prefix it is served
// under. Called once from main before any handler runs.
func Configure(dir, public string) {
	baseDir = dir
	publicPath = strings.TrimRight(public, "/")
}

// SaveImage writes the uploaded file into <baseDir>/<subdir> under a
// collision-free name. It returns the public URL and the file id
// ("<subdir>/<name>") used by Remove.
func SaveImage(c *gin.Context, file *multipart.FileHeader, subdir string) (url, fileID string, err error) {
	saveDir := filepath.Join(baseDir, subdir)
	if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
		return "", "", fmt.Errorf("create upload folder: %w", err)
	}

	ext := filepath.Ext(file.Filename)
	base := strings.TrimSuffix(filepath.Base(file.Filename), ext)
	base = strings.ReplaceAll(base, " ", "_")
	filename := fmt.Sprintf("%s_%s%s", uuid.NewString(), base, ext)

	if err := c.SaveUploadedFile(file, filepath.Join(saveDir, filename)); err != nil {
		return "", "", fmt.Errorf("save image: %w", err)
	}

	fileID = subdir + "/" + filename
	return publicPath + "/" + fileID, fileID, nil
}

// Remove deletes a stored file by its file id. Missing files are not an
// error; the database row is what matters.
func Remove(fileID string) error {
	if fileID == "" {
		return nil
	}
	err := os.Remove(filepath.Join(baseDir, filepath.FromSlash(fileID)))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
