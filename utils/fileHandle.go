package utils

import (
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"lms/config"
	"lms/models"

	"github.com/google/uuid"
)

// SaveUploadedFile stores an uploaded file under <UploadDir>/<subDir> with a
// unique name and returns the public path ("/uploads/...") to persist.
func SaveUploadedFile(file *multipart.FileHeader, subDir string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	destDir := filepath.Join(config.AppConfig.UploadDir, subDir)
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", err
	}

	ext := filepath.Ext(file.Filename)
	newFilename := uuid.NewString() + ext
	filePath := filepath.Join(destDir, newFilename)

	dst, err := os.Create(filePath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return "/uploads/" + subDir + "/" + newFilename, nil
}

// DeleteUploadedFile removes a previously stored asset. The default avatar is
// never removed, and a missing file is not an error: the row referencing the
// asset is already gone or repointed by the time this runs.
func DeleteUploadedFile(publicPath string) {
	if publicPath == "" || publicPath == models.DefaultAvatar {
		return
	}

	rel := strings.TrimPrefix(publicPath, "/uploads/")
	if rel == publicPath {
		// not one of ours
		return
	}

	fullPath := filepath.Join(config.AppConfig.UploadDir, filepath.FromSlash(rel))
	if _, err := os.Stat(fullPath); err == nil {
		_ = os.Remove(fullPath)
	}
}
