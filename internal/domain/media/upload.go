package media

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// MaxUploadSize caps each uploaded image at 5MB.
const MaxUploadSize = 5 << 20

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// ValidateUpload checks an uploaded image's size and extension without
// touching the filesystem, so callers can collect field errors before
// anything is written.
func ValidateUpload(file *multipart.FileHeader) error {
	if file.Size > MaxUploadSize {
		return fmt.Errorf("file size must be less than 5MB")
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[ext] {
		return fmt.Errorf("file must be an image (jpg, jpeg, png, gif, webp)")
	}
	return nil
}

// SaveUpload validates an uploaded image and writes it under dir with a
// generated filename. The returned path is the opaque reference stored on
// the submission.
func SaveUpload(file *multipart.FileHeader, dir string) (string, error) {
	if err := ValidateUpload(file); err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to prepare upload dir: %w", err)
	}

	dst := filepath.Join(dir, uuid.NewString()+ext)

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("failed to store upload: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		return "", fmt.Errorf("failed to store upload: %w", err)
	}

	return dst, nil
}
