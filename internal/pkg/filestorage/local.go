package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/yigit/placement/internal/pkg/logger"
)

// ResumeExtension is the only upload suffix accepted as a resume.
const ResumeExtension = ".pdf"

// LocalStorage handles saving files to the local filesystem.
type LocalStorage struct {
	basePath string // The root directory where files will be stored
}

// NewLocalStorage creates a new LocalStorage instance, creating basePath if needed.
func NewLocalStorage(basePath string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	return &LocalStorage{basePath: basePath}, nil
}

// IsResume reports whether an uploaded file qualifies as a resume.
func IsResume(fileHeader *multipart.FileHeader) bool {
	return fileHeader != nil && fileHeader.Filename != "" && strings.HasSuffix(fileHeader.Filename, ResumeExtension)
}

// SaveResume saves a PDF upload under its sanitized name. An existing file with the
// same name is overwritten.
func (ls *LocalStorage) SaveResume(fileHeader *multipart.FileHeader) (string, error) {
	if !IsResume(fileHeader) {
		if fileHeader != nil && fileHeader.Filename != "" {
			logger.Debug().Str("filename", fileHeader.Filename).Msg("Ignoring non-PDF resume upload")
		}
		return "", nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded file")
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	filename := SanitizeFilename(fileHeader.Filename)
	if filename == "" {
		filename = uuid.New().String() + ResumeExtension
	}

	dstPath := filepath.Join(ls.basePath, filename)
	dst, err := os.Create(dstPath)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, file); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to copy uploaded file content")
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}

	logger.Info().Str("filename", fileHeader.Filename).Str("saved_as", filename).Int64("size", fileHeader.Size).Msg("Resume saved")
	return filename, nil
}

// GetFullPath returns the full filesystem path for a stored file name.
// Directory components in the name are discarded.
func (ls *LocalStorage) GetFullPath(filename string) string {
	filename = filepath.Base(filename)
	if filename == "" || filename == "." || filename == "/" || filename == ".." {
		return ""
	}

	return filepath.Join(ls.basePath, filename)
}
