package filestorage

import (
	"mime/multipart"
)

// FileStorage defines the storage operations used for student resumes
type FileStorage interface {
	// SaveResume stores an uploaded PDF under its sanitized original name and returns
	// that name. It returns "" without error when the upload is absent or not a PDF.
	SaveResume(fileHeader *multipart.FileHeader) (string, error)

	// GetFullPath returns the filesystem path for a stored file name
	GetFullPath(filename string) string
}
