package service

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/docassist/docassist-be/utils"
)

// FileService stores uploaded documents and exports finished results.
type FileService struct {
	uploadDir string
	exportDir string
}

func NewFileService(uploadDir, exportDir string) *FileService {
	for _, dir := range []string{uploadDir, exportDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			panic(err)
		}
	}
	return &FileService{
		uploadDir: uploadDir,
		exportDir: exportDir,
	}
}

// SaveUpload stores the uploaded file under the upload directory with a
// timestamp suffix and returns the stored path. Only PDF files are accepted.
func (s *FileService) SaveUpload(file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext != ".pdf" {
		return "", fmt.Errorf("unsupported file type: %s", ext)
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	destPath := filepath.Join(s.uploadDir, utils.TimestampedFileName(file.Filename))
	dst, err := os.Create(destPath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err = io.Copy(dst, src); err != nil {
		return "", err
	}
	return destPath, nil
}

// ExportResult saves a finished summary or answer as a text file and returns
// the path it was written to.
func (s *FileService) ExportResult(text, fileName string) (string, error) {
	return utils.SaveTextResult(text, s.exportDir, fileName)
}

// UploadDir exposes the storage directory for the document download handler.
func (s *FileService) UploadDir() string {
	return s.uploadDir
}
