package handler

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/docassist/docassist-be/types"
)

// DocumentHandler serves stored uploads and exported results back to the
// client.
type DocumentHandler struct {
	uploadDir string
	exportDir string
}

func NewDocumentHandler(uploadDir, exportDir string) *DocumentHandler {
	return &DocumentHandler{
		uploadDir: uploadDir,
		exportDir: exportDir,
	}
}

// ServeDocument streams a stored PDF. Uploads are stored with a timestamp
// suffix, so the requested name is matched against "<name>_<unixts>.pdf".
func (h *DocumentHandler) ServeDocument(c *gin.Context) {
	requestedName := c.Query("file")
	if requestedName == "" {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "File parameter is required",
		})
		return
	}
	if filepath.Ext(requestedName) != ".pdf" {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "Only PDF files are allowed",
		})
		return
	}

	actualFile, err := h.findStoredFile(requestedName)
	if err != nil {
		c.JSON(http.StatusNotFound, types.DataResponse{
			Status:  false,
			Message: "File not found",
		})
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%s", requestedName))
	c.File(filepath.Join(h.uploadDir, actualFile))
}

// ServeExport streams an exported result file as a text download.
func (h *DocumentHandler) ServeExport(c *gin.Context) {
	requestedName := filepath.Base(c.Query("file"))
	if requestedName == "" || requestedName == "." {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "File parameter is required",
		})
		return
	}

	path := filepath.Join(h.exportDir, requestedName)
	if _, err := os.Stat(path); err != nil {
		c.JSON(http.StatusNotFound, types.DataResponse{
			Status:  false,
			Message: "File not found",
		})
		return
	}
	c.FileAttachment(path, requestedName)
}

// findStoredFile matches a requested "name.pdf" against stored files named
// "name_<timestamp>.pdf".
func (h *DocumentHandler) findStoredFile(requestedName string) (string, error) {
	files, err := os.ReadDir(h.uploadDir)
	if err != nil {
		return "", err
	}

	baseName := strings.TrimSuffix(requestedName, ".pdf")
	for _, file := range files {
		name := file.Name()
		if !strings.HasSuffix(name, ".pdf") {
			continue
		}

		nameWithoutExt := strings.TrimSuffix(name, ".pdf")
		if nameWithoutExt == baseName {
			return name, nil
		}

		lastUnderscoreIdx := strings.LastIndex(nameWithoutExt, "_")
		if lastUnderscoreIdx == -1 {
			continue
		}
		timestampPart := nameWithoutExt[lastUnderscoreIdx+1:]
		if _, err := strconv.ParseInt(timestampPart, 10, 64); err != nil {
			continue
		}
		if nameWithoutExt[:lastUnderscoreIdx] == baseName {
			return name, nil
		}
	}

	return "", fmt.Errorf("file not found: %s", requestedName)
}
