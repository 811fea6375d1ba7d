package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/docassist/docassist-be/service"
	"github.com/docassist/docassist-be/types"
)

type UploadHandler struct {
	fileService    *service.FileService
	extractService *service.ExtractService
	assistant      *service.AssistantService
}

func NewUploadHandler(fileService *service.FileService, extractService *service.ExtractService, assistant *service.AssistantService) *UploadHandler {
	return &UploadHandler{
		fileService:    fileService,
		extractService: extractService,
		assistant:      assistant,
	}
}

type uploadOutcome struct {
	session *types.Session
	err     error
}

// chanReporter forwards extraction progress onto a channel so the handler can
// stream it to the client while extraction runs.
type chanReporter struct {
	statuses chan<- types.ProcessingStatus
}

func (r chanReporter) Progress(fraction float64) {
	r.statuses <- types.ProcessingStatus{Status: "processing", Progress: fraction}
}

func (r chanReporter) Status(message string) {
	r.statuses <- types.ProcessingStatus{Status: "processing", Message: message}
}

func (r chanReporter) Warning(message string) {
	r.statuses <- types.ProcessingStatus{Status: "warning", Message: message}
}

// UploadDocumentHandler accepts a multipart PDF upload, stores it, extracts
// its text and opens a new session holding the document. Extraction progress
// is streamed back as server-sent events; the final event carries the session
// id and document counts.
func (h *UploadHandler) UploadDocumentHandler(c *gin.Context) {
	_, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "Invalid file",
		})
		return
	}

	const maxSize = 50 << 20
	if header.Size > maxSize {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "File too large",
		})
		return
	}

	statusChan := make(chan types.ProcessingStatus)
	resultChan := make(chan uploadOutcome)
	go func() {
		storedPath, err := h.fileService.SaveUpload(header)
		if err != nil {
			resultChan <- uploadOutcome{err: err}
			return
		}
		document, err := h.extractService.ExtractText(storedPath, chanReporter{statuses: statusChan})
		if err != nil {
			resultChan <- uploadOutcome{err: err}
			return
		}
		session := h.assistant.CreateSession(document)
		resultChan <- uploadOutcome{session: session}
	}()

	clientGone := c.Request.Context().Done()
	for {
		select {
		case <-clientGone:
			return // Client disconnected
		case status := <-statusChan:
			jsonStatus, err := json.Marshal(status)
			if err != nil {
				continue
			}
			c.SSEvent("message", string(jsonStatus))
			c.Writer.Flush()
		case outcome := <-resultChan:
			if outcome.err != nil {
				c.JSON(http.StatusInternalServerError, types.DataResponse{
					Status:  false,
					Message: outcome.err.Error(),
				})
				return
			}
			document := outcome.session.Document
			c.JSON(http.StatusOK, types.DataResponse{
				Status: true,
				Data: types.UploadResponse{
					SessionID:    outcome.session.ID,
					OriginalName: header.Filename,
					Pages:        document.PageCount,
					Characters:   document.CharCount,
					Message: fmt.Sprintf("Document loaded successfully. Contains %d characters and %d pages.",
						document.CharCount, document.PageCount),
				},
			})
			return
		}
	}
}
