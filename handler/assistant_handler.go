package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/docassist/docassist-be/service"
	"github.com/docassist/docassist-be/types"
)

type AssistantHandler struct {
	assistant   *service.AssistantService
	fileService *service.FileService
	reporter    service.ProgressReporter
}

func NewAssistantHandler(assistant *service.AssistantService, fileService *service.FileService, reporter service.ProgressReporter) *AssistantHandler {
	return &AssistantHandler{
		assistant:   assistant,
		fileService: fileService,
		reporter:    reporter,
	}
}

// HandleSummarize runs the summarization pipeline over the session's
// document. Progress is pushed through the websocket hub while the request is
// in flight; the final summary comes back in the response body.
func (h *AssistantHandler) HandleSummarize(c *gin.Context) {
	var req types.SummarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "Invalid request body",
		})
		return
	}

	session, ok := h.assistant.GetSession(req.SessionID)
	if !ok {
		c.JSON(http.StatusNotFound, types.DataResponse{
			Status:  false,
			Message: "Session not found",
		})
		return
	}

	summary := h.assistant.GenerateSummary(c.Request.Context(), session, h.reporter)
	c.JSON(http.StatusOK, types.DataResponse{
		Status: true,
		Data: types.SummaryResponse{
			Summary: summary,
		},
	})
}

// HandleAsk answers one question about the session's document.
func (h *AssistantHandler) HandleAsk(c *gin.Context) {
	var req types.AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "Invalid request body",
		})
		return
	}

	session, ok := h.assistant.GetSession(req.SessionID)
	if !ok {
		c.JSON(http.StatusNotFound, types.DataResponse{
			Status:  false,
			Message: "Session not found",
		})
		return
	}

	answer := h.assistant.AnswerQuestion(c.Request.Context(), session, req.Question, h.reporter)
	c.JSON(http.StatusOK, types.DataResponse{
		Status: true,
		Data: types.AnswerResponse{
			Question: req.Question,
			Answer:   answer,
		},
	})
}

// HandleHistory lists the session's answered questions, oldest first.
func (h *AssistantHandler) HandleHistory(c *gin.Context) {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "session_id parameter is required",
		})
		return
	}

	entries, err := h.assistant.History(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.DataResponse{
			Status:  false,
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, types.DataResponse{
		Status: true,
		Data: types.HistoryResponse{
			Entries: entries,
		},
	})
}

// HandleExport writes the session's generated summary to a downloadable text
// file.
func (h *AssistantHandler) HandleExport(c *gin.Context) {
	var req types.ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "Invalid request body",
		})
		return
	}

	session, ok := h.assistant.GetSession(req.SessionID)
	if !ok {
		c.JSON(http.StatusNotFound, types.DataResponse{
			Status:  false,
			Message: "Session not found",
		})
		return
	}
	if session.Summary == "" {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "No summary generated for this session yet",
		})
		return
	}

	fileName := req.FileName
	if fileName == "" {
		fileName = "summary.txt"
	}
	path, err := h.fileService.ExportResult(session.Summary, fileName)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.DataResponse{
			Status:  false,
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, types.DataResponse{
		Status: true,
		Data:   gin.H{"path": path},
	})
}
