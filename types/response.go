package types

type DataResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type UploadResponse struct {
	SessionID    string `json:"session_id"`
	OriginalName string `json:"original_name,omitempty"`
	Pages        int    `json:"pages"`
	Characters   int    `json:"characters"`
	Message      string `json:"message"`
}

type SummaryResponse struct {
	Summary string `json:"summary"`
}

type AnswerResponse struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type HistoryResponse struct {
	Entries []*ConversationEntry `json:"entries"`
}

type ProcessingStatus struct {
	Status          string  `json:"status"`
	Message         string  `json:"message"`
	Progress        float64 `json:"progress"`
	TotalChunks     int     `json:"total_chunks,omitempty"`
	ProcessedChunks int     `json:"processed_chunks,omitempty"`
}
