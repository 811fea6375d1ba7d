package types

type UploadRequest struct {
	Title  string `json:"title"`
	Source string `json:"source"`
}

type SummarizeRequest struct {
	SessionID string `json:"session_id"`
}

type AskRequest struct {
	SessionID string `json:"session_id"`
	Question  string `json:"question"`
}

type ExportRequest struct {
	SessionID string `json:"session_id"`
	FileName  string `json:"file_name"`
}
