package models

// SummaryRequest is the request body sent to the summarization service.
type SummaryRequest struct {
	NoteContent string `json:"noteContent"`
}

// SummaryResponse is the summarization service reply.
type SummaryResponse struct {
	Summary string `json:"summary"`
}
