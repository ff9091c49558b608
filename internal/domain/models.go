package domain

import "time"

// Analysis is one completed classification run over an uploaded document.
// It is built once and never modified; a new upload replaces it wholesale.
type Analysis struct {
	ReportID       string         `json:"report_id"`
	Generation     uint64         `json:"generation"`
	FileName       string         `json:"file_name"`
	ContentType    string         `json:"content_type"`
	PageCount      int            `json:"page_count,omitempty"`
	ModelUsed      string         `json:"model_used"`
	SecondaryModel string         `json:"secondary_model,omitempty"`
	GeneratedAt    time.Time      `json:"generated_at"`
	Result         ForensicResult `json:"result"`
	Warnings       []string       `json:"warnings,omitempty"`
}

// ReportEnvelope is the shape of the JSON export download.
type ReportEnvelope struct {
	Analysis    ForensicResult `json:"analysis"`
	GeneratedAt time.Time      `json:"generated_at"`
	ReportID    string         `json:"report_id"`
}

// Document is an uploaded file awaiting classification.
type Document struct {
	FileName    string
	ContentType string
	Bytes       []byte
}
