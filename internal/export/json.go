package export

import (
	"encoding/json"

	"docforensics/internal/domain"
)

// Envelope wraps a result with its report metadata, as downloaded.
func Envelope(a *domain.Analysis) domain.ReportEnvelope {
	return domain.ReportEnvelope{
		Analysis:    a.Result,
		GeneratedAt: a.GeneratedAt.UTC(),
		ReportID:    a.ReportID,
	}
}

// JSON renders the report envelope as indented JSON.
func JSON(a *domain.Analysis) ([]byte, error) {
	return json.MarshalIndent(Envelope(a), "", "  ")
}
