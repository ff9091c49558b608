package handler

import "docforensics/internal/annotation"

// Swagger type definitions for API documentation.
// These types are used by swag to generate OpenAPI documentation.

// --- Request Types ---

// PointerRequest is a pointer position in viewport pixels. Tool optionally
// switches the active tool before a pointer-down.
type PointerRequest struct {
	X    float64 `json:"x" example:"120"`
	Y    float64 `json:"y" example:"80"`
	Tool string  `json:"tool,omitempty" example:"highlight"`
}

// ToolRequest selects the active viewer tool.
type ToolRequest struct {
	Tool string `json:"tool" binding:"required" example:"comment"`
}

// ZoomRequest sets the zoom percentage, or steps it when Step is "in" or "out".
type ZoomRequest struct {
	Zoom *int   `json:"zoom,omitempty" example:"150"`
	Step string `json:"step,omitempty" example:"in"`
}

// TextRequest carries comment text.
type TextRequest struct {
	Text string `json:"text" example:"Total does not match line items"`
}

// --- Response Types ---

// SessionResponse is returned when a viewer session is opened.
type SessionResponse struct {
	SessionID string              `json:"session_id" example:"3f2a9c1e-6b1d-4f0e-9a55-1d2c3b4a5f60"`
	Viewer    annotation.Snapshot `json:"viewer"`
}

// CommitResponse is returned when a pointer gesture ends.
type CommitResponse struct {
	Created    bool                   `json:"created"`
	Annotation *annotation.Annotation `json:"annotation,omitempty"`
	Viewer     annotation.Snapshot    `json:"viewer"`
}

// AnnotationView is an annotation with its on-screen rectangle for the current view.
type AnnotationView struct {
	annotation.Annotation
	Screen annotation.Rect `json:"screen"`
}

// AnnotationsResponse lists a session's annotations.
type AnnotationsResponse struct {
	Version     uint64           `json:"version"`
	Annotations []AnnotationView `json:"annotations"`
}

// Response wraps a successful response with data.
type Response struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponseBody wraps an error response.
type ErrorResponseBody struct {
	Success bool      `json:"success" example:"false"`
	Error   *APIError `json:"error"`
}
