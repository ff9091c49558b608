// Package annotation models user-drawn highlight and comment regions over a
// displayed document, together with the pointer gesture state that creates them.
package annotation

import "docforensics/internal/domain"

// Kind is the type of a stored annotation.
type Kind string

const (
	KindHighlight Kind = "highlight"
	KindComment   Kind = "comment"
)

// Tool is the viewer's active pointer tool.
type Tool string

const (
	ToolMove      Tool = "move"
	ToolHighlight Tool = "highlight"
	ToolComment   Tool = "comment"
)

// ParseTool validates a tool name.
func ParseTool(s string) (Tool, error) {
	switch t := Tool(s); t {
	case ToolMove, ToolHighlight, ToolComment:
		return t, nil
	}
	return "", domain.ErrInvalidTool
}

// Kind returns the annotation kind a selection tool creates.
func (t Tool) Kind() (Kind, bool) {
	switch t {
	case ToolHighlight:
		return KindHighlight, true
	case ToolComment:
		return KindComment, true
	}
	return "", false
}

// Annotation colors (RGBA hex, half transparent).
const (
	HighlightColor = "#ffff0080"
	CommentColor   = "#ff000080"
)

// MinSelectionSize is the on-screen size, in device-independent pixels, that
// both sides of a selection must exceed to become an annotation.
const MinSelectionSize = 5.0

// Point is a pointer position.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Annotation is a region drawn over the document. Coordinates are relative
// to the unscaled document content box.
type Annotation struct {
	ID     string  `json:"id"`
	Kind   Kind    `json:"kind"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Color  string  `json:"color"`
	Text   string  `json:"text,omitempty"`
}

// Rect returns the annotation's stored region.
func (a Annotation) Rect() Rect {
	return Rect{X: a.X, Y: a.Y, Width: a.Width, Height: a.Height}
}

func colorFor(k Kind) string {
	if k == KindComment {
		return CommentColor
	}
	return HighlightColor
}
