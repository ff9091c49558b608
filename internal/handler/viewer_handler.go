package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"docforensics/internal/annotation"
	"docforensics/internal/domain"
	"docforensics/internal/service"
)

// ViewerHandler exposes in-memory document viewer sessions.
type ViewerHandler struct {
	viewerService service.ViewerService
}

// NewViewerHandler creates a new ViewerHandler.
func NewViewerHandler(viewerService service.ViewerService) *ViewerHandler {
	return &ViewerHandler{viewerService: viewerService}
}

// Open handles POST /api/v1/viewer/sessions
// @Summary Open a viewer session
// @Tags viewer
// @Produce json
// @Success 201 {object} Response{data=SessionResponse} "Session opened"
// @Failure 429 {object} ErrorResponseBody "Too many sessions"
// @Router /viewer/sessions [post]
func (h *ViewerHandler) Open(c *gin.Context) {
	id, v, err := h.viewerService.Open()
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, SessionResponse{SessionID: id, Viewer: v.Snapshot()})
}

// Get handles GET /api/v1/viewer/sessions/:id
// @Summary Get viewer state
// @Tags viewer
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} Response{data=annotation.Snapshot} "Viewer state"
// @Failure 404 {object} ErrorResponseBody "Session not found"
// @Router /viewer/sessions/{id} [get]
func (h *ViewerHandler) Get(c *gin.Context) {
	v, ok := h.session(c)
	if !ok {
		return
	}
	RespondOK(c, v.Snapshot())
}

// Close handles DELETE /api/v1/viewer/sessions/:id
// @Summary Close a viewer session
// @Description Closing discards every annotation in the session.
// @Tags viewer
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} Response "Session closed"
// @Failure 404 {object} ErrorResponseBody "Session not found"
// @Router /viewer/sessions/{id} [delete]
func (h *ViewerHandler) Close(c *gin.Context) {
	if err := h.viewerService.Close(c.Param("id")); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "session closed"})
}

// PointerDown handles POST /api/v1/viewer/sessions/:id/pointer/down
// @Summary Start a pointer gesture
// @Description Starts a selection (highlight, comment) or a pan (move) at the given point.
// @Tags viewer
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param body body PointerRequest true "Pointer position"
// @Success 200 {object} Response{data=annotation.Snapshot} "Viewer state"
// @Failure 400 {object} ErrorResponseBody "Invalid request or tool"
// @Failure 404 {object} ErrorResponseBody "Session not found"
// @Router /viewer/sessions/{id}/pointer/down [post]
func (h *ViewerHandler) PointerDown(c *gin.Context) {
	v, ok := h.session(c)
	if !ok {
		return
	}
	var req PointerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	p := annotation.Point{X: req.X, Y: req.Y}
	var err error
	if req.Tool != "" {
		err = v.Begin(annotation.Tool(req.Tool), p)
	} else {
		err = v.PointerDown(p)
	}
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, v.Snapshot())
}

// PointerMove handles POST /api/v1/viewer/sessions/:id/pointer/move
// @Summary Move the pointer
// @Tags viewer
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param body body PointerRequest true "Pointer position"
// @Success 200 {object} Response{data=annotation.Snapshot} "Viewer state"
// @Failure 404 {object} ErrorResponseBody "Session not found"
// @Router /viewer/sessions/{id}/pointer/move [post]
func (h *ViewerHandler) PointerMove(c *gin.Context) {
	v, ok := h.session(c)
	if !ok {
		return
	}
	var req PointerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	v.Update(annotation.Point{X: req.X, Y: req.Y})
	RespondOK(c, v.Snapshot())
}

// PointerUp handles POST /api/v1/viewer/sessions/:id/pointer/up
// @Summary End a pointer gesture
// @Description Commits the selection as an annotation when it is large enough.
// @Tags viewer
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} Response{data=CommitResponse} "Gesture result"
// @Failure 404 {object} ErrorResponseBody "Session not found"
// @Router /viewer/sessions/{id}/pointer/up [post]
func (h *ViewerHandler) PointerUp(c *gin.Context) {
	v, ok := h.session(c)
	if !ok {
		return
	}
	resp := CommitResponse{}
	if a, created := v.Commit(); created {
		resp.Created = true
		resp.Annotation = &a
	}
	resp.Viewer = v.Snapshot()
	RespondOK(c, resp)
}

// PointerCancel handles POST /api/v1/viewer/sessions/:id/pointer/cancel
// @Summary Abandon the pointer gesture
// @Tags viewer
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} Response{data=annotation.Snapshot} "Viewer state"
// @Failure 404 {object} ErrorResponseBody "Session not found"
// @Router /viewer/sessions/{id}/pointer/cancel [post]
func (h *ViewerHandler) PointerCancel(c *gin.Context) {
	v, ok := h.session(c)
	if !ok {
		return
	}
	v.Cancel()
	RespondOK(c, v.Snapshot())
}

// SetTool handles PUT /api/v1/viewer/sessions/:id/tool
// @Summary Select the active tool
// @Tags viewer
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param body body ToolRequest true "Tool"
// @Success 200 {object} Response{data=annotation.Snapshot} "Viewer state"
// @Failure 400 {object} ErrorResponseBody "Invalid tool"
// @Failure 404 {object} ErrorResponseBody "Session not found"
// @Router /viewer/sessions/{id}/tool [put]
func (h *ViewerHandler) SetTool(c *gin.Context) {
	v, ok := h.session(c)
	if !ok {
		return
	}
	var req ToolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	if err := v.SetTool(annotation.Tool(req.Tool)); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, v.Snapshot())
}

// SetZoom handles PUT /api/v1/viewer/sessions/:id/zoom
// @Summary Change the zoom
// @Description Sets the zoom percentage (clamped to 25-300) or steps it by 25 with step "in" or "out".
// @Tags viewer
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param body body ZoomRequest true "Zoom"
// @Success 200 {object} Response{data=annotation.Snapshot} "Viewer state"
// @Failure 400 {object} ErrorResponseBody "Invalid request"
// @Failure 404 {object} ErrorResponseBody "Session not found"
// @Router /viewer/sessions/{id}/zoom [put]
func (h *ViewerHandler) SetZoom(c *gin.Context) {
	v, ok := h.session(c)
	if !ok {
		return
	}
	var req ZoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	switch {
	case req.Zoom != nil:
		v.SetZoom(*req.Zoom)
	case req.Step == "in":
		v.ZoomIn()
	case req.Step == "out":
		v.ZoomOut()
	default:
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "zoom or step (in, out) is required")
		return
	}
	RespondOK(c, v.Snapshot())
}

// Rotate handles POST /api/v1/viewer/sessions/:id/rotate
// @Summary Rotate the view a quarter turn
// @Tags viewer
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} Response{data=annotation.Snapshot} "Viewer state"
// @Failure 404 {object} ErrorResponseBody "Session not found"
// @Router /viewer/sessions/{id}/rotate [post]
func (h *ViewerHandler) Rotate(c *gin.Context) {
	v, ok := h.session(c)
	if !ok {
		return
	}
	v.Rotate()
	RespondOK(c, v.Snapshot())
}

// SetComment handles PUT /api/v1/viewer/sessions/:id/comment
// @Summary Set the text for the next comment
// @Tags viewer
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param body body TextRequest true "Comment text"
// @Success 200 {object} Response{data=annotation.Snapshot} "Viewer state"
// @Failure 404 {object} ErrorResponseBody "Session not found"
// @Router /viewer/sessions/{id}/comment [put]
func (h *ViewerHandler) SetComment(c *gin.Context) {
	v, ok := h.session(c)
	if !ok {
		return
	}
	var req TextRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	v.SetPendingText(req.Text)
	RespondOK(c, v.Snapshot())
}

// ListAnnotations handles GET /api/v1/viewer/sessions/:id/annotations
// @Summary List annotations
// @Description Returns stored annotations with their on-screen rectangles for the current zoom and pan.
// @Tags viewer
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} Response{data=AnnotationsResponse} "Annotations"
// @Failure 404 {object} ErrorResponseBody "Session not found"
// @Router /viewer/sessions/{id}/annotations [get]
func (h *ViewerHandler) ListAnnotations(c *gin.Context) {
	v, ok := h.session(c)
	if !ok {
		return
	}
	items, version := v.Annotations().List()
	views := make([]AnnotationView, 0, len(items))
	for _, a := range items {
		views = append(views, AnnotationView{Annotation: a, Screen: v.ScreenRect(a)})
	}
	RespondOK(c, AnnotationsResponse{Version: version, Annotations: views})
}

// EditAnnotation handles PATCH /api/v1/viewer/sessions/:id/annotations/:annotationID
// @Summary Edit a comment's text
// @Tags viewer
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param annotationID path string true "Annotation ID"
// @Param body body TextRequest true "Comment text"
// @Success 200 {object} Response{data=annotation.Annotation} "Updated comment"
// @Failure 404 {object} ErrorResponseBody "Session or comment not found"
// @Router /viewer/sessions/{id}/annotations/{annotationID} [patch]
func (h *ViewerHandler) EditAnnotation(c *gin.Context) {
	v, ok := h.session(c)
	if !ok {
		return
	}
	var req TextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	id := c.Param("annotationID")
	if !v.EditText(id, req.Text) {
		if _, exists := v.Annotations().Get(id); !exists {
			HandleError(c, domain.ErrNotFound)
			return
		}
	}
	a, _ := v.Annotations().Get(id)
	RespondOK(c, a)
}

// DeleteAnnotation handles DELETE /api/v1/viewer/sessions/:id/annotations/:annotationID
// @Summary Delete an annotation
// @Tags viewer
// @Produce json
// @Param id path string true "Session ID"
// @Param annotationID path string true "Annotation ID"
// @Success 200 {object} Response "Annotation deleted"
// @Failure 404 {object} ErrorResponseBody "Session or annotation not found"
// @Router /viewer/sessions/{id}/annotations/{annotationID} [delete]
func (h *ViewerHandler) DeleteAnnotation(c *gin.Context) {
	v, ok := h.session(c)
	if !ok {
		return
	}
	if !v.Remove(c.Param("annotationID")) {
		HandleError(c, domain.ErrNotFound)
		return
	}
	RespondOK(c, gin.H{"message": "annotation deleted"})
}

// session resolves the :id path parameter. It writes the error response and
// returns false when the session does not exist.
func (h *ViewerHandler) session(c *gin.Context) (*annotation.Viewer, bool) {
	v, err := h.viewerService.Get(c.Param("id"))
	if err != nil {
		HandleError(c, err)
		return nil, false
	}
	return v, true
}
