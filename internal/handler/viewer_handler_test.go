package handler_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docforensics/internal/annotation"
	"docforensics/internal/handler"
	"docforensics/internal/router"
	"docforensics/internal/service"
	"docforensics/mocks"
)

func newViewerRouter(maxSessions int) *gin.Engine {
	analysis := new(mocks.MockAnalysisService)
	return router.Setup(
		[]string{"http://localhost:5173"},
		handler.NewHealthHandler(analysis),
		handler.NewAnalysisHandler(analysis, 0),
		handler.NewViewerHandler(service.NewViewerService(maxSessions)),
	)
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func openSession(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := serve(r, jsonRequest(http.MethodPost, "/api/v1/viewer/sessions", nil))
	require.Equal(t, http.StatusCreated, w.Code)
	var resp handler.SessionResponse
	decodeData(t, w, &resp)
	require.NotEmpty(t, resp.SessionID)
	assert.Equal(t, annotation.ToolMove, resp.Viewer.Tool)
	assert.Equal(t, 100, resp.Viewer.Zoom)
	return resp.SessionID
}

func TestViewer_CommentGesture(t *testing.T) {
	r := newViewerRouter(0)
	id := openSession(t, r)
	base := "/api/v1/viewer/sessions/" + id

	w := serve(r, jsonRequest(http.MethodPut, base+"/comment", handler.TextRequest{Text: "Check this total"}))
	require.Equal(t, http.StatusOK, w.Code)

	w = serve(r, jsonRequest(http.MethodPost, base+"/pointer/down", handler.PointerRequest{X: 10, Y: 10, Tool: "comment"}))
	require.Equal(t, http.StatusOK, w.Code)
	var snap annotation.Snapshot
	decodeData(t, w, &snap)
	assert.Equal(t, "selecting", snap.State)

	w = serve(r, jsonRequest(http.MethodPost, base+"/pointer/move", handler.PointerRequest{X: 60, Y: 40}))
	require.Equal(t, http.StatusOK, w.Code)

	w = serve(r, jsonRequest(http.MethodPost, base+"/pointer/up", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var commit handler.CommitResponse
	decodeData(t, w, &commit)
	require.True(t, commit.Created)
	a := commit.Annotation
	assert.Equal(t, annotation.KindComment, a.Kind)
	assert.Equal(t, annotation.CommentColor, a.Color)
	assert.Equal(t, "Check this total", a.Text)
	assert.Equal(t, annotation.Rect{X: 10, Y: 10, Width: 50, Height: 30}, a.Rect())
	assert.Equal(t, "idle", commit.Viewer.State)

	w = serve(r, jsonRequest(http.MethodPatch, base+"/annotations/"+a.ID, handler.TextRequest{Text: "Edited"}))
	require.Equal(t, http.StatusOK, w.Code)
	var edited annotation.Annotation
	decodeData(t, w, &edited)
	assert.Equal(t, "Edited", edited.Text)

	w = serve(r, jsonRequest(http.MethodDelete, base+"/annotations/"+a.ID, nil))
	assert.Equal(t, http.StatusOK, w.Code)
	w = serve(r, jsonRequest(http.MethodDelete, base+"/annotations/"+a.ID, nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestViewer_SmallSelectionDiscarded(t *testing.T) {
	r := newViewerRouter(0)
	base := "/api/v1/viewer/sessions/" + openSession(t, r)

	serve(r, jsonRequest(http.MethodPost, base+"/pointer/down", handler.PointerRequest{X: 10, Y: 10, Tool: "highlight"}))
	serve(r, jsonRequest(http.MethodPost, base+"/pointer/move", handler.PointerRequest{X: 14, Y: 30}))
	w := serve(r, jsonRequest(http.MethodPost, base+"/pointer/up", nil))

	var commit handler.CommitResponse
	decodeData(t, w, &commit)
	assert.False(t, commit.Created)
	assert.Nil(t, commit.Annotation)
	assert.Empty(t, commit.Viewer.Annotations)
}

func TestViewer_ZoomAndAnnotationScreenRects(t *testing.T) {
	r := newViewerRouter(0)
	base := "/api/v1/viewer/sessions/" + openSession(t, r)

	serve(r, jsonRequest(http.MethodPost, base+"/pointer/down", handler.PointerRequest{X: 0, Y: 0, Tool: "highlight"}))
	serve(r, jsonRequest(http.MethodPost, base+"/pointer/move", handler.PointerRequest{X: 40, Y: 20}))
	serve(r, jsonRequest(http.MethodPost, base+"/pointer/up", nil))

	w := serve(r, jsonRequest(http.MethodPut, base+"/zoom", map[string]int{"zoom": 200}))
	require.Equal(t, http.StatusOK, w.Code)

	w = serve(r, jsonRequest(http.MethodGet, base+"/annotations", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var list handler.AnnotationsResponse
	decodeData(t, w, &list)
	require.Len(t, list.Annotations, 1)
	assert.Equal(t, annotation.Rect{Width: 40, Height: 20}, list.Annotations[0].Rect())
	assert.Equal(t, annotation.Rect{Width: 80, Height: 40}, list.Annotations[0].Screen)

	w = serve(r, jsonRequest(http.MethodPut, base+"/zoom", map[string]string{"step": "in"}))
	var snap annotation.Snapshot
	decodeData(t, w, &snap)
	assert.Equal(t, 225, snap.Zoom)

	w = serve(r, jsonRequest(http.MethodPut, base+"/zoom", map[string]int{"zoom": 1000}))
	decodeData(t, w, &snap)
	assert.Equal(t, annotation.ZoomMax, snap.Zoom)

	w = serve(r, jsonRequest(http.MethodPut, base+"/zoom", map[string]string{}))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = serve(r, jsonRequest(http.MethodPost, base+"/rotate", nil))
	decodeData(t, w, &snap)
	assert.Equal(t, 90, snap.Rotation)
}

func TestViewer_InvalidToolAndUnknownSession(t *testing.T) {
	r := newViewerRouter(0)
	base := "/api/v1/viewer/sessions/" + openSession(t, r)

	w := serve(r, jsonRequest(http.MethodPut, base+"/tool", handler.ToolRequest{Tool: "eraser"}))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_TOOL", decode(t, w).Error.Code)

	w = serve(r, jsonRequest(http.MethodGet, "/api/v1/viewer/sessions/nope", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "SESSION_NOT_FOUND", decode(t, w).Error.Code)
}

func TestViewer_CloseDiscardsSession(t *testing.T) {
	r := newViewerRouter(1)
	id := openSession(t, r)

	w := serve(r, jsonRequest(http.MethodPost, "/api/v1/viewer/sessions", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	w = serve(r, jsonRequest(http.MethodDelete, fmt.Sprintf("/api/v1/viewer/sessions/%s", id), nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(r, jsonRequest(http.MethodGet, "/api/v1/viewer/sessions/"+id, nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	openSession(t, r)
}

func TestRouter_HealthAndCORS(t *testing.T) {
	r := newViewerRouter(0)

	req, _ := http.NewRequest(http.MethodGet, "/healthz", http.NoBody)
	req.Header.Set("Origin", "http://localhost:5173")
	w := serve(r, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
