package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"docforensics/internal/domain"
	"docforensics/internal/handler"
	"docforensics/mocks"
)

func TestHealthHandler(t *testing.T) {
	svc := new(mocks.MockAnalysisService)
	svc.On("Ready").Return(domain.ErrClassifierNotConfigured).Once()
	svc.On("Ready").Return(nil).Once()
	h := handler.NewHealthHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	h.Liveness(c)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	h.Readiness(c)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "not configured")

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	h.Readiness(c)
	assert.Equal(t, http.StatusOK, w.Code)
}
