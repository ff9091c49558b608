package handler_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"docforensics/internal/domain"
	"docforensics/internal/handler"
	"docforensics/internal/service"
	"docforensics/mocks"
)

func uploadContext(t *testing.T, name string, data []byte) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	body, contentType := multipartBody(t, "file", name, data)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/analyses", body)
	c.Request.Header.Set("Content-Type", contentType)
	return c, w
}

func TestAnalysisHandler_Create_Success(t *testing.T) {
	svc := new(mocks.MockAnalysisService)
	h := handler.NewAnalysisHandler(svc, 1<<20)

	svc.On("Ready").Return(nil)
	svc.On("Analyze", mock.Anything, mock.MatchedBy(func(in service.AnalyzeInput) bool {
		return in.FileName == "invoice.png" && string(in.Data) == "png-bytes"
	})).Return(sampleAnalysis(), nil)

	c, w := uploadContext(t, "invoice.png", []byte("png-bytes"))
	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	var got domain.Analysis
	decodeData(t, w, &got)
	assert.Equal(t, "FR-1791970200000", got.ReportID)
	assert.Equal(t, 35, got.Result.RiskAssessment.FraudScore)
	svc.AssertExpectations(t)
}

func TestAnalysisHandler_Create_NoFile(t *testing.T) {
	svc := new(mocks.MockAnalysisService)
	h := handler.NewAnalysisHandler(svc, 1<<20)
	svc.On("Ready").Return(nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/analyses", http.NoBody)

	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decode(t, w)
	assert.False(t, resp.Success)
	assert.Equal(t, "MISSING_FILE", resp.Error.Code)
	svc.AssertNotCalled(t, "Analyze", mock.Anything, mock.Anything)
}

func TestAnalysisHandler_Create_NotConfigured(t *testing.T) {
	svc := new(mocks.MockAnalysisService)
	h := handler.NewAnalysisHandler(svc, 1<<20)
	svc.On("Ready").Return(domain.ErrClassifierNotConfigured)

	c, w := uploadContext(t, "invoice.png", []byte("png-bytes"))
	h.Create(c)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "CLASSIFIER_NOT_CONFIGURED", decode(t, w).Error.Code)
	svc.AssertNotCalled(t, "Analyze", mock.Anything, mock.Anything)
}

func TestAnalysisHandler_Create_ServiceErrors(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{fmt.Errorf("%w: %w", domain.ErrClassificationFailed, errors.New("timeout")), http.StatusBadGateway, "CLASSIFICATION_FAILED"},
		{domain.ErrAnalysisSuperseded, http.StatusConflict, "ANALYSIS_SUPERSEDED"},
		{domain.ErrUnsupportedFileType, http.StatusBadRequest, "UNSUPPORTED_FILE_TYPE"},
		{domain.ErrFileTooLarge, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE"},
		{domain.ErrInvalidDocument, http.StatusUnprocessableEntity, "INVALID_DOCUMENT"},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			svc := new(mocks.MockAnalysisService)
			h := handler.NewAnalysisHandler(svc, 1<<20)
			svc.On("Ready").Return(nil)
			svc.On("Analyze", mock.Anything, mock.Anything).Return(nil, tt.err)

			c, w := uploadContext(t, "invoice.png", []byte("png-bytes"))
			h.Create(c)

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.code, decode(t, w).Error.Code)
		})
	}
}

func TestAnalysisHandler_Create_BodyTooLarge(t *testing.T) {
	svc := new(mocks.MockAnalysisService)
	h := handler.NewAnalysisHandler(svc, 16)
	svc.On("Ready").Return(nil)

	c, w := uploadContext(t, "invoice.png", make([]byte, 2<<20))
	h.Create(c)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	svc.AssertNotCalled(t, "Analyze", mock.Anything, mock.Anything)
}

func TestAnalysisHandler_Current(t *testing.T) {
	svc := new(mocks.MockAnalysisService)
	h := handler.NewAnalysisHandler(svc, 0)
	svc.On("Current").Return(nil, domain.ErrNoAnalysis).Once()
	svc.On("Current").Return(sampleAnalysis(), nil).Once()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/analyses/current", http.NoBody)
	h.Current(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NO_ANALYSIS", decode(t, w).Error.Code)

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/analyses/current", http.NoBody)
	h.Current(c)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAnalysisHandler_Export(t *testing.T) {
	svc := new(mocks.MockAnalysisService)
	h := handler.NewAnalysisHandler(svc, 0)
	svc.On("Current").Return(sampleAnalysis(), nil)

	tests := []struct {
		query       string
		contentType string
		filename    string
	}{
		{"", "application/json", "forensic-report-FR-1791970200000.json"},
		{"?format=pdf", "application/pdf", "forensic-report-FR-1791970200000.pdf"},
		{"?format=CSV", "text/csv; charset=utf-8", "forensic-report-FR-1791970200000.csv"},
		{"?format=xlsx", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", "forensic-report-FR-1791970200000.xlsx"},
	}
	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/analyses/current/export"+tt.query, http.NoBody)

			h.Export(c)

			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.contentType, w.Header().Get("Content-Type"))
			assert.Contains(t, w.Header().Get("Content-Disposition"), tt.filename)
			assert.NotZero(t, w.Body.Len())
		})
	}
}

func TestAnalysisHandler_Export_Errors(t *testing.T) {
	svc := new(mocks.MockAnalysisService)
	h := handler.NewAnalysisHandler(svc, 0)
	svc.On("Current").Return(nil, domain.ErrNoAnalysis)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/analyses/current/export?format=docx", http.NoBody)
	h.Export(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "UNSUPPORTED_EXPORT_FORMAT", decode(t, w).Error.Code)

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/analyses/current/export?format=pdf", http.NoBody)
	h.Export(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAnalysisHandler_Score(t *testing.T) {
	h := handler.NewAnalysisHandler(new(mocks.MockAnalysisService), 0)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/analyses/score?fraud_score=35", http.NoBody)
	h.Score(c)

	require.Equal(t, http.StatusOK, w.Code)
	var got service.ScoreResult
	decodeData(t, w, &got)
	assert.Equal(t, domain.RiskLevelMedium, got.RiskLevel)
	assert.Equal(t, domain.DecisionReviewManually, got.FinalDecision)

	for _, q := range []string{"", "abc", "101", "-5"} {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/analyses/score?fraud_score="+q, http.NoBody)
		h.Score(c)
		assert.Equal(t, http.StatusBadRequest, w.Code, q)
		assert.Equal(t, "INVALID_FRAUD_SCORE", decode(t, w).Error.Code)
	}
}

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{domain.ErrClassifierNotConfigured, http.StatusServiceUnavailable},
		{domain.ErrClassificationFailed, http.StatusBadGateway},
		{domain.ErrAnalysisSuperseded, http.StatusConflict},
		{domain.ErrNoAnalysis, http.StatusNotFound},
		{domain.ErrSessionNotFound, http.StatusNotFound},
		{domain.ErrSessionLimitReached, http.StatusTooManyRequests},
		{domain.ErrNotFound, http.StatusNotFound},
		{domain.ErrUnsupportedFileType, http.StatusBadRequest},
		{domain.ErrFileTooLarge, http.StatusRequestEntityTooLarge},
		{domain.ErrInvalidDocument, http.StatusUnprocessableEntity},
		{domain.ErrUnsupportedExportFormat, http.StatusBadRequest},
		{domain.ErrInvalidTool, http.StatusBadRequest},
		{domain.ErrInvalidFraudScore, http.StatusBadRequest},
		{domain.ErrInvalidStorageReference, http.StatusBadRequest},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		status, code, msg := handler.MapDomainError(fmt.Errorf("wrapped: %w", tt.err))
		assert.Equal(t, tt.status, status, tt.err.Error())
		assert.NotEmpty(t, code)
		assert.NotEmpty(t, msg)
	}
}
