package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"docforensics/internal/domain"
	"docforensics/internal/export"
	"docforensics/internal/service"
)

// multipartOverhead is the allowance for form boundaries and headers on top of the file itself.
const multipartOverhead = 1 << 20

// AnalysisHandler handles document upload, report and export endpoints.
type AnalysisHandler struct {
	analysisService service.AnalysisService
	maxFileSize     int64
}

// NewAnalysisHandler creates a new AnalysisHandler. maxFileSize bounds the
// number of upload bytes read before the intake check rejects the file.
func NewAnalysisHandler(analysisService service.AnalysisService, maxFileSize int64) *AnalysisHandler {
	return &AnalysisHandler{analysisService: analysisService, maxFileSize: maxFileSize}
}

// Create handles POST /api/v1/analyses
// @Summary Analyze a document
// @Description Upload an invoice or receipt (PDF, JPG, PNG) and classify it. The result replaces the current analysis.
// @Tags analyses
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Document to analyze"
// @Success 201 {object} Response{data=domain.Analysis} "Analysis completed"
// @Failure 400 {object} ErrorResponseBody "Missing file or unsupported type"
// @Failure 409 {object} ErrorResponseBody "Superseded by a newer upload"
// @Failure 413 {object} ErrorResponseBody "File too large"
// @Failure 422 {object} ErrorResponseBody "Damaged document or too many pages"
// @Failure 502 {object} ErrorResponseBody "Classifier call failed"
// @Failure 503 {object} ErrorResponseBody "Classifier not configured"
// @Router /analyses [post]
func (h *AnalysisHandler) Create(c *gin.Context) {
	if err := h.analysisService.Ready(); err != nil {
		HandleError(c, err)
		return
	}

	if h.maxFileSize > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxFileSize+multipartOverhead)
	}
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			HandleError(c, domain.ErrFileTooLarge)
			return
		}
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}
	defer func() { _ = file.Close() }()

	var r io.Reader = file
	if h.maxFileSize > 0 {
		r = io.LimitReader(file, h.maxFileSize+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "UNREADABLE_FILE", "uploaded file could not be read")
		return
	}

	analysis, err := h.analysisService.Analyze(c.Request.Context(), service.AnalyzeInput{
		FileName: header.Filename,
		Data:     data,
	})
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, analysis)
}

// Current handles GET /api/v1/analyses/current
// @Summary Get the current analysis
// @Tags analyses
// @Produce json
// @Success 200 {object} Response{data=domain.Analysis} "Current analysis"
// @Failure 404 {object} ErrorResponseBody "Nothing analyzed yet"
// @Router /analyses/current [get]
func (h *AnalysisHandler) Current(c *gin.Context) {
	analysis, err := h.analysisService.Current()
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, analysis)
}

// Export handles GET /api/v1/analyses/current/export
// @Summary Download the current report
// @Description Render the current analysis as a JSON, PDF, XLSX or CSV download.
// @Tags analyses
// @Produce application/json,application/pdf,text/csv
// @Param format query string false "Export format" Enums(json, pdf, xlsx, csv) default(json)
// @Success 200 {file} file "Report file"
// @Failure 400 {object} ErrorResponseBody "Unsupported format"
// @Failure 404 {object} ErrorResponseBody "Nothing analyzed yet"
// @Router /analyses/current/export [get]
func (h *AnalysisHandler) Export(c *gin.Context) {
	format, err := export.ParseFormat(c.DefaultQuery("format", string(domain.ExportFormatJSON)))
	if err != nil {
		HandleError(c, err)
		return
	}

	analysis, err := h.analysisService.Current()
	if err != nil {
		HandleError(c, err)
		return
	}

	f, err := export.Render(analysis, format)
	if err != nil {
		HandleError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", f.Name))
	c.Data(http.StatusOK, f.ContentType, f.Body)
}

// Score handles GET /api/v1/analyses/score
// @Summary Map a fraud score to its risk level
// @Tags analyses
// @Produce json
// @Param fraud_score query int true "Fraud score (0-100)"
// @Success 200 {object} Response{data=service.ScoreResult} "Risk level and decision"
// @Failure 400 {object} ErrorResponseBody "Score missing or out of range"
// @Router /analyses/score [get]
func (h *AnalysisHandler) Score(c *gin.Context) {
	score, err := strconv.Atoi(c.Query("fraud_score"))
	if err != nil {
		HandleError(c, domain.ErrInvalidFraudScore)
		return
	}
	result, err := service.ScoreToRisk(score)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, result)
}
