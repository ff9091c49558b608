package service

import (
	"bytes"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"docforensics/internal/config"
	"docforensics/internal/domain"
)

// IntakeResult describes an accepted document.
type IntakeResult struct {
	FileType    domain.FileType
	ContentType string
	PageCount   int
}

// Inspect validates an uploaded document before it is sent to the classifier:
// the extension (when present) and the sniffed content type must both be an
// allowed type, the size must be within limits, and PDFs must parse and stay
// under the page limit.
func Inspect(fileName string, data []byte, cfg config.IntakeConfig) (*IntakeResult, error) {
	if ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(fileName), ".")); ext != "" {
		if _, ok := domain.AllowedExtensions[ext]; !ok {
			return nil, domain.ErrUnsupportedFileType
		}
	}

	if limit := cfg.MaxFileSizeBytes(); limit > 0 && int64(len(data)) > limit {
		return nil, domain.ErrFileTooLarge
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: file is empty", domain.ErrInvalidDocument)
	}

	// Magic bytes decide the content type; the extension is only a filter.
	detected := http.DetectContentType(data[:min(len(data), 512)])
	fileType, ok := domain.AllowedContentTypes[detected]
	if !ok {
		return nil, domain.ErrUnsupportedFileType
	}

	res := &IntakeResult{FileType: fileType, ContentType: detected}
	if fileType != domain.FileTypePDF {
		return res, nil
	}

	pages, err := countPages(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidDocument, err)
	}
	if cfg.MaxPDFPages > 0 && pages > cfg.MaxPDFPages {
		return nil, fmt.Errorf("%w: %d pages exceeds the limit of %d", domain.ErrInvalidDocument, pages, cfg.MaxPDFPages)
	}
	res.PageCount = pages
	return res, nil
}

func countPages(data []byte) (n int, err error) {
	// pdfcpu can panic on badly damaged files.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("reading pdf: %v", r)
		}
	}()
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return api.PageCount(bytes.NewReader(data), conf)
}
