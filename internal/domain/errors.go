package domain

import "errors"

var (
	ErrNotFound                = errors.New("resource not found")
	ErrUnsupportedFileType     = errors.New("unsupported file type")
	ErrFileTooLarge            = errors.New("file exceeds maximum allowed size")
	ErrInvalidDocument         = errors.New("document could not be read")
	ErrClassifierNotConfigured = errors.New("document classifier is not configured")
	ErrClassificationFailed    = errors.New("document classification failed")
	ErrAnalysisSuperseded      = errors.New("analysis superseded by a newer upload")
	ErrNoAnalysis              = errors.New("no analysis available")
	ErrUnsupportedExportFormat = errors.New("unsupported export format")
	ErrSessionNotFound         = errors.New("viewer session not found")
	ErrSessionLimitReached     = errors.New("viewer session limit reached")
	ErrInvalidTool             = errors.New("invalid annotation tool")
	ErrInvalidFraudScore       = errors.New("fraud score must be between 0 and 100")
	ErrInvalidStorageReference = errors.New("invalid object storage reference")
)
