package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"docforensics/internal/config"
	"docforensics/internal/domain"
	"docforensics/internal/forensic"
	"docforensics/internal/logging"
	"docforensics/internal/port"
)

// WarningUndecodable is attached when the classifier answered with nothing usable.
const WarningUndecodable = "classifier response could not be decoded; all sections show inconclusive defaults"

// WarningPrimaryUndecodable is attached when only the secondary classifier answer was usable.
const WarningPrimaryUndecodable = "primary classifier response could not be decoded; sections come from the secondary answer or defaults"

// AnalyzeInput is one uploaded document.
type AnalyzeInput struct {
	FileName string
	Data     []byte
}

// ScoreResult is the canonical mapping of a fraud score.
type ScoreResult struct {
	FraudScore    int              `json:"fraud_score"`
	RiskLevel     domain.RiskLevel `json:"risk_level"`
	FinalDecision domain.Decision  `json:"final_decision"`
}

// AnalysisService defines the document analysis contract.
type AnalysisService interface {
	// Ready reports domain.ErrClassifierNotConfigured when no classifier call can be made.
	Ready() error
	Analyze(ctx context.Context, input AnalyzeInput) (*domain.Analysis, error)
	Current() (*domain.Analysis, error)
}

type analysisService struct {
	classifier port.DocumentClassifier
	configErr  error
	intake     config.IntakeConfig
	alerts     AlertService
	now        func() time.Time
	log        *slog.Logger

	mu         sync.Mutex
	generation uint64
	current    *domain.Analysis
}

// NewAnalysisService creates a new AnalysisService. classifierErr is the
// error from building the classifier; when set, every analysis is refused
// before any classifier call with that error. alerts may be nil.
func NewAnalysisService(
	docClassifier port.DocumentClassifier,
	classifierErr error,
	intake config.IntakeConfig,
	alerts AlertService,
) AnalysisService {
	return newAnalysisService(docClassifier, classifierErr, intake, alerts, time.Now)
}

// NewAnalysisServiceWithClock is NewAnalysisService with an injected clock (for testing).
func NewAnalysisServiceWithClock(
	docClassifier port.DocumentClassifier,
	classifierErr error,
	intake config.IntakeConfig,
	alerts AlertService,
	now func() time.Time,
) AnalysisService {
	return newAnalysisService(docClassifier, classifierErr, intake, alerts, now)
}

func newAnalysisService(
	docClassifier port.DocumentClassifier,
	classifierErr error,
	intake config.IntakeConfig,
	alerts AlertService,
	now func() time.Time,
) *analysisService {
	if classifierErr == nil && docClassifier == nil {
		classifierErr = domain.ErrClassifierNotConfigured
	}
	return &analysisService{
		classifier: docClassifier,
		configErr:  classifierErr,
		intake:     intake,
		alerts:     alerts,
		now:        now,
		log:        logging.New("service.analysis"),
	}
}

func (s *analysisService) Ready() error {
	if s.configErr == nil {
		return nil
	}
	if errors.Is(s.configErr, domain.ErrClassifierNotConfigured) {
		return s.configErr
	}
	return fmt.Errorf("%w: %v", domain.ErrClassifierNotConfigured, s.configErr)
}

func (s *analysisService) Analyze(ctx context.Context, input AnalyzeInput) (*domain.Analysis, error) {
	if err := s.Ready(); err != nil {
		return nil, err
	}

	doc, err := Inspect(input.FileName, input.Data, s.intake)
	if err != nil {
		return nil, err
	}

	gen := s.begin()
	s.log.Info("classifying document",
		"file_name", input.FileName, "content_type", doc.ContentType,
		"bytes", len(input.Data), "pages", doc.PageCount, "generation", gen)

	out, err := s.classifier.Classify(ctx, port.ClassifyInput{FileBytes: input.Data, ContentType: doc.ContentType})
	if err != nil {
		s.log.Error("classification failed", "file_name", input.FileName, "generation", gen, "error", err)
		return nil, fmt.Errorf("%w: %w", domain.ErrClassificationFailed, err)
	}

	analysis := s.build(gen, input.FileName, doc, out)

	if !s.publish(gen, analysis) {
		s.log.Info("discarding stale analysis", "file_name", input.FileName, "generation", gen)
		return nil, domain.ErrAnalysisSuperseded
	}

	s.log.Info("analysis complete",
		"report_id", analysis.ReportID, "fraud_score", analysis.Result.RiskAssessment.FraudScore,
		"risk_level", analysis.Result.RiskAssessment.RiskLevel,
		"decision", analysis.Result.RiskAssessment.FinalDecision, "warnings", len(analysis.Warnings))

	if s.alerts != nil {
		s.alerts.NotifyIfRejected(ctx, analysis)
	}
	return analysis, nil
}

func (s *analysisService) Current() (*domain.Analysis, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil, domain.ErrNoAnalysis
	}
	return s.current, nil
}

// begin starts a new upload generation and drops the previous result.
func (s *analysisService) begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	s.current = nil
	return s.generation
}

// publish installs a as the current analysis unless a newer upload started.
func (s *analysisService) publish(gen uint64, a *domain.Analysis) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		return false
	}
	s.current = a
	return true
}

func (s *analysisService) build(gen uint64, fileName string, doc *IntakeResult, out *port.ClassifyOutput) *domain.Analysis {
	v := NormalizeVerdict(out.RawText, out.SecondaryRawText)
	if err := forensic.Validate(v.Result); err != nil {
		s.log.Error("merged result failed validation", "error", err)
	}
	var warnings []string
	if len(v.Warnings) > 0 {
		warnings = v.Warnings
	}

	generatedAt := s.now().UTC()
	return &domain.Analysis{
		ReportID:       NewReportID(generatedAt),
		Generation:     gen,
		FileName:       fileName,
		ContentType:    doc.ContentType,
		PageCount:      doc.PageCount,
		ModelUsed:      out.ModelUsed,
		SecondaryModel: out.SecondaryModel,
		GeneratedAt:    generatedAt,
		Result:         v.Result,
		Warnings:       warnings,
	}
}

// NewReportID returns the report identifier for an analysis generated at t.
func NewReportID(t time.Time) string {
	return fmt.Sprintf("FR-%d", t.UnixMilli())
}

// ScoreToRisk maps a fraud score onto its risk level and decision.
func ScoreToRisk(score int) (*ScoreResult, error) {
	if score < 0 || score > 100 {
		return nil, domain.ErrInvalidFraudScore
	}
	level := forensic.RiskLevelForScore(score)
	return &ScoreResult{
		FraudScore:    score,
		RiskLevel:     level,
		FinalDecision: forensic.DecisionForLevel(level),
	}, nil
}
