package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"docforensics/internal/classifier"
	"docforensics/internal/classifier/providers"
	"docforensics/internal/config"
	"docforensics/internal/domain"
	"docforensics/internal/email"
	"docforensics/internal/export"
	"docforensics/internal/logging"
	"docforensics/internal/port"
	"docforensics/internal/service"
	s3storage "docforensics/internal/storage/s3"
)

var analyzeFlags struct {
	output   string
	exports  []string
	outDir   string
	parallel int
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file|s3://bucket/key>...",
	Short: "Classify documents and print their risk verdicts",
	Long: `Analyze one or more invoices or receipts (PDF, JPG, PNG) with the configured
classifier and print a risk summary per document.

Usage:
  forensicctl analyze invoice.pdf
  forensicctl analyze a.png b.pdf s3://receipts/2026/march.pdf -o yaml
  forensicctl analyze invoice.pdf --export pdf,xlsx --out-dir reports/

Every document is analyzed independently. A failure on one document is
reported at the end and does not stop the others.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	f := analyzeCmd.Flags()
	f.StringVarP(&analyzeFlags.output, "output", "o", outputTable, outputHelp)
	f.StringSliceVar(&analyzeFlags.exports, "export", nil, "Also write reports in these formats: json, pdf, xlsx, csv")
	f.StringVar(&analyzeFlags.outDir, "out-dir", ".", "Directory for --export files")
	f.IntVarP(&analyzeFlags.parallel, "parallel", "p", 4, "Documents analyzed at the same time")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	formats := make([]domain.ExportFormat, 0, len(analyzeFlags.exports))
	for _, name := range analyzeFlags.exports {
		f, err := export.ParseFormat(name)
		if err != nil {
			return err
		}
		formats = append(formats, f)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	providers.Register()
	docClassifier, err := classifier.Build(&cfg.Classifier)
	if err != nil {
		return err
	}
	sender, err := email.NewSender(&cfg.Email)
	if err != nil {
		return fmt.Errorf("failed to initialize email sender: %w", err)
	}

	a := &analyzer{
		classifier: docClassifier,
		intake:     cfg.Intake,
		alerts:     service.NewAlertService(sender, cfg.Email.AlertRecipient),
		readFile:   os.ReadFile,
	}
	for _, in := range args {
		if s3storage.IsURI(in) {
			if a.objects, err = s3storage.NewS3Client(&cfg.S3, cfg.Intake.MaxFileSizeBytes()); err != nil {
				return fmt.Errorf("failed to initialize s3 client: %w", err)
			}
			break
		}
	}

	analyses, analyzeErr := a.analyzeAll(cmd.Context(), args, analyzeFlags.parallel)

	done := make([]*domain.Analysis, 0, len(analyses))
	for _, an := range analyses {
		if an != nil {
			done = append(done, an)
		}
	}
	if len(done) > 0 {
		err := printValue(cmd.OutOrStdout(), analyzeFlags.output, done, func(mode export.TextMode) string {
			if len(done) == 1 {
				return export.Text(done[0], mode)
			}
			return export.RiskTable(done, mode)
		})
		if err != nil {
			return err
		}
	}

	if len(formats) > 0 {
		written, err := writeExports(analyzeFlags.outDir, done, formats)
		for _, path := range written {
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", path)
		}
		if err != nil {
			return errors.Join(analyzeErr, err)
		}
	}
	return analyzeErr
}

// analyzer runs each input through its own analysis service, so one
// document never supersedes another.
type analyzer struct {
	classifier port.DocumentClassifier
	intake     config.IntakeConfig
	alerts     service.AlertService
	objects    port.ObjectSource
	readFile   func(string) ([]byte, error)
}

// analyzeAll returns one entry per input, in input order. Failed inputs
// leave a nil entry and contribute to the joined error.
func (a *analyzer) analyzeAll(ctx context.Context, inputs []string, parallel int) ([]*domain.Analysis, error) {
	results := make([]*domain.Analysis, len(inputs))
	errs := make([]error, len(inputs))
	log := logging.New("cli.analyze")

	var g errgroup.Group
	g.SetLimit(max(parallel, 1))
	for i, in := range inputs {
		g.Go(func() error {
			an, err := a.analyzeOne(ctx, in)
			if err != nil {
				log.Warn("analysis failed", "input", in, "error", err)
				errs[i] = fmt.Errorf("%s: %w", in, err)
				return nil
			}
			results[i] = an
			return nil
		})
	}
	_ = g.Wait()

	return results, errors.Join(errs...)
}

func (a *analyzer) analyzeOne(ctx context.Context, input string) (*domain.Analysis, error) {
	data, name, err := a.load(ctx, input)
	if err != nil {
		return nil, err
	}
	svc := service.NewAnalysisService(a.classifier, nil, a.intake, a.alerts)
	return svc.Analyze(ctx, service.AnalyzeInput{FileName: name, Data: data})
}

func (a *analyzer) load(ctx context.Context, input string) ([]byte, string, error) {
	if !s3storage.IsURI(input) {
		data, err := a.readFile(input)
		if err != nil {
			return nil, "", fmt.Errorf("reading file: %w", err)
		}
		return data, filepath.Base(input), nil
	}

	bucket, key, err := s3storage.ParseURI(input)
	if err != nil {
		return nil, "", err
	}
	if a.objects == nil {
		return nil, "", fmt.Errorf("%w: object storage is not configured", domain.ErrInvalidStorageReference)
	}
	out, err := a.objects.Download(ctx, bucket, key)
	if err != nil {
		return nil, "", err
	}
	return out.Body, filepath.Base(key), nil
}

// writeExports renders every analysis in every format into dir. Names are
// prefixed with the source file stem since report ids can repeat within a
// millisecond; a stem already used in this run gets a numeric suffix so inputs
// sharing a base name from different directories do not overwrite each other.
func writeExports(dir string, analyses []*domain.Analysis, formats []domain.ExportFormat) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	var written []string
	used := make(map[string]bool, len(analyses))
	for _, an := range analyses {
		stem := uniqueStem(used, strings.TrimSuffix(an.FileName, filepath.Ext(an.FileName)))
		for _, format := range formats {
			f, err := export.Render(an, format)
			if err != nil {
				return written, err
			}
			path := filepath.Join(dir, stem+"-"+f.Name)
			if err := os.WriteFile(path, f.Body, 0o644); err != nil {
				return written, fmt.Errorf("writing %s: %w", path, err)
			}
			written = append(written, path)
		}
	}
	return written, nil
}

func uniqueStem(used map[string]bool, stem string) string {
	candidate := stem
	for n := 2; used[candidate]; n++ {
		candidate = fmt.Sprintf("%s-%d", stem, n)
	}
	used[candidate] = true
	return candidate
}
