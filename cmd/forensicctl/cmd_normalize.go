package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"docforensics/internal/domain"
	"docforensics/internal/export"
	"docforensics/internal/service"
)

var normalizeFlags struct {
	output    string
	secondary string
}

var normalizeCmd = &cobra.Command{
	Use:   "normalize [file|-]",
	Short: "Normalize a saved classifier response into a complete verdict",
	Long: `Read a raw classifier response (optionally fenced in markdown) from a file
or stdin and print the complete verdict: every missing or malformed field
falls back to its inconclusive default. No classifier call is made.

Usage:
  forensicctl normalize response.txt
  cat response.txt | forensicctl normalize -o json
  forensicctl normalize gemini.txt --secondary gpt.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNormalize,
}

func init() {
	f := normalizeCmd.Flags()
	f.StringVarP(&normalizeFlags.output, "output", "o", outputTable, outputHelp)
	f.StringVar(&normalizeFlags.secondary, "secondary", "", "Second classifier response that only fills gaps")
}

func runNormalize(cmd *cobra.Command, args []string) error {
	source := "-"
	if len(args) > 0 {
		source = args[0]
	}
	raw, err := readSource(cmd.InOrStdin(), source)
	if err != nil {
		return err
	}
	var secondary []byte
	if normalizeFlags.secondary != "" {
		if secondary, err = readSource(cmd.InOrStdin(), normalizeFlags.secondary); err != nil {
			return err
		}
	}

	v := service.NormalizeVerdict(string(raw), string(secondary))

	generatedAt := time.Now().UTC()
	a := &domain.Analysis{
		ReportID:    service.NewReportID(generatedAt),
		FileName:    source,
		GeneratedAt: generatedAt,
		Result:      v.Result,
		Warnings:    v.Warnings,
	}
	return printValue(cmd.OutOrStdout(), normalizeFlags.output, v, func(mode export.TextMode) string {
		return export.Text(a, mode)
	})
}

func readSource(stdin io.Reader, source string) ([]byte, error) {
	if source == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return b, nil
	}
	b, err := os.ReadFile(source)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", source, err)
	}
	return b, nil
}
