package main

import (
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"docforensics/internal/export"
	"docforensics/internal/service"
)

var scoreFlags struct {
	output string
}

var scoreCmd = &cobra.Command{
	Use:   "score <fraud_score>",
	Short: "Print the risk level and decision for a fraud score",
	Long: `Map a fraud score between 0 and 100 onto its risk level and final decision:

  0-25    Low       Accept
  26-50   Medium    Review Manually
  51-75   High      Reject
  76-100  Critical  Reject`,
	Args: cobra.ExactArgs(1),
	RunE: runScore,
}

func init() {
	scoreCmd.Flags().StringVarP(&scoreFlags.output, "output", "o", outputTable, outputHelp)
}

func runScore(cmd *cobra.Command, args []string) error {
	score, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("fraud score %q is not a whole number", args[0])
	}
	res, err := service.ScoreToRisk(score)
	if err != nil {
		return fmt.Errorf("%w: got %d", err, score)
	}

	return printValue(cmd.OutOrStdout(), scoreFlags.output, res, func(mode export.TextMode) string {
		t := table.NewWriter()
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"Score", "Risk", "Decision"})
		t.AppendRow(table.Row{res.FraudScore, res.RiskLevel, res.FinalDecision})
		if mode == export.TextMarkdown {
			return t.RenderMarkdown() + "\n"
		}
		return t.Render() + "\n"
	})
}
