// Package mcpserver exposes verdict normalization and score mapping as MCP tools.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"docforensics/internal/domain"
	"docforensics/internal/logging"
	"docforensics/internal/service"
)

// Tool names.
const (
	ToolNormalizeVerdict = "normalize_verdict"
	ToolScoreToRisk      = "score_to_risk"
)

// Server wraps the MCP SDK server with the forensic tools registered.
type Server struct {
	MCPServer *mcp.Server
	log       *slog.Logger
}

// NormalizeInput is the input of normalize_verdict.
type NormalizeInput struct {
	Raw       string `json:"raw" jsonschema:"raw classifier response text, optionally wrapped in markdown code fences"`
	Secondary string `json:"secondary,omitempty" jsonschema:"optional second classifier response that only fills fields the first left out"`
}

// NormalizeOutput is the output of normalize_verdict.
type NormalizeOutput struct {
	ResultJSON    string           `json:"result_json"`
	FraudScore    int              `json:"fraud_score"`
	RiskLevel     domain.RiskLevel `json:"risk_level"`
	FinalDecision domain.Decision  `json:"final_decision"`
	Decoded       bool             `json:"decoded"`
	Warnings      []string         `json:"warnings"`
}

// ScoreInput is the input of score_to_risk.
type ScoreInput struct {
	FraudScore int `json:"fraud_score" jsonschema:"fraud score between 0 and 100"`
}

// ScoreOutput is the output of score_to_risk.
type ScoreOutput struct {
	FraudScore    int              `json:"fraud_score"`
	RiskLevel     domain.RiskLevel `json:"risk_level"`
	FinalDecision domain.Decision  `json:"final_decision"`
}

// NewServer creates an MCP server with every tool registered.
func NewServer(version string) *Server {
	s := &Server{
		MCPServer: mcp.NewServer(&mcp.Implementation{Name: "docforensics", Version: version}, nil),
		log:       logging.New("mcp"),
	}

	mcp.AddTool(s.MCPServer, &mcp.Tool{
		Name: ToolNormalizeVerdict,
		Description: "Normalize a raw document classifier response into a complete forensic verdict. " +
			"Missing or malformed sections fall back to inconclusive defaults. Returns the merged result " +
			"as JSON text plus the risk level, decision and any consistency warnings.",
	}, s.normalizeVerdict)

	mcp.AddTool(s.MCPServer, &mcp.Tool{
		Name:        ToolScoreToRisk,
		Description: "Map a fraud score (0-100) to its risk level and final decision.",
	}, s.scoreToRisk)

	return s
}

// Run serves the tools over t until ctx is cancelled or the client disconnects.
func (s *Server) Run(ctx context.Context, t mcp.Transport) error {
	s.log.Info("serving mcp tools", "tools", []string{ToolNormalizeVerdict, ToolScoreToRisk})
	return s.MCPServer.Run(ctx, t)
}

func (s *Server) normalizeVerdict(_ context.Context, _ *mcp.CallToolRequest, in NormalizeInput) (*mcp.CallToolResult, NormalizeOutput, error) {
	v := service.NormalizeVerdict(in.Raw, in.Secondary)
	body, err := json.Marshal(v.Result)
	if err != nil {
		return nil, NormalizeOutput{}, fmt.Errorf("encoding result: %w", err)
	}

	risk := v.Result.RiskAssessment
	s.log.Debug("normalized verdict", "decoded", v.Decoded, "fraud_score", risk.FraudScore, "warnings", len(v.Warnings))
	return nil, NormalizeOutput{
		ResultJSON:    string(body),
		FraudScore:    risk.FraudScore,
		RiskLevel:     risk.RiskLevel,
		FinalDecision: risk.FinalDecision,
		Decoded:       v.Decoded,
		Warnings:      v.Warnings,
	}, nil
}

func (s *Server) scoreToRisk(_ context.Context, _ *mcp.CallToolRequest, in ScoreInput) (*mcp.CallToolResult, ScoreOutput, error) {
	res, err := service.ScoreToRisk(in.FraudScore)
	if err != nil {
		return nil, ScoreOutput{}, fmt.Errorf("%w: got %d", err, in.FraudScore)
	}
	return nil, ScoreOutput{
		FraudScore:    res.FraudScore,
		RiskLevel:     res.RiskLevel,
		FinalDecision: res.FinalDecision,
	}, nil
}
