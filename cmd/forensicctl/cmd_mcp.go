package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"docforensics/internal/mcpserver"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the forensic tools over MCP (stdio)",
	Long: `Start an MCP server over stdin/stdout exposing:

  normalize_verdict  raw classifier text in, complete verdict out
  score_to_risk      fraud score in, risk level and decision out

Logs are written to stderr.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return mcpserver.NewServer(version).Run(cmd.Context(), &mcp.StdioTransport{})
	},
}
