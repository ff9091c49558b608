package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"docforensics/internal/export"
)

// Output formats accepted by --output.
const (
	outputTable    = "table"
	outputMarkdown = "markdown"
	outputJSON     = "json"
	outputYAML     = "yaml"
)

const outputHelp = "Output format: table, markdown, json or yaml"

// printValue writes v in the requested format. Table and markdown output
// come from text; json and yaml encode v itself.
func printValue(w io.Writer, format string, v any, text func(export.TextMode) string) error {
	switch strings.ToLower(format) {
	case outputTable:
		_, err := io.WriteString(w, text(export.TextASCII))
		return err
	case outputMarkdown:
		_, err := io.WriteString(w, text(export.TextMarkdown))
		return err
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case outputYAML:
		b, err := toYAML(v)
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	default:
		return fmt.Errorf("unknown output format %q (want table, markdown, json or yaml)", format)
	}
}

// toYAML encodes v through its JSON form so custom JSON marshalers (nullable
// fields, margins) and json tags shape the YAML too.
func toYAML(v any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encoding json: %w", err)
	}
	var node yaml.Node
	if err := yaml.Unmarshal(b, &node); err != nil {
		return nil, fmt.Errorf("decoding json as yaml: %w", err)
	}
	blockStyle(&node)
	out, err := yaml.Marshal(&node)
	if err != nil {
		return nil, fmt.Errorf("encoding yaml: %w", err)
	}
	return out, nil
}

// blockStyle drops the flow and quoting styles JSON input carries.
func blockStyle(n *yaml.Node) {
	n.Style &^= yaml.FlowStyle | yaml.DoubleQuotedStyle
	for _, c := range n.Content {
		blockStyle(c)
	}
}
