package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

func addOutputFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVarP(target, "output", "o", outputText, "Output format (text|json|yaml)")
}

// writeOutput encodes value as JSON or YAML, or hands the writer to text for
// the human-readable form.
func writeOutput(cmd *cobra.Command, format string, value any, text func(w io.Writer) error) error {
	out := cmd.OutOrStdout()

	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", outputText:
		return text(out)
	case outputJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(value)
	case outputYAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(value); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported output format %q (want text, json or yaml)", format)
	}
}
