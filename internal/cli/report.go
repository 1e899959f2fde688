package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/georgemunganga/pcstore/internal/modules/inventory"
)

// ValidFormats defines the allowed report formats.
var ValidFormats = []string{"text", "json", "yaml"}

// reportDocument is the machine-readable report.
type reportDocument struct {
	Config   inventory.Configuration `json:"config" yaml:"config"`
	Products []inventory.Product     `json:"products" yaml:"products"`
	Stats    inventory.Stats         `json:"stats" yaml:"stats"`
}

// NewReportCommand creates the report command.
func NewReportCommand(rootOpts *RootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:          "report",
		Short:        "Print the store configuration, products and totals",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(format) {
				return fmt.Errorf("invalid format %q: must be one of %v", format, ValidFormats)
			}
			a, err := openApp(cmd, rootOpts)
			if err != nil {
				return err
			}
			defer a.Close()
			return writeReport(cmd.OutOrStdout(), format, a.Service.Snapshot(cmd.Context()))
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format (text|json|yaml)")

	return cmd
}

func writeReport(w io.Writer, format string, snap inventory.Snapshot) error {
	doc := reportDocument{Config: snap.Config, Products: snap.Products, Stats: snap.Stats()}
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	default:
		report := inventory.NewTextReport(w)
		inventory.Render(snap.Config, snap.Products, report)
		return report.Err()
	}
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
