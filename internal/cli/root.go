// Package cli provides the Cobra command structure for marclsp.
package cli

import (
	"github.com/spf13/cobra"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root marclsp command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "marclsp",
		Short: "Language server for MARC bibliographic records",
		Long: `marclsp is a language server for MARC bibliographic records.

It understands MarcEdit's MRK mnemonic format and plain line-mode MARC
text, offering hover documentation for tags, indicators, subfields and
fixed-field byte positions, completion for tags and subfield codes, and
diagnostics for malformed lines.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newServeCommand())
	rootCmd.AddCommand(newDataCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
