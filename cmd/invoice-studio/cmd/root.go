package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "1.0.0"

	// Global flags
	verbose   bool
	outputDir string
)

var rootCmd = &cobra.Command{
	Use:   "invoice-studio",
	Short: "Generate and deliver fixed-layout invoice PDFs",
	Long: `Invoice Studio turns an editable invoice document into a one-page
A4 PDF and delivers it through a save, share or open channel.

The pipeline:
  1. Derive line amounts and the total (3-decimal KWD rounding)
  2. Render the invoice onto a fixed A4 page (padded to 10 table rows)
  3. Capture the page as a bitmap at 2x the 96 DPI reference
  4. Package the bitmap into a single-page A4 PDF

Examples:
  # Export an invoice document to the current directory
  invoice-studio export invoice.json

  # Export the built-in demo invoice
  invoice-studio export --demo

  # Start the HTTP API
  invoice-studio serve

  # Inspect a produced artifact
  invoice-studio info Invoice_draft.pdf`,
	Version: version,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&outputDir, "output", "o", ".", "Output directory for artifacts (env: INVOICE_OUTPUT_DIR)")

	cobra.OnInitialize(initConfig)
}

func initConfig() {
	if outputDir == "." {
		if dir := os.Getenv("INVOICE_OUTPUT_DIR"); dir != "" {
			outputDir = dir
		}
	}
}

func printVerbose(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}
