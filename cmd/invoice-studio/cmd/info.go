package cmd

import (
	"fmt"
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/rezonia/invoice-studio/internal/pdf"
)

var infoCmd = &cobra.Command{
	Use:   "info [files...]",
	Short: "Show information about produced artifacts",
	Long: `Inspect PDF artifacts and check them against the physical page
contract (one page, 210mm x 297mm).

Examples:
  invoice-studio info Invoice_draft.pdf
  invoice-studio info exports/*.pdf`,
	Args: cobra.MinimumNArgs(1),
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	for _, file := range args {
		printArtifactInfo(file)
		fmt.Println()
	}
	return nil
}

func printArtifactInfo(path string) {
	fmt.Printf("File: %s\n", path)

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("  Error reading file: %v\n", err)
		return
	}
	fmt.Printf("  Size: %d bytes\n", len(data))

	dims, err := pdf.Verify(data)
	if err != nil {
		fmt.Printf("  Error: %v\n", err)
		return
	}

	fmt.Printf("  Pages: %d\n", dims.Pages)
	fmt.Printf("  Page size: %.1fmm x %.1fmm\n", dims.WidthMM, dims.HeightMM)
	fmt.Printf("  A4: %v\n", isA4(dims))
}

func isA4(dims *pdf.Dims) bool {
	return dims.Pages == 1 &&
		math.Abs(dims.WidthMM-210) < 0.5 &&
		math.Abs(dims.HeightMM-297) < 0.5
}
