package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rezonia/invoice-studio/internal/export"
	"github.com/rezonia/invoice-studio/internal/model"
)

var (
	exportDemo    bool
	exportOpen    bool
	exportLink    bool
	exportTimeout time.Duration
)

var exportCmd = &cobra.Command{
	Use:   "export [invoice.json]",
	Short: "Export an invoice document to a PDF artifact",
	Long: `Export an invoice document to a single-page A4 PDF.

The input is a JSON document with header fields and line items; amounts
and the total are derived, never read from the input. By default the
artifact is saved into the output directory. With --open the share flow
runs instead: on platforms without a native share surface the artifact
is opened in a temporary viewing location.

Examples:
  invoice-studio export invoice.json
  invoice-studio export invoice.json -o ~/invoices
  invoice-studio export --demo
  invoice-studio export invoice.json --link`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().BoolVar(&exportDemo, "demo", false, "Export a built-in demo invoice")
	exportCmd.Flags().BoolVar(&exportOpen, "open", false, "Use the share flow instead of a direct save")
	exportCmd.Flags().BoolVar(&exportLink, "link", false, "Also print the messaging deep link")
	exportCmd.Flags().DurationVar(&exportTimeout, "timeout", 30*time.Second, "Export timeout")
}

func runExport(cmd *cobra.Command, args []string) error {
	inv, err := loadInvoice(args)
	if err != nil {
		return err
	}

	printVerbose("Exporting %s (%d items, total KWD %s)\n",
		inv.FileName(), len(inv.Items), inv.Total().StringFixed(3))

	ctx, cancel := context.WithTimeout(context.Background(), exportTimeout)
	defer cancel()

	dispatcher := export.NewDispatcher(
		export.DiskPlatform{Dir: outputDir},
		export.WithStatusFunc(func(state export.State, status export.Status) {
			fmt.Printf("[%s] %s\n", status.Severity, status.Message)
		}),
	)

	var result export.Result
	if exportOpen {
		result = dispatcher.Share(ctx, inv.Snapshot())
	} else {
		result = dispatcher.Download(ctx, inv.Snapshot())
	}

	if result.Err != nil {
		return result.Err
	}
	if result.Location != "" {
		fmt.Printf("Artifact: %s\n", result.Location)
	}

	if exportLink {
		link, err := export.MessageLink(inv)
		if err != nil {
			return err
		}
		fmt.Printf("Link: %s\n", link)
	}

	return nil
}

func loadInvoice(args []string) (*model.Invoice, error) {
	if exportDemo {
		return demoInvoice(), nil
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("no invoice document given (or use --demo)")
	}

	f, err := os.Open(args[0])
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", args[0], err)
	}
	defer f.Close()

	return model.DecodeInvoice(f)
}

func demoInvoice() *model.Invoice {
	inv := model.NewInvoice()
	inv.Header.InvoiceNumber = "DEMO-001"
	inv.Header.BillTo = "Salmiya Electronics"
	inv.Header.ContactNumber = "+96565553025"

	first := inv.Items[0].ID
	_ = inv.UpdateItem(first, model.FieldDescription, "Cable")
	_ = inv.UpdateItem(first, model.FieldRate, "5")
	_ = inv.UpdateItem(first, model.FieldQuantity, "3")

	second := inv.AddItem()
	_ = inv.UpdateItem(second, model.FieldDescription, "Case")
	_ = inv.UpdateItem(second, model.FieldRate, "20")
	_ = inv.UpdateItem(second, model.FieldQuantity, "1")
	_ = inv.UpdateItem(second, model.FieldDiscount, "10")

	return inv
}
