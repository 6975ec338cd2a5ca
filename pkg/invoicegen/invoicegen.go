// Package invoicegen provides the public API for building invoices and
// exporting them as fixed-layout PDF artifacts.
//
// Example usage:
//
//	inv := invoicegen.NewInvoice()
//	id := inv.Items[0].ID
//	inv.UpdateItem(id, invoicegen.FieldDescription, "Cable")
//	inv.UpdateItem(id, invoicegen.FieldRate, "5")
//	inv.UpdateItem(id, invoicegen.FieldQuantity, "3")
//
//	d := invoicegen.NewDispatcher(invoicegen.DiskPlatform{})
//	result := d.Download(ctx, inv.Snapshot())
//	if result.Err != nil {
//	    log.Fatal(result.Err)
//	}
//	fmt.Println(result.Location)
package invoicegen

import (
	"github.com/rezonia/invoice-studio/internal/export"
	"github.com/rezonia/invoice-studio/internal/model"
	"github.com/rezonia/invoice-studio/internal/render"
)

// Re-export core types for public API
type (
	Invoice   = model.Invoice
	LineItem  = model.LineItem
	Header    = model.Header
	ItemField = model.ItemField

	Layout     = render.Layout
	SellerInfo = render.SellerInfo

	Dispatcher   = export.Dispatcher
	DiskPlatform = export.DiskPlatform
	Platform     = export.Platform
	Artifact     = export.Artifact
	Result       = export.Result
	State        = export.State
	Status       = export.Status
	Severity     = export.Severity
)

// Re-export item fields
const (
	FieldDescription = model.FieldDescription
	FieldRate        = model.FieldRate
	FieldQuantity    = model.FieldQuantity
	FieldDiscount    = model.FieldDiscount
)

// Re-export export states
const (
	StateIdle            = export.StateIdle
	StateGenerating      = export.StateGenerating
	StateDelivering      = export.StateDelivering
	StateDelivered       = export.StateDelivered
	StateCancelledByUser = export.StateCancelledByUser
	StateFailed          = export.StateFailed
)

// Re-export error types
type (
	CaptureError   = model.CaptureError
	PackagingError = model.PackagingError
	DeliveryError  = model.DeliveryError
)

// ErrUserCancelled marks a share dismissed by the user.
var ErrUserCancelled = model.ErrUserCancelled

// NewInvoice creates an invoice with today's date and one blank item.
func NewInvoice() *Invoice {
	return model.NewInvoice()
}

// NewDispatcher creates an export dispatcher for the given platform.
func NewDispatcher(platform Platform, opts ...export.Option) *Dispatcher {
	return export.NewDispatcher(platform, opts...)
}

// DefaultLayout returns the ISO A4 page layout.
func DefaultLayout() Layout {
	return render.DefaultLayout()
}
