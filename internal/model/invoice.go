// Package model holds the editable invoice document and its mutation rules.
//
// Rate, quantity and discount are kept as the text the user typed; only the
// derived amount is numeric. Every mutation of a numeric field recomputes
// that item's amount through the money engine, so amount is never set
// independently.
package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"

	"github.com/rezonia/invoice-studio/internal/money"
)

// ItemField identifies an editable field on a line item.
type ItemField int

const (
	FieldDescription ItemField = iota
	FieldRate
	FieldQuantity
	FieldDiscount
)

func (f ItemField) String() string {
	switch f {
	case FieldDescription:
		return "description"
	case FieldRate:
		return "rate"
	case FieldQuantity:
		return "quantity"
	case FieldDiscount:
		return "discount"
	default:
		return "unknown"
	}
}

// HeaderField identifies an editable header field.
type HeaderField int

const (
	HeaderInvoiceNumber HeaderField = iota
	HeaderDate
	HeaderBillTo
	HeaderContactNumber
)

// LineItem is one billable row. Amount is derived and carries exactly
// three fractional digits.
type LineItem struct {
	ID          snowflake.ID    `json:"id"`
	Description string          `json:"description"`
	Rate        string          `json:"rate"`
	Quantity    string          `json:"quantity"`
	Discount    string          `json:"discount"`
	Amount      decimal.Decimal `json:"amount"`
}

func (it *LineItem) recalc() {
	it.Amount = money.DeriveAmount(it.Rate, it.Quantity, it.Discount)
}

// Header holds the invoice metadata fields.
type Header struct {
	InvoiceNumber string `json:"invoiceNumber"`
	Date          string `json:"date"`
	BillTo        string `json:"billTo"`
	ContactNumber string `json:"contactNumber"`
}

// Invoice is the editable document: header plus an ordered, never-empty
// list of line items.
type Invoice struct {
	Header Header     `json:"header"`
	Items  []LineItem `json:"items"`
}

// NewInvoice creates an invoice with today's date and a single blank item.
func NewInvoice() *Invoice {
	return &Invoice{
		Header: Header{
			Date: time.Now().Format("2006-01-02"),
		},
		Items: []LineItem{blankItem()},
	}
}

func blankItem() LineItem {
	return LineItem{
		ID:       NewID(),
		Discount: "0",
		Amount:   money.Zero,
	}
}

// AddItem appends a blank line item and returns its id.
func (inv *Invoice) AddItem() snowflake.ID {
	item := blankItem()
	inv.Items = append(inv.Items, item)
	return item.ID
}

// RemoveItem deletes the item with the given id. Removing the last
// remaining item is a no-op: the invoice always holds at least one row.
// Returns true if an item was removed.
func (inv *Invoice) RemoveItem(id snowflake.ID) bool {
	if len(inv.Items) <= 1 {
		return false
	}
	for i, it := range inv.Items {
		if it.ID == id {
			inv.Items = append(inv.Items[:i], inv.Items[i+1:]...)
			return true
		}
	}
	return false
}

// UpdateItem sets one field on the item with the given id. Editing rate,
// quantity or discount recomputes that item's amount from the newly
// supplied value and the stored values of the other two fields.
func (inv *Invoice) UpdateItem(id snowflake.ID, field ItemField, value string) error {
	for i := range inv.Items {
		it := &inv.Items[i]
		if it.ID != id {
			continue
		}
		switch field {
		case FieldDescription:
			it.Description = value
		case FieldRate:
			it.Rate = value
			it.recalc()
		case FieldQuantity:
			it.Quantity = value
			it.recalc()
		case FieldDiscount:
			it.Discount = value
			it.recalc()
		default:
			return fmt.Errorf("unknown item field %d", field)
		}
		return nil
	}
	return fmt.Errorf("no line item with id %s", id)
}

// SetHeaderField sets one header field.
func (inv *Invoice) SetHeaderField(field HeaderField, value string) error {
	switch field {
	case HeaderInvoiceNumber:
		inv.Header.InvoiceNumber = value
	case HeaderDate:
		inv.Header.Date = value
	case HeaderBillTo:
		inv.Header.BillTo = value
	case HeaderContactNumber:
		inv.Header.ContactNumber = value
	default:
		return fmt.Errorf("unknown header field %d", field)
	}
	return nil
}

// Total sums the derived line amounts. It is never stored.
func (inv *Invoice) Total() decimal.Decimal {
	amounts := make([]decimal.Decimal, len(inv.Items))
	for i, it := range inv.Items {
		amounts[i] = it.Amount
	}
	return money.DeriveTotal(amounts)
}

// Snapshot returns a deep copy for an export run. Edits made after the
// snapshot is taken do not affect an in-flight export.
func (inv *Invoice) Snapshot() Invoice {
	items := make([]LineItem, len(inv.Items))
	copy(items, inv.Items)
	return Invoice{Header: inv.Header, Items: items}
}

// DisplayNumber is the invoice number as rendered on the page; a blank
// number renders as a draft placeholder.
func (inv *Invoice) DisplayNumber() string {
	if strings.TrimSpace(inv.Header.InvoiceNumber) == "" {
		return "DRAFT"
	}
	return inv.Header.InvoiceNumber
}

// FileName is the artifact name: Invoice_<number|draft>.pdf.
func (inv *Invoice) FileName() string {
	number := strings.TrimSpace(inv.Header.InvoiceNumber)
	if number == "" {
		number = "draft"
	}
	return fmt.Sprintf("Invoice_%s.pdf", number)
}

// NormalizedContact strips everything but digits from the contact number.
func (inv *Invoice) NormalizedContact() string {
	var b strings.Builder
	for _, r := range inv.Header.ContactNumber {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
