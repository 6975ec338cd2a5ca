package model

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// invoiceDoc is the wire form accepted from the editing UI. Amounts are
// never trusted from the wire; they are re-derived on decode.
type invoiceDoc struct {
	InvoiceNumber string        `json:"invoiceNumber"`
	Date          string        `json:"date"`
	BillTo        string        `json:"billTo"`
	ContactNumber string        `json:"contactNumber"`
	Items         []lineItemDoc `json:"items"`
}

type lineItemDoc struct {
	Description string `json:"description"`
	Rate        string `json:"rate"`
	Quantity    string `json:"quantity"`
	Discount    string `json:"discount"`
}

// DecodeInvoice reads an invoice document from JSON, assigns fresh item
// ids and derives every amount and default. The result always holds at
// least one item.
func DecodeInvoice(r io.Reader) (*Invoice, error) {
	var doc invoiceDoc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode invoice document: %w", err)
	}

	inv := &Invoice{
		Header: Header{
			InvoiceNumber: doc.InvoiceNumber,
			Date:          doc.Date,
			BillTo:        doc.BillTo,
			ContactNumber: doc.ContactNumber,
		},
	}
	if inv.Header.Date == "" {
		inv.Header.Date = time.Now().Format("2006-01-02")
	}

	for _, d := range doc.Items {
		item := LineItem{
			ID:          NewID(),
			Description: d.Description,
			Rate:        d.Rate,
			Quantity:    d.Quantity,
			Discount:    d.Discount,
		}
		if item.Discount == "" {
			item.Discount = "0"
		}
		item.recalc()
		inv.Items = append(inv.Items, item)
	}
	if len(inv.Items) == 0 {
		inv.Items = []LineItem{blankItem()}
	}

	return inv, nil
}
