package model

import (
	"fmt"
	"strings"

	"github.com/rezonia/invoice-studio/internal/money"
)

// Summary builds the plain-text rendition of the invoice used for
// messaging hand-off. Items without a description are skipped; the
// discount line appears only when the discount is positive.
func (inv *Invoice) Summary() string {
	var b strings.Builder

	b.WriteString("*INVOICE*\n")
	fmt.Fprintf(&b, "Invoice #: %s\n", inv.Header.InvoiceNumber)
	fmt.Fprintf(&b, "Date: %s\n", inv.Header.Date)
	fmt.Fprintf(&b, "Bill To: %s\n\n", inv.Header.BillTo)
	b.WriteString("*Items:*\n")

	for _, it := range inv.Items {
		if it.Description == "" {
			continue
		}
		fmt.Fprintf(&b, "%s\n", it.Description)
		fmt.Fprintf(&b, "Rate: KWD %s x Qty: %s\n", it.Rate, it.Quantity)
		if money.ParseOrZero(it.Discount).IsPositive() {
			fmt.Fprintf(&b, "Discount: %s%%\n", it.Discount)
		}
		fmt.Fprintf(&b, "Amount: KWD %s\n\n", money.Format(it.Amount))
	}

	fmt.Fprintf(&b, "*Total Amount: KWD %s*", money.Format(inv.Total()))
	return b.String()
}
