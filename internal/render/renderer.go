// Package render projects an invoice snapshot onto a fixed-size visual
// page. Rendering is pure: the same snapshot and layout always produce
// the same page, and the snapshot is never mutated.
package render

import (
	"github.com/rezonia/invoice-studio/internal/model"
	"github.com/rezonia/invoice-studio/internal/money"
)

// SellerInfo is the issuer identity block shown in the page header.
type SellerInfo struct {
	Company   string
	Trader    string
	VATNumber string
	City      string
	Phone     string
}

// Layout is the explicit page configuration. Physical dimensions are in
// millimetres; Scale and DPI control the rasterized pixel density.
type Layout struct {
	PageWidthMM  float64
	PageHeightMM float64
	MarginMM     float64
	MinRows      int
	Scale        float64
	DPI          float64
	Seller       SellerInfo
	LogoRef      string
}

// DefaultLayout returns the ISO A4 portrait layout: 20mm margin, a
// 10-row body minimum and 2x capture scale at the 96 DPI reference.
func DefaultLayout() Layout {
	return Layout{
		PageWidthMM:  210,
		PageHeightMM: 297,
		MarginMM:     20,
		MinRows:      10,
		Scale:        2,
		DPI:          96,
		Seller: SellerInfo{
			Company:   "Electronics & Accessories",
			Trader:    "Abbas Kala",
			VATNumber: "VAT # 65553025",
			City:      "Salmiya, Kuwait",
			Phone:     "65553025",
		},
	}
}

// MetaEntry is one labeled value in the invoice metadata block.
type MetaEntry struct {
	Label string
	Value string
}

// Row is one body table row. Blank rows pad the table up to the layout's
// minimum so the page height stays visually constant.
type Row struct {
	Description string
	Rate        string
	Quantity    string
	Discount    string
	Amount      string
	Blank       bool
}

// Page is the structured visual page handed to the rasterizer: header,
// body table and a footer pinned to the bottom of the physical page.
type Page struct {
	WidthMM  float64
	HeightMM float64
	MarginMM float64

	Seller  SellerInfo
	LogoRef string
	Meta    []MetaEntry
	BillTo  string

	Columns []string
	Rows    []Row

	TotalLine  string
	FooterNote string
}

var tableColumns = []string{"DESCRIPTION", "RATE (KWD)", "QTY", "DISCOUNT (%)", "AMOUNT (KWD)"}

// Render builds the page for an invoice snapshot. Rate and amount cells
// carry exactly three fractional digits; quantity and discount render as
// entered.
func Render(snap model.Invoice, layout Layout) Page {
	total := money.Format(snap.Total())

	page := Page{
		WidthMM:  layout.PageWidthMM,
		HeightMM: layout.PageHeightMM,
		MarginMM: layout.MarginMM,
		Seller:   layout.Seller,
		LogoRef:  layout.LogoRef,
		Meta: []MetaEntry{
			{Label: "INVOICE #", Value: snap.DisplayNumber()},
			{Label: "DATE", Value: snap.Header.Date},
			{Label: "DUE", Value: "On Receipt"},
			{Label: "BALANCE DUE", Value: total},
		},
		BillTo:     snap.Header.BillTo,
		Columns:    tableColumns,
		TotalLine:  "BALANCE DUE: KWD " + total,
		FooterNote: "Thank you for your business",
	}

	for _, it := range snap.Items {
		page.Rows = append(page.Rows, Row{
			Description: it.Description,
			Rate:        money.Format(money.ParseOrZero(it.Rate)),
			Quantity:    it.Quantity,
			Discount:    it.Discount,
			Amount:      money.Format(it.Amount),
		})
	}
	for len(page.Rows) < layout.MinRows {
		page.Rows = append(page.Rows, Row{Blank: true})
	}

	return page
}
