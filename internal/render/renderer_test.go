package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/invoice-studio/internal/model"
	"github.com/rezonia/invoice-studio/internal/render"
)

func demoInvoice(t *testing.T) *model.Invoice {
	t.Helper()

	inv := model.NewInvoice()
	first := inv.Items[0].ID
	require.NoError(t, inv.UpdateItem(first, model.FieldDescription, "Cable"))
	require.NoError(t, inv.UpdateItem(first, model.FieldRate, "5"))
	require.NoError(t, inv.UpdateItem(first, model.FieldQuantity, "3"))

	second := inv.AddItem()
	require.NoError(t, inv.UpdateItem(second, model.FieldDescription, "Case"))
	require.NoError(t, inv.UpdateItem(second, model.FieldRate, "20"))
	require.NoError(t, inv.UpdateItem(second, model.FieldQuantity, "1"))
	require.NoError(t, inv.UpdateItem(second, model.FieldDiscount, "10"))

	return inv
}

func TestRender_PageGeometry(t *testing.T) {
	page := render.Render(demoInvoice(t).Snapshot(), render.DefaultLayout())

	assert.Equal(t, 210.0, page.WidthMM)
	assert.Equal(t, 297.0, page.HeightMM)
	assert.Equal(t, 20.0, page.MarginMM)
}

func TestRender_PadsToMinimumRows(t *testing.T) {
	page := render.Render(demoInvoice(t).Snapshot(), render.DefaultLayout())

	require.Len(t, page.Rows, 10)
	assert.False(t, page.Rows[0].Blank)
	assert.False(t, page.Rows[1].Blank)
	for i := 2; i < 10; i++ {
		assert.True(t, page.Rows[i].Blank, "row %d should be padding", i)
	}
}

func TestRender_NoPaddingPastMinimum(t *testing.T) {
	inv := demoInvoice(t)
	for i := 0; i < 12; i++ {
		inv.AddItem()
	}

	page := render.Render(inv.Snapshot(), render.DefaultLayout())
	assert.Len(t, page.Rows, 14)
}

func TestRender_CellFormatting(t *testing.T) {
	page := render.Render(demoInvoice(t).Snapshot(), render.DefaultLayout())

	// Rate and amount carry three fixed digits; qty and discount render
	// as entered
	cable := page.Rows[0]
	assert.Equal(t, "5.000", cable.Rate)
	assert.Equal(t, "3", cable.Quantity)
	assert.Equal(t, "0", cable.Discount)
	assert.Equal(t, "15.000", cable.Amount)

	caseRow := page.Rows[1]
	assert.Equal(t, "20.000", caseRow.Rate)
	assert.Equal(t, "10", caseRow.Discount)
	assert.Equal(t, "18.000", caseRow.Amount)
}

func TestRender_MetaAndFooter(t *testing.T) {
	inv := demoInvoice(t)
	require.NoError(t, inv.SetHeaderField(model.HeaderInvoiceNumber, "INV-7"))
	require.NoError(t, inv.SetHeaderField(model.HeaderBillTo, "Salmiya Electronics"))

	page := render.Render(inv.Snapshot(), render.DefaultLayout())

	require.Len(t, page.Meta, 4)
	assert.Equal(t, render.MetaEntry{Label: "INVOICE #", Value: "INV-7"}, page.Meta[0])
	assert.Equal(t, render.MetaEntry{Label: "DUE", Value: "On Receipt"}, page.Meta[2])
	assert.Equal(t, render.MetaEntry{Label: "BALANCE DUE", Value: "33.000"}, page.Meta[3])

	assert.Equal(t, "Salmiya Electronics", page.BillTo)
	assert.Equal(t, "BALANCE DUE: KWD 33.000", page.TotalLine)
	assert.Equal(t, "Thank you for your business", page.FooterNote)
}

func TestRender_DraftPlaceholder(t *testing.T) {
	page := render.Render(model.NewInvoice().Snapshot(), render.DefaultLayout())
	assert.Equal(t, "DRAFT", page.Meta[0].Value)
}

func TestRender_Deterministic(t *testing.T) {
	snap := demoInvoice(t).Snapshot()
	layout := render.DefaultLayout()

	a := render.Render(snap, layout)
	b := render.Render(snap, layout)
	assert.Equal(t, a, b)
}

func TestRender_DoesNotMutateSnapshot(t *testing.T) {
	inv := demoInvoice(t)
	snap := inv.Snapshot()

	render.Render(snap, render.DefaultLayout())

	assert.Len(t, snap.Items, 2)
	assert.Equal(t, "5", snap.Items[0].Rate)
}
