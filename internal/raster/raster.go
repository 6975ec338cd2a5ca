// Package raster captures a rendered page as a bitmap at a fixed
// physical resolution. Pixel dimensions derive from the page's
// millimetre size at the layout's DPI and scale factor, never from any
// on-screen geometry.
package raster

import (
	"bytes"
	"context"
	"image"
	"image/color"
	stddraw "image/draw"
	"image/png"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/rezonia/invoice-studio/internal/model"
	"github.com/rezonia/invoice-studio/internal/render"
)

// mmPerInch converts between the metric page contract and DPI.
const mmPerInch = 25.4

var (
	colBackground = color.RGBA{255, 255, 255, 255}
	colText       = color.RGBA{31, 31, 31, 255}
	colMuted      = color.RGBA{107, 107, 107, 255}
	colRule       = color.RGBA{146, 64, 14, 255}
	colGrid       = color.RGBA{209, 209, 209, 255}
)

// AssetResolver resolves external visual assets referenced by the page,
// such as a seller logo. Resolution must either succeed or fail loudly;
// a page is never captured with an asset silently missing.
type AssetResolver interface {
	Resolve(ctx context.Context, ref string) (image.Image, error)
}

// Bitmap is the captured page.
type Bitmap struct {
	Image *image.RGBA
}

// Width returns the bitmap width in pixels.
func (b *Bitmap) Width() int { return b.Image.Bounds().Dx() }

// Height returns the bitmap height in pixels.
func (b *Bitmap) Height() int { return b.Image.Bounds().Dy() }

// EncodePNG encodes the bitmap losslessly. Downstream packaging embeds
// these bytes as-is.
func (b *Bitmap) EncodePNG() ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, b.Image); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Rasterizer draws pages. Safe to reuse across captures; a single
// capture is single-shot and must not race with edits to the source
// invoice (callers snapshot before capturing).
type Rasterizer struct {
	resolver AssetResolver
}

// Option configures a Rasterizer.
type Option func(*Rasterizer)

// WithAssetResolver installs the resolver used for page asset refs.
func WithAssetResolver(r AssetResolver) Option {
	return func(rz *Rasterizer) {
		rz.resolver = r
	}
}

// New creates a Rasterizer.
func New(opts ...Option) *Rasterizer {
	rz := &Rasterizer{}
	for _, opt := range opts {
		opt(rz)
	}
	return rz
}

// PixelsPerMM returns the capture density for a layout.
func PixelsPerMM(layout render.Layout) float64 {
	return layout.DPI / mmPerInch * layout.Scale
}

// Rasterize captures the page. The bitmap's pixel dimensions correspond
// exactly to the page's physical size at the layout's DPI and scale.
func (rz *Rasterizer) Rasterize(ctx context.Context, page render.Page, layout render.Layout) (*Bitmap, error) {
	if err := ctx.Err(); err != nil {
		return nil, model.NewCaptureError("", "capture aborted", err)
	}

	ppmm := PixelsPerMM(layout)
	width := int(math.Round(page.WidthMM * ppmm))
	height := int(math.Round(page.HeightMM * ppmm))
	margin := int(math.Round(page.MarginMM * ppmm))

	var logo image.Image
	if page.LogoRef != "" {
		if rz.resolver == nil {
			return nil, model.NewCaptureError(page.LogoRef, "no asset resolver configured", nil)
		}
		img, err := rz.resolver.Resolve(ctx, page.LogoRef)
		if err != nil {
			return nil, model.NewCaptureError(page.LogoRef, "asset could not be resolved", err)
		}
		logo = img
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	stddraw.Draw(img, img.Bounds(), image.NewUniform(colBackground), image.Point{}, stddraw.Src)

	c := canvas{img: img, ppmm: ppmm}
	c.drawPage(page, margin, width, height, logo)

	if err := ctx.Err(); err != nil {
		return nil, model.NewCaptureError("", "capture aborted", err)
	}
	return &Bitmap{Image: img}, nil
}

// canvas wraps the pixel-level drawing primitives.
type canvas struct {
	img  *image.RGBA
	ppmm float64
}

func (c *canvas) mm(v float64) int {
	return int(math.Round(v * c.ppmm))
}

func (c *canvas) text(x, y int, s string, col color.Color) {
	d := font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

func (c *canvas) textRight(right, y int, s string, col color.Color) {
	w := font.MeasureString(basicfont.Face7x13, s).Ceil()
	c.text(right-w, y, s, col)
}

func (c *canvas) textCentered(cx, y int, s string, col color.Color) {
	w := font.MeasureString(basicfont.Face7x13, s).Ceil()
	c.text(cx-w/2, y, s, col)
}

func (c *canvas) hline(x0, x1, y, thickness int, col color.Color) {
	r := image.Rect(x0, y, x1, y+thickness)
	stddraw.Draw(c.img, r, image.NewUniform(col), image.Point{}, stddraw.Src)
}

func (c *canvas) vline(x, y0, y1, thickness int, col color.Color) {
	r := image.Rect(x, y0, x+thickness, y1)
	stddraw.Draw(c.img, r, image.NewUniform(col), image.Point{}, stddraw.Src)
}

// drawLogo scales the resolved asset into a fixed box, preserving aspect.
func (c *canvas) drawLogo(logo image.Image, x, y, box int) {
	b := logo.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return
	}
	dw, dh := box, box
	if w > h {
		dh = box * h / w
	} else {
		dw = box * w / h
	}
	dst := image.Rect(x, y, x+dw, y+dh)
	xdraw.CatmullRom.Scale(c.img, dst, logo, b, xdraw.Over, nil)
}

// Column width fractions for the body table: description takes 40%, the
// four numeric columns 15% each.
var colFractions = []float64{0.40, 0.15, 0.15, 0.15, 0.15}

func (c *canvas) drawPage(page render.Page, margin, width, height int, logo image.Image) {
	left := margin
	right := width - margin
	lineH := c.mm(5)
	y := margin + lineH

	// Seller identity block, logo to its left when present
	if logo != nil {
		box := c.mm(18)
		c.drawLogo(logo, left, margin, box)
		left += box + c.mm(4)
	}
	c.text(left, y, page.Seller.Company, colText)
	y += lineH
	for _, line := range []string{page.Seller.Trader, page.Seller.VATNumber, page.Seller.City, page.Seller.Phone} {
		if line == "" {
			continue
		}
		c.text(left, y, line, colMuted)
		y += lineH
	}

	// Invoice metadata, right aligned
	metaY := margin + lineH
	for _, entry := range page.Meta {
		c.textRight(right, metaY, entry.Label, colText)
		metaY += lineH
		c.textRight(right, metaY, entry.Value, colMuted)
		metaY += lineH
	}

	if metaY > y {
		y = metaY
	}
	c.hline(margin, right, y, c.mm(0.6), colRule)
	y += lineH * 2

	// Bill-to block
	c.text(margin, y, "BILL TO", colText)
	y += lineH
	c.text(margin, y, page.BillTo, colMuted)
	y += lineH
	c.hline(margin, right, y, c.mm(0.6), colRule)
	y += lineH * 2

	// Body table
	tableW := right - margin
	rowH := c.mm(8)
	xs := make([]int, 0, len(colFractions)+1)
	x := margin
	for _, f := range colFractions {
		xs = append(xs, x)
		x += int(float64(tableW) * f)
	}
	xs = append(xs, right)

	drawRow := func(top int, cells []string, header bool) {
		col := color.Color(colText)
		if !header {
			col = colMuted
		}
		baseline := top + rowH/2 + 4
		for i, cell := range cells {
			if cell == "" {
				continue
			}
			if i == 0 {
				c.text(xs[i]+c.mm(2), baseline, cell, col)
			} else {
				c.textRight(xs[i+1]-c.mm(2), baseline, cell, col)
			}
		}
		c.hline(margin, right, top+rowH, 1, colGrid)
		for _, gx := range xs {
			c.vline(gx, top, top+rowH, 1, colGrid)
		}
	}

	c.hline(margin, right, y, 1, colGrid)
	drawRow(y, page.Columns, true)
	y += rowH
	for _, row := range page.Rows {
		if row.Blank {
			drawRow(y, nil, false)
		} else {
			drawRow(y, []string{row.Description, row.Rate, row.Quantity, row.Discount, row.Amount}, false)
		}
		y += rowH
	}

	// Footer pinned to the bottom of the page, independent of body length
	c.textRight(right, height-margin-lineH*3, page.TotalLine, colText)
	c.textCentered(width/2, height-margin, page.FooterNote, colMuted)
}
