// Package pdf assembles the portable document artifact: a single page
// sized to the physical page dimensions with the captured bitmap
// embedded at full size.
package pdf

import (
	"bytes"

	"github.com/jung-kurt/gofpdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	pdfmodel "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/rezonia/invoice-studio/internal/model"
)

// MIMEType is the artifact media type.
const MIMEType = "application/pdf"

// Package embeds the PNG-encoded bitmap into a one-page PDF whose page
// box measures exactly widthMM x heightMM. The image is placed at the
// origin covering the full page, so the visible page is neither cropped
// nor stretched out of aspect. Pixel data is embedded as-is; no
// recompression happens here.
func Package(pngData []byte, widthMM, heightMM float64) ([]byte, error) {
	if len(pngData) == 0 {
		return nil, model.NewPackagingError("empty bitmap", nil)
	}

	doc := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           gofpdf.SizeType{Wd: widthMM, Ht: heightMM},
	})
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	doc.RegisterImageOptionsReader("page", opts, bytes.NewReader(pngData))
	doc.ImageOptions("page", 0, 0, widthMM, heightMM, false, opts, 0, "")

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, model.NewPackagingError("failed to assemble document", err)
	}
	return buf.Bytes(), nil
}

// Dims describes a verified artifact.
type Dims struct {
	Pages    int
	WidthMM  float64
	HeightMM float64
}

const mmPerPoint = 25.4 / 72

// Verify validates the artifact and reads back its page count and page
// dimensions in millimetres. The A4 physical page contract is checked
// against these values.
func Verify(data []byte) (*Dims, error) {
	conf := pdfmodel.NewDefaultConfiguration()
	rs := bytes.NewReader(data)

	if err := api.Validate(rs, conf); err != nil {
		return nil, model.NewPackagingError("artifact failed validation", err)
	}

	dims, err := api.PageDims(bytes.NewReader(data), conf)
	if err != nil {
		return nil, model.NewPackagingError("failed to read page dimensions", err)
	}
	if len(dims) == 0 {
		return nil, model.NewPackagingError("artifact has no pages", nil)
	}

	return &Dims{
		Pages:    len(dims),
		WidthMM:  dims[0].Width * mmPerPoint,
		HeightMM: dims[0].Height * mmPerPoint,
	}, nil
}
