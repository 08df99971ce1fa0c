package export

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"github.com/jung-kurt/gofpdf"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	cellPadding = 8
	rowHeight   = 24
	titleHeight = 36
	glyphWidth  = 7 // advance of the basicfont face
)

// WritePDF renders the report table to an in-memory raster and embeds it as
// the single page of a PDF sized to the image's aspect ratio. The output is a
// print report, not a text-searchable document.
func WritePDF(path string, report Report) error {
	pdf, err := buildPDF(report)
	if err != nil {
		return err
	}
	if err := pdf.OutputFileAndClose(path); err != nil {
		return errors.Wrapf(err, "failed to save %s", path)
	}
	return nil
}

func buildPDF(report Report) (*gofpdf.Fpdf, error) {
	img := renderTableImage(report)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, errors.Wrap(err, "failed to encode report image")
	}

	bounds := img.Bounds()
	// 96dpi pixels to points
	pageW := float64(bounds.Dx()) * 72.0 / 96.0
	pageH := float64(bounds.Dy()) * 72.0 / 96.0

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: pageW, Ht: pageH},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("report", opts, &buf)
	pdf.ImageOptions("report", 0, 0, pageW, pageH, false, opts, 0, "")

	if pdf.Err() {
		return nil, errors.Errorf("failed to build pdf: %v", pdf.Error())
	}
	return pdf, nil
}

// renderTableImage draws the title and table with the fixed-width basicfont
// face, mirroring the screenshot-style export of the source report.
func renderTableImage(report Report) *image.RGBA {
	widths := columnPixelWidths(report)

	totalW := 2 * cellPadding
	for _, w := range widths {
		totalW += w
	}
	totalH := titleHeight + rowHeight*(len(report.Rows)+1) + cellPadding

	img := image.NewRGBA(image.Rect(0, 0, totalW, totalH))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	drawText(img, cellPadding, titleHeight/2+basicfont.Face7x13.Ascent, report.Title)

	headerBG := color.RGBA{R: 0x30, G: 0x54, B: 0x96, A: 0xff}
	headerRect := image.Rect(cellPadding, titleHeight, totalW-cellPadding, titleHeight+rowHeight)
	draw.Draw(img, headerRect, image.NewUniform(headerBG), image.Point{}, draw.Src)

	x := cellPadding
	for i, h := range report.Headers {
		drawTextColor(img, x+cellPadding/2, titleHeight+rowHeight-cellPadding, h, color.White)
		x += widths[i]
	}

	for r, row := range report.Rows {
		y := titleHeight + rowHeight*(r+2) - cellPadding
		x = cellPadding
		for c, cell := range row {
			if c >= len(widths) {
				break
			}
			drawText(img, x+cellPadding/2, y, cell)
			x += widths[c]
		}
	}
	return img
}

func columnPixelWidths(report Report) []int {
	widths := make([]int, len(report.Headers))
	for i, h := range report.Headers {
		widths[i] = len(h)
	}
	for _, row := range report.Rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}
	for i := range widths {
		widths[i] = widths[i]*glyphWidth + 2*cellPadding
	}
	return widths
}

func drawText(img *image.RGBA, x, y int, s string) {
	drawTextColor(img, x, y, s, color.Black)
}

func drawTextColor(img *image.RGBA, x, y int, s string, c color.Color) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}
