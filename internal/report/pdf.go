// internal/report/pdf.go
package report

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/inventorypro/insights/internal/config"
)

// Page geometry in millimetres, A4 portrait. Auto page breaking is disabled:
// pagination is decided up front by Paginate so every page is drawn knowing
// the final page count.
const (
	pageWidth     = 210.0
	pageHeight    = 297.0
	marginLeft    = 15.0
	marginRight   = 15.0
	contentWidth  = pageWidth - marginLeft - marginRight
	contentTop    = 32.0
	contentBudget = 248.0
	footerY       = 287.0
)

// PDFRenderer produces the paginated printable document.
type PDFRenderer struct {
	Title     string
	Watermark string
}

func NewPDFRenderer(cfg config.ExportConfig) *PDFRenderer {
	return &PDFRenderer{Title: cfg.ProductTitle, Watermark: cfg.WatermarkText}
}

// Render runs the two-pass layout: content blocks are paginated against the
// fixed budget first, then each realized page is drawn and decorated with
// header band, watermark and "Page X of Y" footer.
func (r *PDFRenderer) Render(snap *Snapshot, t Type) ([]byte, error) {
	pages := Paginate(Blocks(snap, t), contentBudget)

	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetAutoPageBreak(false, 0)
	doc.SetTitle(t.Title(), true)

	for i, page := range pages {
		doc.AddPage()
		r.drawWatermark(doc)
		r.drawHeader(doc, snap)
		y := contentTop
		for _, b := range page.Blocks {
			y = drawBlock(doc, b, y)
		}
		drawFooter(doc, i+1, len(pages))
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *PDFRenderer) drawHeader(doc *fpdf.Fpdf, snap *Snapshot) {
	doc.SetFont("Helvetica", "B", 12)
	doc.SetTextColor(33, 33, 33)
	doc.Text(marginLeft, 16, r.Title)

	doc.SetFont("Helvetica", "", 9)
	doc.SetTextColor(110, 110, 110)
	stamp := "Report generated: " + snap.GeneratedAt.Format("2006-01-02 15:04")
	doc.Text(pageWidth-marginRight-doc.GetStringWidth(stamp), 16, stamp)

	doc.SetDrawColor(33, 150, 243)
	doc.SetLineWidth(0.4)
	doc.Line(marginLeft, 20, pageWidth-marginRight, 20)
}

// drawWatermark stamps the low-opacity diagonal text across the page center,
// under the content.
func (r *PDFRenderer) drawWatermark(doc *fpdf.Fpdf) {
	if r.Watermark == "" {
		return
	}
	doc.SetFont("Helvetica", "B", 60)
	doc.SetTextColor(160, 160, 160)
	doc.SetAlpha(0.08, "Normal")
	doc.TransformBegin()
	doc.TransformRotate(45, pageWidth/2, pageHeight/2)
	w := doc.GetStringWidth(r.Watermark)
	doc.Text(pageWidth/2-w/2, pageHeight/2, r.Watermark)
	doc.TransformEnd()
	doc.SetAlpha(1, "Normal")
}

func drawFooter(doc *fpdf.Fpdf, page, total int) {
	doc.SetFont("Helvetica", "", 9)
	doc.SetTextColor(110, 110, 110)
	label := fmt.Sprintf("Page %d of %d", page, total)
	doc.Text(pageWidth/2-doc.GetStringWidth(label)/2, footerY, label)
}

// drawBlock paints one block at the vertical cursor and returns the advanced
// cursor. Heights must agree with Block.Height or pagination drifts.
func drawBlock(doc *fpdf.Fpdf, b Block, y float64) float64 {
	switch blk := b.(type) {
	case Heading:
		size := 11.0
		switch blk.Level {
		case 1:
			size = 18
		case 2:
			size = 14
		}
		doc.SetFont("Helvetica", "B", size)
		doc.SetTextColor(33, 33, 33)
		doc.Text(marginLeft, y+blk.Height()-3, blk.Text)
	case Paragraph:
		doc.SetFont("Helvetica", "", 10)
		doc.SetTextColor(60, 60, 60)
		doc.Text(marginLeft, y+4.5, blk.Text)
	case Bullet:
		doc.SetFont("Helvetica", "", 10)
		doc.SetTextColor(60, 60, 60)
		doc.SetFillColor(60, 60, 60)
		doc.Circle(marginLeft+1.5, y+2.8, 0.6, "F")
		doc.Text(marginLeft+5, y+4, blk.Text)
	case TableHead:
		doc.SetFont("Helvetica", "B", 9)
		doc.SetFillColor(33, 150, 243)
		doc.SetTextColor(255, 255, 255)
		doc.SetDrawColor(200, 200, 200)
		doc.SetXY(marginLeft, y)
		for _, col := range blk.Columns {
			doc.CellFormat(col.Width, blk.Height(), col.Title, "1", 0, col.Align, true, 0, "")
		}
	case TableRow:
		if blk.Kind == RowFooter {
			doc.SetFont("Helvetica", "B", 9)
			doc.SetFillColor(230, 230, 230)
		} else {
			doc.SetFont("Helvetica", "", 9)
			doc.SetFillColor(255, 255, 255)
		}
		doc.SetTextColor(50, 50, 50)
		doc.SetDrawColor(200, 200, 200)
		doc.SetXY(marginLeft, y)
		for i, col := range blk.Columns {
			cell := ""
			if i < len(blk.Cells) {
				cell = blk.Cells[i]
			}
			doc.CellFormat(col.Width, blk.Height(), cell, "1", 0, col.Align, true, 0, "")
		}
	case Chart:
		drawChart(doc, marginLeft, y, contentWidth, blk.Height(), blk.Items)
	}
	return y + b.Height()
}
