// internal/report/chart.go
package report

import (
	"math"
	"strconv"

	"github.com/go-pdf/fpdf"

	"github.com/inventorypro/insights/internal/domain"
)

const chartHeight = 95.0

// drawChart paints the top-items bar chart: a y axis with gridlines at
// quarter intervals, bars scaled against the maximum quantity, and item
// labels rotated to fit under the baseline. Bar color encodes urgency: red
// at zero stock, orange at five or fewer, green otherwise.
func drawChart(doc *fpdf.Fpdf, x, y, w, h float64, items []domain.Item) {
	const (
		axisPad  = 12.0
		labelPad = 24.0
	)
	plotX := x + axisPad
	plotY := y + 4
	plotW := w - axisPad
	plotH := h - labelPad - 4

	maxQty := 0
	for _, it := range items {
		if it.Quantity > maxQty {
			maxQty = it.Quantity
		}
	}
	if maxQty == 0 {
		maxQty = 1
	}

	doc.SetDrawColor(120, 120, 120)
	doc.SetLineWidth(0.3)
	doc.Line(plotX, plotY, plotX, plotY+plotH)
	doc.Line(plotX, plotY+plotH, plotX+plotW, plotY+plotH)

	doc.SetFont("Helvetica", "", 7)
	doc.SetTextColor(110, 110, 110)
	for i := 0; i <= 4; i++ {
		frac := float64(i) / 4
		gy := plotY + plotH - frac*plotH
		if i > 0 {
			doc.SetDrawColor(220, 220, 220)
			doc.Line(plotX, gy, plotX+plotW, gy)
		}
		label := strconv.Itoa(int(math.Round(frac * float64(maxQty))))
		doc.Text(plotX-2-doc.GetStringWidth(label), gy+1, label)
	}

	if len(items) == 0 {
		return
	}

	slot := plotW / float64(len(items))
	barW := slot * 0.6
	for i, it := range items {
		bh := float64(it.Quantity) / float64(maxQty) * plotH
		if bh < 0.8 {
			// keep a visible stub for zero-quantity bars
			bh = 0.8
		}
		bx := plotX + float64(i)*slot + (slot-barW)/2
		by := plotY + plotH - bh

		switch {
		case it.Quantity == 0:
			doc.SetFillColor(244, 67, 54)
		case it.Quantity <= 5:
			doc.SetFillColor(255, 152, 0)
		default:
			doc.SetFillColor(76, 175, 80)
		}
		doc.Rect(bx, by, barW, bh, "F")

		label := truncate(it.Name, 18)
		doc.SetTextColor(60, 60, 60)
		doc.TransformBegin()
		lx := bx + barW/2
		ly := plotY + plotH + 4
		doc.TransformRotate(-40, lx, ly)
		doc.Text(lx-doc.GetStringWidth(label), ly, label)
		doc.TransformEnd()
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
