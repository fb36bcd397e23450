// internal/report/blocks.go
package report

import "github.com/inventorypro/insights/internal/domain"

// Block is one logical unit of report content. Height is the vertical space
// in millimetres the block occupies when drawn; pagination never splits a
// block across pages.
type Block interface {
	Height() float64
}

// PageBreak forces the following block onto a fresh page.
type PageBreak struct{}

func (PageBreak) Height() float64 { return 0 }

// Heading levels: 1 report title, 2 section, 3 subsection.
type Heading struct {
	Text  string
	Level int
}

func (h Heading) Height() float64 {
	switch h.Level {
	case 1:
		return 14
	case 2:
		return 10
	default:
		return 8
	}
}

type Paragraph struct {
	Text string
}

func (Paragraph) Height() float64 { return 6 }

type Bullet struct {
	Text string
}

func (Bullet) Height() float64 { return 5.5 }

type Spacer struct {
	Gap float64
}

func (s Spacer) Height() float64 { return s.Gap }

// RowKind selects the fill and weight of a table row.
type RowKind int

const (
	RowData RowKind = iota
	RowFooter
)

// TableColumn carries the layout of one column; Width is in millimetres and
// Align uses the fpdf alignment letters.
type TableColumn struct {
	Title string
	Width float64
	Align string
}

type TableHead struct {
	Columns []TableColumn
}

func (TableHead) Height() float64 { return 8 }

type TableRow struct {
	Columns []TableColumn
	Cells   []string
	Kind    RowKind
}

func (TableRow) Height() float64 { return 7 }

// Chart is the top-items bar chart on the consolidated summary page.
type Chart struct {
	Items []domain.Item
}

func (Chart) Height() float64 { return chartHeight }
