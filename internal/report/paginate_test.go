package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilenameConvention(t *testing.T) {
	at := time.Date(2025, 3, 9, 14, 30, 0, 0, time.UTC)

	assert.Equal(t, "low-stock-report-2025-03-09.pdf", Filename(TypeLowStock, FormatPDF, at))
	assert.Equal(t, "full-inventory-report-2025-03-09.xlsx", Filename(TypeFullInventory, FormatXLSX, at))
	assert.Equal(t, "sold-items-report-2025-03-09.pdf", Filename(TypeSoldItems, FormatPDF, at))
	assert.Equal(t, "consolidated-inventory-report-2025-03-09.xlsx", Filename(TypeConsolidated, FormatXLSX, at))
}

func TestParseTypeAndFormat(t *testing.T) {
	typ, err := ParseType("low-stock")
	require.NoError(t, err)
	assert.Equal(t, TypeLowStock, typ)

	_, err = ParseType("weekly-digest")
	assert.ErrorIs(t, err, ErrUnknownType)

	format, err := ParseFormat("xlsx")
	require.NoError(t, err)
	assert.Equal(t, FormatXLSX, format)

	_, err = ParseFormat("docx")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func pageHeightOf(p Page) float64 {
	total := 0.0
	for _, b := range p.Blocks {
		total += b.Height()
	}
	return total
}

func TestPaginateNeverOverflowsBudget(t *testing.T) {
	blocks := []Block{}
	for i := 0; i < 40; i++ {
		blocks = append(blocks, Paragraph{Text: "line"})
	}

	pages := Paginate(blocks, 50)

	require.Greater(t, len(pages), 1)
	total := 0
	for _, p := range pages {
		assert.LessOrEqual(t, pageHeightOf(p), 50.0)
		total += len(p.Blocks)
	}
	assert.Equal(t, 40, total, "no block lost or duplicated")
}

func TestPaginateHonorsHardBreaks(t *testing.T) {
	blocks := []Block{
		Heading{Text: "first", Level: 2},
		PageBreak{},
		Heading{Text: "second", Level: 2},
		PageBreak{},
		PageBreak{}, // consecutive breaks do not emit blank pages
		Heading{Text: "third", Level: 2},
	}

	pages := Paginate(blocks, 200)

	require.Len(t, pages, 3)
	assert.Equal(t, Heading{Text: "first", Level: 2}, pages[0].Blocks[0])
	assert.Equal(t, Heading{Text: "second", Level: 2}, pages[1].Blocks[0])
	assert.Equal(t, Heading{Text: "third", Level: 2}, pages[2].Blocks[0])
}

func TestPaginateReemitsTableHeadAfterBreak(t *testing.T) {
	cols := []TableColumn{{Title: "Name", Width: 100, Align: "L"}}
	blocks := []Block{TableHead{Columns: cols}}
	for i := 0; i < 10; i++ {
		blocks = append(blocks, TableRow{Columns: cols, Cells: []string{"x"}})
	}

	// budget fits the head plus four rows
	pages := Paginate(blocks, 8+4*7)

	require.Greater(t, len(pages), 1)
	for _, p := range pages {
		require.NotEmpty(t, p.Blocks)
		_, isHead := p.Blocks[0].(TableHead)
		assert.True(t, isHead, "every table page must open with the header row")
	}
}

func TestPaginateOversizeBlockGetsOwnPage(t *testing.T) {
	blocks := []Block{
		Paragraph{Text: "before"},
		Spacer{Gap: 500}, // taller than any budget
		Paragraph{Text: "after"},
	}

	pages := Paginate(blocks, 100)

	require.Len(t, pages, 3)
	assert.Len(t, pages[1].Blocks, 1)
}

func TestPaginateEmptyInputYieldsOneBlankPage(t *testing.T) {
	pages := Paginate(nil, 100)
	require.Len(t, pages, 1)
	assert.Empty(t, pages[0].Blocks)
}
