package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inventorypro/insights/internal/analysis"
)

func headings(blocks []Block) []string {
	var out []string
	for _, b := range blocks {
		if h, ok := b.(Heading); ok {
			out = append(out, h.Text)
		}
	}
	return out
}

func TestConsolidatedBlockOrder(t *testing.T) {
	snap := testSnapshot(t)
	snap.Health = &analysis.HealthReportResult{
		OverallHealthScore: 72,
		Analysis: []analysis.HealthSection{
			{Title: "Stock Coverage", Points: []string{"Two items sit at or under their reorder point."}},
		},
	}

	got := headings(Blocks(snap, TypeConsolidated))

	want := []string{
		"Consolidated Inventory Report",
		"Top Items by Quantity",
		"Inventory Health",
		"Stock Coverage",
		"Low Stock Items", // health snapshot table
		"In-Stock Items",
		"Low Stock Items",
		"Full Inventory",
		"Sold Items",
	}
	assert.Equal(t, want, got)
}

func TestConsolidatedWithoutHealthSkipsHealthSection(t *testing.T) {
	snap := testSnapshot(t)

	got := headings(Blocks(snap, TypeConsolidated))
	assert.NotContains(t, got, "Inventory Health")
	assert.Contains(t, got, "Full Inventory")
}

func TestSectionsSeparatedByHardBreaks(t *testing.T) {
	snap := testSnapshot(t)
	blocks := Blocks(snap, TypeConsolidated)

	breaks := 0
	for _, b := range blocks {
		if _, ok := b.(PageBreak); ok {
			breaks++
		}
	}
	assert.Equal(t, 3, breaks, "summary / low stock / full inventory / sold items")
}

func TestSoldItemsFooterRowCarriesTotalRevenue(t *testing.T) {
	snap := testSnapshot(t)
	blocks := Blocks(snap, TypeSoldItems)

	var footer *TableRow
	for _, b := range blocks {
		if row, ok := b.(TableRow); ok && row.Kind == RowFooter {
			footer = &row
			break
		}
	}
	require.NotNil(t, footer)
	assert.Equal(t, "Total Revenue", footer.Cells[3])
	assert.Equal(t, "$20.25", footer.Cells[4])
}

func TestEmptyTableRendersPlaceholder(t *testing.T) {
	snap := testSnapshot(t)
	snap.OutOfStock = nil
	blocks := Blocks(snap, TypeLowStock)

	require.Len(t, blocks, 4)
	assert.Equal(t, Paragraph{Text: "No records."}, blocks[3])
}

func TestLowStockTableExcludesPositiveStock(t *testing.T) {
	snap := testSnapshot(t)
	blocks := Blocks(snap, TypeLowStock)

	found := 0
	for _, b := range blocks {
		if row, ok := b.(TableRow); ok && row.Kind == RowData {
			found++
			assert.Equal(t, "0", row.Cells[2], "only quantity-zero items appear: %v", row.Cells)
			assert.NotEqual(t, "Gizmo", row.Cells[0], "below-reorder item with stock must not leak in")
		}
	}
	assert.Equal(t, 1, found)
}

func TestSummaryLineKeepsBelowReorderCount(t *testing.T) {
	snap := testSnapshot(t)
	blocks := Blocks(snap, TypeConsolidated)

	var texts []string
	for _, b := range blocks {
		if p, ok := b.(Paragraph); ok {
			texts = append(texts, p.Text)
		}
	}
	assert.Contains(t, texts, "Out of stock: 1")
	assert.Contains(t, texts, "Below reorder point: 2")
}

func TestChartBlockCarriesTopItems(t *testing.T) {
	snap := testSnapshot(t)
	blocks := Blocks(snap, TypeConsolidated)

	var chart *Chart
	for _, b := range blocks {
		if c, ok := b.(Chart); ok {
			chart = &c
			break
		}
	}
	require.NotNil(t, chart)
	require.Len(t, chart.Items, 3)
	assert.Equal(t, "Widget", chart.Items[0].Name, "descending by quantity")
}
