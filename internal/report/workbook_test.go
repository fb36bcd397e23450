package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/inventorypro/insights/internal/domain"
	"github.com/inventorypro/insights/internal/metrics"
)

func testSnapshot(t *testing.T) *Snapshot {
	t.Helper()
	items := []domain.Item{
		{ID: "i1", Name: "Widget", SKU: "WID-1", CategoryID: "c1", Quantity: 12, Price: 4.25, SupplierName: "Acme", ReorderPoint: 5},
		{ID: "i2", Name: "Gadget", SKU: "GAD-1", CategoryID: "c1", Quantity: 0, Price: 19.99, SupplierName: "Acme", ReorderPoint: 3},
		{ID: "i3", Name: "Gizmo", SKU: "GIZ-1", CategoryID: "c2", Quantity: 2, Price: 7.5, SupplierName: "Globex", ReorderPoint: 4},
	}
	metrics.Apply(items)
	categories := []domain.Category{
		{ID: "c1", Name: "Hardware", ItemCount: 2},
		{ID: "c2", Name: "Misc", ItemCount: 1},
	}
	sold := []domain.SoldItem{
		{ID: "s1", ItemID: "i1", Name: "Widget", SKU: "WID-1", QuantitySold: 3, Price: 4.25},
		{ID: "s2", ItemID: "i3", Name: "Gizmo", SKU: "GIZ-1", QuantitySold: 1, Price: 7.5},
	}
	at := time.Date(2025, 3, 9, 10, 0, 0, 0, time.UTC)
	return BuildSnapshot(items, categories, sold, nil, at)
}

func reopen(t *testing.T, f *excelize.File) *excelize.File {
	t.Helper()
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	reopened, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	return reopened
}

func TestEmptyConsolidatedWorkbookHasFiveSheets(t *testing.T) {
	snap := BuildSnapshot(nil, nil, nil, nil, time.Now())

	f, err := BuildWorkbook(snap, TypeConsolidated)
	require.NoError(t, err)

	reopened := reopen(t, f)
	assert.ElementsMatch(t,
		[]string{SheetLowStock, SheetFullInventory, SheetInStock, SheetSoldItems, SheetCategories},
		reopened.GetSheetList())

	rows, err := reopened.GetRows(SheetFullInventory)
	require.NoError(t, err)
	require.Len(t, rows, 1, "header only")
}

func TestFocusedWorkbookHasSingleSheet(t *testing.T) {
	snap := testSnapshot(t)

	f, err := BuildWorkbook(snap, TypeLowStock)
	require.NoError(t, err)

	reopened := reopen(t, f)
	assert.Equal(t, []string{SheetLowStock}, reopened.GetSheetList())
}

func TestFullInventorySheetRoundTrip(t *testing.T) {
	snap := testSnapshot(t)

	f, err := BuildWorkbook(snap, TypeFullInventory)
	require.NoError(t, err)
	reopened := reopen(t, f)

	rows, err := reopened.GetRows(SheetFullInventory)
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, []string{"Name", "SKU", "Category", "Quantity", "Price"}, rows[0])
	assert.Equal(t, []string{"Widget", "WID-1", "Hardware", "12", "4.25"}, rows[1])
	assert.Equal(t, []string{"Gadget", "GAD-1", "Hardware", "0", "19.99"}, rows[2])
	assert.Equal(t, []string{"Gizmo", "GIZ-1", "Misc", "2", "7.5"}, rows[3])
}

func TestSoldItemsSheetAppendsTotalRevenueRow(t *testing.T) {
	snap := testSnapshot(t)

	f, err := BuildWorkbook(snap, TypeSoldItems)
	require.NoError(t, err)
	reopened := reopen(t, f)

	// two ledger rows, summary lands on row 4: label in D, figure in E
	label, err := reopened.GetCellValue(SheetSoldItems, "D4")
	require.NoError(t, err)
	assert.Equal(t, "Total Revenue", label)

	value, err := reopened.GetCellValue(SheetSoldItems, "E4")
	require.NoError(t, err)
	assert.Equal(t, "20.25", value)
}

func TestLowStockSheetIsOutOfStockSet(t *testing.T) {
	snap := testSnapshot(t)

	f, err := BuildWorkbook(snap, TypeConsolidated)
	require.NoError(t, err)
	reopened := reopen(t, f)

	rows, err := reopened.GetRows(SheetLowStock)
	require.NoError(t, err)
	// Only Gadget is at zero. Gizmo (quantity 2, reorder point 4) belongs to
	// the dashboard badge set, never to this sheet.
	require.Len(t, rows, 2)
	assert.Equal(t, "Gadget", rows[1][0])
	for _, row := range rows[1:] {
		assert.NotEqual(t, "Gizmo", row[0])
		assert.Equal(t, "0", row[2])
	}

	inStock, err := reopened.GetRows(SheetInStock)
	require.NoError(t, err)
	require.Len(t, inStock, 3, "header plus the two items with stock")
}

func TestCategoriesSheetRecomputesCounts(t *testing.T) {
	snap := testSnapshot(t)
	// stale cached counter must not leak into the report
	snap.Categories[0].ItemCount = 99
	snap.CategoryCounts["c1"] = 2

	f, err := BuildWorkbook(snap, TypeConsolidated)
	require.NoError(t, err)
	reopened := reopen(t, f)

	rows, err := reopened.GetRows(SheetCategories)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Hardware", "", "2"}, rows[1])
}
