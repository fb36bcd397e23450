// internal/report/builder.go
package report

import (
	"fmt"
	"strconv"

	"github.com/inventorypro/insights/internal/analysis"
)

// Blocks assembles the ordered logical content for a report type. This is
// the first layout pass: pages and decorations are applied afterwards by
// Paginate and the renderer, so everything here stays pure and testable.
func Blocks(snap *Snapshot, t Type) []Block {
	switch t {
	case TypeLowStock:
		return append(titleBlocks(t), lowStockTable(snap)...)
	case TypeFullInventory:
		return append(titleBlocks(t), fullInventoryTable(snap)...)
	case TypeSoldItems:
		return append(titleBlocks(t), soldItemsTable(snap)...)
	case TypeConsolidated:
		blocks := summaryBlocks(snap, t)
		if snap.Health != nil {
			blocks = append(blocks, PageBreak{})
			blocks = append(blocks, healthBlocks(snap.Health)...)
		}
		blocks = append(blocks, PageBreak{}, Heading{Text: "Low Stock Items", Level: 2})
		blocks = append(blocks, lowStockTable(snap)...)
		blocks = append(blocks, PageBreak{}, Heading{Text: "Full Inventory", Level: 2})
		blocks = append(blocks, fullInventoryTable(snap)...)
		blocks = append(blocks, PageBreak{}, Heading{Text: "Sold Items", Level: 2})
		blocks = append(blocks, soldItemsTable(snap)...)
		return blocks
	}
	return titleBlocks(t)
}

func titleBlocks(t Type) []Block {
	return []Block{Heading{Text: t.Title(), Level: 1}, Spacer{Gap: 4}}
}

// summaryBlocks is the consolidated cover page: headline figures and the
// top-items bar chart.
func summaryBlocks(snap *Snapshot, t Type) []Block {
	return []Block{
		Heading{Text: t.Title(), Level: 1},
		Paragraph{Text: fmt.Sprintf("Total items: %d", len(snap.Items))},
		Paragraph{Text: fmt.Sprintf("Total categories: %d", len(snap.Categories))},
		Paragraph{Text: fmt.Sprintf("Out of stock: %d", len(snap.OutOfStock))},
		Paragraph{Text: fmt.Sprintf("Below reorder point: %d", len(snap.BelowReorder))},
		Paragraph{Text: "Total inventory value: " + money(snap.TotalInventoryValue)},
		Spacer{Gap: 6},
		Heading{Text: "Top Items by Quantity", Level: 2},
		Chart{Items: snap.TopItems},
	}
}

func healthBlocks(h *analysis.HealthReportResult) []Block {
	blocks := []Block{
		Heading{Text: "Inventory Health", Level: 2},
		Paragraph{Text: fmt.Sprintf("Overall health score: %d / 100", h.OverallHealthScore)},
		Spacer{Gap: 4},
	}
	for _, sec := range h.Analysis {
		blocks = append(blocks, Heading{Text: sec.Title, Level: 3})
		for _, p := range sec.Points {
			blocks = append(blocks, Bullet{Text: p})
		}
		blocks = append(blocks, Spacer{Gap: 2})
	}
	blocks = append(blocks, Heading{Text: "Low Stock Items", Level: 3})
	blocks = append(blocks, snapshotTable(h.LowStockItems)...)
	blocks = append(blocks, Spacer{Gap: 4}, Heading{Text: "In-Stock Items", Level: 3})
	blocks = append(blocks, snapshotTable(h.InStockItems)...)
	return blocks
}

// lowStockTable lists the out-of-stock items. Quantity zero, not the
// reorder-point badge predicate: the dashboard badge and this report read
// different sets.
func lowStockTable(snap *Snapshot) []Block {
	cols := []TableColumn{
		{Title: "Name", Width: 60, Align: "L"},
		{Title: "SKU", Width: 30, Align: "L"},
		{Title: "Quantity", Width: 25, Align: "R"},
		{Title: "Reorder Point", Width: 30, Align: "R"},
		{Title: "Supplier", Width: 35, Align: "L"},
	}
	rows := make([][]string, 0, len(snap.OutOfStock))
	for _, it := range snap.OutOfStock {
		rows = append(rows, []string{
			it.Name, it.SKU, strconv.Itoa(it.Quantity), strconv.Itoa(it.ReorderPoint), it.SupplierName,
		})
	}
	return table(cols, rows, nil)
}

func fullInventoryTable(snap *Snapshot) []Block {
	cols := []TableColumn{
		{Title: "Name", Width: 55, Align: "L"},
		{Title: "SKU", Width: 28, Align: "L"},
		{Title: "Category", Width: 37, Align: "L"},
		{Title: "Quantity", Width: 25, Align: "R"},
		{Title: "Price", Width: 35, Align: "R"},
	}
	rows := make([][]string, 0, len(snap.Items))
	for _, it := range snap.Items {
		rows = append(rows, []string{
			it.Name, it.SKU, snap.CategoryName(it.CategoryID), strconv.Itoa(it.Quantity), money(it.Price),
		})
	}
	return table(cols, rows, nil)
}

// soldItemsTable ends with the total-revenue footer row.
func soldItemsTable(snap *Snapshot) []Block {
	cols := []TableColumn{
		{Title: "Name", Width: 50, Align: "L"},
		{Title: "SKU", Width: 28, Align: "L"},
		{Title: "Quantity Sold", Width: 27, Align: "R"},
		{Title: "Price", Width: 35, Align: "R"},
		{Title: "Revenue", Width: 40, Align: "R"},
	}
	rows := make([][]string, 0, len(snap.Sold))
	for _, s := range snap.Sold {
		rows = append(rows, []string{
			s.Name, s.SKU, strconv.Itoa(s.QuantitySold), money(s.Price),
			money(float64(s.QuantitySold) * s.Price),
		})
	}
	footer := []string{"", "", "", "Total Revenue", money(snap.TotalRevenue)}
	return table(cols, rows, footer)
}

func snapshotTable(items []analysis.ItemSnapshot) []Block {
	cols := []TableColumn{
		{Title: "Name", Width: 80, Align: "L"},
		{Title: "Quantity", Width: 50, Align: "R"},
		{Title: "Price", Width: 50, Align: "R"},
	}
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		rows = append(rows, []string{it.Name, strconv.Itoa(it.Quantity), money(it.Price)})
	}
	return table(cols, rows, nil)
}

func table(cols []TableColumn, rows [][]string, footer []string) []Block {
	blocks := []Block{TableHead{Columns: cols}}
	if len(rows) == 0 && footer == nil {
		return append(blocks, Paragraph{Text: "No records."})
	}
	for _, r := range rows {
		blocks = append(blocks, TableRow{Columns: cols, Cells: r, Kind: RowData})
	}
	if footer != nil {
		blocks = append(blocks, TableRow{Columns: cols, Cells: footer, Kind: RowFooter})
	}
	return blocks
}

func money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}
