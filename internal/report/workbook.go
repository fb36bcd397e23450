// internal/report/workbook.go
package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const (
	SheetLowStock      = "Low Stock Items"
	SheetFullInventory = "Full Inventory"
	SheetInStock       = "In-Stock Items"
	SheetSoldItems     = "Sold Items"
	SheetCategories    = "Categories"
)

func sheetsFor(t Type) []string {
	switch t {
	case TypeLowStock:
		return []string{SheetLowStock}
	case TypeFullInventory:
		return []string{SheetFullInventory}
	case TypeSoldItems:
		return []string{SheetSoldItems}
	default:
		return []string{SheetLowStock, SheetFullInventory, SheetInStock, SheetSoldItems, SheetCategories}
	}
}

// BuildWorkbook renders the snapshot into a workbook. The consolidated type
// carries all five sheets, present even when their collections are empty;
// the focused types carry their single sheet.
func BuildWorkbook(snap *Snapshot, t Type) (*excelize.File, error) {
	f := excelize.NewFile()

	sheets := sheetsFor(t)
	if err := f.SetSheetName("Sheet1", sheets[0]); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	for _, name := range sheets[1:] {
		if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("add sheet %s: %w", name, err)
		}
	}

	headStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"2196F3"}},
	})
	if err != nil {
		return nil, fmt.Errorf("workbook header style: %w", err)
	}
	footStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"E6E6E6"}},
	})
	if err != nil {
		return nil, fmt.Errorf("workbook footer style: %w", err)
	}

	for _, name := range sheets {
		if err := fillSheet(f, name, snap, headStyle, footStyle); err != nil {
			return nil, err
		}
	}
	f.SetActiveSheet(0)
	return f, nil
}

func fillSheet(f *excelize.File, name string, snap *Snapshot, headStyle, footStyle int) error {
	switch name {
	case SheetLowStock:
		if err := writeHeader(f, name, headStyle, []string{"Name", "SKU", "Quantity", "Reorder Point", "Supplier"}); err != nil {
			return err
		}
		// out-of-stock set; the reorder-point predicate stays on the dashboard
		for i, it := range snap.OutOfStock {
			row := []interface{}{it.Name, it.SKU, it.Quantity, it.ReorderPoint, it.SupplierName}
			if err := writeRow(f, name, i+2, row); err != nil {
				return err
			}
		}

	case SheetFullInventory:
		if err := writeHeader(f, name, headStyle, []string{"Name", "SKU", "Category", "Quantity", "Price"}); err != nil {
			return err
		}
		for i, it := range snap.Items {
			row := []interface{}{it.Name, it.SKU, snap.CategoryName(it.CategoryID), it.Quantity, it.Price}
			if err := writeRow(f, name, i+2, row); err != nil {
				return err
			}
		}

	case SheetInStock:
		if err := writeHeader(f, name, headStyle, []string{"Name", "SKU", "Quantity", "Price"}); err != nil {
			return err
		}
		for i, it := range snap.InStock {
			row := []interface{}{it.Name, it.SKU, it.Quantity, it.Price}
			if err := writeRow(f, name, i+2, row); err != nil {
				return err
			}
		}

	case SheetSoldItems:
		if err := writeHeader(f, name, headStyle, []string{"Name", "SKU", "Quantity Sold", "Price", "Revenue"}); err != nil {
			return err
		}
		for i, s := range snap.Sold {
			row := []interface{}{s.Name, s.SKU, s.QuantitySold, s.Price, float64(s.QuantitySold) * s.Price}
			if err := writeRow(f, name, i+2, row); err != nil {
				return err
			}
		}
		// trailing total-revenue summary row at a fixed column position
		rowIdx := len(snap.Sold) + 2
		if err := f.SetCellValue(name, fmt.Sprintf("D%d", rowIdx), "Total Revenue"); err != nil {
			return fmt.Errorf("sheet %s summary: %w", name, err)
		}
		if err := f.SetCellValue(name, fmt.Sprintf("E%d", rowIdx), snap.TotalRevenue); err != nil {
			return fmt.Errorf("sheet %s summary: %w", name, err)
		}
		if err := f.SetCellStyle(name, fmt.Sprintf("A%d", rowIdx), fmt.Sprintf("E%d", rowIdx), footStyle); err != nil {
			return fmt.Errorf("sheet %s summary style: %w", name, err)
		}

	case SheetCategories:
		if err := writeHeader(f, name, headStyle, []string{"Name", "Description", "Item Count"}); err != nil {
			return err
		}
		for i, c := range snap.Categories {
			// recomputed from the item set, not the cached counter
			row := []interface{}{c.Name, c.Description, snap.CategoryCounts[c.ID]}
			if err := writeRow(f, name, i+2, row); err != nil {
				return err
			}
		}
	}

	if err := f.SetColWidth(name, "A", "A", 28); err != nil {
		return fmt.Errorf("sheet %s widths: %w", name, err)
	}
	return f.SetColWidth(name, "B", "E", 16)
}

func writeHeader(f *excelize.File, sheet string, style int, titles []string) error {
	row := make([]interface{}, len(titles))
	for i, title := range titles {
		row[i] = title
	}
	if err := f.SetSheetRow(sheet, "A1", &row); err != nil {
		return fmt.Errorf("sheet %s header: %w", sheet, err)
	}
	end, err := excelize.CoordinatesToCellName(len(titles), 1)
	if err != nil {
		return fmt.Errorf("sheet %s header: %w", sheet, err)
	}
	if err := f.SetCellStyle(sheet, "A1", end, style); err != nil {
		return fmt.Errorf("sheet %s header style: %w", sheet, err)
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, rowIdx int, row []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, rowIdx)
	if err != nil {
		return fmt.Errorf("sheet %s row %d: %w", sheet, rowIdx, err)
	}
	if err := f.SetSheetRow(sheet, cell, &row); err != nil {
		return fmt.Errorf("sheet %s row %d: %w", sheet, rowIdx, err)
	}
	return nil
}
