// internal/report/snapshot.go
package report

import (
	"errors"
	"fmt"
	"time"

	"github.com/inventorypro/insights/internal/aggregate"
	"github.com/inventorypro/insights/internal/analysis"
	"github.com/inventorypro/insights/internal/domain"
)

// Type identifies one of the four report products.
type Type string

const (
	TypeLowStock      Type = "low-stock"
	TypeFullInventory Type = "full-inventory"
	TypeSoldItems     Type = "sold-items"
	TypeConsolidated  Type = "consolidated-inventory"
)

// Format selects the rendered artifact.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatXLSX Format = "xlsx"
)

var (
	ErrUnknownType   = errors.New("unknown report type")
	ErrUnknownFormat = errors.New("unknown report format")
)

func ParseType(s string) (Type, error) {
	switch Type(s) {
	case TypeLowStock, TypeFullInventory, TypeSoldItems, TypeConsolidated:
		return Type(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownType, s)
}

func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatPDF, FormatXLSX:
		return Format(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Title is the human heading printed on the document itself.
func (t Type) Title() string {
	switch t {
	case TypeLowStock:
		return "Low Stock Report"
	case TypeFullInventory:
		return "Full Inventory Report"
	case TypeSoldItems:
		return "Sold Items Report"
	case TypeConsolidated:
		return "Consolidated Inventory Report"
	}
	return "Inventory Report"
}

// Filename follows the convention <report-type>-report-<YYYY-MM-DD>.<ext>.
func Filename(t Type, f Format, at time.Time) string {
	return fmt.Sprintf("%s-report-%s.%s", t, at.Format("2006-01-02"), f)
}

// Snapshot is the immutable dataset a single export renders from. A dual
// export derives both formats from the same snapshot so their figures cannot
// diverge, and every figure here is recomputed from the collections rather
// than read from cached counters.
type Snapshot struct {
	GeneratedAt time.Time
	Items       []domain.Item
	Categories  []domain.Category
	Sold        []domain.SoldItem

	OutOfStock   []domain.Item
	InStock      []domain.Item
	BelowReorder []domain.Item
	TopItems     []domain.Item

	TotalInventoryValue float64
	TotalRevenue        float64
	CategoryNames       map[string]string
	CategoryCounts      map[string]int

	Health *analysis.HealthReportResult
}

// BuildSnapshot freezes the collections and their aggregates. Items are
// expected to carry derived metrics already (the repository applies them on
// load).
func BuildSnapshot(items []domain.Item, categories []domain.Category, sold []domain.SoldItem, health *analysis.HealthReportResult, at time.Time) *Snapshot {
	names := make(map[string]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}
	return &Snapshot{
		GeneratedAt:         at,
		Items:               items,
		Categories:          categories,
		Sold:                sold,
		OutOfStock:          aggregate.OutOfStock(items),
		InStock:             aggregate.InStock(items),
		BelowReorder:        aggregate.BelowReorderPoint(items),
		TopItems:            aggregate.TopNByQuantity(items, 10),
		TotalInventoryValue: aggregate.TotalInventoryValue(items),
		TotalRevenue:        aggregate.TotalRevenue(sold),
		CategoryNames:       names,
		CategoryCounts:      aggregate.CategoryItemCounts(items),
		Health:              health,
	}
}

// CategoryName resolves a category ID for display.
func (s *Snapshot) CategoryName(id string) string {
	if name, ok := s.CategoryNames[id]; ok && name != "" {
		return name
	}
	return "Uncategorized"
}
