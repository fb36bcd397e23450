// internal/domain/models.go
package domain

import "time"

// Item is a tracked inventory item. AverageDailySales and LeadTimeDays are
// derived from the SKU on every load and never persisted.
type Item struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	SKU               string  `json:"sku"`
	CategoryID        string  `json:"categoryId"`
	Quantity          int     `json:"quantity"`
	Price             float64 `json:"price"`
	SupplierName      string  `json:"supplierName"`
	ReorderPoint      int     `json:"reorderPoint"`
	AverageDailySales int     `json:"averageDailySales,omitempty"`
	LeadTimeDays      int     `json:"leadTimeDays,omitempty"`
}

// Category groups items. ItemCount is a cached counter maintained by item
// create/delete; read paths reconcile it against the item set.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ItemCount   int    `json:"itemCount"`
}

// SoldItem is one entry of the append-only sales ledger. Name, SKU and Price
// are snapshots taken at the moment of sale; ItemID may dangle after the
// original item is deleted.
type SoldItem struct {
	ID           string    `json:"id"`
	ItemID       string    `json:"itemId"`
	Name         string    `json:"name"`
	SKU          string    `json:"sku"`
	QuantitySold int       `json:"quantitySold"`
	Price        float64   `json:"price"`
	DateSold     time.Time `json:"dateSold"`
}

// DerivedMetrics is the pair of synthetic per-item figures computed from a SKU.
type DerivedMetrics struct {
	AverageDailySales int `json:"averageDailySales"`
	LeadTimeDays      int `json:"leadTimeDays"`
}

// DashboardSummary is the aggregate view served to the dashboard.
type DashboardSummary struct {
	TotalItems          int            `json:"totalItems"`
	TotalCategories     int            `json:"totalCategories"`
	OutOfStockCount     int            `json:"outOfStockCount"`
	BelowReorderCount   int            `json:"belowReorderCount"`
	TotalInventoryValue float64        `json:"totalInventoryValue"`
	TotalRevenue        float64        `json:"totalRevenue"`
	CategoryItemCounts  map[string]int `json:"categoryItemCounts"`
}
