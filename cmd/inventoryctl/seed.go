// cmd/inventoryctl/seed.go
package main

import (
	"time"

	"github.com/inventorypro/insights/internal/domain"
)

// demoDataset is a fixed inventory used for demos and local development.
// IDs and dates are stable so repeated seeds and exports are reproducible.
func demoDataset() ([]domain.Item, []domain.Category, []domain.SoldItem) {
	categories := []domain.Category{
		{ID: "cat-electronics", Name: "Electronics", Description: "Cables, chargers, peripherals", ItemCount: 3},
		{ID: "cat-office", Name: "Office Supplies", Description: "Everyday consumables", ItemCount: 3},
		{ID: "cat-outdoor", Name: "Outdoor", Description: "", ItemCount: 2},
	}

	items := []domain.Item{
		{ID: "item-usb-cable", Name: "USB-C Cable 2m", SKU: "ELC-USB-2M", CategoryID: "cat-electronics", Quantity: 42, Price: 9.99, SupplierName: "CableWorks", ReorderPoint: 10},
		{ID: "item-charger", Name: "65W Wall Charger", SKU: "ELC-CHG-65", CategoryID: "cat-electronics", Quantity: 4, Price: 29.5, SupplierName: "CableWorks", ReorderPoint: 5},
		{ID: "item-mouse", Name: "Wireless Mouse", SKU: "ELC-MSE-01", CategoryID: "cat-electronics", Quantity: 0, Price: 19.95, SupplierName: "Periph Co", ReorderPoint: 8},
		{ID: "item-notebook", Name: "A5 Notebook", SKU: "OFF-NTB-A5", CategoryID: "cat-office", Quantity: 120, Price: 3.2, SupplierName: "PaperPlus", ReorderPoint: 25},
		{ID: "item-pens", Name: "Gel Pens (12 pack)", SKU: "OFF-PEN-12", CategoryID: "cat-office", Quantity: 18, Price: 6.8, SupplierName: "PaperPlus", ReorderPoint: 20},
		{ID: "item-stapler", Name: "Desk Stapler", SKU: "OFF-STP-01", CategoryID: "cat-office", Quantity: 7, Price: 11.4, SupplierName: "PaperPlus", ReorderPoint: 4},
		{ID: "item-bottle", Name: "Insulated Bottle 1L", SKU: "OUT-BTL-1L", CategoryID: "cat-outdoor", Quantity: 33, Price: 24.0, SupplierName: "TrailGear", ReorderPoint: 12},
		{ID: "item-headlamp", Name: "LED Headlamp", SKU: "OUT-LMP-01", CategoryID: "cat-outdoor", Quantity: 0, Price: 17.25, SupplierName: "TrailGear", ReorderPoint: 6},
	}

	soldAt := func(day int) time.Time {
		return time.Date(2025, 2, day, 11, 0, 0, 0, time.UTC)
	}
	sold := []domain.SoldItem{
		{ID: "sale-0001", ItemID: "item-usb-cable", Name: "USB-C Cable 2m", SKU: "ELC-USB-2M", QuantitySold: 6, Price: 9.99, DateSold: soldAt(3)},
		{ID: "sale-0002", ItemID: "item-mouse", Name: "Wireless Mouse", SKU: "ELC-MSE-01", QuantitySold: 5, Price: 18.95, DateSold: soldAt(7)},
		{ID: "sale-0003", ItemID: "item-notebook", Name: "A5 Notebook", SKU: "OFF-NTB-A5", QuantitySold: 30, Price: 3.2, DateSold: soldAt(12)},
		{ID: "sale-0004", ItemID: "item-bottle", Name: "Insulated Bottle 1L", SKU: "OUT-BTL-1L", QuantitySold: 4, Price: 24.0, DateSold: soldAt(19)},
	}

	return items, categories, sold
}
