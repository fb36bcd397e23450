// internal/analysis/contract.go
//
// The structured boundary between deterministic inventory data and the
// external narrative-analysis service. Inputs are built from items, outputs
// are normalized before anything downstream reads them: the service is not
// trusted to return sorted or in-range values.
package analysis

import (
	"sort"

	"github.com/inventorypro/insights/internal/domain"
)

// StockItemInput is the per-item shape sent to both analysis contracts.
type StockItemInput struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	CurrentQuantity   int     `json:"currentQuantity"`
	ReorderPoint      int     `json:"reorderPoint"`
	AverageDailySales int     `json:"averageDailySales"`
	Price             float64 `json:"price"`
	SupplierName      string  `json:"supplierName"`
	LeadTimeDays      int     `json:"leadTimeDays"`
}

// BuildInputs maps items into the wire shape.
func BuildInputs(items []domain.Item) []StockItemInput {
	inputs := make([]StockItemInput, 0, len(items))
	for _, it := range items {
		inputs = append(inputs, StockItemInput{
			ID:                it.ID,
			Name:              it.Name,
			CurrentQuantity:   it.Quantity,
			ReorderPoint:      it.ReorderPoint,
			AverageDailySales: it.AverageDailySales,
			Price:             it.Price,
			SupplierName:      it.SupplierName,
			LeadTimeDays:      it.LeadTimeDays,
		})
	}
	return inputs
}

// DisruptionLevel classifies the supply-chain impact of the out-of-stock set.
type DisruptionLevel string

const (
	DisruptionLow    DisruptionLevel = "Low"
	DisruptionMedium DisruptionLevel = "Medium"
	DisruptionHigh   DisruptionLevel = "High"
)

// SuggestedAction is one recommended step; priority 1 is the most urgent.
type SuggestedAction struct {
	ItemName string `json:"itemName"`
	Action   string `json:"action"`
	Priority int    `json:"priority"`
}

// StockAlertResult is the contract output for the out-of-stock analysis.
type StockAlertResult struct {
	PotentialRevenueLoss   float64           `json:"potentialRevenueLoss"`
	OverallDisruptionLevel DisruptionLevel   `json:"overallDisruptionLevel"`
	SuggestedActions       []SuggestedAction `json:"suggestedActions"`
}

// Normalize enforces the contract on an untrusted response: actions are
// re-sorted by priority ascending, the loss figure is floored at zero, and
// an unknown disruption level degrades to Medium.
func (r *StockAlertResult) Normalize() {
	if r.PotentialRevenueLoss < 0 {
		r.PotentialRevenueLoss = 0
	}
	switch r.OverallDisruptionLevel {
	case DisruptionLow, DisruptionMedium, DisruptionHigh:
	default:
		r.OverallDisruptionLevel = DisruptionMedium
	}
	sort.SliceStable(r.SuggestedActions, func(i, j int) bool {
		return r.SuggestedActions[i].Priority < r.SuggestedActions[j].Priority
	})
}

// HealthSection is one titled bullet-point section of the health narrative.
type HealthSection struct {
	Title  string   `json:"title"`
	Points []string `json:"points"`
}

// ItemSnapshot is the reduced item view embedded in health reports.
type ItemSnapshot struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// HealthReportResult is the contract output for the full-inventory analysis.
type HealthReportResult struct {
	OverallHealthScore int             `json:"overallHealthScore"`
	Analysis           []HealthSection `json:"analysis"`
	LowStockItems      []ItemSnapshot  `json:"lowStockItems"`
	InStockItems       []ItemSnapshot  `json:"inStockItems"`
}

// Normalize clamps the health score into [0, 100].
func (r *HealthReportResult) Normalize() {
	if r.OverallHealthScore < 0 {
		r.OverallHealthScore = 0
	}
	if r.OverallHealthScore > 100 {
		r.OverallHealthScore = 100
	}
}
