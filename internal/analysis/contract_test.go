package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/inventorypro/insights/internal/domain"
)

func TestStockAlertNormalizeSortsActionsByPriority(t *testing.T) {
	r := StockAlertResult{
		PotentialRevenueLoss:   120.5,
		OverallDisruptionLevel: DisruptionHigh,
		SuggestedActions: []SuggestedAction{
			{ItemName: "c", Action: "restock", Priority: 3},
			{ItemName: "a", Action: "expedite", Priority: 1},
			{ItemName: "b", Action: "call supplier", Priority: 2},
		},
	}
	r.Normalize()

	assert.Equal(t, "a", r.SuggestedActions[0].ItemName)
	assert.Equal(t, "b", r.SuggestedActions[1].ItemName)
	assert.Equal(t, "c", r.SuggestedActions[2].ItemName)
}

func TestStockAlertNormalizeFloorsAndDefaults(t *testing.T) {
	r := StockAlertResult{PotentialRevenueLoss: -5, OverallDisruptionLevel: "Catastrophic"}
	r.Normalize()
	assert.Zero(t, r.PotentialRevenueLoss)
	assert.Equal(t, DisruptionMedium, r.OverallDisruptionLevel)
}

func TestHealthReportNormalizeClampsScore(t *testing.T) {
	for in, want := range map[int]int{-10: 0, 0: 0, 55: 55, 100: 100, 240: 100} {
		r := HealthReportResult{OverallHealthScore: in}
		r.Normalize()
		assert.Equal(t, want, r.OverallHealthScore)
	}
}

func TestBuildInputsCarriesDerivedFields(t *testing.T) {
	items := []domain.Item{{
		ID: "a", Name: "Widget", Quantity: 0, ReorderPoint: 5, Price: 10,
		SupplierName: "Acme", AverageDailySales: 7, LeadTimeDays: 4,
	}}
	inputs := BuildInputs(items)
	assert.Len(t, inputs, 1)
	assert.Equal(t, 0, inputs[0].CurrentQuantity)
	assert.Equal(t, 5, inputs[0].ReorderPoint)
	assert.Equal(t, 7, inputs[0].AverageDailySales)
	assert.Equal(t, 4, inputs[0].LeadTimeDays)
	assert.Equal(t, "Acme", inputs[0].SupplierName)
	assert.Empty(t, BuildInputs(nil))
}
