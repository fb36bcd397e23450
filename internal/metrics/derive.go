// internal/metrics/derive.go
package metrics

import (
	"unicode/utf16"

	"github.com/inventorypro/insights/internal/domain"
)

// Derive computes the synthetic sales velocity and supplier lead time for a
// SKU. The same SKU always yields the same pair, across sessions and
// machines: the seed is the sum of the SKU's UTF-16 code units, so non-ASCII
// SKUs reproduce identically on every platform.
//
// Ranges: AverageDailySales 1-19, LeadTimeDays 2-10. An empty SKU seeds to
// zero and yields {1, 2}.
func Derive(sku string) domain.DerivedMetrics {
	seed := Seed(sku)
	return domain.DerivedMetrics{
		AverageDailySales: seed%19 + 1,
		LeadTimeDays:      seed%9 + 2,
	}
}

// Seed sums the UTF-16 code units of s.
func Seed(s string) int {
	sum := 0
	for _, u := range utf16.Encode([]rune(s)) {
		sum += int(u)
	}
	return sum
}

// Apply stamps derived metrics onto every item of a loaded collection.
// Every load path goes through here; there is deliberately no second
// derivation site.
func Apply(items []domain.Item) {
	for i := range items {
		m := Derive(items[i].SKU)
		items[i].AverageDailySales = m.AverageDailySales
		items[i].LeadTimeDays = m.LeadTimeDays
	}
}
