package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveIsPure(t *testing.T) {
	skus := []string{"", "A", "SKU-1234", "WIDGET-X", "äöü-99", "商品-42"}
	for _, sku := range skus {
		first := Derive(sku)
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, Derive(sku), "sku %q must derive identically on every call", sku)
		}
	}
}

func TestDeriveRanges(t *testing.T) {
	skus := []string{"", "a", "zz", "SKU-0001", "SKU-9999", "LONG-SKU-WITH-MANY-CHARACTERS-123456789", "商品"}
	for _, sku := range skus {
		m := Derive(sku)
		assert.GreaterOrEqual(t, m.AverageDailySales, 1, "sku %q", sku)
		assert.LessOrEqual(t, m.AverageDailySales, 19, "sku %q", sku)
		assert.GreaterOrEqual(t, m.LeadTimeDays, 2, "sku %q", sku)
		assert.LessOrEqual(t, m.LeadTimeDays, 10, "sku %q", sku)
	}
}

func TestDeriveEmptySKU(t *testing.T) {
	m := Derive("")
	assert.Equal(t, 1, m.AverageDailySales)
	assert.Equal(t, 2, m.LeadTimeDays)
}

func TestSeedSumsCodeUnits(t *testing.T) {
	assert.Equal(t, 0, Seed(""))
	assert.Equal(t, 65, Seed("A"))
	assert.Equal(t, 65+66, Seed("AB"))
	// U+00E4 is a single UTF-16 code unit with value 228.
	assert.Equal(t, 228, Seed("ä"))
	// U+1F600 encodes as a surrogate pair: 0xD83D + 0xDE00.
	assert.Equal(t, 0xD83D+0xDE00, Seed("\U0001F600"))
}

func TestDeriveMatchesSeedArithmetic(t *testing.T) {
	sku := "SKU-1234"
	seed := Seed(sku)
	m := Derive(sku)
	assert.Equal(t, seed%19+1, m.AverageDailySales)
	assert.Equal(t, seed%9+2, m.LeadTimeDays)
}
