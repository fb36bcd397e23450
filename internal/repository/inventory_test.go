package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inventorypro/insights/internal/domain"
	"github.com/inventorypro/insights/internal/metrics"
	"github.com/inventorypro/insights/internal/store"
)

func TestEmptyStoreYieldsEmptyCollections(t *testing.T) {
	repo := NewInventory(store.NewMemKV())
	ctx := context.Background()

	items, err := repo.Items(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	cats, err := repo.Categories(ctx)
	require.NoError(t, err)
	assert.Empty(t, cats)

	sold, err := repo.SoldItems(ctx)
	require.NoError(t, err)
	assert.Empty(t, sold)
}

func TestItemsRecomputeDerivedMetricsOnLoad(t *testing.T) {
	repo := NewInventory(store.NewMemKV())
	ctx := context.Background()

	// Persist bogus derived values: they must not survive the round trip.
	in := []domain.Item{{
		ID: "a", Name: "Widget", SKU: "SKU-1", Quantity: 4, Price: 9.5,
		AverageDailySales: 999, LeadTimeDays: 999,
	}}
	require.NoError(t, repo.SaveItems(ctx, in))

	out, err := repo.Items(ctx)
	require.NoError(t, err)
	require.Len(t, out, 1)

	want := metrics.Derive("SKU-1")
	assert.Equal(t, want.AverageDailySales, out[0].AverageDailySales)
	assert.Equal(t, want.LeadTimeDays, out[0].LeadTimeDays)

	// Saving must not have mutated the caller's slice.
	assert.Equal(t, 999, in[0].AverageDailySales)
}

func TestSoldItemsRoundTrip(t *testing.T) {
	repo := NewInventory(store.NewMemKV())
	ctx := context.Background()

	sold := []domain.SoldItem{{
		ID: "tx-1", ItemID: "a", Name: "Widget", SKU: "SKU-1",
		QuantitySold: 2, Price: 9.5, DateSold: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}}
	require.NoError(t, repo.SaveSoldItems(ctx, sold))

	got, err := repo.SoldItems(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, sold[0], got[0])
}

func TestFileBackedRepository(t *testing.T) {
	kv, err := store.NewFileKV(t.TempDir())
	require.NoError(t, err)
	repo := NewInventory(kv)
	ctx := context.Background()

	cats := []domain.Category{{ID: "c1", Name: "Tools", ItemCount: 3}}
	require.NoError(t, repo.SaveCategories(ctx, cats))

	got, err := repo.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, cats, got)
}
