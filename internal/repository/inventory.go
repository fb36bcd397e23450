// internal/repository/inventory.go
package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/inventorypro/insights/internal/domain"
	"github.com/inventorypro/insights/internal/metrics"
	"github.com/inventorypro/insights/internal/store"
)

// Collection keys: the only three documents this core reads and writes.
const (
	KeyItems      = "items"
	KeyCategories = "categories"
	KeySoldItems  = "soldItems"
)

// Inventory loads and saves the three collections as whole JSON documents.
// Derived item metrics are recomputed on every load and stripped from the
// persisted form, so a change to the derivation function applies everywhere,
// including historical figures.
type Inventory struct {
	kv store.KV
}

func NewInventory(kv store.KV) *Inventory {
	return &Inventory{kv: kv}
}

func (r *Inventory) Items(ctx context.Context) ([]domain.Item, error) {
	var items []domain.Item
	if err := r.load(ctx, KeyItems, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.Item{}
	}
	metrics.Apply(items)
	return items, nil
}

func (r *Inventory) SaveItems(ctx context.Context, items []domain.Item) error {
	stripped := make([]domain.Item, len(items))
	copy(stripped, items)
	for i := range stripped {
		stripped[i].AverageDailySales = 0
		stripped[i].LeadTimeDays = 0
	}
	return r.save(ctx, KeyItems, stripped)
}

func (r *Inventory) Categories(ctx context.Context) ([]domain.Category, error) {
	var cats []domain.Category
	if err := r.load(ctx, KeyCategories, &cats); err != nil {
		return nil, err
	}
	if cats == nil {
		cats = []domain.Category{}
	}
	return cats, nil
}

func (r *Inventory) SaveCategories(ctx context.Context, cats []domain.Category) error {
	return r.save(ctx, KeyCategories, cats)
}

func (r *Inventory) SoldItems(ctx context.Context) ([]domain.SoldItem, error) {
	var sold []domain.SoldItem
	if err := r.load(ctx, KeySoldItems, &sold); err != nil {
		return nil, err
	}
	if sold == nil {
		sold = []domain.SoldItem{}
	}
	return sold, nil
}

func (r *Inventory) SaveSoldItems(ctx context.Context, sold []domain.SoldItem) error {
	return r.save(ctx, KeySoldItems, sold)
}

func (r *Inventory) load(ctx context.Context, key string, out any) error {
	data, ok, err := r.kv.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("load %s: %w", key, err)
	}
	if !ok {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

func (r *Inventory) save(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := r.kv.Set(ctx, key, data); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}
