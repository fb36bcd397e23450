// internal/inventory/service.go
package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/inventorypro/insights/internal/aggregate"
	"github.com/inventorypro/insights/internal/domain"
	"github.com/inventorypro/insights/internal/repository"
)

// ItemInput carries the editable fields of an item.
type ItemInput struct {
	Name         string  `json:"name"`
	SKU          string  `json:"sku"`
	CategoryID   string  `json:"categoryId"`
	Quantity     int     `json:"quantity"`
	Price        float64 `json:"price"`
	SupplierName string  `json:"supplierName"`
	ReorderPoint int     `json:"reorderPoint"`
}

// CategoryInput carries the editable fields of a category.
type CategoryInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ChangeListener observes the item collection after every successful item
// mutation. The analysis coordinator hangs off this hook.
type ChangeListener interface {
	ItemsChanged(items []domain.Item)
}

// Service owns every mutation of the three collections. Each mutation loads
// a whole collection, edits it in memory, and writes the whole collection
// back immediately: no batching, no write-behind, last write wins.
type Service struct {
	repo     *repository.Inventory
	listener ChangeListener
	now      func() time.Time
}

func NewService(repo *repository.Inventory) *Service {
	return &Service{repo: repo, now: time.Now}
}

// WithListener attaches the mutation observer.
func (s *Service) WithListener(l ChangeListener) *Service {
	s.listener = l
	return s
}

// notifyChanged reloads the items so the listener always sees the persisted
// collection with derived metrics applied.
func (s *Service) notifyChanged(ctx context.Context) {
	if s.listener == nil {
		return
	}
	items, err := s.repo.Items(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("change notification skipped, reload failed")
		return
	}
	s.listener.ItemsChanged(items)
}

func (s *Service) Items(ctx context.Context) ([]domain.Item, error) {
	return s.repo.Items(ctx)
}

func (s *Service) Categories(ctx context.Context) ([]domain.Category, error) {
	return s.repo.Categories(ctx)
}

func (s *Service) SoldItems(ctx context.Context) ([]domain.SoldItem, error) {
	return s.repo.SoldItems(ctx)
}

func (s *Service) CreateItem(ctx context.Context, in ItemInput) (domain.Item, error) {
	if err := validateItemInput(in); err != nil {
		return domain.Item{}, err
	}

	items, err := s.repo.Items(ctx)
	if err != nil {
		return domain.Item{}, err
	}

	item := domain.Item{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(in.Name),
		SKU:          in.SKU,
		CategoryID:   in.CategoryID,
		Quantity:     in.Quantity,
		Price:        in.Price,
		SupplierName: in.SupplierName,
		ReorderPoint: in.ReorderPoint,
	}
	items = append(items, item)

	if err := s.repo.SaveItems(ctx, items); err != nil {
		return domain.Item{}, err
	}
	if err := s.adjustCategoryCount(ctx, in.CategoryID, +1); err != nil {
		return domain.Item{}, err
	}

	log.Info().Str("item_id", item.ID).Str("sku", item.SKU).Msg("item created")
	s.notifyChanged(ctx)
	return item, nil
}

func (s *Service) UpdateItem(ctx context.Context, id string, in ItemInput) (domain.Item, error) {
	if err := validateItemInput(in); err != nil {
		return domain.Item{}, err
	}

	items, err := s.repo.Items(ctx)
	if err != nil {
		return domain.Item{}, err
	}

	idx := indexOfItem(items, id)
	if idx < 0 {
		return domain.Item{}, ErrItemNotFound
	}

	items[idx].Name = strings.TrimSpace(in.Name)
	items[idx].SKU = in.SKU
	items[idx].CategoryID = in.CategoryID
	items[idx].Quantity = in.Quantity
	items[idx].Price = in.Price
	items[idx].SupplierName = in.SupplierName
	items[idx].ReorderPoint = in.ReorderPoint

	if err := s.repo.SaveItems(ctx, items); err != nil {
		return domain.Item{}, err
	}
	s.notifyChanged(ctx)
	return items[idx], nil
}

// DeleteItem removes the item and decrements the owning category's cached
// item count, floored at zero. Sold-item ledger entries referencing the item
// are left untouched.
func (s *Service) DeleteItem(ctx context.Context, id string) error {
	items, err := s.repo.Items(ctx)
	if err != nil {
		return err
	}

	idx := indexOfItem(items, id)
	if idx < 0 {
		return ErrItemNotFound
	}
	categoryID := items[idx].CategoryID

	items = append(items[:idx], items[idx+1:]...)
	if err := s.repo.SaveItems(ctx, items); err != nil {
		return err
	}
	if err := s.adjustCategoryCount(ctx, categoryID, -1); err != nil {
		return err
	}
	s.notifyChanged(ctx)
	return nil
}

// Sell decrements the item's quantity by qty and appends an immutable ledger
// entry snapshotting the item's name, SKU and unit price at the moment of
// sale. Later edits to the item do not reach the ledger.
func (s *Service) Sell(ctx context.Context, itemID string, qty int) (domain.SoldItem, error) {
	items, err := s.repo.Items(ctx)
	if err != nil {
		return domain.SoldItem{}, err
	}

	idx := indexOfItem(items, itemID)
	if idx < 0 {
		return domain.SoldItem{}, ErrItemNotFound
	}
	if qty <= 0 || qty > items[idx].Quantity {
		return domain.SoldItem{}, ErrInvalidSale
	}

	items[idx].Quantity -= qty

	sale := domain.SoldItem{
		ID:           uuid.NewString(),
		ItemID:       items[idx].ID,
		Name:         items[idx].Name,
		SKU:          items[idx].SKU,
		QuantitySold: qty,
		Price:        items[idx].Price,
		DateSold:     s.now(),
	}

	if err := s.repo.SaveItems(ctx, items); err != nil {
		return domain.SoldItem{}, err
	}

	sold, err := s.repo.SoldItems(ctx)
	if err != nil {
		return domain.SoldItem{}, err
	}
	sold = append(sold, sale)
	if err := s.repo.SaveSoldItems(ctx, sold); err != nil {
		return domain.SoldItem{}, err
	}

	log.Info().Str("item_id", itemID).Int("quantity", qty).Msg("item sold")
	s.notifyChanged(ctx)
	return sale, nil
}

func (s *Service) CreateCategory(ctx context.Context, in CategoryInput) (domain.Category, error) {
	if strings.TrimSpace(in.Name) == "" {
		return domain.Category{}, ErrBlankName
	}

	cats, err := s.repo.Categories(ctx)
	if err != nil {
		return domain.Category{}, err
	}

	cat := domain.Category{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
	}
	cats = append(cats, cat)

	if err := s.repo.SaveCategories(ctx, cats); err != nil {
		return domain.Category{}, err
	}
	return cat, nil
}

func (s *Service) UpdateCategory(ctx context.Context, id string, in CategoryInput) (domain.Category, error) {
	if strings.TrimSpace(in.Name) == "" {
		return domain.Category{}, ErrBlankName
	}

	cats, err := s.repo.Categories(ctx)
	if err != nil {
		return domain.Category{}, err
	}

	for i := range cats {
		if cats[i].ID == id {
			cats[i].Name = strings.TrimSpace(in.Name)
			cats[i].Description = in.Description
			if err := s.repo.SaveCategories(ctx, cats); err != nil {
				return domain.Category{}, err
			}
			return cats[i], nil
		}
	}
	return domain.Category{}, ErrCategoryNotFound
}

// DeleteCategory refuses to remove a category while items still reference it.
func (s *Service) DeleteCategory(ctx context.Context, id string) error {
	items, err := s.repo.Items(ctx)
	if err != nil {
		return err
	}
	for _, it := range items {
		if it.CategoryID == id {
			return ErrCategoryInUse
		}
	}

	cats, err := s.repo.Categories(ctx)
	if err != nil {
		return err
	}
	for i := range cats {
		if cats[i].ID == id {
			cats = append(cats[:i], cats[i+1:]...)
			return s.repo.SaveCategories(ctx, cats)
		}
	}
	return ErrCategoryNotFound
}

// Summary builds the dashboard view. Category counts are recomputed from the
// item set here, reconciling any drift in the cached counters.
func (s *Service) Summary(ctx context.Context) (domain.DashboardSummary, error) {
	items, err := s.repo.Items(ctx)
	if err != nil {
		return domain.DashboardSummary{}, err
	}
	cats, err := s.repo.Categories(ctx)
	if err != nil {
		return domain.DashboardSummary{}, err
	}
	sold, err := s.repo.SoldItems(ctx)
	if err != nil {
		return domain.DashboardSummary{}, err
	}

	return domain.DashboardSummary{
		TotalItems:          len(items),
		TotalCategories:     len(cats),
		OutOfStockCount:     len(aggregate.OutOfStock(items)),
		BelowReorderCount:   len(aggregate.BelowReorderPoint(items)),
		TotalInventoryValue: aggregate.TotalInventoryValue(items),
		TotalRevenue:        aggregate.TotalRevenue(sold),
		CategoryItemCounts:  aggregate.CategoryItemCounts(items),
	}, nil
}

func (s *Service) adjustCategoryCount(ctx context.Context, categoryID string, delta int) error {
	if categoryID == "" {
		return nil
	}

	cats, err := s.repo.Categories(ctx)
	if err != nil {
		return err
	}
	for i := range cats {
		if cats[i].ID == categoryID {
			cats[i].ItemCount += delta
			if cats[i].ItemCount < 0 {
				cats[i].ItemCount = 0
			}
			return s.repo.SaveCategories(ctx, cats)
		}
	}

	// Weak reference: the category may have been removed out from under the item.
	log.Warn().Str("category_id", categoryID).Msg("category count adjustment skipped, category missing")
	return nil
}

func validateItemInput(in ItemInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return ErrBlankName
	}
	if in.Price <= 0 {
		return ErrInvalidPrice
	}
	if in.Quantity < 0 || in.ReorderPoint < 0 {
		return ErrInvalidQuantity
	}
	return nil
}

func indexOfItem(items []domain.Item, id string) int {
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}
	return -1
}
