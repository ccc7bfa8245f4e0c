package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"labisco_server/database"
	"labisco_server/lib"
	"labisco_server/structs"

	"github.com/MonkyMars/gecho"
)

// LowStockNotifier is told about every product that was saved.
type LowStockNotifier interface {
	NotifyLowStock(product structs.Product)
}

// CatalogService owns the product collection stored as one JSON array under a single key.
type CatalogService struct {
	logger   *gecho.Logger
	store    database.KVStore
	key      string
	notifier LowStockNotifier

	// serializes read-modify-write of the collection
	mu sync.Mutex
}

func NewCatalogService(logger *gecho.Logger, store database.KVStore, key string, notifier LowStockNotifier) *CatalogService {
	return &CatalogService{
		logger:   logger,
		store:    store,
		key:      key,
		notifier: notifier,
	}
}

// ListProducts returns the whole collection in storage order. A missing, empty or
// unparseable value is replaced by the seed collection, which is then returned.
func (cs *CatalogService) ListProducts(ctx context.Context) ([]structs.Product, error) {
	raw, ok, err := cs.store.Get(ctx, cs.key)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	if ok && raw != "" {
		var products []structs.Product
		err := json.Unmarshal([]byte(raw), &products)
		if err == nil && products != nil {
			CatalogProducts.Set(float64(len(products)))
			return products, nil
		}
		if err == nil {
			err = errors.New("stored catalog is null")
		}
		cs.logger.Warn("Failed to parse stored catalog, reseeding",
			gecho.Field("key", cs.key),
			gecho.Field("error", err),
		)
	}

	return cs.seed(ctx)
}

// Reseed discards the stored collection and writes the seed collection in its place.
func (cs *CatalogService) Reseed(ctx context.Context) ([]structs.Product, error) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	return cs.seed(ctx)
}

func (cs *CatalogService) seed(ctx context.Context) ([]structs.Product, error) {
	seed := SeedProducts()
	if err := cs.ReplaceAll(ctx, seed); err != nil {
		return nil, err
	}
	CatalogReseeds.Inc()
	cs.logger.Info("Catalog initialized with seed data", gecho.Field("products", len(seed)))

	return seed, nil
}

// FindProduct returns lib.ErrNotFound when no product has the id.
func (cs *CatalogService) FindProduct(ctx context.Context, id string) (*structs.Product, error) {
	products, err := cs.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}

	return nil, lib.ErrNotFound
}

// ReplaceAll overwrites the stored collection.
func (cs *CatalogService) ReplaceAll(ctx context.Context, products []structs.Product) error {
	if products == nil {
		products = []structs.Product{}
	}

	data, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}

	if err := cs.store.Set(ctx, cs.key, string(data), 0); err != nil {
		return fmt.Errorf("failed to write catalog: %w", err)
	}

	CatalogProducts.Set(float64(len(products)))
	return nil
}

// SaveProduct validates the product and merges it into the collection: with an
// editingID it replaces that entry in place, otherwise it is appended under a new id.
func (cs *CatalogService) SaveProduct(ctx context.Context, product structs.Product, editingID string) (*structs.Product, error) {
	normalizeProduct(&product)

	if err := lib.ValidateStruct(product); err != nil {
		return nil, err
	}

	cs.mu.Lock()
	defer cs.mu.Unlock()

	products, err := cs.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	if editingID != "" {
		idx := indexOfProduct(products, editingID)
		if idx < 0 {
			return nil, lib.ErrNotFound
		}
		product.ID = editingID
		products[idx] = product
	} else {
		product.ID = lib.NewProductID()
		products = append(products, product)
	}

	if err := cs.ReplaceAll(ctx, products); err != nil {
		return nil, err
	}

	cs.logger.Info("Product saved",
		gecho.Field("product_id", product.ID),
		gecho.Field("edited", editingID != ""),
		gecho.Field("variants", len(product.Variants)),
	)

	if cs.notifier != nil {
		cs.notifier.NotifyLowStock(product)
	}

	return &product, nil
}

// DeleteProduct removes exactly the entry with the id; the others keep their order.
func (cs *CatalogService) DeleteProduct(ctx context.Context, id string) error {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	products, err := cs.ListProducts(ctx)
	if err != nil {
		return err
	}

	idx := indexOfProduct(products, id)
	if idx < 0 {
		return lib.ErrNotFound
	}

	remaining := make([]structs.Product, 0, len(products)-1)
	remaining = append(remaining, products[:idx]...)
	remaining = append(remaining, products[idx+1:]...)

	if err := cs.ReplaceAll(ctx, remaining); err != nil {
		return err
	}

	cs.logger.Info("Product deleted", gecho.Field("product_id", id))
	return nil
}

// SearchProducts filters by a case-insensitive substring of the name or category.
func (cs *CatalogService) SearchProducts(ctx context.Context, term string) ([]structs.Product, error) {
	products, err := cs.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return products, nil
	}

	matches := make([]structs.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), term) || strings.Contains(strings.ToLower(p.Category), term) {
			matches = append(matches, p)
		}
	}
	return matches, nil
}

// BuildProductRows derives the product table rows.
func BuildProductRows(products []structs.Product) []structs.ProductRow {
	rows := make([]structs.ProductRow, 0, len(products))
	for _, p := range products {
		row := structs.ProductRow{
			Product:    p,
			PriceRange: lib.PriceRange(p.Variants),
			TotalStock: lib.TotalStock(p.Variants),
		}
		if len(p.ImageURLs) > 0 {
			row.PrimaryImage = p.ImageURLs[0]
		}
		rows = append(rows, row)
	}
	return rows
}

func indexOfProduct(products []structs.Product, id string) int {
	for i := range products {
		if products[i].ID == id {
			return i
		}
	}
	return -1
}

func normalizeProduct(p *structs.Product) {
	p.Name = strings.TrimSpace(p.Name)
	p.ImageURLs = append([]string{}, p.ImageURLs...)
	if p.Variants != nil {
		p.Variants = append([]structs.ProductVariant{}, p.Variants...)
	}
	for i := range p.Variants {
		if p.Variants[i].ID == "" {
			p.Variants[i].ID = lib.NewVariantID()
		}
	}
}
