package services

import (
	"context"
	"errors"
	"mime/multipart"
	"sync"
	"time"

	"labisco_server/lib"
	"labisco_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

// ProductDraft is a product form held on the server between requests.
type ProductDraft struct {
	ID        string      `json:"id"`
	Form      ProductForm `json:"form"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// DraftService keeps product forms in the key-value store so each form
// operation can be its own request.
type DraftService struct {
	logger  *gecho.Logger
	cache   *CacheService
	catalog *CatalogService
	images  *ImageService
	ttl     time.Duration

	locks draftLocks
}

// draftLocks serializes operations per draft id, so a slow request on one draft
// never holds up another.
type draftLocks struct {
	mu    sync.Mutex
	locks map[string]*draftLock
}

type draftLock struct {
	sync.Mutex
	refs int
}

func (dl *draftLocks) lock(id string) (unlock func()) {
	dl.mu.Lock()
	if dl.locks == nil {
		dl.locks = make(map[string]*draftLock)
	}
	l, ok := dl.locks[id]
	if !ok {
		l = &draftLock{}
		dl.locks[id] = l
	}
	l.refs++
	dl.mu.Unlock()

	l.Lock()
	return func() {
		l.Unlock()

		dl.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(dl.locks, id)
		}
		dl.mu.Unlock()
	}
}

func NewDraftService(logger *gecho.Logger, cache *CacheService, catalog *CatalogService, images *ImageService, ttl time.Duration) *DraftService {
	return &DraftService{
		logger:  logger,
		cache:   cache,
		catalog: catalog,
		images:  images,
		ttl:     ttl,
	}
}

func draftKey(id string) string {
	return "draft:" + id
}

// Create opens a draft for the product with productID, or for a new product when it is empty.
func (ds *DraftService) Create(ctx context.Context, productID string) (*ProductDraft, error) {
	var product *structs.Product
	if productID != "" {
		p, err := ds.catalog.FindProduct(ctx, productID)
		if err != nil {
			return nil, err
		}
		product = p
	}

	draft := &ProductDraft{
		ID:   uuid.NewString(),
		Form: *NewProductForm(product),
	}
	if err := ds.save(ctx, draft); err != nil {
		return nil, err
	}

	ds.logger.Debug("Draft created", gecho.Field("draft_id", draft.ID), gecho.Field("product_id", productID))
	return draft, nil
}

func (ds *DraftService) Get(ctx context.Context, id string) (*ProductDraft, error) {
	draft, err := getJSON[ProductDraft](ctx, ds.cache, draftKey(id))
	if err != nil {
		return nil, err
	}
	if draft == nil {
		return nil, lib.ErrDraftNotFound
	}
	return draft, nil
}

// Update loads the draft, applies fn to its form and stores it again. A failing fn leaves the draft unchanged.
func (ds *DraftService) Update(ctx context.Context, id string, fn func(form *ProductForm) error) (*ProductDraft, error) {
	defer ds.locks.lock(id)()

	draft, err := ds.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := fn(&draft.Form); err != nil {
		return nil, err
	}

	if err := ds.save(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// SetFields applies several top-level field edits at once.
func (ds *DraftService) SetFields(ctx context.Context, id string, fields map[string]string) (*ProductDraft, error) {
	return ds.Update(ctx, id, func(form *ProductForm) error {
		ve := &lib.ValidationError{}
		for field, value := range fields {
			if err := form.SetField(field, value); err != nil {
				var fe *lib.ValidationError
				if errors.As(err, &fe) {
					ve.Errors = append(ve.Errors, fe.Errors...)
					continue
				}
				return err
			}
		}
		return ve.OrNil()
	})
}

func (ds *DraftService) AddVariant(ctx context.Context, id string) (*ProductDraft, error) {
	return ds.Update(ctx, id, func(form *ProductForm) error {
		form.AddVariantRow()
		return nil
	})
}

func (ds *DraftService) RemoveVariant(ctx context.Context, id, variantID string) (*ProductDraft, error) {
	return ds.Update(ctx, id, func(form *ProductForm) error {
		return form.RemoveVariantRow(variantID)
	})
}

func (ds *DraftService) UpdateVariant(ctx context.Context, id, variantID string, fields map[string]string) (*ProductDraft, error) {
	return ds.Update(ctx, id, func(form *ProductForm) error {
		for field, value := range fields {
			if err := form.UpdateVariantField(variantID, field, value); err != nil {
				return err
			}
		}
		return nil
	})
}

// AddImages uploads the batch without holding the draft lock and only then appends
// the URLs. Uploads for a draft that is gone by then are removed again.
func (ds *DraftService) AddImages(ctx context.Context, id string, files []*multipart.FileHeader) (*ProductDraft, error) {
	if _, err := ds.Get(ctx, id); err != nil {
		return nil, err
	}

	results, err := ds.images.storeBatch(ctx, files)
	if err != nil {
		return nil, err
	}

	draft, err := ds.Update(ctx, id, func(form *ProductForm) error {
		form.AppendImages(resultURLs(results)...)
		return nil
	})
	if err != nil {
		ds.images.discard(results)
		return nil, err
	}
	return draft, nil
}

func (ds *DraftService) RemoveImage(ctx context.Context, id string, index int) (*ProductDraft, error) {
	return ds.Update(ctx, id, func(form *ProductForm) error {
		_, err := form.RemoveImage(index)
		return err
	})
}

// Submit validates the draft, merges the product into the catalog and discards the draft.
func (ds *DraftService) Submit(ctx context.Context, id string) (*structs.Product, error) {
	defer ds.locks.lock(id)()

	draft, err := ds.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	product, err := draft.Form.Submit()
	if err != nil {
		return nil, err
	}

	saved, err := ds.catalog.SaveProduct(ctx, product, draft.Form.EditingID)
	if err != nil {
		return nil, err
	}

	if err := ds.cache.Delete(ctx, draftKey(id)); err != nil {
		ds.logger.Warn("Failed to delete submitted draft", gecho.Field("draft_id", id), gecho.Field("error", err))
	}
	return saved, nil
}

func (ds *DraftService) Discard(ctx context.Context, id string) error {
	defer ds.locks.lock(id)()

	ok, err := ds.cache.Exists(ctx, draftKey(id))
	if err != nil {
		return err
	}
	if !ok {
		return lib.ErrDraftNotFound
	}
	return ds.cache.Delete(ctx, draftKey(id))
}

func (ds *DraftService) save(ctx context.Context, draft *ProductDraft) error {
	draft.UpdatedAt = time.Now().UTC()
	return setJSON(ctx, ds.cache, draftKey(draft.ID), draft, ds.ttl)
}
