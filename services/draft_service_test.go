package services

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"labisco_server/lib"
	"labisco_server/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraftCreateAndSubmitNewProduct(t *testing.T) {
	ctx := context.Background()
	sm, _ := newTestServices(t)
	drafts := sm.DraftService

	draft, err := drafts.Create(ctx, "")
	require.NoError(t, err)
	variantID := draft.Form.Variants[0].ID

	_, err = drafts.SetFields(ctx, draft.ID, map[string]string{"name": "Egusi", "category": "Grains & Flours"})
	require.NoError(t, err)
	_, err = drafts.UpdateVariant(ctx, draft.ID, variantID, map[string]string{"name": "500g", "price": "1800", "stock": "9"})
	require.NoError(t, err)

	withImages, err := drafts.AddImages(ctx, draft.ID, multipartFiles(t, upload{"a.png", pngBytes}, upload{"b.gif", gifBytes}))
	require.NoError(t, err)
	require.Len(t, withImages.Form.ImageURLs, 2)

	product, err := drafts.Submit(ctx, draft.ID)
	require.NoError(t, err)
	assert.Contains(t, product.ID, "prod-")
	assert.Equal(t, "Egusi", product.Name)
	assert.Equal(t, withImages.Form.ImageURLs, product.ImageURLs)

	found, err := sm.CatalogService.FindProduct(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 9, found.Variants[0].Stock)

	_, err = drafts.Get(ctx, draft.ID)
	assert.ErrorIs(t, err, lib.ErrDraftNotFound)
}

func TestDraftEditExistingProduct(t *testing.T) {
	ctx := context.Background()
	sm, _ := newTestServices(t)
	drafts := sm.DraftService

	draft, err := drafts.Create(ctx, "prod-2")
	require.NoError(t, err)
	assert.Equal(t, "prod-2", draft.Form.EditingID)
	assert.Equal(t, "Red Palm Oil", draft.Form.Name)

	_, err = drafts.RemoveVariant(ctx, draft.ID, "variant-2b")
	require.NoError(t, err)
	_, err = drafts.RemoveVariant(ctx, draft.ID, "variant-2a")
	assert.ErrorIs(t, err, lib.ErrLastVariant)

	product, err := drafts.Submit(ctx, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, "prod-2", product.ID)
	assert.Len(t, product.Variants, 1)

	products, err := sm.CatalogService.ListProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, products, len(SeedProducts()))
	assert.Equal(t, "prod-2", products[1].ID)
}

func TestDraftForMissingProduct(t *testing.T) {
	sm, _ := newTestServices(t)
	_, err := sm.DraftService.Create(context.Background(), "prod-404")
	assert.ErrorIs(t, err, lib.ErrNotFound)
}

func TestDraftFailedOperationLeavesDraftUnchanged(t *testing.T) {
	ctx := context.Background()
	sm, _ := newTestServices(t)
	drafts := sm.DraftService

	draft, err := drafts.Create(ctx, "")
	require.NoError(t, err)

	_, err = drafts.SetFields(ctx, draft.ID, map[string]string{"name": "Kept?", "price": "1"})
	var ve *lib.ValidationError
	require.ErrorAs(t, err, &ve)

	current, err := drafts.Get(ctx, draft.ID)
	require.NoError(t, err)
	assert.Empty(t, current.Form.Name)

	_, err = drafts.Submit(ctx, draft.ID)
	require.ErrorAs(t, err, &ve)
	_, err = drafts.Get(ctx, draft.ID)
	assert.NoError(t, err)
}

func TestDraftDiscard(t *testing.T) {
	ctx := context.Background()
	sm, _ := newTestServices(t)

	draft, err := sm.DraftService.Create(ctx, "")
	require.NoError(t, err)
	require.NoError(t, sm.DraftService.Discard(ctx, draft.ID))
	assert.ErrorIs(t, sm.DraftService.Discard(ctx, draft.ID), lib.ErrDraftNotFound)
}

// gatedStorage holds every Put until release is closed and records deletes.
type gatedStorage struct {
	storage.Inline
	entered chan struct{}
	release chan struct{}

	mu      sync.Mutex
	deleted []string
}

func newGatedStorage() *gatedStorage {
	return &gatedStorage{entered: make(chan struct{}, 1), release: make(chan struct{})}
}

func (g *gatedStorage) Put(ctx context.Context, r io.Reader, in storage.PutInput) (storage.PutResult, error) {
	g.entered <- struct{}{}
	<-g.release
	res, err := g.Inline.Put(ctx, r, in)
	res.Key = in.Filename
	return res, err
}

func (g *gatedStorage) Delete(ctx context.Context, key string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.deleted = append(g.deleted, key)
	return nil
}

func newGatedDrafts(t *testing.T) (*DraftService, *gatedStorage) {
	t.Helper()
	sm, _ := newTestServices(t)
	gated := newGatedStorage()
	images := NewImageService(testLogger(), gated, testConfig().Images)
	return NewDraftService(testLogger(), sm.CacheService, sm.CatalogService, images, time.Hour), gated
}

func within(t *testing.T, fn func()) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		defer close(done)
		fn()
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("operation blocked")
	}
}

func TestDraftUploadDoesNotBlockOtherOperations(t *testing.T) {
	ctx := context.Background()
	drafts, gated := newGatedDrafts(t)

	draft, err := drafts.Create(ctx, "")
	require.NoError(t, err)
	other, err := drafts.Create(ctx, "")
	require.NoError(t, err)

	type result struct {
		draft *ProductDraft
		err   error
	}
	files := multipartFiles(t, upload{"a.png", pngBytes})
	uploaded := make(chan result, 1)
	go func() {
		d, err := drafts.AddImages(ctx, draft.ID, files)
		uploaded <- result{d, err}
	}()
	<-gated.entered

	within(t, func() {
		_, err := drafts.AddVariant(ctx, draft.ID)
		assert.NoError(t, err)
		_, err = drafts.SetFields(ctx, other.ID, map[string]string{"name": "Ogbono"})
		assert.NoError(t, err)
	})

	close(gated.release)
	res := <-uploaded
	require.NoError(t, res.err)
	assert.Len(t, res.draft.Form.ImageURLs, 1)
	assert.Len(t, res.draft.Form.Variants, 2)
}

func TestDraftUploadForDiscardedDraftIsRemoved(t *testing.T) {
	ctx := context.Background()
	drafts, gated := newGatedDrafts(t)

	draft, err := drafts.Create(ctx, "")
	require.NoError(t, err)

	files := multipartFiles(t, upload{"a.png", pngBytes})
	uploaded := make(chan error, 1)
	go func() {
		_, err := drafts.AddImages(ctx, draft.ID, files)
		uploaded <- err
	}()
	<-gated.entered

	require.NoError(t, drafts.Discard(ctx, draft.ID))
	close(gated.release)

	assert.ErrorIs(t, <-uploaded, lib.ErrDraftNotFound)
	assert.Equal(t, []string{"a.png"}, gated.deleted)
}

func TestDraftLocksAreReleased(t *testing.T) {
	ctx := context.Background()
	sm, _ := newTestServices(t)
	drafts := sm.DraftService

	draft, err := drafts.Create(ctx, "")
	require.NoError(t, err)
	_, err = drafts.AddVariant(ctx, draft.ID)
	require.NoError(t, err)
	_, err = drafts.Submit(ctx, draft.ID)
	require.Error(t, err)

	assert.Empty(t, drafts.locks.locks)
}
