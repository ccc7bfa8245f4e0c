package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"labisco_server/lib"
	"labisco_server/storage"
	"labisco_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/sync/errgroup"
)

type ImageService struct {
	logger   *gecho.Logger
	storage  storage.Storage
	maxBytes int64
	maxFiles int
}

func NewImageService(logger *gecho.Logger, store storage.Storage, cfg *structs.ImageConfig) *ImageService {
	return &ImageService{
		logger:   logger,
		storage:  store,
		maxBytes: cfg.MaxFileBytes,
		maxFiles: cfg.MaxFiles,
	}
}

// StoreUploads sniffs and stores every file concurrently and returns the URLs in
// the order the files were given. One bad file fails the whole batch.
func (is *ImageService) StoreUploads(ctx context.Context, files []*multipart.FileHeader) ([]string, error) {
	results, err := is.storeBatch(ctx, files)
	if err != nil {
		return nil, err
	}
	return resultURLs(results), nil
}

func (is *ImageService) storeBatch(ctx context.Context, files []*multipart.FileHeader) ([]storage.PutResult, error) {
	if len(files) == 0 {
		return []storage.PutResult{}, nil
	}
	if is.maxFiles > 0 && len(files) > is.maxFiles {
		ve := &lib.ValidationError{}
		ve.Add("images", fmt.Sprintf("at most %d files per upload", is.maxFiles))
		return nil, ve
	}

	results := make([]storage.PutResult, len(files))
	g, gctx := errgroup.WithContext(ctx)

	for i, fh := range files {
		g.Go(func() error {
			res, err := is.storeOne(gctx, fh)
			if err != nil {
				return fmt.Errorf("%s: %w", fh.Filename, err)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		is.discard(results)
		is.logger.Warn("Image upload rejected", gecho.Field("files", len(files)), gecho.Field("error", err))
		return nil, err
	}

	is.logger.Debug("Images stored", gecho.Field("count", len(results)))
	return results, nil
}

func resultURLs(results []storage.PutResult) []string {
	urls := make([]string, len(results))
	for i, res := range results {
		urls[i] = res.URL
	}
	return urls
}

func (is *ImageService) storeOne(ctx context.Context, fh *multipart.FileHeader) (storage.PutResult, error) {
	f, err := fh.Open()
	if err != nil {
		return storage.PutResult{}, err
	}
	defer f.Close()

	data, err := is.readLimited(f)
	if err != nil {
		return storage.PutResult{}, err
	}

	mt := mimetype.Detect(data)
	contentType := strings.SplitN(mt.String(), ";", 2)[0]
	if !strings.HasPrefix(contentType, "image/") {
		return storage.PutResult{}, lib.ErrUnsupportedImage
	}

	return is.storage.Put(ctx, bytes.NewReader(data), storage.PutInput{
		Filename:    fh.Filename,
		ContentType: contentType,
		Extension:   mt.Extension(),
		Size:        int64(len(data)),
	})
}

func (is *ImageService) readLimited(r io.Reader) ([]byte, error) {
	if is.maxBytes <= 0 {
		return io.ReadAll(r)
	}
	data, err := io.ReadAll(io.LimitReader(r, is.maxBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > is.maxBytes {
		return nil, lib.ErrImageTooLarge
	}
	return data, nil
}

// discard removes whatever part of a batch already reached storage. Used when the
// batch failed or could not be attached to its draft.
func (is *ImageService) discard(results []storage.PutResult) {
	for _, res := range results {
		if res.Key == "" {
			continue
		}
		if err := is.storage.Delete(context.Background(), res.Key); err != nil {
			is.logger.Warn("Failed to remove orphaned image", gecho.Field("key", res.Key), gecho.Field("error", err))
		}
	}
}
