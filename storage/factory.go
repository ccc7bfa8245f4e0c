package storage

import (
	"context"
	"fmt"

	"labisco_server/structs"
)

// FromConfig builds the image storage selected by IMAGE_STORAGE_DRIVER.
func FromConfig(ctx context.Context, cfg *structs.ImageConfig) (Storage, error) {
	switch cfg.Driver {
	case "", "inline":
		return NewInline(), nil

	case "local":
		return NewLocal(cfg.LocalDir, cfg.LocalURLPrefix), nil

	case "s3":
		if cfg.S3Region == "" || cfg.S3Bucket == "" || cfg.S3PublicURL == "" {
			return nil, fmt.Errorf("S3 config missing: S3_REGION, S3_BUCKET, S3_PUBLIC_BASE_URL required")
		}
		return NewS3(ctx, S3Config{
			Region:        cfg.S3Region,
			Bucket:        cfg.S3Bucket,
			Prefix:        cfg.S3Prefix,
			PublicBaseURL: cfg.S3PublicURL,
		})

	default:
		return nil, fmt.Errorf("unknown IMAGE_STORAGE_DRIVER: %s", cfg.Driver)
	}
}
