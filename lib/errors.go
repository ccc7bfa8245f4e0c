package lib

import "errors"

// Catalog errors
var (
	ErrNotFound      = errors.New("not found")
	ErrDraftNotFound = errors.New("draft not found")
)

// Product form errors
var (
	ErrLastVariant      = errors.New("a product must have at least one variant")
	ErrVariantNotFound  = errors.New("variant not found")
	ErrImageIndex       = errors.New("image index out of range")
	ErrUnsupportedImage = errors.New("unsupported image type")
	ErrImageTooLarge    = errors.New("image exceeds the maximum file size")
)

// Auth errors
var (
	ErrInvalidToken       = errors.New("invalid token")
	ErrExpiredToken       = errors.New("expired token")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
