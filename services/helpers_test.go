package services

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"testing"
	"time"

	"labisco_server/database"
	"labisco_server/storage"
	"labisco_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/stretchr/testify/require"
)

const testProductsKey = "labisco_products"

var (
	pngBytes  = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	gifBytes  = []byte("GIF89a\x01\x00\x01\x00")
	jpegBytes = []byte("\xff\xd8\xff\xe0\x00\x10JFIF\x00")
)

func testConfig() *structs.Config {
	return &structs.Config{
		Server: &structs.ServerConfig{AppName: "labisco-test", Environment: "test"},
		Store: &structs.StoreConfig{
			Driver:      "memory",
			ProductsKey: testProductsKey,
			DraftTTL:    time.Hour,
		},
		Auth: &structs.AuthConfig{
			AdminEmail:        "admin@labisco.com",
			AdminPassword:     "password123",
			AdminUserID:       "admin1",
			AccessTokenSecret: "test-secret",
			SessionExpiry:     time.Hour,
		},
		RateLimit: &structs.RateLimitConfig{AuthLimit: 10, AuthWindow: time.Minute},
		Images:    &structs.ImageConfig{Driver: "inline", MaxFileBytes: 1 << 20, MaxFiles: 5},
		Email:     &structs.EmailConfig{LowStockThreshold: 5},
		Settings:  &structs.SettingsConfig{},
	}
}

func testLogger() *gecho.Logger {
	return gecho.NewDefaultLogger()
}

func newTestServices(t *testing.T) (*ServiceManager, *database.MemoryStore) {
	t.Helper()
	store := database.NewMemoryStore()
	sm, err := NewServiceManager(testLogger(), testConfig(), store, storage.NewInline())
	require.NoError(t, err)
	return sm, store
}

type upload struct {
	name string
	data []byte
}

func multipartFiles(t *testing.T, files ...upload) []*multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	for _, f := range files {
		w, err := mw.CreateFormFile("images", f.name)
		require.NoError(t, err)
		_, err = w.Write(f.data)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest("POST", "/", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))

	return req.MultipartForm.File["images"]
}

func newMemoryStore() *database.MemoryStore {
	return database.NewMemoryStore()
}
