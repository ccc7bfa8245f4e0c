package services

import (
	"context"
	"runtime"
	"time"

	"labisco_server/database"

	"github.com/MonkyMars/gecho"
)

var uptimeStart = time.Now()

type serverHealthStatus struct {
	Uptime       float64   `json:"uptime"`
	CurrentTime  time.Time `json:"current_time"`
	ServiceAlive bool      `json:"service_alive"`
	RamStats     *RamStats `json:"ram_stats"`
}

type RamStats struct {
	TotalMB     uint64 `json:"total_mb"`
	UsedMB      uint64 `json:"used_mb"`
	FreeMB      uint64 `json:"free_mb"`
	UsedPercent uint64 `json:"used_percent"`
}

type storeHealthStatus struct {
	Driver         string         `json:"driver"`
	Connected      bool           `json:"connected"`
	LastChecked    time.Time      `json:"last_checked"`
	ResponseTimeMs int64          `json:"response_time_ms"`
	Pool           map[string]any `json:"pool,omitempty"`
}

// poolReporter is implemented by stores that keep a connection pool.
type poolReporter interface {
	Stats() map[string]any
}

type HealthService struct {
	logger *gecho.Logger
	store  database.KVStore
	driver string
}

func NewHealthService(logger *gecho.Logger, store database.KVStore, driver string) *HealthService {
	return &HealthService{
		logger: logger,
		store:  store,
		driver: driver,
	}
}

func getRamStats() *RamStats {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	totalMB := m.Sys / 1024 / 1024
	usedMB := m.Alloc / 1024 / 1024
	freeMB := totalMB - usedMB
	usedPercent := uint64(0)
	if totalMB > 0 {
		usedPercent = (usedMB * 100) / totalMB
	}

	return &RamStats{
		TotalMB:     totalMB,
		UsedMB:      usedMB,
		FreeMB:      freeMB,
		UsedPercent: usedPercent,
	}
}

func (hs *HealthService) GetServerHealthStatus() serverHealthStatus {
	return serverHealthStatus{
		Uptime:       time.Since(uptimeStart).Seconds(),
		CurrentTime:  time.Now(),
		ServiceAlive: true,
		RamStats:     getRamStats(),
	}
}

func (hs *HealthService) GetStoreHealthStatus(ctx context.Context) (storeHealthStatus, error) {
	start := time.Now()
	err := hs.store.Ping(ctx)

	status := storeHealthStatus{
		Driver:         hs.driver,
		Connected:      err == nil,
		LastChecked:    time.Now(),
		ResponseTimeMs: time.Since(start).Milliseconds(),
	}

	if pr, ok := hs.store.(poolReporter); ok {
		status.Pool = pr.Stats()
	}

	if err != nil {
		hs.logger.Error("Store health check failed", gecho.Field("error", err))
	}

	return status, err
}
