package services

import "github.com/prometheus/client_golang/prometheus"

var (
	CatalogProducts = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "catalog",
			Name:      "products",
			Help:      "Number of products in the stored catalog",
		},
	)

	CatalogReseeds = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "catalog",
			Name:      "reseeds_total",
			Help:      "Times the catalog was rewritten with seed data",
		},
	)
)
