// SPDX-License-Identifier: MIT

package mesh

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Package-level meter; a no-op until the process installs a MeterProvider.
var meter = otel.Meter("github.com/idledeity/marsminingco-sub000/mesh")

var (
	searchTotal    metric.Int64Counter
	searchExpanded metric.Int64Histogram
	routeLength    metric.Int64Histogram

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics creates the instruments once. Safe to call repeatedly.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		searchTotal, err = meter.Int64Counter(
			"navmesh_search_total",
			metric.WithDescription("Number of FindPath calls that ran a search"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		searchExpanded, err = meter.Int64Histogram(
			"navmesh_search_expanded",
			metric.WithDescription("Nodes closed per search"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		routeLength, err = meter.Int64Histogram(
			"navmesh_route_length",
			metric.WithDescription("Nodes on each route found"),
		)
		if err != nil {
			metricsErr = err
		}
	})

	return metricsErr
}

// recordSearch reports one finished search.
func recordSearch(found bool, expanded, length int) {
	if initMetrics() != nil {
		return
	}
	ctx := context.Background()
	attrs := metric.WithAttributes(attribute.Bool("found", found))
	searchTotal.Add(ctx, 1, attrs)
	searchExpanded.Record(ctx, int64(expanded), attrs)
	if found {
		routeLength.Record(ctx, int64(length))
	}
}
