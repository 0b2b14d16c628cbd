// Package metrics exports dispatch activity to Prometheus.
package metrics

import (
	"context"
	"log/slog"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/ports"

	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusPublisher counts lifecycle events. It implements ports.EventPublisher, so it
// is fanned out alongside the log publisher.
// Registration errors are logged but never propagated.
type PrometheusPublisher struct {
	eventsTotal   *prometheus.CounterVec
	shippingDelay *prometheus.HistogramVec
	logger        *slog.Logger
}

var _ ports.EventPublisher = (*PrometheusPublisher)(nil)

func NewPrometheusPublisher(reg prometheus.Registerer, logger *slog.Logger) *PrometheusPublisher {
	p := &PrometheusPublisher{
		eventsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dispatch_events_total",
			Help: "Total number of lifecycle events by event name and provider.",
		}, []string{"event", "provider"}),
		shippingDelay: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "dispatch_shipping_delay_seconds",
			Help:    "Transit delay drawn for each shipment in seconds.",
			Buckets: []float64{1, 2, 3, 4, 5, 6, 7, 8, 10, 15},
		}, []string{"provider"}),
		logger: logger.With("component", "metrics"),
	}

	p.register(reg, p.eventsTotal, "dispatch_events_total")
	p.register(reg, p.shippingDelay, "dispatch_shipping_delay_seconds")
	return p
}

func (p *PrometheusPublisher) Publish(_ context.Context, e delivery.Event) {
	provider := "none"
	if e.Provider.Validate() == nil {
		provider = e.Provider.String()
	}

	p.eventsTotal.WithLabelValues(string(e.Name), provider).Inc()
	if e.Name == delivery.ShippingStarted {
		p.shippingDelay.WithLabelValues(provider).Observe(e.Delay.Seconds())
	}
}

// Gauges reads live sizes at scrape time.
type Gauges struct {
	StoreSize         func() int
	PendingOrders     func() int
	ShipmentsInFlight func() int
}

// RegisterGauges exposes the non-nil gauge sources on reg.
func (p *PrometheusPublisher) RegisterGauges(reg prometheus.Registerer, g Gauges) {
	gauge := func(name, help string, fn func() int) {
		if fn == nil {
			return
		}
		p.register(reg, prometheus.NewGaugeFunc(prometheus.GaugeOpts{Name: name, Help: help}, func() float64 {
			return float64(fn())
		}), name)
	}

	gauge("dispatch_store_records", "Number of delivery records currently tracked.", g.StoreSize)
	gauge("dispatch_pending_orders", "Number of scheduled orders not yet dispatched.", g.PendingOrders)
	gauge("dispatch_shipments_in_flight", "Number of shipments waiting for their transit delay.", g.ShipmentsInFlight)
}

func (p *PrometheusPublisher) register(reg prometheus.Registerer, c prometheus.Collector, name string) {
	if err := reg.Register(c); err != nil {
		p.logger.Warn("Failed to register metric", "metric", name, "error", err)
	}
}
