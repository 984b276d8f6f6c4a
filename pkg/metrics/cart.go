package metrics

import "github.com/prometheus/client_golang/prometheus"

// CartMetrics counts cart state transitions by operation kind.
type CartMetrics struct {
	operations *prometheus.CounterVec
	clamps     prometheus.Counter
}

// NewCartMetrics registers the cart metrics on the provided registerer.
func NewCartMetrics(reg prometheus.Registerer) *CartMetrics {
	if reg == nil {
		return &CartMetrics{}
	}
	operations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cart_operations_total",
		Help: "Cart operations dispatched, by operation kind.",
	}, []string{"op"})
	clamps := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cart_quantity_clamps_total",
		Help: "Requested quantities clamped to the per-product stock cap.",
	})
	reg.MustRegister(operations, clamps)
	return &CartMetrics{
		operations: operations,
		clamps:     clamps,
	}
}

// IncOperation increments the counter for the named operation kind.
func (c *CartMetrics) IncOperation(op string) {
	if c == nil || c.operations == nil {
		return
	}
	c.operations.WithLabelValues(normalizeLabel(op)).Inc()
}

// IncClamp records one stock-cap clamp.
func (c *CartMetrics) IncClamp() {
	if c == nil || c.clamps == nil {
		return
	}
	c.clamps.Inc()
}
