package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the ledger's prometheus collectors.
type Metrics struct {
	operations       *prometheus.CounterVec
	royaltyAccrued   prometheus.Counter
	royaltyWithdrawn prometheus.Counter
	purchaseVolume   prometheus.Counter
}

// New registers the ledger collectors on registerer, falling back to the
// default registerer when nil.
func New(registerer prometheus.Registerer) *Metrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "content_ledger_operations_total",
			Help: "Ledger calls by operation and result code.",
		}, []string{"operation", "result"}),
		royaltyAccrued: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "content_ledger_royalty_accrued_total",
			Help: "Royalty units accrued to creators by purchases.",
		}),
		royaltyWithdrawn: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "content_ledger_royalty_withdrawn_total",
			Help: "Royalty units paid out to creators.",
		}),
		purchaseVolume: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "content_ledger_purchase_volume_total",
			Help: "Units captured from buyers by premium purchases.",
		}),
	}
	registerer.MustRegister(m.operations, m.royaltyAccrued, m.royaltyWithdrawn, m.purchaseVolume)
	return m
}

// ObserveOperation counts one ledger call. result is "ok" or a ledger code name.
func (m *Metrics) ObserveOperation(operation, result string) {
	if m == nil {
		return
	}
	m.operations.WithLabelValues(operation, result).Inc()
}

func (m *Metrics) AddRoyaltyAccrued(amount uint64) {
	if m == nil {
		return
	}
	m.royaltyAccrued.Add(float64(amount))
}

func (m *Metrics) AddRoyaltyWithdrawn(amount uint64) {
	if m == nil {
		return
	}
	m.royaltyWithdrawn.Add(float64(amount))
}

func (m *Metrics) AddPurchaseVolume(amount uint64) {
	if m == nil {
		return
	}
	m.purchaseVolume.Add(float64(amount))
}
