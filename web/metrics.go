package web

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metrics holds the counters exposed on /metrics.
type metrics struct {
	ordersCommitted  prometheus.Counter
	checkoutRejected prometheus.Counter
	productsCreated  prometheus.Counter
	productsDeleted  prometheus.Counter
	snapshotExports  prometheus.Counter
	snapshotImports  prometheus.Counter
	importFailures   prometheus.Counter
}

func newMetrics(reg prometheus.Registerer) *metrics {
	factory := promauto.With(reg)
	return &metrics{
		ordersCommitted: factory.NewCounter(prometheus.CounterOpts{
			Name: "bakeshop_orders_committed_total",
			Help: "Orders appended to the ledger.",
		}),
		checkoutRejected: factory.NewCounter(prometheus.CounterOpts{
			Name: "bakeshop_checkout_rejected_total",
			Help: "Checkout submissions rejected during validation.",
		}),
		productsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "bakeshop_products_created_total",
			Help: "Products added to the catalog.",
		}),
		productsDeleted: factory.NewCounter(prometheus.CounterOpts{
			Name: "bakeshop_products_deleted_total",
			Help: "Products removed from the catalog.",
		}),
		snapshotExports: factory.NewCounter(prometheus.CounterOpts{
			Name: "bakeshop_snapshot_exports_total",
			Help: "Snapshot export downloads.",
		}),
		snapshotImports: factory.NewCounter(prometheus.CounterOpts{
			Name: "bakeshop_snapshot_imports_total",
			Help: "Snapshot documents applied.",
		}),
		importFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "bakeshop_snapshot_import_failures_total",
			Help: "Snapshot documents rejected as invalid JSON.",
		}),
	}
}
