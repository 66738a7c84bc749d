package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Contadores Prometheus del motor de inventario. Los handlers HTTP los
// incrementan; /metrics los expone cuando METRICS_ENABLED está activo.
var (
	TransfersTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "almacen",
		Name:      "transfers_total",
		Help:      "Traslados de stock ejecutados, por resultado.",
	}, []string{"result"}) // ok | error

	BulkTransfersTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "almacen",
		Name:      "bulk_transfers_total",
		Help:      "Lotes de traslados procesados.",
	})

	BulkTransferRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "almacen",
		Name:      "bulk_transfer_requests_total",
		Help:      "Traslados individuales dentro de lotes, por resultado.",
	}, []string{"result"}) // ok | error

	ItemMutationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "almacen",
		Name:      "item_mutations_total",
		Help:      "Mutaciones de ítems (create, update, delete, adjust), por operación y resultado.",
	}, []string{"operation", "result"})
)
