package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"launchpizza/internal/entities"
)

var OrdersByStatus = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "orders_by_status",
		Help: "Number of stored orders per order_status",
	},
	[]string{"status"},
)

// SetOrdersByStatus заменяет весь набор лейблов: статусы, которых больше нет в таблице, пропадают.
func SetOrdersByStatus(counts map[entities.OrderStatusType]int64) {
	OrdersByStatus.Reset()
	for status, count := range counts {
		OrdersByStatus.WithLabelValues(status.String()).Set(float64(count))
	}
}
