package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// StockMovementsTotal cuenta los movimientos registrados con éxito, por tipo.
var StockMovementsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "estoque_stock_movements_total",
		Help: "Movimientos de stock registrados, por tipo (IN, OUT, ADJUSTMENT).",
	},
	[]string{"type"},
)

// InsufficientStockTotal cuenta las salidas rechazadas por falta de stock.
var InsufficientStockTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "estoque_insufficient_stock_total",
		Help: "Salidas rechazadas por stock insuficiente.",
	},
)
