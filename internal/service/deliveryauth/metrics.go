package deliveryauth

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var verificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "delivery_verification_total",
		Help: "Попытки верификации выдачи по исходу.",
	},
	[]string{"outcome"},
)
