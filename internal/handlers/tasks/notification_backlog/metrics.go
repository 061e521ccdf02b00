package notification_backlog

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var UndispatchedNotifications = promauto.NewGauge(
	prometheus.GaugeOpts{
		Name: "notifications_undispatched",
		Help: "Number of notifications waiting to be dispatched",
	},
)
