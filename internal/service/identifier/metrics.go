package identifier

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ProbeCollisionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "identifier_probe_collisions_total",
			Help: "Total number of identifier candidates skipped because they were already taken",
		},
	)

	InsertRetriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "identifier_insert_retries_total",
			Help: "Total number of inserts retried after a unique violation on a generated identifier",
		},
		[]string{"kind"},
	)
)
