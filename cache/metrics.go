package cache

import "github.com/prometheus/client_golang/prometheus"

var (
	cacheHitsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "linkup_cache_hits_total",
			Help: "Total number of queries answered from the cache.",
		},
		[]string{"resource"},
	)
	cacheMissesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "linkup_cache_misses_total",
			Help: "Total number of queries that required a synchronous fetch.",
		},
		[]string{"resource"},
	)
	cacheRefetchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "linkup_cache_refetches_total",
			Help: "Total number of background revalidations.",
		},
		[]string{"resource"},
	)
	cacheEvictionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "linkup_cache_evictions_total",
			Help: "Total number of entries evicted after inactivity.",
		},
		[]string{"resource"},
	)
	mutationRollbacksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "linkup_mutation_rollbacks_total",
			Help: "Total number of optimistic mutations rolled back.",
		},
		[]string{"resource"},
	)
)

func init() {
	prometheus.MustRegister(
		cacheHitsTotal,
		cacheMissesTotal,
		cacheRefetchesTotal,
		cacheEvictionsTotal,
		mutationRollbacksTotal,
	)
}
