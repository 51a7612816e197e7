package world

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Метрики генерации. Регистрируются в глобальном реестре prometheus;
// экспорт наружу — забота вызывающей стороны.
var (
	generationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "worldgen",
			Name:      "generation_duration_seconds",
			Help:      "Длительность генерации карты по масштабам",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"scale"},
	)

	generationRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "worldgen",
			Name:      "generation_runs_total",
			Help:      "Количество запусков генерации по масштабам",
		},
		[]string{"scale"},
	)
)

func init() {
	prometheus.MustRegister(generationDuration)
	prometheus.MustRegister(generationRuns)
}

// observeGeneration фиксирует завершенный запуск генерации указанного масштаба
func observeGeneration(scale string, start time.Time) {
	generationDuration.WithLabelValues(scale).Observe(time.Since(start).Seconds())
	generationRuns.WithLabelValues(scale).Inc()
}
