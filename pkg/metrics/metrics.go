// Package metrics expõe os indicadores Prometheus da API
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// AnalysesComputed conta as análises calculadas por tipo (kpis, aggregate, ranking, abc...)
	AnalysesComputed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sales_analytics_analyses_total",
		Help: "Total number of analyses computed by kind",
	}, []string{"kind"})

	// AnalysisErrors conta os erros por tipo de análise e código de erro
	AnalysisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sales_analytics_analysis_errors_total",
		Help: "Total number of analysis errors by kind and code",
	}, []string{"kind", "code"})

	// AnalysisDuration mede o tempo de cálculo
	AnalysisDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "sales_analytics_analysis_duration_seconds",
		Help:    "Time taken to compute an analysis by kind",
		Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2},
	}, []string{"kind"})

	// RecordsLoaded é o tamanho do dataset em memória
	RecordsLoaded = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "sales_analytics_records_loaded",
		Help: "Number of sales records in the current dataset",
	})

	// SnapshotsSaved conta os itens de snapshot ABC gravados por dimensão
	SnapshotsSaved = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sales_analytics_abc_snapshot_items_total",
		Help: "Total number of ABC snapshot items saved by dimension",
	}, []string{"dimension"})
)

// ObserveAnalysis registra a contagem e a duração de uma análise
func ObserveAnalysis(kind string, start time.Time) {
	AnalysesComputed.WithLabelValues(kind).Inc()
	AnalysisDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
}

// Handler expõe o registry padrão no formato Prometheus
func Handler() http.Handler {
	return promhttp.Handler()
}
