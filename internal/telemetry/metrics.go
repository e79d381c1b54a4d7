package telemetry

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"

	"github.com/shaiso/Epirun/internal/domain"
)

// metricsJob — имя batch-job в Pushgateway.
const metricsJob = "epirun"

// Metrics — метрики одного запуска для отправки в Pushgateway.
//
// Оркестратор — одноразовый batch-процесс, поэтому вместо /metrics
// endpoint используется push-модель: после завершения запуска метрики
// отправляются одним запросом.
type Metrics struct {
	registry *prometheus.Registry

	runDuration  prometheus.Gauge
	peakInfected prometheus.Gauge
	runsTotal    *prometheus.CounterVec
}

// NewMetrics создаёт реестр метрик запуска.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		runDuration: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "epirun_run_duration_seconds",
			Help: "Wall-clock duration of the simulator run.",
		}),
		peakInfected: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "epirun_peak_infected",
			Help: "Maximum of the I column in the simulator output.",
		}),
		runsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "epirun_runs_total",
			Help: "Completed runs by final status.",
		}, []string{"status"}),
	}

	m.registry.MustRegister(m.runDuration, m.peakInfected, m.runsTotal)
	return m
}

// Observe фиксирует итог завершённого run.
func (m *Metrics) Observe(run *domain.Run) {
	m.runDuration.Set(run.Duration().Seconds())
	m.peakInfected.Set(run.PeakInfected)
	m.runsTotal.WithLabelValues(string(run.Status)).Inc()
}

// Push отправляет метрики в Pushgateway, группируя по стране и
// сценарию, чтобы параллельные запуски не затирали друг друга.
func (m *Metrics) Push(gateway string, run *domain.Run) error {
	err := push.New(gateway, metricsJob).
		Gatherer(m.registry).
		Grouping("country", run.Country).
		Grouping("scenario", run.Scenario).
		Push()
	if err != nil {
		return fmt.Errorf("push metrics to %s: %w", gateway, err)
	}
	return nil
}
