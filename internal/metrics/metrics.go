package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Lookup miss kinds.
const (
	MissAmmo     = "ammo"
	MissTemplate = "template"
	MissCaliber  = "caliber"
	MissGear     = "gear"
	MissPreset   = "preset"
)

// Metrics records generation outcomes. A nil *Metrics is valid and records
// nothing.
type Metrics struct {
	registry *prometheus.Registry

	generated *prometheus.CounterVec
	elite     prometheus.Counter
	misses    *prometheus.CounterVec
	rejected  prometheus.Counter
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		generated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "loadout_generated_total",
			Help: "Bot loadouts generated, by bundle and tier.",
		}, []string{"bundle", "tier"}),
		elite: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "loadout_elite_total",
			Help: "Loadouts that took the elite branch.",
		}),
		misses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "loadout_lookup_miss_total",
			Help: "Lookups that found no data, by kind.",
		}, []string{"kind"}),
		rejected: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "loadout_presets_rejected_total",
			Help: "Weapon presets rejected at load time.",
		}),
	}
	m.registry.MustRegister(m.generated, m.elite, m.misses, m.rejected)
	return m
}

func (m *Metrics) CountGenerated(bundle, tier string) {
	if m == nil {
		return
	}
	m.generated.WithLabelValues(bundle, tier).Inc()
}

func (m *Metrics) CountElite() {
	if m == nil {
		return
	}
	m.elite.Inc()
}

func (m *Metrics) CountMiss(kind string) {
	if m == nil {
		return
	}
	m.misses.WithLabelValues(kind).Inc()
}

func (m *Metrics) CountRejected(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.rejected.Add(float64(n))
}

func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler serves the registry in the prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
