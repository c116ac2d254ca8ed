package metricsprovider

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricPrefix = "labtrack_"

// Alert lifecycle events.
const (
	AlertRaised       = "raised"
	AlertAcknowledged = "acknowledged"
	AlertResolved     = "resolved"
	AlertDismissed    = "dismissed"
)

var (
	registerOnce sync.Once

	alertEventsTotal      *prometheus.CounterVec
	permissionDenials     *prometheus.CounterVec
	orphanedRecords       prometheus.Gauge
	triggerEvaluations    prometheus.Counter
	equipmentExportsTotal prometheus.Counter
)

// Init registers the service metrics. Safe to call more than once.
func Init() {
	registerOnce.Do(func() {
		alertEventsTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "alert_events_total",
				Help: "Alert lifecycle events by event and alert type",
			},
			[]string{"event", "type"},
		)
		permissionDenials = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "permission_denials_total",
				Help: "Requests rejected by the permission evaluator",
			},
			[]string{"permission"},
		)
		orphanedRecords = prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: metricPrefix + "orphaned_maintenance_records",
				Help: "Maintenance records whose equipment no longer exists, as of the last evaluation",
			},
		)
		triggerEvaluations = prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: metricPrefix + "trigger_evaluations_total",
				Help: "Alert trigger evaluation passes",
			},
		)
		equipmentExportsTotal = prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: metricPrefix + "equipment_exports_total",
				Help: "Equipment spreadsheet exports served",
			},
		)

		prometheus.MustRegister(
			alertEventsTotal,
			permissionDenials,
			orphanedRecords,
			triggerEvaluations,
			equipmentExportsTotal,
		)
	})
}

func Handler() http.Handler {
	return promhttp.Handler()
}

// IncAlertEvent increments alert lifecycle counters.
func IncAlertEvent(event, alertType string) {
	if event == "" {
		event = "unknown"
	}
	if alertEventsTotal != nil {
		alertEventsTotal.WithLabelValues(event, alertType).Inc()
	}
}

func IncPermissionDenied(permission string) {
	if permissionDenials != nil {
		permissionDenials.WithLabelValues(permission).Inc()
	}
}

// ObserveEvaluation records one trigger pass and its orphan count.
func ObserveEvaluation(orphaned int) {
	if triggerEvaluations != nil {
		triggerEvaluations.Inc()
	}
	if orphanedRecords != nil {
		orphanedRecords.Set(float64(orphaned))
	}
}

func IncEquipmentExport() {
	if equipmentExportsTotal != nil {
		equipmentExportsTotal.Inc()
	}
}
