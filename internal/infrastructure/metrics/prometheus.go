// Package metrics expone contadores Prometheus de emisión de documentos, ausencias y HTTP.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jhoicas/Facturation-api/internal/application/billing"
	"github.com/jhoicas/Facturation-api/internal/application/hr"
	"github.com/jhoicas/Facturation-api/internal/domain/entity"
)

const namespace = "facturation"

var (
	_ billing.Metrics = (*Recorder)(nil)
	_ hr.Metrics      = (*Recorder)(nil)
)

// Recorder implementa los puertos de métricas de los casos de uso.
type Recorder struct {
	documentsIssued *prometheus.CounterVec
	numberingFailed *prometheus.CounterVec
	leaveRequested  *prometheus.CounterVec
	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
}

// New registra los colectores en registerer (nil = prometheus.DefaultRegisterer).
func New(registerer prometheus.Registerer) *Recorder {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	r := &Recorder{
		documentsIssued: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "documents_issued_total",
			Help:      "Documentos emitidos con número asignado.",
		}, []string{"kind"}),
		numberingFailed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "numbering_failures_total",
			Help:      "Emisiones revertidas después de reservar número.",
		}, []string{"kind"}),
		leaveRequested: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "leave_requests_total",
			Help:      "Solicitudes de ausencia creadas.",
		}, []string{"type"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Peticiones HTTP atendidas.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Latencia de las peticiones HTTP.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
	registerer.MustRegister(r.documentsIssued, r.numberingFailed, r.leaveRequested, r.httpRequests, r.httpDuration)
	return r
}

func (r *Recorder) DocumentIssued(kind entity.DocumentKind) {
	r.documentsIssued.WithLabelValues(string(kind)).Inc()
}

func (r *Recorder) NumberingFailed(kind entity.DocumentKind) {
	r.numberingFailed.WithLabelValues(string(kind)).Inc()
}

func (r *Recorder) LeaveRequested(leaveType string) {
	r.leaveRequested.WithLabelValues(leaveType).Inc()
}

// ObserveHTTP route es el patrón de la ruta (ej. /api/invoices/:id), no la URL concreta.
func (r *Recorder) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	r.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	r.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}
