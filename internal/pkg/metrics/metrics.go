// Package metrics exposes Prometheus instruments for issuance, redemption and
// transaction behaviour. All Record* calls happen after a transaction has
// committed (or definitively failed) so retried bodies are never double counted.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "issuance"

// Redemption outcomes
const (
	OutcomeRedeemed        = "redeemed"
	OutcomeAlreadyRedeemed = "already_redeemed"
	OutcomeExpired         = "expired"
	OutcomeNotFound        = "not_found"
	OutcomeError           = "error"
)

type Registry struct {
	promRegistry *prometheus.Registry

	SequenceAllocations *prometheus.CounterVec
	CodesIssued         *prometheus.CounterVec
	QuotaRejections     *prometheus.CounterVec
	Redemptions         *prometheus.CounterVec
	OfferTransitions    *prometheus.CounterVec
	TxRetries           *prometheus.CounterVec
	TxDuration          *prometheus.HistogramVec
}

func NewRegistry(includeRuntime bool) *Registry {
	reg := prometheus.NewRegistry()
	if includeRuntime {
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	r := &Registry{
		promRegistry: reg,
		SequenceAllocations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sequence_numbers_allocated_total",
			Help:      "Sequence numbers handed out, by counter domain.",
		}, []string{"domain"}),
		CodesIssued: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "coupon_codes_issued_total",
			Help:      "Coupon codes created, by issuance mode (batch or single).",
		}, []string{"mode"}),
		QuotaRejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "coupon_quota_rejections_total",
			Help:      "Batch requests refused because the period ceiling would be exceeded.",
		}, []string{"period"}),
		Redemptions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "coupon_redemptions_total",
			Help:      "Redemption attempts, by actor and outcome.",
		}, []string{"actor", "outcome"}),
		OfferTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "offer_status_transitions_total",
			Help:      "Offer status changes, by target status.",
		}, []string{"status"}),
		TxRetries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transaction_retries_total",
			Help:      "Transaction bodies re-run after a write conflict, by store.",
		}, []string{"store"}),
		TxDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "transaction_duration_seconds",
			Help:      "Wall time of Within calls including retries, by store and result.",
			Buckets:   []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		}, []string{"store", "result"}),
	}

	reg.MustRegister(
		r.SequenceAllocations,
		r.CodesIssued,
		r.QuotaRejections,
		r.Redemptions,
		r.OfferTransitions,
		r.TxRetries,
		r.TxDuration,
	)
	return r
}

func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.promRegistry, promhttp.HandlerOpts{Registry: r.promRegistry})
}

func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.promRegistry
}

func (r *Registry) RecordAllocation(domain string, amount int64) {
	r.SequenceAllocations.WithLabelValues(domain).Add(float64(amount))
}

func (r *Registry) RecordIssued(mode string, count int) {
	r.CodesIssued.WithLabelValues(mode).Add(float64(count))
}

func (r *Registry) RecordQuotaRejection(period string) {
	r.QuotaRejections.WithLabelValues(period).Inc()
}

func (r *Registry) RecordRedemption(actor, outcome string) {
	r.Redemptions.WithLabelValues(actor, outcome).Inc()
}

func (r *Registry) RecordOfferTransition(status string) {
	r.OfferTransitions.WithLabelValues(status).Inc()
}

func (r *Registry) RecordTxRetry(store string) {
	r.TxRetries.WithLabelValues(store).Inc()
}

func (r *Registry) ObserveTx(store string, started time.Time, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	r.TxDuration.WithLabelValues(store, result).Observe(time.Since(started).Seconds())
}
