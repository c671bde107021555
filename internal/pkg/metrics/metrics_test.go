//go:build unit

package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"issuance-engine/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Record(t *testing.T) {
	r := metrics.NewRegistry(false)

	r.RecordAllocation("coupons", 20)
	r.RecordAllocation("coupons", 5)
	r.RecordAllocation("offers", 1)
	r.RecordIssued("batch", 25)
	r.RecordRedemption("public", metrics.OutcomeRedeemed)
	r.RecordRedemption("public", metrics.OutcomeAlreadyRedeemed)
	r.RecordQuotaRejection("202505")
	r.RecordTxRetry("memory")

	assert.Equal(t, 25.0, testutil.ToFloat64(r.SequenceAllocations.WithLabelValues("coupons")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.SequenceAllocations.WithLabelValues("offers")))
	assert.Equal(t, 25.0, testutil.ToFloat64(r.CodesIssued.WithLabelValues("batch")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.Redemptions.WithLabelValues("public", metrics.OutcomeRedeemed)))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.QuotaRejections.WithLabelValues("202505")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.TxRetries.WithLabelValues("memory")))
}

func TestRegistry_Handler(t *testing.T) {
	r := metrics.NewRegistry(false)
	r.ObserveTx("memory", time.Now(), nil)
	r.RecordOfferTransition("sent")

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, "issuance_transaction_duration_seconds"))
	assert.True(t, strings.Contains(body, `issuance_offer_status_transitions_total{status="sent"} 1`))
}
