package metrics

import (
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordClaimCreated()
	c.RecordClaimCreated()
	c.RecordClaimRejected("failed_precondition")
	c.RecordClaimClosed("timed_out", 3)
	c.RecordSweep(3, time.Second)
	c.RecordSweepFailure()
	c.RecordEventProcessed("rating_created")
	c.RecordNotificationFailure()

	assert.Equal(t, 2.0, testutil.ToFloat64(c.claimsCreated))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.claimsRejected.WithLabelValues("failed_precondition")))
	assert.Equal(t, 3.0, testutil.ToFloat64(c.claimsClosed.WithLabelValues("timed_out")))
	assert.Equal(t, 3.0, testutil.ToFloat64(c.sweepReleased))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.sweepFailures))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.eventsProcessed.WithLabelValues("rating_created")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.notificationFailures))
	assert.Equal(t, 1, testutil.CollectAndCount(c.sweepDuration))
}

func TestHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewCollector(reg).RecordClaimCreated()

	w := httptest.NewRecorder()
	Handler(reg).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)

	b, err := ioutil.ReadAll(w.Body)
	require.NoError(t, err)
	assert.Contains(t, string(b), "reswipe_claims_created_total 1")
}

func TestNop(t *testing.T) {
	r := Nop()

	require.NotPanics(t, func() {
		r.RecordClaimCreated()
		r.RecordClaimRejected("internal")
		r.RecordClaimClosed("completed", 1)
		r.RecordSweep(0, 0)
		r.RecordSweepFailure()
		r.RecordEventProcessed("claim_status_changed")
		r.RecordNotificationFailure()
	})
}
