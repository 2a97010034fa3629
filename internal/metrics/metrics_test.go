package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordHTTPRequest(t *testing.T) {
	HTTPRequestsTotal.Reset()
	HTTPRequestDuration.Reset()

	RecordHTTPRequest("GET", "/api/gyms", "200", 0.5)

	count := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/api/gyms", "200"))
	assert.Equal(t, float64(1), count)
}

func TestRecordHTTPRequestMultiple(t *testing.T) {
	HTTPRequestsTotal.Reset()

	RecordHTTPRequest("POST", "/api/gym/auth/login", "200", 0.1)
	RecordHTTPRequest("POST", "/api/gym/auth/login", "200", 0.2)
	RecordHTTPRequest("POST", "/api/gym/auth/login", "401", 0.05)

	successCount := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "/api/gym/auth/login", "200"))
	failCount := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "/api/gym/auth/login", "401"))

	assert.Equal(t, float64(2), successCount)
	assert.Equal(t, float64(1), failCount)
}

func TestAccessRequestDecisions(t *testing.T) {
	AccessRequestDecisionsTotal.Reset()

	AccessRequestDecisionsTotal.WithLabelValues("APPROVED").Inc()
	AccessRequestDecisionsTotal.WithLabelValues("APPROVED").Inc()
	AccessRequestDecisionsTotal.WithLabelValues("REJECTED").Inc()

	approved := testutil.ToFloat64(AccessRequestDecisionsTotal.WithLabelValues("APPROVED"))
	rejected := testutil.ToFloat64(AccessRequestDecisionsTotal.WithLabelValues("REJECTED"))

	assert.Equal(t, float64(2), approved)
	assert.Equal(t, float64(1), rejected)
}

func TestCheckinsCounter(t *testing.T) {
	CheckinsTotal.Reset()

	CheckinsTotal.WithLabelValues("1").Inc()
	CheckinsTotal.WithLabelValues("1").Inc()

	count := testutil.ToFloat64(CheckinsTotal.WithLabelValues("1"))
	assert.Equal(t, float64(2), count)
}
