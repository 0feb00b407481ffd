package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveSubmission(t *testing.T) {
	m := NewWithRegistry("test", prometheus.NewRegistry())

	m.ObserveSubmission("payOffline", "booked")
	m.ObserveSubmission("payOffline", "booked")
	m.ObserveSubmission("payOnline", "payment_failed")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.SubmissionsTotal.WithLabelValues("payOffline", "booked")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SubmissionsTotal.WithLabelValues("payOnline", "payment_failed")))
}
