package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordBooking(t *testing.T) {
	m := New("club-spaces", prometheus.NewRegistry())

	m.RecordBooking("reservation", "booked")
	m.RecordBooking("reservation", "booked")
	m.RecordBooking("reservation", "conflict")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.BookingOutcomes.WithLabelValues("reservation", "booked")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BookingOutcomes.WithLabelValues("reservation", "conflict")))
}

func TestRecordBooking_NilSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() { m.RecordBooking("event", "booked") })
}
