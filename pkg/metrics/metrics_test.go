package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCounters(t *testing.T) {
	Register()
	Register()

	before := testutil.ToFloat64(bookingRejections.WithLabelValues(ReasonSlotTaken))
	IncBookingRejected(ReasonSlotTaken)
	assert.Equal(t, before+1, testutil.ToFloat64(bookingRejections.WithLabelValues(ReasonSlotTaken)))

	before = testutil.ToFloat64(bookingsCreated.WithLabelValues("room"))
	IncBookingCreated("room")
	assert.Equal(t, before+1, testutil.ToFloat64(bookingsCreated.WithLabelValues("room")))

	before = testutil.ToFloat64(reserveRetries)
	IncReserveRetry()
	assert.Equal(t, before+1, testutil.ToFloat64(reserveRetries))
}
