package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "rental_booking"

// Rejection reasons.
const (
	ReasonPastDate        = "past_date"
	ReasonInvertedRange   = "inverted_range"
	ReasonSlotTaken       = "slot_taken"
	ReasonTimeOutOfWindow = "time_out_of_window"
	ReasonUnitNotFound    = "unit_not_found"
	ReasonKindMismatch    = "kind_mismatch"
	ReasonStorageBusy     = "storage_busy"
	ReasonInvalid         = "invalid"
)

var (
	once sync.Once

	bookingsCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_created_total",
			Help:      "Count of bookings persisted, by unit kind.",
		},
		[]string{"kind"},
	)

	bookingRejections = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booking_rejections_total",
			Help:      "Count of booking requests rejected, by reason.",
		},
		[]string{"reason"},
	)

	reserveRetries = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reserve_retries_total",
			Help:      "Count of reserve transactions retried after a transient storage conflict.",
		},
	)
)

// Register registers metrics with the default registry (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(bookingsCreated, bookingRejections, reserveRetries)
	})
}

func IncBookingCreated(kind string) {
	bookingsCreated.WithLabelValues(kind).Inc()
}

func IncBookingRejected(reason string) {
	bookingRejections.WithLabelValues(reason).Inc()
}

func IncReserveRetry() {
	reserveRetries.Inc()
}
