package observability

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestRecordBookingCountsByOutcome(t *testing.T) {
	full := bookingAttempts.WithLabelValues(OutcomeSessionFull)
	success := bookingAttempts.WithLabelValues(OutcomeSuccess)
	beforeFull := testutil.ToFloat64(full)
	beforeSuccess := testutil.ToFloat64(success)

	RecordBooking(OutcomeSessionFull)
	RecordBooking(OutcomeSessionFull)
	RecordBooking(OutcomeSuccess)

	require.Equal(t, beforeFull+2, testutil.ToFloat64(full))
	require.Equal(t, beforeSuccess+1, testutil.ToFloat64(success))
}

func TestRecordSessionsSweptIgnoresZero(t *testing.T) {
	before := testutil.ToFloat64(sessionsSwept)

	RecordSessionsSwept(0)
	require.Equal(t, before, testutil.ToFloat64(sessionsSwept))

	RecordSessionsSwept(3)
	require.Equal(t, before+3, testutil.ToFloat64(sessionsSwept))
}
