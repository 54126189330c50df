package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestAddBusinessDays_SkipsWeekends(t *testing.T) {
	// 2025-01-03 is a Friday
	friday := time.Date(2025, 1, 3, 12, 0, 0, 0, time.UTC)

	require.Equal(t, time.Monday, addBusinessDays(friday, 1).Weekday())
	require.Equal(t, time.Date(2025, 1, 6, 12, 0, 0, 0, time.UTC), addBusinessDays(friday, 1))
	require.Equal(t, time.Date(2025, 1, 7, 12, 0, 0, 0, time.UTC), addBusinessDays(friday, 2))
	require.Equal(t, time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC), addBusinessDays(friday, 5))
}

func TestDeliveryEstimate_Deterministic(t *testing.T) {
	// 2025-01-01 is a Wednesday
	wednesday := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)

	quote := DeliveryEstimate("2000", wednesday)
	require.Equal(t, "2000", quote.Postcode)
	require.Equal(t, "Jan 03 - Jan 07", quote.Standard)
	require.Equal(t, "Jan 02 - Jan 03", quote.Express)

	// same inputs, same answer
	require.Equal(t, quote, DeliveryEstimate("2000", wednesday))
}

func TestDeliveryEstimate_TrimsPostcode(t *testing.T) {
	quote := DeliveryEstimate("  3000 \n", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	require.Equal(t, "3000", quote.Postcode)
}
