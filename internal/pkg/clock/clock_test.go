package clock_test

import (
	"testing"
	"time"

	"hotel-simulator/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedClock(t *testing.T) {
	c, err := clock.ParseFixedClock("2024-11-07")
	require.NoError(t, err)
	assert.Equal(t, "2024-11-07", clock.Today(c))

	c.AddDays(1)
	assert.Equal(t, "2024-11-08", clock.Today(c))

	c.Set(time.Date(2025, time.January, 31, 23, 59, 0, 0, time.UTC))
	assert.Equal(t, "2025-01-31", clock.Today(c))

	_, err = clock.ParseFixedClock("07/11/2024")
	require.Error(t, err)
}

func TestRealClock(t *testing.T) {
	before := time.Now()
	got := clock.NewRealClock().Now()
	assert.False(t, got.Before(before))
}
