package biztime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayBoundsUTC(t *testing.T) {
	d, err := ParseDate("2025-01-15")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), StartOfDayUTC(d))
	assert.Equal(t, time.Date(2025, 1, 15, 23, 59, 59, 999999999, time.UTC), EndOfDayUTC(d))
}

func TestParseDate_Invalid(t *testing.T) {
	_, err := ParseDate("15/01/2025")
	assert.Error(t, err)
}
