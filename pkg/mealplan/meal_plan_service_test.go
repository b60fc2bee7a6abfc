package mealplan

import (
	"testing"
	"time"

	"recipe-hub/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekWindowFirstWeek(t *testing.T) {
	start, end, err := WeekWindow("2025-01")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, time.January, 7, 23, 59, 59, 0, time.UTC), end)
}

func TestWeekWindowSecondWeek(t *testing.T) {
	start, end, err := WeekWindow("2025-02")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, time.January, 8, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, time.January, 14, 23, 59, 59, 0, time.UTC), end)
}

func TestWeekWindowCrossesMonths(t *testing.T) {
	// Week 10 covers days 64 through 70 of the year, which lands in March.
	start, end, err := WeekWindow("2025-10")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, time.March, 11, 23, 59, 59, 0, time.UTC), end)
}

func TestWeekWindowLastWeekSpillsIntoNextYear(t *testing.T) {
	start, end, err := WeekWindow("2025-53")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, time.January, 6, 23, 59, 59, 0, time.UTC), end)
}

func TestWeekWindowSpansSevenDays(t *testing.T) {
	for _, week := range []string{"2025-01", "2025-07", "2025-26", "2025-52"} {
		start, end, err := WeekWindow(week)
		require.NoError(t, err)
		assert.Equal(t, 7*24*time.Hour-time.Second, end.Sub(start), "week %s", week)
	}
}

func TestWeekWindowRejectsMalformedInput(t *testing.T) {
	for _, week := range []string{"", "2025", "2025-", "-01", "abcd-01", "2025-xx", "2025-0", "2025-54", "2025-01-01"} {
		_, _, err := WeekWindow(week)
		assert.ErrorIs(t, err, domain.ErrInvalidWeek, "week %q", week)
	}
}
