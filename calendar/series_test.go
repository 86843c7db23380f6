package calendar_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/axisgrid/calendar"
)

// formatAll renders zoned dates on the wall clock.
func formatAll(ds []calendar.Zoned) []string {
	out := make([]string, len(ds))
	for i, d := range ds {
		out[i] = d.Time().Format(wallLayout)
	}

	return out
}

// TestTicks_Months lists bimonthly boundaries in a +02:00 offset.
func TestTicks_Months(t *testing.T) {
	got, err := calendar.Ticks(wall(t, "2020-01-16T11:59", 120), wall(t, "2020-09-01T00:00", 120), 2, calendar.Months)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"2020-03-01 00:00:00",
		"2020-05-01 00:00:00",
		"2020-07-01 00:00:00",
		"2020-09-01 00:00:00",
	}, formatAll(got))
	for _, d := range got {
		assert.Equal(t, 120, d.Offset())
	}
}

// TestTicks_DaysRestartEachMonth checks that day grids restart on the 1st.
func TestTicks_DaysRestartEachMonth(t *testing.T) {
	got, err := calendar.Ticks(wall(t, "2020-01-26T00:00", 0), wall(t, "2020-02-06T00:00", 0), 5, calendar.Days)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"2020-01-26 00:00:00",
		"2020-01-31 00:00:00",
		"2020-02-01 00:00:00",
		"2020-02-06 00:00:00",
	}, formatAll(got))
}

// TestTicks_Empty covers empty and invalid ranges.
func TestTicks_Empty(t *testing.T) {
	got, err := calendar.Ticks(wall(t, "2020-01-02T01:00", 0), wall(t, "2020-01-02T23:00", 0), 1, calendar.Days)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = calendar.Ticks(wall(t, "2020-01-03T00:00", 0), wall(t, "2020-01-02T00:00", 0), 1, calendar.Days)
	assert.ErrorIs(t, err, calendar.ErrInvalidRange)

	_, err = calendar.Ticks(wall(t, "2020-01-01T00:00", 0), wall(t, "2020-01-02T00:00", 0), 0, calendar.Days)
	assert.ErrorIs(t, err, calendar.ErrInvalidAmount)
}

// TestChooseStep picks the finest step within the tick budget.
func TestChooseStep(t *testing.T) {
	cases := []struct {
		span     time.Duration
		maxCount int
		want     calendar.Step
	}{
		{0, 5, calendar.Step{Amount: 1, Unit: calendar.Milliseconds}},
		{time.Minute, 6, calendar.Step{Amount: 10, Unit: calendar.Seconds}},
		{time.Hour, 4, calendar.Step{Amount: 15, Unit: calendar.Minutes}},
		{24 * time.Hour, 5, calendar.Step{Amount: 6, Unit: calendar.Hours}},
		{30 * 24 * time.Hour, 10, calendar.Step{Amount: 5, Unit: calendar.Days}},
		{365 * 24 * time.Hour, 6, calendar.Step{Amount: 2, Unit: calendar.Months}},
		{200 * 365 * 24 * time.Hour, 2, calendar.Step{Amount: 100, Unit: calendar.Years}},
		{250 * 365 * 24 * time.Hour, 1, calendar.Step{Amount: 250, Unit: calendar.Years}},
	}
	for _, tc := range cases {
		got, err := calendar.ChooseStep(tc.span, tc.maxCount)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "span %v max %d", tc.span, tc.maxCount)
	}

	_, err := calendar.ChooseStep(time.Hour, 0)
	assert.ErrorIs(t, err, calendar.ErrInvalidAmount)
	_, err = calendar.ChooseStep(-time.Hour, 3)
	assert.ErrorIs(t, err, calendar.ErrInvalidRange)
}
