package cron_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/favonia/cron-explainer/internal/cron"
)

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}

	return loc
}

func TestNextRunsEveryMinute(t *testing.T) {
	t.Parallel()
	from := time.Date(2024, time.January, 1, 0, 1, 30, 500, time.UTC)
	runs := cron.NextRuns(cron.MustParse("* * * * *"), from, 10, 0)
	require.Len(t, runs, 10)
	require.Equal(t, time.Date(2024, time.January, 1, 0, 2, 0, 0, time.UTC), runs[0])
	for i := 1; i < len(runs); i++ {
		require.Equal(t, time.Minute, runs[i].Sub(runs[i-1]))
	}
}

func TestNextRunsSkipsNow(t *testing.T) {
	t.Parallel()
	from := time.Date(2024, time.January, 1, 0, 15, 0, 0, time.UTC)
	runs := cron.NextRuns(cron.MustParse("*/15 * * * *"), from, 1, 0)
	require.Equal(t, []time.Time{time.Date(2024, time.January, 1, 0, 30, 0, 0, time.UTC)}, runs)
}

func TestNextRunsQuarterHours(t *testing.T) {
	t.Parallel()
	from := time.Date(2024, time.January, 1, 0, 1, 0, 0, time.UTC)
	require.Equal(t,
		[]time.Time{
			time.Date(2024, time.January, 1, 0, 15, 0, 0, time.UTC),
			time.Date(2024, time.January, 1, 0, 30, 0, 0, time.UTC),
			time.Date(2024, time.January, 1, 0, 45, 0, 0, time.UTC),
			time.Date(2024, time.January, 1, 1, 0, 0, 0, time.UTC),
		},
		cron.NextRuns(cron.MustParse("*/15 * * * *"), from, 4, 0),
	)
}

func TestNextRunsMondayMorning(t *testing.T) {
	t.Parallel()
	from := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC) // a Monday
	runs := cron.NextRuns(cron.MustParse("0 9 * * 1"), from, 10, 0)
	require.Len(t, runs, 10)
	require.Equal(t, time.Date(2024, time.January, 1, 9, 0, 0, 0, time.UTC), runs[0])
	for i, run := range runs {
		require.Equal(t, 9, run.Hour())
		require.Equal(t, 0, run.Minute())
		require.Equal(t, time.Monday, run.Weekday())
		if i > 0 {
			require.Equal(t, 7*24*time.Hour, run.Sub(runs[i-1]))
		}
	}
}

func TestNextRunsExhausted(t *testing.T) {
	t.Parallel()
	from := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	for name, tc := range map[string]struct {
		spec          string
		count         int
		maxIterations int
		expected      int
	}{
		// No 31st in 2024 falls on a Monday.
		"31st-monday": {"0 0 31 * 1", 5, 0, 0},
		"feb-31":      {"0 0 31 2 *", 3, 0, 0},
		"empty-field": {"70 * * * *", 3, 0, 0},
		"leap-day":    {"0 12 29 2 *", 2, 0, 1},
		"small-cap":   {"*/15 * * * *", 5, 10, 0},
		"cap-hit":     {"*/15 * * * *", 5, 20, 1},
		"no-count":    {"* * * * *", 0, 0, 0},
		"neg-count":   {"* * * * *", -3, 0, 0},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			require.Len(t, cron.NextRuns(cron.MustParse(tc.spec), from, tc.count, tc.maxIterations), tc.expected)
		})
	}
}

func TestNextRunsFriday13th(t *testing.T) {
	t.Parallel()
	from := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	require.Equal(t,
		[]time.Time{
			time.Date(2024, time.September, 13, 0, 0, 0, 0, time.UTC),
			time.Date(2024, time.December, 13, 0, 0, 0, 0, time.UTC),
		},
		cron.NextRuns(cron.MustParse("0 0 13 * 5"), from, 3, 0),
	)
}

func TestNextRunsLocation(t *testing.T) {
	t.Parallel()
	kolkata := mustLoadLocation("Asia/Kolkata")
	from := time.Date(2024, time.January, 1, 8, 59, 0, 0, kolkata)
	runs := cron.NextRuns(cron.MustParse("0 9 * * *"), from, 2, 0)
	require.Equal(t,
		[]time.Time{
			time.Date(2024, time.January, 1, 9, 0, 0, 0, kolkata),
			time.Date(2024, time.January, 2, 9, 0, 0, 0, kolkata),
		},
		runs,
	)
	require.Equal(t, kolkata, runs[0].Location())
}

func TestNextRunsOddOffset(t *testing.T) {
	t.Parallel()
	dublin := time.FixedZone("Dublin Mean Time", -1521)
	from := time.Date(1900, time.January, 1, 10, 0, 42, 0, dublin)
	runs := cron.NextRuns(cron.MustParse("* * * * *"), from, 1, 0)
	require.Equal(t, []time.Time{time.Date(1900, time.January, 1, 10, 1, 0, 0, dublin)}, runs)
}

func TestNextRunsDaylightSaving(t *testing.T) {
	t.Parallel()
	ny := mustLoadLocation("America/New_York")
	// 02:30 does not exist on 10 March 2024 in New York.
	from := time.Date(2024, time.March, 9, 23, 0, 0, 0, ny)
	runs := cron.NextRuns(cron.MustParse("30 2 * * *"), from, 1, 0)
	require.Len(t, runs, 1)
	require.True(t, time.Date(2024, time.March, 11, 2, 30, 0, 0, ny).Equal(runs[0]))
}

func TestWalker(t *testing.T) {
	t.Parallel()
	now := time.Date(2024, time.January, 1, 0, 1, 0, 0, time.UTC)
	w := cron.Walker{Now: func() time.Time { return now }, MaxIterations: 0}
	runs := w.Next(cron.MustParse("*/15 * * * *"), 2)
	require.Equal(t,
		[]time.Time{
			time.Date(2024, time.January, 1, 0, 15, 0, 0, time.UTC),
			time.Date(2024, time.January, 1, 0, 30, 0, 0, time.UTC),
		},
		runs,
	)

	w.MaxIterations = 5
	require.Empty(t, w.Next(cron.MustParse("*/15 * * * *"), 2))
}

func TestWalkerRealClock(t *testing.T) {
	t.Parallel()
	runs := cron.Walker{}.Next(cron.MustParse("* * * * *"), 1) //nolint:exhaustruct
	require.Len(t, runs, 1)
	require.WithinDuration(t, time.Now(), runs[0], 2*time.Minute)
	require.True(t, runs[0].After(time.Now().Add(-time.Second)))
	require.Zero(t, runs[0].Second())
}
