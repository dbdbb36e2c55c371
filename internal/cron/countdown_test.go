package cron_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/favonia/cron-explainer/internal/cron"
	"github.com/favonia/cron-explainer/internal/pp"
)

func TestPrintCountdown(t *testing.T) {
	t.Parallel()

	activity := "Running \"*/5 * * * *\""
	now := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.Local)

	for _, tc := range [...]struct {
		interval []time.Duration
		output   string
	}{
		{
			[]time.Duration{-20 * time.Second},
			string(pp.EmojiNow) + ` Running "*/5 * * * *" now (running behind by 20s) . . .` + "\n",
		},
		{
			[]time.Duration{-time.Second, -time.Nanosecond, 0, time.Nanosecond},
			string(pp.EmojiNow) + ` Running "*/5 * * * *" now . . .` + "\n",
		},
		{
			[]time.Duration{2 * time.Second},
			string(pp.EmojiAlarm) + ` Running "*/5 * * * *" in less than 5s . . .` + "\n",
		},
		{
			[]time.Duration{20 * time.Second},
			string(pp.EmojiAlarm) + ` Running "*/5 * * * *" in about 20s . . .` + "\n",
		},
		{
			[]time.Duration{20 * time.Minute},
			string(pp.EmojiAlarm) + ` Running "*/5 * * * *" in about 20m0s (12:20) . . .` + "\n",
		},
		{
			[]time.Duration{36 * time.Hour},
			string(pp.EmojiAlarm) + ` Running "*/5 * * * *" in about 36h0m0s (03 Jun 00:00) . . .` + "\n",
		},
	} {
		for _, interval := range tc.interval {
			t.Run(interval.String(), func(t *testing.T) {
				t.Parallel()
				var buf strings.Builder
				cron.PrintCountdown(pp.New(&buf), activity, now, now.Add(interval))
				require.Equal(t, tc.output, buf.String())
			})
		}
	}
}

func TestDescribeIntuitively(t *testing.T) {
	t.Parallel()
	now := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.Local)
	require.Equal(t, "12:30", cron.DescribeIntuitively(now, now.Add(30*time.Minute)))
	require.Equal(t, "02 Jun 12:00", cron.DescribeIntuitively(now, now.AddDate(0, 0, 1)))
	require.Equal(t, "01 Jun 12:00 2025", cron.DescribeIntuitively(now, now.AddDate(1, 0, 0)))
}
