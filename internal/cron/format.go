package cron

import "time"

// FormatRun formats a run time in the style "Mon, 1 Jan 2024, 09:00".
func FormatRun(t time.Time) string {
	return t.Format("Mon, 2 Jan 2006, 15:04")
}
