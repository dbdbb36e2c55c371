package cron

import (
	"fmt"
	"strings"
	"time"
)

// DescribeLocation gives the name of loc and its current offset from UTC.
func DescribeLocation(loc *time.Location) string {
	return fmt.Sprintf("%s (%s now)", loc.String(), describeOffset(time.Now().In(loc)))
}

func describeOffset(t time.Time) string {
	_, offset := t.Zone()

	sign := "+"
	if offset < 0 {
		sign = "−" // U+2212, as in ISO 8601
		offset = -offset
	}

	hours, rest := offset/3600, offset%3600
	minutes, seconds := rest/60, rest%60

	var b strings.Builder
	fmt.Fprintf(&b, "UTC%s%02d", sign, hours)
	switch {
	case seconds != 0:
		fmt.Fprintf(&b, ":%02d:%02d", minutes, seconds)
	case minutes != 0:
		fmt.Fprintf(&b, ":%02d", minutes)
	}
	return b.String()
}
