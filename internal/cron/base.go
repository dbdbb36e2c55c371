// Package cron parses five-field cron expressions and computes their run times.
package cron

import "time"

// Schedule tells the next time a scheduled event should happen after a given time.
type Schedule = interface {
	Next(from time.Time) time.Time
	Describe() string
}

// Next gets the next scheduled time. It returns the zero value for nil.
func Next(s Schedule, from time.Time) time.Time {
	if s == nil {
		return time.Time{}
	}

	return s.Next(from)
}

// DescribeSchedule gives back the original cron string.
func DescribeSchedule(s Schedule) string {
	if s == nil {
		return "(none)"
	}

	return s.Describe()
}
