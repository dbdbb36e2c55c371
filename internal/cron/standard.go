package cron

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// standardSchedule holds an expression parsed with POSIX semantics and its original input.
// When both day fields are restricted, it matches a day if either field matches.
type standardSchedule struct {
	spec     string
	schedule cron.Schedule
}

// NewStandard parses spec with the POSIX semantics of the standard cron daemon.
// Unlike [Parse], it rejects out-of-range values.
func NewStandard(spec string) (Schedule, error) {
	sche, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, fmt.Errorf("parsing %q: %w", spec, err)
	}

	return &standardSchedule{
		spec:     spec,
		schedule: sche,
	}, nil
}

// MustNewStandard creates a new Schedule, and panics if it fails to parse the input.
func MustNewStandard(spec string) Schedule {
	sche, err := NewStandard(spec)
	if err != nil {
		panic(fmt.Errorf(`cron.MustNewStandard failed: %w`, err))
	}

	return sche
}

// Next tells the next scheduled time after from, or the zero time if there is none within five years.
func (s *standardSchedule) Next(from time.Time) time.Time {
	return s.schedule.Next(from)
}

// Describe gives back the original cron string.
func (s *standardSchedule) Describe() string {
	return s.spec
}
