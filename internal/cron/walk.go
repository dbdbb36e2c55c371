package cron

import "time"

// DefaultMaxIterations is about one year of minutes.
const DefaultMaxIterations = 525_960

// Clock tells the current time.
type Clock = func() time.Time

// nextMinute drops the seconds (as read on the wall clock of t) and moves one minute forward.
func nextMinute(t time.Time) time.Time {
	return t.Add(time.Minute - time.Duration(t.Second())*time.Second - time.Duration(t.Nanosecond()))
}

// NextRuns walks forward minute by minute from the minute after from, collecting
// at most count instants that match e. It gives up after maxIterations candidate
// minutes (non-positive means [DefaultMaxIterations]), so the result may be shorter
// than count, or empty. The instants are in the location of from.
func NextRuns(e *Expr, from time.Time, count, maxIterations int) []time.Time {
	if count <= 0 || e == nil {
		return nil
	}
	if maxIterations <= 0 {
		maxIterations = DefaultMaxIterations
	}

	runs := make([]time.Time, 0, min(count, 64))
	cursor := nextMinute(from.Round(0)) // strip the monotonic reading
	for i := 0; i < maxIterations && len(runs) < count; i++ {
		if e.Matches(cursor) {
			runs = append(runs, cursor)
		}
		cursor = cursor.Add(time.Minute)
	}

	return runs
}

// A Walker computes run times starting from its clock.
type Walker struct {
	Now           Clock
	MaxIterations int
}

// From gives the instant the walk starts after. A nil clock means [time.Now].
func (w Walker) From() time.Time {
	if w.Now == nil {
		return time.Now()
	}

	return w.Now()
}

// Next gives at most count run times of e after the current time.
func (w Walker) Next(e *Expr, count int) []time.Time {
	return NextRuns(e, w.From(), count, w.MaxIterations)
}
