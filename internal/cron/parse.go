package cron

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrFieldCount is wrapped by the error for an expression without exactly five fields.
var ErrFieldCount = errors.New("cron expression must have exactly 5 fields")

// Expr is a parsed five-field cron expression.
type Expr struct {
	spec        string
	domStar     bool
	dowStar     bool
	Minutes     Set
	Hours       Set
	DaysOfMonth Set
	Months      Set
	DaysOfWeek  Set
}

// Parse splits spec on whitespace and expands its five fields.
// It performs no time-dependent computation.
func Parse(spec string) (*Expr, error) {
	parts := strings.Fields(spec)
	if len(parts) != len(Fields) {
		return nil, fmt.Errorf("parsing %q: got %d fields: %w", spec, len(parts), ErrFieldCount)
	}

	e := &Expr{spec: spec} //nolint:exhaustruct
	for i, field := range Fields {
		s, err := ExpandField(parts[i], field.Bounds())
		if err != nil {
			return nil, fmt.Errorf("parsing %s field: %w", field.Describe(), err)
		}
		*e.set(field) = s
	}
	e.domStar = isStar(parts[DayOfMonth])
	e.dowStar = isStar(parts[DayOfWeek])

	return e, nil
}

// MustParse is like Parse, except it panics if the expression is malformed.
func MustParse(spec string) *Expr {
	e, err := Parse(spec)
	if err != nil {
		panic(fmt.Errorf("cron.MustParse failed: %w", err))
	}

	return e
}

func (e *Expr) set(f Field) *Set {
	switch f {
	case Minute:
		return &e.Minutes
	case Hour:
		return &e.Hours
	case DayOfMonth:
		return &e.DaysOfMonth
	case Month:
		return &e.Months
	default:
		return &e.DaysOfWeek
	}
}

// Field gives the expanded set of the field f.
func (e *Expr) Field(f Field) Set {
	return *e.set(f)
}

// String gives back the original cron string.
func (e *Expr) String() string {
	return e.spec
}

// Matches checks t, read in its own location, against all five fields.
// Unlike POSIX cron, the two day fields are ANDed even when both are restricted.
func (e *Expr) Matches(t time.Time) bool {
	return e.Minutes.Has(t.Minute()) &&
		e.Hours.Has(t.Hour()) &&
		e.DaysOfMonth.Has(t.Day()) &&
		e.Months.Has(int(t.Month())) &&
		e.DaysOfWeek.Has(int(t.Weekday()))
}

// DayFieldsRestricted checks whether neither day field is written as "*" or "*/1".
// This is when POSIX cron would match either day field instead of both, even if
// a field such as "1-31" happens to cover its whole range.
func (e *Expr) DayFieldsRestricted() bool {
	return !e.domStar && !e.dowStar
}

// IsEmpty checks whether some field matches nothing, in which case no instant ever matches.
func (e *Expr) IsEmpty() bool {
	for _, f := range Fields {
		if e.Field(f).Len() == 0 {
			return true
		}
	}
	return false
}
