package cron

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
	"strconv"
	"strings"
)

// ErrFieldSyntax is wrapped by every error caused by a malformed field.
var ErrFieldSyntax = errors.New("invalid cron field")

// Bounds is the legal range of one cron field, both ends inclusive.
type Bounds struct {
	Min int
	Max int
}

// Field identifies one of the five positions of a cron expression.
type Field int

const (
	Minute Field = iota
	Hour
	DayOfMonth
	Month
	DayOfWeek
)

// Fields lists all fields in the order they appear in an expression.
//
//nolint:gochecknoglobals
var Fields = [...]Field{Minute, Hour, DayOfMonth, Month, DayOfWeek}

// Bounds gives the legal range of the field. Day of week counts Sunday as 0.
func (f Field) Bounds() Bounds {
	switch f {
	case Minute:
		return Bounds{0, 59}
	case Hour:
		return Bounds{0, 23}
	case DayOfMonth:
		return Bounds{1, 31}
	case Month:
		return Bounds{1, 12}
	case DayOfWeek:
		return Bounds{0, 6}
	default:
		return Bounds{0, -1}
	}
}

// Describe gives a short English name of the field.
func (f Field) Describe() string {
	switch f {
	case Minute:
		return "minute"
	case Hour:
		return "hour"
	case DayOfMonth:
		return "day-of-month"
	case Month:
		return "month"
	case DayOfWeek:
		return "day-of-week"
	default:
		return fmt.Sprintf("<unrecognized field %d>", int(f))
	}
}

// Set is a set of field values. Every bound is below 64, so one bit per value suffices.
type Set uint64

// Has checks whether v is in the set.
func (s Set) Has(v int) bool {
	return v >= 0 && v < 64 && s&(1<<uint(v)) != 0
}

// Len gives the number of values in the set.
func (s Set) Len() int {
	return bits.OnesCount64(uint64(s))
}

// Values lists the values in ascending order.
func (s Set) Values() []int {
	vals := make([]int, 0, s.Len())
	for rest := uint64(s); rest != 0; rest &= rest - 1 {
		vals = append(vals, bits.TrailingZeros64(rest))
	}
	return vals
}

// Full is the set containing every value in b.
func Full(b Bounds) Set {
	var s Set
	for v := b.Min; v <= b.Max; v++ {
		s |= 1 << uint(v)
	}
	return s
}

// parseValue reads a decimal integer. Integers too large for int are clamped
// so that the bounds check drops them like any other out-of-range value.
func parseValue(field, s string) (int, error) {
	v, err := strconv.Atoi(s)
	switch {
	case errors.Is(err, strconv.ErrRange):
		if strings.HasPrefix(s, "-") {
			return math.MinInt, nil
		}
		return math.MaxInt, nil
	case err != nil:
		return 0, fmt.Errorf("%q: %w", field, ErrFieldSyntax)
	default:
		return v, nil
	}
}

// expandPart expands one comma-separated part: "*", "n", or "lo-hi", with an optional "/step".
func expandPart(field, part string, b Bounds) (Set, error) {
	step := 1
	if i := strings.LastIndexByte(part, '/'); i >= 0 {
		var err error
		if step, err = parseValue(field, part[i+1:]); err != nil {
			return 0, err
		}
		if step <= 0 {
			return 0, fmt.Errorf("%q has a non-positive step: %w", field, ErrFieldSyntax)
		}
		part = part[:i]
	}

	var start, end int
	switch lo, hi, isRange := strings.Cut(part, "-"); {
	case part == "*":
		start, end = b.Min, b.Max
	case isRange:
		var err error
		if start, err = parseValue(field, lo); err != nil {
			return 0, err
		}
		if end, err = parseValue(field, hi); err != nil {
			return 0, err
		}
	default:
		var err error
		if start, err = parseValue(field, part); err != nil {
			return 0, err
		}
		end = start
	}

	// Values outside the bounds are dropped rather than rejected.
	// The start is left alone so that the step stays aligned to it.
	end = min(end, b.Max)

	var s Set
	for v := start; v <= end; v += step {
		if v >= b.Min {
			s |= 1 << uint(v)
		}
		if step > end-v {
			break // v+step would pass end, or overflow
		}
	}
	return s, nil
}

// isStar checks whether some part of field is "*" or "*/1". The standard cron
// daemon treats such a day field as unrestricted regardless of the other parts.
func isStar(field string) bool {
	for _, part := range strings.Split(field, ",") {
		base, step, hasStep := strings.Cut(part, "/")
		if base != "*" {
			continue
		}
		if !hasStep {
			return true
		}
		if n, err := strconv.Atoi(step); err == nil && n == 1 {
			return true
		}
	}
	return false
}

// ExpandField turns one cron field such as "*/5", "1-5", or "1,3,5" into
// the set of values it denotes within b. Out-of-range values are silently
// dropped; a non-numeric component fails the whole field with [ErrFieldSyntax].
func ExpandField(field string, b Bounds) (Set, error) {
	var s Set
	for _, part := range strings.Split(field, ",") {
		p, err := expandPart(field, part, b)
		if err != nil {
			return 0, err
		}
		s |= p
	}
	return s, nil
}
