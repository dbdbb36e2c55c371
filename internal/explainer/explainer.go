// Package explainer describes cron expressions and lists their upcoming runs.
package explainer

import (
	"strings"
	"time"

	"github.com/favonia/cron-explainer/internal/cron"
	"github.com/favonia/cron-explainer/internal/describer"
	"github.com/favonia/cron-explainer/internal/pp"
)

// DefaultCount is how many upcoming runs are listed by default.
const DefaultCount = 10

// Result is everything known about one expression.
type Result struct {
	Expression  string
	Description string
	Valid       bool
	Runs        []time.Time
	Requested   int
}

// IsBlank checks whether there was no expression at all.
func (r Result) IsBlank() bool {
	return strings.TrimSpace(r.Expression) == ""
}

// Exhausted checks whether the search window ended before enough runs were found.
func (r Result) Exhausted() bool {
	return r.Valid && !r.IsBlank() && len(r.Runs) < r.Requested
}

// An Explainer puts together the description and the upcoming runs of expressions.
type Explainer struct {
	Describer describer.Describer
	Walker    cron.Walker
	Count     int
}

func invalid(expr string) Result {
	return Result{
		Expression:  expr,
		Description: describer.InvalidExpression,
		Valid:       false,
		Runs:        nil,
		Requested:   0,
	}
}

// Explain describes expr and computes its next runs.
// A blank expression is valid and has neither a description nor runs.
func (e Explainer) Explain(ppfmt pp.PP, expr string) Result {
	if strings.TrimSpace(expr) == "" {
		return Result{Expression: expr, Description: "", Valid: true, Runs: nil, Requested: 0}
	}

	desc := describer.Describe(e.Describer, expr)
	if desc == describer.InvalidExpression {
		ppfmt.Noticef(pp.EmojiUserError, "Failed to describe %q", expr)
		hintFiveFields(ppfmt, expr)
		return invalid(expr)
	}

	parsed, err := cron.Parse(expr)
	if err != nil {
		ppfmt.Noticef(pp.EmojiUserError, "%q is not a valid cron expression: %v", expr, err)
		hintFiveFields(ppfmt, expr)
		return invalid(expr)
	}

	if parsed.IsEmpty() {
		ppfmt.Hintf(pp.HintOutOfRangeValues,
			"Values outside the range of a field are ignored, and a field left with no values never matches")
	}

	from := e.Walker.From()
	runs := cron.NextRuns(parsed, from, e.Count, e.Walker.MaxIterations)
	comparePOSIX(ppfmt, parsed, from, runs)

	return Result{
		Expression:  expr,
		Description: desc,
		Valid:       true,
		Runs:        runs,
		Requested:   max(e.Count, 0),
	}
}

func hintFiveFields(ppfmt pp.PP, expr string) {
	if strings.Contains(expr, "@") || len(strings.Fields(expr)) > len(cron.Fields) {
		ppfmt.Hintf(pp.HintFiveFieldsOnly,
			"Only the five fields minute, hour, day-of-month, month, and day-of-week are supported; "+
				"seconds, years, and macros such as @daily are not")
	}
}

// comparePOSIX hints when the standard cron daemon would start at a different time.
// It differs from [cron.Expr.Matches] only when both day fields are restricted.
func comparePOSIX(ppfmt pp.PP, parsed *cron.Expr, from time.Time, runs []time.Time) {
	if !parsed.DayFieldsRestricted() {
		return
	}

	std, err := cron.NewStandard(parsed.String())
	if err != nil {
		return
	}

	next := cron.Next(std, from)
	if next.IsZero() || len(runs) > 0 && next.Equal(runs[0]) {
		return
	}

	ppfmt.Hintf(pp.HintPOSIXDaySemantics,
		"Both the day-of-month and the day-of-week of %q must match here; "+
			"the standard cron daemon matches either of them and would first run at %s",
		parsed.String(), cron.FormatRun(next))
}
