// Package report presents the explanation of a cron expression.
package report

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/favonia/cron-explainer/internal/cron"
	"github.com/favonia/cron-explainer/internal/explainer"
	"github.com/favonia/cron-explainer/internal/pp"
)

// Fields holds the values each field of an expression matches.
type Fields struct {
	Minutes     []int `json:"minutes"     yaml:"minutes,flow"`
	Hours       []int `json:"hours"       yaml:"hours,flow"`
	DaysOfMonth []int `json:"daysOfMonth" yaml:"daysOfMonth,flow"`
	Months      []int `json:"months"      yaml:"months,flow"`
	DaysOfWeek  []int `json:"daysOfWeek"  yaml:"daysOfWeek,flow"`
}

// Report is the presentable form of an [explainer.Result].
type Report struct {
	Expression  string      `json:"expression"            yaml:"expression"`
	Description string      `json:"description,omitempty" yaml:"description,omitempty"`
	Valid       bool        `json:"valid"                 yaml:"valid"`
	Fields      *Fields     `json:"fields,omitempty"      yaml:"fields,omitempty"`
	NextRuns    []time.Time `json:"nextRuns"              yaml:"nextRuns"`
	Requested   int         `json:"requested"             yaml:"requested"`
	Exhausted   bool        `json:"exhausted"             yaml:"exhausted"`
}

// New builds a report from r.
func New(r explainer.Result) Report {
	var fields *Fields
	if r.Valid && !r.IsBlank() {
		if e, err := cron.Parse(r.Expression); err == nil {
			fields = &Fields{
				Minutes:     e.Minutes.Values(),
				Hours:       e.Hours.Values(),
				DaysOfMonth: e.DaysOfMonth.Values(),
				Months:      e.Months.Values(),
				DaysOfWeek:  e.DaysOfWeek.Values(),
			}
		}
	}

	runs := r.Runs
	if runs == nil {
		runs = []time.Time{}
	}

	return Report{
		Expression:  r.Expression,
		Description: r.Description,
		Valid:       r.Valid,
		Fields:      fields,
		NextRuns:    runs,
		Requested:   r.Requested,
		Exhausted:   r.Exhausted(),
	}
}

// Marshal encodes the report in a machine-readable format.
func (r Report) Marshal(format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		bytes, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encoding the report as JSON: %w", err)
		}
		return append(bytes, '\n'), nil
	case FormatYAML:
		bytes, err := yaml.Marshal(r)
		if err != nil {
			return nil, fmt.Errorf("encoding the report as YAML: %w", err)
		}
		return bytes, nil
	default:
		return nil, fmt.Errorf("%q cannot be marshaled: %w", format, ErrUnknownFormat)
	}
}

// Print shows the report through the pretty printer.
func (r Report) Print(ppfmt pp.PP) {
	if !r.Valid {
		ppfmt.Errorf(pp.EmojiUserError, "%s", r.Description)
		return
	}
	if strings.TrimSpace(r.Expression) == "" {
		return
	}

	ppfmt.Noticef(pp.EmojiExpression, "Expression: %s", r.Expression)
	if r.Description != "" {
		ppfmt.Noticef(pp.EmojiDescription, "%s", r.Description)
	}

	if r.Fields != nil && ppfmt.IsShowing(pp.Info) {
		ppfmt.Infof(pp.EmojiConfig, "Matching values:")
		inner := ppfmt.Indent()
		item := func(title string, vals []int) {
			inner.Infof(pp.EmojiBullet, "%-14s %s", title, pp.JoinMap(strconv.Itoa, vals))
		}
		item("Minutes:", r.Fields.Minutes)
		item("Hours:", r.Fields.Hours)
		item("Days of month:", r.Fields.DaysOfMonth)
		item("Months:", r.Fields.Months)
		item("Days of week:", r.Fields.DaysOfWeek)
	}

	switch {
	case len(r.NextRuns) == 0:
		ppfmt.Noticef(pp.EmojiNothing, "No upcoming runs found within the search window.")
		return
	case len(r.NextRuns) == 1:
		ppfmt.Noticef(pp.EmojiCalendar, "Next run:")
	default:
		ppfmt.Noticef(pp.EmojiCalendar, "Next %d runs:", len(r.NextRuns))
	}

	inner := ppfmt.Indent()
	for i, run := range r.NextRuns {
		inner.Noticef(pp.EmojiBullet, "%2d. %s", i+1, cron.FormatRun(run))
	}

	if r.Exhausted {
		ppfmt.Infof(pp.EmojiNothing, "Only %d of %d runs found within the search window", len(r.NextRuns), r.Requested)
	}
}
