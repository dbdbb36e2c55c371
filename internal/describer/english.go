package describer

import (
	"fmt"

	crondesc "github.com/lnquy/cron"
)

type english struct {
	describe func(expr string) (string, error)
}

// NewEnglish creates a [Describer] producing English with 24-hour times, counting Sunday as day 0.
func NewEnglish() (Describer, error) {
	d, err := crondesc.NewDescriptor(
		crondesc.Use24HourTimeFormat(true),
		crondesc.DayOfWeekStartsAtOne(false),
		crondesc.SetLocales(crondesc.Locale_en),
	)
	if err != nil {
		return nil, fmt.Errorf("preparing the English describer: %w", err)
	}

	return english{
		describe: func(expr string) (string, error) { return d.ToDescription(expr, crondesc.Locale_en) },
	}, nil
}

// Describe gives the English description of expr.
func (e english) Describe(expr string) (string, error) {
	desc, err := e.describe(expr)
	if err != nil {
		return "", fmt.Errorf("describing %q: %w", expr, err)
	}

	return desc, nil
}
