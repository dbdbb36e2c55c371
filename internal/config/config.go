// Package config reads and parses configurations.
package config

import (
	"time"

	"github.com/spf13/pflag"

	"github.com/favonia/cron-explainer/internal/cron"
	"github.com/favonia/cron-explainer/internal/explainer"
	"github.com/favonia/cron-explainer/internal/pp"
	"github.com/favonia/cron-explainer/internal/report"
)

// Config holds the configuration of the explainer.
type Config struct {
	Count           int
	MaxIterations   int
	Format          report.Format
	Watch           bool
	CacheExpiration time.Duration
	ListPresets     bool
}

// Default gives the default configuration.
func Default() *Config {
	return &Config{
		Count:           explainer.DefaultCount,
		MaxIterations:   cron.DefaultMaxIterations,
		Format:          report.FormatText,
		Watch:           false,
		CacheExpiration: time.Hour,
		ListPresets:     false,
	}
}

// ReadEnv reads an environment variable and updates the configuration.
func (c *Config) ReadEnv(ppfmt pp.PP) bool {
	if ppfmt.IsShowing(pp.Info) {
		ppfmt.Infof(pp.EmojiEnvVars, "Reading settings . . .")
		ppfmt = ppfmt.Indent()
	}

	if !ReadNonnegInt(ppfmt, "COUNT", &c.Count) ||
		!ReadNonnegInt(ppfmt, "MAX_ITERATIONS", &c.MaxIterations) ||
		!ReadFormat(ppfmt, "OUTPUT_FORMAT", &c.Format) ||
		!ReadBool(ppfmt, "WATCH", &c.Watch) ||
		!ReadNonnegDuration(ppfmt, "CACHE_EXPIRATION", &c.CacheExpiration) {
		return false
	}

	return true
}

// Normalize checks the values read from the environment and the command line.
func (c *Config) Normalize(ppfmt pp.PP) bool {
	switch {
	case c.Count < 1:
		ppfmt.Errorf(pp.EmojiUserError, "The number of runs to list (%d) should be positive", c.Count)
		return false

	case c.MaxIterations < 1:
		ppfmt.Errorf(pp.EmojiUserError, "The search window (%d minutes) should be positive", c.MaxIterations)
		return false

	case c.Watch && c.Format != report.FormatText:
		ppfmt.Errorf(pp.EmojiUserError, "Watching only works with the output format %s", report.FormatText)
		return false
	}

	if c.MaxIterations < cron.DefaultMaxIterations {
		ppfmt.Warningf(pp.EmojiUserWarning,
			"The search window (%d minutes) is shorter than a year; rare schedules may show no runs",
			c.MaxIterations)
	}

	return true
}

// BindFlags registers command-line flags that override the current values.
// Call it after [Config.ReadEnv] so that the help message shows the values from the environment.
func (c *Config) BindFlags(fs *pflag.FlagSet) {
	fs.IntVarP(&c.Count, "count", "n", c.Count, "number of upcoming runs to list (COUNT)")
	fs.IntVar(&c.MaxIterations, "max-iterations", c.MaxIterations,
		"minutes to search ahead before giving up (MAX_ITERATIONS)")
	fs.VarP((*formatValue)(&c.Format), "output", "o",
		"output format: "+report.DescribeFormats()+" (OUTPUT_FORMAT)")
	fs.BoolVarP(&c.Watch, "watch", "w", c.Watch, "print a countdown to each run until interrupted (WATCH)")
	fs.DurationVar(&c.CacheExpiration, "cache-expiration", c.CacheExpiration,
		"how long descriptions are cached while watching (CACHE_EXPIRATION)")
	fs.BoolVar(&c.ListPresets, "presets", c.ListPresets, "list the built-in presets and exit")
}

// formatValue implements [pflag.Value] for [report.Format].
type formatValue report.Format

func (f *formatValue) String() string { return string(*f) }

func (f *formatValue) Set(s string) error {
	parsed, err := report.ParseFormat(s)
	if err != nil {
		return err //nolint:wrapcheck
	}
	*f = formatValue(parsed)
	return nil
}

func (f *formatValue) Type() string { return "format" }
