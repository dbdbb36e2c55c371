// Package main is the entry point of the cron explainer.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/favonia/cron-explainer/internal/config"
	"github.com/favonia/cron-explainer/internal/cron"
	"github.com/favonia/cron-explainer/internal/describer"
	"github.com/favonia/cron-explainer/internal/explainer"
	"github.com/favonia/cron-explainer/internal/pp"
	"github.com/favonia/cron-explainer/internal/report"
	"github.com/favonia/cron-explainer/internal/signal"
)

// Version is the version of the explainer that will be shown in the output.
// This is to be overwritten by the linker argument -X main.Version=version.
var Version string //nolint:gochecknoglobals

func formatName() string {
	if Version == "" {
		return "Cron Explainer"
	}
	return fmt.Sprintf("Cron Explainer (%s)", Version)
}

func main() {
	os.Exit(realMain())
}

func realMain() int {
	return run(os.Args[1:], os.Stdout, os.Stderr, nil)
}

// initConfig reads the environment first so that command-line flags override it.
// A nil configuration with true means that only the usage was requested.
func initConfig(ppfmt pp.PP, args []string, stderr io.Writer) (*config.Config, []string, bool) {
	c := config.Default()
	if !c.ReadEnv(ppfmt) {
		return c, nil, false
	}

	fs := pflag.NewFlagSet("cronexplain", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: cronexplain [flags] MINUTE HOUR DAY-OF-MONTH MONTH DAY-OF-WEEK\n\n")
		fs.PrintDefaults()
	}
	c.BindFlags(fs)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, nil, true
		}
		ppfmt.Errorf(pp.EmojiUserError, "%v", err)
		return c, nil, false
	}

	if !c.Normalize(ppfmt) {
		return c, nil, false
	}

	c.Print(ppfmt)

	return c, fs.Args(), true
}

func listPresets(ppfmt pp.PP, d describer.Describer) {
	ppfmt.Noticef(pp.EmojiPreset, "Presets:")
	inner := ppfmt.Indent()
	for _, p := range explainer.Presets {
		inner.Noticef(pp.EmojiBullet, "%-13s %s (%s)", p.Expression, p.Label, describer.Describe(d, p.Expression))
	}
}

// watch prints a countdown to each run of expr until it is interrupted.
func watch(ppfmt, out pp.PP, ex explainer.Explainer, expr string) int {
	parsed, err := cron.Parse(expr)
	if err != nil {
		ppfmt.Errorf(pp.EmojiImpossible, "%q could not be parsed again: %v", expr, err)
		return 1
	}

	sig := signal.Setup()
	defer sig.TearDown()

	for {
		now := ex.Walker.From()
		runs := cron.NextRuns(parsed, now, 1, ex.Walker.MaxIterations)
		if len(runs) == 0 {
			ppfmt.Errorf(pp.EmojiUserError, "No scheduled runs within the search window")
			ppfmt.Noticef(pp.EmojiBye, "Bye!")
			return 1
		}
		next := runs[0]

		cron.PrintCountdown(out, "Next run", now, next)

		if !sig.SleepUntil(ppfmt, next) {
			ppfmt.Noticef(pp.EmojiBye, "Bye!")
			return 0
		}

		out.Noticef(pp.EmojiNow, "Reached %s: %s", cron.FormatRun(next), describer.Describe(ex.Describer, expr))
	}
}

func run(args []string, stdout, stderr io.Writer, now cron.Clock) int {
	ppfmt, ok := config.SetupPP(stderr)
	if !ok {
		ppfmt.Noticef(pp.EmojiUserError, "Bye!")
		return 1
	}
	if !ppfmt.IsShowing(pp.Info) {
		ppfmt.Noticef(pp.EmojiMute, "Quiet mode enabled")
	}

	// Show the name and the version of the explainer
	ppfmt.Noticef(pp.EmojiStar, formatName())

	c, rest, ok := initConfig(ppfmt, args, stderr)
	switch {
	case !ok:
		ppfmt.Noticef(pp.EmojiBye, "Bye!")
		return 1
	case c == nil:
		return 0
	}

	// The report shares the emoji and verbosity settings of the diagnostics
	out, _ := config.SetupPP(stdout)

	english, err := describer.NewEnglish()
	if err != nil {
		ppfmt.Errorf(pp.EmojiImpossible, "Could not set up the English describer: %v", err)
		return 1
	}
	d := describer.NewCached(english, c.CacheExpiration)
	defer d.Close()

	if c.ListPresets {
		listPresets(out, d)
		return 0
	}

	expr := strings.Join(rest, " ")
	if strings.TrimSpace(expr) == "" {
		ppfmt.Errorf(pp.EmojiUserError, "No cron expression was given; see --presets for examples")
		return 1
	}

	ex := explainer.Explainer{
		Describer: d,
		Walker:    cron.Walker{Now: now, MaxIterations: c.MaxIterations},
		Count:     c.Count,
	}
	result := ex.Explain(ppfmt, expr)
	rep := report.New(result)

	if c.Format == report.FormatText {
		rep.Print(out)
	} else {
		bytes, err := rep.Marshal(c.Format)
		if err != nil {
			ppfmt.Errorf(pp.EmojiImpossible, "Could not encode the report: %v", err)
			return 1
		}
		if _, err := stdout.Write(bytes); err != nil {
			ppfmt.Errorf(pp.EmojiError, "Could not write the report: %v", err)
			return 1
		}
	}

	if !result.Valid {
		return 1
	}

	if c.Watch {
		return watch(ppfmt, out, ex, expr)
	}

	return 0
}
