package config

import (
	"fmt"
	"time"

	"github.com/favonia/cron-explainer/internal/cron"
	"github.com/favonia/cron-explainer/internal/pp"
)

const itemTitleWidth = 20

// Print prints the Config on the screen.
func (c *Config) Print(ppfmt pp.PP) {
	if !ppfmt.IsShowing(pp.Info) {
		return
	}

	ppfmt.Infof(pp.EmojiEnvVars, "Current settings:")
	ppfmt = ppfmt.Indent()
	inner := ppfmt.Indent()

	section := func(title string) { ppfmt.Infof(pp.EmojiConfig, title) }
	item := func(title string, format string, values ...any) {
		inner.Infof(pp.EmojiBullet, "%-*s %s", itemTitleWidth, title, fmt.Sprintf(format, values...))
	}

	section("Searching:")
	item("Timezone:", "%s", cron.DescribeLocation(time.Local))
	item("Runs to list:", "%d", c.Count)
	item("Search window:", "%d minutes", c.MaxIterations)

	section("Output:")
	item("Format:", "%s", c.Format)
	item("Watch?", "%t", c.Watch)
	if c.Watch {
		item("Cache expiration:", "%v", c.CacheExpiration)
	}
}
