// Package signal stops the watch loop when the user interrupts it.
package signal

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/favonia/cron-explainer/internal/pp"
)

// Handle holds the channel receiving the caught signals.
type Handle struct {
	channel chan os.Signal
}

// Signals contains the signals that end the watch loop.
//
//nolint:gochecknoglobals
var Signals = []os.Signal{syscall.SIGINT, syscall.SIGTERM}

// Setup starts catching the signals in [Signals].
func Setup() Handle {
	chanSignal := make(chan os.Signal, len(Signals))
	signal.Notify(chanSignal, Signals...)

	return Handle{channel: chanSignal}
}

// TearDown stops catching signals.
func (h Handle) TearDown() {
	signal.Stop(h.channel)
}

// Sleep waits for d. It returns false if a signal in [Signals] arrives first.
func (h Handle) Sleep(ppfmt pp.PP, d time.Duration) bool {
	chanAlarm := time.After(d)
	select {
	case sig := <-h.channel:
		ppfmt.Noticef(pp.EmojiSignal, "Caught signal: %v", sig)
		return false
	case <-chanAlarm:
		return true
	}
}

// SleepUntil waits until the wall clock reaches target, which may already be in the past.
// It returns false if a signal in [Signals] arrives first.
func (h Handle) SleepUntil(ppfmt pp.PP, target time.Time) bool {
	return h.Sleep(ppfmt, max(time.Until(target), 0))
}
