//go:build !((linux && cgo) || windows || darwin)

package tone

import (
	"context"
	"log/slog"
	"time"

	"github.com/gen2brain/beeep"
)

// AudioAvailable indicates whether Play uses a real audio device in this build.
// Without cgo the tone falls back to the PC speaker or the terminal bell.
const AudioAvailable = false

var beepFunc = beeep.Beep

// Play walks the generator's timeline, beeping for each tone and sleeping through each
// gap. It blocks until done or ctx is cancelled.
func Play(ctx context.Context, g *Generator) error {
	unit := g.UnitDuration()
	for on, n := range g.Runs() {
		d := time.Duration(n) * unit
		start := time.Now()
		if on {
			if err := beepFunc(g.Pitch(), int(d.Milliseconds())); err != nil {
				slog.Debug("beep failed", "error", err)
			}
		}
		if err := sleep(ctx, d-time.Since(start)); err != nil {
			return err
		}
	}
	return nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
