//go:build (linux && cgo) || windows || darwin

package tone

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
)

// AudioAvailable indicates whether Play uses a real audio device in this build.
const AudioAvailable = true

var (
	speakerOnce sync.Once
	speakerErr  error
)

func initSpeaker() error {
	speakerOnce.Do(func() {
		slog.Debug("initializing speaker", "sample_rate", FrameRate)
		speakerErr = speaker.Init(SampleRate, SampleRate.N(time.Second/10))
	})
	return speakerErr
}

// Play sends the generator to the speaker and blocks until it has been played or ctx is
// cancelled.
func Play(ctx context.Context, g *Generator) error {
	if err := initSpeaker(); err != nil {
		return fmt.Errorf("failed to initialize speaker: %w", err)
	}

	done := make(chan struct{})
	speaker.Play(beep.Seq(g, beep.Callback(func() {
		close(done)
	})))

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		speaker.Clear()
		return ctx.Err()
	}
}
