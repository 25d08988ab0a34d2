package morse

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gigurra/morse/cmd/common"
	"github.com/gigurra/morse/cmd/morse/codec"
	"github.com/gigurra/morse/cmd/morse/tone"
	"github.com/spf13/cobra"
)

// playGenerator is replaced in tests.
var playGenerator = tone.Play

type PlayParams struct {
	File      string  `pos:"true" optional:"true" help:"File to play. If none provided, reads from stdin."`
	Fast      int     `short:"f" help:"Speed level. Level 0 has 500ms units and each level halves them." default:"0"`
	Frequency float64 `short:"q" help:"Sine cycles per unit." default:"700"`
	Out       string  `short:"o" optional:"true" help:"Write the tone to this WAV file instead of playing it."`
	Echo      bool    `short:"e" help:"Print the Morse code of each line as it is played."`
}

func PlayCmd() *cobra.Command {
	return boa.CmdT[PlayParams]{
		Use:   "play",
		Short: "Play text as Morse code tones",
		Long: `Encode each line of FILE (or standard input) and play it as a sine tone.

A dot lasts one unit and a dash three. With --out the tones of all lines are written
to a single WAV file, separated by a word gap, instead of being played.
--fast takes a speed level rather than being repeated.`,
		ParamEnrich: common.DefaultParamEnricher(),
		RunFunc: func(params *PlayParams, cmd *cobra.Command, args []string) {
			common.SetupLoggingFromFlags(cmd)
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			exitCode := RunPlay(ctx, params, os.Stdin, os.Stdout, os.Stderr)
			stop()
			os.Exit(exitCode)
		},
	}.ToCobra()
}

func RunPlay(ctx context.Context, params *PlayParams, stdin io.Reader, stdout, stderr io.Writer) int {
	if params.Frequency <= 0 {
		fmt.Fprintf(stderr, "play: frequency must be positive, got %v\n", params.Frequency)
		return 1
	}

	r, closeInput, err := common.OpenInput(params.File, stdin)
	if err != nil {
		fmt.Fprintf(stderr, "play: %v\n", err)
		return 1
	}
	defer closeInput()

	spu := tone.SamplesPerUnit(tone.FrameRate, params.Fast)
	slog.Debug("play settings", "samples_per_unit", spu, "frequency", params.Frequency, "audio", tone.AudioAvailable)

	if params.Out != "" {
		return renderWAV(params, spu, r, stdout, stderr)
	}

	err = common.ForEachLine(r, func(line string) error {
		g := tone.New(params.Frequency, spu)
		if !encodeLine(g, line, params.Echo, stdout) {
			return nil
		}
		start := time.Now()
		if err := playGenerator(ctx, g); err != nil {
			return err
		}
		slog.Debug("played line", "units", g.Units(), "samples", g.Position(), "took", time.Since(start))
		return nil
	})
	if errors.Is(err, context.Canceled) {
		fmt.Fprintln(stderr, "play: interrupted")
		return 1
	}
	if err != nil {
		fmt.Fprintf(stderr, "play: %v\n", err)
		return 1
	}
	return 0
}

// renderWAV encodes all lines onto one timeline and writes it to params.Out.
func renderWAV(params *PlayParams, spu int, r io.Reader, stdout, stderr io.Writer) int {
	g := tone.New(params.Frequency, spu)
	err := common.ForEachLine(r, func(line string) error {
		before, gap := g.Units(), 0
		if before > 0 {
			for range wordGap {
				g.Space()
			}
			gap = wordGap
		}
		// blank lines add nothing, not even a gap
		if !encodeLine(g, line, params.Echo, stdout) || g.Units() == before+gap {
			for range gap {
				g.Pop()
			}
		}
		return nil
	})
	if err != nil {
		fmt.Fprintf(stderr, "play: %v\n", err)
		return 1
	}

	f, err := os.Create(params.Out)
	if err != nil {
		fmt.Fprintf(stderr, "play: %v\n", err)
		return 1
	}
	defer f.Close()

	if err := tone.WriteWAV(f, g); err != nil {
		fmt.Fprintf(stderr, "play: %v\n", err)
		return 1
	}
	if err := f.Close(); err != nil {
		fmt.Fprintf(stderr, "play: %v\n", err)
		return 1
	}
	slog.Debug("wrote wav", "file", params.Out, "samples", g.Len(), "duration", g.Duration())
	return 0
}

// wordGap is the number of silent units between words, and between lines in a WAV.
const wordGap = 7

// encodeLine encodes line into g. Failures are reported on stdout and leave g untouched.
func encodeLine(g *tone.Generator, line string, echo bool, stdout io.Writer) bool {
	if err := codec.Encode(g, line); err != nil {
		fmt.Fprintln(stdout, common.ErrorText(stdout, describeError(err)))
		return false
	}
	if echo {
		// cannot fail, the line was just encoded
		text, _ := codec.EncodeString(line, codec.ASCII)
		fmt.Fprintln(stdout, text)
	}
	return true
}
