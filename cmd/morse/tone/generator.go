// Package tone renders Morse elements as a sine tone.
package tone

import (
	"iter"
	"math"
	"time"

	"github.com/gopxl/beep/v2"
)

const (
	// FrameRate is the output sample rate in Hz.
	FrameRate = 48000

	DefaultFrequency = 700
)

// SampleRate is FrameRate as a beep.SampleRate.
var SampleRate = beep.SampleRate(FrameRate)

// SamplesPerUnit returns the number of samples in one elementary unit at the given speed
// level. Each level halves the unit duration.
func SamplesPerUnit(frameRate, speed int) int {
	speed = max(speed, 0)
	return max(frameRate>>(1+speed), 1)
}

// Generator collects Morse elements on a timeline and produces them as mono samples of a
// sine tone. The frequency counts sine cycles per unit, so the pitch follows the speed.
// It implements codec.Sink and beep.Streamer. Samples can be read only once.
type Generator struct {
	timeline       Timeline
	frequency      float64
	samplesPerUnit int

	// read cursor
	unit   int
	sample int
}

func New(frequency float64, samplesPerUnit int) *Generator {
	return &Generator{
		frequency:      frequency,
		samplesPerUnit: max(samplesPerUnit, 1),
	}
}

func (g *Generator) Dash() {
	g.timeline.Push(true)
	g.timeline.Push(true)
	g.timeline.Push(true)
}

func (g *Generator) Dot()   { g.timeline.Push(true) }
func (g *Generator) Space() { g.timeline.Push(false) }
func (g *Generator) Pop()   { g.timeline.Pop() }

func (g *Generator) Frequency() float64 { return g.frequency }
func (g *Generator) SamplesPerUnit() int { return g.samplesPerUnit }

// Pitch is the audible tone frequency in Hz at FrameRate.
func (g *Generator) Pitch() float64 {
	return g.frequency * FrameRate / float64(g.samplesPerUnit)
}

// Units returns the number of elementary units on the timeline.
func (g *Generator) Units() int {
	return g.timeline.Len()
}

// Len returns the total number of samples, consumed or not.
func (g *Generator) Len() int {
	return g.timeline.Len() * g.samplesPerUnit
}

// Position returns the number of samples produced so far.
func (g *Generator) Position() int {
	return g.unit*g.samplesPerUnit + g.sample
}

// UnitDuration is the playing time of one elementary unit.
func (g *Generator) UnitDuration() time.Duration {
	return SampleRate.D(g.samplesPerUnit)
}

func (g *Generator) Duration() time.Duration {
	return SampleRate.D(g.Len())
}

// Runs yields maximal runs of equal units as (on, length) pairs.
func (g *Generator) Runs() iter.Seq2[bool, int] {
	return g.timeline.Runs()
}

// Next produces the next sample. ok is false once the timeline is exhausted.
func (g *Generator) Next() (value float64, ok bool) {
	on, ok := g.timeline.At(g.unit)
	if !ok {
		return 0, false
	}
	if on {
		// t is the fractional position within the unit
		t := float64(g.sample) / float64(g.samplesPerUnit)
		value = math.Sin(2 * math.Pi * g.frequency * t)
	}

	g.sample++
	if g.sample == g.samplesPerUnit {
		g.sample = 0
		g.unit++
	}
	return value, true
}

// Samples yields the remaining samples.
func (g *Generator) Samples() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for {
			v, ok := g.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Stream implements beep.Streamer. The mono signal is written to both channels.
func (g *Generator) Stream(samples [][2]float64) (n int, ok bool) {
	for n < len(samples) {
		v, more := g.Next()
		if !more {
			break
		}
		samples[n][0] = v
		samples[n][1] = v
		n++
	}
	return n, n > 0
}

func (g *Generator) Err() error {
	return nil
}

func (g *Generator) Format() beep.Format {
	return beep.Format{
		SampleRate:  SampleRate,
		NumChannels: 1,
		Precision:   2,
	}
}
