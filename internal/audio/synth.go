package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/catch-treasure/internal/games/catch"
)

// shape is the periodic waveform a tone is built from.
type shape int

const (
	shapeSine shape = iota
	shapeSquare
	shapeSaw
	shapeNoise
)

// at evaluates the shape at phase in [0, 1). Noise ignores the phase and
// hashes the sample index, so a cue renders identically every time.
func (sh shape) at(phase float64, i int) float64 {
	switch sh {
	case shapeSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case shapeSaw:
		return 2*phase - 1
	case shapeNoise:
		x := uint32(i)*0x9e3779b1 + 0x7f4a7c15
		x ^= x >> 15
		x *= 0x85ebca6b
		x ^= x >> 13
		return float64(x)/math.MaxUint32*2 - 1
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// newVolume scales a stream by a linear gain. Zero or less is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// tone is one shaped note of a synthesized cue
type tone struct {
	freq    float64
	shape   shape
	length  time.Duration
	attack  time.Duration
	release time.Duration
	gain    float64
}

// level is the tone's loudness at sample i: a linear ramp up over the
// attack, full gain, then a linear ramp down over the release.
func (t tone) level(i, total, attack, release int) float64 {
	g := t.gain
	if attack > 0 && i < attack {
		g *= float64(i) / float64(attack)
	}
	if release > 0 && i >= total-release {
		g = math.Min(g, t.gain*float64(total-i)/float64(release))
	}
	return g
}

// streamer renders the tone as a finite mono-in-stereo stream.
func (t tone) streamer(rate beep.SampleRate) beep.Streamer {
	total := rate.N(t.length)
	attack := rate.N(t.attack)
	release := rate.N(t.release)
	step := t.freq / float64(rate)

	i := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if i >= total {
			return 0, false
		}
		n := min(len(samples), total-i)
		for j := 0; j < n; j++ {
			_, phase := math.Modf(float64(i) * step)
			v := t.shape.at(phase, i) * t.level(i, total, attack, release)
			samples[j] = [2]float64{v, v}
			i++
		}
		return n, true
	})
}

// sequence plays tones one after another
func sequence(rate beep.SampleRate, tones ...tone) beep.Streamer {
	streamers := make([]beep.Streamer, len(tones))
	for i, t := range tones {
		streamers[i] = t.streamer(rate)
	}
	return beep.Seq(streamers...)
}

// layer plays tones at the same time
func layer(rate beep.SampleRate, tones ...tone) beep.Streamer {
	streamers := make([]beep.Streamer, len(tones))
	for i, t := range tones {
		streamers[i] = t.streamer(rate)
	}
	return beep.Mix(streamers...)
}

const ms = time.Millisecond

// synthCue returns the procedural stand-in for a cue's sound file.
func synthCue(cue catch.Cue, rate beep.SampleRate) beep.Streamer {
	switch cue {
	case catch.CueTreasure:
		// Two-note coin chime (B5, E6)
		return sequence(rate,
			tone{987.77, shapeSquare, 70 * ms, 2 * ms, 30 * ms, 0.25},
			tone{1318.51, shapeSquare, 160 * ms, 2 * ms, 120 * ms, 0.25},
		)
	case catch.CueHeart:
		// Rising major arpeggio
		return sequence(rate,
			tone{523.25, shapeSine, 80 * ms, 5 * ms, 30 * ms, 0.5},
			tone{659.25, shapeSine, 80 * ms, 5 * ms, 30 * ms, 0.5},
			tone{783.99, shapeSine, 200 * ms, 5 * ms, 150 * ms, 0.5},
		)
	case catch.CueSlow:
		// Falling saw steps
		return sequence(rate,
			tone{880, shapeSaw, 120 * ms, 10 * ms, 40 * ms, 0.2},
			tone{660, shapeSaw, 120 * ms, 10 * ms, 40 * ms, 0.2},
			tone{440, shapeSaw, 300 * ms, 10 * ms, 250 * ms, 0.2},
		)
	case catch.CueBombHit:
		// Long noise burst over a low rumble
		return layer(rate,
			tone{0, shapeNoise, 450 * ms, 2 * ms, 420 * ms, 0.35},
			tone{70, shapeSine, 450 * ms, 2 * ms, 400 * ms, 0.6},
		)
	case catch.CueBombShot:
		// Short crack
		return layer(rate,
			tone{0, shapeNoise, 220 * ms, 1 * ms, 200 * ms, 0.3},
			tone{180, shapeSquare, 120 * ms, 1 * ms, 100 * ms, 0.15},
		)
	case catch.CueShoot:
		return sequence(rate,
			tone{1400, shapeSquare, 30 * ms, 1 * ms, 10 * ms, 0.12},
			tone{900, shapeSquare, 50 * ms, 1 * ms, 40 * ms, 0.12},
		)
	case catch.CueGameOver:
		// Slow descending minor line
		return sequence(rate,
			tone{523.25, shapeSine, 220 * ms, 10 * ms, 60 * ms, 0.5},
			tone{392.00, shapeSine, 220 * ms, 10 * ms, 60 * ms, 0.5},
			tone{311.13, shapeSine, 220 * ms, 10 * ms, 60 * ms, 0.5},
			tone{261.63, shapeSine, 600 * ms, 10 * ms, 500 * ms, 0.5},
		)
	default:
		return nil
	}
}
