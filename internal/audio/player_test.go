package audio

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/catch-treasure/internal/config"
	"github.com/vovakirdan/catch-treasure/internal/games/catch"
)

// fakeOutput records streamers instead of sending them to a device
type fakeOutput struct {
	openErr error
	played  []beep.Streamer
	opened  bool
	closed  bool
}

func (o *fakeOutput) open() error {
	if o.openErr != nil {
		return o.openErr
	}
	o.opened = true
	return nil
}

func (o *fakeOutput) play(s beep.Streamer) { o.played = append(o.played, s) }
func (o *fakeOutput) close()               { o.closed = true }

func enabledAudio() config.Audio {
	return config.Audio{Enabled: true, Volume: 1.0}
}

func drain(s beep.Streamer, chunk int) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, chunk)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
}

func TestToneShapesStayInRange(t *testing.T) {
	rate := beep.SampleRate(44100)
	for _, sh := range []shape{shapeSine, shapeSquare, shapeSaw, shapeNoise} {
		samples := drain(tone{440, sh, 20 * time.Millisecond, 0, 0, 1}.streamer(rate), 512)

		if len(samples) != rate.N(20*time.Millisecond) {
			t.Fatalf("shape %d: streamed %d samples", sh, len(samples))
		}
		for i, smp := range samples {
			if smp[0] < -1 || smp[0] > 1 {
				t.Fatalf("shape %d: sample %d out of range: %f", sh, i, smp[0])
			}
			if smp[0] != smp[1] {
				t.Fatalf("shape %d: channels differ at %d", sh, i)
			}
		}
	}
}

func TestToneEndsAfterLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	s := tone{440, shapeSine, 10 * time.Millisecond, 0, 0, 1}.streamer(rate)

	if got := len(drain(s, 100)); got != rate.N(10*time.Millisecond) {
		t.Errorf("streamed %d samples, expected %d", got, rate.N(10*time.Millisecond))
	}
	if n, ok := s.Stream(make([][2]float64, 10)); n != 0 || ok {
		t.Errorf("finished tone streamed %d ok=%v", n, ok)
	}
}

func TestToneLevelShape(t *testing.T) {
	rate := beep.SampleRate(1000)

	tests := []struct {
		name  string
		tone  tone
		index int
		min   float64
		max   float64
	}{
		{"attack starts silent", tone{0, shapeSquare, 100 * ms, 10 * ms, 20 * ms, 1}, 0, 0, 0},
		{"attack ramps up", tone{0, shapeSquare, 100 * ms, 10 * ms, 20 * ms, 1}, 5, 0.5, 0.5},
		{"sustain at full gain", tone{0, shapeSquare, 100 * ms, 10 * ms, 20 * ms, 1}, 50, 1, 1},
		{"sustain scaled by gain", tone{0, shapeSquare, 100 * ms, 10 * ms, 20 * ms, 0.25}, 50, 0.25, 0.25},
		{"release fades out", tone{0, shapeSquare, 100 * ms, 10 * ms, 20 * ms, 1}, 99, 0.01, 0.1},
		{"no shaping", tone{0, shapeSquare, 100 * ms, 0, 0, 1}, 0, 1, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			samples := drain(tc.tone.streamer(rate), 64)
			if len(samples) != 100 {
				t.Fatalf("streamed %d samples, expected 100", len(samples))
			}
			if got := samples[tc.index][0]; got < tc.min || got > tc.max {
				t.Errorf("sample %d = %f, expected within [%f, %f]", tc.index, got, tc.min, tc.max)
			}
		})
	}
}

func TestNoiseIsRepeatable(t *testing.T) {
	rate := beep.SampleRate(8000)
	noise := tone{0, shapeNoise, 50 * time.Millisecond, 0, 0, 1}

	first := drain(noise.streamer(rate), 128)
	second := drain(noise.streamer(rate), 37)
	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	distinct := false
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("noise differs at sample %d", i)
		}
		if i > 0 && first[i] != first[i-1] {
			distinct = true
		}
	}
	if !distinct {
		t.Error("noise should vary between samples")
	}
}

func TestSynthEveryCue(t *testing.T) {
	for _, cue := range catch.Cues {
		buf := synthBuffer(cue)
		if buf.Len() == 0 {
			t.Errorf("cue %s synthesized no samples", cue)
		}
		if buf.Len() > sampleRate.N(2*time.Second) {
			t.Errorf("cue %s too long: %d samples", cue, buf.Len())
		}
	}

	if s := synthCue(catch.Cue("unknown"), sampleRate); s != nil {
		t.Error("unknown cue should have no synth")
	}
}

func TestLoadFallsBackToSynth(t *testing.T) {
	dir := t.TempDir()
	// Not an mp3 stream
	if err := os.WriteFile(filepath.Join(dir, "treasure.mp3"), []byte("not audio"), 0o600); err != nil {
		t.Fatal(err)
	}

	for _, d := range []string{"", dir, filepath.Join(dir, "missing")} {
		p := newPlayer(enabledAudio(), nil, &fakeOutput{})
		p.Load(d)

		for _, cue := range catch.Cues {
			src, ok := p.Source(cue)
			if !ok || src != SourceSynth {
				t.Errorf("dir %q cue %s: source %q ok=%v, expected synth", d, cue, src, ok)
			}
		}
	}
}

func TestPlayRoutesToOutput(t *testing.T) {
	out := &fakeOutput{}
	p := newPlayer(enabledAudio(), nil, out)
	p.Load("")

	// Not initialized yet
	p.Play(catch.CueTreasure)
	if len(out.played) != 0 {
		t.Fatal("play before Initialize should be silent")
	}

	if err := p.Initialize(); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	p.Play(catch.CueTreasure)
	p.Play(catch.CueShoot)
	p.Play(catch.Cue("unknown"))

	if len(out.played) != 2 {
		t.Errorf("played %d streamers, expected 2", len(out.played))
	}

	p.Close()
	if !out.closed {
		t.Error("Close should release the device")
	}
	p.Play(catch.CueBombHit)
	if len(out.played) != 2 {
		t.Error("play after Close should be silent")
	}
}

func TestInitializeFailureStaysSilent(t *testing.T) {
	out := &fakeOutput{openErr: errors.New("no device")}
	p := newPlayer(enabledAudio(), nil, out)
	p.Load("")

	if err := p.Initialize(); err == nil {
		t.Fatal("expected device error")
	}

	// Still usable as a sink
	p.Play(catch.CueGameOver)
	p.Close()
	if len(out.played) != 0 || out.closed {
		t.Error("failed player should not touch the device")
	}
}

func TestDisabledPlayerSkipsDevice(t *testing.T) {
	out := &fakeOutput{}
	p := newPlayer(config.Audio{Enabled: false, Volume: 1}, nil, out)
	p.Load("")

	if err := p.Initialize(); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	p.Play(catch.CueHeart)

	if out.opened || len(out.played) != 0 {
		t.Error("disabled player should never open the device")
	}
}

func TestPlayerIsAudioSink(t *testing.T) {
	var _ catch.AudioSink = (*Player)(nil)
}
