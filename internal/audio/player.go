// Package audio plays the game's sound cues through the system speaker.
// Cues come from mp3 files when present and from synthesized tones otherwise.
package audio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/catch-treasure/internal/config"
	"github.com/vovakirdan/catch-treasure/internal/games/catch"
)

const (
	sampleRate      = beep.SampleRate(44100)
	resampleQuality = 4
)

var format = beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2}

// Source tells where a cue's samples came from.
type Source string

const (
	SourceFile  Source = "file"
	SourceSynth Source = "synth"
)

// output receives streamers once the device is open
type output interface {
	open() error
	play(s beep.Streamer)
	close()
}

// speakerOutput drives the real audio device through a single mixer.
type speakerOutput struct {
	mixer *beep.Mixer
}

func (o *speakerOutput) open() error {
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(o.mixer)
	return nil
}

func (o *speakerOutput) play(s beep.Streamer) {
	speaker.Lock()
	o.mixer.Add(s)
	speaker.Unlock()
}

func (o *speakerOutput) close() {
	speaker.Lock()
	o.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
}

// Player implements catch.AudioSink. A player that failed to open the
// device stays silent instead of failing the game.
type Player struct {
	mu          sync.Mutex
	out         output
	buffers     map[catch.Cue]*beep.Buffer
	sources     map[catch.Cue]Source
	volume      float64
	enabled     bool
	initialized bool
	logger      *log.Logger
}

// NewPlayer creates a player for the given audio settings.
// Call Initialize to open the device and Load to prepare the cues.
func NewPlayer(cfg config.Audio, logger *log.Logger) *Player {
	return newPlayer(cfg, logger, &speakerOutput{mixer: &beep.Mixer{}})
}

func newPlayer(cfg config.Audio, logger *log.Logger, out output) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Player{
		out:     out,
		buffers: make(map[catch.Cue]*beep.Buffer),
		sources: make(map[catch.Cue]Source),
		volume:  cfg.Volume,
		enabled: cfg.Enabled,
		logger:  logger.WithPrefix("audio"),
	}
}

// Initialize opens the audio device. Disabled players skip the device.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized || !p.enabled {
		return nil
	}
	if err := p.out.open(); err != nil {
		return fmt.Errorf("audio: open device: %w", err)
	}
	p.initialized = true
	p.logger.Debug("device ready", "rate", int(sampleRate))
	return nil
}

// Load prepares every cue, preferring <dir>/<cue>.mp3 and falling back to
// a synthesized tone when the file is missing or unreadable.
func (p *Player) Load(dir string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, cue := range catch.Cues {
		buf, err := loadFile(dir, cue)
		if err == nil {
			p.buffers[cue] = buf
			p.sources[cue] = SourceFile
			continue
		}
		if !errors.Is(err, os.ErrNotExist) {
			p.logger.Warn("sound file unusable, using synth", "cue", cue, "err", err)
		}
		p.buffers[cue] = synthBuffer(cue)
		p.sources[cue] = SourceSynth
	}
}

// Source reports where the cue's samples were loaded from.
func (p *Player) Source(cue catch.Cue) (Source, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	src, ok := p.sources[cue]
	return src, ok
}

// Play starts the cue without blocking. Unknown cues and closed or
// silent players are ignored.
func (p *Player) Play(cue catch.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	buf, ok := p.buffers[cue]
	if !ok {
		return
	}
	p.out.play(newVolume(buf.Streamer(0, buf.Len()), p.volume))
}

// Close stops playback and releases the device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	p.out.close()
	p.initialized = false
}

func loadFile(dir string, cue catch.Cue) (*beep.Buffer, error) {
	if dir == "" {
		return nil, os.ErrNotExist
	}
	f, err := os.Open(filepath.Join(dir, string(cue)+".mp3"))
	if err != nil {
		return nil, err
	}

	streamer, fileFormat, err := mp3.Decode(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("audio: decode %s: %w", cue, err)
	}
	defer func() { _ = streamer.Close() }()

	buf := beep.NewBuffer(format)
	if fileFormat.SampleRate == sampleRate {
		buf.Append(streamer)
	} else {
		buf.Append(beep.Resample(resampleQuality, fileFormat.SampleRate, sampleRate, streamer))
	}
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("audio: decode %s: %w", cue, err)
	}
	if buf.Len() == 0 {
		return nil, fmt.Errorf("audio: decode %s: no samples", cue)
	}
	return buf, nil
}

func synthBuffer(cue catch.Cue) *beep.Buffer {
	buf := beep.NewBuffer(format)
	if s := synthCue(cue, sampleRate); s != nil {
		buf.Append(s)
	}
	return buf
}
