package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/blueprint-pong/internal/assets"
)

// SampleRate used for every synthesized effect.
const SampleRate = beep.SampleRate(48000)

// Speaker plays sounds on the local audio device through one mixer.
type Speaker struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	open   bool
	logger *log.Logger
}

// NewSpeaker opens the audio device. The speaker can only be opened once
// per process.
func NewSpeaker(logger *log.Logger) (*Speaker, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	s := &Speaker{mixer: &beep.Mixer{}, open: true, logger: logger}
	speaker.Play(s.mixer)
	return s, nil
}

// Play mixes the sound into the output. It returns immediately.
func (s *Speaker) Play(snd assets.Sound, volume float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return
	}
	stream := Synthesize(snd, volume, SampleRate)
	speaker.Lock()
	s.mixer.Add(stream)
	speaker.Unlock()
	if s.logger != nil {
		s.logger.Debug("sound played", "id", snd.ID, "volume", volume)
	}
}

// Close stops playback and releases the device.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	s.open = false
}

var _ Sink = (*Speaker)(nil)
