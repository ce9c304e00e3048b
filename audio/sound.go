package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/lixenwraith/termedit/constants"
)

// SoundType identifies an alert sound
type SoundType int

const (
	SoundError SoundType = iota // Buzz for failed operations
	SoundBell                   // Ding for attention
	soundTypeCount
)

// WaveType selects the oscillator shape
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
)

// Tone describes one enveloped voice of a sound
type Tone struct {
	Freq     float64
	Wave     WaveType
	Duration time.Duration
	Attack   time.Duration
	Release  time.Duration
	Gain     float64 // Linear, relative to the other voices of the sound
}

// sounds defines every alert as a set of voices played together
var sounds = [soundTypeCount][]Tone{
	SoundError: {
		{Freq: constants.BuzzFreq, Wave: WaveSaw, Duration: constants.BuzzDuration,
			Attack: constants.BuzzAttack, Release: constants.BuzzRelease, Gain: 1},
	},
	SoundBell: {
		{Freq: constants.BellFreq, Wave: WaveSine, Duration: constants.BellDuration,
			Attack: constants.BellAttack, Release: constants.BellRelease, Gain: 0.7},
		{Freq: constants.BellOvertoneFreq, Wave: WaveSine, Duration: constants.BellDuration,
			Attack: constants.BellAttack, Release: constants.BellOvertoneRelease, Gain: 0.3},
	},
}

// toneStreamer generates a Tone sample by sample
type toneStreamer struct {
	wave  WaveType
	step  float64 // Phase advance per frame
	phase float64 // [0, 1)

	pos, total   int
	attack       int
	releaseStart int
	release      int
}

// NewToneStreamer returns a finite streamer for t at rate; Gain is not applied
func NewToneStreamer(t Tone, rate beep.SampleRate) beep.Streamer {
	total := rate.N(t.Duration)
	attack := rate.N(t.Attack)
	release := rate.N(t.Release)

	return &toneStreamer{
		wave:         t.Wave,
		step:         t.Freq / float64(rate),
		total:        total,
		attack:       attack,
		releaseStart: max(total-release, attack),
		release:      release,
	}
}

func (s *toneStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	for n < len(samples) && s.pos < s.total {
		v := s.wave.at(s.phase) * s.envelope()
		samples[n] = [2]float64{v, v}

		s.phase += s.step
		s.phase -= math.Floor(s.phase)
		s.pos++
		n++
	}
	return n, n > 0
}

func (s *toneStreamer) Err() error { return nil }

// envelope is the linear attack/release gain at the current position
func (s *toneStreamer) envelope() float64 {
	switch {
	case s.pos < s.attack:
		return float64(s.pos) / float64(s.attack)
	case s.pos >= s.releaseStart && s.release > 0:
		return float64(s.total-s.pos) / float64(s.release)
	default:
		return 1
	}
}

// at evaluates the wave at phase p in [0, 1)
func (w WaveType) at(p float64) float64 {
	switch w {
	case WaveSquare:
		if p < 0.5 {
			return 1
		}
		return -1
	case WaveSaw:
		return 2 * (p - 0.5)
	default:
		return math.Sin(2 * math.Pi * p)
	}
}

// scaled applies a linear gain through effects.Volume; 0 or less is silent
func scaled(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

// NewSound builds the streamer for st with the configured volumes, nil if unknown
func NewSound(st SoundType, cfg *AudioConfig) beep.Streamer {
	if st < 0 || st >= soundTypeCount {
		return nil
	}
	rate := beep.SampleRate(cfg.SampleRate)

	voices := make([]beep.Streamer, 0, len(sounds[st]))
	var longest time.Duration
	for _, t := range sounds[st] {
		voices = append(voices, scaled(NewToneStreamer(t, rate), t.Gain))
		longest = max(longest, t.Duration)
	}

	// Take bounds the mix to the longest voice
	mixed := beep.Take(rate.N(longest), beep.Mix(voices...))
	return scaled(mixed, cfg.EffectVolumes[st]*cfg.MasterVolume)
}
