package constants

import "time"

// Alert PCM format: interleaved stereo signed 16-bit little-endian
const (
	// AudioSampleRate is the default sample rate in Hz
	AudioSampleRate = 44100

	// AudioStreamChunk is the number of frames pulled from a streamer per call while rendering
	AudioStreamChunk = 512

	// AudioQueueSize is how many alerts may wait for the player before new ones are dropped
	AudioQueueSize = 4
)

// Failure buzz: low sawtooth, short enough not to delay the next keystroke
const (
	BuzzFreq     = 110.0
	BuzzDuration = 80 * time.Millisecond
	BuzzAttack   = 5 * time.Millisecond
	BuzzRelease  = 20 * time.Millisecond
)

// Bell: A5 sine with an A6 overtone that fades first
const (
	BellFreq            = 880.0
	BellOvertoneFreq    = 1760.0
	BellDuration        = 600 * time.Millisecond
	BellAttack          = 5 * time.Millisecond
	BellRelease         = 550 * time.Millisecond
	BellOvertoneRelease = 200 * time.Millisecond
)
