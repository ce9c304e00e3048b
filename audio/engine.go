package audio

import (
	"fmt"
	"log"
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/termedit/constants"
	"github.com/lixenwraith/termedit/core"
)

// AudioEngine plays short alert sounds by piping rendered PCM to a system player.
// Playback runs on its own goroutine so the editor loop never waits on audio.
type AudioEngine struct {
	config  *AudioConfig
	player  *Player

	pcmOnce [soundTypeCount]sync.Once
	pcm     [soundTypeCount][]byte

	queue  chan []byte
	stopCh chan struct{}

	running    atomic.Bool
	silentMode atomic.Bool

	played  atomic.Uint64
	dropped atomic.Uint64

	wg sync.WaitGroup

	// play runs one clip; replaced in tests
	play func(pcm []byte) error
}

// NewAudioEngine creates an audio engine
func NewAudioEngine(cfg ...*AudioConfig) *AudioEngine {
	config := DefaultAudioConfig()
	if len(cfg) > 0 && cfg[0] != nil {
		config = cfg[0]
	}

	ae := &AudioEngine{
		config: config,
		queue:  make(chan []byte, constants.AudioQueueSize),
		stopCh: make(chan struct{}),
	}
	ae.play = ae.playPlayer
	return ae
}

// Start detects a player and launches the playback goroutine.
// A disabled config or a missing player puts the engine in silent mode, which is not an error.
func (ae *AudioEngine) Start() error {
	if ae.running.Load() {
		return fmt.Errorf("audio engine already running")
	}

	if !ae.config.Enabled {
		ae.silentMode.Store(true)
		ae.running.Store(true)
		return nil
	}

	if ae.player == nil {
		player, err := DetectPlayer(ae.config.SampleRate)
		if err != nil {
			log.Printf("audio: %v, alerts disabled", err)
			ae.silentMode.Store(true)
			ae.running.Store(true)
			return nil
		}
		ae.player = player
		log.Printf("audio: using %s (%s)", player.Name, player.Path)
	}

	ae.running.Store(true)
	ae.wg.Add(1)
	core.Go(ae.loop)
	return nil
}

// Stop terminates the playback goroutine; pending clips are discarded
func (ae *AudioEngine) Stop() {
	if !ae.running.CompareAndSwap(true, false) {
		return
	}
	close(ae.stopCh)
	ae.wg.Wait()
}

// Play queues a sound; returns false when silent, stopped or the queue is full
func (ae *AudioEngine) Play(st SoundType) bool {
	if !ae.IsEnabled() || st < 0 || st >= soundTypeCount {
		return false
	}

	select {
	case ae.queue <- ae.clip(st):
		return true
	default:
		ae.dropped.Add(1)
		return false
	}
}

// Alert plays the error sound
func (ae *AudioEngine) Alert() {
	ae.Play(SoundError)
}

// IsEnabled returns true if running with a usable player
func (ae *AudioEngine) IsEnabled() bool {
	return ae.running.Load() && !ae.silentMode.Load()
}

// IsRunning returns true if engine is running (even in silent mode)
func (ae *AudioEngine) IsRunning() bool {
	return ae.running.Load()
}

// GetStats returns played and dropped counts
func (ae *AudioEngine) GetStats() (played, dropped uint64) {
	return ae.played.Load(), ae.dropped.Load()
}

// clip returns the cached PCM for st, rendering it on first use
func (ae *AudioEngine) clip(st SoundType) []byte {
	ae.pcmOnce[st].Do(func() {
		ae.pcm[st] = renderPCM(NewSound(st, ae.config))
	})
	return ae.pcm[st]
}

// loop plays queued clips one at a time
func (ae *AudioEngine) loop() {
	defer ae.wg.Done()

	for {
		select {
		case <-ae.stopCh:
			return
		case pcm := <-ae.queue:
			if err := ae.play(pcm); err != nil {
				log.Printf("audio: playback failed, alerts disabled: %v", err)
				ae.silentMode.Store(true)
				continue
			}
			ae.played.Add(1)
		}
	}
}

// playPlayer hands pcm to the detected player
func (ae *AudioEngine) playPlayer(pcm []byte) error {
	if ae.player == nil {
		return ErrNoPlayer
	}
	return ae.player.Play(pcm)
}
