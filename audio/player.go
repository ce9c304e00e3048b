package audio

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
)

// ErrNoPlayer is returned when no supported PCM player is on PATH
var ErrNoPlayer = errors.New("no PCM player found on PATH")

// Player is an external program that plays raw s16le stereo PCM from stdin
type Player struct {
	Name string
	Path string
	Args []string
}

// Play runs the player to completion with pcm on stdin
func (p *Player) Play(pcm []byte) error {
	cmd := exec.Command(p.Path, p.Args...)
	cmd.Stdin = bytes.NewReader(pcm)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", p.Name, err)
	}
	return nil
}

// playerArgs lists supported players in preference order with their raw PCM arguments
func playerArgs(rate string) [][]string {
	return [][]string{
		{"pacat", "--raw", "--format=s16le", "--rate=" + rate, "--channels=2", "--playback"},
		{"pw-cat", "--playback", "--format=s16", "--rate=" + rate, "--channels=2", "-"},
		{"aplay", "-t", "raw", "-f", "S16_LE", "-r", rate, "-c", "2", "-q"},
		{"play", "-t", "raw", "-e", "signed", "-b", "16", "-c", "2", "-r", rate, "-", "-d", "-q"},
		{"ffplay", "-nodisp", "-autoexit", "-f", "s16le", "-ac", "2", "-ar", rate, "-i", "pipe:0", "-loglevel", "quiet"},
	}
}

// DetectPlayer returns the first supported player found on PATH
func DetectPlayer(sampleRate int) (*Player, error) {
	return detectPlayer(sampleRate, exec.LookPath)
}

func detectPlayer(sampleRate int, lookPath func(string) (string, error)) (*Player, error) {
	for _, argv := range playerArgs(strconv.Itoa(sampleRate)) {
		path, err := lookPath(argv[0])
		if err != nil {
			continue
		}
		return &Player{Name: argv[0], Path: path, Args: argv[1:]}, nil
	}
	return nil, ErrNoPlayer
}
