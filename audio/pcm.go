package audio

import (
	"encoding/binary"

	"github.com/gopxl/beep"
	"github.com/lixenwraith/termedit/constants"
)

// renderPCM drains s into interleaved stereo int16 little-endian bytes
func renderPCM(s beep.Streamer) []byte {
	if s == nil {
		return nil
	}

	chunk := make([][2]float64, constants.AudioStreamChunk)
	var out []byte
	for {
		n, ok := s.Stream(chunk)
		for i := 0; i < n; i++ {
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(chunk[i][0])))
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(chunk[i][1])))
		}
		if !ok || n == 0 {
			break
		}
	}
	return out
}

// toInt16 hard-clips v to [-1, 1] and scales to int16
func toInt16(v float64) int16 {
	if v > 1.0 {
		v = 1.0
	} else if v < -1.0 {
		v = -1.0
	}
	return int16(v * 32767)
}
