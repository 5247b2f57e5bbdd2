package sfx

import (
	"encoding/binary"
	"math"

	"github.com/gopxl/beep"
)

// PCM drains s into signed 16-bit little-endian stereo frames, the format
// Ebitengine's audio players expect. At most maxSamples frames are read.
func PCM(s beep.Streamer, maxSamples int) []byte {
	if s == nil || maxSamples <= 0 {
		return nil
	}
	out := make([]byte, 0, maxSamples*4)
	buf := make([][2]float64, 512)
	total := 0
	for total < maxSamples {
		chunk := buf
		if rest := maxSamples - total; rest < len(chunk) {
			chunk = chunk[:rest]
		}
		n, ok := s.Stream(chunk)
		for _, frame := range chunk[:n] {
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(frame[0])))
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(frame[1])))
		}
		total += n
		if !ok || n == 0 {
			break
		}
	}
	return out
}

// Bake renders every sound once at the given master volume.
func Bake(master float64) map[Sound][]byte {
	limit := SampleRate.N(CrashDuration + CoinNote1 + CoinNote2)
	baked := make(map[Sound][]byte, 3)
	for _, s := range []Sound{SoundJump, SoundCoin, SoundCrash} {
		baked[s] = PCM(Effect(s, master, SampleRate), limit)
	}
	return baked
}

func toInt16(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(v * math.MaxInt16)
}
