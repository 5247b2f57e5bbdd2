// Package sfx synthesizes the runner's sound effects procedurally, so the
// game ships without audio assets.
package sfx

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/coin-runner/internal/core"
)

// SampleRate is used for every generated effect.
const SampleRate = beep.SampleRate(44100)

// Sound identifies an effect.
type Sound int

const (
	SoundJump  Sound = iota // Rising blip
	SoundCoin               // Two-note chime
	SoundCrash              // Low buzz with noise
)

func (s Sound) String() string {
	switch s {
	case SoundJump:
		return "jump"
	case SoundCoin:
		return "coin"
	case SoundCrash:
		return "crash"
	default:
		return "unknown"
	}
}

// Effect lengths.
const (
	JumpDuration  = 120 * time.Millisecond
	CoinNote1     = 70 * time.Millisecond
	CoinNote2     = 160 * time.Millisecond
	CrashDuration = 350 * time.Millisecond
)

// Wave selects an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveNoise
)

// oscillator produces a wave whose frequency glides linearly from freq to
// freqEnd over its duration.
type oscillator struct {
	freq, freqEnd float64
	phase         float64
	pos, total    int
	wave          Wave
	rate          beep.SampleRate
	rng           *rand.Rand
}

// NewOscillator returns a finite streamer gliding from freq to freqEnd.
func NewOscillator(freq, freqEnd float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:    freq,
		freqEnd: freqEnd,
		total:   rate.N(d),
		wave:    wave,
		rate:    rate,
		rng:     rand.New(rand.NewSource(1)),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if o.pos >= o.total {
			return i, i > 0
		}

		var v float64
		switch o.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			v = -1
			if o.phase < 0.5 {
				v = 1
			}
		case WaveNoise:
			v = o.rng.Float64()*2 - 1
		}
		samples[i][0] = v
		samples[i][1] = v

		t := float64(o.pos) / float64(o.total)
		f := o.freq + (o.freqEnd-o.freq)*t
		o.phase += f / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.pos++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades a stream in over attack and out over release.
type envelope struct {
	s                      beep.Streamer
	pos                    int
	attack, release, total int
}

// NewEnvelope shapes s with a linear attack and release.
func NewEnvelope(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		s:       s,
		attack:  rate.N(attack),
		release: rate.N(release),
		total:   rate.N(d),
	}
}

func (e *envelope) Stream(samples [][2]float64) (int, bool) {
	n, ok := e.s.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.attack > 0 && e.pos < e.attack {
			vol = float64(e.pos) / float64(e.attack)
		}
		if rem := e.total - e.pos; e.release > 0 && rem < e.release {
			vol = math.Max(0, float64(rem)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.s.Err() }

// volume scales a stream linearly; 0 silences it.
func volume(s beep.Streamer, v float64) beep.Streamer {
	if v <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(v)}
}

// Effect builds a fresh streamer for sound at the given master volume.
func Effect(sound Sound, master float64, rate beep.SampleRate) beep.Streamer {
	switch sound {
	case SoundJump:
		osc := NewOscillator(330, 660, JumpDuration, WaveSquare, rate)
		return volume(NewEnvelope(osc, JumpDuration, 5*time.Millisecond, 60*time.Millisecond, rate), 0.25*master)
	case SoundCoin:
		n1 := NewEnvelope(NewOscillator(987.77, 987.77, CoinNote1, WaveSquare, rate),
			CoinNote1, 2*time.Millisecond, 20*time.Millisecond, rate)
		n2 := NewEnvelope(NewOscillator(1318.51, 1318.51, CoinNote2, WaveSquare, rate),
			CoinNote2, 2*time.Millisecond, 120*time.Millisecond, rate)
		return volume(beep.Seq(n1, n2), 0.2*master)
	case SoundCrash:
		buzz := NewOscillator(140, 60, CrashDuration, WaveSquare, rate)
		noise := NewOscillator(0, 0, CrashDuration, WaveNoise, rate)
		mixed := beep.Mix(volume(buzz, 0.7), volume(noise, 0.3))
		return volume(NewEnvelope(mixed, CrashDuration, 5*time.Millisecond, 250*time.Millisecond, rate), 0.35*master)
	default:
		return nil
	}
}

// SoundsFor lists the effects triggered by a frame's events.
func SoundsFor(ev core.Events) []Sound {
	var out []Sound
	if ev.Has(core.EventJumped) {
		out = append(out, SoundJump)
	}
	if ev.Has(core.EventCoin) {
		out = append(out, SoundCoin)
	}
	if ev.Has(core.EventCrashed) {
		out = append(out, SoundCrash)
	}
	return out
}
