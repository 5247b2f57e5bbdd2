package sfx

import (
	"reflect"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/coin-runner/internal/core"
)

func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 256)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok || n < len(buf) {
			break
		}
		if len(out) > int(SampleRate)*2 {
			t.Fatal("streamer did not terminate")
		}
	}
	return out
}

func TestOscillatorLength(t *testing.T) {
	osc := NewOscillator(440, 440, 50*time.Millisecond, WaveSine, SampleRate)
	got := drain(t, osc)
	if want := SampleRate.N(50 * time.Millisecond); len(got) != want {
		t.Errorf("samples = %d, expected %d", len(got), want)
	}
	if osc.Err() != nil {
		t.Errorf("Err() = %v, expected nil", osc.Err())
	}
}

func TestOscillatorSquareValues(t *testing.T) {
	for i, s := range drain(t, NewOscillator(220, 440, 20*time.Millisecond, WaveSquare, SampleRate)) {
		if s[0] != 1 && s[0] != -1 {
			t.Fatalf("sample %d = %v, expected ±1", i, s[0])
		}
	}
}

func TestEnvelopeFades(t *testing.T) {
	d := 100 * time.Millisecond
	osc := NewOscillator(0, 0, d, WaveSquare, SampleRate)
	got := drain(t, NewEnvelope(osc, d, 10*time.Millisecond, 10*time.Millisecond, SampleRate))

	if got[0][0] != 0 {
		t.Errorf("first sample = %v, expected 0", got[0][0])
	}
	if mid := got[len(got)/2][0]; mid != 1 {
		t.Errorf("sustain sample = %v, expected 1", mid)
	}
	if last := got[len(got)-1][0]; last > 0.01 {
		t.Errorf("last sample = %v, expected near 0", last)
	}
}

func TestEffectsAreBoundedAndFinite(t *testing.T) {
	tests := []struct {
		sound Sound
		max   time.Duration
	}{
		{SoundJump, JumpDuration},
		{SoundCoin, CoinNote1 + CoinNote2},
		{SoundCrash, CrashDuration},
	}

	for _, tt := range tests {
		t.Run(tt.sound.String(), func(t *testing.T) {
			got := drain(t, Effect(tt.sound, 1, SampleRate))
			if len(got) == 0 {
				t.Fatal("effect produced no samples")
			}
			if len(got) > SampleRate.N(tt.max)+1 {
				t.Errorf("samples = %d, expected at most %d", len(got), SampleRate.N(tt.max))
			}
			for i, s := range got {
				if s[0] < -1 || s[0] > 1 {
					t.Fatalf("sample %d = %v out of range", i, s[0])
				}
			}
		})
	}
}

func TestSilentEffect(t *testing.T) {
	for i, s := range drain(t, Effect(SoundJump, 0, SampleRate)) {
		if s[0] != 0 || s[1] != 0 {
			t.Fatalf("sample %d = %v, expected silence", i, s)
		}
	}
}

func TestUnknownSound(t *testing.T) {
	if Effect(Sound(99), 1, SampleRate) != nil {
		t.Error("unknown sound should have no streamer")
	}
}

func TestSoundsFor(t *testing.T) {
	tests := []struct {
		name string
		ev   core.Events
		want []Sound
	}{
		{"nothing", 0, nil},
		{"passed only", core.EventPassed, nil},
		{"jump", core.EventJumped, []Sound{SoundJump}},
		{"coin and crash", core.EventCoin | core.EventCrashed, []Sound{SoundCoin, SoundCrash}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SoundsFor(tt.ev); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SoundsFor(%v) = %v, expected %v", tt.ev, got, tt.want)
			}
		})
	}
}

func TestPCM(t *testing.T) {
	n := SampleRate.N(JumpDuration)
	data := PCM(Effect(SoundJump, 1, SampleRate), n*2)
	if len(data) != n*4 {
		t.Errorf("len = %d, expected %d", len(data), n*4)
	}

	capped := PCM(Effect(SoundCrash, 1, SampleRate), 100)
	if len(capped) != 400 {
		t.Errorf("capped len = %d, expected 400", len(capped))
	}

	if PCM(nil, 10) != nil {
		t.Error("PCM(nil) should be nil")
	}
}

func TestBake(t *testing.T) {
	baked := Bake(0.5)
	for _, s := range []Sound{SoundJump, SoundCoin, SoundCrash} {
		if len(baked[s]) == 0 {
			t.Errorf("baked[%v] is empty", s)
		}
	}
}

func TestManagerSilentBeforeInit(t *testing.T) {
	m := NewManager(2, nil)
	if m.volume != 1 {
		t.Errorf("volume = %v, expected clamp to 1", m.volume)
	}
	m.OnFrame(core.StepResult{Events: core.EventJumped | core.EventCoin})
	m.Close()
}
