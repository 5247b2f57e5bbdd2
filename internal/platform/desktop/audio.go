package desktop

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/vovakirdan/coin-runner/internal/core"
	"github.com/vovakirdan/coin-runner/internal/sfx"
)

// soundBank plays pre-rendered effects through Ebitengine's audio context.
type soundBank struct {
	ctx     *audio.Context
	pcm     map[sfx.Sound][]byte
	playing []*audio.Player
	logger  *log.Logger
}

func newSoundBank(volume float64, logger *log.Logger) *soundBank {
	return &soundBank{
		ctx:    audio.NewContext(int(sfx.SampleRate)),
		pcm:    sfx.Bake(volume),
		logger: logger,
	}
}

// OnFrame starts the effects for a frame's events.
func (b *soundBank) OnFrame(r core.StepResult) {
	// Finished players are dropped so they can be collected.
	live := b.playing[:0]
	for _, p := range b.playing {
		if p.IsPlaying() {
			live = append(live, p)
		}
	}
	b.playing = live

	for _, s := range sfx.SoundsFor(r.Events) {
		data, ok := b.pcm[s]
		if !ok || len(data) == 0 {
			continue
		}
		p := b.ctx.NewPlayerFromBytes(data)
		p.Play()
		b.playing = append(b.playing, p)
		b.logger.Debug("sound", "effect", s)
	}
}
