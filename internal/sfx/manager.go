package sfx

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/coin-runner/internal/core"
)

// Manager plays effects on the system speaker through a shared mixer.
// A Manager that failed to initialize stays silent.
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
	logger      *log.Logger
}

// NewManager creates a manager with the given master volume in [0, 1].
func NewManager(volume float64, logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Manager{
		mixer:  &beep.Mixer{},
		volume: core.ClampF(volume, 0, 1),
		logger: logger,
	}
}

// Init opens the speaker. Calling it again is a no-op.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(m.mixer)
	m.initialized = true
	m.logger.Debug("speaker ready", "rate", int(SampleRate))
	return nil
}

// Play queues one sound.
func (m *Manager) Play(s Sound) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	st := Effect(s, m.volume, SampleRate)
	if st == nil {
		return
	}
	speaker.Lock()
	m.mixer.Add(st)
	speaker.Unlock()
}

// OnFrame plays the effects triggered by a frame. It matches the loop
// driver's frame hook signature.
func (m *Manager) OnFrame(r core.StepResult) {
	for _, s := range SoundsFor(r.Events) {
		m.Play(s)
	}
}

// Close silences the mixer and releases the speaker.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Lock()
	m.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	m.initialized = false
}
