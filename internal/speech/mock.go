package speech

import "sync"

// MockEngine is an in-memory Engine for tests and for wiring when no
// real synthesis backend is available. By default it reports speech as
// started immediately on Speak; completion is driven by the caller
// through FinishCurrent, SetIdle, or Cancel.
type MockEngine struct {
	mu            sync.Mutex
	voices        []Voice
	voicesChanged func()
	current       *Utterance
	speaking      bool
	spoken        []Utterance
	speakErr      error
	autoStart     bool
}

// NewMockEngine creates a mock engine with an empty voice list.
func NewMockEngine() *MockEngine {
	return &MockEngine{autoStart: true}
}

// Speak records the utterance and, unless auto-start is disabled,
// immediately reports it as audible.
func (m *MockEngine) Speak(u Utterance) error {
	m.mu.Lock()
	if m.speakErr != nil {
		err := m.speakErr
		m.mu.Unlock()
		return err
	}

	m.current = &u
	m.spoken = append(m.spoken, u)
	start := m.autoStart
	if start {
		m.speaking = true
	}
	m.mu.Unlock()

	if start && u.OnStart != nil {
		u.OnStart()
	}
	return nil
}

// Cancel stops the active utterance and fires its end callback.
func (m *MockEngine) Cancel() {
	m.finish()
}

// FinishCurrent completes the active utterance as if playback ended
// naturally.
func (m *MockEngine) FinishCurrent() {
	m.finish()
}

func (m *MockEngine) finish() {
	m.mu.Lock()
	cur := m.current
	m.current = nil
	m.speaking = false
	m.mu.Unlock()

	if cur != nil && cur.OnEnd != nil {
		cur.OnEnd()
	}
}

// SetIdle makes the engine report not-speaking without firing the end
// callback, simulating an engine whose completion event never arrives.
func (m *MockEngine) SetIdle() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.speaking = false
}

// Speaking reports whether an utterance is audible.
func (m *MockEngine) Speaking() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.speaking
}

// Voices returns the configured voice list.
func (m *MockEngine) Voices() []Voice {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Voice, len(m.voices))
	copy(out, m.voices)
	return out
}

// SetVoicesChanged registers or detaches the voice-list callback.
func (m *MockEngine) SetVoicesChanged(fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.voicesChanged = fn
}

// SetVoices replaces the voice list and fires the change callback,
// mirroring an engine whose voices populate asynchronously.
func (m *MockEngine) SetVoices(voices []Voice) {
	m.mu.Lock()
	m.voices = make([]Voice, len(voices))
	copy(m.voices, voices)
	fn := m.voicesChanged
	m.mu.Unlock()

	if fn != nil {
		fn()
	}
}

// SetSpeakError makes subsequent Speak calls fail with err. Pass nil to
// clear.
func (m *MockEngine) SetSpeakError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.speakErr = err
}

// SetAutoStart controls whether Speak immediately reports audio as
// started.
func (m *MockEngine) SetAutoStart(auto bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.autoStart = auto
}

// Spoken returns all utterances submitted so far.
func (m *MockEngine) Spoken() []Utterance {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Utterance, len(m.spoken))
	copy(out, m.spoken)
	return out
}

// Current returns the active utterance, if any.
func (m *MockEngine) Current() (Utterance, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return Utterance{}, false
	}
	return *m.current, true
}

// VoicesChangedAttached reports whether a change callback is registered.
func (m *MockEngine) VoicesChangedAttached() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.voicesChanged != nil
}
