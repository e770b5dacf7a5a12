package nav

import (
	"log/slog"
	"sync"
	"time"

	"github.com/okeefe/babblebox/internal/catalog"
)

// Screen identifies which screen is presented.
type Screen int

const (
	// ScreenSplash is the initial attention screen.
	ScreenSplash Screen = iota
	// ScreenHome is the category grid.
	ScreenHome
	// ScreenCategory is one category's card grid.
	ScreenCategory
)

// String returns the lowercase screen name.
func (s Screen) String() string {
	switch s {
	case ScreenSplash:
		return "splash"
	case ScreenHome:
		return "home"
	case ScreenCategory:
		return "category"
	default:
		return "unknown"
	}
}

// State is the current navigation position. CategoryKey is set only
// when Screen is ScreenCategory.
type State struct {
	Screen      Screen
	CategoryKey string
}

// Machine is the screen state machine: splash → home → category → home,
// cycling for the life of the session. Invalid transitions are silent
// no-ops.
type Machine struct {
	mu       sync.Mutex
	catalog  *catalog.Catalog
	logger   *slog.Logger
	delay    time.Duration
	chime    func()
	state    State
	listener func(State)
	timer    *time.Timer
	started  bool
	closed   bool
}

// NewMachine creates a machine at the splash screen. chime is the
// opaque attention sound played on entering splash; it may be nil.
func NewMachine(cat *catalog.Catalog, splashDelay time.Duration, chime func(), logger *slog.Logger) *Machine {
	return &Machine{
		catalog: cat,
		logger:  logger,
		delay:   splashDelay,
		chime:   chime,
		state:   State{Screen: ScreenSplash},
	}
}

// SetListener registers a callback fired on every screen change.
func (m *Machine) SetListener(fn func(State)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listener = fn
}

// Start plays the attention chime and arms the splash timer. The
// splash-to-home transition fires once after the delay; user input
// cannot cancel it, only Close can. Start is a no-op when called twice.
func (m *Machine) Start() {
	m.mu.Lock()
	if m.started || m.closed {
		m.mu.Unlock()
		return
	}
	m.started = true
	chime := m.chime
	m.timer = time.AfterFunc(m.delay, m.splashElapsed)
	m.mu.Unlock()

	if chime != nil {
		chime()
	}
}

func (m *Machine) splashElapsed() {
	m.mu.Lock()
	if m.closed || m.state.Screen != ScreenSplash {
		m.mu.Unlock()
		return
	}
	m.logger.Debug("splash elapsed")
	m.transition(State{Screen: ScreenHome})
}

// SelectCategory moves home → category for a valid catalog key. Unknown
// keys and selections from other screens are ignored.
func (m *Machine) SelectCategory(key string) {
	m.mu.Lock()
	if m.closed || m.state.Screen != ScreenHome {
		m.mu.Unlock()
		return
	}
	if !m.catalog.Has(key) {
		m.logger.Debug("ignoring unknown category key", "key", key)
		m.mu.Unlock()
		return
	}
	m.transition(State{Screen: ScreenCategory, CategoryKey: key})
}

// Back moves category → home. No-op on any other screen.
func (m *Machine) Back() {
	m.mu.Lock()
	if m.closed || m.state.Screen != ScreenCategory {
		m.mu.Unlock()
		return
	}
	m.transition(State{Screen: ScreenHome})
}

// Current returns the live navigation state.
func (m *Machine) Current() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Close cancels the splash timer and silences the listener. No
// transition fires after Close returns. Idempotent.
func (m *Machine) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return
	}
	m.closed = true
	m.listener = nil
	if m.timer != nil {
		m.timer.Stop()
	}
}

// transition records the new state and notifies the listener. Called
// with the mutex held; unlocks before the callback runs.
func (m *Machine) transition(next State) {
	prev := m.state
	m.state = next
	listener := m.listener
	m.mu.Unlock()

	m.logger.Info("screen changed",
		"from", prev.Screen.String(),
		"to", next.Screen.String(),
		"category", next.CategoryKey,
	)

	if listener != nil {
		listener(next)
	}
}
