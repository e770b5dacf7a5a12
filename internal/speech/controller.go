package speech

import (
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// EventKind identifies a speaking lifecycle event.
type EventKind int

const (
	// EventStarted fires when the engine begins audibly producing an utterance.
	EventStarted EventKind = iota
	// EventEnded fires when an utterance completes, errors, or is superseded.
	EventEnded
)

// Event is a speaking lifecycle notification for one utterance.
type Event struct {
	Kind        EventKind
	UtteranceID string
	Text        string
}

// Options tune prosody and controller behavior. Zero fields fall back
// to DefaultOptions values.
type Options struct {
	// Lang is the utterance locale.
	Lang string
	// Rate, Pitch, Volume are fixed prosody for child listening.
	Rate   float64
	Pitch  float64
	Volume float64
	// PreferredName is the voice name favored during resolution.
	PreferredName string
	// PollInterval is the liveness poll cadence.
	PollInterval time.Duration
}

// DefaultOptions returns prosody tuned for child listening: moderately
// slow rate, slightly raised pitch, full volume, US English.
func DefaultOptions() Options {
	return Options{
		Lang:          "en-US",
		Rate:          0.85,
		Pitch:         1.1,
		Volume:        1.0,
		PreferredName: "Google US English",
		PollInterval:  200 * time.Millisecond,
	}
}

// Controller owns a speech engine and serializes utterances through it.
// At most one utterance is active; a new Speak call supersedes any
// utterance still in flight.
type Controller struct {
	mu          sync.Mutex
	engine      Engine
	logger      *slog.Logger
	opts        Options
	preferred   *Voice
	gen         uint64
	currentID   string
	currentText string
	speaking    bool
	listener    func(Event)
	closed      bool

	// submitMu serializes the cancel+submit pair so overlapping Speak
	// calls cannot reach the engine out of generation order.
	submitMu sync.Mutex

	stopCh chan struct{}
	wg     sync.WaitGroup
}

// NewController creates a controller over the given engine and starts
// the liveness poll. The caller must Close the controller when done.
func NewController(engine Engine, opts Options, logger *slog.Logger) *Controller {
	def := DefaultOptions()
	if opts.Lang == "" {
		opts.Lang = def.Lang
	}
	if opts.Rate == 0 {
		opts.Rate = def.Rate
	}
	if opts.Pitch == 0 {
		opts.Pitch = def.Pitch
	}
	if opts.Volume == 0 {
		opts.Volume = def.Volume
	}
	if opts.PreferredName == "" {
		opts.PreferredName = def.PreferredName
	}
	if opts.PollInterval <= 0 {
		opts.PollInterval = def.PollInterval
	}

	c := &Controller{
		engine: engine,
		logger: logger,
		opts:   opts,
		stopCh: make(chan struct{}),
	}

	// The voice list populates asynchronously; revalidate the preference
	// on every change, not just once at construction.
	engine.SetVoicesChanged(c.refreshVoice)
	c.refreshVoice()

	c.wg.Add(1)
	go c.poll()

	return c
}

// SetListener registers a callback for speaking lifecycle events.
// Events for superseded utterances are never delivered.
func (c *Controller) SetListener(fn func(Event)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listener = fn
}

// Speak cancels any active utterance and submits text with the fixed
// prosody and the resolved preferred voice. Submission failures are
// swallowed; the only observable effect is that nothing is spoken.
func (c *Controller) Speak(text string) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}

	// Bookkeeping for the superseded utterance is immediate, regardless
	// of engine cooperation.
	var superseded *Event
	if c.speaking {
		c.speaking = false
		superseded = &Event{Kind: EventEnded, UtteranceID: c.currentID, Text: c.currentText}
	}

	c.gen++
	gen := c.gen
	id := uuid.New().String()
	c.currentID = id
	c.currentText = text

	u := Utterance{
		ID:      id,
		Text:    text,
		Lang:    c.opts.Lang,
		Rate:    c.opts.Rate,
		Pitch:   c.opts.Pitch,
		Volume:  c.opts.Volume,
		Voice:   c.preferred,
		OnStart: func() { c.utteranceStarted(gen) },
		OnEnd:   func() { c.utteranceEnded(gen) },
	}

	listener := c.listener
	engine := c.engine
	c.mu.Unlock()

	if superseded != nil && listener != nil {
		listener(*superseded)
	}

	c.submitMu.Lock()
	defer c.submitMu.Unlock()

	// A newer Speak may have raced ahead while this one waited for the
	// submission lock; its utterance must not be cancelled and this one
	// must never reach the engine. The generation is re-checked after
	// the cancel as well, since the engine call can block.
	if c.stale(gen) {
		return
	}
	engine.Cancel()
	if c.stale(gen) {
		return
	}
	if err := engine.Speak(u); err != nil {
		c.logger.Debug("utterance submission failed", "utterance_id", id, "error", err)
	}
}

// stale reports whether gen is no longer the current generation.
func (c *Controller) stale(gen uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed || gen != c.gen
}

// IsSpeaking reports whether the most recent utterance is audible.
func (c *Controller) IsSpeaking() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.speaking
}

// PreferredVoice returns the currently resolved voice, if any.
func (c *Controller) PreferredVoice() (Voice, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.preferred == nil {
		return Voice{}, false
	}
	return *c.preferred, true
}

// Close stops the liveness poll and detaches the voice-change callback.
// No events are delivered after Close returns. Idempotent.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.speaking = false
	c.mu.Unlock()

	close(c.stopCh)
	c.wg.Wait()

	// Holding the submission lock waits out any submission in flight,
	// so the cancel below is the last thing to touch the engine.
	c.submitMu.Lock()
	defer c.submitMu.Unlock()
	c.engine.SetVoicesChanged(nil)
	c.engine.Cancel()
}

func (c *Controller) utteranceStarted(gen uint64) {
	c.mu.Lock()
	if c.closed || gen != c.gen || c.speaking {
		c.mu.Unlock()
		return
	}
	c.speaking = true
	ev := Event{Kind: EventStarted, UtteranceID: c.currentID, Text: c.currentText}
	listener := c.listener
	c.mu.Unlock()

	if listener != nil {
		listener(ev)
	}
}

func (c *Controller) utteranceEnded(gen uint64) {
	c.mu.Lock()
	if c.closed || gen != c.gen || !c.speaking {
		c.mu.Unlock()
		return
	}
	c.speaking = false
	ev := Event{Kind: EventEnded, UtteranceID: c.currentID, Text: c.currentText}
	listener := c.listener
	c.mu.Unlock()

	if listener != nil {
		listener(ev)
	}
}

// poll is a correctness backstop: some engines do not reliably fire
// completion events, so the engine's speaking state is checked on a
// fixed interval. The poll only ever forces the signal to false.
func (c *Controller) poll() {
	defer c.wg.Done()

	ticker := time.NewTicker(c.opts.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stopCh:
			return
		case <-ticker.C:
			c.mu.Lock()
			if c.closed || !c.speaking || c.engine.Speaking() {
				c.mu.Unlock()
				continue
			}
			c.speaking = false
			ev := Event{Kind: EventEnded, UtteranceID: c.currentID, Text: c.currentText}
			listener := c.listener
			c.mu.Unlock()

			c.logger.Debug("engine reported idle, forcing speaking off", "utterance_id", ev.UtteranceID)
			if listener != nil {
				listener(ev)
			}
		}
	}
}

// refreshVoice re-evaluates the preferred voice from the engine's
// current list. An utterance already in flight keeps the voice it was
// submitted with.
func (c *Controller) refreshVoice() {
	voices := c.engine.Voices()
	pick := pickVoice(voices, c.opts.PreferredName)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.preferred = pick
	if pick != nil {
		c.logger.Debug("preferred voice resolved", "voice", pick.Name, "lang", pick.Lang)
	}
}

// englishLangs are the locale fallbacks tried after the named voice.
var englishLangs = []string{"en-US", "en-GB", "en-AU"}

// pickVoice applies the voice precedence: the named en-US voice, then
// any English variant, then the first voice of any language, then none.
func pickVoice(voices []Voice, preferredName string) *Voice {
	if len(voices) == 0 {
		return nil
	}

	want := strings.ToLower(preferredName)
	for _, v := range voices {
		if strings.Contains(strings.ToLower(v.Name), want) && strings.EqualFold(v.Lang, "en-US") {
			voice := v
			return &voice
		}
	}

	for _, v := range voices {
		for _, lang := range englishLangs {
			if strings.EqualFold(v.Lang, lang) {
				voice := v
				return &voice
			}
		}
	}

	voice := voices[0]
	return &voice
}
