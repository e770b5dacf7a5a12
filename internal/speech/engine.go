package speech

// Voice describes one synthesis voice offered by an engine.
type Voice struct {
	// Name is the engine's display name for the voice.
	Name string
	// Lang is a BCP 47 language tag such as "en-US".
	Lang string
}

// Utterance is one request to render text audibly. It has no persisted
// identity; only the most recently submitted utterance may be active.
type Utterance struct {
	ID     string
	Text   string
	Lang   string
	Rate   float64
	Pitch  float64
	Volume float64
	// Voice is the resolved preferred voice, nil when none is available.
	Voice *Voice

	// OnStart is invoked by the engine when audio begins.
	OnStart func()
	// OnEnd is invoked by the engine when the utterance completes,
	// errors, or is cancelled. Engines may call it at most once.
	OnEnd func()
}

// Engine is the capability interface over a speech-synthesis backend.
// Any conforming engine is substitutable; tests use MockEngine.
type Engine interface {
	// Speak submits an utterance for playback.
	Speak(u Utterance) error
	// Cancel asks the engine to stop the active utterance. Best effort.
	Cancel()
	// Speaking reports whether the engine is audibly producing output.
	Speaking() bool
	// Voices returns the currently known voice list. The list is
	// populated asynchronously and may be empty early on.
	Voices() []Voice
	// SetVoicesChanged registers a callback fired whenever the voice
	// list changes. Passing nil detaches the callback.
	SetVoicesChanged(fn func())
}
