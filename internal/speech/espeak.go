package speech

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strconv"
	"strings"
	"sync"
)

var (
	// ErrEspeakNotFound is returned when the espeak-ng binary is not found.
	ErrEspeakNotFound = errors.New("espeak-ng binary not found")
	// ErrSpeakFailed is returned when an utterance cannot be started.
	ErrSpeakFailed = errors.New("utterance start failed")
)

// espeak-ng defaults that prosody multipliers are applied against.
const (
	espeakBaseRate   = 175 // words per minute
	espeakBasePitch  = 50  // 0..99
	espeakBaseVolume = 100 // 0..200
)

// EspeakConfig holds configuration for the espeak-ng engine.
type EspeakConfig struct {
	// BinaryPath is the path to the espeak-ng executable.
	BinaryPath string
}

// EspeakEngine implements Engine by spawning espeak-ng per utterance.
// The voice list is enumerated in the background after construction and
// announced through the voices-changed callback once it lands.
type EspeakEngine struct {
	config EspeakConfig
	logger *slog.Logger

	mu            sync.Mutex
	voices        []Voice
	voicesChanged func()
	cmd           *exec.Cmd
	currentID     string
	speaking      bool
}

// NewEspeakEngine creates an espeak-ng backed engine and kicks off the
// asynchronous voice enumeration.
func NewEspeakEngine(cfg EspeakConfig, logger *slog.Logger) (*EspeakEngine, error) {
	if cfg.BinaryPath == "" {
		cfg.BinaryPath = "espeak-ng"
	}

	if _, err := exec.LookPath(cfg.BinaryPath); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrEspeakNotFound, cfg.BinaryPath)
	}

	e := &EspeakEngine{
		config: cfg,
		logger: logger,
	}

	go e.loadVoices()

	return e, nil
}

// Speak starts an espeak-ng process for the utterance. Any utterance
// already playing is killed first.
func (e *EspeakEngine) Speak(u Utterance) error {
	if u.Text == "" {
		return errors.New("empty text")
	}

	voice := strings.ToLower(u.Lang)
	if u.Voice != nil && u.Voice.Lang != "" {
		voice = strings.ToLower(u.Voice.Lang)
	}

	args := []string{
		"-v", voice,
		"-s", strconv.Itoa(int(espeakBaseRate * u.Rate)),
		"-p", strconv.Itoa(int(espeakBasePitch * u.Pitch)),
		"-a", strconv.Itoa(int(espeakBaseVolume * u.Volume)),
		u.Text,
	}

	e.mu.Lock()
	e.cancelLocked()

	cmd := exec.Command(e.config.BinaryPath, args...)
	if err := cmd.Start(); err != nil {
		e.mu.Unlock()
		return fmt.Errorf("%w: %v", ErrSpeakFailed, err)
	}

	e.cmd = cmd
	e.currentID = u.ID
	e.speaking = true
	e.mu.Unlock()

	e.logger.Debug("espeak started", "utterance_id", u.ID, "voice", voice, "text_length", len(u.Text))

	if u.OnStart != nil {
		u.OnStart()
	}

	go func() {
		err := cmd.Wait()

		e.mu.Lock()
		if e.currentID == u.ID {
			e.speaking = false
			e.cmd = nil
		}
		e.mu.Unlock()

		if err != nil {
			e.logger.Debug("espeak exited with error", "utterance_id", u.ID, "error", err)
		}
		if u.OnEnd != nil {
			u.OnEnd()
		}
	}()

	return nil
}

// Cancel kills the active espeak-ng process, if any. The end callback
// fires from the process waiter.
func (e *EspeakEngine) Cancel() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cancelLocked()
}

func (e *EspeakEngine) cancelLocked() {
	if e.cmd != nil && e.cmd.Process != nil {
		_ = e.cmd.Process.Kill()
	}
	e.cmd = nil
	e.currentID = ""
	e.speaking = false
}

// Speaking reports whether an espeak-ng process is playing.
func (e *EspeakEngine) Speaking() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.speaking
}

// Voices returns the enumerated voice list, empty until enumeration
// completes.
func (e *EspeakEngine) Voices() []Voice {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]Voice, len(e.voices))
	copy(out, e.voices)
	return out
}

// SetVoicesChanged registers or detaches the voice-list callback.
func (e *EspeakEngine) SetVoicesChanged(fn func()) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.voicesChanged = fn
}

// loadVoices enumerates English voices from espeak-ng and fires the
// change callback when the list lands.
func (e *EspeakEngine) loadVoices() {
	cmd := exec.Command(e.config.BinaryPath, "--voices=en")
	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	if err := cmd.Run(); err != nil {
		e.logger.Warn("voice enumeration failed", "error", err)
		return
	}

	voices := parseVoices(stdout.String())

	e.mu.Lock()
	e.voices = voices
	fn := e.voicesChanged
	e.mu.Unlock()

	e.logger.Debug("voices enumerated", "count", len(voices))

	if fn != nil {
		fn()
	}
}

// parseVoices reads the tabular output of `espeak-ng --voices`.
// Columns: Pty Language Age/Gender VoiceName File Other.
func parseVoices(output string) []Voice {
	lines := strings.Split(output, "\n")
	if len(lines) > 0 {
		lines = lines[1:] // header
	}

	var voices []Voice
	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) < 4 {
			continue
		}
		voices = append(voices, Voice{
			Name: fields[3],
			Lang: normalizeLang(fields[1]),
		})
	}
	return voices
}

// normalizeLang maps espeak tags like "en-us" to BCP 47 form "en-US".
func normalizeLang(tag string) string {
	parts := strings.SplitN(tag, "-", 2)
	if len(parts) == 1 {
		return strings.ToLower(parts[0])
	}
	return strings.ToLower(parts[0]) + "-" + strings.ToUpper(parts[1])
}
