package domain

import (
	"time"
)

// Phase represents the timer state.
type Phase int

const (
	PhaseInactive Phase = iota
	PhaseFocus
	PhaseBreak
)

// Fixed session lengths in seconds. These are deliberately not
// configurable; only the actual elapsed time of a session varies.
const (
	FocusDuration = 1500 // 25 minutes
	BreakDuration = 300  // 5 minutes
)

// Label returns the phase name shown next to the countdown.
func (p Phase) Label() string {
	switch p {
	case PhaseFocus:
		return "FOCUS"
	case PhaseBreak:
		return "BREAK"
	default:
		return "READY"
	}
}

// FocusResult describes a focus phase that just ended, by stop, skip, or
// expiry. Elapsed is wall-clock time, not the countdown value.
type FocusResult struct {
	Start time.Time
	End   time.Time
}

// ElapsedSeconds returns the wall-clock length of the focus phase, clamped
// to a minimum of one second so every logged record has a positive
// duration.
func (r FocusResult) ElapsedSeconds() int {
	secs := int(r.End.Sub(r.Start).Seconds())
	if secs < 1 {
		secs = 1
	}
	return secs
}

// TimerSession is the single process-wide timer state machine:
// Inactive -> Focus -> Break -> Inactive. Remaining is the authoritative
// countdown; PhaseStart exists only to compute the actual elapsed duration
// when a focus phase ends.
type TimerSession struct {
	Phase      Phase
	Remaining  int
	PhaseStart time.Time

	now func() time.Time
}

// NewTimerSession creates an inactive timer showing the focus duration.
func NewTimerSession() *TimerSession {
	return &TimerSession{
		Phase:     PhaseInactive,
		Remaining: FocusDuration,
		now:       time.Now,
	}
}

// clock returns the current time, honoring a test override.
func (t *TimerSession) clock() time.Time {
	if t.now != nil {
		return t.now()
	}
	return time.Now()
}

// StartFocus begins a focus phase. Only valid from Inactive.
func (t *TimerSession) StartFocus() error {
	if t.Phase != PhaseInactive {
		return ErrSessionActive
	}
	t.Phase = PhaseFocus
	t.Remaining = FocusDuration
	t.PhaseStart = t.clock()
	return nil
}

// StartBreak begins a break phase. Only valid from Inactive.
func (t *TimerSession) StartBreak() error {
	if t.Phase != PhaseInactive {
		return ErrSessionActive
	}
	t.Phase = PhaseBreak
	t.Remaining = BreakDuration
	t.PhaseStart = t.clock()
	return nil
}

// Stop ends the active phase and returns to Inactive. A stopped focus
// phase yields a FocusResult to be logged; a stopped break does not.
func (t *TimerSession) Stop() (*FocusResult, error) {
	if t.Phase == PhaseInactive {
		return nil, ErrNoActiveSession
	}

	var result *FocusResult
	if t.Phase == PhaseFocus {
		result = &FocusResult{Start: t.PhaseStart, End: t.clock()}
	}
	t.Phase = PhaseInactive
	t.Remaining = FocusDuration
	return result, nil
}

// Skip advances the cycle: Focus -> Break (logging the focus phase),
// Break -> Inactive. Invalid when Inactive.
func (t *TimerSession) Skip() (*FocusResult, error) {
	if t.Phase == PhaseInactive {
		return nil, ErrNoActiveSession
	}
	return t.advance(), nil
}

// Tick consumes one elapsed second. When the countdown reaches zero the
// phase expires, which shares the transition and logging behavior of Skip;
// only the trigger differs. Returns a FocusResult when a focus phase ended
// on this tick, and reports whether any phase ended.
func (t *TimerSession) Tick() (*FocusResult, bool) {
	if t.Phase == PhaseInactive {
		return nil, false
	}
	t.Remaining--
	if t.Remaining > 0 {
		return nil, false
	}
	return t.advance(), true
}

// advance moves to the next phase of the cycle, producing a FocusResult
// when leaving Focus.
func (t *TimerSession) advance() *FocusResult {
	if t.Phase == PhaseFocus {
		result := &FocusResult{Start: t.PhaseStart, End: t.clock()}
		t.Phase = PhaseBreak
		t.Remaining = BreakDuration
		t.PhaseStart = t.clock()
		return result
	}
	// Leaving a break: back to idle, display resets to the focus length.
	t.Phase = PhaseInactive
	t.Remaining = FocusDuration
	return nil
}

// Active reports whether a focus or break phase is running.
func (t *TimerSession) Active() bool {
	return t.Phase != PhaseInactive
}
