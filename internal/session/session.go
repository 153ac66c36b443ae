// Package session holds the state of one timed typing attempt.
//
// Session is a value: every event handler takes the current session and
// returns the next one together with the effects the caller must perform.
package session

import (
	"fmt"
	"time"

	"github.com/verte-zerg/sniptype/internal/model"
	"github.com/verte-zerg/sniptype/internal/stats"
)

// Effects are side effects requested by a state transition.
type Effects struct {
	// ScheduleTick asks for one tick a second from now.
	ScheduleTick bool
	// StopTimer reports that the countdown was cancelled by completion.
	StopTimer bool
	// Finished reports that the session just ended and final metrics are set.
	Finished bool
	// Keystroke reports that input was applied.
	Keystroke bool
}

// Session is one attempt at typing a snippet.
type Session struct {
	Snippet    model.Snippet
	Generation uint64
	Duration   time.Duration
	Remaining  int
	StartedAt  time.Time
	Timer      TimerState

	code  []rune
	typed []rune
	live  stats.LiveMetrics
	final *stats.FinalMetrics
}

// Start creates an idle session for snippet. Ticks carrying a different
// generation are ignored.
func Start(snippet model.Snippet, duration time.Duration, generation uint64) Session {
	return Session{
		Snippet:    snippet,
		Generation: generation,
		Duration:   duration,
		Remaining:  int(duration / time.Second),
		Timer:      TimerIdle,
		code:       []rune(snippet.Code),
	}
}

// Active reports whether input is accepted.
func (s Session) Active() bool {
	return len(s.code) > 0 && !s.Timer.Terminal()
}

// Code returns the snippet runes.
func (s Session) Code() []rune {
	return s.code
}

// Typed returns a copy of the accepted input.
func (s Session) Typed() []rune {
	return append([]rune(nil), s.typed...)
}

// Live returns the latest live metrics, frozen once the session ends.
func (s Session) Live() stats.LiveMetrics {
	return s.live
}

// Final returns final metrics once the session has ended.
func (s Session) Final() (stats.FinalMetrics, bool) {
	if s.final == nil {
		return stats.FinalMetrics{}, false
	}
	return *s.final, true
}

// Result returns the reportable result of a finished session.
func (s Session) Result() (stats.Result, bool) {
	final, ok := s.Final()
	if !ok {
		return stats.Result{}, false
	}
	outcome := stats.OutcomeCompleted
	if s.Timer == TimerExpired {
		outcome = stats.OutcomeExpired
	}
	return stats.Result{
		Snippet:  s.Snippet,
		Duration: s.Duration,
		Outcome:  outcome,
		Final:    final,
	}, true
}

// Input replaces the typed text with the accepted form of raw. The first
// non-empty input starts the countdown.
func (s Session) Input(raw []rune, now time.Time) (Session, Effects) {
	var eff Effects
	if !s.Active() {
		return s, eff
	}
	if s.Timer == TimerIdle && len(raw) > 0 {
		s.Timer = TimerRunning
		s.StartedAt = now
		s.Remaining = int(s.Duration / time.Second)
		eff.ScheduleTick = true
	}
	s.typed = Accept(s.code, raw)
	s.live = stats.Live(s.code, s.typed, s.StartedAt, now)
	eff.Keystroke = true
	if len(s.typed) == len(s.code) {
		s = s.finish(TimerCompleted, now)
		eff.ScheduleTick = false
		eff.StopTimer = true
		eff.Finished = true
	}
	return s, eff
}

// Type appends runes to the typed text.
func (s Session) Type(runes []rune, now time.Time) (Session, Effects) {
	raw := make([]rune, 0, len(s.typed)+len(runes))
	raw = append(raw, s.typed...)
	raw = append(raw, runes...)
	return s.Input(raw, now)
}

// Backspace removes the last typed rune.
func (s Session) Backspace(now time.Time) (Session, Effects) {
	if len(s.typed) == 0 {
		return s, Effects{}
	}
	return s.Input(s.Typed()[:len(s.typed)-1], now)
}

// Tick advances the countdown by one second.
func (s Session) Tick(generation uint64, now time.Time) (Session, Effects) {
	var eff Effects
	if generation != s.Generation || s.Timer != TimerRunning {
		return s, eff
	}
	s.Remaining--
	if s.Remaining > 0 {
		eff.ScheduleTick = true
		return s, eff
	}
	s.Remaining = 0
	s = s.finish(TimerExpired, now)
	eff.Finished = true
	return s, eff
}

// CountdownText is the countdown display.
func (s Session) CountdownText() string {
	if s.Timer == TimerExpired {
		return "Time Over ⏳"
	}
	return fmt.Sprintf("⏱ %ds left", s.Remaining)
}

func (s Session) finish(state TimerState, now time.Time) Session {
	s.Timer = state
	s.live = stats.Live(s.code, s.typed, s.StartedAt, now)
	final := stats.Final(s.code, s.typed, s.Duration)
	s.final = &final
	return s
}
