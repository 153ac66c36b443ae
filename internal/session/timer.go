package session

// TimerState is the countdown state of a session.
type TimerState int

// Timer states. Completed and Expired are terminal.
const (
	TimerIdle TimerState = iota
	TimerRunning
	TimerCompleted
	TimerExpired
)

func (t TimerState) String() string {
	switch t {
	case TimerIdle:
		return "idle"
	case TimerRunning:
		return "running"
	case TimerCompleted:
		return "completed"
	case TimerExpired:
		return "expired"
	default:
		return "unknown"
	}
}

// Terminal reports whether the timer can no longer change.
func (t TimerState) Terminal() bool {
	return t == TimerCompleted || t == TimerExpired
}
