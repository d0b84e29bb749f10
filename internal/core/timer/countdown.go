package timer

// CountdownState represents the lifecycle of a countdown.
type CountdownState string

const (
	CountdownIdle      CountdownState = "idle"
	CountdownRunning   CountdownState = "running"
	CountdownCompleted CountdownState = "completed"
	// CountdownPreempted marks a countdown whose slot was taken by another timer.
	CountdownPreempted CountdownState = "preempted"
)

// Countdown counts down whole ticks from a starting value.
type Countdown struct {
	state      CountdownState
	remaining  int
	onTick     func(remaining int)
	onComplete func()
}

// NewCountdown creates an idle countdown. Use Slot.StartCountdown to run it.
func NewCountdown(seconds int, onTick func(remaining int), onComplete func()) *Countdown {
	if seconds < 0 {
		seconds = 0
	}
	return &Countdown{
		state:      CountdownIdle,
		remaining:  seconds,
		onTick:     onTick,
		onComplete: onComplete,
	}
}

// State returns the current lifecycle state.
func (countdown *Countdown) State() CountdownState {
	return countdown.state
}

// Remaining returns the ticks left.
func (countdown *Countdown) Remaining() int {
	return countdown.remaining
}

func (countdown *Countdown) tick() bool {
	if countdown.state != CountdownRunning {
		return false
	}
	if countdown.remaining > 0 {
		countdown.remaining--
	}
	if countdown.onTick != nil {
		countdown.onTick(countdown.remaining)
	}
	if countdown.remaining > 0 {
		return false
	}
	countdown.state = CountdownCompleted
	return true
}

func (countdown *Countdown) finish() {
	if countdown.onComplete != nil {
		countdown.onComplete()
	}
}

func (countdown *Countdown) preempt() {
	if countdown.state == CountdownRunning {
		countdown.state = CountdownPreempted
	}
}
