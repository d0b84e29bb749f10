package timer

// StopwatchState represents the lifecycle of a stopwatch.
type StopwatchState string

const (
	StopwatchIdle    StopwatchState = "idle"
	StopwatchRunning StopwatchState = "running"
	StopwatchPaused  StopwatchState = "paused"
)

// Stopwatch counts elapsed ticks while running. Toggle it through Slot.ToggleStopwatch.
type Stopwatch struct {
	state   StopwatchState
	elapsed int
	onTick  func(elapsed int)
}

// NewStopwatch creates an idle stopwatch at zero.
func NewStopwatch(onTick func(elapsed int)) *Stopwatch {
	return &Stopwatch{state: StopwatchIdle, onTick: onTick}
}

// State returns the current lifecycle state.
func (stopwatch *Stopwatch) State() StopwatchState {
	return stopwatch.state
}

// Elapsed returns the ticks counted so far.
func (stopwatch *Stopwatch) Elapsed() int {
	return stopwatch.elapsed
}

func (stopwatch *Stopwatch) tick() bool {
	if stopwatch.state != StopwatchRunning {
		return false
	}
	stopwatch.elapsed++
	if stopwatch.onTick != nil {
		stopwatch.onTick(stopwatch.elapsed)
	}
	return false
}

func (stopwatch *Stopwatch) finish() {}

func (stopwatch *Stopwatch) preempt() {
	if stopwatch.state == StopwatchRunning {
		stopwatch.state = StopwatchPaused
	}
}
