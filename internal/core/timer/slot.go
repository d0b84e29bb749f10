package timer

import "time"

// Ticker is a periodic tick source.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// Config contains runtime options for the Slot.
type Config struct {
	TickInterval time.Duration
	NewTicker    func(interval time.Duration) Ticker
}

type holder interface {
	tick() bool
	finish()
	preempt()
}

// Slot is the single active-timer resource. Acquiring it for a new timer
// stops the tick source of whichever timer held it before.
//
// A Slot is not safe for concurrent use. It is owned by one event loop, which
// selects on C and calls Fire for every value received.
type Slot struct {
	options Config
	ticker  Ticker
	holder  holder
	lease   uint64
}

// NewSlot creates an idle Slot.
func NewSlot(options Config) *Slot {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	if options.NewTicker == nil {
		options.NewTicker = NewStdTicker
	}
	return &Slot{options: options}
}

// C returns the tick channel of the current holder. It is nil while the slot
// is idle, so a select on it blocks.
func (slot *Slot) C() <-chan time.Time {
	if slot.ticker == nil {
		return nil
	}
	return slot.ticker.C()
}

// Active reports whether a timer currently holds the slot.
func (slot *Slot) Active() bool {
	return slot.holder != nil
}

// Lease identifies the current acquisition. It changes on every acquire.
func (slot *Slot) Lease() uint64 {
	return slot.lease
}

// Release stops the current tick source, if any.
func (slot *Slot) Release() {
	previous := slot.holder
	slot.release()
	if previous != nil {
		previous.preempt()
	}
}

// Fire delivers one tick to the current holder. A countdown that reaches zero
// gives the slot back before its completion callback runs.
func (slot *Slot) Fire() {
	current := slot.holder
	if current == nil {
		return
	}
	if !current.tick() {
		return
	}
	if slot.holder == current {
		slot.release()
	}
	current.finish()
}

// StartCountdown acquires the slot for a new countdown from seconds.
func (slot *Slot) StartCountdown(seconds int, onTick func(remaining int), onComplete func()) *Countdown {
	countdown := NewCountdown(seconds, onTick, onComplete)
	countdown.state = CountdownRunning
	slot.acquire(countdown)
	return countdown
}

// ToggleStopwatch starts or resumes a paused or idle stopwatch, pre-empting any
// other timer, and pauses a running one.
func (slot *Slot) ToggleStopwatch(stopwatch *Stopwatch) StopwatchState {
	if stopwatch.state == StopwatchRunning {
		if slot.holder == stopwatch {
			slot.release()
		}
		stopwatch.state = StopwatchPaused
		return stopwatch.state
	}
	slot.acquire(stopwatch)
	stopwatch.state = StopwatchRunning
	return stopwatch.state
}

func (slot *Slot) acquire(next holder) {
	slot.Release()
	slot.lease++
	slot.holder = next
	slot.ticker = slot.options.NewTicker(slot.options.TickInterval)
}

func (slot *Slot) release() {
	if slot.ticker != nil {
		slot.ticker.Stop()
		slot.ticker = nil
	}
	slot.holder = nil
}

type stdTicker struct {
	ticker *time.Ticker
}

// NewStdTicker wraps time.Ticker.
func NewStdTicker(interval time.Duration) Ticker {
	return stdTicker{ticker: time.NewTicker(interval)}
}

func (ticker stdTicker) C() <-chan time.Time {
	return ticker.ticker.C
}

func (ticker stdTicker) Stop() {
	ticker.ticker.Stop()
}
