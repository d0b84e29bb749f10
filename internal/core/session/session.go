package session

import (
	"errors"
	"log/slog"
	"sync"

	"wordgym/internal/core/flow"
	"wordgym/internal/core/model"
	"wordgym/internal/core/timer"
	"wordgym/internal/core/view"
)

// ErrWordsUnavailable indicates the word asset failed to load, so no exercise can run.
var ErrWordsUnavailable = errors.New("words unavailable")

// Config contains runtime options for a Session.
type Config struct {
	Exercises model.ExerciseConfig
	Timer     timer.Config
	Logger    *slog.Logger
}

type requestKind int

const (
	requestSelect requestKind = iota
	requestPress
	requestConfigure
)

type request struct {
	kind      requestKind
	id        string
	control   view.Control
	exercises model.ExerciseConfig
}

// Session owns the active exercise flow and the shared timer slot. All flow
// transitions and timer ticks are handled on a single event loop goroutine.
type Session struct {
	mu       sync.Mutex
	config   Config
	logger   *slog.Logger
	words    flow.WordSource
	loadErr  error
	current  view.Model
	events   []chan view.Model
	requests chan request
	stopCh   chan struct{}
	doneCh   chan struct{}
	running  bool
	stopped  bool

	// owned by the event loop
	slot      *timer.Slot
	machine   flow.Machine
	stopwatch *timer.Stopwatch
}

// New creates a Session. A non-nil loadErr puts the session into the failed
// state: the failure message is shown and exercises cannot be selected.
func New(source flow.WordSource, loadErr error, config Config) *Session {
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	config.Exercises = config.Exercises.Normalized()

	session := &Session{
		config:   config,
		logger:   config.Logger,
		words:    source,
		loadErr:  loadErr,
		requests: make(chan request, 16),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
		slot:     timer.NewSlot(config.Timer),
	}
	if loadErr != nil {
		session.current = view.RenderLoadFailure(loadErr)
	} else {
		session.current = view.RenderMenu()
	}
	return session
}

// Subscribe registers a new observer channel. Observers always receive the
// latest model; an undelivered older model is replaced.
func (session *Session) Subscribe(buffer int) <-chan view.Model {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan view.Model, buffer)
	session.mu.Lock()
	session.events = append(session.events, ch)
	ch <- session.current
	session.mu.Unlock()
	return ch
}

// Current returns the most recently rendered model.
func (session *Session) Current() view.Model {
	session.mu.Lock()
	defer session.mu.Unlock()
	return session.current
}

// Start launches the event loop.
func (session *Session) Start() {
	session.mu.Lock()
	if session.running || session.stopped {
		session.mu.Unlock()
		return
	}
	session.running = true
	session.mu.Unlock()

	go session.run()
}

// Stop terminates the event loop, releases the timer and closes observers.
func (session *Session) Stop() {
	session.mu.Lock()
	if session.stopped {
		session.mu.Unlock()
		return
	}
	session.stopped = true
	wasRunning := session.running
	close(session.stopCh)
	session.mu.Unlock()

	if wasRunning {
		<-session.doneCh
	}

	session.mu.Lock()
	events := session.events
	session.events = nil
	session.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

// Select switches to the exercise with the given menu identifier, discarding
// the current flow and any running timer.
func (session *Session) Select(id string) {
	session.send(request{kind: requestSelect, id: id})
}

// Press activates a control of the current flow.
func (session *Session) Press(control view.Control) {
	session.send(request{kind: requestPress, control: control})
}

// Configure replaces the exercise settings. The running flow keeps its
// settings; the next selection uses the new ones.
func (session *Session) Configure(exercises model.ExerciseConfig) {
	session.send(request{kind: requestConfigure, exercises: exercises})
}

func (session *Session) send(req request) {
	select {
	case session.requests <- req:
	case <-session.stopCh:
	}
}

func (session *Session) run() {
	defer close(session.doneCh)
	defer session.slot.Release()

	for {
		select {
		case <-session.stopCh:
			return
		case req := <-session.requests:
			session.handle(req)
		case <-session.slot.C():
			session.slot.Fire()
		}
	}
}

func (session *Session) handle(req request) {
	switch req.kind {
	case requestSelect:
		session.selectExercise(req.id)
	case requestPress:
		session.press(req.control)
	case requestConfigure:
		session.config.Exercises = req.exercises.Normalized()
		session.logger.Debug("exercise settings updated")
	}
}

func (session *Session) selectExercise(id string) {
	if session.loadErr != nil {
		session.logger.Warn("exercise selection refused", "exercise", id, "error", ErrWordsUnavailable)
		return
	}
	kind, ok := flow.ParseKind(id)
	if !ok {
		session.logger.Warn("unknown exercise", "exercise", id)
		return
	}

	session.slot.Release()
	session.stopwatch = nil

	machine, err := flow.New(kind, session.words, session.config.Exercises)
	if err != nil {
		session.logger.Error("create exercise", "exercise", id, "error", err)
		return
	}
	session.machine = machine
	session.logger.Debug("exercise selected", "exercise", id)
	session.publish()
}

func (session *Session) press(control view.Control) {
	if session.machine == nil {
		return
	}
	action, ok := actionFor(control)
	if !ok {
		session.logger.Warn("unknown control", "control", control)
		return
	}
	session.execute(session.machine, session.machine.Apply(action))
	session.publish()
}

func (session *Session) execute(machine flow.Machine, command flow.Command) {
	switch command.Type {
	case flow.CommandCountdown:
		state := machine.State()
		session.logger.Debug("phase started",
			"exercise", state.Kind,
			"round", state.Round,
			"phase", state.Phase,
			"seconds", command.Seconds,
		)
		session.slot.StartCountdown(command.Seconds, func(remaining int) {
			machine.SetTimer(remaining)
			session.publish()
		}, func() {
			session.phaseDone(machine)
		})
	case flow.CommandToggleStopwatch:
		if session.stopwatch == nil {
			session.stopwatch = timer.NewStopwatch(func(elapsed int) {
				machine.SetTimer(elapsed)
				session.publish()
			})
		}
		state := session.slot.ToggleStopwatch(session.stopwatch)
		session.logger.Debug("stopwatch toggled", "state", state, "elapsed", session.stopwatch.Elapsed())
	case flow.CommandResetStopwatch:
		session.slot.Release()
		session.stopwatch = nil
	}
}

func (session *Session) phaseDone(machine flow.Machine) {
	if machine != session.machine {
		return
	}
	session.execute(machine, machine.Apply(flow.ActionPhaseDone))
	if state := machine.State(); state.Phase == flow.PhaseDone {
		session.logger.Info("exercise complete", "exercise", state.Kind, "rounds", state.Total)
	}
	session.publish()
}

func (session *Session) publish() {
	rendered := session.render()

	session.mu.Lock()
	defer session.mu.Unlock()
	session.current = rendered
	for _, ch := range session.events {
		deliverLatest(ch, rendered)
	}
}

func (session *Session) render() view.Model {
	if session.loadErr != nil {
		return view.RenderLoadFailure(session.loadErr)
	}
	if session.machine == nil {
		return view.RenderMenu()
	}
	return view.Render(session.machine.State())
}

func deliverLatest(ch chan view.Model, model view.Model) {
	select {
	case ch <- model:
		return
	default:
	}
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- model:
	default:
	}
}

func actionFor(control view.Control) (flow.Action, bool) {
	switch control {
	case view.ControlStart:
		return flow.ActionStart, true
	case view.ControlToggle:
		return flow.ActionToggle, true
	case view.ControlNewTopic:
		return flow.ActionNewTopic, true
	default:
		return "", false
	}
}
