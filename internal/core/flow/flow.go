package flow

import (
	"fmt"

	"wordgym/internal/core/model"
	"wordgym/internal/core/words"
)

// Kind identifies an exercise on the menu.
type Kind string

const (
	KindSimilarity Kind = "1"
	KindAdvocacy   Kind = "2"
	KindPremise    Kind = "3"
)

// Kinds lists the exercises in menu order.
func Kinds() []Kind {
	return []Kind{KindSimilarity, KindAdvocacy, KindPremise}
}

// ParseKind maps a menu identifier to a Kind.
func ParseKind(id string) (Kind, bool) {
	for _, kind := range Kinds() {
		if string(kind) == id {
			return kind, true
		}
	}
	return "", false
}

// Phase is the position of a flow inside its current round.
type Phase string

const (
	PhaseReady  Phase = "ready"
	PhaseFirst  Phase = "first"
	PhaseSecond Phase = "second"
	PhaseDone   Phase = "done"
	// PhaseOpen is the single self-timed phase of the premise exercise.
	PhaseOpen Phase = "open"
)

// Action is a user or timer input to a flow.
type Action string

const (
	ActionStart     Action = "start"
	ActionPhaseDone Action = "phase_done"
	ActionToggle    Action = "toggle"
	ActionNewTopic  Action = "new_topic"
)

// CommandType tells the session what to do with the shared timer.
type CommandType string

const (
	CommandNone            CommandType = "none"
	CommandCountdown       CommandType = "countdown"
	CommandToggleStopwatch CommandType = "toggle_stopwatch"
	CommandResetStopwatch  CommandType = "reset_stopwatch"
)

// Command is the timer side effect of a transition.
type Command struct {
	Type    CommandType
	Seconds int
}

var none = Command{Type: CommandNone}

// State is a snapshot of a flow.
type State struct {
	Kind  Kind
	Round int
	Total int
	WordA string
	WordB string
	Phase Phase
	// Timer is the remaining seconds for countdown phases and the elapsed
	// seconds for the premise stopwatch.
	Timer int
	// Length is the full duration in seconds of the current or upcoming countdown.
	Length  int
	Running bool
	Started bool
}

// WordSource draws random words.
type WordSource interface {
	RandomWord(category words.Category) string
	RandomCategory(choices ...words.Category) words.Category
}

// Machine is an exercise state machine. Apply is its only transition function.
type Machine interface {
	State() State
	Apply(action Action) Command
	SetTimer(value int)
}

// New creates the machine for kind.
func New(kind Kind, source WordSource, config model.ExerciseConfig) (Machine, error) {
	config = config.Normalized()
	switch kind {
	case KindSimilarity:
		return newPhased(kind, config.Similarity, source), nil
	case KindAdvocacy:
		return newPhased(kind, config.Advocacy, source), nil
	case KindPremise:
		return newPremise(source), nil
	default:
		return nil, fmt.Errorf("unknown exercise %q", kind)
	}
}
