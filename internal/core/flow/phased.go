package flow

import (
	"time"

	"wordgym/internal/core/model"
	"wordgym/internal/core/words"
)

// phased runs a fixed number of rounds. Each round draws two nouns and waits
// for a start before running two countdown phases back to back.
type phased struct {
	config model.PhasedConfig
	source WordSource
	state  State
}

func newPhased(kind Kind, config model.PhasedConfig, source WordSource) *phased {
	machine := &phased{
		config: config,
		source: source,
		state: State{
			Kind:  kind,
			Round: 1,
			Total: config.Rounds,
		},
	}
	machine.beginRound()
	return machine
}

func (machine *phased) State() State {
	return machine.state
}

func (machine *phased) SetTimer(value int) {
	if machine.state.Phase == PhaseFirst || machine.state.Phase == PhaseSecond {
		machine.state.Timer = value
	}
}

func (machine *phased) Apply(action Action) Command {
	switch {
	case machine.state.Phase == PhaseReady && action == ActionStart:
		return machine.enter(PhaseFirst, machine.config.FirstPhase)
	case machine.state.Phase == PhaseFirst && action == ActionPhaseDone:
		return machine.enter(PhaseSecond, machine.config.SecondPhase)
	case machine.state.Phase == PhaseSecond && action == ActionPhaseDone:
		machine.state.Round++
		machine.beginRound()
		return none
	default:
		return none
	}
}

func (machine *phased) enter(phase Phase, duration time.Duration) Command {
	seconds := wholeSeconds(duration)
	machine.state.Phase = phase
	machine.state.Timer = seconds
	machine.state.Length = seconds
	machine.state.Running = true
	machine.state.Started = true
	return Command{Type: CommandCountdown, Seconds: seconds}
}

func (machine *phased) beginRound() {
	machine.state.Running = false
	machine.state.Started = false
	if machine.state.Round > machine.state.Total {
		machine.state.Round = machine.state.Total
		machine.state.Phase = PhaseDone
		machine.state.WordA = ""
		machine.state.WordB = ""
		machine.state.Timer = 0
		machine.state.Length = 0
		return
	}
	machine.state.Phase = PhaseReady
	machine.state.WordA = machine.source.RandomWord(words.Nouns)
	machine.state.WordB = machine.source.RandomWord(words.Nouns)
	machine.state.Timer = wholeSeconds(machine.config.FirstPhase)
	machine.state.Length = machine.state.Timer
}

func wholeSeconds(duration time.Duration) int {
	return int(duration / time.Second)
}
