package flow

import "wordgym/internal/core/words"

// premise presents "What if A were B?" with a self-timed stopwatch. It never
// terminates; a new topic redraws both words.
type premise struct {
	source WordSource
	state  State
}

func newPremise(source WordSource) *premise {
	machine := &premise{
		source: source,
		state: State{
			Kind:  KindPremise,
			Round: 1,
			Total: 1,
			Phase: PhaseOpen,
		},
	}
	machine.draw()
	return machine
}

func (machine *premise) State() State {
	return machine.state
}

func (machine *premise) SetTimer(value int) {
	machine.state.Timer = value
}

func (machine *premise) Apply(action Action) Command {
	switch action {
	case ActionToggle:
		machine.state.Running = !machine.state.Running
		machine.state.Started = true
		return Command{Type: CommandToggleStopwatch}
	case ActionNewTopic:
		machine.draw()
		return Command{Type: CommandResetStopwatch}
	default:
		return none
	}
}

func (machine *premise) draw() {
	machine.state.WordA = machine.source.RandomWord(words.Nouns)
	category := machine.source.RandomCategory(words.Categories()...)
	machine.state.WordB = machine.source.RandomWord(category)
	machine.state.Timer = 0
	machine.state.Running = false
	machine.state.Started = false
}
