package view

import (
	"fmt"

	"wordgym/internal/core/flow"
)

// Control identifies a button in the content region.
type Control string

const (
	ControlStart    Control = "start"
	ControlToggle   Control = "toggle"
	ControlNewTopic Control = "new_topic"
)

// Button is a visible control with its label.
type Button struct {
	Control Control
	Label   string
	// Primary marks the control bound to the main key in the terminal UI.
	Primary bool
}

// Model is everything a front end needs to draw the content region.
type Model struct {
	Kind        flow.Kind
	Title       string
	Words       string
	Instruction string
	Timer       string
	Message     string
	Buttons     []Button
	// Finished is set once a flow has reached its completion message.
	Finished bool
	// Failed is set when the word asset could not be loaded.
	Failed bool
}

// MenuEntry is one choice in the selector region.
type MenuEntry struct {
	ID    string
	Label string
}

// Menu returns the three exercise choices.
func Menu() []MenuEntry {
	return []MenuEntry{
		{ID: string(flow.KindSimilarity), Label: "1. Similarities & differences"},
		{ID: string(flow.KindAdvocacy), Label: "2. A is better than B"},
		{ID: string(flow.KindPremise), Label: "3. What if A were B?"},
	}
}

// RenderMenu returns the content shown before any exercise is chosen.
func RenderMenu() Model {
	return Model{
		Title:       "Creativity training",
		Instruction: "Choose an exercise to begin.",
	}
}

// RenderLoadFailure returns the static message shown when no words are available.
func RenderLoadFailure(err error) Model {
	message := "Failed to load the word data. Check the word file."
	if err != nil {
		message = fmt.Sprintf("%s (%v)", message, err)
	}
	return Model{
		Title:   "Word data unavailable",
		Message: message,
		Failed:  true,
	}
}

// Render maps a flow snapshot to its content region.
func Render(state flow.State) Model {
	switch state.Kind {
	case flow.KindSimilarity:
		return renderSimilarity(state)
	case flow.KindAdvocacy:
		return renderAdvocacy(state)
	case flow.KindPremise:
		return renderPremise(state)
	default:
		return RenderMenu()
	}
}

func renderSimilarity(state flow.State) Model {
	if state.Phase == flow.PhaseDone {
		return Model{
			Kind:     state.Kind,
			Title:    fmt.Sprintf("Exercise 1 complete! (%d rounds)", state.Total),
			Message:  "Well done. Your creativity just levelled up!",
			Finished: true,
		}
	}

	model := Model{
		Kind:  state.Kind,
		Title: fmt.Sprintf("Exercise 1: Similarities & differences (%d/%d)", state.Round, state.Total),
		Words: fmt.Sprintf("%s vs %s", state.WordA, state.WordB),
		Timer: FormatSeconds(state.Timer),
	}
	switch state.Phase {
	case flow.PhaseFirst:
		model.Instruction = fmt.Sprintf("Name what the two words have in common for %s!", spokenDuration(state.Length))
	case flow.PhaseSecond:
		model.Instruction = fmt.Sprintf("Name how the two words differ for %s!", spokenDuration(state.Length))
	default:
		model.Instruction = "Press Start below when you are ready."
		model.Buttons = []Button{{Control: ControlStart, Label: "Start", Primary: true}}
	}
	return model
}

func renderAdvocacy(state flow.State) Model {
	if state.Phase == flow.PhaseDone {
		return Model{
			Kind:     state.Kind,
			Title:    fmt.Sprintf("Exercise 2 complete! (%d sets)", state.Total),
			Message:  "Well done. Now you can make the case for anything!",
			Finished: true,
		}
	}

	model := Model{
		Kind:  state.Kind,
		Title: fmt.Sprintf("Exercise 2: A vs B (%d/%d)", state.Round, state.Total),
		Timer: FormatSeconds(state.Timer),
	}
	switch state.Phase {
	case flow.PhaseFirst:
		model.Words = fmt.Sprintf("%s > %s", state.WordA, state.WordB)
		model.Instruction = advocacyInstruction(state.WordA, state.WordB, state.Length)
	case flow.PhaseSecond:
		model.Words = fmt.Sprintf("%s > %s", state.WordB, state.WordA)
		model.Instruction = advocacyInstruction(state.WordB, state.WordA, state.Length)
	default:
		model.Words = fmt.Sprintf("%s vs %s", state.WordA, state.WordB)
		model.Instruction = "Ready?"
		model.Buttons = []Button{{Control: ControlStart, Label: "Start", Primary: true}}
	}
	return model
}

func advocacyInstruction(winner, loser string, seconds int) string {
	return fmt.Sprintf("Argue why [%s] is better than [%s] for %s!", winner, loser, spokenDuration(seconds))
}

func renderPremise(state flow.State) Model {
	premise := fmt.Sprintf("What if %q were %q?", state.WordA, state.WordB)
	toggle := "Start"
	switch {
	case state.Running:
		toggle = "Stop"
	case state.Started:
		toggle = "Resume"
	}
	return Model{
		Kind:        state.Kind,
		Title:       `Exercise 3: What if "A" were "B"?`,
		Words:       premise,
		Instruction: "Keep the story going, one idea leading to the next. The timer is only for timing yourself.",
		Timer:       FormatSeconds(state.Timer),
		Buttons: []Button{
			{Control: ControlToggle, Label: toggle, Primary: true},
			{Control: ControlNewTopic, Label: "New topic"},
		},
	}
}

// FormatSeconds renders a second count as mm:ss.
func FormatSeconds(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

func spokenDuration(seconds int) string {
	switch {
	case seconds == 60:
		return "1 minute"
	case seconds > 60 && seconds%60 == 0:
		return fmt.Sprintf("%d minutes", seconds/60)
	case seconds == 1:
		return "1 second"
	default:
		return fmt.Sprintf("%d seconds", seconds)
	}
}
