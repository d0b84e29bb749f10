package view

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordgym/internal/core/flow"
)

func TestMenuHasThreeExercises(t *testing.T) {
	menu := Menu()
	require.Len(t, menu, 3)
	for index, entry := range menu {
		kind, ok := flow.ParseKind(entry.ID)
		require.True(t, ok)
		assert.Equal(t, flow.Kinds()[index], kind)
		assert.NotEmpty(t, entry.Label)
	}
}

func TestRenderSimilarity(t *testing.T) {
	state := flow.State{
		Kind: flow.KindSimilarity, Round: 3, Total: 20,
		WordA: "cup", WordB: "lamp", Phase: flow.PhaseReady, Timer: 30, Length: 30,
	}

	ready := Render(state)
	assert.Equal(t, "Exercise 1: Similarities & differences (3/20)", ready.Title)
	assert.Equal(t, "cup vs lamp", ready.Words)
	assert.Equal(t, "00:30", ready.Timer)
	require.Len(t, ready.Buttons, 1)
	assert.Equal(t, ControlStart, ready.Buttons[0].Control)

	state.Phase = flow.PhaseFirst
	state.Timer = 12
	first := Render(state)
	assert.Contains(t, first.Instruction, "in common for 30 seconds")
	assert.Equal(t, "00:12", first.Timer)
	assert.Empty(t, first.Buttons)

	state.Phase = flow.PhaseSecond
	assert.Contains(t, Render(state).Instruction, "differ")
}

func TestRenderAdvocacySwapsOrder(t *testing.T) {
	state := flow.State{
		Kind: flow.KindAdvocacy, Round: 1, Total: 5,
		WordA: "cup", WordB: "lamp", Phase: flow.PhaseReady, Timer: 60, Length: 60,
	}

	assert.Equal(t, "cup vs lamp", Render(state).Words)

	state.Phase = flow.PhaseFirst
	first := Render(state)
	assert.Equal(t, "cup > lamp", first.Words)
	assert.Equal(t, "Argue why [cup] is better than [lamp] for 1 minute!", first.Instruction)
	assert.Equal(t, "01:00", first.Timer)

	state.Phase = flow.PhaseSecond
	second := Render(state)
	assert.Equal(t, "lamp > cup", second.Words)
	assert.Contains(t, second.Instruction, "[lamp] is better than [cup]")
}

func TestRenderCompletion(t *testing.T) {
	tests := []struct {
		name  string
		state flow.State
		title string
	}{
		{name: "similarity", state: flow.State{Kind: flow.KindSimilarity, Total: 20, Round: 20, Phase: flow.PhaseDone}, title: "Exercise 1 complete! (20 rounds)"},
		{name: "advocacy", state: flow.State{Kind: flow.KindAdvocacy, Total: 5, Round: 5, Phase: flow.PhaseDone}, title: "Exercise 2 complete! (5 sets)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model := Render(tt.state)
			assert.Equal(t, tt.title, model.Title)
			assert.True(t, model.Finished)
			assert.NotEmpty(t, model.Message)
			assert.Empty(t, model.Buttons)
			assert.Empty(t, model.Timer)
		})
	}
}

func TestRenderPremiseToggleLabels(t *testing.T) {
	state := flow.State{Kind: flow.KindPremise, WordA: "cup", WordB: "run", Phase: flow.PhaseOpen}

	idle := Render(state)
	assert.Equal(t, `What if "cup" were "run"?`, idle.Words)
	require.Len(t, idle.Buttons, 2)
	assert.Equal(t, "Start", idle.Buttons[0].Label)
	assert.Equal(t, ControlNewTopic, idle.Buttons[1].Control)

	state.Running, state.Started = true, true
	assert.Equal(t, "Stop", Render(state).Buttons[0].Label)

	state.Running = false
	state.Timer = 75
	paused := Render(state)
	assert.Equal(t, "Resume", paused.Buttons[0].Label)
	assert.Equal(t, "01:15", paused.Timer)
}

func TestRenderLoadFailure(t *testing.T) {
	model := RenderLoadFailure(errors.New("boom"))
	assert.True(t, model.Failed)
	assert.Contains(t, model.Message, "boom")
	assert.Empty(t, model.Buttons)
}

func TestRenderUnknownKindFallsBackToMenu(t *testing.T) {
	assert.Equal(t, RenderMenu(), Render(flow.State{}))
}

func TestFormatSeconds(t *testing.T) {
	assert.Equal(t, "00:00", FormatSeconds(-3))
	assert.Equal(t, "00:59", FormatSeconds(59))
	assert.Equal(t, "02:05", FormatSeconds(125))
}

func TestSpokenDuration(t *testing.T) {
	assert.Equal(t, "1 second", spokenDuration(1))
	assert.Equal(t, "45 seconds", spokenDuration(45))
	assert.Equal(t, "1 minute", spokenDuration(60))
	assert.Equal(t, "2 minutes", spokenDuration(120))
	assert.Equal(t, "90 seconds", spokenDuration(90))
}
