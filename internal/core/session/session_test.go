package session

import (
	"errors"
	"io"
	"log/slog"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordgym/internal/core/flow"
	"wordgym/internal/core/model"
	"wordgym/internal/core/timer"
	"wordgym/internal/core/view"
	"wordgym/internal/core/words"
)

type manualTicker struct {
	ch      chan time.Time
	stopped bool
}

func (ticker *manualTicker) C() <-chan time.Time { return ticker.ch }
func (ticker *manualTicker) Stop()               { ticker.stopped = true }

type manualClock struct {
	tickers []*manualTicker
}

func (clock *manualClock) newTicker(time.Duration) timer.Ticker {
	ticker := &manualTicker{ch: make(chan time.Time, 1)}
	clock.tickers = append(clock.tickers, ticker)
	return ticker
}

func testBank() *words.Bank {
	return words.New(map[words.Category][]string{
		words.Nouns:      {"cup", "lamp", "tree", "river"},
		words.Verbs:      {"run", "sing"},
		words.Adjectives: {"red", "quiet"},
	}, rand.New(rand.NewSource(5)))
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newManualSession returns a session whose loop is never started; tests drive
// requests and ticks directly on the calling goroutine.
func newManualSession(t *testing.T, loadErr error) (*Session, *manualClock) {
	t.Helper()
	clock := &manualClock{}
	session := New(testBank(), loadErr, Config{
		Exercises: model.DefaultExerciseConfig(),
		Timer:     timer.Config{NewTicker: clock.newTicker},
		Logger:    quietLogger(),
	})
	return session, clock
}

func ticks(session *Session, count int) {
	for i := 0; i < count; i++ {
		session.slot.Fire()
	}
}

func TestInitialModelIsMenu(t *testing.T) {
	session, _ := newManualSession(t, nil)
	assert.Equal(t, view.RenderMenu(), session.Current())
}

func TestSimilarityRoundTiming(t *testing.T) {
	session, _ := newManualSession(t, nil)

	session.selectExercise("1")
	model := session.Current()
	require.Equal(t, "Exercise 1: Similarities & differences (1/20)", model.Title)
	require.False(t, session.slot.Active())

	session.press(view.ControlStart)
	require.True(t, session.slot.Active())
	assert.Contains(t, session.Current().Instruction, "in common")
	assert.Equal(t, "00:30", session.Current().Timer)

	ticks(session, 29)
	assert.Equal(t, "00:01", session.Current().Timer)
	ticks(session, 1)
	assert.Contains(t, session.Current().Instruction, "differ")
	assert.Equal(t, "00:30", session.Current().Timer)

	ticks(session, 30)
	assert.Contains(t, session.Current().Title, "(2/20)")
	assert.False(t, session.slot.Active())
	require.Len(t, session.Current().Buttons, 1)
}

func TestSimilarityCompletesAfterTwentyRounds(t *testing.T) {
	session, clock := newManualSession(t, nil)
	session.selectExercise("1")

	for round := 0; round < 20; round++ {
		session.press(view.ControlStart)
		ticks(session, 60)
	}

	model := session.Current()
	assert.True(t, model.Finished)
	assert.Equal(t, "Exercise 1 complete! (20 rounds)", model.Title)
	assert.False(t, session.slot.Active())
	assert.Len(t, clock.tickers, 40)

	session.press(view.ControlStart)
	assert.False(t, session.slot.Active())
	assert.Len(t, clock.tickers, 40)
}

func TestAdvocacySetSwapsAndResets(t *testing.T) {
	session, clock := newManualSession(t, nil)
	session.selectExercise("2")

	ready := session.machine.State()
	session.press(view.ControlStart)
	assert.Equal(t, ready.WordA+" > "+ready.WordB, session.Current().Words)
	assert.Equal(t, "01:00", session.Current().Timer)

	ticks(session, 60)
	assert.Equal(t, ready.WordB+" > "+ready.WordA, session.Current().Words)
	assert.Equal(t, "01:00", session.Current().Timer)

	ticks(session, 60)
	assert.Contains(t, session.Current().Title, "(2/5)")

	for set := 2; set <= 5; set++ {
		session.press(view.ControlStart)
		ticks(session, 120)
	}
	assert.True(t, session.Current().Finished)
	assert.Len(t, clock.tickers, 10)
}

func TestSelectingAnotherExerciseCancelsTimer(t *testing.T) {
	session, clock := newManualSession(t, nil)
	session.selectExercise("1")
	session.press(view.ControlStart)
	ticks(session, 5)

	session.selectExercise("2")
	require.True(t, clock.tickers[0].stopped)
	require.False(t, session.slot.Active())

	before := session.Current()
	ticks(session, 100)
	assert.Equal(t, before, session.Current())
	assert.Contains(t, before.Title, "Exercise 2")
}

func TestPremiseStopwatch(t *testing.T) {
	session, clock := newManualSession(t, nil)
	session.selectExercise("3")

	model := session.Current()
	assert.Equal(t, "00:00", model.Timer)
	assert.Equal(t, "Start", model.Buttons[0].Label)

	session.press(view.ControlToggle)
	assert.Equal(t, "Stop", session.Current().Buttons[0].Label)
	ticks(session, 7)
	session.press(view.ControlToggle)
	assert.Equal(t, "Resume", session.Current().Buttons[0].Label)
	assert.Equal(t, "00:07", session.Current().Timer)
	assert.True(t, clock.tickers[0].stopped)

	ticks(session, 3)
	assert.Equal(t, "00:07", session.Current().Timer)

	session.press(view.ControlToggle)
	ticks(session, 2)
	assert.Equal(t, "00:09", session.Current().Timer)

	session.press(view.ControlNewTopic)
	model = session.Current()
	assert.Equal(t, "00:00", model.Timer)
	assert.Equal(t, "Start", model.Buttons[0].Label)
	assert.False(t, session.slot.Active())

	session.press(view.ControlToggle)
	ticks(session, 1)
	assert.Equal(t, "00:01", session.Current().Timer)
}

func TestPressWithoutExerciseIsIgnored(t *testing.T) {
	session, _ := newManualSession(t, nil)
	session.press(view.ControlStart)
	session.press(view.Control("bogus"))
	assert.Equal(t, view.RenderMenu(), session.Current())
	assert.False(t, session.slot.Active())
}

func TestUnknownSelectionIsIgnored(t *testing.T) {
	session, _ := newManualSession(t, nil)
	session.selectExercise("1")
	before := session.Current()

	session.selectExercise("7")
	assert.Equal(t, before, session.Current())
}

func TestLoadFailureBlocksExercises(t *testing.T) {
	session, _ := newManualSession(t, errors.New("missing words.json"))

	model := session.Current()
	require.True(t, model.Failed)

	for _, kind := range flow.Kinds() {
		session.selectExercise(string(kind))
		assert.True(t, session.Current().Failed)
		assert.Nil(t, session.machine)
	}
}

func TestSubscribeReceivesCurrentAndLatest(t *testing.T) {
	session, _ := newManualSession(t, nil)
	events := session.Subscribe(1)

	assert.Equal(t, view.RenderMenu(), <-events)

	session.selectExercise("1")
	session.press(view.ControlStart)
	ticks(session, 3)

	latest := <-events
	assert.Equal(t, "00:27", latest.Timer)
}

func TestRunLoopCompletesExercise(t *testing.T) {
	config := model.DefaultExerciseConfig()
	config.Similarity = model.PhasedConfig{Rounds: 2, FirstPhase: time.Second, SecondPhase: time.Second}

	session := New(testBank(), nil, Config{
		Exercises: config,
		Timer:     timer.Config{TickInterval: time.Millisecond},
		Logger:    quietLogger(),
	})
	events := session.Subscribe(4)
	session.Start()
	defer session.Stop()

	session.Select("1")
	deadline := time.After(5 * time.Second)
	round := 0
	for {
		select {
		case model := <-events:
			if model.Finished {
				assert.Equal(t, "Exercise 1 complete! (2 rounds)", model.Title)
				return
			}
			if len(model.Buttons) == 1 && model.Buttons[0].Control == view.ControlStart {
				round++
				require.LessOrEqual(t, round, 2)
				session.Press(view.ControlStart)
			}
		case <-deadline:
			t.Fatal("exercise did not complete")
		}
	}
}

func TestStopClosesSubscribers(t *testing.T) {
	session, _ := newManualSession(t, nil)
	events := session.Subscribe(1)
	session.Start()
	session.Stop()
	session.Stop()

	<-events
	_, open := <-events
	assert.False(t, open)

	session.Select("1")
}

func TestConfigureAppliesToNextSelection(t *testing.T) {
	session, _ := newManualSession(t, nil)
	session.selectExercise("2")

	config := model.DefaultExerciseConfig()
	config.Advocacy.Rounds = 2
	session.handle(request{kind: requestConfigure, exercises: config})
	assert.Contains(t, session.Current().Title, "(1/5)")

	session.selectExercise("2")
	assert.Contains(t, session.Current().Title, "(1/2)")
}
