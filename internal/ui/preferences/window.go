package preferences

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"wordgym/internal/core/model"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Window handles the preferences UI.
type Window struct {
	window       fyne.Window
	settings     model.Settings
	onSave       func(model.Settings)
	similarity   phasedEntries
	advocacy     phasedEntries
	wordsPath    *widget.Entry
	saveButton   *widget.Button
	cancelButton *widget.Button
}

type phasedEntries struct {
	rounds *widget.Entry
	first  *widget.Entry
	second *widget.Entry
}

func newPhasedEntries() phasedEntries {
	return phasedEntries{
		rounds: widget.NewEntry(),
		first:  widget.NewEntry(),
		second: widget.NewEntry(),
	}
}

func (entries phasedEntries) set(config model.PhasedConfig) {
	entries.rounds.SetText(fmt.Sprintf("%d", config.Rounds))
	entries.first.SetText(fmt.Sprintf("%d", int(config.FirstPhase.Seconds())))
	entries.second.SetText(fmt.Sprintf("%d", int(config.SecondPhase.Seconds())))
}

func (entries phasedEntries) apply(config model.PhasedConfig) model.PhasedConfig {
	if rounds, ok := parsePositiveInt(entries.rounds.Text); ok {
		config.Rounds = rounds
	}
	if seconds, ok := parsePositiveInt(entries.first.Text); ok {
		config.FirstPhase = time.Duration(seconds) * time.Second
	}
	if seconds, ok := parsePositiveInt(entries.second.Text); ok {
		config.SecondPhase = time.Duration(seconds) * time.Second
	}
	return config
}

func (entries phasedEntries) rows(name, unit string) []fyne.CanvasObject {
	return []fyne.CanvasObject{
		widget.NewLabelWithStyle(name, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel(unit+" per session"), entries.rounds),
		container.NewHBox(widget.NewLabel("First phase"), entries.first, widget.NewLabel("sec")),
		container.NewHBox(widget.NewLabel("Second phase"), entries.second, widget.NewLabel("sec")),
	}
}

// New creates a preferences window.
func New(app fyne.App, settings model.Settings, onSave func(model.Settings)) *Window {
	window := app.NewWindow("wordgym Settings")

	prefs := &Window{
		window:     window,
		settings:   settings,
		onSave:     onSave,
		similarity: newPhasedEntries(),
		advocacy:   newPhasedEntries(),
		wordsPath:  widget.NewEntry(),
	}
	prefs.wordsPath.SetPlaceHolder("built-in word list")
	prefs.UpdateSettings(settings)

	rows := prefs.similarity.rows("Similarities & differences", "Rounds")
	rows = append(rows, prefs.advocacy.rows("A is better than B", "Sets")...)
	rows = append(rows,
		widget.NewLabelWithStyle("Words", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabel("Word file (.json or .yaml), applied on next start"),
		prefs.wordsPath,
	)
	form := container.NewVBox(rows...)

	prefs.saveButton = widget.NewButton("Save", prefs.handleSave)
	prefs.cancelButton = widget.NewButton("Cancel", func() {
		window.Hide()
	})
	buttons := container.NewHBox(prefs.saveButton, layout.NewSpacer(), prefs.cancelButton)

	content := container.NewBorder(nil, buttons, nil, nil, form)
	window.SetContent(content)
	window.Resize(fyne.NewSize(420, 480))

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings model.Settings) {
	prefs.settings = settings
	prefs.similarity.set(settings.Exercises.Similarity)
	prefs.advocacy.set(settings.Exercises.Advocacy)
	prefs.wordsPath.SetText(settings.WordsPath)
}

func (prefs *Window) handleSave() {
	settings := prefs.settings
	settings.Exercises.Similarity = prefs.similarity.apply(settings.Exercises.Similarity)
	settings.Exercises.Advocacy = prefs.advocacy.apply(settings.Exercises.Advocacy)
	settings.WordsPath = strings.TrimSpace(prefs.wordsPath.Text)

	prefs.settings = settings
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

func parsePositiveInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}
