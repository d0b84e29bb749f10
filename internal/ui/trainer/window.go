package trainer

import (
	"image/color"

	"wordgym/internal/core/view"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Callbacks defines trainer action handlers.
type Callbacks struct {
	OnSelect      func(id string)
	OnPress       func(control view.Control)
	OnPreferences func()
}

// Window is the main trainer window: a selector row and a content region
// rebuilt from every view model.
type Window struct {
	window    fyne.Window
	callbacks Callbacks
	selectors []*widget.Button
	content   *fyne.Container
	controls  []*widget.Button
	model     view.Model
}

var (
	wordColor  = color.NRGBA{R: 232, G: 190, B: 66, A: 255}
	timerColor = color.NRGBA{R: 76, G: 175, B: 80, A: 255}
)

// New creates the trainer window.
func New(app fyne.App, callbacks Callbacks) *Window {
	window := app.NewWindow("wordgym")
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}

	trainer := &Window{
		window:    window,
		callbacks: callbacks,
		content:   container.NewVBox(),
	}

	selectorRow := container.NewHBox()
	for _, entry := range view.Menu() {
		id := entry.ID
		button := widget.NewButton(entry.Label, func() {
			if trainer.callbacks.OnSelect != nil {
				trainer.callbacks.OnSelect(id)
			}
		})
		trainer.selectors = append(trainer.selectors, button)
		selectorRow.Add(button)
	}
	selectorRow.Add(layout.NewSpacer())
	selectorRow.Add(widget.NewButton("Settings", func() {
		if trainer.callbacks.OnPreferences != nil {
			trainer.callbacks.OnPreferences()
		}
	}))

	root := container.NewBorder(container.NewVBox(selectorRow, widget.NewSeparator()), nil, nil, nil,
		container.NewPadded(trainer.content))
	window.SetContent(root)
	window.Resize(fyne.NewSize(720, 420))

	trainer.Render(view.RenderMenu())
	return trainer
}

// Window returns the underlying fyne window.
func (trainer *Window) Window() fyne.Window {
	return trainer.window
}

// Show displays the window and brings it to the front.
func (trainer *Window) Show() {
	trainer.window.Show()
	trainer.window.RequestFocus()
}

// Update renders model on the UI goroutine. It is safe to call from any goroutine.
func (trainer *Window) Update(model view.Model) {
	fyne.Do(func() {
		trainer.Render(model)
	})
}

// Render replaces the content region. It must run on the UI goroutine.
func (trainer *Window) Render(model view.Model) {
	trainer.model = model
	trainer.controls = nil

	objects := []fyne.CanvasObject{
		widget.NewLabelWithStyle(model.Title, fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
	}

	if model.Words != "" {
		words := canvas.NewText(model.Words, wordColor)
		words.Alignment = fyne.TextAlignCenter
		words.TextStyle = fyne.TextStyle{Bold: true}
		words.TextSize = 28
		objects = append(objects, words)
	}

	if model.Instruction != "" {
		instruction := widget.NewLabelWithStyle(model.Instruction, fyne.TextAlignCenter, fyne.TextStyle{})
		instruction.Wrapping = fyne.TextWrapWord
		objects = append(objects, instruction)
	}

	if model.Timer != "" {
		timerText := canvas.NewText(model.Timer, timerColor)
		timerText.Alignment = fyne.TextAlignCenter
		timerText.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
		timerText.TextSize = 36
		objects = append(objects, timerText)
	}

	if model.Message != "" {
		message := widget.NewLabelWithStyle(model.Message, fyne.TextAlignCenter, fyne.TextStyle{Italic: true})
		message.Wrapping = fyne.TextWrapWord
		objects = append(objects, message)
	}

	if len(model.Buttons) > 0 {
		row := container.NewHBox(layout.NewSpacer())
		for _, entry := range model.Buttons {
			control := entry.Control
			button := widget.NewButton(entry.Label, func() {
				if trainer.callbacks.OnPress != nil {
					trainer.callbacks.OnPress(control)
				}
			})
			if entry.Primary {
				button.Importance = widget.HighImportance
			}
			trainer.controls = append(trainer.controls, button)
			row.Add(button)
		}
		row.Add(layout.NewSpacer())
		objects = append(objects, row)
	}

	for _, selector := range trainer.selectors {
		if model.Failed {
			selector.Disable()
		} else {
			selector.Enable()
		}
	}

	trainer.content.Objects = objects
	trainer.content.Refresh()
	trainer.window.SetTitle(windowTitle(model))
}

// Model returns the last rendered view model.
func (trainer *Window) Model() view.Model {
	return trainer.model
}

func windowTitle(model view.Model) string {
	if model.Title == "" {
		return "wordgym"
	}
	return "wordgym - " + model.Title
}
