package tray

import (
	"fmt"

	"wordgym/internal/core/view"

	"fyne.io/fyne/v2"
)

// MenuHost is the part of desktop.App the tray needs.
type MenuHost interface {
	SetSystemTrayMenu(menu *fyne.Menu)
}

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow        func()
	OnSelect      func(id string)
	OnPreferences func()
	OnQuit        func()
}

// Manager handles system tray state.
type Manager struct {
	host        MenuHost
	callbacks   Callbacks
	statusItem  *fyne.MenuItem
	exercises   []*fyne.MenuItem
	statusLabel string
	menu        *fyne.Menu
}

// New creates a tray manager with the provided callbacks.
func New(host MenuHost, callbacks Callbacks) *Manager {
	manager := &Manager{
		host:      host,
		callbacks: callbacks,
	}

	manager.statusItem = fyne.NewMenuItem("Status: choose an exercise", nil)
	manager.statusItem.Disabled = true

	for _, entry := range view.Menu() {
		id := entry.ID
		manager.exercises = append(manager.exercises, fyne.NewMenuItem(entry.Label, func() {
			if manager.callbacks.OnShow != nil {
				manager.callbacks.OnShow()
			}
			if manager.callbacks.OnSelect != nil {
				manager.callbacks.OnSelect(id)
			}
		}))
	}

	manager.refreshMenu()
	return manager
}

// SetStatus updates the status label.
func (manager *Manager) SetStatus(status string) {
	if status == manager.statusLabel {
		return
	}
	manager.statusLabel = status
	manager.statusItem.Label = fmt.Sprintf("Status: %s", status)
	manager.refreshMenu()
}

// SetModel reflects the current view model in the menu.
func (manager *Manager) SetModel(model view.Model) {
	for _, item := range manager.exercises {
		item.Disabled = model.Failed
	}
	manager.SetStatus(model.Title)
}

// Menu returns the menu most recently installed.
func (manager *Manager) Menu() *fyne.Menu {
	return manager.menu
}

func (manager *Manager) refreshMenu() {
	items := []*fyne.MenuItem{
		manager.statusItem,
		fyne.NewMenuItem("Show trainer", func() {
			if manager.callbacks.OnShow != nil {
				manager.callbacks.OnShow()
			}
		}),
		fyne.NewMenuItemSeparator(),
	}
	items = append(items, manager.exercises...)
	items = append(items,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Preferences", func() {
			if manager.callbacks.OnPreferences != nil {
				manager.callbacks.OnPreferences()
			}
		}),
		fyne.NewMenuItem("Quit", func() {
			if manager.callbacks.OnQuit != nil {
				manager.callbacks.OnQuit()
			}
		}),
	)

	manager.menu = fyne.NewMenu("wordgym", items...)
	if manager.host != nil {
		manager.host.SetSystemTrayMenu(manager.menu)
	}
}
