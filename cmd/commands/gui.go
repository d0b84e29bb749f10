package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"wordgym/internal/core/view"
	"wordgym/internal/platform"
	"wordgym/internal/ui/preferences"
	"wordgym/internal/ui/trainer"
	"wordgym/internal/ui/tray"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
)

// NewGUICommand returns the desktop trainer command.
func NewGUICommand() *cli.Command {
	return &cli.Command{
		Name:   "gui",
		Usage:  "Open the desktop trainer (default)",
		Action: runGUI,
	}
}

func runGUI(ctx context.Context, cmd *cli.Command) error {
	configureLogging(os.Stderr, cmd.Bool("debug"))

	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		if errors.Is(err, platform.ErrAlreadyRunning) {
			slog.Info("wordgym is already running")
			return nil
		}
		return fmt.Errorf("single instance: %w", err)
	}
	defer func() {
		_ = guard.Release()
	}()

	rt := newRuntime(cmd)
	defer rt.session.Stop()

	fyneApp := app.NewWithID("com.wordgym.app")

	var prefsWindow *preferences.Window
	trainerWindow := trainer.New(fyneApp, trainer.Callbacks{
		OnSelect: rt.session.Select,
		OnPress:  rt.session.Press,
		OnPreferences: func() {
			prefsWindow.Show()
		},
	})
	prefsWindow = preferences.New(fyneApp, rt.settings, rt.saveSettings)
	trainerWindow.Window().SetMaster()

	guard.OnActivate(func() {
		fyne.Do(trainerWindow.Show)
	})

	var trayManager *tray.Manager
	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager = tray.New(desktopApp, tray.Callbacks{
			OnShow:        trainerWindow.Show,
			OnSelect:      rt.session.Select,
			OnPreferences: prefsWindow.Show,
			OnQuit:        fyneApp.Quit,
		})
	} else {
		slog.Debug("system tray unsupported on this platform")
	}

	events := rt.session.Subscribe(8)
	go func() {
		for model := range events {
			forwardModel(model, trainerWindow, trayManager)
		}
	}()

	go func() {
		<-ctx.Done()
		fyne.Do(fyneApp.Quit)
	}()

	rt.session.Start()
	trainerWindow.Show()
	fyneApp.Run()
	return nil
}

func forwardModel(model view.Model, trainerWindow *trainer.Window, trayManager *tray.Manager) {
	trainerWindow.Update(model)
	if trayManager != nil {
		fyne.Do(func() {
			trayManager.SetModel(model)
		})
	}
}
