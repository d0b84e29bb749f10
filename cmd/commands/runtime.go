package commands

import (
	"io"
	"log/slog"
	"math/rand"
	"time"

	"github.com/urfave/cli/v3"

	"wordgym/internal/core/model"
	"wordgym/internal/core/session"
	"wordgym/internal/core/timer"
	"wordgym/internal/core/words"
	"wordgym/internal/storage"
	"wordgym/resources"
)

// runtime bundles what both front ends need.
type runtime struct {
	settings model.Settings
	store    *storage.Store
	session  *session.Session
	loadErr  error
}

func configureLogging(output io.Writer, debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(output, &slog.HandlerOptions{Level: level})))
}

func newRuntime(cmd *cli.Command) *runtime {
	store := openStore(cmd.String("config"))

	settings, err := store.Load()
	if err != nil {
		slog.Warn("settings unreadable, using defaults", "path", store.Path(), "error", err)
	}
	if path := cmd.String("words"); path != "" {
		settings.WordsPath = path
	}

	bank, loadErr := loadWords(settings.WordsPath)
	if loadErr != nil {
		slog.Error("word data unavailable", "error", loadErr)
	} else {
		slog.Debug("words loaded",
			"nouns", bank.Count(words.Nouns),
			"verbs", bank.Count(words.Verbs),
			"adjectives", bank.Count(words.Adjectives),
		)
	}

	return &runtime{
		settings: settings,
		store:    store,
		loadErr:  loadErr,
		session: session.New(bank, loadErr, session.Config{
			Exercises: settings.Exercises,
			Timer:     timer.Config{TickInterval: settings.TickInterval},
			Logger:    slog.Default(),
		}),
	}
}

func openStore(path string) *storage.Store {
	if path != "" {
		return storage.NewStore(path)
	}
	store, err := storage.DefaultStore(appName)
	if err != nil {
		slog.Warn("no config directory, settings will not persist", "error", err)
		return storage.NewStore("")
	}
	return store
}

// loadWords reads the word file at path, or the bundled list when path is
// empty. On failure it returns an empty bank alongside the error.
func loadWords(path string) (*words.Bank, error) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	if path == "" {
		data, err := resources.Data(resources.DefaultWordsFile)
		if err != nil {
			return words.Empty(), &words.LoadError{Source: resources.DefaultWordsFile, Err: err}
		}
		bank, err := words.Parse(data, words.FormatJSON, rng)
		if err != nil {
			return words.Empty(), err
		}
		return bank, nil
	}

	bank, err := words.Load(path, rng)
	if err != nil {
		return words.Empty(), err
	}
	return bank, nil
}

func (rt *runtime) saveSettings(settings model.Settings) {
	rt.settings = settings
	rt.session.Configure(settings.Exercises)
	if rt.store.Path() == "" {
		return
	}
	if err := rt.store.Save(settings); err != nil {
		slog.Error("save settings", "path", rt.store.Path(), "error", err)
		return
	}
	slog.Debug("settings saved", "path", rt.store.Path())
}
