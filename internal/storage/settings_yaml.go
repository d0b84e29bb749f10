package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
	"wordgym/internal/core/model"
)

const settingsFileName = "settings.yaml"

type yamlPhased struct {
	Rounds             int `yaml:"rounds"`
	FirstPhaseSeconds  int `yaml:"first_phase_seconds"`
	SecondPhaseSeconds int `yaml:"second_phase_seconds"`
}

type yamlSettings struct {
	Similarity        yamlPhased `yaml:"similarity"`
	Advocacy          yamlPhased `yaml:"advocacy"`
	WordsPath         string     `yaml:"words_path,omitempty"`
	TickIntervalMilli int        `yaml:"tick_interval_ms,omitempty"`
}

// Store reads and writes settings in a single YAML file.
type Store struct {
	path string
}

// NewStore returns a store backed by path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultStore returns a store in the user's configuration directory.
func DefaultStore(appName string) (*Store, error) {
	configPath, err := resolveConfigPath(appName)
	if err != nil {
		return nil, err
	}
	return NewStore(configPath), nil
}

// Path returns the settings file location.
func (store *Store) Path() string {
	return store.path
}

// Load reads user preferences from YAML.
// If the config file does not exist, default settings are returned.
func (store *Store) Load() (model.Settings, error) {
	settings := model.DefaultSettings()

	rawData, err := os.ReadFile(store.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// Save writes user preferences to YAML.
func (store *Store) Save(settings model.Settings) error {
	if err := os.MkdirAll(filepath.Dir(store.path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fileData := yamlSettings{
		Similarity: toYamlPhased(settings.Exercises.Similarity),
		Advocacy:   toYamlPhased(settings.Exercises.Advocacy),
		WordsPath:  settings.WordsPath,
	}
	if settings.TickInterval > 0 && settings.TickInterval != time.Second {
		fileData.TickIntervalMilli = int(settings.TickInterval / time.Millisecond)
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(store.path, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

func resolveConfigPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err == nil && configDir != "" {
		return filepath.Join(configDir, appName, settingsFileName), nil
	}

	homeDir, homeErr := os.UserHomeDir()
	if homeErr != nil {
		if err != nil {
			return "", fmt.Errorf("resolve user config dir: %w", err)
		}
		return "", fmt.Errorf("resolve user config dir: %w", homeErr)
	}
	return filepath.Join(homeDir, ".config", appName, settingsFileName), nil
}

func toYamlPhased(config model.PhasedConfig) yamlPhased {
	return yamlPhased{
		Rounds:             config.Rounds,
		FirstPhaseSeconds:  int(config.FirstPhase / time.Second),
		SecondPhaseSeconds: int(config.SecondPhase / time.Second),
	}
}

func applyYamlPhased(config *model.PhasedConfig, fileData yamlPhased) {
	if fileData.Rounds > 0 {
		config.Rounds = fileData.Rounds
	}
	if fileData.FirstPhaseSeconds > 0 {
		config.FirstPhase = time.Duration(fileData.FirstPhaseSeconds) * time.Second
	}
	if fileData.SecondPhaseSeconds > 0 {
		config.SecondPhase = time.Duration(fileData.SecondPhaseSeconds) * time.Second
	}
}

func applyYamlSettings(settings *model.Settings, fileData yamlSettings) {
	applyYamlPhased(&settings.Exercises.Similarity, fileData.Similarity)
	applyYamlPhased(&settings.Exercises.Advocacy, fileData.Advocacy)

	if fileData.WordsPath != "" {
		settings.WordsPath = fileData.WordsPath
	}
	if fileData.TickIntervalMilli > 0 {
		settings.TickInterval = time.Duration(fileData.TickIntervalMilli) * time.Millisecond
	}
}
