package model

import "time"

// PhasedConfig defines a fixed number of rounds, each made of two timed phases.
type PhasedConfig struct {
	Rounds      int
	FirstPhase  time.Duration
	SecondPhase time.Duration
}

// ExerciseConfig contains runtime settings for the exercise flows.
type ExerciseConfig struct {
	Similarity PhasedConfig
	Advocacy   PhasedConfig
}

// DefaultExerciseConfig returns the standard session lengths.
func DefaultExerciseConfig() ExerciseConfig {
	return ExerciseConfig{
		Similarity: PhasedConfig{
			Rounds:      20,
			FirstPhase:  30 * time.Second,
			SecondPhase: 30 * time.Second,
		},
		Advocacy: PhasedConfig{
			Rounds:      5,
			FirstPhase:  60 * time.Second,
			SecondPhase: 60 * time.Second,
		},
	}
}

// Normalized replaces non-positive values with the defaults.
func (config ExerciseConfig) Normalized() ExerciseConfig {
	defaults := DefaultExerciseConfig()
	config.Similarity = config.Similarity.withDefaults(defaults.Similarity)
	config.Advocacy = config.Advocacy.withDefaults(defaults.Advocacy)
	return config
}

func (config PhasedConfig) withDefaults(defaults PhasedConfig) PhasedConfig {
	if config.Rounds <= 0 {
		config.Rounds = defaults.Rounds
	}
	if config.FirstPhase < time.Second {
		config.FirstPhase = defaults.FirstPhase
	}
	if config.SecondPhase < time.Second {
		config.SecondPhase = defaults.SecondPhase
	}
	return config
}

// Settings defines the user preferences persisted between runs.
type Settings struct {
	Exercises    ExerciseConfig
	WordsPath    string
	TickInterval time.Duration
}

// DefaultSettings returns default settings for wordgym.
func DefaultSettings() Settings {
	return Settings{
		Exercises:    DefaultExerciseConfig(),
		TickInterval: time.Second,
	}
}
