package words

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format selects the asset encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var errEmptyAsset = errors.New("word asset is empty")

// LoadError reports that the word asset could not be read or parsed.
type LoadError struct {
	Source string
	Err    error
}

func (err *LoadError) Error() string {
	return fmt.Sprintf("load words from %s: %v", err.Source, err.Err)
}

func (err *LoadError) Unwrap() error {
	return err.Err
}

type assetFile struct {
	Nouns      []string `json:"nouns" yaml:"nouns"`
	Verbs      []string `json:"verbs" yaml:"verbs"`
	Adjectives []string `json:"adjectives" yaml:"adjectives"`
}

// Load reads a word asset from disk. The encoding follows the file extension.
func Load(path string, rng *rand.Rand) (*Bank, error) {
	rawData, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}
	bank, err := parse(rawData, FormatFromPath(path), rng)
	if err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}
	return bank, nil
}

// Parse decodes an in-memory word asset.
func Parse(data []byte, format Format, rng *rand.Rand) (*Bank, error) {
	bank, err := parse(data, format, rng)
	if err != nil {
		return nil, &LoadError{Source: "embedded asset", Err: err}
	}
	return bank, nil
}

// FormatFromPath maps .yaml and .yml to FormatYAML and anything else to FormatJSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

func parse(data []byte, format Format, rng *rand.Rand) (*Bank, error) {
	var fileData *assetFile
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &fileData); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &fileData); err != nil {
			return nil, fmt.Errorf("parse json: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
	if fileData == nil {
		return nil, errEmptyAsset
	}

	return New(map[Category][]string{
		Nouns:      fileData.Nouns,
		Verbs:      fileData.Verbs,
		Adjectives: fileData.Adjectives,
	}, rng), nil
}
