package resources

import (
	"embed"
	"fmt"
	"sync"
)

const dataDir = "data/"

// DefaultWordsFile is the bundled word asset.
const DefaultWordsFile = "words.json"

//go:embed data/*.json
var dataFS embed.FS

var dataCache sync.Map

// Data returns the contents of a bundled data file.
func Data(fileName string) ([]byte, error) {
	path := dataDir + fileName
	if cached, ok := dataCache.Load(path); ok {
		return cached.([]byte), nil
	}

	data, err := dataFS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load resource %s: %w", path, err)
	}

	dataCache.Store(path, data)
	return data, nil
}

// MustData returns a bundled data file or panics on error.
func MustData(fileName string) []byte {
	data, err := Data(fileName)
	if err != nil {
		panic(err)
	}
	return data
}
