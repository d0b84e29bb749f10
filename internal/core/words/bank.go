package words

import (
	"math/rand"
	"sync"
	"time"
)

// Category names a word list inside the asset.
type Category string

const (
	Nouns      Category = "nouns"
	Verbs      Category = "verbs"
	Adjectives Category = "adjectives"
)

// NoWord is returned when a category has nothing to draw from.
const NoWord = "no word available"

// Categories lists every category the asset may carry, in display order.
func Categories() []Category {
	return []Category{Nouns, Verbs, Adjectives}
}

// Bank holds the categorized word lists. It is immutable after construction.
type Bank struct {
	mu    sync.Mutex
	lists map[Category][]string
	rng   *rand.Rand
}

// New builds a bank from category lists. The lists are copied.
func New(lists map[Category][]string, rng *rand.Rand) *Bank {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	copied := make(map[Category][]string, len(lists))
	for category, list := range lists {
		copied[category] = append([]string(nil), list...)
	}
	return &Bank{lists: copied, rng: rng}
}

// Empty returns a bank without any words. Every lookup yields NoWord.
func Empty() *Bank {
	return New(nil, nil)
}

// RandomWord returns a uniformly random word from the category, or NoWord
// when the category is absent or empty.
func (bank *Bank) RandomWord(category Category) string {
	if bank == nil {
		return NoWord
	}
	list := bank.lists[category]
	if len(list) == 0 {
		return NoWord
	}
	bank.mu.Lock()
	index := bank.rng.Intn(len(list))
	bank.mu.Unlock()
	return list[index]
}

// RandomCategory picks one of the choices uniformly.
func (bank *Bank) RandomCategory(choices ...Category) Category {
	if len(choices) == 0 {
		return Nouns
	}
	if bank == nil {
		return choices[0]
	}
	bank.mu.Lock()
	index := bank.rng.Intn(len(choices))
	bank.mu.Unlock()
	return choices[index]
}

// Count reports how many words the category holds.
func (bank *Bank) Count(category Category) int {
	if bank == nil {
		return 0
	}
	return len(bank.lists[category])
}
