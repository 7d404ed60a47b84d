// Package word assembles the pool of guessable words for the game and
// resolves the meaning shown to the player once a round ends.
//
// Words come from plain-text lists in a data directory, optionally
// augmented with country names from a local override file or a remote
// countries service. Meanings are resolved through a fixed fallback
// chain ending in a generic string, so a pick never fails.
package word

import (
	"context"
	"math/rand/v2"
	"net/http"
	"strings"
	"sync"
)

// Pick is one selected word: the token the player must type, the form
// shown in the UI (different only for countries) and its meaning.
type Pick struct {
	Word    string `json:"word"`
	Display string `json:"display"`
	Meaning string `json:"meaning"`
}

// Doer issues a single HTTP request. *http.Client satisfies Doer; tests
// substitute deterministic stubs.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Definitions memoizes remote dictionary lookups between processes.
// Implementations report a miss as not-found, never as an error.
type Definitions interface {
	GetDefinition(word string) (string, bool)
	PutDefinition(word, definition string) error
}

// Config carries the dependencies of a Source.
type Config struct {
	// Dir is the data directory holding word lists and meaning files.
	Dir string
	// Client performs remote calls; defaults to a plain http.Client.
	// Every call carries its own timeout, no call is retried.
	Client Doer
	// WordServiceKey enables the remote random-word service when set.
	WordServiceKey string
	// Definitions optionally caches resolved dictionary definitions.
	Definitions Definitions
}

// Source owns the word pools and their caches. All caches are populated
// lazily; concurrent first uses may do redundant work but construction
// is idempotent, so they converge to the same content.
type Source struct {
	dir    string
	client Doer
	apiKey string
	defs   Definitions

	mu        sync.Mutex
	lists     map[Kind][]string
	combined  map[string]string // every category meaning file merged
	wordOnly  map[string]string // words_meanings.txt variants only
	countries *countryPool
}

func NewSource(cfg Config) *Source {
	client := cfg.Client
	if client == nil {
		client = &http.Client{}
	}
	return &Source{
		dir:    cfg.Dir,
		client: client,
		apiKey: cfg.WordServiceKey,
		defs:   cfg.Definitions,
		lists:  make(map[Kind][]string),
	}
}

// Random picks one word from the requested pool: "global" for the local
// word lists, "countries" for country names, anything else for the
// union of both. It never fails; when every local pool is empty it asks
// the remote random-word service and finally falls back to a built-in
// list.
func (s *Source) Random(ctx context.Context, source string) Pick {
	countries := s.countryData(ctx)

	var pool []string
	switch strings.ToLower(strings.TrimSpace(source)) {
	case "global":
		pool = s.Words(Any)
	case "countries":
		pool = countries.tokens
	default:
		pool = merge(s.Words(Any), countries.tokens)
	}

	if len(pool) > 0 {
		picked := pool[rand.IntN(len(pool))]
		return Pick{
			Word:    picked,
			Display: countries.displayOf(picked),
			Meaning: s.resolveMeaning(ctx, countries, picked),
		}
	}

	if p, ok := s.serviceWord(ctx, Any); ok {
		return p
	}
	return builtinWord()
}

// merge unions two token lists, sorted and deduplicated.
func merge(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return dedupe(out)
}
