package word

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"
)

const (
	dictionaryURL     = "https://api.dictionaryapi.dev/api/v2/entries/en/"
	dictionaryTimeout = 5 * time.Second
)

// resolver produces a meaning for a token; ok reports success.
type resolver func(ctx context.Context, token string) (string, bool)

// resolveMeaning runs the resolution chain in strict priority order:
// country metadata, the local words meaning file, the remote dictionary,
// then the generic fallback. The first hit wins.
func (s *Source) resolveMeaning(ctx context.Context, countries *countryPool, token string) string {
	chain := []resolver{
		countries.resolve,
		func(_ context.Context, t string) (string, bool) { return s.wordMeaning(t) },
		s.definition,
	}
	for _, next := range chain {
		if m, ok := next(ctx, token); ok {
			return m
		}
	}
	return "a word"
}

type dictionaryEntry struct {
	Meanings []struct {
		Definitions []struct {
			Definition string `json:"definition"`
		} `json:"definitions"`
	} `json:"meanings"`
}

// definition resolves a token via the public dictionary service,
// returning the first non-empty definition of the first entry. Results
// are memoized in the optional Definitions cache. A failed, slow or
// malformed response is "no result", never an error.
func (s *Source) definition(ctx context.Context, token string) (string, bool) {
	if s.defs != nil {
		if d, ok := s.defs.GetDefinition(token); ok {
			return d, true
		}
	}

	ctx, cancel := context.WithTimeout(ctx, dictionaryTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, dictionaryURL+url.PathEscape(token), nil)
	if err != nil {
		return "", false
	}
	res, err := s.client.Do(req)
	if err != nil {
		return "", false
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return "", false
	}
	var entries []dictionaryEntry
	if err := json.NewDecoder(res.Body).Decode(&entries); err != nil || len(entries) == 0 {
		return "", false
	}

	for _, m := range entries[0].Meanings {
		for _, d := range m.Definitions {
			if d.Definition != "" {
				if s.defs != nil {
					_ = s.defs.PutDefinition(token, d.Definition)
				}
				return d.Definition, true
			}
		}
	}
	return "", false
}
