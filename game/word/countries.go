package word

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	countriesURL     = "https://restcountries.com/v3.1/all?fields=name,region"
	countriesTimeout = 7 * time.Second
)

var countryMeaningFiles = []string{"countries_meanings.txt", "countries_meaning.txt"}

// countryPool holds the three aligned country structures: the sorted
// guess tokens and the display and meaning maps keyed by those tokens.
type countryPool struct {
	tokens   []string
	display  map[string]string
	meanings map[string]string
}

func newCountryPool() *countryPool {
	return &countryPool{
		display:  make(map[string]string),
		meanings: make(map[string]string),
	}
}

// displayOf returns the preserved display form for a country token and
// the token itself for anything else.
func (p *countryPool) displayOf(token string) string {
	if d, ok := p.display[token]; ok {
		return d
	}
	return token
}

// resolve reports the country meaning for token. The builder always
// fills the map, so the empty-meaning default below is defensive only.
func (p *countryPool) resolve(_ context.Context, token string) (string, bool) {
	m, ok := p.meanings[token]
	if !ok {
		return "", false
	}
	if m == "" {
		m = "a country"
	}
	return m, true
}

// countryData returns the country pool. A local countries.txt overrides
// every other source and is rebuilt on every call so file edits take
// effect without a restart. Without it the pool is fetched once from
// the remote countries service (or the built-in list on failure) and
// cached for the process lifetime.
func (s *Source) countryData(ctx context.Context) *countryPool {
	local := filepath.Join(s.dir, "countries.txt")
	if _, err := os.Stat(local); err == nil {
		p := s.localCountries(local)
		s.mu.Lock()
		s.countries = p
		s.mu.Unlock()
		return p
	}

	s.mu.Lock()
	cached := s.countries
	s.mu.Unlock()
	if cached != nil {
		return cached
	}

	p := s.remoteCountries(ctx)
	if p == nil {
		p = builtinCountries()
	}
	s.mu.Lock()
	s.countries = p
	s.mu.Unlock()
	return p
}

// localCountries builds the pool from the override file. Meanings come
// from the optional countries meaning files, looked up by the lowercase
// display name first and the guess token second, defaulting to
// "a country".
func (s *Source) localCountries(path string) *countryPool {
	meanings := s.loadMeaningFiles(countryMeaningFiles)

	p := newCountryPool()
	for _, disp := range readList(path) {
		token := CountryToken(disp)
		if token == "" {
			continue
		}
		p.tokens = append(p.tokens, token)
		p.display[token] = disp
		m := meanings[strings.ToLower(disp)]
		if m == "" {
			m = meanings[token]
		}
		if m == "" {
			m = "a country"
		}
		p.meanings[token] = m
	}
	p.tokens = dedupe(p.tokens)
	return p
}

type countryRecord struct {
	Name struct {
		Official string `json:"official"`
		Common   string `json:"common"`
	} `json:"name"`
	Region string `json:"region"`
}

// remoteCountries fetches the pool from the countries service in a
// single attempt. Any failure returns nil and the caller falls back to
// the built-in list.
func (s *Source) remoteCountries(ctx context.Context) *countryPool {
	ctx, cancel := context.WithTimeout(ctx, countriesTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, countriesURL, nil)
	if err != nil {
		return nil
	}
	res, err := s.client.Do(req)
	if err != nil {
		return nil
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil
	}
	var records []countryRecord
	if err := json.NewDecoder(res.Body).Decode(&records); err != nil {
		return nil
	}

	p := newCountryPool()
	for _, rec := range records {
		disp := rec.Name.Official
		if disp == "" {
			disp = rec.Name.Common
		}
		token := CountryToken(disp)
		if token == "" {
			continue
		}
		p.tokens = append(p.tokens, token)
		p.display[token] = disp
		if rec.Region != "" {
			p.meanings[token] = "a country in " + rec.Region
		} else {
			p.meanings[token] = "a country"
		}
	}
	if len(p.tokens) == 0 {
		return nil
	}
	p.tokens = dedupe(p.tokens)
	return p
}
