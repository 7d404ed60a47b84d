package word

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	wordServiceBase    = "https://api.wordnik.com/v4"
	wordServiceTimeout = 5 * time.Second
)

// partOfSpeech maps a pool kind to the part-of-speech filter of the
// random-word service.
var partOfSpeech = map[Kind]string{
	Adjective: "adjective",
	Noun:      "noun",
	Verb:      "verb",
}

// serviceWord asks the remote random-word service for one word and its
// definition. The service is disabled unless an API key is configured.
func (s *Source) serviceWord(ctx context.Context, kind Kind) (Pick, bool) {
	if s.apiKey == "" {
		return Pick{}, false
	}

	q := url.Values{
		"hasDictionaryDef": {"true"},
		"minLength":        {"3"},
		"maxLength":        {"16"},
		"api_key":          {s.apiKey},
	}
	if pos := partOfSpeech[kind]; pos != "" {
		q.Set("includePartOfSpeech", pos)
	}
	var out struct {
		Word string `json:"word"`
	}
	if !s.getJSON(ctx, wordServiceBase+"/words.json/randomWord?"+q.Encode(), &out) || out.Word == "" {
		return Pick{}, false
	}
	w := strings.ToLower(out.Word)

	meaning := s.serviceDefinition(ctx, w)
	if meaning == "" {
		if m, ok := s.definition(ctx, w); ok {
			meaning = m
		}
	}
	if meaning == "" {
		meaning = "a word"
	}
	return Pick{Word: w, Display: w, Meaning: meaning}, true
}

// serviceDefinition fetches the word's own definitions from the service,
// preferring the first definition text over its part of speech.
func (s *Source) serviceDefinition(ctx context.Context, w string) string {
	q := url.Values{"limit": {"5"}, "api_key": {s.apiKey}}
	var defs []struct {
		Text         string `json:"text"`
		PartOfSpeech string `json:"partOfSpeech"`
	}
	if !s.getJSON(ctx, wordServiceBase+"/word.json/"+url.PathEscape(w)+"/definitions?"+q.Encode(), &defs) || len(defs) == 0 {
		return ""
	}
	if defs[0].Text != "" {
		return defs[0].Text
	}
	return defs[0].PartOfSpeech
}

// getJSON issues one GET with the service timeout and decodes the JSON
// body into v; any failure reports false.
func (s *Source) getJSON(ctx context.Context, rawURL string, v any) bool {
	ctx, cancel := context.WithTimeout(ctx, wordServiceTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return false
	}
	res, err := s.client.Do(req)
	if err != nil {
		return false
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return false
	}
	return json.NewDecoder(res.Body).Decode(v) == nil
}
