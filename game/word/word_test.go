package word

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// doerFunc adapts a function to the Doer interface.
type doerFunc func(*http.Request) (*http.Response, error)

func (f doerFunc) Do(r *http.Request) (*http.Response, error) { return f(r) }

// failingDoer simulates an unreachable network.
func failingDoer() Doer {
	return doerFunc(func(*http.Request) (*http.Response, error) {
		return nil, errors.New("network unavailable")
	})
}

func jsonResponse(code int, body string) *http.Response {
	return &http.Response{
		StatusCode: code,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestRandomGlobalSingleWord(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "words.txt", "hello\n")
	writeFile(t, dir, "words_meanings.txt", "hello|a greeting\n")
	s := NewSource(Config{Dir: dir, Client: failingDoer()})

	got := s.Random(context.Background(), "global")
	assert.Equal(t, Pick{Word: "hello", Display: "hello", Meaning: "a greeting"}, got)
}

func TestRandomCountriesLocalOverride(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "countries.txt", "Côte d'Ivoire\n")
	s := NewSource(Config{Dir: dir, Client: failingDoer()})

	got := s.Random(context.Background(), "countries")
	assert.Equal(t, Pick{Word: "cotedivoire", Display: "Côte d'Ivoire", Meaning: "a country"}, got)
}

func TestRandomCountriesBuiltinFallback(t *testing.T) {
	s := NewSource(Config{Dir: t.TempDir(), Client: failingDoer()})

	builtin := builtinCountries()
	for i := 0; i < 10; i++ {
		got := s.Random(context.Background(), "countries")
		assert.Contains(t, builtin.tokens, got.Word)
		assert.Equal(t, "a country", got.Meaning)
		assert.NotEmpty(t, got.Display)
	}
}

func TestRandomUnionPool(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "words.txt", "hello\n")
	writeFile(t, dir, "countries.txt", "Japan\n")
	s := NewSource(Config{Dir: dir, Client: failingDoer()})

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		got := s.Random(context.Background(), "")
		require.Contains(t, []string{"hello", "japan"}, got.Word)
		seen[got.Word] = true
	}
	assert.True(t, seen["hello"] && seen["japan"], "union should draw from both pools, got %v", seen)
}

func TestRandomEmptyPoolFallsBackToBuiltin(t *testing.T) {
	s := NewSource(Config{Dir: t.TempDir(), Client: failingDoer()})

	got := s.Random(context.Background(), "global")
	words := make([]string, 0, len(builtinPicks))
	builtinWord() // force the lazy parse
	for _, p := range builtinPicks {
		words = append(words, p.Word)
	}
	assert.Contains(t, words, got.Word)
	assert.NotEmpty(t, got.Meaning)
	assert.Equal(t, got.Word, strings.ToLower(got.Display))
}

func TestRandomWordService(t *testing.T) {
	client := doerFunc(func(r *http.Request) (*http.Response, error) {
		switch {
		case strings.Contains(r.URL.Path, "randomWord"):
			assert.Equal(t, "true", r.URL.Query().Get("hasDictionaryDef"))
			assert.Equal(t, "secret", r.URL.Query().Get("api_key"))
			return jsonResponse(http.StatusOK, `{"word":"Zephyr"}`), nil
		case strings.Contains(r.URL.Path, "/definitions"):
			return jsonResponse(http.StatusOK, `[{"text":"a gentle breeze","partOfSpeech":"noun"}]`), nil
		default:
			return nil, errors.New("unexpected call: " + r.URL.String())
		}
	})
	s := NewSource(Config{Dir: t.TempDir(), Client: client, WordServiceKey: "secret"})

	got := s.Random(context.Background(), "global")
	assert.Equal(t, Pick{Word: "zephyr", Display: "zephyr", Meaning: "a gentle breeze"}, got)
}

func TestMerge(t *testing.T) {
	got := merge([]string{"b", "a"}, []string{"a", "c"})
	assert.Equal(t, []string{"a", "b", "c"}, got)
}
