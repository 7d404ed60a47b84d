package word

import (
	"bufio"
	_ "embed"
	"math/rand/v2"
	"strings"
	"sync"
)

// Last-resort data, compiled into the binary so the selector always has
// something to return.
var (
	//go:embed resources/fallback_words.txt
	fallbackWords string

	//go:embed resources/fallback_countries.txt
	fallbackCountries string
)

var (
	builtinOnce  sync.Once
	builtinPicks []Pick
)

// builtinWord picks uniformly from the embedded word|meaning list.
func builtinWord() Pick {
	builtinOnce.Do(func() {
		sc := bufio.NewScanner(strings.NewReader(fallbackWords))
		for sc.Scan() {
			line := strings.TrimSpace(sc.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			w, meaning, ok := splitMeaning(line)
			if !ok || w == "" || meaning == "" {
				continue
			}
			builtinPicks = append(builtinPicks, Pick{
				Word:    strings.ToLower(w),
				Display: w,
				Meaning: meaning,
			})
		}
	})
	return builtinPicks[rand.IntN(len(builtinPicks))]
}

// builtinCountries builds the fixed country pool used when neither the
// override file nor the remote service yields anything.
func builtinCountries() *countryPool {
	p := newCountryPool()
	sc := bufio.NewScanner(strings.NewReader(fallbackCountries))
	for sc.Scan() {
		disp := strings.TrimSpace(sc.Text())
		if disp == "" || strings.HasPrefix(disp, "#") {
			continue
		}
		token := CountryToken(disp)
		if token == "" {
			continue
		}
		p.tokens = append(p.tokens, token)
		p.display[token] = disp
		p.meanings[token] = "a country"
	}
	p.tokens = dedupe(p.tokens)
	return p
}
