package word

import (
	"bufio"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Kind selects a word list. Non-Any kinds read their own file first and
// fall back to the generic words.txt.
type Kind string

const (
	Any       Kind = "any"
	Adjective Kind = "adj"
	Noun      Kind = "noun"
	Verb      Kind = "verb"
)

// Words returns the sorted, deduplicated, lowercased word list for kind.
// The first call reads from disk; the result is cached for the process
// lifetime even if the underlying file changes later.
func (s *Source) Words(kind Kind) []string {
	s.mu.Lock()
	cached, ok := s.lists[kind]
	s.mu.Unlock()
	if ok {
		return cached
	}

	var words []string
	if kind != Any {
		words = readList(filepath.Join(s.dir, string(kind)+".txt"))
	}
	if len(words) == 0 {
		words = readList(filepath.Join(s.dir, "words.txt"))
	}
	list := dedupe(words)

	s.mu.Lock()
	s.lists[kind] = list
	s.mu.Unlock()
	return list
}

// readList reads one candidate word per line, skipping blank lines and
// #-comments. A missing file is an empty source, not an error.
func readList(path string) []string {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	var words []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	return words
}

func dedupe(words []string) []string {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		if w = strings.ToLower(w); w != "" {
			set[w] = struct{}{}
		}
	}
	out := make([]string, 0, len(set))
	for w := range set {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}
