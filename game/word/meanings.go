package word

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Meaning file name variants grouped by category. Within a group and
// across groups, files loaded later overwrite earlier keys.
var meaningFileGroups = [][]string{
	{"adjectives_meanings.txt", "adj_meanings.txt", "adjectives_meaning.txt", "adj_meaning.txt"},
	{"nouns_meanings.txt", "noun_meanings.txt", "nouns_meaning.txt", "noun_meaning.txt"},
	{"verbs_meanings.txt", "verb_meanings.txt", "verbs_meaning.txt", "verb_meaning.txt"},
	{"words_meanings.txt", "words_meaning.txt"},
}

// wordMeaningFiles are the only local files the meaning resolver
// consults; the category files above feed the combined map only.
var wordMeaningFiles = []string{"words_meanings.txt", "words_meaning.txt"}

// meaningSeparators are tried in this order on each line, splitting on
// the first occurrence of the winning separator.
var meaningSeparators = []string{"|", "\t", " - "}

// parseMeanings reads key<sep>value lines into a map. Blank lines and
// #-comments are skipped; a line with no recognized separator is not a
// mapping and is dropped. Repeated keys keep the last value seen.
func parseMeanings(r io.Reader) map[string]string {
	m := make(map[string]string)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, val, ok := splitMeaning(line)
		if !ok || key == "" || val == "" {
			continue
		}
		m[strings.ToLower(key)] = val
	}
	return m
}

// parseMeaningsFile is parseMeanings over a file; a missing file is an
// empty map, not an error.
func parseMeaningsFile(path string) map[string]string {
	f, err := os.Open(path)
	if err != nil {
		return map[string]string{}
	}
	defer f.Close()
	return parseMeanings(f)
}

func splitMeaning(line string) (key, val string, ok bool) {
	for _, sep := range meaningSeparators {
		if k, v, found := strings.Cut(line, sep); found {
			return strings.TrimSpace(k), strings.TrimSpace(v), true
		}
	}
	return "", "", false
}

// CategoryMeaning looks a word up across every category meaning file
// (adjectives, nouns, verbs and the generic words files combined).
func (s *Source) CategoryMeaning(word string) (string, bool) {
	s.mu.Lock()
	combined := s.combined
	s.mu.Unlock()
	if combined == nil {
		combined = s.loadMeaningFiles(meaningFileGroups...)
		s.mu.Lock()
		s.combined = combined
		s.mu.Unlock()
	}
	m, ok := combined[strings.ToLower(word)]
	return m, ok
}

// wordMeaning looks a token up in the generic words meaning files only.
func (s *Source) wordMeaning(token string) (string, bool) {
	s.mu.Lock()
	wordOnly := s.wordOnly
	s.mu.Unlock()
	if wordOnly == nil {
		wordOnly = s.loadMeaningFiles(wordMeaningFiles)
		s.mu.Lock()
		s.wordOnly = wordOnly
		s.mu.Unlock()
	}
	m, ok := wordOnly[strings.ToLower(token)]
	return m, ok
}

func (s *Source) loadMeaningFiles(groups ...[]string) map[string]string {
	out := make(map[string]string)
	for _, group := range groups {
		for _, name := range group {
			for k, v := range parseMeaningsFile(filepath.Join(s.dir, name)) {
				out[k] = v
			}
		}
	}
	return out
}
