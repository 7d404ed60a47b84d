package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hangword/hangword-server/game"
	"github.com/hangword/hangword-server/game/word"
	"github.com/hangword/hangword-server/handler/token"
	"github.com/hangword/hangword-server/service"
)

// ---- in-memory repositories ----

type memStore struct {
	mu           sync.Mutex
	players      map[string]game.Player
	nextID       int
	scores       []game.Score
	achievements map[int][]string
}

func newMemStore() *memStore {
	return &memStore{
		players:      make(map[string]game.Player),
		achievements: make(map[int][]string),
	}
}

func (m *memStore) Create(_ context.Context, p *game.Player) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.players[p.Username]; ok {
		return errors.New("username already registered")
	}
	m.nextID++
	p.ID = m.nextID
	p.CreatedAt = time.Now()
	m.players[p.Username] = *p
	return nil
}

func (m *memStore) GetByUsername(_ context.Context, username string) (*game.Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.players[username]
	if !ok {
		return nil, errors.New("no rows")
	}
	return &p, nil
}

func (m *memStore) GetByID(_ context.Context, id int) (*game.Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.players {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, errors.New("no rows")
}

func (m *memStore) Save(_ context.Context, s *game.Score) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s.ID = len(m.scores) + 1
	s.CompletedAt = time.Now()
	m.scores = append(m.scores, *s)
	return nil
}

func (m *memStore) ByPlayer(_ context.Context, playerID, limit int) ([]game.Score, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []game.Score
	for i := len(m.scores) - 1; i >= 0 && len(out) < limit; i-- {
		if m.scores[i].PlayerID == playerID {
			out = append(out, m.scores[i])
		}
	}
	return out, nil
}

func (m *memStore) Stats(_ context.Context, playerID int) (game.Stats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var st game.Stats
	for _, s := range m.scores {
		if s.PlayerID != playerID {
			continue
		}
		st.TotalGames++
		st.TotalScore += s.Score
		if s.Score > st.HighestScore {
			st.HighestScore = s.Score
		}
		if s.Streak > st.BestStreak {
			st.BestStreak = s.Streak
		}
	}
	if st.TotalGames > 0 {
		st.AverageScore = st.TotalScore / st.TotalGames
	}
	return st, nil
}

type memAchievements struct{ store *memStore }

func (m memAchievements) Unlock(_ context.Context, playerID int, name string) (bool, error) {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	for _, n := range m.store.achievements[playerID] {
		if n == name {
			return false, nil
		}
	}
	m.store.achievements[playerID] = append(m.store.achievements[playerID], name)
	return true, nil
}

func (m memAchievements) ByPlayer(_ context.Context, playerID int) ([]string, error) {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	return append([]string(nil), m.store.achievements[playerID]...), nil
}

// ---- harness ----

type failDoer struct{}

func (failDoer) Do(*http.Request) (*http.Response, error) {
	return nil, errors.New("network unavailable")
}

func newTestHandler(t *testing.T, dataDir string) *Handler {
	t.Helper()
	store := newMemStore()
	words := word.NewSource(word.Config{Dir: dataDir, Client: failDoer{}})
	srv := service.New(store, store, memAchievements{store}, words)
	tok, err := token.New([]byte("12345678901234567890123456789012"), "", time.Hour)
	require.NoError(t, err)
	return New(srv, tok)
}

func doJSON(t *testing.T, h *Handler, method, target, bearer string, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, nil)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		r.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, r)
	return w
}

func registerPlayer(t *testing.T, h *Handler, username string) string {
	t.Helper()
	w := doJSON(t, h, http.MethodPost, "/register", "", `{"username":"`+username+`","password":"secret123"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var out struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.NotEmpty(t, out.Token)
	return out.Token
}

// ---- tests ----

func TestHealth(t *testing.T) {
	h := newTestHandler(t, t.TempDir())
	w := doJSON(t, h, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}

func TestRandomWordEndpoint(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "words.txt"), []byte("hello\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "words_meanings.txt"), []byte("hello|a greeting\n"), 0o644))
	h := newTestHandler(t, dir)

	w := doJSON(t, h, http.MethodGet, "/game/random?source=global", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var pick word.Pick
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pick))
	assert.Equal(t, word.Pick{Word: "hello", Display: "hello", Meaning: "a greeting"}, pick)
}

func TestRegisterLoginMe(t *testing.T) {
	h := newTestHandler(t, t.TempDir())
	registerPlayer(t, h, "ada")

	t.Run("duplicate username rejected", func(t *testing.T) {
		w := doJSON(t, h, http.MethodPost, "/register", "", `{"username":"ada","password":"secret123"}`)
		assert.NotEqual(t, http.StatusOK, w.Code)
	})

	t.Run("login and fetch self", func(t *testing.T) {
		w := doJSON(t, h, http.MethodPost, "/login", "", `{"username":"ada","password":"secret123"}`)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var out struct {
			Token string `json:"token"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))

		me := doJSON(t, h, http.MethodGet, "/me", out.Token, "")
		require.Equal(t, http.StatusOK, me.Code, me.Body.String())
		var p playerResponse
		require.NoError(t, json.Unmarshal(me.Body.Bytes(), &p))
		assert.Equal(t, "ada", p.Username)
	})

	t.Run("wrong password rejected", func(t *testing.T) {
		w := doJSON(t, h, http.MethodPost, "/login", "", `{"username":"ada","password":"wrong"}`)
		assert.NotEqual(t, http.StatusOK, w.Code)
	})
}

func TestScoresAndStats(t *testing.T) {
	h := newTestHandler(t, t.TempDir())
	tk := registerPlayer(t, h, "ada")

	w := doJSON(t, h, http.MethodPost, "/scores", tk, `{"score":10,"streak":2,"word":"hello"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var saved scoreResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &saved))
	assert.Equal(t, "normal", saved.Difficulty, "difficulty defaults to normal")

	w = doJSON(t, h, http.MethodPost, "/scores", tk, `{"score":30,"streak":1,"word":"meadow","difficulty":"hard"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	t.Run("recent scores", func(t *testing.T) {
		w := doJSON(t, h, http.MethodGet, "/scores?limit=1", tk, "")
		require.Equal(t, http.StatusOK, w.Code)
		var scores []scoreResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &scores))
		require.Len(t, scores, 1)
		assert.Equal(t, "meadow", scores[0].Word)
	})

	t.Run("stats aggregate", func(t *testing.T) {
		w := doJSON(t, h, http.MethodGet, "/stats", tk, "")
		require.Equal(t, http.StatusOK, w.Code)
		var st statsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &st))
		assert.Equal(t, statsResponse{TotalGames: 2, TotalScore: 40, HighestScore: 30, AverageScore: 20, BestStreak: 2}, st)
	})
}

func TestAchievements(t *testing.T) {
	h := newTestHandler(t, t.TempDir())
	tk := registerPlayer(t, h, "ada")

	unlock := func() unlockResponse {
		w := doJSON(t, h, http.MethodPost, "/achievements/unlock", tk, `{"achievement_id":"firstWin"}`)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var out unlockResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
		return out
	}

	assert.True(t, unlock().Unlocked)
	assert.False(t, unlock().Unlocked, "second unlock is a no-op")

	w := doJSON(t, h, http.MethodGet, "/achievements", tk, "")
	require.Equal(t, http.StatusOK, w.Code)
	var out achievementsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Equal(t, []string{"firstWin"}, out.Achievements)
}

func TestPrivateRoutesRequireAuth(t *testing.T) {
	h := newTestHandler(t, t.TempDir())
	for _, target := range []string{"/me", "/scores", "/stats", "/achievements"} {
		t.Run(target, func(t *testing.T) {
			w := doJSON(t, h, http.MethodGet, target, "", "")
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}
