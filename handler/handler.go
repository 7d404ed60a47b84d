package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lordvidex/x/auth"
	"github.com/lordvidex/x/req"
	"github.com/lordvidex/x/resp"

	"github.com/hangword/hangword-server/game"
	"github.com/hangword/hangword-server/handler/token"
	"github.com/hangword/hangword-server/service"
)

type Handler struct {
	s      *http.Server
	router chi.Router
	srv    *service.Service
	token  token.Handler
}

func New(srv *service.Service, tokenHandler token.Handler) *Handler {
	h := &Handler{
		router: chi.NewRouter(),
		srv:    srv,
		token:  tokenHandler,
	}
	h.setup()
	return h
}

func (h *Handler) Start(port string) error {
	h.s = &http.Server{Addr: ":" + port, Handler: h.router}
	return h.s.ListenAndServe()
}

func (h *Handler) Stop(ctx context.Context) error {
	return h.s.Shutdown(ctx)
}

func (h *Handler) setup() {
	r := h.router
	// Public routes
	r.Group(func(r chi.Router) {
		r.Get("/health", h.health)
		r.Post("/login", h.login)
		r.Post("/register", h.register)
		r.Get("/game/random", h.randomWord)
	})

	// Private routes
	r.Group(func(r chi.Router) {
		r.Use(h.authMiddleware(AuthDecodeTypeFetch))

		r.Get("/me", h.me)
		r.Post("/scores", h.saveScore)
		r.Get("/scores", h.scores)
		r.Get("/stats", h.stats)
		r.Post("/achievements/unlock", h.unlockAchievement)
		r.Get("/achievements", h.achievements)
	})
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// randomWord returns one word from the requested pool. The word
// subsystem converts every internal failure into a fallback, so this
// endpoint never returns an error response.
func (h *Handler) randomWord(w http.ResponseWriter, r *http.Request) {
	source := r.URL.Query().Get("source")
	resp.JSON(w, h.srv.RandomWord(r.Context(), source))
}

type loginParams struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type registerParams struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Email    string `json:"email" validate:"omitempty,email"`
}

type loginResponse struct {
	Token string `json:"token"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var payload loginParams
	defer r.Body.Close()
	if err := req.I.Will().Bind(r, &payload).Validate(payload).Err(); err != nil {
		resp.Error(w, err)
		return
	}

	var (
		player *game.Player
		err    error
		tk     auth.Token
	)
	if player, err = h.srv.GetPlayer(r.Context(), payload.Username); err != nil {
		resp.Error(w, err)
		return
	}
	if err = h.srv.ComparePasswords(player.Password, payload.Password); err != nil {
		resp.Error(w, err)
		return
	}
	if tk, err = h.token.Generate(r.Context(), *player); err != nil {
		resp.Error(w, err)
		return
	}
	resp.JSON(w, loginResponse{Token: string(tk)})
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var payload registerParams
	defer r.Body.Close()
	if err := req.I.Will().Bind(r, &payload).Validate(payload).Err(); err != nil {
		resp.Error(w, err)
		return
	}
	ctx := r.Context()
	player := game.Player{Username: payload.Username, Password: payload.Password, Email: payload.Email}
	if err := h.srv.CreatePlayer(ctx, &player); err != nil {
		resp.Error(w, err)
		return
	}
	var (
		tk  auth.Token
		err error
	)
	if tk, err = h.token.Generate(ctx, player); err != nil {
		resp.Error(w, err)
		return
	}
	resp.JSON(w, loginResponse{Token: string(tk)})
}

type playerResponse struct {
	ID        int       `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	player := PlayerFromCtx(r.Context())
	if player == nil {
		resp.Error(w, ErrUnauthenticated)
		return
	}
	resp.JSON(w, playerResponse{
		ID:        player.ID,
		Username:  player.Username,
		Email:     player.Email,
		CreatedAt: player.CreatedAt,
	})
}

type saveScoreParams struct {
	Score      int    `json:"score" validate:"gte=0"`
	Streak     int    `json:"streak" validate:"gte=0"`
	Word       string `json:"word" validate:"required"`
	Difficulty string `json:"difficulty" validate:"omitempty,oneof=normal hard expert"`
}

type scoreResponse struct {
	ID          int       `json:"id"`
	Score       int       `json:"score"`
	Streak      int       `json:"streak"`
	Word        string    `json:"word"`
	Difficulty  string    `json:"difficulty"`
	CompletedAt time.Time `json:"completed_at"`
}

func toScore(s game.Score) scoreResponse {
	return scoreResponse{
		ID:          s.ID,
		Score:       s.Score,
		Streak:      s.Streak,
		Word:        s.Word,
		Difficulty:  s.Difficulty,
		CompletedAt: s.CompletedAt,
	}
}

func (h *Handler) saveScore(w http.ResponseWriter, r *http.Request) {
	player := PlayerFromCtx(r.Context())
	if player == nil {
		resp.Error(w, ErrUnauthenticated)
		return
	}
	var payload saveScoreParams
	defer r.Body.Close()
	if err := req.I.Will().Bind(r, &payload).Validate(payload).Err(); err != nil {
		resp.Error(w, err)
		return
	}
	score := game.Score{
		PlayerID:   player.ID,
		Score:      payload.Score,
		Streak:     payload.Streak,
		Word:       payload.Word,
		Difficulty: payload.Difficulty,
	}
	if err := h.srv.SaveScore(r.Context(), &score); err != nil {
		resp.Error(w, err)
		return
	}
	resp.JSON(w, toScore(score))
}

func (h *Handler) scores(w http.ResponseWriter, r *http.Request) {
	player := PlayerFromCtx(r.Context())
	if player == nil {
		resp.Error(w, ErrUnauthenticated)
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	scores, err := h.srv.PlayerScores(r.Context(), player.ID, limit)
	if err != nil {
		resp.Error(w, err)
		return
	}
	out := make([]scoreResponse, len(scores))
	for i, s := range scores {
		out[i] = toScore(s)
	}
	resp.JSON(w, out)
}

type statsResponse struct {
	TotalGames   int `json:"total_games"`
	TotalScore   int `json:"total_score"`
	HighestScore int `json:"highest_score"`
	AverageScore int `json:"average_score"`
	BestStreak   int `json:"best_streak"`
}

func (h *Handler) stats(w http.ResponseWriter, r *http.Request) {
	player := PlayerFromCtx(r.Context())
	if player == nil {
		resp.Error(w, ErrUnauthenticated)
		return
	}
	stats, err := h.srv.PlayerStats(r.Context(), player.ID)
	if err != nil {
		resp.Error(w, err)
		return
	}
	resp.JSON(w, statsResponse{
		TotalGames:   stats.TotalGames,
		TotalScore:   stats.TotalScore,
		HighestScore: stats.HighestScore,
		AverageScore: stats.AverageScore,
		BestStreak:   stats.BestStreak,
	})
}

type unlockParams struct {
	AchievementID string `json:"achievement_id" validate:"required"`
}

type unlockResponse struct {
	Unlocked      bool   `json:"unlocked"`
	AchievementID string `json:"achievement_id"`
}

func (h *Handler) unlockAchievement(w http.ResponseWriter, r *http.Request) {
	player := PlayerFromCtx(r.Context())
	if player == nil {
		resp.Error(w, ErrUnauthenticated)
		return
	}
	var payload unlockParams
	defer r.Body.Close()
	if err := req.I.Will().Bind(r, &payload).Validate(payload).Err(); err != nil {
		resp.Error(w, err)
		return
	}
	unlocked, err := h.srv.UnlockAchievement(r.Context(), player.ID, payload.AchievementID)
	if err != nil {
		resp.Error(w, err)
		return
	}
	resp.JSON(w, unlockResponse{Unlocked: unlocked, AchievementID: payload.AchievementID})
}

type achievementsResponse struct {
	Achievements []string `json:"achievements"`
}

func (h *Handler) achievements(w http.ResponseWriter, r *http.Request) {
	player := PlayerFromCtx(r.Context())
	if player == nil {
		resp.Error(w, ErrUnauthenticated)
		return
	}
	names, err := h.srv.Achievements(r.Context(), player.ID)
	if err != nil {
		resp.Error(w, err)
		return
	}
	if names == nil {
		names = []string{}
	}
	resp.JSON(w, achievementsResponse{Achievements: names})
}
