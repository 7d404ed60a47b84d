package postgres

import (
	"context"

	"github.com/hangword/hangword-server/game"
	"github.com/hangword/hangword-server/repository"
)

var _ repository.Score = new(ScoreRepo)

type ScoreRepo struct {
	db DBTX
}

func NewScoreRepo(db DBTX) *ScoreRepo {
	return &ScoreRepo{db: db}
}

// Save implements repository.Score.
func (r *ScoreRepo) Save(ctx context.Context, score *game.Score) error {
	row := r.db.QueryRow(ctx, `
		INSERT INTO score (player_id, score, streak, word, difficulty)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, completed_at`,
		score.PlayerID, score.Score, score.Streak, score.Word, score.Difficulty)
	return row.Scan(&score.ID, &score.CompletedAt)
}

// ByPlayer implements repository.Score.
func (r *ScoreRepo) ByPlayer(ctx context.Context, playerID, limit int) ([]game.Score, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, player_id, score, streak, word, difficulty, completed_at
		FROM score
		WHERE player_id = $1
		ORDER BY completed_at DESC
		LIMIT $2`, playerID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var scores []game.Score
	for rows.Next() {
		var s game.Score
		if err := rows.Scan(&s.ID, &s.PlayerID, &s.Score, &s.Streak, &s.Word, &s.Difficulty, &s.CompletedAt); err != nil {
			return nil, err
		}
		scores = append(scores, s)
	}
	return scores, rows.Err()
}

// Stats implements repository.Score. The average uses integer division
// and every field is zero for a player with no scores.
func (r *ScoreRepo) Stats(ctx context.Context, playerID int) (game.Stats, error) {
	var st game.Stats
	row := r.db.QueryRow(ctx, `
		SELECT COUNT(*),
		       COALESCE(SUM(score), 0),
		       COALESCE(MAX(score), 0),
		       COALESCE(MAX(streak), 0)
		FROM score
		WHERE player_id = $1`, playerID)
	if err := row.Scan(&st.TotalGames, &st.TotalScore, &st.HighestScore, &st.BestStreak); err != nil {
		return game.Stats{}, err
	}
	if st.TotalGames > 0 {
		st.AverageScore = st.TotalScore / st.TotalGames
	}
	return st, nil
}

var _ repository.Achievement = new(AchievementRepo)

type AchievementRepo struct {
	db DBTX
}

func NewAchievementRepo(db DBTX) *AchievementRepo {
	return &AchievementRepo{db: db}
}

// Unlock implements repository.Achievement. The unique (player_id, name)
// constraint makes repeated unlocks no-ops.
func (r *AchievementRepo) Unlock(ctx context.Context, playerID int, name string) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		INSERT INTO achievement (player_id, name)
		VALUES ($1, $2)
		ON CONFLICT (player_id, name) DO NOTHING`, playerID, name)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// ByPlayer implements repository.Achievement.
func (r *AchievementRepo) ByPlayer(ctx context.Context, playerID int) ([]string, error) {
	rows, err := r.db.Query(ctx, `
		SELECT name
		FROM achievement
		WHERE player_id = $1
		ORDER BY unlocked_at`, playerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, err
		}
		names = append(names, n)
	}
	return names, rows.Err()
}
