package service

import (
	"context"

	"github.com/lordvidex/errs/v2"

	"github.com/hangword/hangword-server/game"
	"github.com/hangword/hangword-server/repository"
)

// defaultScoreLimit caps score listings when the caller gives no limit.
const defaultScoreLimit = 10

type scoreService struct {
	sr repository.Score
	ar repository.Achievement
}

func newScoreSrv(sr repository.Score, ar repository.Achievement) *scoreService {
	return &scoreService{sr: sr, ar: ar}
}

func (s *scoreService) SaveScore(ctx context.Context, score *game.Score) error {
	if score == nil {
		return ErrNoPlayer
	}
	if score.Difficulty == "" {
		score.Difficulty = "normal"
	}
	if err := s.sr.Save(ctx, score); err != nil {
		return errs.WrapCode(err, errs.Internal, "error saving score")
	}
	return nil
}

func (s *scoreService) PlayerScores(ctx context.Context, playerID, limit int) ([]game.Score, error) {
	if limit <= 0 {
		limit = defaultScoreLimit
	}
	scores, err := s.sr.ByPlayer(ctx, playerID, limit)
	if err != nil {
		return nil, errs.WrapCode(err, errs.Internal, "error fetching scores")
	}
	return scores, nil
}

func (s *scoreService) PlayerStats(ctx context.Context, playerID int) (game.Stats, error) {
	stats, err := s.sr.Stats(ctx, playerID)
	if err != nil {
		return game.Stats{}, errs.WrapCode(err, errs.Internal, "error fetching stats")
	}
	return stats, nil
}

// UnlockAchievement records the achievement once; it reports false when
// the player already holds it.
func (s *scoreService) UnlockAchievement(ctx context.Context, playerID int, name string) (bool, error) {
	unlocked, err := s.ar.Unlock(ctx, playerID, name)
	if err != nil {
		return false, errs.WrapCode(err, errs.Internal, "error unlocking achievement")
	}
	return unlocked, nil
}

func (s *scoreService) Achievements(ctx context.Context, playerID int) ([]string, error) {
	names, err := s.ar.ByPlayer(ctx, playerID)
	if err != nil {
		return nil, errs.WrapCode(err, errs.Internal, "error fetching achievements")
	}
	return names, nil
}
