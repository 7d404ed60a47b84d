// Package service wires the repositories and the word source into the
// application's business operations.
package service

import (
	"context"

	"github.com/lordvidex/errs/v2"

	"github.com/hangword/hangword-server/game/word"
	"github.com/hangword/hangword-server/repository"
)

var (
	ErrNoPlayer = errs.B().Code(errs.InvalidArgument).Msg("player not provided").Err()
)

type Service struct {
	*playerService
	*scoreService
	words *word.Source
}

func New(pr repository.Player, sr repository.Score, ar repository.Achievement, words *word.Source) *Service {
	return &Service{
		playerService: newPlayerSrv(pr),
		scoreService:  newScoreSrv(sr, ar),
		words:         words,
	}
}

// RandomWord picks one word from the requested pool ("global",
// "countries" or both) with its display form and meaning. It never
// fails; exhausted pools resolve to built-in data.
func (s *Service) RandomWord(ctx context.Context, source string) word.Pick {
	return s.words.Random(ctx, source)
}
