package service

import (
	"context"

	"github.com/lordvidex/errs/v2"

	"github.com/hangword/hangword-server/game"
	"github.com/hangword/hangword-server/repository"
	"github.com/hangword/hangword-server/service/hasher"
)

type playerService struct {
	pr repository.Player
	h  hasher.Bcrypt
}

func newPlayerSrv(pr repository.Player) *playerService {
	return &playerService{pr: pr}
}

func (s *playerService) CreatePlayer(ctx context.Context, player *game.Player) error {
	if player == nil {
		return ErrNoPlayer
	}
	var err error
	player.Password, err = s.h.Hash(player.Password)
	if err != nil {
		return errs.WrapCode(err, errs.Internal, "password processing error")
	}
	if err = s.pr.Create(ctx, player); err != nil {
		return errs.WrapCode(err, errs.InvalidArgument, "error creating player")
	}
	return nil
}

func (s *playerService) GetPlayer(ctx context.Context, username string) (*game.Player, error) {
	p, err := s.pr.GetByUsername(ctx, username)
	if err != nil {
		return nil, errs.WrapCode(err, errs.NotFound, "player not found")
	}
	return p, nil
}

func (s *playerService) ComparePasswords(hash, original string) error {
	return s.h.Compare(hash, original)
}
