// Package token is responsible for generating and validating authentication tokens
package token

import (
	"context"

	"github.com/lordvidex/x/auth"

	"github.com/hangword/hangword-server/game"
)

type Handler interface {
	// Generate creates a new token for the given player
	Generate(context.Context, game.Player) (auth.Token, error)
	// Validate validates the given token and returns the player object
	Validate(context.Context, auth.Token) (game.Player, error)
}
