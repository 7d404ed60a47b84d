// Package repository is responsible for the permanent storage of data of this application
package repository

import (
	"context"

	"github.com/hangword/hangword-server/game"
)

type Player interface {
	// Create saves the new player and fills in its ID and creation time
	Create(ctx context.Context, player *game.Player) error

	// GetByUsername returns a player by username
	GetByUsername(ctx context.Context, username string) (*game.Player, error)

	// GetByID returns a player by ID
	GetByID(ctx context.Context, id int) (*game.Player, error)
}

type Score interface {
	// Save stores a finished round and fills in its ID and completion time
	Save(ctx context.Context, score *game.Score) error

	// ByPlayer returns the player's most recent scores, newest first
	ByPlayer(ctx context.Context, playerID, limit int) ([]game.Score, error)

	// Stats aggregates all of the player's scores
	Stats(ctx context.Context, playerID int) (game.Stats, error)
}

type Achievement interface {
	// Unlock records an achievement once; it reports false when the
	// player already holds it
	Unlock(ctx context.Context, playerID int, name string) (bool, error)

	// ByPlayer returns the names of the player's achievements
	ByPlayer(ctx context.Context, playerID int) ([]string, error)
}
