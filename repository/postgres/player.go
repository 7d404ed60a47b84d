package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/hangword/hangword-server/game"
	"github.com/hangword/hangword-server/repository"
)

var _ repository.Player = new(PlayerRepo)

type PlayerRepo struct {
	db DBTX
}

func NewPlayerRepo(db DBTX) *PlayerRepo {
	return &PlayerRepo{db: db}
}

// Create implements repository.Player.
func (r *PlayerRepo) Create(ctx context.Context, player *game.Player) error {
	email := pgtype.Text{String: player.Email, Valid: player.Email != ""}
	row := r.db.QueryRow(ctx, `
		INSERT INTO player (username, email, password)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`,
		player.Username, email, player.Password)
	return row.Scan(&player.ID, &player.CreatedAt)
}

// GetByUsername implements repository.Player.
func (r *PlayerRepo) GetByUsername(ctx context.Context, username string) (*game.Player, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, username, COALESCE(email, ''), password, created_at
		FROM player
		WHERE username = $1`, username)
	return scanPlayer(row)
}

// GetByID implements repository.Player.
func (r *PlayerRepo) GetByID(ctx context.Context, id int) (*game.Player, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, username, COALESCE(email, ''), password, created_at
		FROM player
		WHERE id = $1`, id)
	return scanPlayer(row)
}

func scanPlayer(row interface{ Scan(...any) error }) (*game.Player, error) {
	var p game.Player
	if err := row.Scan(&p.ID, &p.Username, &p.Email, &p.Password, &p.CreatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}
