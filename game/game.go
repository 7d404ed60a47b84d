// Package game holds the domain types shared by the handler, service and
// repository layers.
package game

import "time"

// Player is a registered user of the game.
type Player struct {
	ID        int
	Username  string
	Email     string
	Password  string // hashed at rest, wiped before leaving the service layer
	CreatedAt time.Time
}

// Score is a single finished round submitted by a player.
type Score struct {
	ID          int
	PlayerID    int
	Score       int
	Streak      int
	Word        string
	Difficulty  string // normal, hard, expert
	CompletedAt time.Time
}

// Stats aggregates a player's scores. AverageScore uses integer division
// and all fields are zero when the player has no scores.
type Stats struct {
	TotalGames   int
	TotalScore   int
	HighestScore int
	AverageScore int
	BestStreak   int
}

// Achievement records an unlocked achievement, e.g. "firstWin".
type Achievement struct {
	ID         int
	PlayerID   int
	Name       string
	UnlockedAt time.Time
}
