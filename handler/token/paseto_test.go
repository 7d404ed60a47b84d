package token

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hangword/hangword-server/game"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		key     []byte
		wantErr bool
	}{
		{
			name:    "valid key len",
			key:     []byte("12345678901234567890123456789012"),
			wantErr: false,
		},
		{
			name:    "invalid key len",
			key:     []byte("key"),
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.key, "footer", 24*time.Hour)
			if (err != nil) != tt.wantErr {
				t.Errorf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestPasetoRoundtrip(t *testing.T) {
	p := newPasetoTest(t)
	player := game.Player{ID: 7, Username: "ada", Email: "ada@example.com", Password: "hash"}

	tok, err := p.Generate(context.Background(), player)
	require.NoError(t, err)

	got, err := p.Validate(context.Background(), tok)
	require.NoError(t, err)
	assert.Equal(t, player.ID, got.ID)
	assert.Equal(t, player.Username, got.Username)
	assert.Equal(t, player.Email, got.Email)
	assert.Empty(t, got.Password, "password hash must not travel inside the token")
}

func TestPasetoValidateGarbage(t *testing.T) {
	p := newPasetoTest(t)
	_, err := p.Validate(context.Background(), "not-a-token")
	assert.Error(t, err)
}

func TestPasetoValidateExpired(t *testing.T) {
	p, err := New([]byte("12345678901234567890123456789012"), "footer", -time.Minute)
	require.NoError(t, err)
	tok, err := p.Generate(context.Background(), game.Player{Username: "ada"})
	require.NoError(t, err)
	_, err = p.Validate(context.Background(), tok)
	assert.Error(t, err)
}

// newPasetoTest creates a new paseto instance for testing purposes
func newPasetoTest(t *testing.T) *Paseto {
	p, err := New([]byte("12345678901234567890123456789012"), "footer", 24*time.Hour)
	if err != nil {
		t.Fatalf("failed to create paseto: %v", err)
	}
	return p
}
