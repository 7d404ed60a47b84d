package hasher

import "testing"

func TestBcrypt(t *testing.T) {
	var bc Bcrypt

	tests := []struct {
		name            string
		password        string
		comparePassword string
		equal           bool
	}{
		{
			name:            "matching passwords",
			password:        "pass-1",
			comparePassword: "pass-1",
			equal:           true,
		},
		{
			name:            "different passwords",
			password:        "pass-1",
			comparePassword: "pass-2",
			equal:           false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := bc.Hash(tt.password)
			if err != nil {
				t.Fatalf("error hashing password: %v", err)
			}
			err = bc.Compare(hash, tt.comparePassword)
			if tt.equal && err != nil {
				t.Errorf("error comparing password: %v", err)
			}
			if !tt.equal && err == nil {
				t.Error("expected mismatch error, got nil")
			}
		})
	}
}

func TestBcryptCompareGarbageHash(t *testing.T) {
	var bc Bcrypt
	if err := bc.Compare("not-a-hash", "pass-1"); err == nil {
		t.Error("expected error for malformed hash")
	}
}
