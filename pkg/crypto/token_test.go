package crypto

import "testing"

// Requirement: GenerateHashedToken returns a token whose hash matches HashToken.
func TestGenerateHashedToken(t *testing.T) {
	pair, err := GenerateHashedToken(0)
	if err != nil {
		t.Fatalf("GenerateHashedToken() error = %v", err)
	}
	if pair.Token == "" || pair.Hash == "" {
		t.Fatal("GenerateHashedToken() returned empty token or hash")
	}
	if HashToken(pair.Token) != pair.Hash {
		t.Error("pair.Hash should equal HashToken(pair.Token)")
	}
}

// Requirement: tokens are unique across generations.
func TestGenerateHashedToken_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		pair, err := GenerateHashedToken(DefaultTokenLength)
		if err != nil {
			t.Fatalf("GenerateHashedToken() error = %v", err)
		}
		if seen[pair.Token] {
			t.Fatalf("duplicate token generated: %q", pair.Token)
		}
		seen[pair.Token] = true
	}
}

// Requirement: VerifyToken accepts the matching token and rejects everything else.
func TestVerifyToken(t *testing.T) {
	pair, err := GenerateHashedToken(0)
	if err != nil {
		t.Fatalf("GenerateHashedToken() error = %v", err)
	}

	tests := []struct {
		name    string
		token   string
		hash    string
		want    bool
		wantErr bool
	}{
		{name: "matching token", token: pair.Token, hash: pair.Hash, want: true},
		{name: "wrong token", token: "not-the-token", hash: pair.Hash, want: false},
		{name: "empty token", token: "", hash: pair.Hash, wantErr: true},
		{name: "empty hash", token: pair.Token, hash: "", wantErr: true},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			ok, err := VerifyToken(test.token, test.hash)
			if (err != nil) != test.wantErr {
				t.Fatalf("VerifyToken() error = %v, wantErr %v", err, test.wantErr)
			}
			if !test.wantErr && ok != test.want {
				t.Errorf("VerifyToken() = %v, want %v", ok, test.want)
			}
		})
	}
}
