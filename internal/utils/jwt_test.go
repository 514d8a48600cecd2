package utils

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-auth-api/models"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	payload := models.TokenPayload{UserID: 123, Email: "john@example.com", Name: "John"}
	duration := time.Hour
	key := "secret-key"

	token, err := GenerateJWTToken(issuer, payload, duration, key)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token == "" {
		t.Error("expected non-empty signed token")
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", time.Hour, "key"},
		{"zero duration", "iss", 0, "key"},
		{"empty key", "iss", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, models.TokenPayload{UserID: 1}, tt.duration, tt.key)
			if err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	payload := models.TokenPayload{UserID: 456, Email: "jane@example.com", Name: "Jane"}
	key := "secret-key"

	tokenString, err := GenerateJWTToken(issuer, payload, time.Minute*5, key)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	parsed, err := ValidateAndParseJWTToken(tokenString, key, issuer)

	if err != nil {
		t.Fatalf("expected token to be valid, got error: %v", err)
	}
	if parsed.UserID != payload.UserID {
		t.Errorf("expected userID %d, got %d", payload.UserID, parsed.UserID)
	}
	if parsed.Email != payload.Email {
		t.Errorf("expected email %s, got %s", payload.Email, parsed.Email)
	}
	if parsed.Name != payload.Name {
		t.Errorf("expected name %s, got %s", payload.Name, parsed.Name)
	}
}

func TestValidateAndParseJWTToken_InvalidKey(t *testing.T) {
	issuer := "test-issuer"
	key := "correct-key"
	wrongKey := "wrong-key"

	tokenString, _ := GenerateJWTToken(issuer, models.TokenPayload{UserID: 1}, time.Hour, key)

	_, err := ValidateAndParseJWTToken(tokenString, wrongKey, issuer)
	if err == nil {
		t.Error("expected error due to signature mismatch, got nil")
	}
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	issuer := "test-issuer"
	key := "key"
	// token that expired 1 second ago
	tokenString, _ := GenerateJWTToken(issuer, models.TokenPayload{UserID: 1}, -time.Second, key)

	_, err := ValidateAndParseJWTToken(tokenString, key, issuer)
	if err == nil {
		t.Error("expected error for expired token, got nil")
	}
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	key := "key"
	tokenString, _ := GenerateJWTToken("real-issuer", models.TokenPayload{UserID: 1}, time.Hour, key)

	_, err := ValidateAndParseJWTToken(tokenString, key, "fake-issuer")
	if err == nil {
		t.Error("expected error for issuer mismatch, got nil")
	}
}

func TestValidateAndParseJWTToken_Malformed(t *testing.T) {
	_, err := ValidateAndParseJWTToken("not-a-jwt", "key", "issuer")
	if err == nil {
		t.Error("expected error for malformed token, got nil")
	}
}

func TestExtractBearerToken_TableTest(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantOK    bool
	}{
		{
			name:      "valid Bearer token",
			header:    "Bearer my-jwt-token",
			wantToken: "my-jwt-token",
			wantOK:    true,
		},
		{
			name:   "empty header",
			header: "",
			wantOK: false,
		},
		{
			name:   "scheme without trailing space",
			header: "Bearer",
			wantOK: false,
		},
		{
			name:      "scheme with trailing space only",
			header:    "Bearer ",
			wantToken: "",
			wantOK:    true,
		},
		{
			name:   "different scheme",
			header: "Basic dXNlcjpwYXNz",
			wantOK: false,
		},
		{
			name:   "lowercase scheme",
			header: "bearer token",
			wantOK: false,
		},
		{
			name:      "token with internal spaces passes through",
			header:    "Bearer token extra-part",
			wantToken: "token extra-part",
			wantOK:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, ok := ExtractBearerToken(tt.header)
			if ok != tt.wantOK {
				t.Fatalf("expected ok=%v, got %v", tt.wantOK, ok)
			}
			if token != tt.wantToken {
				t.Errorf("expected token %q, got %q", tt.wantToken, token)
			}
		})
	}
}
