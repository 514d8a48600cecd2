package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-auth-api/internal/utils"
	"github.com/MKhiriev/go-auth-api/models"
)

func executeAuth(h *Handler, authHeader string, next apiFunc) *httptest.ResponseRecorder {
	wrapped := h.withAuth(next)
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	_ = wrapped(rr, req)
	return rr
}

func TestWithAuth_MissingOrMalformedHeader(t *testing.T) {
	h, _, _ := newTestHandler(t)

	tests := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"wrong scheme", "Basic dXNlcjpwYXNz"},
		{"scheme without space", "Bearer"},
		{"lowercase scheme", "bearer token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			rr := executeAuth(h, tt.header, func(w http.ResponseWriter, r *http.Request) error {
				nextCalled = true
				return nil
			})

			assert.False(t, nextCalled)
			assert.Equal(t, http.StatusUnauthorized, rr.Code)

			resp := decodeEnvelope(t, rr)
			assert.False(t, resp.Success)
			assert.Equal(t, "Authorization token is required", resp.Error)
		})
	}
}

func TestWithAuth_InvalidToken(t *testing.T) {
	h, creds, _ := newTestHandler(t)

	creds.EXPECT().
		VerifyToken(gomock.Any(), "bad-token").
		Return(models.TokenPayload{}, false)

	nextCalled := false
	rr := executeAuth(h, "Bearer bad-token", func(w http.ResponseWriter, r *http.Request) error {
		nextCalled = true
		return nil
	})

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "Invalid or expired token", decodeEnvelope(t, rr).Error)
}

func TestWithAuth_EmptyBearerTokenIsVerified(t *testing.T) {
	// "Bearer " extracts an empty token; the gate still asks the verifier,
	// which rejects it.
	h, creds, _ := newTestHandler(t)

	creds.EXPECT().
		VerifyToken(gomock.Any(), "").
		Return(models.TokenPayload{}, false)

	rr := executeAuth(h, "Bearer ", func(w http.ResponseWriter, r *http.Request) error {
		t.Fatal("next must not be called")
		return nil
	})

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "Invalid or expired token", decodeEnvelope(t, rr).Error)
}

func TestWithAuth_PanickingVerifier(t *testing.T) {
	h, creds, _ := newTestHandler(t)

	creds.EXPECT().
		VerifyToken(gomock.Any(), "explosive").
		DoAndReturn(func(ctx context.Context, tokenString string) (models.TokenPayload, bool) {
			panic("verifier blew up")
		})

	rr := executeAuth(h, "Bearer explosive", func(w http.ResponseWriter, r *http.Request) error {
		t.Fatal("next must not be called")
		return nil
	})

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "Authentication failed", decodeEnvelope(t, rr).Error)
}

func TestWithAuth_ValidTokenAttachesIdentity(t *testing.T) {
	h, creds, _ := newTestHandler(t)

	payload := models.TokenPayload{UserID: 42, Email: "john@example.com", Name: "John"}
	creds.EXPECT().
		VerifyToken(gomock.Any(), "good-token").
		Return(payload, true)

	var got models.TokenPayload
	var gotOK bool
	rr := executeAuth(h, "Bearer good-token", func(w http.ResponseWriter, r *http.Request) error {
		got, gotOK = utils.GetTokenPayload(r.Context())
		w.WriteHeader(http.StatusOK)
		return nil
	})

	assert.Equal(t, http.StatusOK, rr.Code)
	require.True(t, gotOK)
	assert.Equal(t, payload, got)
}

func TestWithAuth_IdentityVisibleToOuterChain(t *testing.T) {
	// The gate writes into the metadata holder created before it in the
	// chain, so outer middleware observes the authenticated user id.
	h, creds, _ := newTestHandler(t)

	payload := models.TokenPayload{UserID: 7}
	creds.EXPECT().
		VerifyToken(gomock.Any(), "good-token").
		Return(payload, true)

	meta := &utils.RequestMeta{RequestID: "req-1"}
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req = req.WithContext(utils.WithRequestMeta(req.Context(), meta))
	req.Header.Set("Authorization", "Bearer good-token")

	rr := httptest.NewRecorder()
	_ = h.withAuth(func(w http.ResponseWriter, r *http.Request) error {
		return nil
	})(rr, req)

	assert.Equal(t, int64(7), meta.UserID())
}
