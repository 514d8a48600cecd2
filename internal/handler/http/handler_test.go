package http

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-auth-api/internal/config"
	"github.com/MKhiriev/go-auth-api/internal/logger"
	"github.com/MKhiriev/go-auth-api/internal/service"
	"github.com/MKhiriev/go-auth-api/internal/service/mocks"
	"github.com/MKhiriev/go-auth-api/internal/utils"
	"github.com/MKhiriev/go-auth-api/models"
)

// ---- Helpers ----

func newTestHandler(t *testing.T) (*Handler, *mocks.MockCredentialService, *mocks.MockUserService) {
	ctrl := gomock.NewController(t)
	creds := mocks.NewMockCredentialService(ctrl)
	users := mocks.NewMockUserService(ctrl)

	h := &Handler{
		services: &service.Services{
			CredentialService: creds,
			UserService:       users,
		},
		app:    config.App{Environment: "test"},
		logger: logger.Nop(),
		uuid:   utils.NewUUIDGenerator(),
	}
	return h, creds, users
}

func newProductionHandler(t *testing.T) (*Handler, *mocks.MockCredentialService, *mocks.MockUserService) {
	h, creds, users := newTestHandler(t)
	h.app.Environment = config.EnvProduction
	return h, creds, users
}

// decodeEnvelope parses the uniform response envelope from a recorder.
func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) models.Response {
	t.Helper()
	var resp models.Response
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response body is not a valid envelope: %v\nbody: %s", err, rr.Body.String())
	}
	return resp
}
