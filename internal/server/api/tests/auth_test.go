package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/IvanChernomyrdin/go-webforge/internal/server/api"
	"github.com/IvanChernomyrdin/go-webforge/internal/server/config"
	crypt "github.com/IvanChernomyrdin/go-webforge/internal/server/crypto"
	"github.com/IvanChernomyrdin/go-webforge/internal/server/middleware"
	"github.com/IvanChernomyrdin/go-webforge/internal/server/models"
	"github.com/IvanChernomyrdin/go-webforge/internal/server/service"
	svcmocks "github.com/IvanChernomyrdin/go-webforge/internal/server/service/mocks"
	serr "github.com/IvanChernomyrdin/go-webforge/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-webforge/internal/shared/logger"
)

// NewTestHandler создаёт Handler с моками и конфигом через dependency injection
func NewTestHandler(t *testing.T) (*api.Handler, *svcmocks.MockUsersRepo, *svcmocks.MockItemsRepo) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	users := svcmocks.NewMockUsersRepo(ctrl)
	items := svcmocks.NewMockItemsRepo(ctrl)

	cfg := &config.Config{
		Auth: config.AuthConfig{
			TokenSecret: "supersecretkeysupersecretkey123456", // >= 32
			TokenTTL:    time.Hour,
		},
	}

	svc := service.NewServices(service.Repositories{Users: users, Items: items}, cfg)

	verifier := middleware.NewTokenVerifier(crypt.TokenConfig{
		Secret: cfg.Auth.TokenSecret,
		TTL:    cfg.Auth.TokenTTL,
	})
	log := logger.NewHTTPLogger()

	return api.NewHandler(svc, log, verifier), users, items
}

func TestHandler_Signup_BadJSON(t *testing.T) {
	t.Parallel()

	h, _, _ := NewTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", bytes.NewBufferString("{bad json"))
	rec := httptest.NewRecorder()

	h.Signup(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected %d, got %d", http.StatusBadRequest, rec.Code)
	}
	if rec.Body.String() == "" {
		t.Fatalf("expected error body, got empty")
	}
}

func TestHandler_Signup_Success(t *testing.T) {
	t.Parallel()

	h, users, _ := NewTestHandler(t)

	email := "test@example.com"
	password := "StrongPass123"

	users.EXPECT().
		Create(gomock.Any(), email, crypt.Digest(password), "Ivan").
		Return(models.User{ID: 1, Email: email, Name: "Ivan"}, nil)

	body, _ := json.Marshal(api.SignupRequest{Email: email, Password: password, Name: "Ivan"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", bytes.NewReader(body))
	req.Header.Set(api.ContentType, api.JsonContentType)
	rec := httptest.NewRecorder()

	h.Signup(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected %d, got %d, body=%q", http.StatusCreated, rec.Code, rec.Body.String())
	}

	var resp api.AuthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.User.ID != 1 || resp.User.Email != email {
		t.Fatalf("unexpected user: %+v", resp.User)
	}
	if resp.Token == "" {
		t.Fatalf("expected non-empty token")
	}
}

// Пароль ровно 7 символов — 400 с фиксированным текстом
func TestHandler_Signup_ShortPassword(t *testing.T) {
	t.Parallel()

	h, _, _ := NewTestHandler(t)

	body, _ := json.Marshal(api.SignupRequest{Email: "test@example.com", Password: "1234567"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.Signup(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected %d, got %d", http.StatusBadRequest, rec.Code)
	}

	var resp api.ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Error != api.MsgSignupInvalid {
		t.Fatalf("expected %q, got %q", api.MsgSignupInvalid, resp.Error)
	}
}

func TestHandler_Signup_AlreadyExists(t *testing.T) {
	t.Parallel()

	h, users, _ := NewTestHandler(t)

	email := "test@example.com"

	users.EXPECT().
		Create(gomock.Any(), email, gomock.Any(), "").
		Return(models.User{}, serr.ErrAlreadyExists)

	body, _ := json.Marshal(api.SignupRequest{Email: email, Password: "StrongPass123"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.Signup(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected %d, got %d", http.StatusBadRequest, rec.Code)
	}

	var resp api.ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Error != api.MsgEmailTaken {
		t.Fatalf("expected %q, got %q", api.MsgEmailTaken, resp.Error)
	}
}

func TestHandler_Login_BadJSON(t *testing.T) {
	t.Parallel()

	h, _, _ := NewTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString("{bad json"))
	rec := httptest.NewRecorder()

	h.Login(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestHandler_Login_Success(t *testing.T) {
	t.Parallel()

	h, users, _ := NewTestHandler(t)

	email := "test@example.com"
	password := "StrongPass123"

	users.EXPECT().
		GetByEmail(gomock.Any(), email).
		Return(models.User{ID: 1, Email: email, PasswordHash: crypt.Digest(password)}, nil)

	body, _ := json.Marshal(api.LoginRequest{Email: email, Password: password})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set(api.ContentType, api.JsonContentType)
	rec := httptest.NewRecorder()

	h.Login(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d, body=%q", http.StatusOK, rec.Code, rec.Body.String())
	}

	var resp api.AuthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Token == "" {
		t.Fatalf("expected non-empty token, got %+v", resp)
	}
}

func TestHandler_Login_InvalidCredentials(t *testing.T) {
	t.Parallel()

	h, users, _ := NewTestHandler(t)

	email := "test@example.com"

	users.EXPECT().
		GetByEmail(gomock.Any(), email).
		Return(models.User{}, serr.ErrNotFound)

	body, _ := json.Marshal(api.LoginRequest{Email: email, Password: "WrongPass123"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.Login(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected %d, got %d", http.StatusUnauthorized, rec.Code)
	}

	var resp api.ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Error != api.MsgInvalidCredentials {
		t.Fatalf("expected %q, got %q", api.MsgInvalidCredentials, resp.Error)
	}
}
