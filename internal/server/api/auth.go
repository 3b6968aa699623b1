// HTTP-хендлеры регистрации (signup) и входа (login)
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	serr "github.com/IvanChernomyrdin/go-webforge/internal/shared/errors"
	sharedModels "github.com/IvanChernomyrdin/go-webforge/internal/shared/models"
)

// Каждый метод если будет возвращать ответ то будет это делать в JSON
// Вынес Content-Type и JSON для удобства
const (
	JsonContentType string = "application/json"
	ContentType     string = "Content-Type"
)

// Публичные сообщения об ошибках — часть контракта API,
// тексты зафиксированы и не меняются.
const (
	MsgSignupInvalid      = "Email and password (min 8 chars) required"
	MsgEmailTaken         = "Email already registered"
	MsgInvalidCredentials = "Invalid credentials"
	MsgItemNotFound       = "Item not found"
	MsgRouteNotFound      = "Route not found"
	MsgMethodNotAllowed   = "Method not allowed"
	MsgNotFound           = "Not Found"
)

// SignupRequest описывает тело запроса регистрации пользователя.
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
}

// LoginRequest описывает тело запроса входа пользователя.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse описывает успешный ответ signup/login:
// публичные поля пользователя и свежий bearer-токен.
type AuthResponse struct {
	User  sharedModels.UserPublic `json:"user"`
	Token string                  `json:"token"`
}

// Signup обрабатывает регистрацию пользователя.
//
// Ответы:
//   - 201 Created: регистрация успешна, в теле пользователь и токен;
//   - 400 Bad Request: неверный JSON, короткий пароль/пустой email или email уже занят;
//   - 500 Internal Server Error: прочие ошибки.
//
// @Summary      Sign up
// @Description  Registers a new user and returns the user with a bearer token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body SignupRequest true "Signup request"
// @Success      201 {object} AuthResponse
// @Failure      400 {object} ErrorResponse "Validation error or duplicate email"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /api/auth/signup [post]
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON.Error())
		return
	}

	user, token, err := h.Svc.Auth.Signup(r.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrInvalidInput):
			WriteError(w, http.StatusBadRequest, MsgSignupInvalid)
		case errors.Is(err, serr.ErrAlreadyExists):
			WriteError(w, http.StatusBadRequest, MsgEmailTaken)
		default:
			h.Log.Logger.Sugar().Error("signup failed")
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal.Error())
		}
		return
	}

	WriteJSON(w, http.StatusCreated, AuthResponse{
		User:  sharedModels.UserPublic{ID: user.ID, Email: user.Email, Name: user.Name},
		Token: token,
	})
}

// Login обрабатывает вход пользователя и выдачу токена.
//
// Ответы:
//   - 200 OK: успешный вход, в теле пользователь и токен;
//   - 400 Bad Request: неверный JSON;
//   - 401 Unauthorized: неверные учётные данные;
//   - 500 Internal Server Error: прочие ошибки.
//
// @Summary      Log in
// @Description  Authenticates a user and returns the user with a fresh bearer token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login request"
// @Success      200 {object} AuthResponse
// @Failure      401 {object} ErrorResponse "Invalid credentials"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /api/auth/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON.Error())
		return
	}

	user, token, err := h.Svc.Auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrInvalidCredentials):
			WriteError(w, http.StatusUnauthorized, MsgInvalidCredentials)
		default:
			h.Log.Logger.Sugar().Error("login failed")
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal.Error())
		}
		return
	}

	WriteJSON(w, http.StatusOK, AuthResponse{
		User:  sharedModels.UserPublic{ID: user.ID, Email: user.Email, Name: user.Name},
		Token: token,
	})
}
