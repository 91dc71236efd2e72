package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/chartboard-backend/internal/domain"
	"github.com/heartmarshall/chartboard-backend/internal/service/auth"
)

// authService defines the minimal interface needed by AuthHandler.
type authService interface {
	Register(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error)
	Login(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error)
	Refresh(ctx context.Context, input auth.RefreshInput) (string, error)
}

type userLookup interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

// AuthHandler serves auth REST endpoints.
type AuthHandler struct {
	svc   authService
	users userLookup
	log   *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc authService, users userLookup, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, users: users, log: logger.With("handler", "auth")}
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type refreshRequest struct {
	Token string `json:"token"`
}

type authResponse struct {
	Message string       `json:"message"`
	User    userResponse `json:"user"`
	Token   string       `json:"token"`
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.svc.Register(r.Context(), auth.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, authResponse{
		Message: "user registered successfully",
		User:    toUserResponse(result.User),
		Token:   result.Token,
	})
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.svc.Login(r.Context(), auth.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, authResponse{
		Message: "login successful",
		User:    toUserResponse(result.User),
		Token:   result.Token,
	})
}

// Refresh handles POST /auth/refresh-token.
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	token, err := h.svc.Refresh(r.Context(), auth.RefreshInput{Token: req.Token})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

// UserByUsername handles GET /auth/user/{username}. Only public fields are
// returned.
func (h *AuthHandler) UserByUsername(w http.ResponseWriter, r *http.Request) {
	u, err := h.users.GetByUsername(r.Context(), r.PathValue("username"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, publicUserResponse{ID: u.ID, Username: u.Username})
}
