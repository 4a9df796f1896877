package api

import (
	"errors"
	"net/http"

	"github.com/cmaina/shoplist-api/internal/api/shared"
	"github.com/cmaina/shoplist-api/internal/domain"
	"github.com/cmaina/shoplist-api/internal/platform/logger"
	"github.com/cmaina/shoplist-api/internal/service/auth"
	"github.com/cmaina/shoplist-api/internal/store"
)

// AuthHandler handles registration and login.
type AuthHandler struct {
	users    store.UserStore
	tokens   auth.TokenService
	hasher   auth.PasswordHasher
	verifier auth.PasswordVerifier
}

// NewAuthHandler creates an AuthHandler with the given dependencies.
func NewAuthHandler(
	users store.UserStore,
	tokens auth.TokenService,
	hasher auth.PasswordHasher,
	verifier auth.PasswordVerifier,
) *AuthHandler {
	return &AuthHandler{
		users:    users,
		tokens:   tokens,
		hasher:   hasher,
		verifier: verifier,
	}
}

// Register handles POST /auth/register/.
// A duplicate email answers 202, not 409; the original API shipped
// that way and clients depend on it.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := domain.ValidateEmail(req.Email); err != nil {
		shared.RespondWithError(w, r, http.StatusForbidden, err.Error())
		return
	}
	if err := domain.ValidatePassword(req.Password); err != nil {
		shared.RespondWithError(w, r, http.StatusForbidden, err.Error())
		return
	}

	user, err := domain.NewUser(req.Email, req.Password)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusForbidden, err.Error())
		return
	}

	user.HashedPassword, err = h.hasher.Hash(user.Password)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Something went wrong. Please try again", err)
		return
	}

	if err := h.users.Create(r.Context(), user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			shared.RespondWithError(w, r, http.StatusAccepted, "User already exists. Please login")
			return
		}
		handleUnexpectedError(w, r, err)
		return
	}

	logger.FromContext(r.Context()).Info("user registered", "user_id", user.ID)
	shared.RespondWithJSON(w, r, http.StatusCreated, MessageResponse{
		Message: "You have been registered successfully. Please login",
	})
}

// RegisterInfo handles GET /auth/register/.
func (h *AuthHandler) RegisterInfo(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{
		Message: "To register, send a POST request with email and password to /auth/register/",
	})
}

// Login handles POST /auth/login/.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if req.Email == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Please fill email field")
		return
	}
	if req.Password == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Please fill password field")
		return
	}

	user, err := h.users.GetByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			shared.RespondWithError(w, r, http.StatusUnauthorized,
				"Invalid email or password, Please try again")
			return
		}
		handleUnexpectedError(w, r, err)
		return
	}

	if err := h.verifier.Compare(user.HashedPassword, req.Password); err != nil {
		shared.RespondWithError(w, r, http.StatusUnauthorized,
			"Invalid email or password, Please try again")
		return
	}

	token, err := h.tokens.GenerateToken(r.Context(), user.ID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Something went wrong. Please try again", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, LoginResponse{
		AccessToken: token,
		Message:     "Login successful",
	})
}

// LoginInfo handles GET /auth/login/.
func (h *AuthHandler) LoginInfo(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{
		Message: "To login, send a POST request with your email and password to /auth/login/",
	})
}
