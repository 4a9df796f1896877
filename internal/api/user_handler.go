package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cmaina/shoplist-api/internal/api/shared"
	"github.com/cmaina/shoplist-api/internal/domain"
	"github.com/cmaina/shoplist-api/internal/platform/logger"
	"github.com/cmaina/shoplist-api/internal/service/auth"
	"github.com/cmaina/shoplist-api/internal/store"
)

// UserHandler handles the profile and password reset endpoints.
type UserHandler struct {
	users  store.UserStore
	tokens auth.TokenService
	hasher auth.PasswordHasher
}

// NewUserHandler creates a UserHandler with the given dependencies.
func NewUserHandler(users store.UserStore, tokens auth.TokenService, hasher auth.PasswordHasher) *UserHandler {
	return &UserHandler{users: users, tokens: tokens, hasher: hasher}
}

// Profile handles GET /user.
func (h *UserHandler) Profile(w http.ResponseWriter, r *http.Request) {
	userID, ok := shared.UserID(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid token. Please register or login")
		return
	}

	user, err := h.users.GetByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "User not found")
			return
		}
		handleUnexpectedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ProfileResponse{
		ID:    user.ID,
		Email: user.Email,
	})
}

// UpdateProfile handles PUT /user. Empty fields keep their current
// values; supplied fields go through the same validation as
// registration.
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := shared.UserID(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid token. Please register or login")
		return
	}

	var req UpdateProfileRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	user, err := h.users.GetByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "User not found")
			return
		}
		handleUnexpectedError(w, r, err)
		return
	}

	if req.Email != "" {
		if err := domain.ValidateEmail(req.Email); err != nil {
			shared.RespondWithError(w, r, http.StatusForbidden, err.Error())
			return
		}
		user.Email = req.Email
	}
	if req.Password != "" {
		if err := domain.ValidatePassword(req.Password); err != nil {
			shared.RespondWithError(w, r, http.StatusForbidden, err.Error())
			return
		}
		user.HashedPassword, err = h.hasher.Hash(req.Password)
		if err != nil {
			shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
				"Something went wrong. Please try again", err)
			return
		}
	}

	if err := h.users.Update(r.Context(), user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			shared.RespondWithError(w, r, http.StatusFound, "User with that email already exists")
			return
		}
		handleUnexpectedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{
		Message: "Account updated successfully",
	})
}

// RequestReset handles POST /user/reset. The reset token is returned
// in the response body; there is no mail delivery.
func (h *UserHandler) RequestReset(w http.ResponseWriter, r *http.Request) {
	var req ResetRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if req.Email == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Please fill email field")
		return
	}

	user, err := h.users.GetByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			shared.RespondWithError(w, r, http.StatusBadRequest, "User with that email does not exist")
			return
		}
		handleUnexpectedError(w, r, err)
		return
	}

	token, err := h.tokens.GenerateResetToken(r.Context(), user.Email)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Something went wrong. Please try again", err)
		return
	}

	logger.FromContext(r.Context()).Info("password reset requested", "user_id", user.ID)
	shared.RespondWithJSON(w, r, http.StatusOK, ResetTokenResponse{
		ResetToken: token,
		Message:    "Use the reset token to reset your password",
	})
}

// ResetPassword handles PUT /user/reset/password/{token}.
func (h *UserHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	tokenString := chi.URLParam(r, "token")

	email, err := h.tokens.ValidateResetToken(r.Context(), tokenString)
	if err != nil {
		if errors.Is(err, auth.ErrExpiredToken) {
			shared.RespondWithError(w, r, http.StatusUnauthorized,
				"Expired token. Please login to get a new token")
			return
		}
		shared.RespondWithError(w, r, http.StatusUnauthorized,
			"Invalid token. Please register or login")
		return
	}

	var req ResetPasswordRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := domain.ValidatePassword(req.Password); err != nil {
		shared.RespondWithError(w, r, http.StatusForbidden, err.Error())
		return
	}

	user, err := h.users.GetByEmail(r.Context(), email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			shared.RespondWithError(w, r, http.StatusBadRequest, "User with that email does not exist")
			return
		}
		handleUnexpectedError(w, r, err)
		return
	}

	user.HashedPassword, err = h.hasher.Hash(req.Password)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Something went wrong. Please try again", err)
		return
	}

	if err := h.users.Update(r.Context(), user); err != nil {
		handleUnexpectedError(w, r, err)
		return
	}

	logger.FromContext(r.Context()).Info("password reset completed", "user_id", user.ID)
	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{
		Message: "Password reset successfully. Please login",
	})
}
