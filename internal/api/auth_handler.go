package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/openaws/openaws-api/internal/api/shared"
	"github.com/openaws/openaws-api/internal/domain"
	"github.com/openaws/openaws-api/internal/platform/logger"
	"github.com/openaws/openaws-api/internal/service/auth"
	"github.com/openaws/openaws-api/internal/store"
)

// AuthHandler handles registration and login.
type AuthHandler struct {
	userStore  store.UserStore
	jwtService auth.JWTService
	hasher     auth.PasswordHasher
	logger     *slog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(
	userStore store.UserStore,
	jwtService auth.JWTService,
	hasher auth.PasswordHasher,
	log *slog.Logger,
) *AuthHandler {
	if log == nil {
		log = slog.Default()
	}

	return &AuthHandler{
		userStore:  userStore,
		jwtService: jwtService,
		hasher:     hasher,
		logger:     log.With(slog.String("component", "auth_handler")),
	}
}

// Register handles POST /auth/register requests.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req RegisterRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, err := domain.NewUser(req.Email, req.Password)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, err.Error(), err)
		return
	}

	hashed, err := h.hasher.Hash(req.Password)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "Registration failed", err)
		return
	}
	user.HashedPassword = hashed
	user.Password = ""

	if err := h.userStore.Create(r.Context(), user); err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Info("user registered", slog.String("user_id", user.ID.String()))
	h.respondWithToken(w, r, user, http.StatusCreated)
}

// Login handles POST /auth/login requests.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, err := h.userStore.GetByEmail(r.Context(), req.Email)
	if err != nil {
		// Report lookup misses as bad credentials so the endpoint does not
		// reveal which emails are registered.
		if errors.Is(err, store.ErrUserNotFound) {
			err = auth.ErrInvalidCredentials
		}
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	if err := h.hasher.Compare(user.HashedPassword, req.Password); err != nil {
		shared.RespondWithErrorAndLog(w, r,
			http.StatusUnauthorized, GetSafeErrorMessage(auth.ErrInvalidCredentials),
			auth.ErrInvalidCredentials)
		return
	}

	h.respondWithToken(w, r, user, http.StatusOK)
}

func (h *AuthHandler) respondWithToken(
	w http.ResponseWriter,
	r *http.Request,
	user *domain.User,
	status int,
) {
	token, err := h.jwtService.GenerateToken(r.Context(), user.ID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "Authentication failed", err)
		return
	}

	shared.RespondWithJSON(w, r, status, AuthResponse{
		UserID: user.ID,
		Token:  token,
	})
}
