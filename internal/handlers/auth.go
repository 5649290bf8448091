package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/dailydost/dailydost/internal/request"
	"github.com/dailydost/dailydost/internal/store"
	"github.com/dailydost/dailydost/internal/validation"
)

// AuthHandler handles the mock signup/login/session endpoints
type AuthHandler struct {
	users    *store.UserRepository
	sessions *store.SessionRepository
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(users *store.UserRepository, sessions *store.SessionRepository) *AuthHandler {
	return &AuthHandler{users: users, sessions: sessions}
}

// RegisterPublicRoutes registers the unauthenticated auth routes.
// The router should already have the /auth prefix.
func (h *AuthHandler) RegisterPublicRoutes(r *mux.Router) {
	r.HandleFunc("/signup", h.Signup).Methods("POST")
	r.HandleFunc("/login", h.Login).Methods("POST")
}

// RegisterProtectedRoutes registers the session-scoped auth routes.
func (h *AuthHandler) RegisterProtectedRoutes(r *mux.Router) {
	r.HandleFunc("/logout", h.Logout).Methods("POST")
	r.HandleFunc("/me", h.GetMe).Methods("GET")
}

// SignupRequest represents a signup request
type SignupRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Signup registers a new account and opens a session for it
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	ctx := r.Context()
	user, err := h.users.Signup(ctx, validation.SanitizeText(req.Name), req.Email, req.Password)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	session, err := h.sessions.Create(ctx, user)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, session)
}

// Login opens a session for an existing account
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	ctx := r.Context()
	user, err := h.users.Login(ctx, req.Email, req.Password)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	session, err := h.sessions.Create(ctx, user)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, session)
}

// Logout ends the calling session
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	session := request.SessionFromContext(r)
	if session == nil {
		respondJSONError(w, http.StatusUnauthorized, "Unauthorized", "Session not found in context")
		return
	}

	if err := h.sessions.Delete(r.Context(), session.Token); err != nil {
		respondStoreError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetMe returns the calling session
func (h *AuthHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	session := request.SessionFromContext(r)
	if session == nil {
		respondJSONError(w, http.StatusUnauthorized, "Unauthorized", "Session not found in context")
		return
	}

	respondJSON(w, http.StatusOK, session)
}

// decodeAndValidate decodes the JSON body into dst and runs the shared
// validator over it, writing the error response itself on failure.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(dst); err != nil {
		if maxBytesErr, ok := err.(*http.MaxBytesError); ok {
			respondJSONError(w, http.StatusRequestEntityTooLarge, "Request Entity Too Large", fmt.Sprintf("Request body exceeds maximum size of %d bytes", maxBytesErr.Limit))
			return false
		}
		respondJSONError(w, http.StatusBadRequest, "Bad Request", "Invalid request body")
		return false
	}

	if err := validation.Validate.Struct(dst); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			for _, fieldError := range validationErrors {
				respondJSONError(w, http.StatusBadRequest, "Bad Request", fmt.Sprintf("Validation failed: %s", fieldError.Error()))
				return false
			}
		}
		respondJSONError(w, http.StatusBadRequest, "Bad Request", "Validation failed")
		return false
	}

	return true
}
