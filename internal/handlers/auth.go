package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/tdhoang/marketgraph/internal/metrics"
	"github.com/tdhoang/marketgraph/internal/repo"
	"github.com/tdhoang/marketgraph/internal/token"
	"golang.org/x/crypto/bcrypt"
)

// ==========================
// Auth Handler
// ==========================
type AuthHandler struct {
	Users  UserStore
	Tokens *token.Service
}

// ==========================
// Signup (password stored as bcrypt hash)
// ==========================
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		JSONError(w, "invalid json", http.StatusUnprocessableEntity)
		return
	}
	if input.Username == "" || input.Password == "" {
		JSONError(w, "username and password are required", http.StatusUnprocessableEntity)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		JSONError(w, ErrMessageInternal, http.StatusInternalServerError)
		return
	}

	if _, err := h.Users.Create(r.Context(), input.Username, string(hash)); err != nil {
		if errors.Is(err, repo.ErrConflict) {
			JSONError(w, "username already exists", http.StatusBadRequest)
			return
		}
		slog.Error("signup: create user failed", "error", err)
		JSONError(w, ErrMessageInternal, http.StatusInternalServerError)
		return
	}

	metrics.SignupsTotal.Inc()
	writeJSON(w, http.StatusOK, map[string]string{"msg": "Signup successful"})
}

// ==========================
// Signin (form-encoded, OAuth2 password style)
// ==========================
func (h *AuthHandler) Signin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		JSONError(w, "invalid form", http.StatusUnprocessableEntity)
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	user, err := h.Users.GetByUsername(r.Context(), username)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			// Same message as a bad password so usernames cannot be probed.
			JSONError(w, "invalid username or password", http.StatusBadRequest)
			return
		}
		slog.Error("signin: lookup failed", "error", err)
		JSONError(w, ErrMessageInternal, http.StatusInternalServerError)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		JSONError(w, "invalid username or password", http.StatusBadRequest)
		return
	}

	signed, err := h.Tokens.Issue(user.ID)
	if err != nil {
		JSONError(w, "failed to issue token", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"access_token": signed,
		"token_type":   "bearer",
	})
}
