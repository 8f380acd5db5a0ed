package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"quicknotes/auth"
)

type signupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Identifier string `json:"identifier"`
	Email      string `json:"email"`
	Username   string `json:"username"`
	Password   string `json:"password"`
}

type resetPasswordRequest struct {
	Email           string `json:"email"`
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		writeMessage(w, http.StatusBadRequest, "username, email and password are required")
		return
	}

	user, err := h.auth.Signup(req.Username, req.Email, req.Password)
	if errors.Is(err, auth.ErrEmailTaken) {
		writeMessage(w, http.StatusConflict, "email already registered")
		return
	}
	if errors.Is(err, auth.ErrUsernameTaken) {
		writeMessage(w, http.StatusConflict, "username already taken")
		return
	}
	if err != nil {
		writeInternal(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"user": user})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// The popup sends either {email, password} or {username, password};
	// other clients send {identifier, password}.
	identifier := req.Identifier
	if identifier == "" {
		identifier = req.Email
	}
	if identifier == "" {
		identifier = req.Username
	}
	if identifier == "" || req.Password == "" {
		writeMessage(w, http.StatusBadRequest, "identifier and password are required")
		return
	}

	token, user, err := h.auth.Login(identifier, req.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		writeMessage(w, http.StatusUnauthorized, "invalid credentials")
		return
	}
	if err != nil {
		writeInternal(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"token": token, "user": user})
}

func (h *Handler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req resetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" || req.CurrentPassword == "" || req.NewPassword == "" {
		writeMessage(w, http.StatusBadRequest, "email, currentPassword and newPassword are required")
		return
	}

	updated, err := h.auth.ResetPassword(req.Email, req.CurrentPassword, req.NewPassword)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		writeMessage(w, http.StatusUnauthorized, "invalid credentials")
		return
	}
	if err != nil {
		writeInternal(w, err)
		return
	}
	if !updated {
		writeInternal(w, errors.New("password reset affected no rows"))
		return
	}

	writeMessage(w, http.StatusOK, "password updated")
}
