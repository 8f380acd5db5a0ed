package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"quicknotes/auth"
	"quicknotes/models"
	"quicknotes/store"
)

// Handler is the HTTP boundary: it decodes requests, authenticates
// where required, delegates to the auth service or note store, and is
// the single place where failure kinds become status codes.
type Handler struct {
	auth   *auth.Service
	tokens *auth.TokenService
	notes  *store.NoteStore
}

func New(authSvc *auth.Service, tokens *auth.TokenService, notes *store.NoteStore) *Handler {
	return &Handler{auth: authSvc, tokens: tokens, notes: notes}
}

// authenticate extracts the bearer token and resolves it to a user.
// Handlers for protected routes call it first and receive the identity
// explicitly; there is no middleware injecting it behind their back.
func (h *Handler) authenticate(r *http.Request) (*models.User, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return nil, auth.ErrInvalidToken
	}
	tokenStr := strings.TrimPrefix(header, "Bearer ")
	if tokenStr == header {
		return nil, auth.ErrInvalidToken
	}
	return h.tokens.Verify(tokenStr)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

// writeInternal logs the real error server-side and returns a generic
// body; internals never reach the client.
func writeInternal(w http.ResponseWriter, err error) {
	log.Printf("internal error: %v", err)
	writeMessage(w, http.StatusInternalServerError, "internal server error")
}
