package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"quicknotes/auth"
	"quicknotes/config"
	"quicknotes/db"
	"quicknotes/store"
)

// newTestRouter wires a full stack over a throwaway sqlite database
// and mounts the real routes.
func newTestRouter(t *testing.T) *chi.Mux {
	t.Helper()

	cfg := &config.Config{
		DBDriver: "sqlite",
		DSN:      filepath.Join(t.TempDir(), "test.db"),
	}
	conn, err := db.Open(cfg)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	users := store.NewUserStore(conn)
	notes := store.NewNoteStore(conn)
	tokens, err := auth.NewTokenService("test-secret", time.Hour, users)
	if err != nil {
		t.Fatalf("Failed to create token service: %v", err)
	}
	authSvc := auth.NewService(users, tokens, 10, true)
	h := New(authSvc, tokens, notes)

	r := chi.NewRouter()
	r.Post("/auth/signup", h.Signup)
	r.Post("/auth/login", h.Login)
	r.Post("/auth/reset-password", h.ResetPassword)
	r.Get("/notes/fetch", h.GetNotes)
	r.Post("/notes/add", h.CreateNote)
	r.Delete("/notes/{id}", h.DeleteNote)
	return r
}

func doJSON(t *testing.T, router *chi.Mux, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("Failed to encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

// signupAndLogin registers a user and returns a valid token.
func signupAndLogin(t *testing.T, router *chi.Mux, username, email, password string) string {
	t.Helper()

	rr := doJSON(t, router, "POST", "/auth/signup", map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	}, "")
	if rr.Code != http.StatusCreated {
		t.Fatalf("Signup failed with status %d: %s", rr.Code, rr.Body.String())
	}

	rr = doJSON(t, router, "POST", "/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, "")
	if rr.Code != http.StatusOK {
		t.Fatalf("Login failed with status %d: %s", rr.Code, rr.Body.String())
	}

	var resp map[string]any
	json.Unmarshal(rr.Body.Bytes(), &resp)
	token, _ := resp["token"].(string)
	if token == "" {
		t.Fatal("Login response missing token")
	}
	return token
}
