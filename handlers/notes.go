package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

type createNoteRequest struct {
	Content string `json:"content"`
}

func (h *Handler) GetNotes(w http.ResponseWriter, r *http.Request) {
	user, err := h.authenticate(r)
	if err != nil {
		writeMessage(w, http.StatusUnauthorized, "invalid or expired token")
		return
	}

	notes, err := h.notes.ListByUser(user.ID)
	if err != nil {
		writeInternal(w, err)
		return
	}

	writeJSON(w, http.StatusOK, notes)
}

func (h *Handler) CreateNote(w http.ResponseWriter, r *http.Request) {
	user, err := h.authenticate(r)
	if err != nil {
		writeMessage(w, http.StatusUnauthorized, "invalid or expired token")
		return
	}

	var req createNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		writeMessage(w, http.StatusBadRequest, "note content is required")
		return
	}

	note, err := h.notes.Create(user.ID, req.Content)
	if err != nil {
		writeInternal(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, note)
}

func (h *Handler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	user, err := h.authenticate(r)
	if err != nil {
		writeMessage(w, http.StatusUnauthorized, "invalid or expired token")
		return
	}

	noteID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "note id must be an integer")
		return
	}

	deleted, err := h.notes.DeleteByID(noteID, user.ID)
	if err != nil {
		writeInternal(w, err)
		return
	}
	// Not found and not owned look the same on purpose.
	if !deleted {
		writeMessage(w, http.StatusNotFound, "note not found")
		return
	}

	writeMessage(w, http.StatusOK, "note deleted")
}
