package store

import (
	"database/sql"

	"quicknotes/models"
)

// NoteStore persists notes. Every read and delete is filtered by the
// owning user's id, so one user can never observe or remove another's
// notes even with a guessed note id.
type NoteStore struct {
	db *sql.DB
}

func NewNoteStore(db *sql.DB) *NoteStore {
	return &NoteStore{db: db}
}

// ListByUser returns the user's notes newest first. The id tiebreaker
// keeps ordering stable when two notes land in the same timestamp
// second.
func (s *NoteStore) ListByUser(userID int) ([]models.Note, error) {
	rows, err := s.db.Query(
		"SELECT id, user_id, content, created_at FROM notes WHERE user_id = ? ORDER BY created_at DESC, id DESC",
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notes := []models.Note{}
	for rows.Next() {
		var note models.Note
		if err := rows.Scan(&note.ID, &note.UserID, &note.Content, &note.CreatedAt); err != nil {
			return nil, err
		}
		notes = append(notes, note)
	}
	return notes, rows.Err()
}

// Create inserts a note with a server-assigned timestamp and returns
// the persisted row, re-read so the caller sees the generated id and
// created_at.
func (s *NoteStore) Create(userID int, content string) (*models.Note, error) {
	res, err := s.db.Exec("INSERT INTO notes (user_id, content) VALUES (?, ?)", userID, content)
	if err != nil {
		return nil, err
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	var note models.Note
	err = s.db.QueryRow(
		"SELECT id, user_id, content, created_at FROM notes WHERE id = ?", lastID,
	).Scan(&note.ID, &note.UserID, &note.Content, &note.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &note, nil
}

// DeleteByID removes at most one note matching both id and owner.
// A note owned by someone else and a nonexistent id both come back
// false; callers cannot tell the two apart.
func (s *NoteStore) DeleteByID(noteID, userID int) (bool, error) {
	res, err := s.db.Exec("DELETE FROM notes WHERE id = ? AND user_id = ?", noteID, userID)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
