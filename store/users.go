package store

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"

	"quicknotes/models"
)

// IsUniqueViolation reports whether err is the storage engine
// rejecting a duplicate key (mysql error 1062, sqlite's "UNIQUE
// constraint failed"). Only the engine can catch duplicates raced past
// an application-level pre-check.
func IsUniqueViolation(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == 1062
	}
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// UserStore runs single parameterized statements against the user
// table. Lookups that match nothing return (nil, nil); only query
// failures are errors.
type UserStore struct {
	db *sql.DB
}

func NewUserStore(db *sql.DB) *UserStore {
	return &UserStore{db: db}
}

// Create inserts a user and returns the generated id.
func (s *UserStore) Create(username, email, passwordHash string, isAdmin bool) (int, error) {
	res, err := s.db.Exec(
		"INSERT INTO user (username, email, password_hash, isAdmin) VALUES (?, ?, ?, ?)",
		username, email, passwordHash, isAdmin,
	)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return int(id), nil
}

func (s *UserStore) FindByID(id int) (*models.User, error) {
	return s.findOne("SELECT id, username, email, password_hash, isAdmin FROM user WHERE id = ?", id)
}

func (s *UserStore) FindByEmail(email string) (*models.User, error) {
	return s.findOne("SELECT id, username, email, password_hash, isAdmin FROM user WHERE email = ?", email)
}

func (s *UserStore) FindByUsername(username string) (*models.User, error) {
	return s.findOne("SELECT id, username, email, password_hash, isAdmin FROM user WHERE username = ?", username)
}

// UpdatePasswordHash stores a new digest and reports affected rows.
func (s *UserStore) UpdatePasswordHash(id int, newHash string) (int64, error) {
	res, err := s.db.Exec("UPDATE user SET password_hash = ? WHERE id = ?", newHash, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *UserStore) findOne(query string, arg any) (*models.User, error) {
	var user models.User
	err := s.db.QueryRow(query, arg).Scan(
		&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.IsAdmin,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
