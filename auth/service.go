package auth

import (
	"errors"
	"strings"

	"quicknotes/models"
	"quicknotes/store"
)

var (
	ErrEmailTaken    = errors.New("email already registered")
	ErrUsernameTaken = errors.New("username already taken")

	// ErrInvalidCredentials is returned for an unknown identifier and
	// for a wrong password alike; login failures carry one message.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Service orchestrates signup, login and password reset over the user
// store and token service.
type Service struct {
	users  *store.UserStore
	tokens *TokenService

	bcryptCost  int
	signupAdmin bool
}

func NewService(users *store.UserStore, tokens *TokenService, bcryptCost int, signupAdmin bool) *Service {
	return &Service{
		users:       users,
		tokens:      tokens,
		bcryptCost:  bcryptCost,
		signupAdmin: signupAdmin,
	}
}

// Signup registers a new account and returns the persisted user. The
// pre-checks give the friendly errors; the UNIQUE constraints on the
// table are what actually close the concurrent-signup race, so a
// duplicate raced past them still comes back as a conflict. Other
// insert failures propagate as internal errors.
func (s *Service) Signup(username, email, password string) (*models.User, error) {
	existing, err := s.users.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	existing, err = s.users.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	hash, err := HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	id, err := s.users.Create(username, email, hash, s.signupAdmin)
	if store.IsUniqueViolation(err) {
		return nil, ErrEmailTaken
	}
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("created user not found")
	}
	return user, nil
}

// Login resolves the identifier (email if it contains "@", username
// otherwise), verifies the password and issues a token.
func (s *Service) Login(identifier, password string) (string, *models.User, error) {
	var (
		user *models.User
		err  error
	)
	if strings.Contains(identifier, "@") {
		user, err = s.users.FindByEmail(identifier)
	} else {
		user, err = s.users.FindByUsername(identifier)
	}
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, ErrInvalidCredentials
	}

	if !CheckPassword(password, user.PasswordHash) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// ResetPassword verifies the current password and stores a new digest.
// It reports whether a row was updated. Previously issued tokens stay
// valid until they expire.
func (s *Service) ResetPassword(email, currentPassword, newPassword string) (bool, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		return false, err
	}
	if user == nil {
		return false, ErrInvalidCredentials
	}

	if !CheckPassword(currentPassword, user.PasswordHash) {
		return false, ErrInvalidCredentials
	}

	hash, err := HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return false, err
	}

	affected, err := s.users.UpdatePasswordHash(user.ID, hash)
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
