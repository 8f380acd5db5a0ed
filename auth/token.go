package auth

import (
	"errors"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"quicknotes/models"
	"quicknotes/store"
)

// ErrInvalidToken covers every verification failure: bad signature,
// expiry, malformed token, or a user that no longer exists. Callers
// must not be able to tell these apart.
var ErrInvalidToken = errors.New("invalid or expired token")

type Claims struct {
	UserID int    `json:"id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256 tokens carrying {id, email}.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	users  *store.UserStore
}

// NewTokenService fails on an empty secret so a misconfigured server
// refuses to start instead of failing per request.
func NewTokenService(secret string, ttl time.Duration, users *store.UserStore) (*TokenService, error) {
	if secret == "" {
		return nil, errors.New("JWT_SECRET is not set")
	}
	return &TokenService{secret: []byte(secret), ttl: ttl, users: users}, nil
}

// Issue signs a token for the user, expiring ttl from now.
func (t *TokenService) Issue(user *models.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Verify checks signature and expiry, then resolves the embedded id to
// a live user. Any failure collapses to ErrInvalidToken.
func (t *TokenService) Verify(tokenStr string) (*models.User, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return t.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, ErrInvalidToken
	}

	user, err := t.users.FindByID(claims.UserID)
	if err != nil {
		// Detail stays server-side; the caller sees the same generic
		// failure as for a bad signature.
		log.Printf("token verify: user lookup failed: %v", err)
		return nil, ErrInvalidToken
	}
	if user == nil {
		return nil, ErrInvalidToken
	}
	return user, nil
}
