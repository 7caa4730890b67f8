package services

import (
	"context"
	"crypto/subtle"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"railbook/config"
	"railbook/database"
	"railbook/models"
)

const pqUniqueViolation = "23505"

// Claims is the payload carried by an issued token.
type Claims struct {
	UserID int  `json:"uid"`
	Admin  bool `json:"admin"`
	jwt.RegisteredClaims
}

// Auth registers users, verifies credentials and issues tokens.
type Auth struct {
	db  *database.DB
	cfg *config.Config
}

func NewAuth(db *database.DB, cfg *config.Config) *Auth {
	return &Auth{db: db, cfg: cfg}
}

// Register creates a new user with a bcrypt-hashed password and
// returns its id. A duplicate username yields ErrConflict.
func (a *Auth) Register(ctx context.Context, username, password string, isAdmin bool) (int, error) {
	if username == "" || password == "" {
		return 0, fmt.Errorf("%w: username and password are required", ErrInvalidArgument)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("error hashing password: %w", err)
	}

	var id int
	err = a.db.SQL.QueryRowContext(ctx, `
		INSERT INTO users (username, password_hash, is_admin)
		VALUES ($1, $2, $3)
		RETURNING id
	`, username, string(hash), isAdmin).Scan(&id)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pqUniqueViolation {
			return 0, fmt.Errorf("%w: username taken", ErrConflict)
		}
		return 0, fmt.Errorf("error registering user: %w", err)
	}

	log.Info().Int("user_id", id).Bool("admin", isAdmin).Msg("user registered")
	return id, nil
}

// Login verifies the credentials and returns a signed token. Unknown
// usernames and wrong passwords produce the identical error so the
// response does not reveal which usernames exist.
func (a *Auth) Login(ctx context.Context, username, password string) (string, error) {
	var user models.User
	err := a.db.SQL.GetContext(ctx, &user, `
		SELECT id, username, password_hash, is_admin, created_at
		FROM users
		WHERE username = $1
	`, username)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrUnauthorized
		}
		return "", fmt.Errorf("error fetching user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", ErrUnauthorized
	}

	now := time.Now()
	claims := Claims{
		UserID: user.ID,
		Admin:  user.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.cfg.TokenTTL)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(a.cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("error signing token: %w", err)
	}

	log.Info().Int("user_id", user.ID).Msg("user logged in")
	return token, nil
}

// ParseToken validates a bearer token and returns its claims.
// Tampered or expired tokens yield ErrUnauthorized.
func (a *Auth) ParseToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(a.cfg.JWTSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}
	return claims, nil
}

// CheckAdminKey verifies the operator key in constant time.
func (a *Auth) CheckAdminKey(key string) error {
	if subtle.ConstantTimeCompare([]byte(key), []byte(a.cfg.AdminAPIKey)) != 1 {
		return fmt.Errorf("%w: invalid API key", ErrForbidden)
	}
	return nil
}
