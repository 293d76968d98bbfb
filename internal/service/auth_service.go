package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"newsroom/internal/models"
	"newsroom/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Domain errors for auth flows.
var (
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidCredentials covers both unknown email and wrong password,
	// so responses cannot be used to probe which emails are registered.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserInactive       = errors.New("account is inactive")
	ErrInvalidToken       = errors.New("invalid token")
	ErrConflict           = errors.New("already registered")
	ErrNotFound           = errors.New("not found")
)

// AuthService handles registration, login and session tokens.
type AuthService struct {
	users repository.Users
	cfg   AuthConfig
}

func NewAuthService(users repository.Users, cfg AuthConfig) *AuthService {
	return &AuthService{users: users, cfg: cfg}
}

// Register hashes the password and creates a new user.
// Role defaults to Writer and status to Active unless explicitly set.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))

	if in.Username == "" || in.Email == "" {
		return nil, fmt.Errorf("%w: username and email are required", ErrInvalidInput)
	}
	if len(in.Username) > models.MaxUsernameLen {
		return nil, fmt.Errorf("%w: username exceeds %d characters", ErrInvalidInput, models.MaxUsernameLen)
	}

	role := in.Role
	if role == "" {
		role = models.RoleWriter
	}
	if !models.ValidRole(role) {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, in.Role)
	}
	status := in.Status
	if status == "" {
		status = models.StatusActive
	}
	if !models.ValidStatus(status) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, in.Status)
	}
	avatar := in.Avatar
	if avatar == "" {
		avatar = models.DefaultAvatar
	}

	if strings.TrimSpace(in.Password) == "" {
		return nil, fmt.Errorf("%w: password is required", ErrInvalidInput)
	}
	hash, err := hashPassword(in.Password)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return nil, err
	}

	u := models.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         role,
		Status:       status,
		Avatar:       avatar,
	}
	id, err := s.users.Create(ctx, u)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, fmt.Errorf("username or email %w", ErrConflict)
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	created, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load created user %d: %w", id, err)
	}
	return created, nil
}

// Login validates credentials and, on success, mints a session token.
func (s *AuthService) Login(ctx context.Context, email, password string) (LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return LoginResult{}, ErrInvalidCredentials
		}
		return LoginResult{}, fmt.Errorf("lookup user: %w", err)
	}

	if err := verifyPassword(u.PasswordHash, password); err != nil {
		return LoginResult{}, ErrInvalidCredentials
	}

	// Checked after the password so failures here cannot leak which emails exist.
	if u.Status != models.StatusActive {
		return LoginResult{}, ErrUserInactive
	}

	token, err := s.issueToken(u.ID, u.Role)
	if err != nil {
		return LoginResult{}, fmt.Errorf("issue token: %w", err)
	}
	return LoginResult{Token: token, Username: u.Username, Role: u.Role}, nil
}

// Claims defines JWT claims: the subject's id and role, copied by value.
type Claims struct {
	jwt.RegisteredClaims
	UserID int    `json:"user_id"`
	Role   string `json:"role"`
}

// ParseToken verifies the signature and expiry and returns the principal.
func (s *AuthService) ParseToken(accessToken string) (Principal, error) {
	token, err := jwt.ParseWithClaims(accessToken, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Ensure HMAC signing is used
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.SigningKey), nil
	})
	if err != nil {
		return Principal{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Principal{}, ErrInvalidToken
	}

	return Principal{UserID: claims.UserID, Role: claims.Role}, nil
}

// helper: hash password safely. Callers validate emptiness up front; any
// bcrypt failure here other than an over-long password is a subsystem error.
func hashPassword(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", errors.New("password is empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// helper: verify password against hash
func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// helper: issue a signed JWT carrying the user's id and role
func (s *AuthService) issueToken(userID int, role string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: userID,
		Role:   role,
	})
	return token.SignedString([]byte(s.cfg.SigningKey))
}
