package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"newsroom/internal/models"
	"newsroom/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// UserService is the admin-side account management surface.
type UserService struct {
	users repository.Users
}

func NewUserService(users repository.Users) *UserService {
	return &UserService{users: users}
}

var _ Users = (*UserService)(nil)

// List returns all accounts. Password hashes never serialize (json:"-").
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx)
}

// Get loads a single account.
func (s *UserService) Get(ctx context.Context, id int) (*models.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("user %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return u, nil
}

// Update applies partial profile changes; a new password is re-hashed first.
func (s *UserService) Update(ctx context.Context, id int, in UserUpdateInput) (*models.User, error) {
	if in.Username == nil && in.Email == nil && in.Password == nil &&
		in.Role == nil && in.Status == nil && in.Avatar == nil {
		return nil, fmt.Errorf("%w: at least one field must be provided", ErrInvalidInput)
	}

	upd := repository.UserUpdate{Avatar: in.Avatar}

	if in.Username != nil {
		username := strings.TrimSpace(*in.Username)
		if username == "" || len(username) > models.MaxUsernameLen {
			return nil, fmt.Errorf("%w: invalid username", ErrInvalidInput)
		}
		upd.Username = &username
	}
	if in.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*in.Email))
		if email == "" {
			return nil, fmt.Errorf("%w: invalid email", ErrInvalidInput)
		}
		upd.Email = &email
	}
	if in.Role != nil {
		if !models.ValidRole(*in.Role) {
			return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, *in.Role)
		}
		upd.Role = in.Role
	}
	if in.Status != nil {
		if !models.ValidStatus(*in.Status) {
			return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *in.Status)
		}
		upd.Status = in.Status
	}
	if in.Password != nil {
		if strings.TrimSpace(*in.Password) == "" {
			return nil, fmt.Errorf("%w: password cannot be empty", ErrInvalidInput)
		}
		hash, err := hashPassword(*in.Password)
		if err != nil {
			if errors.Is(err, bcrypt.ErrPasswordTooLong) {
				return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
			}
			return nil, err
		}
		upd.PasswordHash = &hash
	}

	u, err := s.users.Update(ctx, id, upd)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, fmt.Errorf("user %d: %w", id, ErrNotFound)
		case errors.Is(err, repository.ErrDuplicate):
			return nil, fmt.Errorf("username or email %w", ErrConflict)
		}
		return nil, err
	}
	return u, nil
}

// Delete removes an account.
func (s *UserService) Delete(ctx context.Context, id int) error {
	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("user %d: %w", id, ErrNotFound)
		}
		return err
	}
	return nil
}
