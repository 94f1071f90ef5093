package service

import (
	"context"
	"fmt"

	"github.com/bistroboss/backend/internal/models"
	"github.com/bistroboss/backend/internal/repo"
	"github.com/bistroboss/backend/pkg/tokens"
)

type AuthService struct {
	Repo      *repo.GormRepo
	JWTSecret []byte
}

// IssueToken mints the bearer credential for an identity. Presence of the
// email is the only requirement; the identity itself is asserted by the
// upstream sign-in provider.
func (s *AuthService) IssueToken(ctx context.Context, email string) (string, error) {
	if email == "" {
		return "", fmt.Errorf("%w: email required", ErrValidation)
	}
	return tokens.Sign(email, s.JWTSecret)
}

// IsAdmin answers the admin check against the stored role, never the token.
// An absent user record is simply not an admin.
func (s *AuthService) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := s.Repo.GetUserByEmail(ctx, email)
	if err != nil {
		if repo.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return user.Role == models.RoleAdmin, nil
}
