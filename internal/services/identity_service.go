package services

import (
	"context"
	"errors"
	"fmt"

	"fundaevento/plataforma/internal/constants"
	"fundaevento/plataforma/internal/db/repositories"
	"fundaevento/plataforma/internal/logging"
	gormModels "fundaevento/plataforma/internal/models/gorm"
)

// IdentityService maps a verified external identity to the platform
// profile that gates everything else.
type IdentityService struct {
	users *repositories.UserRepository
}

func NewIdentityService(users *repositories.UserRepository) *IdentityService {
	return &IdentityService{users: users}
}

// Resolve fetches the single profile bound to authID.
//
// An authenticated identity with no profile row is an unauthorized state:
// the caller must deny access, never grant a default role. A profile
// whose role is outside the closed set is rejected the same way, as is a
// deactivated account.
func (s *IdentityService) Resolve(ctx context.Context, authID string) (*gormModels.User, error) {
	user, err := s.users.GetByAuthID(ctx, authID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			logging.Warn("identity has no profile row", "auth_id", authID)
			return nil, repositories.ErrNotFound
		}
		return nil, fmt.Errorf("resolve identity: %w", err)
	}

	if !user.Rol.Valid() {
		logging.Error("profile carries a role outside the closed set",
			"auth_id", authID, "rol", string(user.Rol))
		return nil, ErrUnknownRole
	}

	if user.Estado != constants.AccountActivo {
		return nil, ErrAccountInactive
	}

	return user, nil
}
