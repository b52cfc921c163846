package service

import (
	"context"

	"github.com/AchrafELGhazi/WareFlow-sub000/internal/logger"
	"github.com/AchrafELGhazi/WareFlow-sub000/internal/store"
	"github.com/AchrafELGhazi/WareFlow-sub000/models"
)

// UserAdminService implements the administrative account operations.
type UserAdminService struct {
	users store.UserRepository
	log   *logger.Logger
}

func NewUserAdminService(users store.UserRepository, log *logger.Logger) *UserAdminService {
	return &UserAdminService{users: users, log: log}
}

func (s *UserAdminService) ListUsers(ctx context.Context, filter models.UserFilter) ([]models.User, error) {
	if filter.Role != "" && !filter.Role.Valid() {
		return nil, ErrUnknownRole
	}
	return s.users.ListUsers(ctx, filter)
}

func (s *UserAdminService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	return s.users.FindUserByID(ctx, userID)
}

// ChangeRole replaces the role of the given account. Every change is
// written to the audit log with the acting administrator, the target and
// both roles.
func (s *UserAdminService) ChangeRole(ctx context.Context, actor models.AuthUser, userID int64, role models.Role) (models.User, error) {
	if !role.Valid() {
		return models.User{}, ErrUnknownRole
	}

	before, err := s.users.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, err
	}

	user, err := s.users.UpdateUserRole(ctx, userID, role)
	if err != nil {
		return models.User{}, err
	}

	s.log.Info().
		Int64("actor_id", actor.UserID).
		Str("actor", actor.Username).
		Int64("user_id", userID).
		Str("old_role", before.Role.String()).
		Str("new_role", role.String()).
		Msg("user role changed")

	return user, nil
}

// SetActive enables or disables the given account. A disabled account is
// rejected by Authenticate on its next request even while its tokens are
// still within their lifetime.
func (s *UserAdminService) SetActive(ctx context.Context, actor models.AuthUser, userID int64, active bool) (models.User, error) {
	user, err := s.users.SetUserActive(ctx, userID, active)
	if err != nil {
		return models.User{}, err
	}

	s.log.Info().
		Int64("actor_id", actor.UserID).
		Str("actor", actor.Username).
		Int64("user_id", userID).
		Bool("active", active).
		Msg("user active flag changed")

	return user, nil
}
