package service

import (
	"context"
	"errors"
	"strings"

	"github.com/AchrafELGhazi/WareFlow-sub000/internal/config"
	"github.com/AchrafELGhazi/WareFlow-sub000/internal/logger"
	"github.com/AchrafELGhazi/WareFlow-sub000/internal/store"
	"github.com/AchrafELGhazi/WareFlow-sub000/internal/utils"
	"github.com/AchrafELGhazi/WareFlow-sub000/models"
)

// AuthService implements Auth on top of the user repository.
type AuthService struct {
	users store.UserRepository
	cfg   config.Auth
	log   *logger.Logger
}

// NewAuthService creates an AuthService bound to the given repository and
// auth configuration.
func NewAuthService(users store.UserRepository, cfg config.Auth, log *logger.Logger) *AuthService {
	return &AuthService{users: users, cfg: cfg, log: log}
}

// Signup registers a new account.
//
// The flow is:
//  1. Validate inputs.
//  2. Reject taken usernames and emails with dedicated errors. The unique
//     constraints catch concurrent races anyway, the lookups only exist
//     for friendlier messages.
//  3. Assign the role: the configured bootstrap admin email gets ADMIN,
//     everyone else starts as CLIENT.
//  4. Hash the password and create the user together with its default
//     profile rows in one transaction.
//  5. Sign a token and record the login timestamp.
//
// Returns the stored user (password hash never serialised) and the token.
func (s *AuthService) Signup(ctx context.Context, username, password, email string) (models.User, models.Token, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || password == "" {
		return models.User{}, models.Token{}, ErrInvalidDataProvided
	}

	if _, err := s.users.FindUserByUsername(ctx, username); err == nil {
		return models.User{}, models.Token{}, store.ErrUsernameAlreadyExists
	} else if !errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, models.Token{}, err
	}
	if email != "" {
		if _, err := s.users.FindUserByEmail(ctx, email); err == nil {
			return models.User{}, models.Token{}, store.ErrEmailAlreadyExists
		} else if !errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, models.Token{}, err
		}
	}

	role := models.RoleClient
	if email != "" && strings.EqualFold(email, s.cfg.AdminEmail) {
		role = models.RoleAdmin
	}

	hash, err := utils.HashPassword(password, s.cfg.BcryptCost)
	if err != nil {
		return models.User{}, models.Token{}, err
	}

	user, err := s.users.CreateUser(ctx, models.User{
		Username:     username,
		PasswordHash: hash,
		Email:        email,
		IsActive:     true,
		Role:         role,
	})
	if err != nil {
		return models.User{}, models.Token{}, err
	}

	token, err := s.CreateToken(user)
	if err != nil {
		return models.User{}, models.Token{}, err
	}
	s.touchLastLogin(ctx, user.UserID)

	return user, token, nil
}

// Login authenticates a username/password pair.
//
// The password is verified before the account status is inspected: a
// caller who does not know the password learns nothing about whether the
// account is disabled. Unknown usernames burn a bcrypt comparison against
// a dummy hash for the same reason.
func (s *AuthService) Login(ctx context.Context, username, password string) (models.User, models.Token, error) {
	if username == "" || password == "" {
		return models.User{}, models.Token{}, ErrInvalidDataProvided
	}

	user, err := s.users.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			utils.VerifyPassword(password, dummyBcryptHash)
			return models.User{}, models.Token{}, ErrInvalidCredentials
		}
		return models.User{}, models.Token{}, err
	}

	if !utils.VerifyPassword(password, user.PasswordHash) {
		return models.User{}, models.Token{}, ErrInvalidCredentials
	}
	if !user.IsActive {
		return models.User{}, models.Token{}, ErrAccountDisabled
	}

	token, err := s.CreateToken(user)
	if err != nil {
		return models.User{}, models.Token{}, err
	}
	s.touchLastLogin(ctx, user.UserID)

	return user, token, nil
}

// Authenticate validates a raw token string and re-reads the referenced
// account so revoked or disabled accounts are cut off on their next
// request, not at token expiry. The returned identity carries the role
// currently stored in the database, which may be newer than the role
// baked into the token.
func (s *AuthService) Authenticate(ctx context.Context, tokenString string) (models.AuthUser, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, s.cfg.TokenSignKey, s.cfg.TokenIssuer)
	if err != nil {
		return models.AuthUser{}, ErrTokenIsExpiredOrInvalid
	}

	userID, err := token.Claims.GetUserID()
	if err != nil {
		return models.AuthUser{}, ErrTokenIsExpiredOrInvalid
	}

	user, err := s.users.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.AuthUser{}, ErrAccountInactiveOrMissing
		}
		return models.AuthUser{}, err
	}
	if !user.IsActive {
		return models.AuthUser{}, ErrAccountInactiveOrMissing
	}

	return models.AuthUser{
		UserID:   user.UserID,
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
	}, nil
}

// CreateToken signs a token for the given user with the configured issuer,
// lifetime and key.
func (s *AuthService) CreateToken(user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(s.cfg.TokenIssuer, user, s.cfg.TokenDuration, s.cfg.TokenSignKey)
	if err != nil {
		return models.Token{}, errors.Join(ErrTokenCreationFailed, err)
	}
	return token, nil
}

// touchLastLogin records the login time. Failures are logged and ignored,
// the timestamp is informational and must not fail an otherwise valid
// login.
func (s *AuthService) touchLastLogin(ctx context.Context, userID int64) {
	if err := s.users.UpdateLastLogin(ctx, userID); err != nil {
		s.log.Warn().Err(err).Int64("user_id", userID).Msg("failed to update last login")
	}
}

// dummyBcryptHash is compared against when the username does not exist so
// lookups and real logins cost about the same time.
const dummyBcryptHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
