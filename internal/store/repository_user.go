package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/AchrafELGhazi/WareFlow-sub000/internal/logger"
	"github.com/AchrafELGhazi/WareFlow-sub000/models"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It handles account creation and lookup against the "users" table and the
// dependent profile tables.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var u models.User
	var email sql.NullString

	err := row.Scan(&u.UserID, &u.Username, &u.PasswordHash, &email, &u.IsActive, &u.Role, &u.LastLogin, &u.CreatedAt)
	if err != nil {
		return models.User{}, err
	}

	u.Email = email.String
	return u, nil
}

// nullableString converts an optional string into a driver-level value:
// NULL when empty. Used for unique-when-present columns such as email.
func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// CreateUser persists a new account and its dependent rows in one
// transaction:
//
//   - the users row itself;
//   - an unconditional profiles row (language "en", timezone "UTC");
//   - a client_profiles row with account_status "active", only when the
//     account role is CLIENT.
//
// Any failure rolls back all three inserts, so an account without its
// profile is never observable.
//
// Error handling:
//   - unique violation on username → [ErrUsernameAlreadyExists].
//   - unique violation on email → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error beginning transaction")
		return models.User{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(ctx, createUser, user.Username, user.PasswordHash, nullableString(user.Email), user.Role)

	created, err := scanUser(row)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")

		if isUniqueViolation(err) {
			return models.User{}, mapUserConflict(err)
		}
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if _, err := tx.ExecContext(ctx, createProfile, created.UserID, "en", "UTC"); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting profile")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if created.Role == models.RoleClient {
		if _, err := tx.ExecContext(ctx, createClientProfile, created.UserID, "active"); err != nil {
			log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting client profile")
			return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error committing transaction")
		return models.User{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return created, nil
}

// FindUserByUsername retrieves the account whose username matches exactly.
//
// Error handling:
//   - No matching row → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findUser(ctx, findUserByUsername, username)
}

// FindUserByID retrieves the account by primary key. The auth middleware
// calls this once per authenticated request to re-check the active flag.
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return r.findUser(ctx, findUserByID, userID)
}

// FindUserByEmail retrieves the account registered under the given email.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUser(ctx, findUserByEmail, email)
}

func (r *userRepository) findUser(ctx context.Context, query string, arg any) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, query, arg)

	found, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.findUser").Msg("error scanning user row")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// UpdateLastLogin bumps the last_login timestamp of the account. A missing
// account is reported as [ErrNoUserWasFound]; callers that treat the bump
// as best-effort may ignore the error.
func (r *userRepository) UpdateLastLogin(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, updateLastLogin, userID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateLastLogin").Msg("error updating last login")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}

// UpdateUserRole sets the role of the account and returns the updated row.
// This is the only persistence path through which roles change.
func (r *userRepository) UpdateUserRole(ctx context.Context, userID int64, role models.Role) (models.User, error) {
	return r.updateUser(ctx, updateUserRole, userID, role)
}

// SetUserActive toggles the is_active flag and returns the updated row.
// Deactivation is the system's only token-revocation mechanism.
func (r *userRepository) SetUserActive(ctx context.Context, userID int64, active bool) (models.User, error) {
	return r.updateUser(ctx, setUserActive, userID, active)
}

func (r *userRepository) updateUser(ctx context.Context, query string, userID int64, arg any) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, query, arg, userID)

	updated, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.updateUser").Msg("error scanning updated user row")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

// ListUsers returns accounts matching the filter, ordered by user_id. The
// WHERE clause is built dynamically with squirrel from the non-zero filter
// fields.
func (r *userRepository) ListUsers(ctx context.Context, filter models.UserFilter) ([]models.User, error) {
	log := logger.FromContext(ctx)

	builder := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select("user_id", "username", "password_hash", "email", "is_active", "role", "last_login", "created_at").
		From("users").
		OrderBy("user_id")

	if filter.Role != "" {
		builder = builder.Where(sq.Eq{"role": filter.Role})
	}
	if filter.Active != nil {
		builder = builder.Where(sq.Eq{"is_active": *filter.Active})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		builder = builder.Offset(filter.Offset)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error listing users")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}
