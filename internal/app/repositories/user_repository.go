package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emre/uniportal/internal/app/models"
	"github.com/emre/uniportal/internal/pkg/apperrors"
	"github.com/emre/uniportal/internal/pkg/dberrors"
	"github.com/emre/uniportal/internal/pkg/logger"
)

// UserRepository handles user database operations
type UserRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateUser creates a new user and returns its id.
func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) (int64, error) {
	sql, args, err := r.sb.Insert("users").
		Columns("username", "password_hash", "role", "full_name", "email", "created_at").
		Values(user.Username, user.PasswordHash, user.Role, user.FullName, user.Email, time.Now()).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create user SQL")
		return 0, fmt.Errorf("failed to build create user query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_username_key") {
			logger.Warn().Str("username", user.Username).Msg("Attempted to create user with duplicate username")
			return 0, apperrors.ErrUsernameExists
		}
		logger.Error().Err(err).Str("username", user.Username).Msg("Error executing create user query")
		return 0, fmt.Errorf("error creating user: %w", err)
	}

	logger.Info().Int64("userID", id).Str("username", user.Username).Msg("User created successfully")
	return id, nil
}

// GetUserByID retrieves a user by id.
func (r *UserRepository) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	return r.getUserWhere(ctx, squirrel.Eq{"id": id})
}

// GetUserByUsername retrieves a user by username.
func (r *UserRepository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.getUserWhere(ctx, squirrel.Eq{"username": username})
}

func (r *UserRepository) getUserWhere(ctx context.Context, pred squirrel.Eq) (*models.User, error) {
	var user models.User
	sql, args, err := r.sb.Select("id", "username", "password_hash", "role", "full_name", "email", "created_at").
		From("users").
		Where(pred).
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get user SQL")
		return nil, fmt.Errorf("failed to build get user query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&user.ID, &user.Username, &user.PasswordHash, &user.Role, &user.FullName, &user.Email, &user.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Msg("Error scanning user row")
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return &user, nil
}

// UsernameExists checks if a username is already taken.
func (r *UserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	var exists bool
	sql, args, err := r.sb.Select("1").
		From("users").
		Where(squirrel.Eq{"username": username}).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building username exists SQL")
		return false, fmt.Errorf("failed to build username exists query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&exists)
	if err != nil {
		logger.Error().Err(err).Str("username", username).Msg("Error checking username existence")
		return false, fmt.Errorf("error checking username existence: %w", err)
	}

	return exists, nil
}

// UpdateProfile updates the mutable profile fields of a user. Empty
// values leave the stored field unchanged.
func (r *UserRepository) UpdateProfile(ctx context.Context, userID int64, fullName, email string) error {
	update := r.sb.Update("users").Where(squirrel.Eq{"id": userID})
	changed := false
	if fullName != "" {
		update = update.Set("full_name", fullName)
		changed = true
	}
	if email != "" {
		update = update.Set("email", email)
		changed = true
	}
	if !changed {
		return nil
	}

	sql, args, err := update.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update profile SQL")
		return fmt.Errorf("failed to build update profile query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("userID", userID).Msg("Error executing update profile query")
		return fmt.Errorf("error updating profile: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// UpdatePassword replaces the stored password hash.
func (r *UserRepository) UpdatePassword(ctx context.Context, userID int64, passwordHash string) error {
	sql, args, err := r.sb.Update("users").
		Set("password_hash", passwordHash).
		Where(squirrel.Eq{"id": userID}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building update password SQL")
		return fmt.Errorf("failed to build update password query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("userID", userID).Msg("Error executing update password query")
		return fmt.Errorf("error updating password: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	logger.Info().Int64("userID", userID).Msg("Password updated")
	return nil
}

// CountUsers returns the number of user rows. Used to decide whether
// sample data should be seeded.
func (r *UserRepository) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM users").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting users: %w", err)
	}
	return count, nil
}
