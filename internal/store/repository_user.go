package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-engineer-hub/internal/logger"
	"github.com/MKhiriev/go-engineer-hub/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It works against the "users" and "user_follows" tables.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	db     *DB
	ids    IDGenerator
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by db. New users get
// their id from ids.
func NewUserRepository(db *DB, ids IDGenerator, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		ids:    ids,
		logger: logger,
	}
}

// CreateUser persists a new user record. Profile lists start empty.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrUserAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	user.UserID = r.ids.Generate()
	row := r.db.QueryRowContext(ctx, createUser,
		user.UserID, user.Username, user.Email, user.FullName, user.PasswordHash, user.Avatar, user.CoverImage)

	// create user in db
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrUserAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	if err := row.Scan(&user.CreatedAt, &user.UpdatedAt); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	user.Skills = models.StringList{}
	user.Experience = models.Experiences{}
	user.Education = models.Educations{}
	user.Projects = models.Projects{}
	user.Followers = models.IDList{}
	user.Following = models.IDList{}

	return user, nil
}

// FindUserByID returns the user with the given id or [ErrNoUserWasFound].
func (r *userRepository) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByID", findUserByID, userID)
}

// FindUserByEmail returns the user with the given (already normalised)
// email or [ErrNoUserWasFound].
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByEmail", findUserByEmail, email)
}

func (r *userRepository) findUser(ctx context.Context, funcName, query string, arg string) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, query, arg)
	if err := row.Err(); err != nil {
		if errors.Is(err, sql.ErrNoRows) || isMalformedID(err) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", funcName).Msg("error querying user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || isMalformedID(err) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", funcName).Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

func (r *userRepository) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	return r.execOnUser(ctx, "*userRepository.UpdatePassword", updatePassword, userID, passwordHash)
}

func (r *userRepository) SetRefreshToken(ctx context.Context, userID, refreshToken string) error {
	return r.execOnUser(ctx, "*userRepository.SetRefreshToken", setRefreshToken, userID, refreshToken)
}

// execOnUser runs a single-row UPDATE keyed by user_id ($1) and reports
// [ErrNoUserWasFound] when no row was touched.
func (r *userRepository) execOnUser(ctx context.Context, funcName, query string, args ...any) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if isMalformedID(err) {
			return ErrNoUserWasFound
		}
		log.Err(err).Str("func", funcName).Msg("error updating user")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return checkAffected(result, ErrNoUserWasFound)
}

// UpdateProfile applies a partial update built by [buildUpdateProfileQuery]
// and reads the user back.
//
// Error handling:
//   - unique_violation on username → [ErrUserAlreadyExists].
//   - no matching row → [ErrNoUserWasFound].
func (r *userRepository) UpdateProfile(ctx context.Context, userID string, update models.UpdateProfileRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateProfileQuery(ctx, userID, update)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateProfile").Msg("error building update query")
		return models.User{}, err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		switch {
		case postgresError(err) == pgerrcode.UniqueViolation:
			return models.User{}, ErrUserAlreadyExists
		case isMalformedID(err):
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.UpdateProfile").Msg("error updating profile")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = checkAffected(result, ErrNoUserWasFound); err != nil {
		return models.User{}, err
	}

	return r.FindUserByID(ctx, userID)
}

// Follow records that followerID follows followeeID. Following twice is a
// no-op. A missing user on either side → [ErrNoUserWasFound].
func (r *userRepository) Follow(ctx context.Context, followerID, followeeID string) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, followUser, followerID, followeeID); err != nil {
		if isMissingReference(err) {
			return ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.Follow").Msg("error inserting follow")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// Unfollow removes the follow relation if present.
func (r *userRepository) Unfollow(ctx context.Context, followerID, followeeID string) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, unfollowUser, followerID, followeeID); err != nil {
		if isMalformedID(err) {
			return nil
		}
		log.Err(err).Str("func", "*userRepository.Unfollow").Msg("error deleting follow")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanUser(row scanner) (models.User, error) {
	var u models.User
	err := row.Scan(
		&u.UserID, &u.Username, &u.Email, &u.FullName, &u.PasswordHash, &u.RefreshToken,
		&u.Avatar, &u.CoverImage, &u.Skills, &u.Experience, &u.Education, &u.Projects,
		&u.Bio, &u.Location, &u.Website, &u.Resume,
		&u.Followers, &u.Following,
		&u.CreatedAt, &u.UpdatedAt,
	)
	return u, err
}

func checkAffected(result sql.Result, notFound error) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return notFound
	}
	return nil
}
