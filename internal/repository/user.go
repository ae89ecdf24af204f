package repository

import (
	"context"
	"errors"

	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

const userColumns = `id, name, email, password`

type UserRepository struct {
	db  Querier
	log *zerolog.Logger
}

func NewUserRepository(db Querier, logger *zerolog.Logger) *UserRepository {
	return &UserRepository{db: db, log: logger}
}

// GetUserByEmail returns the user with exactly this email, or nil when there is none.
func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE email = $1`, email)

	return r.scanOne(row, "get user by email")
}

// GetUserByID returns the user with this id, or nil when there is none.
func (r *UserRepository) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE id = $1`, id)

	return r.scanOne(row, "get user by id")
}

// AddUser inserts a user and returns the stored row including its generated id.
//
// Email uniqueness is left to the users_email_key constraint; the password is stored as given.
func (r *UserRepository) AddUser(ctx context.Context, user model.NewUser) (*model.User, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO users (name, email, password)
		VALUES ($1, $2, $3)
		RETURNING `+userColumns,
		user.Name, user.Email, user.Password)

	var u model.User
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Password); err != nil {
		return nil, queryFailed(r.log, "add user", err)
	}
	return &u, nil
}

func (r *UserRepository) scanOne(row pgx.Row, op string) (*model.User, error) {
	var u model.User
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Password); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, queryFailed(r.log, op, err)
	}
	return &u, nil
}
