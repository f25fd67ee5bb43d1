package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/skittree/bewiseai-test/internal/domain"
)

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// CreateUser создает пользователя с заранее сгенерированным токеном.
// Занятый username возвращается как Conflict
func (r *UserRepository) CreateUser(ctx context.Context, username string, token uuid.UUID) (*domain.User, error) {
	query := `
        INSERT INTO users (username, token)
        VALUES ($1, $2)
        RETURNING id`

	user := &domain.User{Username: username, Token: token}
	err := r.db.QueryRowContext(ctx, query, username, token).Scan(&user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.WrapError(domain.KindConflict, err,
				query, username, token)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `SELECT id, token, username FROM users WHERE id = $1`

	var user domain.User
	err := r.db.GetContext(ctx, &user, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewError(domain.KindNotFound, "user not found", id)
		}
		return nil, fmt.Errorf("failed to get user %d: %w", id, err)
	}

	return &user, nil
}
