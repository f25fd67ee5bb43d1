package service

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/skittree/bewiseai-test/internal/domain"
)

type UserRepository interface {
	CreateUser(ctx context.Context, username string, token uuid.UUID) (*domain.User, error)
	GetUserByID(ctx context.Context, id int64) (*domain.User, error)
}

type UserService struct {
	userRepo UserRepository
}

func NewUserService(userRepo UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Register создает пользователя и выдает ему UUID-токен.
// Токен генерируется один раз и больше не меняется
func (s *UserService) Register(ctx context.Context, username string) (*domain.User, error) {
	if username == "" {
		return nil, domain.NewError(domain.KindBadRequest, "username is required")
	}

	token := uuid.New()
	user, err := s.userRepo.CreateUser(ctx, username, token)
	if err != nil {
		return nil, err
	}

	log.Printf("[UserService] Registered user %q with id %d", username, user.ID)
	return user, nil
}
