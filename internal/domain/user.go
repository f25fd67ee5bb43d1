package domain

import (
	"github.com/google/uuid"
)

type User struct {
	ID       int64     `json:"id" db:"id"`
	Token    uuid.UUID `json:"token" db:"token"`
	Username string    `json:"username" db:"username"`
}

// CreatedUserResponse возвращается при регистрации пользователя
type CreatedUserResponse struct {
	ID    int64     `json:"id"`
	Token uuid.UUID `json:"token"`
}
