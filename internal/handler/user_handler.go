package handler

import (
	"net/http"

	"github.com/skittree/bewiseai-test/internal/domain"
	"github.com/skittree/bewiseai-test/internal/service"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// CreateUser регистрирует пользователя и возвращает его id и UUID-токен
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondError(w, domain.NewError(domain.KindBadRequest, "failed to parse form"))
		return
	}

	user, err := h.userService.Register(r.Context(), r.PostFormValue("username"))
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, domain.CreatedUserResponse{
		ID:    user.ID,
		Token: user.Token,
	})
}
