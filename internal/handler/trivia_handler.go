package handler

import (
	"net/http"
	"strconv"

	"github.com/skittree/bewiseai-test/internal/domain"
	"github.com/skittree/bewiseai-test/internal/service"
)

type TriviaHandler struct {
	triviaService *service.TriviaService
}

func NewTriviaHandler(triviaService *service.TriviaService) *TriviaHandler {
	return &TriviaHandler{triviaService: triviaService}
}

// CreateQuestions загружает questions_num вопросов из jService API,
// сохраняет их в базе и возвращает сохраненные вопросы
func (h *TriviaHandler) CreateQuestions(w http.ResponseWriter, r *http.Request) {
	numStr := r.URL.Query().Get("questions_num")
	questionsNum, err := strconv.Atoi(numStr)
	if err != nil || questionsNum < 0 {
		respondError(w, domain.NewError(domain.KindBadRequest,
			"questions_num must be a non-negative integer", numStr))
		return
	}

	questions, err := h.triviaService.CreateQuestions(r.Context(), questionsNum)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, questions)
}
