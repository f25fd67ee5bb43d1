package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/skittree/bewiseai-test/internal/domain"
	"github.com/skittree/bewiseai-test/internal/service/jservice"
)

// QuestionProvider поставляет пачки вопросов из внешнего API
type QuestionProvider interface {
	FetchQuestions(ctx context.Context, count int) ([]jservice.QuestionData, error)
}

type QuestionRepository interface {
	GetQuestionIDs(ctx context.Context) ([]int64, error)
	AddQuestions(ctx context.Context, questions []*domain.Question) error
}

type TriviaService struct {
	questionRepo  QuestionRepository
	provider      QuestionProvider
	questionLimit int
}

func NewTriviaService(questionRepo QuestionRepository, provider QuestionProvider, questionLimit int) *TriviaService {
	return &TriviaService{
		questionRepo:  questionRepo,
		provider:      provider,
		questionLimit: questionLimit,
	}
}

// CreateQuestions догружает questionsNum новых вопросов из внешнего API.
// Вопросы, уже сохраненные в базе или повторившиеся между пачками,
// пропускаются; недобор добирается повторными вызовами API
func (s *TriviaService) CreateQuestions(ctx context.Context, questionsNum int) ([]*domain.Question, error) {
	if questionsNum > s.questionLimit {
		return nil, domain.NewError(domain.KindLimitExceeded,
			fmt.Sprintf("Question limit exceeded. Maximum allowed: %d", s.questionLimit),
			questionsNum)
	}

	ids, err := s.questionRepo.GetQuestionIDs(ctx)
	if err != nil {
		return nil, err
	}

	existingIDs := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		existingIDs[id] = struct{}{}
	}

	questions := make([]*domain.Question, 0, questionsNum)

	// Цикл не завершится, если в базе уже есть все вопросы API
	for len(questions) < questionsNum {
		batch, err := s.provider.FetchQuestions(ctx, questionsNum-len(questions))
		if err != nil {
			return nil, fmt.Errorf("failed to fetch questions: %w", err)
		}

		for _, data := range batch {
			if _, ok := existingIDs[data.ID]; ok {
				continue
			}
			existingIDs[data.ID] = struct{}{}

			createdAt, err := time.Parse(domain.QuestionTimeLayout, data.CreatedAt)
			if err != nil {
				return nil, fmt.Errorf("failed to parse created_at %q for question %d: %w",
					data.CreatedAt, data.ID, err)
			}

			questions = append(questions, &domain.Question{
				ID:        data.ID,
				Question:  data.Question,
				Answer:    data.Answer,
				CreatedAt: createdAt,
			})
		}
	}

	if len(questions) > 0 {
		if err := s.questionRepo.AddQuestions(ctx, questions); err != nil {
			return nil, err
		}
	}

	log.Printf("[TriviaService] Stored %d new questions", len(questions))
	return questions, nil
}
