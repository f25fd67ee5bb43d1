package repository

import (
	"context"
	"fmt"
	"github.com/jmoiron/sqlx"
	"github.com/skittree/bewiseai-test/internal/domain"
)

type QuestionRepository struct {
	db *sqlx.DB
}

func NewQuestionRepository(db *sqlx.DB) *QuestionRepository {
	return &QuestionRepository{db: db}
}

// GetQuestionIDs возвращает идентификаторы всех сохраненных вопросов
func (r *QuestionRepository) GetQuestionIDs(ctx context.Context) ([]int64, error) {
	var ids []int64
	if err := r.db.SelectContext(ctx, &ids, `SELECT id FROM questions`); err != nil {
		return nil, fmt.Errorf("failed to get question ids: %w", err)
	}
	return ids, nil
}

// AddQuestions сохраняет вопросы одной транзакцией. Нарушение уникальности
// id откатывает транзакцию целиком и возвращается как Conflict
func (r *QuestionRepository) AddQuestions(ctx context.Context, questions []*domain.Question) error {
	if len(questions) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
        INSERT INTO questions (id, question, answer, created_at)
        VALUES ($1, $2, $3, $4)`

	for _, q := range questions {
		if _, err := tx.ExecContext(ctx, query, q.ID, q.Question, q.Answer, q.CreatedAt); err != nil {
			if isUniqueViolation(err) {
				return domain.WrapError(domain.KindConflict, err,
					query, q.ID, q.Question, q.Answer, q.CreatedAt)
			}
			return fmt.Errorf("failed to insert question %d: %w", q.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
