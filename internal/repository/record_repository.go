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

type RecordRepository struct {
	db *sqlx.DB
}

func NewRecordRepository(db *sqlx.DB) *RecordRepository {
	return &RecordRepository{db: db}
}

func (r *RecordRepository) CreateRecord(ctx context.Context, record *domain.Record) error {
	query := `
        INSERT INTO records (id, user_id, audio)
        VALUES ($1, $2, $3)`

	_, err := r.db.ExecContext(ctx, query, record.ID, record.UserID, record.Audio)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.WrapError(domain.KindConflict, err,
				query, record.ID, record.UserID)
		}
		return fmt.Errorf("failed to create record: %w", err)
	}

	return nil
}

func (r *RecordRepository) GetRecordByID(ctx context.Context, id uuid.UUID) (*domain.Record, error) {
	query := `SELECT id, user_id, audio FROM records WHERE id = $1`

	var record domain.Record
	err := r.db.GetContext(ctx, &record, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewError(domain.KindNotFound, "record not found", id.String())
		}
		return nil, fmt.Errorf("failed to get record %s: %w", id, err)
	}

	return &record, nil
}
