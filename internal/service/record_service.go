package service

import (
	"context"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/skittree/bewiseai-test/internal/domain"
)

// Формат, в котором принимаются загружаемые записи
const acceptedAudioSubtype = "wav"

type RecordRepository interface {
	CreateRecord(ctx context.Context, record *domain.Record) error
	GetRecordByID(ctx context.Context, id uuid.UUID) (*domain.Record, error)
}

// Transcoder конвертирует исходную аудиозапись в формат хранения
type Transcoder interface {
	ConvertToMP3(ctx context.Context, data []byte) ([]byte, error)
}

type RecordService struct {
	recordRepo RecordRepository
	userRepo   UserRepository
	transcoder Transcoder
}

func NewRecordService(recordRepo RecordRepository, userRepo UserRepository, transcoder Transcoder) *RecordService {
	return &RecordService{
		recordRepo: recordRepo,
		userRepo:   userRepo,
		transcoder: transcoder,
	}
}

// SaveRecord проверяет токен пользователя, конвертирует .wav в .mp3
// и сохраняет запись. До успешной проверки токена ничего не пишется
func (s *RecordService) SaveRecord(ctx context.Context, userID int64, token uuid.UUID, audio []byte, contentType string) (*domain.Record, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if token != user.Token {
		return nil, domain.NewError(domain.KindUnauthorized,
			"invalid UUID token provided", userID)
	}

	mediaType, subtype, found := strings.Cut(contentType, "/")
	if !found || mediaType != "audio" {
		return nil, domain.NewError(domain.KindBadRequest,
			"please upload a valid .wav audio file", mediaType)
	}
	if subtype != acceptedAudioSubtype {
		return nil, domain.NewError(domain.KindBadRequest,
			"this audio file is incompatible, please upload .wav audio", subtype)
	}

	sound, err := s.transcoder.ConvertToMP3(ctx, audio)
	if err != nil {
		return nil, domain.WrapError(domain.KindInternal, err, "failed to convert audio")
	}

	record := &domain.Record{
		ID:     uuid.New(),
		UserID: user.ID,
		Audio:  sound,
	}

	if err := s.recordRepo.CreateRecord(ctx, record); err != nil {
		return nil, err
	}

	log.Printf("[RecordService] Saved record %s for user %d (%d bytes)", record.ID, user.ID, len(sound))
	return record, nil
}

// GetRecord возвращает запись после проверки владения: запись и пользователь
// могут существовать по отдельности, но запись отдается только владельцу
func (s *RecordService) GetRecord(ctx context.Context, recordID uuid.UUID, userID int64) (*domain.Record, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	record, err := s.recordRepo.GetRecordByID(ctx, recordID)
	if err != nil {
		return nil, err
	}

	if record.UserID != user.ID {
		return nil, domain.NewError(domain.KindUnauthorized,
			"the audiofile does not belong to the specified user",
			recordID.String(), userID)
	}

	return record, nil
}
