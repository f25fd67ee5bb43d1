package domain

import (
	"github.com/google/uuid"
)

// MIME-тип, в котором записи хранятся и отдаются клиенту
const RecordMIMEType = "audio/mpeg"

// Расширение файла при скачивании записи
const RecordFileExt = "mp3"

type Record struct {
	ID     uuid.UUID `json:"id" db:"id"`
	UserID int64     `json:"user_id" db:"user_id"`
	Audio  []byte    `json:"-" db:"audio"`
}
