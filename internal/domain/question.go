package domain

import (
	"time"
)

// Формат created_at в ответе jService. Дробная часть секунд в ответе
// бывает разной длины, time.Parse принимает её и без места в макете
const QuestionTimeLayout = "2006-01-02T15:04:05Z"

type Question struct {
	ID        int64     `json:"id" db:"id"`
	Question  string    `json:"question" db:"question"`
	Answer    string    `json:"answer" db:"answer"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
