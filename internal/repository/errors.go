package repository

import (
	"errors"
	"github.com/lib/pq"
)

// Код SQLSTATE нарушения уникальности в Postgres
const pqUniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == pqUniqueViolation
}
