package repository

import (
	"errors"

	"github.com/lib/pq"
)

const pqForeignKeyViolation = "23503"

func pqErrorCode(err error) pq.ErrorCode {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code
	}
	return ""
}
