package postgres

import (
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// violation is the kind of integrity constraint a failed write broke.
type violation int

const (
	noViolation violation = iota
	uniqueViolation
	foreignKeyViolation
	notNullViolation
	checkViolation
)

// sqlStateViolations maps PostgreSQL SQLSTATE codes (class 23) onto violations.
var sqlStateViolations = map[string]violation{
	"23505": uniqueViolation,
	"23503": foreignKeyViolation,
	"23502": notNullViolation,
	"23514": checkViolation,
}

// classifyViolation recognizes both the translated gorm errors and raw pgx errors.
func classifyViolation(err error) violation {
	if err == nil {
		return noViolation
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return sqlStateViolations[pgErr.Code]
	}

	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return uniqueViolation
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return foreignKeyViolation
	case errors.Is(err, gorm.ErrCheckConstraintViolated):
		return checkViolation
	}

	// gorm has no translated error for NOT NULL, so fall back to the server message.
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "null value") && strings.Contains(msg, "not-null") {
		return notNullViolation
	}

	return noViolation
}
