package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestClassifyViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want violation
	}{
		{name: "nil", err: nil, want: noViolation},
		{name: "pg unique", err: errors.WithStack(&pgconn.PgError{Code: "23505"}), want: uniqueViolation},
		{name: "pg foreign key", err: &pgconn.PgError{Code: "23503"}, want: foreignKeyViolation},
		{name: "pg not null", err: &pgconn.PgError{Code: "23502"}, want: notNullViolation},
		{name: "pg check", err: &pgconn.PgError{Code: "23514"}, want: checkViolation},
		{name: "pg other", err: &pgconn.PgError{Code: "40001"}, want: noViolation},
		{name: "gorm duplicated key", err: gorm.ErrDuplicatedKey, want: uniqueViolation},
		{name: "gorm foreign key", err: errors.Wrap(gorm.ErrForeignKeyViolated, "insert"), want: foreignKeyViolation},
		{name: "not null message", err: errors.New(`null value in column "name" violates not-null constraint`), want: notNullViolation},
		{name: "unrelated", err: errors.New("connection reset"), want: noViolation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyViolation(tt.err))
		})
	}
}
