package database

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	domainErr "github.com/amirhossein-jamali/txfixture/internal/domain/error"
)

func TestErrorMapper_MapSessionError(t *testing.T) {
	mapper := NewErrorMapper()

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"tx done", sql.ErrTxDone, domainErr.ErrResourceClosed},
		{"conn done", sql.ErrConnDone, domainErr.ErrResourceClosed},
		{"wrapped tx done", fmt.Errorf("release: %w", sql.ErrTxDone), domainErr.ErrResourceClosed},
		{"gorm invalid transaction", gorm.ErrInvalidTransaction, domainErr.ErrInvalidRequestState},
		{"no active transaction", &pgconn.PgError{Code: "25P01"}, domainErr.ErrInvalidRequestState},
		{"in failed transaction", &pgconn.PgError{Code: "25P02"}, domainErr.ErrInvalidRequestState},
		{"invalid transaction state", &pgconn.PgError{Code: "25000"}, domainErr.ErrInvalidRequestState},
		{"unknown savepoint", &pgconn.PgError{Code: "3B001"}, domainErr.ErrInvalidRequestState},
		{"unique violation", &pgconn.PgError{Code: "23505"}, domainErr.ErrConstraintViolation},
		{"connection failure", &pgconn.PgError{Code: "08006"}, domainErr.ErrDatabaseConnection},
		{"message already committed", errors.New("sql: transaction has already been committed or rolled back"), domainErr.ErrResourceClosed},
		{"message aborted", errors.New("ERROR: current transaction is aborted"), domainErr.ErrInvalidRequestState},
		{"message savepoint missing", errors.New(`savepoint "uow_1" does not exist`), domainErr.ErrInvalidRequestState},
		{"message refused", errors.New("dial tcp: connection refused"), domainErr.ErrDatabaseConnection},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapped := mapper.MapSessionError(tt.err, "release savepoint")

			assert.ErrorIs(t, mapped, tt.want)
			assert.ErrorIs(t, mapped, tt.err)

			var sessionErr *domainErr.SessionError
			assert.ErrorAs(t, mapped, &sessionErr)
			assert.Equal(t, "release savepoint", sessionErr.Action)
		})
	}
}

func TestErrorMapper_Unrecognized(t *testing.T) {
	mapper := NewErrorMapper()

	t.Run("Nil stays nil", func(t *testing.T) {
		assert.NoError(t, mapper.MapSessionError(nil, "commit"))
	})

	t.Run("Unknown error is returned as is", func(t *testing.T) {
		boom := errors.New("out of memory")
		assert.Same(t, boom, mapper.MapSessionError(boom, "commit"))
		assert.Nil(t, mapper.Classify(boom))
	})

	t.Run("Unknown SQLSTATE is not classified", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: "42P01"}
		assert.Same(t, error(pgErr), mapper.MapSessionError(pgErr, "commit"))
	})
}
