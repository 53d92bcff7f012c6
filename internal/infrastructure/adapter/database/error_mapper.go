package database

import (
	"database/sql"
	"errors"
	"strings"

	domainErr "github.com/amirhossein-jamali/txfixture/internal/domain/error"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes that describe a transaction the session can no longer use
const (
	sqlStateInvalidTransactionState  = "25000"
	sqlStateNoActiveSQLTransaction   = "25P01"
	sqlStateInFailedSQLTransaction   = "25P02"
	sqlStateInvalidSavepointSpec     = "3B001"
	sqlStateIntegrityConstraintClass = "23"
	sqlStateConnectionExceptionClass = "08"
)

// ErrNotConnected is returned by Manager methods called before Connect
var ErrNotConnected = errors.New("database is not connected")

// ErrorMapper maps database errors to domain errors
type ErrorMapper struct{}

// NewErrorMapper creates a new ErrorMapper
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{}
}

// MapSessionError classifies an error raised by a savepoint or session call.
// Recognized conditions come back as *SessionError carrying the original
// error; anything else is returned untouched.
func (m *ErrorMapper) MapSessionError(err error, action string) error {
	if err == nil {
		return nil
	}

	kind := m.Classify(err)
	if kind == nil {
		return err
	}
	return domainErr.NewSessionError(action, kind, err)
}

// Classify returns the domain sentinel for err, or nil when err is not recognized
func (m *ErrorMapper) Classify(err error) error {
	switch {
	case errors.Is(err, sql.ErrTxDone), errors.Is(err, sql.ErrConnDone):
		return domainErr.ErrResourceClosed
	case errors.Is(err, gorm.ErrInvalidTransaction):
		return domainErr.ErrInvalidRequestState
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == sqlStateInvalidTransactionState,
			pgErr.Code == sqlStateNoActiveSQLTransaction,
			pgErr.Code == sqlStateInFailedSQLTransaction,
			pgErr.Code == sqlStateInvalidSavepointSpec:
			return domainErr.ErrInvalidRequestState
		case strings.HasPrefix(pgErr.Code, sqlStateIntegrityConstraintClass):
			return domainErr.ErrConstraintViolation
		case strings.HasPrefix(pgErr.Code, sqlStateConnectionExceptionClass):
			return domainErr.ErrDatabaseConnection
		}
		return nil
	}

	// Drivers that do not surface SQLSTATE still use these messages
	errMsg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(errMsg, "already been committed or rolled back"):
		return domainErr.ErrResourceClosed
	case strings.Contains(errMsg, "current transaction is aborted") ||
		strings.Contains(errMsg, "savepoint") && strings.Contains(errMsg, "does not exist"):
		return domainErr.ErrInvalidRequestState
	case strings.Contains(errMsg, "connection refused") ||
		strings.Contains(errMsg, "connection reset"):
		return domainErr.ErrDatabaseConnection
	default:
		return nil
	}
}
