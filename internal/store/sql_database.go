package store

import (
	"database/sql"

	"github.com/provenart/go-art-registry/internal/logger"
)

// DB wraps *sql.DB with the application logger and an error classifier for
// the backing engine. Both the SQLite snapshot store and the PostgreSQL
// ledger-entry store build on it.
type DB struct {
	*sql.DB
	errorClassifier ErrorClassifier
	logger          *logger.Logger
}

// ErrorClassifier translates driver-specific errors into the engine-neutral
// categories the repositories care about.
type ErrorClassifier interface {
	// IsUniqueViolation reports whether err is a unique-constraint
	// violation.
	IsUniqueViolation(err error) bool
}
