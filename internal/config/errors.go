package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration values are missing or invalid. Any of them is fatal at
// startup: the process must not serve traffic.
var (
	// ErrMissingTokenSignKey indicates that no JWT signing key was provided
	// by any configuration source.
	ErrMissingTokenSignKey = errors.New("token sign key is not configured")
	// ErrMissingDatabaseDSN indicates that no database connection string was
	// provided by any configuration source.
	ErrMissingDatabaseDSN = errors.New("database DSN is not configured")
	// ErrUnsupportedDBEngine indicates that Storage.DB.Engine names an
	// engine other than "postgres" or "sqlite".
	ErrUnsupportedDBEngine = errors.New("unsupported database engine")
)
