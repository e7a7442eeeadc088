package domain

import "time"

// File permissions constants
const (
	// DirectoryPermissions is the default permission for directories (rwxr-xr-x)
	DirectoryPermissions = 0o755
	// SecureFilePermissions is the permission for sensitive files (rw-------)
	SecureFilePermissions = 0o600
)

// Backend call bounds
const (
	// DefaultRequestTimeout bounds a single backend HTTP call.
	DefaultRequestTimeout = 30 * time.Second
	// DefaultRetryAttempts is the maximum number of backend attempts per query.
	DefaultRetryAttempts = 5
	// DefaultBackoffBase is the first retry delay; the schedule doubles from here.
	DefaultBackoffBase = 2 * time.Second
)
