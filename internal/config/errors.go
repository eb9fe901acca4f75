package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or inconsistent.
var (
	// ErrInvalidMongoConfigs indicates missing MongoDB connection settings
	// (username, password, or cluster address).
	ErrInvalidMongoConfigs = errors.New("invalid mongo configuration")
	// ErrInvalidTokenConfigs indicates inconsistent token lifecycle
	// settings (for example, a renewal window no shorter than the token
	// lifetime).
	ErrInvalidTokenConfigs = errors.New("invalid token configuration")
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing base URL or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid client storage settings.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero refresh interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
