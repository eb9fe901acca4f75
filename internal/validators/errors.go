package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	ErrUsernameTooShort     = errors.New("username too short: must be at least 4 characters")
	ErrUsernameTooLong      = errors.New("username too long: must be at most 32 characters")
	ErrUsernameNotAlnum     = errors.New("username must contain letters or numbers")
	ErrPasswordLength       = errors.New("password must be between 8 and 32 characters")
	ErrPasswordNoUppercase  = errors.New("password must contain at least one uppercase letter")
	ErrPasswordNoLowercase  = errors.New("password must contain at least one lowercase letter")
	ErrPasswordNoDigit      = errors.New("password must contain at least one number")
	ErrPasswordNoLetter     = errors.New("password must contain at least one letter")
	ErrPasswordNoSpecial    = errors.New("password must contain at least one special character")

	ErrEmptyProjectName   = errors.New("project name cannot be empty")
	ErrProjectNameTooLong = errors.New("project name must be 50 characters or less")
	ErrEmptyProjectUUID   = errors.New("project uuid cannot be empty")

	ErrInvalidTaskType     = errors.New("task_type must be one of task or milestone")
	ErrEmptyTaskName       = errors.New("task name cannot be empty")
	ErrTaskNameTooLong     = errors.New("task name must be 20 characters or less")
	ErrDescriptionTooLong  = errors.New("task description must be 1024 characters or less")
	ErrInvalidColour       = errors.New("colour must be a #RRGGBB string")
	ErrInvalidTaskUUID     = errors.New("invalid task uuid")
	ErrInvalidTaskID       = errors.New("invalid task id")
	ErrNegativeRow         = errors.New("task row cannot be negative")
)
