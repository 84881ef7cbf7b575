package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong name or password")
	ErrInvalidToken     = errors.New("invalid token")
	ErrValidation       = errors.New("validation failed")

	ErrTemplateNotFound = errors.New("template doesn't exist")
	ErrTemplateActive   = errors.New("cannot delete active template")
	ErrWrongOwner       = errors.New("resource has different owner")
	ErrOwnerNotFound    = errors.New("owner user doesn't exist")

	ErrWorkoutNotFound = errors.New("workout log doesn't exist")
	ErrInvalidDate     = errors.New("date must be formatted as YYYY-MM-DD")

	ErrEntryNotFound = errors.New("exercise library entry doesn't exist")

	ErrPreferencesNotFound = errors.New("preferences don't exist")
)
