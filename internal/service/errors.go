package service

import "errors"

var (
	// ErrNotLoaded is returned by operations that need a loaded document.
	ErrNotLoaded = errors.New("planner document not loaded")
	// ErrCorruptDocument wraps a stored document that no longer decodes.
	ErrCorruptDocument = errors.New("stored planner document is corrupt")

	ErrItemNotFound    = errors.New("menu item not found")
	ErrSectionNotFound = errors.New("section not found")
	ErrEntryNotFound   = errors.New("entry not found")
	ErrEmptyText       = errors.New("text must not be empty")
	ErrMissingWhen     = errors.New("date and time are required")

	ErrUserNotFound      = errors.New("username not found")
	ErrDuplicateUsername = errors.New("username already exists")
	ErrInvalidPermission = errors.New("permission must be full or read")
)
