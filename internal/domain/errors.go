package domain

import (
	"errors"
	"fmt"
)

type NotFoundError struct {
	Resource string
	Err      error
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e NotFoundError) Unwrap() error { return e.Err }

// ValidationError is a short-circuit: the request never reached the database.
type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	if e.Msg != "" && e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }

type ConflictError struct {
	Resource string
	Msg      string
	Err      error
}

func (e ConflictError) Error() string {
	switch {
	case e.Msg != "" && e.Resource != "":
		return fmt.Sprintf("%s conflict: %s", e.Resource, e.Msg)
	case e.Msg != "":
		return e.Msg
	case e.Resource != "":
		return fmt.Sprintf("%s conflict", e.Resource)
	default:
		return "conflict"
	}
}

func (e ConflictError) Unwrap() error { return e.Err }

// FetchError wraps a failed read. Msg is the text shown to the user.
type FetchError struct {
	Op  string
	Msg string
	Err error
}

func (e FetchError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Op != "" {
		return fmt.Sprintf("fetch %s failed", e.Op)
	}
	return "fetch failed"
}

func (e FetchError) Unwrap() error { return e.Err }

// PersistError wraps a failed insert or upsert. Msg is the text shown to the user.
type PersistError struct {
	Op  string
	Msg string
	Err error
}

func (e PersistError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Op != "" {
		return fmt.Sprintf("persist %s failed", e.Op)
	}
	return "persist failed"
}

func (e PersistError) Unwrap() error { return e.Err }

type InternalError struct {
	Msg string
	Err error
}

func (e InternalError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "internal error"
}

func (e InternalError) Unwrap() error { return e.Err }

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsConflict(err error) bool {
	var target ConflictError
	return errors.As(err, &target)
}

func IsFetch(err error) bool {
	var target FetchError
	return errors.As(err, &target)
}

func IsPersist(err error) bool {
	var target PersistError
	return errors.As(err, &target)
}

func IsInternal(err error) bool {
	var target InternalError
	return errors.As(err, &target)
}

// UserMessage returns the human readable text carried by err, or fallback.
func UserMessage(err error, fallback string) string {
	var fe FetchError
	if errors.As(err, &fe) && fe.Msg != "" {
		return fe.Msg
	}
	var pe PersistError
	if errors.As(err, &pe) && pe.Msg != "" {
		return pe.Msg
	}
	var ve ValidationError
	if errors.As(err, &ve) {
		return ve.Error()
	}
	return fallback
}
