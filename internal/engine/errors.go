package engine

import (
	"errors"
	"fmt"
)

// Code categorizes mutation and subscription failures. All of them are
// request-level: the caller surfaces them to its client, the process
// keeps running.
type Code string

const (
	// CodeNotFound indicates the targeted entity ID is unknown in its
	// collection.
	CodeNotFound Code = "NOT_FOUND"

	// CodeDuplicateEmail indicates a uniqueness violation on user email.
	CodeDuplicateEmail Code = "DUPLICATE_EMAIL"

	// CodeAuthorNotFound indicates a create referenced a non-existent user.
	CodeAuthorNotFound Code = "AUTHOR_NOT_FOUND"

	// CodePostNotFound indicates a create or subscribe referenced a
	// non-existent post.
	CodePostNotFound Code = "POST_NOT_FOUND"

	// CodePostNotPublished indicates a comment subscription targeted a
	// post that exists but is not published.
	CodePostNotPublished Code = "POST_NOT_PUBLISHED"
)

// Error is the failure value returned by every engine operation. It
// carries structured fields so callers can react to the category without
// parsing the message.
type Error struct {
	Code    Code
	Message string

	// Entity names the collection the failure concerns ("user", "post",
	// "comment"). Empty when not applicable.
	Entity string

	// ID is the identifier or email that triggered the failure.
	ID string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Entity != "" && e.ID != "" {
		return fmt.Sprintf("%s: %s (%s=%s)", e.Code, e.Message, e.Entity, e.ID)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// CodeOf extracts the Code from an engine error. Returns an empty Code
// for nil or foreign errors. Uses errors.As, so wrapped errors match.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// IsNotFound reports whether err is an engine error with CodeNotFound.
func IsNotFound(err error) bool {
	return CodeOf(err) == CodeNotFound
}

// IsDuplicateEmail reports whether err is an engine error with
// CodeDuplicateEmail.
func IsDuplicateEmail(err error) bool {
	return CodeOf(err) == CodeDuplicateEmail
}

func notFound(entity, id string) *Error {
	return &Error{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("this %s does not exist", entity),
		Entity:  entity,
		ID:      id,
	}
}

func duplicateEmail(email string) *Error {
	return &Error{
		Code:    CodeDuplicateEmail,
		Message: "this email is taken",
		Entity:  "user",
		ID:      email,
	}
}

func authorNotFound(id string) *Error {
	return &Error{
		Code:    CodeAuthorNotFound,
		Message: "author not found",
		Entity:  "user",
		ID:      id,
	}
}

func postNotFound(id string) *Error {
	return &Error{
		Code:    CodePostNotFound,
		Message: "post not found",
		Entity:  "post",
		ID:      id,
	}
}

func postNotPublished(id string) *Error {
	return &Error{
		Code:    CodePostNotPublished,
		Message: "post is not published",
		Entity:  "post",
		ID:      id,
	}
}
