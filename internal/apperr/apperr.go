// Package apperr defines the error type shared by the service, store and
// handler layers. Every failure a client can see carries a Kind that the
// HTTP layer maps to a status code, plus a client-safe message.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an error for the caller.
type Kind int

const (
	// KindInternal is an unclassified failure. Its message is never shown to clients.
	KindInternal Kind = iota
	// KindBadRequest marks malformed input: ids, query params, bodies, dangling references.
	KindBadRequest
	// KindNotFound marks a well-formed identifier that references no row.
	KindNotFound
	// KindConflict marks a write that collides with existing state.
	KindConflict
)

// String returns the kind name used in logs.
func (k Kind) String() string {
	switch k {
	case KindBadRequest:
		return "bad_request"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	default:
		return "internal"
	}
}

// Canonical client-facing messages.
const (
	MsgBadRequest      = "Bad request"
	MsgArticleNotFound = "Article ID not found"
	MsgCommentNotFound = "Comment ID not found"
	MsgTopicNotFound   = "Topic not found"
	MsgUserNotFound    = "Username not found"
	MsgPathNotFound    = "Path not found"
	MsgTopicExists     = "Topic already exists"
	MsgTopicInUse      = "Topic has articles"
	MsgInternal        = "Internal server error"
)

// Error is a classified application error.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// BadRequest returns a KindBadRequest error. An empty msg uses MsgBadRequest.
func BadRequest(msg string) *Error {
	if msg == "" {
		msg = MsgBadRequest
	}
	return &Error{Kind: KindBadRequest, Msg: msg}
}

// NotFound returns a KindNotFound error with an entity-specific message.
func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Msg: msg}
}

// Conflict returns a KindConflict error.
func Conflict(msg string) *Error {
	return &Error{Kind: KindConflict, Msg: msg}
}

// Internal wraps an unclassified error.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Msg: MsgInternal, Err: err}
}

// Wrap attaches a cause to a classified error without changing its kind or message.
func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// KindOf reports the kind of err. Errors that are not *Error are KindInternal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// Message returns the client-safe message for err.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Kind != KindInternal {
		return e.Msg
	}
	return MsgInternal
}

// IsBadRequest checks if an error is a malformed-input error.
func IsBadRequest(err error) bool { return KindOf(err) == KindBadRequest }

// IsNotFound checks if an error is a not-found error.
func IsNotFound(err error) bool { return KindOf(err) == KindNotFound }

// IsConflict checks if an error is a conflict error.
func IsConflict(err error) bool { return KindOf(err) == KindConflict }
