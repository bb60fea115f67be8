// Package errs defines the single error taxonomy shared by every layer of
// the client: transport, cache, pagination, verification, files, and
// chats all return a *Error rather than an ad-hoc wrapped error, so the
// CLI boundary can map any failure to an exit code without knowing which
// subsystem produced it.
package errs

import (
	"errors"
	"fmt"
	"time"
)

// Kind classifies an Error without binding it to a specific identifier
// or message. Classification drives retry policy (see package verify)
// and the CLI's exit code.
type Kind int

const (
	// KindUnauthorized means the server rejected the bearer token or
	// session outright.
	KindUnauthorized Kind = iota
	// KindNoKeyStore means no keystore is configured, or the keystore
	// held no token at the moment a request needed one.
	KindNoKeyStore
	// KindKeyStore means the keystore itself failed (read/write error
	// on its backing store).
	KindKeyStore
	// KindAuth means a session-minting call failed or returned an empty
	// token.
	KindAuth
	// KindNotFound means the server returned 404 or RPC NotFound for a
	// named object/key.
	KindNotFound
	// KindValidation means the request was malformed before it ever
	// reached the wire (bad filter text, limit=0, empty key, ...).
	KindValidation
	// KindAPIError wraps a structured {code, message} the server sent
	// back on a non-2xx REST response or a non-zero RPC error field.
	KindAPIError
	// KindHTTP means the REST channel failed at the transport level
	// (connection refused, TLS error, timeout) before any API error
	// body could be read.
	KindHTTP
	// KindRPC means the RPC channel failed at the transport level.
	KindRPC
	// KindIO means a local file operation failed (open/read/write).
	KindIO
	// KindSerde means JSON/proto (de)serialization failed.
	KindSerde
	// KindTooManyRetries means a bounded retry loop other than
	// verification exhausted its attempts.
	KindTooManyRetries
	// KindVerifyTimeout means verification (C7) exhausted its attempts
	// or its timeout before the object resolved.
	KindVerifyTimeout
	// KindOther is the catch-all for anything not otherwise classified.
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindUnauthorized:
		return "unauthorized"
	case KindNoKeyStore:
		return "no_keystore"
	case KindKeyStore:
		return "keystore"
	case KindAuth:
		return "auth"
	case KindNotFound:
		return "not_found"
	case KindValidation:
		return "validation"
	case KindAPIError:
		return "api_error"
	case KindHTTP:
		return "http"
	case KindRPC:
		return "rpc"
	case KindIO:
		return "io"
	case KindSerde:
		return "serde"
	case KindTooManyRetries:
		return "too_many_retries"
	case KindVerifyTimeout:
		return "verify_timeout"
	default:
		return "other"
	}
}

// Error is the single error sum used across the module. Fields beyond
// Kind/Message are populated only by the variants that need them; they
// are zero-valued otherwise.
type Error struct {
	Kind    Kind
	Message string

	// NotFound / VerifyTimeout
	ObjType string
	Key     string

	// APIError
	Code int

	// VerifyTimeout
	Attempts int
	Timeout  time.Duration
	LastErr  error

	// wrapped cause, if any (transport errors, json errors, ...)
	Cause error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindNotFound:
		return fmt.Sprintf("not found: %s %q", e.ObjType, e.Key)
	case KindAPIError:
		return fmt.Sprintf("api error %d: %s", e.Code, e.Message)
	case KindVerifyTimeout:
		return fmt.Sprintf("verify timeout for %s %q after %d attempts (%s): %v",
			e.ObjType, e.Key, e.Attempts, e.Timeout, e.LastErr)
	default:
		if e.Cause != nil {
			return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
		}
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
}

func (e *Error) Unwrap() error { return e.Cause }

// As reports whether err is, or wraps, an *Error, the idiomatic
// replacement for manual type switches at call sites.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

func NotFound(objType, key string) *Error {
	return &Error{Kind: KindNotFound, ObjType: objType, Key: key}
}

func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func APIError(code int, message string) *Error {
	return &Error{Kind: KindAPIError, Code: code, Message: message}
}

// NotFoundAs fills in ObjType/Key on err if it is a *Error of Kind
// NotFound produced without them (a bare wire 404 or RPC NotFound); any
// other error, or a NotFound that already carries them, is returned
// unchanged.
func NotFoundAs(err error, objType, key string) error {
	e, ok := As(err)
	if !ok || e.Kind != KindNotFound || e.ObjType != "" {
		return err
	}
	return NotFound(objType, key)
}

func VerifyTimeout(objType, key string, attempts int, timeout time.Duration, last error) *Error {
	return &Error{
		Kind:     KindVerifyTimeout,
		ObjType:  objType,
		Key:      key,
		Attempts: attempts,
		Timeout:  timeout,
		LastErr:  last,
	}
}

// Retryable reports whether err's Kind is eligible for verification
// retry (C7 step 3): NotFound, Http, TooManyRetries, or an APIError with
// code >= 500.
func Retryable(err error) bool {
	e, ok := As(err)
	if !ok {
		return false
	}
	switch e.Kind {
	case KindNotFound, KindHTTP, KindTooManyRetries:
		return true
	case KindAPIError:
		return e.Code >= 500
	default:
		return false
	}
}

// ExitCode maps an error to the process's exit code. nil maps to 0.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	e, ok := As(err)
	if !ok {
		return 1
	}
	switch e.Kind {
	case KindUnauthorized, KindNoKeyStore, KindKeyStore, KindAuth:
		return 2
	default:
		return 1
	}
}
