package zeus

import (
	"github.com/pkg/errors"
)

// Every failure of a vault or profile operation is classified as exactly one
// of these errors. Call sites add context with errors.Wrap or
// errors.WithMessage; callers branch with errors.Is. Error text never
// contains key bytes, derived keys or passwords.
var (
	// ErrInvalidCredentials is returned when a username, password or
	// confirmation is empty, or the confirmation does not match.
	// Recoverable: the user must re-enter their credentials.
	ErrInvalidCredentials = errors.New("username and password must be provided and passwords must match")

	// ErrDerivationFailed is returned when the password hash primitive
	// rejects its parameters or fails internally. It is never retried:
	// a deterministic algorithm cannot succeed on retry without
	// different inputs.
	ErrDerivationFailed = errors.New("key derivation failed")

	// ErrAuthenticationFailed is returned when opening a ciphertext with
	// the wrong key or after the ciphertext was tampered with. No partial
	// plaintext is ever returned alongside it.
	ErrAuthenticationFailed = errors.New("wrong credentials or corrupted data")

	// ErrMalformedContainer is returned when a vault file lacks the
	// parameter identifier or carries a parameter record of the wrong
	// size. Unrecoverable for that file.
	ErrMalformedContainer = errors.New("malformed vault container")

	// ErrDuplicateName is returned when adding a wallet whose name is
	// already used within the profile.
	ErrDuplicateName = errors.New("wallet name already in use")

	// ErrNotFound is returned when no wallet with the given name exists.
	ErrNotFound = errors.New("no wallet with the given name")

	// ErrInvalidKey is returned when an imported private key cannot be
	// parsed.
	ErrInvalidKey = errors.New("invalid private key")
)
