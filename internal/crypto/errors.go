package crypto

import "errors"

// Sentinel errors returned by the encryption layer. Callers should use
// [errors.Is] to match against these values. All of them are recoverable at
// the call site; this package never panics on bad input.
var (
	// ErrAuthenticationFailed is returned when the AEAD tag check fails
	// during decryption: wrong key (usually a wrong context pair),
	// corrupted ciphertext, or a corrupted IV or tag.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrIntegrityFailure is returned when the secondary HMAC over the
	// envelope does not match. It is detected before AEAD decryption is
	// attempted and is kept distinct from [ErrAuthenticationFailed] so
	// logs can separate transit corruption from a wrong key.
	ErrIntegrityFailure = errors.New("integrity check failed")

	// ErrMalformedEnvelope is returned when an envelope cannot be decoded
	// at all: a legacy record without a recoverable auth tag, an
	// undecodable field, or a media blob shorter than its fixed header.
	ErrMalformedEnvelope = errors.New("malformed envelope")

	// ErrMissingMasterSecret is returned by constructors when the master
	// secret is empty. There is no fallback key: the service refuses to
	// start rather than encrypt under a default value.
	ErrMissingMasterSecret = errors.New("missing master secret")
)
