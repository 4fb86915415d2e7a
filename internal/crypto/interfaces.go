package crypto

import "github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// KeyChain derives symmetric keys from a master secret and a relationship
// context. It knows nothing about storage or transport; its only job is to
// turn (secret, context) into key material, deterministically where the
// scheme allows it.
//
// Scheme:
//
//	textKey  = DeriveTextKey(secret, ctx.Label())          repeatable, no stored state
//	salt     = GenerateMediaSalt()                         random per blob, persisted
//	mediaKey = DeriveMediaKey(secret, ctx.Label(), salt)   repeatable only with the salt
type KeyChain interface {
	// DeriveTextKey derives the 32-byte AES key for text envelopes using
	// PBKDF2-HMAC-SHA256 with the context label as the salt. The same
	// (secret, label) pair always yields the same key, which is what lets
	// a stored envelope be decrypted later without persisting any key.
	DeriveTextKey(masterSecret, label string) []byte

	// DeriveMediaKey derives the 32-byte AES key for a media blob using
	// scrypt. The salt must be the one generated for that blob; without it
	// the key cannot be reproduced.
	DeriveMediaKey(masterSecret, label string, salt []byte) ([]byte, error)

	// GenerateMediaSalt returns a fresh 64-byte random scrypt salt. The
	// salt is not a secret and is persisted inside the blob header.
	GenerateMediaSalt() ([]byte, error)
}

// FieldCodec encrypts and decrypts sensitive text and JSON fields into
// storable envelopes. One codec is bound to one master secret at
// construction; the per-record key context is supplied per call.
type FieldCodec interface {
	// EncryptString encrypts plaintext for the given context and returns
	// a complete envelope with a fresh IV and HMAC.
	EncryptString(plaintext string, ctx models.KeyContext) (models.Envelope, error)

	// EncryptValue serializes value to JSON and encrypts it like
	// EncryptString. Used for transaction payloads and post summaries.
	EncryptValue(value any, ctx models.KeyContext) (models.Envelope, error)

	// DecryptString verifies the envelope's HMAC, then decrypts it with
	// the key derived from ctx. The context must match the one used to
	// encrypt; a swapped pair fails with ErrAuthenticationFailed.
	DecryptString(envelope models.Envelope, ctx models.KeyContext) (string, error)

	// DecryptValue decrypts like DecryptString and unmarshals the JSON
	// plaintext into target, which must be a non-nil pointer.
	DecryptValue(envelope models.Envelope, ctx models.KeyContext, target any) error
}

// BlobVault encrypts and decrypts binary media into self-contained blobs of
// the form salt ‖ iv ‖ authTag ‖ ciphertext. Like FieldCodec it is bound to
// one master secret; file I/O is the caller's job.
type BlobVault interface {
	// EncryptBlob encrypts data for the given context. The returned blob
	// carries everything needed to decrypt it except the master secret.
	EncryptBlob(data []byte, ctx models.KeyContext) ([]byte, error)

	// DecryptBlob splits blob into its fixed-offset segments, re-derives
	// the key from the recovered salt and decrypts. Returns
	// ErrMalformedEnvelope if the blob is shorter than its header.
	DecryptBlob(blob []byte, ctx models.KeyContext) ([]byte, error)
}
