// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 FCS Project Authors

package models

// CipherAlgorithm identifies the AEAD construction that produced an envelope.
// Stored alongside the ciphertext for forward compatibility; the service
// currently produces and accepts a single value.
type CipherAlgorithm string

const (
	// AlgorithmAES256GCM is AES-256-GCM with a 16-byte random IV and a
	// 16-byte authentication tag.
	AlgorithmAES256GCM CipherAlgorithm = "aes-256-gcm"
)

// Envelope is the canonical at-rest and on-wire form of one encrypted value.
//
// Every field is an independent text column: Ciphertext, IV and AuthTag are
// standard base64, HMAC is lowercase hex. Envelopes are immutable: editing a
// record re-encrypts the new content into a brand-new envelope with a fresh
// IV and HMAC; nothing ever mutates an existing one.
type Envelope struct {
	// Ciphertext is the base64-encoded AEAD output without the trailing tag.
	//
	// Legacy rows stored the tag inside this field as "<ciphertext>.<tag>";
	// such rows are recognized by an empty AuthTag and normalized on read.
	Ciphertext string `json:"ciphertext"`

	// IV is the base64-encoded 16-byte initialization vector. It is freshly
	// random for every encryption and never derived from content or context.
	IV string `json:"iv"`

	// Algorithm names the cipher construction, see AlgorithmAES256GCM.
	Algorithm CipherAlgorithm `json:"algorithm"`

	// AuthTag is the base64-encoded 16-byte GCM authentication tag.
	// Empty on legacy rows, see Ciphertext.
	AuthTag string `json:"auth_tag,omitempty"`

	// HMAC is the hex-encoded HMAC-SHA256 computed over the textual
	// Ciphertext and AuthTag, keyed by the master secret of the owning
	// domain. It is verified before any AEAD decryption is attempted.
	HMAC string `json:"hmac"`
}

// IsLegacy reports whether the envelope predates the separate AuthTag column
// and therefore carries its tag embedded in Ciphertext.
func (e Envelope) IsLegacy() bool {
	return e.AuthTag == ""
}
