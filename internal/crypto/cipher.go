// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 FCS Project Authors

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"
)

const (
	// ivSize is the GCM nonce length. 16 bytes rather than the Go default
	// of 12: every stored envelope was produced with a 16-byte IV, so the
	// cipher must be built with cipher.NewGCMWithNonceSize to match.
	ivSize = 16

	// tagSize is the GCM authentication tag length.
	tagSize = 16
)

// sealAESGCM encrypts plaintext with AES-256-GCM under key. It generates a
// fresh random 16-byte IV for every call; the IV is never derived from the
// content or the context, since reusing an IV under the same derived key
// would void GCM's guarantees. Returns ciphertext, IV and the auth tag as
// three separate values.
func sealAESGCM(plaintext, key []byte) (ciphertext, iv, tag []byte, err error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, nil, nil, err
	}

	iv = make([]byte, ivSize)
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return nil, nil, nil, fmt.Errorf("generate iv: %w", err)
	}

	// Seal appends the tag to the ciphertext; split it back out so the
	// envelope can store the two as independent fields.
	sealed := gcm.Seal(nil, iv, plaintext, nil)
	ciphertext = sealed[:len(sealed)-tagSize]
	tag = sealed[len(sealed)-tagSize:]

	return ciphertext, iv, tag, nil
}

// openAESGCM decrypts ciphertext with AES-256-GCM under key, checking the
// auth tag. Any tampering with ciphertext, iv or tag makes the open fail
// with [ErrAuthenticationFailed] rather than return garbage plaintext. A
// decrypt under a key derived from the wrong context fails the same way.
func openAESGCM(ciphertext, key, iv, tag []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	if len(iv) != ivSize {
		return nil, fmt.Errorf("%w: iv length %d, want %d", ErrMalformedEnvelope, len(iv), ivSize)
	}

	// Reassemble the ciphertext ‖ tag form gcm.Open expects without
	// appending in place, since ciphertext may alias a larger buffer.
	sealed := make([]byte, 0, len(ciphertext)+len(tag))
	sealed = append(sealed, ciphertext...)
	sealed = append(sealed, tag...)

	plaintext, err := gcm.Open(nil, iv, sealed, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAuthenticationFailed, err)
	}

	return plaintext, nil
}

// newGCM builds the AES-GCM AEAD with the non-default 16-byte nonce size.
func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCMWithNonceSize(block, ivSize)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return gcm, nil
}
