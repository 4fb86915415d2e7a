// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 FCS Project Authors

package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/crypto/scrypt"
)

// mediaSaltSize is the scrypt salt length persisted in every media blob.
const mediaSaltSize = 64

// keyChain is the private implementation of [KeyChain].
type keyChain struct {
	// PBKDF2 and scrypt tuning parameters. Stored in the struct so a
	// deployment can tighten them without touching call sites; changing
	// them invalidates every envelope derived under the old values.
	pbkdf2Iterations int
	scryptN          int
	scryptR          int
	scryptP          int
	keyLen           int
}

// NewKeyChain constructs a [KeyChain] with the parameters every stored
// envelope was produced under:
//   - text keys:  PBKDF2-HMAC-SHA256, 10,000 iterations
//   - media keys: scrypt, N=16384, r=8, p=1
//   - key length: 32 bytes (256 bits) for both
func NewKeyChain() KeyChain {
	return &keyChain{
		pbkdf2Iterations: 10_000,
		scryptN:          16_384,
		scryptR:          8,
		scryptP:          1,
		keyLen:           32, // 256 bits
	}
}

// DeriveTextKey implements [KeyChain]. It runs PBKDF2-HMAC-SHA256 with
// masterSecret as the password and the context label as the salt. The label
// doubles as the salt on purpose: it is what scopes the key to exactly one
// ordered relationship.
func (k *keyChain) DeriveTextKey(masterSecret, label string) []byte {
	return pbkdf2.Key(
		[]byte(masterSecret),
		[]byte(label),
		k.pbkdf2Iterations,
		k.keyLen,
		sha256.New,
	)
}

// DeriveMediaKey implements [KeyChain]. It folds the context label into the
// scrypt password as "{secret}-{label}" and uses the per-blob random salt,
// so the key depends on all three of secret, relationship and blob.
func (k *keyChain) DeriveMediaKey(masterSecret, label string, salt []byte) ([]byte, error) {
	key, err := scrypt.Key(
		[]byte(masterSecret+"-"+label),
		salt,
		k.scryptN,
		k.scryptR,
		k.scryptP,
		k.keyLen,
	)
	if err != nil {
		return nil, fmt.Errorf("derive media key: %w", err)
	}
	return key, nil
}

// GenerateMediaSalt implements [KeyChain]. It reads 64 random bytes from the
// OS CSPRNG. Returns an error if the random read fails.
func (k *keyChain) GenerateMediaSalt() ([]byte, error) {
	salt := make([]byte, mediaSaltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}
	return salt, nil
}
