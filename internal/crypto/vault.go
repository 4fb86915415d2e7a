// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 FCS Project Authors

package crypto

import (
	"fmt"

	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/models"
)

// blobHeaderSize is the fixed prefix of every media blob:
// salt (64) ‖ iv (16) ‖ authTag (16), followed by the ciphertext.
const blobHeaderSize = mediaSaltSize + ivSize + tagSize

// blobVault is the private implementation of [BlobVault].
type blobVault struct {
	masterSecret string
	keys         KeyChain
}

// NewBlobVault constructs a [BlobVault] bound to masterSecret. Returns
// [ErrMissingMasterSecret] when the secret is empty.
func NewBlobVault(masterSecret string, keys KeyChain) (BlobVault, error) {
	if masterSecret == "" {
		return nil, ErrMissingMasterSecret
	}

	return &blobVault{
		masterSecret: masterSecret,
		keys:         keys,
	}, nil
}

// EncryptBlob implements [BlobVault]. Every blob gets its own random scrypt
// salt; the salt, IV and tag travel in the blob header so the file is fully
// self-contained and unrelated files never need coordination.
func (v *blobVault) EncryptBlob(data []byte, ctx models.KeyContext) ([]byte, error) {
	salt, err := v.keys.GenerateMediaSalt()
	if err != nil {
		return nil, fmt.Errorf("generate media salt: %w", err)
	}

	key, err := v.keys.DeriveMediaKey(v.masterSecret, ctx.Label(), salt)
	if err != nil {
		return nil, err
	}

	ciphertext, iv, tag, err := sealAESGCM(data, key)
	if err != nil {
		return nil, fmt.Errorf("encrypt blob for context %s: %w", ctx, err)
	}

	blob := make([]byte, 0, blobHeaderSize+len(ciphertext))
	blob = append(blob, salt...)
	blob = append(blob, iv...)
	blob = append(blob, tag...)
	blob = append(blob, ciphertext...)

	return blob, nil
}

// DecryptBlob implements [BlobVault]. The header segments sit at fixed
// offsets, so anything shorter than the header cannot be a valid blob.
func (v *blobVault) DecryptBlob(blob []byte, ctx models.KeyContext) ([]byte, error) {
	if len(blob) < blobHeaderSize {
		return nil, fmt.Errorf(
			"%w: blob of %d bytes is shorter than the %d-byte header", ErrMalformedEnvelope, len(blob), blobHeaderSize,
		)
	}

	salt := blob[:mediaSaltSize]
	iv := blob[mediaSaltSize : mediaSaltSize+ivSize]
	tag := blob[mediaSaltSize+ivSize : blobHeaderSize]
	ciphertext := blob[blobHeaderSize:]

	key, err := v.keys.DeriveMediaKey(v.masterSecret, ctx.Label(), salt)
	if err != nil {
		return nil, err
	}

	plaintext, err := openAESGCM(ciphertext, key, iv, tag)
	if err != nil {
		return nil, fmt.Errorf("decrypt blob for context %s: %w", ctx, err)
	}

	return plaintext, nil
}
