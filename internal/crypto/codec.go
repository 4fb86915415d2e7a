// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 FCS Project Authors

package crypto

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/models"
)

// fieldCodec is the private implementation of [FieldCodec].
type fieldCodec struct {
	masterSecret string
	keys         KeyChain
}

// NewFieldCodec constructs a [FieldCodec] bound to masterSecret. Returns
// [ErrMissingMasterSecret] when the secret is empty; callers are expected to
// treat that as fatal at startup instead of falling back to a default key.
func NewFieldCodec(masterSecret string, keys KeyChain) (FieldCodec, error) {
	if masterSecret == "" {
		return nil, ErrMissingMasterSecret
	}

	return &fieldCodec{
		masterSecret: masterSecret,
		keys:         keys,
	}, nil
}

// EncryptString implements [FieldCodec].
func (c *fieldCodec) EncryptString(plaintext string, ctx models.KeyContext) (models.Envelope, error) {
	key := c.keys.DeriveTextKey(c.masterSecret, ctx.Label())

	ciphertext, iv, tag, err := sealAESGCM([]byte(plaintext), key)
	if err != nil {
		return models.Envelope{}, fmt.Errorf("encrypt for context %s: %w", ctx, err)
	}

	ciphertextB64 := base64.StdEncoding.EncodeToString(ciphertext)
	tagB64 := base64.StdEncoding.EncodeToString(tag)

	return models.Envelope{
		Ciphertext: ciphertextB64,
		IV:         base64.StdEncoding.EncodeToString(iv),
		Algorithm:  models.AlgorithmAES256GCM,
		AuthTag:    tagB64,
		HMAC:       signEnvelope(c.masterSecret, ciphertextB64, tagB64),
	}, nil
}

// EncryptValue implements [FieldCodec].
func (c *fieldCodec) EncryptValue(value any, ctx models.KeyContext) (models.Envelope, error) {
	plaintext, err := json.Marshal(value)
	if err != nil {
		return models.Envelope{}, fmt.Errorf("marshal value: %w", err)
	}

	return c.EncryptString(string(plaintext), ctx)
}

// DecryptString implements [FieldCodec]. The pipeline is fixed: normalize
// the legacy form, verify the HMAC, and only then derive the key and run the
// AEAD open. Integrity failures are reported without spending a PBKDF2
// derivation on data already known to be bad.
func (c *fieldCodec) DecryptString(envelope models.Envelope, ctx models.KeyContext) (string, error) {
	envelope, err := normalizeEnvelope(envelope)
	if err != nil {
		return "", err
	}

	if !verifyEnvelope(c.masterSecret, envelope.Ciphertext, envelope.AuthTag, envelope.HMAC) {
		return "", fmt.Errorf("%w: context %s", ErrIntegrityFailure, ctx)
	}

	ciphertext, err := base64.StdEncoding.DecodeString(envelope.Ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: decode ciphertext: %w", ErrMalformedEnvelope, err)
	}
	iv, err := base64.StdEncoding.DecodeString(envelope.IV)
	if err != nil {
		return "", fmt.Errorf("%w: decode iv: %w", ErrMalformedEnvelope, err)
	}
	tag, err := base64.StdEncoding.DecodeString(envelope.AuthTag)
	if err != nil {
		return "", fmt.Errorf("%w: decode auth tag: %w", ErrMalformedEnvelope, err)
	}

	key := c.keys.DeriveTextKey(c.masterSecret, ctx.Label())

	plaintext, err := openAESGCM(ciphertext, key, iv, tag)
	if err != nil {
		return "", fmt.Errorf("decrypt for context %s: %w", ctx, err)
	}

	return string(plaintext), nil
}

// DecryptValue implements [FieldCodec]. target must be a non-nil pointer,
// identical to the requirement of [encoding/json.Unmarshal].
func (c *fieldCodec) DecryptValue(envelope models.Envelope, ctx models.KeyContext, target any) error {
	plaintext, err := c.DecryptString(envelope, ctx)
	if err != nil {
		return err
	}

	if err := json.Unmarshal([]byte(plaintext), target); err != nil {
		return fmt.Errorf("unmarshal value: %w", err)
	}

	return nil
}
