// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 FCS Project Authors

package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/internal/logger"
	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/internal/utils"
)

// localMediaFileStore is the directory-backed implementation of
// [MediaFileStore]. Each blob is written as a single file whose name is a
// generated UUID; the name doubles as the blob key stored in the metadata
// row. Files hold ciphertext only, so directory permissions are a second
// fence rather than the primary protection.
type localMediaFileStore struct {
	dir    string
	keys   *utils.UUIDGenerator
	logger *logger.Logger
}

// NewLocalMediaFileStore constructs a [MediaFileStore] rooted at dir,
// creating the directory if it does not exist.
func NewLocalMediaFileStore(dir string, logger *logger.Logger) (MediaFileStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		logger.Err(err).
			Str("func", "NewLocalMediaFileStore").
			Str("dir", dir).
			Msg("failed to create media directory")
		return nil, fmt.Errorf("create media directory: %w", err)
	}

	return &localMediaFileStore{
		dir:    dir,
		keys:   utils.NewUUIDGenerator(),
		logger: logger,
	}, nil
}

// SaveBlob writes the encrypted blob under a fresh UUID key and returns
// that key.
func (s *localMediaFileStore) SaveBlob(ctx context.Context, blob []byte) (string, error) {
	log := logger.FromContext(ctx)

	key := s.keys.Generate()

	if err := os.WriteFile(filepath.Join(s.dir, key), blob, 0o600); err != nil {
		log.Err(err).
			Str("func", "localMediaFileStore.SaveBlob").
			Str("blob_key", key).
			Msg("failed to write media blob")
		return "", fmt.Errorf("write media blob: %w", err)
	}

	return key, nil
}

// LoadBlob reads the encrypted blob stored under key.
//
// Returns [ErrMediaNotFound] when no file exists for the key.
func (s *localMediaFileStore) LoadBlob(ctx context.Context, key string) ([]byte, error) {
	log := logger.FromContext(ctx)

	// Keys are server-generated UUIDs; Base strips any separators a
	// corrupted row could smuggle in.
	data, err := os.ReadFile(filepath.Join(s.dir, filepath.Base(key)))
	if err != nil {
		if os.IsNotExist(err) {
			log.Warn().
				Str("func", "localMediaFileStore.LoadBlob").
				Str("blob_key", key).
				Msg("media blob not found")
			return nil, ErrMediaNotFound
		}

		log.Err(err).
			Str("func", "localMediaFileStore.LoadBlob").
			Str("blob_key", key).
			Msg("failed to read media blob")
		return nil, fmt.Errorf("read media blob: %w", err)
	}

	return data, nil
}

// DeleteBlob removes the blob stored under key. A missing file is treated
// as success so that retried deletes stay idempotent.
func (s *localMediaFileStore) DeleteBlob(ctx context.Context, key string) error {
	log := logger.FromContext(ctx)

	err := os.Remove(filepath.Join(s.dir, filepath.Base(key)))
	if err != nil && !os.IsNotExist(err) {
		log.Err(err).
			Str("func", "localMediaFileStore.DeleteBlob").
			Str("blob_key", key).
			Msg("failed to delete media blob")
		return fmt.Errorf("delete media blob: %w", err)
	}

	return nil
}
