// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 FCS Project Authors

package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/internal/logger"
	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/internal/utils"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
)

// s3MediaFileStore is the S3-backed implementation of [MediaFileStore].
// Blobs are stored as objects whose keys are generated UUIDs. The store
// only ever sees ciphertext, so bucket-side encryption settings are
// additive rather than required.
type s3MediaFileStore struct {
	api    s3iface.S3API
	bucket string
	keys   *utils.UUIDGenerator
	logger *logger.Logger
}

// NewS3MediaFileStore constructs a [MediaFileStore] writing to the given
// bucket through the provided S3 API client.
//
// Accepting [s3iface.S3API] instead of a concrete client keeps the store
// testable with an in-memory fake.
func NewS3MediaFileStore(api s3iface.S3API, bucket string, logger *logger.Logger) MediaFileStore {
	return &s3MediaFileStore{
		api:    api,
		bucket: bucket,
		keys:   utils.NewUUIDGenerator(),
		logger: logger,
	}
}

// SaveBlob uploads the encrypted blob under a fresh UUID key and returns
// that key.
func (s *s3MediaFileStore) SaveBlob(ctx context.Context, blob []byte) (string, error) {
	log := logger.FromContext(ctx)

	key := s.keys.Generate()

	_, err := s.api.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(blob),
	})
	if err != nil {
		log.Err(err).
			Str("func", "s3MediaFileStore.SaveBlob").
			Str("blob_key", key).
			Msg("failed to upload media blob")
		return "", fmt.Errorf("upload media blob: %w", err)
	}

	return key, nil
}

// LoadBlob downloads the encrypted blob stored under key.
//
// Returns [ErrMediaNotFound] when no object exists for the key.
func (s *s3MediaFileStore) LoadBlob(ctx context.Context, key string) ([]byte, error) {
	log := logger.FromContext(ctx)

	out, err := s.api.GetObjectWithContext(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if isS3NotFound(err) {
			log.Warn().
				Str("func", "s3MediaFileStore.LoadBlob").
				Str("blob_key", key).
				Msg("media blob not found")
			return nil, ErrMediaNotFound
		}

		log.Err(err).
			Str("func", "s3MediaFileStore.LoadBlob").
			Str("blob_key", key).
			Msg("failed to download media blob")
		return nil, fmt.Errorf("download media blob: %w", err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		log.Err(err).
			Str("func", "s3MediaFileStore.LoadBlob").
			Str("blob_key", key).
			Msg("failed to read media blob body")
		return nil, fmt.Errorf("read media blob body: %w", err)
	}

	return data, nil
}

// DeleteBlob removes the object stored under key. S3 reports success for
// missing keys, which matches the idempotent delete contract.
func (s *s3MediaFileStore) DeleteBlob(ctx context.Context, key string) error {
	log := logger.FromContext(ctx)

	_, err := s.api.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if isS3NotFound(err) {
			return nil
		}

		log.Err(err).
			Str("func", "s3MediaFileStore.DeleteBlob").
			Str("blob_key", key).
			Msg("failed to delete media blob")
		return fmt.Errorf("delete media blob: %w", err)
	}

	return nil
}

// isS3NotFound reports whether err is an S3 missing-object error.
// GetObject returns NoSuchKey while HeadObject-style calls return the
// undocumented NotFound code, so both are checked.
func isS3NotFound(err error) bool {
	var aerr awserr.Error
	if !errors.As(err, &aerr) {
		return false
	}

	switch aerr.Code() {
	case s3.ErrCodeNoSuchKey, s3.ErrCodeNoSuchBucket, "NotFound":
		return true
	}

	return false
}
