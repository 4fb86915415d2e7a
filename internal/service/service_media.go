package service

import (
	"context"
	"fmt"

	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/internal/crypto"
	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/internal/logger"
	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/internal/store"
	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/models"
)

type mediaService struct {
	mediaRepository store.MediaRepository
	files           store.MediaFileStore
	vault           crypto.BlobVault

	logger *logger.Logger
}

func NewMediaService(mediaRepository store.MediaRepository, files store.MediaFileStore, vault crypto.BlobVault, logger *logger.Logger) MediaService {
	return &mediaService{
		mediaRepository: mediaRepository,
		files:           files,
		vault:           vault,
		logger:          logger,
	}
}

// Upload implements [MediaService]. The blob is written before the metadata
// row; if the row insert fails the blob is removed again so the file store
// does not accumulate unreferenced files.
func (s *mediaService) Upload(ctx context.Context, senderID, receiverID int64, contentType string, data []byte) (models.MediaUploadResponse, error) {
	if senderID <= 0 || receiverID <= 0 {
		return models.MediaUploadResponse{}, ErrValidationInvalidParty
	}

	keyCtx := models.NewKeyContext(senderID, receiverID)
	blob, err := s.vault.EncryptBlob(data, keyCtx)
	if err != nil {
		return models.MediaUploadResponse{}, fmt.Errorf("encrypt media blob: %w", err)
	}

	key, err := s.files.SaveBlob(ctx, blob)
	if err != nil {
		return models.MediaUploadResponse{}, fmt.Errorf("store media blob: %w", err)
	}

	obj := models.MediaObject{
		SenderID:    senderID,
		ReceiverID:  receiverID,
		BlobKey:     key,
		ContentType: contentType,
		Size:        int64(len(data)),
	}
	if err := s.mediaRepository.SaveMediaObject(ctx, &obj); err != nil {
		if deleteErr := s.files.DeleteBlob(ctx, key); deleteErr != nil {
			logger.FromContext(ctx).Warn().
				Str("func", "mediaService.Upload").
				Str("blob_key", key).
				Err(deleteErr).
				Msg("failed to clean up blob after metadata insert failure")
		}
		return models.MediaUploadResponse{}, err
	}

	return models.MediaUploadResponse{
		ID:      obj.ID,
		BlobKey: obj.BlobKey,
		Size:    obj.Size,
	}, nil
}

// Download implements [MediaService].
func (s *mediaService) Download(ctx context.Context, id int64) (models.MediaObject, []byte, error) {
	obj, err := s.mediaRepository.GetMediaObjectByID(ctx, id)
	if err != nil {
		return models.MediaObject{}, nil, err
	}

	blob, err := s.files.LoadBlob(ctx, obj.BlobKey)
	if err != nil {
		return models.MediaObject{}, nil, err
	}

	data, err := s.vault.DecryptBlob(blob, obj.Context())
	if err != nil {
		return models.MediaObject{}, nil, fmt.Errorf("decrypt media %d: %w", id, err)
	}

	return obj, data, nil
}

// Remove implements [MediaService]. The blob delete runs first and is
// idempotent, so a retry after a half-completed remove converges instead of
// failing on the already-missing file.
func (s *mediaService) Remove(ctx context.Context, id int64) error {
	obj, err := s.mediaRepository.GetMediaObjectByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.files.DeleteBlob(ctx, obj.BlobKey); err != nil {
		return fmt.Errorf("delete media blob: %w", err)
	}

	return s.mediaRepository.DeleteMediaObject(ctx, id)
}
