package service

import (
	"context"
	"fmt"

	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/internal/crypto"
	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/internal/logger"
	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/internal/store"
	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/models"
)

type postShareService struct {
	postShareRepository store.PostShareRepository
	codec               crypto.FieldCodec

	logger *logger.Logger
}

func NewPostShareService(postShareRepository store.PostShareRepository, codec crypto.FieldCodec, logger *logger.Logger) PostShareService {
	return &postShareService{
		postShareRepository: postShareRepository,
		codec:               codec,
		logger:              logger,
	}
}

// Share implements [PostShareService]. The summary is marshaled to JSON and
// encrypted as one value for the ordered (sender, group) pair.
func (s *postShareService) Share(ctx context.Context, req models.SharePostRequest) (models.PostShareView, error) {
	if req.SenderID <= 0 || req.GroupID <= 0 || req.PostID <= 0 {
		return models.PostShareView{}, ErrValidationInvalidParty
	}
	if req.Summary.Title == "" {
		return models.PostShareView{}, ErrValidationNoSummary
	}

	keyCtx := models.NewKeyContext(req.SenderID, req.GroupID)
	envelope, err := s.codec.EncryptValue(req.Summary, keyCtx)
	if err != nil {
		return models.PostShareView{}, fmt.Errorf("encrypt post summary: %w", err)
	}

	share := models.PostShare{
		PostID:   req.PostID,
		SenderID: req.SenderID,
		GroupID:  req.GroupID,
		Summary:  envelope,
	}
	if err := s.postShareRepository.SavePostShare(ctx, &share); err != nil {
		return models.PostShareView{}, err
	}

	summary := req.Summary
	return models.PostShareView{
		ID:        share.ID,
		PostID:    share.PostID,
		SenderID:  share.SenderID,
		GroupID:   share.GroupID,
		Summary:   &summary,
		CreatedAt: share.CreatedAt,
	}, nil
}

// Get implements [PostShareService].
func (s *postShareService) Get(ctx context.Context, id int64) (models.PostShareView, error) {
	share, err := s.postShareRepository.GetPostShareByID(ctx, id)
	if err != nil {
		return models.PostShareView{}, err
	}

	view, err := s.decryptToView(share)
	if err != nil {
		return view, fmt.Errorf("decrypt post share %d: %w", id, err)
	}

	return view, nil
}

// Feed implements [PostShareService]. Each share is decrypted independently;
// a broken envelope becomes a placeholder entry without hiding the rest of
// the feed.
func (s *postShareService) Feed(ctx context.Context, groupID int64, limit uint64) (models.FeedResponse, error) {
	if groupID <= 0 {
		return models.FeedResponse{}, ErrValidationInvalidParty
	}

	shares, err := s.postShareRepository.GetGroupFeed(ctx, groupID, limit)
	if err != nil {
		return models.FeedResponse{}, err
	}

	views := make([]models.PostShareView, 0, len(shares))
	for _, share := range shares {
		view, err := s.decryptToView(share)
		if err != nil {
			logger.FromContext(ctx).Warn().
				Str("func", "postShareService.Feed").
				Int64("share_id", share.ID).
				Int64("sender_id", share.SenderID).
				Int64("group_id", share.GroupID).
				Err(err).
				Msg("post summary could not be decrypted, returning placeholder")
		}
		views = append(views, view)
	}

	return models.FeedResponse{
		Shares: views,
		Length: len(views),
	}, nil
}

func (s *postShareService) decryptToView(share models.PostShare) (models.PostShareView, error) {
	view := models.PostShareView{
		ID:        share.ID,
		PostID:    share.PostID,
		SenderID:  share.SenderID,
		GroupID:   share.GroupID,
		CreatedAt: share.CreatedAt,
	}

	var summary models.PostSummary
	if err := s.codec.DecryptValue(share.Summary, share.Context(), &summary); err != nil {
		view.Placeholder = true
		return view, err
	}

	view.Summary = &summary
	return view, nil
}
