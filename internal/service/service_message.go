package service

import (
	"context"
	"fmt"

	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/internal/crypto"
	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/internal/logger"
	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/internal/store"
	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/models"
)

// messagePlaceholder is what the caller shows instead of content that could
// not be decrypted. It lives here and not in the crypto layer: crypto
// returns typed errors, the service decides the user-visible text.
const messagePlaceholder = "[Encrypted Message]"

type messageService struct {
	messageRepository store.MessageRepository
	codec             crypto.FieldCodec

	logger *logger.Logger
}

func NewMessageService(messageRepository store.MessageRepository, codec crypto.FieldCodec, logger *logger.Logger) MessageService {
	return &messageService{
		messageRepository: messageRepository,
		codec:             codec,
		logger:            logger,
	}
}

// Send implements [MessageService].
func (s *messageService) Send(ctx context.Context, req models.SendMessageRequest) (models.MessageView, error) {
	if req.SenderID <= 0 || req.ReceiverID <= 0 {
		return models.MessageView{}, ErrValidationInvalidParty
	}
	if req.Content == "" {
		return models.MessageView{}, ErrValidationNoContent
	}

	keyCtx := models.NewKeyContext(req.SenderID, req.ReceiverID)
	envelope, err := s.codec.EncryptString(req.Content, keyCtx)
	if err != nil {
		return models.MessageView{}, fmt.Errorf("encrypt message content: %w", err)
	}

	msg := models.Message{
		SenderID:   req.SenderID,
		ReceiverID: req.ReceiverID,
		Content:    envelope,
		MediaID:    req.MediaID,
	}
	if err := s.messageRepository.SaveMessage(ctx, &msg); err != nil {
		return models.MessageView{}, err
	}

	return models.MessageView{
		ID:         msg.ID,
		SenderID:   msg.SenderID,
		ReceiverID: msg.ReceiverID,
		Content:    req.Content,
		MediaID:    msg.MediaID,
		CreatedAt:  msg.CreatedAt,
		UpdatedAt:  msg.UpdatedAt,
	}, nil
}

// Edit implements [MessageService]. The stored envelope is replaced whole:
// the new content gets a fresh IV and HMAC, nothing of the old envelope is
// reused.
func (s *messageService) Edit(ctx context.Context, id int64, req models.EditMessageRequest) (models.MessageView, error) {
	if req.SenderID <= 0 || req.ReceiverID <= 0 {
		return models.MessageView{}, ErrValidationInvalidParty
	}
	if req.Content == "" {
		return models.MessageView{}, ErrValidationNoContent
	}

	keyCtx := models.NewKeyContext(req.SenderID, req.ReceiverID)
	envelope, err := s.codec.EncryptString(req.Content, keyCtx)
	if err != nil {
		return models.MessageView{}, fmt.Errorf("encrypt edited content: %w", err)
	}

	msg := models.Message{
		ID:         id,
		SenderID:   req.SenderID,
		ReceiverID: req.ReceiverID,
		Content:    envelope,
	}
	if err := s.messageRepository.UpdateMessageContent(ctx, msg); err != nil {
		return models.MessageView{}, err
	}

	updated, err := s.messageRepository.GetMessageByID(ctx, id)
	if err != nil {
		return models.MessageView{}, err
	}

	return models.MessageView{
		ID:         updated.ID,
		SenderID:   updated.SenderID,
		ReceiverID: updated.ReceiverID,
		Content:    req.Content,
		MediaID:    updated.MediaID,
		CreatedAt:  updated.CreatedAt,
		UpdatedAt:  updated.UpdatedAt,
	}, nil
}

// Get implements [MessageService]. On a decrypt failure the returned view is
// still populated with the placeholder so the caller can render it while the
// error says what went wrong.
func (s *messageService) Get(ctx context.Context, id int64) (models.MessageView, error) {
	msg, err := s.messageRepository.GetMessageByID(ctx, id)
	if err != nil {
		return models.MessageView{}, err
	}

	view, err := s.decryptToView(ctx, msg)
	if err != nil {
		return view, fmt.Errorf("decrypt message %d: %w", id, err)
	}

	return view, nil
}

// Conversation implements [MessageService].
func (s *messageService) Conversation(ctx context.Context, firstUserID, secondUserID int64, limit uint64) (models.ConversationResponse, error) {
	if firstUserID <= 0 || secondUserID <= 0 {
		return models.ConversationResponse{}, ErrValidationInvalidParty
	}

	messages, err := s.messageRepository.GetConversation(ctx, firstUserID, secondUserID, limit)
	if err != nil {
		return models.ConversationResponse{}, err
	}

	return models.ConversationResponse{
		Messages: s.decryptBatch(ctx, messages),
		Length:   len(messages),
	}, nil
}

// LatestPerConversation implements [MessageService].
func (s *messageService) LatestPerConversation(ctx context.Context, userID int64) (models.ConversationResponse, error) {
	if userID <= 0 {
		return models.ConversationResponse{}, ErrValidationInvalidParty
	}

	messages, err := s.messageRepository.GetLatestPerConversation(ctx, userID)
	if err != nil {
		return models.ConversationResponse{}, err
	}

	return models.ConversationResponse{
		Messages: s.decryptBatch(ctx, messages),
		Length:   len(messages),
	}, nil
}

// Delete implements [MessageService].
func (s *messageService) Delete(ctx context.Context, id, senderID int64) error {
	if senderID <= 0 {
		return ErrValidationInvalidParty
	}

	return s.messageRepository.DeleteMessage(ctx, id, senderID)
}

// decryptBatch decrypts a page of messages with per-record isolation: a
// record whose envelope fails integrity or authentication is logged and
// replaced with a placeholder entry, and the rest of the page is unaffected.
// Failures are deterministic, so there is no retry.
func (s *messageService) decryptBatch(ctx context.Context, messages []models.Message) []models.MessageView {
	views := make([]models.MessageView, 0, len(messages))
	for _, msg := range messages {
		view, err := s.decryptToView(ctx, msg)
		if err != nil {
			logger.FromContext(ctx).Warn().
				Str("func", "messageService.decryptBatch").
				Int64("message_id", msg.ID).
				Int64("sender_id", msg.SenderID).
				Int64("receiver_id", msg.ReceiverID).
				Err(err).
				Msg("message could not be decrypted, returning placeholder")
		}
		views = append(views, view)
	}

	return views
}

func (s *messageService) decryptToView(ctx context.Context, msg models.Message) (models.MessageView, error) {
	view := models.MessageView{
		ID:         msg.ID,
		SenderID:   msg.SenderID,
		ReceiverID: msg.ReceiverID,
		MediaID:    msg.MediaID,
		CreatedAt:  msg.CreatedAt,
		UpdatedAt:  msg.UpdatedAt,
	}

	plaintext, err := s.codec.DecryptString(msg.Content, msg.Context())
	if err != nil {
		view.Content = messagePlaceholder
		view.Placeholder = true
		return view, err
	}

	view.Content = plaintext
	return view, nil
}
