package service

import (
	"fmt"

	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/internal/config"
	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/internal/crypto"
	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/internal/logger"
	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/internal/store"
)

type Services struct {
	MessageService     MessageService
	PostShareService   PostShareService
	TransactionService TransactionService
	MediaService       MediaService
}

// NewServices builds the full service layer. Each content domain gets a
// codec bound to its own master secret; the media vault shares the messages
// secret because attachments belong to conversations. An empty secret fails
// here with [crypto.ErrMissingMasterSecret] and aborts startup.
func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) (*Services, error) {
	logger.Info().Msg("creating new services...")

	keys := crypto.NewKeyChain()

	messagesCodec, err := crypto.NewFieldCodec(cfg.MessagesSecret, keys)
	if err != nil {
		return nil, fmt.Errorf("messages codec: %w", err)
	}
	postsCodec, err := crypto.NewFieldCodec(cfg.PostsSecret, keys)
	if err != nil {
		return nil, fmt.Errorf("posts codec: %w", err)
	}
	marketplaceCodec, err := crypto.NewFieldCodec(cfg.MarketplaceSecret, keys)
	if err != nil {
		return nil, fmt.Errorf("marketplace codec: %w", err)
	}
	mediaVault, err := crypto.NewBlobVault(cfg.MessagesSecret, keys)
	if err != nil {
		return nil, fmt.Errorf("media vault: %w", err)
	}

	return &Services{
		MessageService:     NewMessageService(storages.Messages, messagesCodec, logger),
		PostShareService:   NewPostShareService(storages.PostShares, postsCodec, logger),
		TransactionService: NewTransactionService(storages.Transactions, marketplaceCodec, logger),
		MediaService:       NewMediaService(storages.Media, storages.MediaFiles, mediaVault, logger),
	}, nil
}
