package store

import (
	"context"
	"fmt"

	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/internal/config"
	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/internal/logger"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

// Storages groups all storage backends into a single value that can be
// passed to the service layer.
type Storages struct {
	// Messages is the repository for direct message rows.
	Messages MessageRepository

	// PostShares is the repository for group-shared post rows.
	PostShares PostShareRepository

	// Transactions is the repository for marketplace transaction rows.
	Transactions TransactionRepository

	// Media is the repository for media metadata rows.
	Media MediaRepository

	// MediaFiles holds the encrypted media blobs referenced by Media rows.
	MediaFiles MediaFileStore
}

// NewStorages initialises the storage layer using the supplied configuration
// and logger. It performs the following steps:
//  1. Opens a PostgreSQL connection to cfg.DB.DSN, retrying the initial
//     ping with exponential backoff.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Selects the media blob backend: S3 when cfg.Media.S3Bucket is set,
//     the local directory otherwise.
//
// Returns an error if the database connection cannot be established, if
// migration fails, or if the selected blob backend cannot be initialised.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	files, err := newMediaFileStore(cfg.Media, log)
	if err != nil {
		return nil, err
	}

	return &Storages{
		Messages:     NewMessageRepository(db, log),
		PostShares:   NewPostShareRepository(db, log),
		Transactions: NewTransactionRepository(db, log),
		Media:        NewMediaRepository(db, log),
		MediaFiles:   files,
	}, nil
}

// newMediaFileStore picks the blob backend from configuration. Validation
// has already guaranteed that at least one backend is configured and that
// an S3 bucket always comes with a region.
func newMediaFileStore(cfg config.Media, log *logger.Logger) (MediaFileStore, error) {
	if cfg.S3Bucket != "" {
		sess, err := session.NewSession(&aws.Config{Region: aws.String(cfg.S3Region)})
		if err != nil {
			log.Err(err).
				Str("func", "newMediaFileStore").
				Str("bucket", cfg.S3Bucket).
				Msg("failed to create aws session")
			return nil, fmt.Errorf("create aws session: %w", err)
		}

		log.Info().Str("bucket", cfg.S3Bucket).Str("region", cfg.S3Region).Msg("using s3 media file store")
		return NewS3MediaFileStore(s3.New(sess), cfg.S3Bucket, log), nil
	}

	log.Info().Str("dir", cfg.Dir).Msg("using local media file store")
	return NewLocalMediaFileStore(cfg.Dir, log)
}
