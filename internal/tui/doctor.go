package tui

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/internal/config"
	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/internal/crypto"
	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/models"
)

// Domain selects which master secret an envelope belongs to.
type Domain string

const (
	DomainMessages    Domain = "messages"
	DomainPosts       Domain = "posts"
	DomainMarketplace Domain = "marketplace"
)

// Report is the outcome of one examination: the verified envelope metadata
// plus the recovered plaintext. Plaintext stays on the operator's machine.
type Report struct {
	Domain    Domain
	Context   models.KeyContext
	Algorithm string
	Plaintext string

	// BlobSize is set for media examinations only: the decrypted size in
	// bytes. Plaintext then holds a description, not the raw bytes.
	BlobSize int
}

// Doctor opens stored envelopes and media blobs locally for support
// investigations. It is constructed from the operator-console secrets and
// never talks to the network.
type Doctor struct {
	codecs map[Domain]crypto.FieldCodec
	vault  crypto.BlobVault
}

// NewDoctor builds codecs for every secret present in cfg. Missing secrets
// are tolerated at construction; examinations against them fail with
// [crypto.ErrMissingMasterSecret].
func NewDoctor(cfg config.ClientApp) (*Doctor, error) {
	keys := crypto.NewKeyChain()
	codecs := make(map[Domain]crypto.FieldCodec)

	for domain, secret := range map[Domain]string{
		DomainMessages:    cfg.MessagesSecret,
		DomainPosts:       cfg.PostsSecret,
		DomainMarketplace: cfg.MarketplaceSecret,
	} {
		if secret == "" {
			continue
		}
		codec, err := crypto.NewFieldCodec(secret, keys)
		if err != nil {
			return nil, fmt.Errorf("codec for %s: %w", domain, err)
		}
		codecs[domain] = codec
	}

	var vault crypto.BlobVault
	if cfg.MessagesSecret != "" {
		v, err := crypto.NewBlobVault(cfg.MessagesSecret, keys)
		if err != nil {
			return nil, fmt.Errorf("media vault: %w", err)
		}
		vault = v
	}

	return &Doctor{codecs: codecs, vault: vault}, nil
}

// ExamineEnvelope parses envelopeJSON, verifies and decrypts it with the key
// derived for (partyA, partyB) under the domain's secret.
func (d *Doctor) ExamineEnvelope(domain Domain, partyA, partyB int64, envelopeJSON string) (Report, error) {
	codec, ok := d.codecs[domain]
	if !ok {
		return Report{}, fmt.Errorf("no secret configured for %s: %w", domain, crypto.ErrMissingMasterSecret)
	}

	var envelope models.Envelope
	if err := json.Unmarshal([]byte(strings.TrimSpace(envelopeJSON)), &envelope); err != nil {
		return Report{}, fmt.Errorf("%w: %v", crypto.ErrMalformedEnvelope, err)
	}

	ctx := models.NewKeyContext(partyA, partyB)
	plaintext, err := codec.DecryptString(envelope, ctx)
	if err != nil {
		return Report{}, err
	}

	return Report{
		Domain:    domain,
		Context:   ctx,
		Algorithm: string(envelope.Algorithm),
		Plaintext: plaintext,
	}, nil
}

// ExamineMediaFile reads an encrypted blob from disk and decrypts it with
// the media key derived for (partyA, partyB). The report describes the
// decrypted content instead of dumping raw bytes into the terminal.
func (d *Doctor) ExamineMediaFile(path string, partyA, partyB int64) (Report, error) {
	if d.vault == nil {
		return Report{}, fmt.Errorf("no messages secret configured: %w", crypto.ErrMissingMasterSecret)
	}

	blob, err := os.ReadFile(path)
	if err != nil {
		return Report{}, fmt.Errorf("read blob file: %w", err)
	}

	ctx := models.NewKeyContext(partyA, partyB)
	data, err := d.vault.DecryptBlob(blob, ctx)
	if err != nil {
		return Report{}, err
	}

	return Report{
		Domain:    DomainMessages,
		Context:   ctx,
		Algorithm: string(models.AlgorithmAES256GCM),
		Plaintext: describeBlob(data),
		BlobSize:  len(data),
	}, nil
}

// describeBlob summarises decrypted media: detected content type plus a text
// preview when the content is valid UTF-8.
func describeBlob(data []byte) string {
	detected := http.DetectContentType(data)

	if strings.HasPrefix(detected, "text/") && utf8.Valid(data) {
		preview := string(data)
		if len(preview) > 512 {
			preview = preview[:512] + "..."
		}
		return fmt.Sprintf("%s\n\n%s", detected, preview)
	}

	return fmt.Sprintf("%s (%d bytes, binary)", detected, len(data))
}
