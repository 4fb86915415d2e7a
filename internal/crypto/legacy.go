package crypto

import (
	"fmt"
	"strings"

	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/models"
)

// legacyDelimiter joins ciphertext and auth tag in envelopes written before
// the tag became its own column.
const legacyDelimiter = "."

// normalizeEnvelope upgrades a legacy envelope to the modern two-field form.
//
// Envelopes that already carry an AuthTag pass through unchanged. For the
// rest, the stored ciphertext is split on the "." delimiter: exactly two
// parts mean "<ciphertext>.<tag>" and are mapped onto the separate fields;
// anything else is rejected with [ErrMalformedEnvelope] rather than guessed
// at.
//
// The split is known to be fragile if either encoded field could itself
// contain a dot. That behavior is kept as is: old records were written this
// way, and a stricter rule would refuse to read them.
func normalizeEnvelope(envelope models.Envelope) (models.Envelope, error) {
	if !envelope.IsLegacy() {
		return envelope, nil
	}

	parts := strings.Split(envelope.Ciphertext, legacyDelimiter)
	if len(parts) != 2 {
		return models.Envelope{}, fmt.Errorf(
			"%w: legacy ciphertext split into %d parts, want 2", ErrMalformedEnvelope, len(parts),
		)
	}

	envelope.Ciphertext = parts[0]
	envelope.AuthTag = parts[1]

	return envelope, nil
}
