package crypto

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// signEnvelope computes the secondary integrity tag of an envelope: a
// hex-encoded HMAC-SHA256 over the textual ciphertext and auth tag, keyed by
// the raw master secret rather than a derived key. Any holder of the master
// secret can therefore check an envelope without knowing its context pair,
// and the check covers the auth tag itself.
func signEnvelope(masterSecret, ciphertextB64, authTagB64 string) string {
	mac := hmac.New(sha256.New, []byte(masterSecret))
	mac.Write([]byte(ciphertextB64))
	mac.Write([]byte(authTagB64))
	return hex.EncodeToString(mac.Sum(nil))
}

// verifyEnvelope recomputes the integrity tag and compares it to the claimed
// one in constant time. The claimed value is hex-decoded first so the
// comparison runs over raw digests, not their encodings.
func verifyEnvelope(masterSecret, ciphertextB64, authTagB64, claimedHMAC string) bool {
	claimed, err := hex.DecodeString(claimedHMAC)
	if err != nil {
		return false
	}

	mac := hmac.New(sha256.New, []byte(masterSecret))
	mac.Write([]byte(ciphertextB64))
	mac.Write([]byte(authTagB64))

	return hmac.Equal(claimed, mac.Sum(nil))
}
