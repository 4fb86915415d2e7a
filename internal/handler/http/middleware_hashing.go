package http

import (
	"bytes"
	"encoding/hex"
	"io"
	"net/http"

	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/internal/utils"
)

// hashHeader carries the HMAC-SHA256 of the raw request body, hex-encoded.
const hashHeader = "HashSHA256"

// withBodyIntegrity rejects mutating requests whose body does not match the
// HashSHA256 header. The check is off when no hash key is configured or the
// caller sent no header.
func (h *Handler) withBodyIntegrity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.hashKey == "" {
			next.ServeHTTP(w, r)
			return
		}

		hashFromRequest := r.Header.Get(hashHeader)
		if hashFromRequest == "" {
			next.ServeHTTP(w, r)
			return
		}

		h.logger.Debug().Str("func", "*Handler.withBodyIntegrity").Msg("checking hash begins")

		body, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Err(err).Str("func", "*Handler.withBodyIntegrity").Msg("failed to read request body")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		// restore request body
		r.Body = io.NopCloser(bytes.NewReader(body))

		hashedBody := hex.EncodeToString(utils.Hash(body))
		if !utils.HashEqual(hashedBody, hashFromRequest) {
			h.logger.Error().Str("func", "*Handler.withBodyIntegrity").
				Str("hash from request", hashFromRequest).
				Str("hashed body", hashedBody).
				Msg("hashes are not equal")
			http.Error(w, "Integrity check failed", http.StatusBadRequest)
			return
		}

		h.logger.Debug().Str("func", "*Handler.withBodyIntegrity").
			Str("hash from request", hashFromRequest).
			Str("hashed body", hashedBody).
			Msg("hashes are equal")

		next.ServeHTTP(w, r)
	})
}
