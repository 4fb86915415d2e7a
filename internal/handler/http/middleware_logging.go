// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 FCS Project Authors

package http

import (
	"net/http"
	"time"

	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/internal/logger"
)

// withLogging emits one summary line per request: method, URI, final
// status, bytes written and wall time. It relies on withTraceID running
// earlier in the chain so the line carries the request's trace id.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		wrapped := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(wrapped, r)

		logger.FromRequest(r).Info().
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Int("status", wrapped.status).
			Int("size", wrapped.size).
			Dur("duration", time.Since(started)).
			Send()
	})
}
