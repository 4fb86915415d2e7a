// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 FCS Project Authors

package http

import (
	"context"
	"net/http"

	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/internal/utils"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const traceIDHeader = "X-Trace-ID"

// withTraceID attaches a trace id to the request: reused from the
// incoming X-Trace-ID header when a caller already has one, generated
// otherwise. The id rides on the request context, on a child logger
// bound to that context, and on the response header so callers can
// correlate.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}

		requestLogger := h.logger.GetChildLogger()
		requestLogger.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})

		ctx := context.WithValue(r.Context(), utils.TraceIDCtxKey, traceID)
		w.Header().Set(traceIDHeader, traceID)

		next.ServeHTTP(w, r.WithContext(requestLogger.WithContext(ctx)))
	})
}
