// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexei Velichko

package http

import (
	"net/http"
	"time"

	"github.com/avelichko/notekeeper/internal/logger"
)

// withLogging emits one access-log line per request after the handler chain
// has finished, using the trace-scoped logger installed by withTraceID.
// The response passes through a responseWriter so the final status and body
// size are observable here.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lw := &responseWriter{ResponseWriter: w}
		started := time.Now()

		next.ServeHTTP(lw, r)

		logger.FromRequest(r).Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", lw.status).
			Int("bytes", lw.size).
			Dur("took", time.Since(started)).
			Msg("request served")
	})
}
