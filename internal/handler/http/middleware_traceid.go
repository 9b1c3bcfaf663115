package http

import (
	"net/http"
)

const traceIDHeader = "X-Trace-ID"

// withTraceID tags the request with a trace id taken from X-Trace-ID or
// freshly generated. A child logger carrying the id is stored in the request
// context and the id is echoed in the response header.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = h.traceIDs.Generate()
		}

		ctx := h.logger.WithTraceID(traceID).ToContext(r.Context())

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
