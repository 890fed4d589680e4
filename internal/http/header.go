package http

import (
	"net/http"
	"strings"
)

const (
	headerRequestID    = "x-request-id"
	headerContentType  = "content-type"
	headerCacheControl = "cache-control"
)

func requestID(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(headerRequestID))
}

// setRequestID stores the ID on the request for downstream handlers and echoes it back to the client.
func setRequestID(w http.ResponseWriter, r *http.Request, requestID string) {
	r.Header.Set(headerRequestID, requestID)
	w.Header().Set(headerRequestID, requestID)
}
