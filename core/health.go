package core

import "net/http"

// healthBody is pinned byte-for-byte, including the space after the
// colon. Clients compare the raw body, so it is not re-encoded.
const healthBody = `{"status": "healthy"}`

func serveHealth(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(healthBody))
}
