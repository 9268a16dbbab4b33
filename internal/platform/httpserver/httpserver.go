package httpserver

import (
	"net/http"
	"time"
)

// New builds the ops HTTP server. The header timeout bounds slow
// clients so a stalled probe cannot hold a connection open forever.
func New(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
}
