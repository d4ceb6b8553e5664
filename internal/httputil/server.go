package httputil

import (
	"net/http"
	"time"
)

const (
	DefaultTimeout    = 30 * time.Second
	ReadHeaderTimeout = 10 * time.Second
)

// NewServer returns an HTTP server with standard timeout configuration.
// Zero timeouts fall back to DefaultTimeout.
func NewServer(addr string, handler http.Handler, read, write time.Duration) *http.Server {
	if read <= 0 {
		read = DefaultTimeout
	}
	if write <= 0 {
		write = DefaultTimeout
	}
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: ReadHeaderTimeout,
		ReadTimeout:       read,
		WriteTimeout:      write,
	}
}
