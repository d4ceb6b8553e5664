package httputil

import (
	"net/http"
	"testing"
	"time"
)

func TestNewServer(t *testing.T) {
	h := http.NotFoundHandler()

	s := NewServer(":0", h, 0, 0)
	if s.ReadTimeout != DefaultTimeout || s.WriteTimeout != DefaultTimeout {
		t.Errorf("zero timeouts should default, got read=%v write=%v", s.ReadTimeout, s.WriteTimeout)
	}
	if s.ReadHeaderTimeout != ReadHeaderTimeout {
		t.Errorf("ReadHeaderTimeout = %v", s.ReadHeaderTimeout)
	}

	s = NewServer(":9", h, 5*time.Second, 7*time.Second)
	if s.Addr != ":9" || s.ReadTimeout != 5*time.Second || s.WriteTimeout != 7*time.Second {
		t.Errorf("unexpected server: addr=%q read=%v write=%v", s.Addr, s.ReadTimeout, s.WriteTimeout)
	}
}
