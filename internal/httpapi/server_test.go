package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/lgrossi/banter/internal/chat"
	"github.com/lgrossi/banter/internal/config"
	"github.com/lgrossi/banter/internal/hub"
	"github.com/lgrossi/banter/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger := zap.NewNop()
	reg := prometheus.NewRegistry()
	svc := chat.NewService(chat.NewRegistry(), chat.NewStore(), metrics.New(reg), logger)
	h := hub.New(svc, logger, 16)
	srv := httptest.NewServer(New(config.Default(), h, reg, logger).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func TestLoginSuccess(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/login", "application/json", strings.NewReader(`{"username":"alice"}`))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
	buf := make([]byte, 64)
	n, _ := resp.Body.Read(buf)
	if got := strings.TrimSpace(string(buf[:n])); got != `{"success":true}` {
		t.Errorf("body = %q, want {\"success\":true}", got)
	}
}

func TestLoginRejections(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name string
		body string
	}{
		{"empty username", `{"username":""}`},
		{"missing username", `{}`},
		{"malformed json", `{oops`},
		{"non-string username", `{"username":42}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Post(srv.URL+"/login", "application/json", strings.NewReader(tt.body))
			if err != nil {
				t.Fatal(err)
			}
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", resp.StatusCode)
			}
			buf := make([]byte, 8)
			if n, _ := resp.Body.Read(buf); n != 0 {
				t.Errorf("expected empty body, got %q", buf[:n])
			}
		})
	}
}

func TestLoginMethodNotAllowed(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/login")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", resp.StatusCode)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/metrics")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}
