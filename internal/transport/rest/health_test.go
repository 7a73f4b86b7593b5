package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

type pingStub struct {
	err error
}

func (p *pingStub) Ping(_ context.Context) error { return p.err }

// callHealth invokes one of the health handler methods and decodes the body.
func callHealth(t *testing.T, fn http.HandlerFunc, path string) (int, HealthResponse) {
	t.Helper()
	rec := httptest.NewRecorder()
	fn(rec, httptest.NewRequest(http.MethodGet, path, nil))

	var resp HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode health response: %v", err)
	}
	return rec.Code, resp
}

func TestLive_AlwaysOK(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(&pingStub{err: errors.New("db is gone")}, "test")

	code, resp := callHealth(t, h.Live, "/health/live")
	if code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (liveness must not depend on the database)", code)
	}
	if resp.Status != "ok" {
		t.Errorf("status field = %q, want %q", resp.Status, "ok")
	}
	if resp.Timestamp.IsZero() {
		t.Error("timestamp is zero")
	}
}

func TestReady_TracksDatabase(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		pingErr    error
		wantCode   int
		wantStatus string
	}{
		{"db reachable", nil, http.StatusOK, "ok"},
		{"db unreachable", errors.New("connection refused"), http.StatusServiceUnavailable, "down"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHealthHandler(&pingStub{err: tt.pingErr}, "test")
			code, resp := callHealth(t, h.Ready, "/health/ready")
			if code != tt.wantCode {
				t.Fatalf("status = %d, want %d", code, tt.wantCode)
			}
			if resp.Status != tt.wantStatus {
				t.Errorf("status field = %q, want %q", resp.Status, tt.wantStatus)
			}
		})
	}
}

func TestHealth_ReportsComponents(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(&pingStub{}, "v2.3.4")

	code, resp := callHealth(t, h.Health, "/health")
	if code != http.StatusOK {
		t.Fatalf("status = %d, want 200", code)
	}
	if resp.Version != "v2.3.4" {
		t.Errorf("version = %q, want %q", resp.Version, "v2.3.4")
	}

	db, ok := resp.Components["database"]
	if !ok {
		t.Fatal("database component missing from response")
	}
	if db.Status != "ok" {
		t.Errorf("database status = %q, want %q", db.Status, "ok")
	}
	if db.Latency == "" {
		t.Error("database latency not reported")
	}
}

func TestHealth_DegradedWhenDBDown(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(&pingStub{err: errors.New("connection refused")}, "v2.3.4")

	code, resp := callHealth(t, h.Health, "/health")
	if code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", code)
	}
	if resp.Status != "down" {
		t.Errorf("status field = %q, want %q", resp.Status, "down")
	}
	if db := resp.Components["database"]; db.Status != "down" {
		t.Errorf("database status = %q, want %q", db.Status, "down")
	}
}
