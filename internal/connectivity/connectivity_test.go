package connectivity

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNewChecker(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		address string
		wantErr bool
	}{
		{"https defaults to 443", "https://countriesnow.space/api/v0.1/", "countriesnow.space:443", false},
		{"http defaults to 80", "http://example.org/api/", "example.org:80", false},
		{"explicit port wins", "http://localhost:8190", "localhost:8190", false},
		{"no host", "/just/a/path", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checker, err := NewChecker(tt.baseURL, time.Second)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewChecker failed: %v", err)
			}
			if checker.Address() != tt.address {
				t.Errorf("Address() = %q, expected %q", checker.Address(), tt.address)
			}
		})
	}
}

func TestCheck(t *testing.T) {
	t.Run("reachable endpoint", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		defer server.Close()

		checker, err := NewChecker(server.URL, time.Second)
		if err != nil {
			t.Fatalf("NewChecker failed: %v", err)
		}

		if err := checker.Check(context.Background()); err != nil {
			t.Errorf("Check failed against live server: %v", err)
		}
	})

	t.Run("unreachable endpoint", func(t *testing.T) {
		// A closed server refuses connections immediately.
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		checker, err := NewChecker(server.URL, 500*time.Millisecond)
		if err != nil {
			t.Fatalf("NewChecker failed: %v", err)
		}

		if err := checker.Check(context.Background()); err == nil {
			t.Error("expected error for closed server, got nil")
		}
	})
}
