package weather

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"agroadvisor/internal/advisor"
)

func TestOneCall_FetchesAndCaches(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		if r.URL.Query().Get("appid") != "test-key" {
			t.Errorf("appid missing from query")
		}
		if r.URL.Query().Get("units") != "metric" {
			t.Errorf("units = %q, want metric default", r.URL.Query().Get("units"))
		}
		w.Write([]byte(`{"current":{"temp":31.2}}`))
	}))
	defer srv.Close()

	c := New(Config{APIKey: "test-key", BaseURL: srv.URL, CacheTTL: time.Minute}, nil)
	q := Query{Lat: 16.3, Lon: 80.4}

	first, err := c.OneCall(context.Background(), q)
	if err != nil {
		t.Fatalf("OneCall error: %v", err)
	}
	second, err := c.OneCall(context.Background(), q)
	if err != nil {
		t.Fatalf("OneCall (cached) error: %v", err)
	}
	if string(first) != string(second) {
		t.Fatalf("cached payload differs")
	}
	if hits != 1 {
		t.Fatalf("provider hit %d times, want 1", hits)
	}
}

func TestOneCall_NonSuccessIsTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := New(Config{APIKey: "bad", BaseURL: srv.URL}, nil)
	_, err := c.OneCall(context.Background(), Query{Lat: 1, Lon: 2})
	var transport *advisor.TransportError
	if !errors.As(err, &transport) {
		t.Fatalf("error = %v, want TransportError", err)
	}
	if transport.Provider != "openweather" {
		t.Fatalf("provider = %q", transport.Provider)
	}
}

func TestOneCall_MalformedPayloadIsTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("<html>gateway error</html>"))
	}))
	defer srv.Close()

	c := New(Config{APIKey: "k", BaseURL: srv.URL}, nil)
	_, err := c.OneCall(context.Background(), Query{Lat: 1, Lon: 2})
	var transport *advisor.TransportError
	if !errors.As(err, &transport) {
		t.Fatalf("error = %v, want TransportError", err)
	}
}
