package countriesapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestFetchAll(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/countries/info" {
			http.NotFound(w, r)
			return
		}
		if got := r.URL.Query().Get("returns"); got != countryFields {
			t.Errorf("returns query = %q, expected %q", got, countryFields)
		}

		response := apiResponse{
			Error: false,
			Msg:   "countries and their details",
			Data: []CountryInfo{
				{Name: "Belgium", ISO2: "BE", ISO3: "BEL", Currency: "EUR", Capital: "Brussels", DialCode: "+32"},
				{Name: "France", ISO2: "FR", ISO3: "FRA", Currency: "EUR", Capital: "Paris", DialCode: "+33"},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)

	infos, err := client.FetchAll(context.Background())
	if err != nil {
		t.Fatalf("FetchAll failed: %v", err)
	}
	if len(infos) != 2 {
		t.Fatalf("expected 2 countries, got %d", len(infos))
	}
	if infos[0].Name != "Belgium" || infos[0].ISO2 != "BE" {
		t.Errorf("unexpected first country: %+v", infos[0])
	}
	if infos[1].Capital != "Paris" {
		t.Errorf("unexpected second country: %+v", infos[1])
	}
}

func TestFetchAllTrailingSlashBaseURL(t *testing.T) {
	var requestedPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestedPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(apiResponse{Data: []CountryInfo{}})
	}))
	defer server.Close()

	client := NewClient(server.URL+"/", 5*time.Second)

	if _, err := client.FetchAll(context.Background()); err != nil {
		t.Fatalf("FetchAll failed: %v", err)
	}
	if requestedPath != "/countries/info" {
		t.Errorf("requested path = %q, expected /countries/info", requestedPath)
	}
}

func TestFetchAllRemoteError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(apiResponse{Error: true, Msg: "something went wrong"})
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)

	if _, err := client.FetchAll(context.Background()); err == nil {
		t.Fatal("expected error for error envelope, got nil")
	}
}

func TestFetchAllHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)

	if _, err := client.FetchAll(context.Background()); err == nil {
		t.Fatal("expected error for 500 response, got nil")
	}
}

func TestFetchAllMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("{not json"))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)

	if _, err := client.FetchAll(context.Background()); err == nil {
		t.Fatal("expected error for malformed body, got nil")
	}
}

func TestFetchAllContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(apiResponse{Data: []CountryInfo{}})
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if _, err := client.FetchAll(ctx); err == nil {
		t.Fatal("expected error for cancelled context, got nil")
	}
}
