package repository

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestNewWeatherRepository(t *testing.T) {
	repo := NewWeatherRepository("http://api.weatherstack.com", "key")
	if repo == nil {
		t.Fatal("Expected repository to be created")
	}
	if repo.(*weatherRepository).httpClient != http.DefaultClient {
		t.Error("Expected default HTTP client when none is given")
	}
}

func TestFetchCurrent_BuildsProviderRequest(t *testing.T) {
	var seen *http.Request
	client := NewStubClient(http.StatusOK, `{"location":{"name":"São Paulo"}}`, &seen)
	repo := NewWeatherRepository("http://provider.test", "secret", client)

	resp, err := repo.FetchCurrent(context.Background(), "São Paulo & Co")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}
	if seen == nil {
		t.Fatal("Expected an outbound request")
	}
	if seen.Method != http.MethodGet {
		t.Errorf("Expected GET, got %s", seen.Method)
	}
	if seen.URL.Host != "provider.test" || seen.URL.Path != "/current" {
		t.Errorf("Unexpected provider URL %s", seen.URL)
	}
	if got := seen.URL.Query().Get("access_key"); got != "secret" {
		t.Errorf("Expected access_key=secret, got %q", got)
	}
	if got := seen.URL.Query().Get("query"); got != "São Paulo & Co" {
		t.Errorf("Expected city to round-trip through encoding, got %q", got)
	}
	if strings.Contains(seen.URL.RawQuery, " ") || strings.Contains(seen.URL.RawQuery, "& ") {
		t.Errorf("Expected encoded query, got %s", seen.URL.RawQuery)
	}
}

func TestFetchCurrent_ReturnsRawBodyRegardlessOfStatus(t *testing.T) {
	body := "<html>gateway timeout</html>"
	repo := NewWeatherRepository("http://provider.test", "k", NewStubClient(http.StatusGatewayTimeout, body, nil))

	resp, err := repo.FetchCurrent(context.Background(), "London")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if resp.StatusCode != http.StatusGatewayTimeout {
		t.Errorf("Expected status 504, got %d", resp.StatusCode)
	}
	if string(resp.Body) != body {
		t.Errorf("Expected raw body %q, got %q", body, resp.Body)
	}
}

func TestFetchCurrent_TransportError(t *testing.T) {
	client := &http.Client{
		Transport: RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
			return nil, errors.New("connection refused")
		}),
	}
	repo := NewWeatherRepository("http://provider.test", "topsecret", client)

	_, err := repo.FetchCurrent(context.Background(), "London")
	if !errors.Is(err, ErrExternalAPI) {
		t.Fatalf("Expected ErrExternalAPI, got %v", err)
	}
	if !strings.Contains(err.Error(), "connection refused") {
		t.Errorf("Expected cause in error, got %v", err)
	}
	if strings.Contains(err.Error(), "topsecret") {
		t.Errorf("Access key leaked into error: %v", err)
	}
}

func TestFetchCurrent_ContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	repo := NewWeatherRepository(srv.URL, "k", srv.Client())
	_, err := repo.FetchCurrent(ctx, "London")
	if !errors.Is(err, ErrExternalAPI) {
		t.Fatalf("Expected ErrExternalAPI, got %v", err)
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled in chain, got %v", err)
	}
}

func TestFetchCurrent_RealServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/current" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":false,"error":{"code":101,"info":"invalid access key"}}`))
	}))
	defer srv.Close()

	repo := NewWeatherRepository(srv.URL, "", srv.Client())
	resp, err := repo.FetchCurrent(context.Background(), "Paris")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !strings.Contains(string(resp.Body), "invalid access key") {
		t.Errorf("Unexpected body %s", resp.Body)
	}
}
