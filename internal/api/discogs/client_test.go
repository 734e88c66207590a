package discogs

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// CreateMockClient creates a client pointed at a test server
func CreateMockClient(baseURL string) *Client {
	config := Config{
		BaseURL:      baseURL + "/",
		UserAgent:    "test-client/1.0",
		Token:        "test-token",
		Timeout:      5 * time.Second,
		MaxRetries:   1,
		InitialDelay: 100 * time.Millisecond,
		MaxDelay:     1 * time.Second,
		RateLimit:    time.Millisecond,
		BurstLimit:   10,
		Debug:        true,
	}
	return NewClientWithConfig(config)
}

func TestNewClient(t *testing.T) {
	client := NewClient("token")
	if client == nil {
		t.Fatal("NewClient() returned nil")
	}

	config := client.GetConfig()
	if config.BaseURL != defaultBaseURL {
		t.Errorf("Expected BaseURL %s, got %s", defaultBaseURL, config.BaseURL)
	}
	if config.Token != "token" {
		t.Errorf("Expected token to be set, got %q", config.Token)
	}
}

func TestClientConfiguration(t *testing.T) {
	customConfig := Config{
		BaseURL:      "https://test.discogs.com/",
		UserAgent:    "test-agent/1.0",
		Timeout:      15 * time.Second,
		MaxRetries:   3,
		InitialDelay: 1 * time.Second,
		MaxDelay:     30 * time.Second,
		RateLimit:    500 * time.Millisecond,
		BurstLimit:   3,
		Debug:        true,
	}

	client := NewClientWithConfig(customConfig)
	retrievedConfig := client.GetConfig()

	if retrievedConfig.BaseURL != customConfig.BaseURL {
		t.Errorf("Expected BaseURL %s, got %s", customConfig.BaseURL, retrievedConfig.BaseURL)
	}
	if retrievedConfig.Debug != customConfig.Debug {
		t.Errorf("Expected Debug %v, got %v", customConfig.Debug, retrievedConfig.Debug)
	}
}

func TestSearchReleases(t *testing.T) {
	var gotQuery, gotYear, gotType, gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/database/search" {
			t.Errorf("Unexpected path %s", r.URL.Path)
		}
		gotQuery = r.URL.Query().Get("q")
		gotYear = r.URL.Query().Get("year")
		gotType = r.URL.Query().Get("type")
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"results": [
				{"id": 123, "title": "Daft Punk - Discovery", "year": "2001",
				 "country": "France", "format": ["CD", "Album"],
				 "label": ["Virgin"], "genre": ["Electronic"],
				 "style": ["House"], "community": {"want": 10, "have": 2500}}
			],
			"pagination": {"page": 1, "pages": 1, "per_page": 5, "items": 1}
		}`))
	}))
	defer server.Close()

	client := CreateMockClient(server.URL)
	results, err := client.SearchReleases(context.Background(), "Discovery", "Daft Punk", "2001")
	if err != nil {
		t.Fatalf("SearchReleases failed: %v", err)
	}

	if gotQuery != "Discovery Daft Punk" {
		t.Errorf("Expected query 'Discovery Daft Punk', got %q", gotQuery)
	}
	if gotYear != "2001" {
		t.Errorf("Expected year param '2001', got %q", gotYear)
	}
	if gotType != "release" {
		t.Errorf("Expected type 'release', got %q", gotType)
	}
	if gotAuth != "Discogs token=test-token" {
		t.Errorf("Expected token auth header, got %q", gotAuth)
	}

	if len(results) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(results))
	}
	if results[0].ID != 123 {
		t.Errorf("Expected result ID 123, got %d", results[0].ID)
	}
	if results[0].Community.Have != 2500 {
		t.Errorf("Expected community.have 2500, got %d", results[0].Community.Have)
	}
}

func TestSearchReleasesYearHint(t *testing.T) {
	cases := []struct {
		year string
		want string
	}{
		{"1990", "1990"},
		{"1990s", "1990"}, // decades lose their trailing "s"
		{"early 90s", ""},
		{"", ""},
	}

	var gotYear string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotYear = r.URL.Query().Get("year")
		w.Write([]byte(`{"results": [], "pagination": {}}`))
	}))
	defer server.Close()

	client := CreateMockClient(server.URL)
	for _, tc := range cases {
		if _, err := client.SearchReleases(context.Background(), "Song", "Artist", tc.year); err != nil {
			t.Fatalf("SearchReleases(%q) failed: %v", tc.year, err)
		}
		if gotYear != tc.want {
			t.Errorf("Year %q: expected year param %q, got %q", tc.year, tc.want, gotYear)
		}
	}
}

func TestSearchReleasesEmptyQuery(t *testing.T) {
	client := NewClient("token")
	if _, err := client.SearchReleases(context.Background(), "", "", ""); err == nil {
		t.Error("Expected error for empty query")
	}
}

func TestGetRelease(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/releases/123" {
			t.Errorf("Unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": 123, "title": "Discovery", "year": 2001, "country": "France",
			"genres": ["Electronic"], "styles": ["House", "Disco"],
			"formats": [{"name": "CD", "qty": "1", "descriptions": ["Album"]}],
			"labels": [{"id": 1, "name": "Virgin", "catno": "V 2940"}],
			"artists": [{"id": 2, "name": "Daft Punk"}],
			"community": {"want": 10, "have": 2500}
		}`))
	}))
	defer server.Close()

	client := CreateMockClient(server.URL)
	release, err := client.GetRelease(context.Background(), 123)
	if err != nil {
		t.Fatalf("GetRelease failed: %v", err)
	}

	if release.Year != 2001 {
		t.Errorf("Expected year 2001, got %d", release.Year)
	}
	if len(release.Styles) != 2 {
		t.Errorf("Expected 2 styles, got %d", len(release.Styles))
	}
	if len(release.Labels) != 1 || release.Labels[0].Name != "Virgin" {
		t.Errorf("Unexpected labels: %+v", release.Labels)
	}
}

func TestGetReleaseInvalidID(t *testing.T) {
	client := NewClient("token")
	if _, err := client.GetRelease(context.Background(), 0); err == nil {
		t.Error("Expected error for non-positive release ID")
	}
}

func TestGetReleaseServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "release not found", http.StatusNotFound)
	}))
	defer server.Close()

	client := CreateMockClient(server.URL)
	if _, err := client.GetRelease(context.Background(), 999); err == nil {
		t.Error("Expected error for 404 response")
	}
}

// Integration test helper
func TestIntegrationSearchReleases(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	client := NewClient("")
	ctx := context.Background()

	results, err := client.SearchReleases(ctx, "Abbey Road", "The Beatles", "1969")
	if err != nil {
		t.Fatalf("SearchReleases failed: %v", err)
	}

	if len(results) == 0 {
		t.Error("Expected at least one result")
	}
}
