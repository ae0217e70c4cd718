package rms

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"
)

// paginatedServer serves /opportunities with totalItems records split into
// PageSize pages, and records every page/per_page pair it saw.
func paginatedServer(t *testing.T, totalItems int, requests *[]url.Values) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		*requests = append(*requests, query)

		page, err := strconv.Atoi(query.Get("page"))
		if err != nil {
			t.Errorf("missing or invalid page parameter: %q", query.Get("page"))
			page = 1
		}
		perPage, err := strconv.Atoi(query.Get("per_page"))
		if err != nil {
			t.Errorf("missing or invalid per_page parameter: %q", query.Get("per_page"))
			perPage = PageSize
		}

		first := (page - 1) * perPage
		var items []map[string]interface{}
		for i := first; i < first+perPage && i < totalItems; i++ {
			items = append(items, map[string]interface{}{
				"id":      i + 1,
				"subject": fmt.Sprintf("Opportunity %d", i+1),
			})
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{"opportunities": items})
	}))
}

func TestFetchAllPagesStopsOnShortPage(t *testing.T) {
	var requests []url.Values
	server := paginatedServer(t, 2*PageSize+37, &requests)
	defer server.Close()

	client := newTestClient(server.URL)

	records, err := client.FetchAllPages(context.Background(), "/opportunities", "opportunities", nil)
	if err != nil {
		t.Fatalf("FetchAllPages returned error: %v", err)
	}

	if want := 2*PageSize + 37; len(records) != want {
		t.Errorf("got %d records, want %d", len(records), want)
	}
	if len(requests) != 3 {
		t.Errorf("made %d requests, want 3 (no request past the short page)", len(requests))
	}

	// Remote order must be preserved across pages.
	if got := records[0]["id"].(float64); got != 1 {
		t.Errorf("first record id = %v, want 1", got)
	}
	if got := records[len(records)-1]["id"].(float64); got != float64(2*PageSize+37) {
		t.Errorf("last record id = %v, want %d", got, 2*PageSize+37)
	}
}

func TestFetchAllPagesStopsOnEmptyFirstPage(t *testing.T) {
	var requests []url.Values
	server := paginatedServer(t, 0, &requests)
	defer server.Close()

	client := newTestClient(server.URL)

	records, err := client.FetchAllPages(context.Background(), "/opportunities", "opportunities", nil)
	if err != nil {
		t.Fatalf("FetchAllPages returned error: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("got %d records, want 0", len(records))
	}
	if len(requests) != 1 {
		t.Errorf("made %d requests, want 1", len(requests))
	}
}

func TestFetchAllPagesEnforcesCeiling(t *testing.T) {
	var requests []url.Values
	// Enough data that every page within the ceiling is full.
	server := paginatedServer(t, (PageCeiling+10)*PageSize, &requests)
	defer server.Close()

	client := newTestClient(server.URL)

	records, err := client.FetchAllPages(context.Background(), "/opportunities", "opportunities", nil)
	if err != nil {
		t.Fatalf("FetchAllPages returned error: %v", err)
	}

	if len(requests) != PageCeiling {
		t.Errorf("made %d requests, want exactly %d (ceiling)", len(requests), PageCeiling)
	}
	if want := PageCeiling * PageSize; len(records) != want {
		t.Errorf("got %d records, want %d", len(records), want)
	}
}

func TestFetchAllPagesPropagatesError(t *testing.T) {
	var requestCount int

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestCount++
		if requestCount == 2 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		var items []map[string]interface{}
		for i := 0; i < PageSize; i++ {
			items = append(items, map[string]interface{}{"id": i})
		}
		json.NewEncoder(w).Encode(map[string]interface{}{"opportunities": items})
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	records, err := client.FetchAllPages(context.Background(), "/opportunities", "opportunities", nil)
	if err == nil {
		t.Fatal("expected error when a page request fails, got nil")
	}
	if records != nil {
		t.Errorf("expected no partial results on error, got %d records", len(records))
	}
	if requestCount != 2 {
		t.Errorf("made %d requests, want 2 (abort on first failure)", requestCount)
	}
}

func TestFetchAllPagesControlsPagingParams(t *testing.T) {
	var requests []url.Values
	server := paginatedServer(t, 5, &requests)
	defer server.Close()

	client := newTestClient(server.URL)

	// Caller-supplied page/per_page must be overridden, other params kept.
	baseParams := url.Values{}
	baseParams.Set("page", "7")
	baseParams.Set("per_page", "3")
	baseParams.Set("filtermode", "resource")

	if _, err := client.FetchAllPages(context.Background(), "/opportunities", "opportunities", baseParams); err != nil {
		t.Fatalf("FetchAllPages returned error: %v", err)
	}

	if len(requests) != 1 {
		t.Fatalf("made %d requests, want 1", len(requests))
	}
	got := requests[0]
	if got.Get("page") != "1" {
		t.Errorf("page = %q, want %q (internally controlled)", got.Get("page"), "1")
	}
	if got.Get("per_page") != strconv.Itoa(PageSize) {
		t.Errorf("per_page = %q, want %q", got.Get("per_page"), strconv.Itoa(PageSize))
	}
	if got.Get("filtermode") != "resource" {
		t.Errorf("filtermode = %q, want %q", got.Get("filtermode"), "resource")
	}
}

func TestFetchAllPagesMissingCollectionKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"members":[{"id":1}]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	records, err := client.FetchAllPages(context.Background(), "/opportunities", "opportunities", nil)
	if err != nil {
		t.Fatalf("FetchAllPages returned error: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("got %d records for missing collection key, want 0", len(records))
	}
}
