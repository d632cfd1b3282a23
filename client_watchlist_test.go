package bullsbears

import (
	"context"
	"errors"
	"net/http"
	"testing"
)

func TestAddToWatchlistRequiresAssetID(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("invalid input must not reach the backend")
	}))

	_, err := client.AddToWatchlist(context.Background(), WatchlistRequest{Name: "Bitcoin"})
	if !errors.Is(err, ErrAssetIDRequired) {
		t.Fatalf("expected ErrAssetIDRequired, got %v", err)
	}
}

func TestRemoveFromWatchlistUsesPut(t *testing.T) {
	var gotMethod, gotPath string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		writeEnvelope(w, http.StatusOK, false, "removed", nil)
	}))

	if _, err := client.RemoveFromWatchlist(context.Background(), "wl-4"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if gotMethod != http.MethodPut || gotPath != "/api/watchlist/remove-from-watchlist/wl-4" {
		t.Fatalf("unexpected request %s %s", gotMethod, gotPath)
	}

	if _, err := client.RemoveFromWatchlist(context.Background(), " "); !errors.Is(err, ErrIDRequired) {
		t.Fatalf("expected ErrIDRequired, got %v", err)
	}
}

func TestWatchlistDecodes(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/watchlist/" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		writeEnvelope(w, http.StatusOK, false, "", []map[string]any{
			{"_id": "wl-1", "assetId": "bitcoin", "name": "Bitcoin", "symbol": "BTC"},
		})
	}))

	items, err := client.Watchlist(context.Background())
	if err != nil {
		t.Fatalf("watchlist: %v", err)
	}
	if len(items) != 1 || items[0].Symbol != "BTC" {
		t.Fatalf("unexpected items %+v", items)
	}
}
