package bullsbears

import (
	"context"
	"strings"
)

// Watchlist returns the caller's tracked assets.
//
// Watchlist may return an error when input validation, dependency calls, or security checks fail.
// Watchlist does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Client) Watchlist(ctx context.Context) ([]WatchlistItem, error) {
	envelope, err := c.get(ctx, "watchlist.list", "/api/watchlist/")
	if err != nil {
		return nil, err
	}

	var items []WatchlistItem
	if err := envelope.DecodeData(&items); err != nil {
		return nil, err
	}
	return items, nil
}

// AddToWatchlist tracks an asset.
//
// AddToWatchlist may return an error when input validation, dependency calls, or security checks fail.
// AddToWatchlist does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Client) AddToWatchlist(ctx context.Context, req WatchlistRequest) (*Envelope, error) {
	if strings.TrimSpace(req.AssetID) == "" {
		return nil, ErrAssetIDRequired
	}
	return c.post(ctx, "watchlist.add", "/api/watchlist/add-to-watchlist", req)
}

// RemoveFromWatchlist stops tracking an asset by its watchlist entry id.
// The backend models removal as an update, hence PUT.
//
// RemoveFromWatchlist may return an error when input validation, dependency calls, or security checks fail.
func (c *Client) RemoveFromWatchlist(ctx context.Context, id string) (*Envelope, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrIDRequired
	}
	return c.put(ctx, "watchlist.remove", "/api/watchlist/remove-from-watchlist/"+id, nil)
}
