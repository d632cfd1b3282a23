// Command bullsbears-smoke exercises the API client against a live backend.
//
// It signs in with the supplied credentials, fetches the profile, the wallet
// ledger, and the watchlist, and prints one line per step. Audit events are
// written as JSON lines to stderr so a failing run shows exactly which call
// broke.
//
// Run:
//
//	go run ./cmd/bullsbears-smoke -email you@example.com -password secret123
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	bullsbears "github.com/MuhammadOusman/BullsAndBears"
)

func main() {
	var (
		baseURL  = flag.String("base-url", "", "backend origin; if empty, BULLSBEARS_API_BASE_URL env or the deployed origin is used")
		email    = flag.String("email", "", "account email")
		password = flag.String("password", "", "account password")
		timeout  = flag.Duration("timeout", 30*time.Second, "per-request timeout")
	)
	flag.Parse()

	if *email == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "email and password are required")
		os.Exit(2)
	}

	cfg := bullsbears.DefaultConfig()
	if *baseURL != "" {
		cfg.API.BaseURL = *baseURL
	}
	cfg.API.RequestTimeout = *timeout
	cfg.Audit.Enabled = true

	ctx := context.Background()

	client, err := bullsbears.New().
		WithConfig(cfg).
		WithAuditSink(bullsbears.NewJSONWriterSink(os.Stderr)).
		Build(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "build failed: %v\n", err)
		os.Exit(1)
	}
	defer client.Close()

	data, err := client.Authenticate(ctx, bullsbears.LoginRequest{
		Email:    *email,
		Password: *password,
	})
	if err != nil {
		fail("login", err)
	}
	fmt.Printf("login ok: %s %s (%s)\n", data.User.FirstName, data.User.LastName, data.User.Role)

	profile, err := client.UserProfile(ctx)
	if err != nil {
		fail("profile", err)
	}
	fmt.Printf("profile ok: balance %.2f, status %s\n", profile.Balance, profile.Status)

	txns, err := client.Transactions(ctx)
	if err != nil {
		fail("transactions", err)
	}
	fmt.Printf("transactions ok: %d records\n", len(txns))

	watchlist, err := client.Watchlist(ctx)
	if err != nil {
		fail("watchlist", err)
	}
	fmt.Printf("watchlist ok: %d assets\n", len(watchlist))

	trades, err := client.MyTrades(ctx)
	if err != nil {
		fail("trades", err)
	}
	fmt.Printf("trades ok: %d records\n", len(trades))

	if err := client.Logout(ctx); err != nil {
		fail("logout", err)
	}
	fmt.Println("logout ok")
}

func fail(step string, err error) {
	if apiErr, ok := bullsbears.AsAPIError(err); ok && apiErr.IsConnectivity() {
		fmt.Fprintf(os.Stderr, "%s failed: backend unreachable: %v\n", step, err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "%s failed: %v\n", step, err)
	os.Exit(1)
}
