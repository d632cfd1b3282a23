package bullsbears

import (
	"context"
	"strings"
)

// BuyCrypto places a market buy and returns the recorded trade.
//
// BuyCrypto may return an error when input validation, dependency calls, or security checks fail.
// BuyCrypto does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Client) BuyCrypto(ctx context.Context, req TradeRequest) (*Trade, error) {
	if strings.TrimSpace(req.Symbol) == "" {
		return nil, ErrTradeSymbolRequired
	}
	if req.Amount <= 0 {
		return nil, ErrAmountInvalid
	}

	envelope, err := c.post(ctx, "trade.buy", "/api/trade/buy", req)
	if err != nil {
		return nil, err
	}

	var trade Trade
	if err := envelope.DecodeData(&trade); err != nil {
		return nil, err
	}
	return &trade, nil
}

// MyTrades returns the caller's trade history.
//
// MyTrades may return an error when input validation, dependency calls, or security checks fail.
// MyTrades does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Client) MyTrades(ctx context.Context) ([]Trade, error) {
	envelope, err := c.get(ctx, "trade.mine", "/api/trade/my-trades")
	if err != nil {
		return nil, err
	}

	var trades []Trade
	if err := envelope.DecodeData(&trades); err != nil {
		return nil, err
	}
	return trades, nil
}

// TradeByID returns one trade record.
//
// TradeByID may return an error when input validation, dependency calls, or security checks fail.
// TradeByID does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Client) TradeByID(ctx context.Context, id string) (*Trade, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrIDRequired
	}

	envelope, err := c.get(ctx, "trade.by_id", "/api/trade/"+id)
	if err != nil {
		return nil, err
	}

	var trade Trade
	if err := envelope.DecodeData(&trade); err != nil {
		return nil, err
	}
	return &trade, nil
}

// AllTrades returns every trade on the platform. The backend restricts it to
// admin sessions.
//
// AllTrades may return an error when input validation, dependency calls, or security checks fail.
// AllTrades does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Client) AllTrades(ctx context.Context) ([]Trade, error) {
	envelope, err := c.get(ctx, "trade.all", "/api/trade/")
	if err != nil {
		return nil, err
	}

	var trades []Trade
	if err := envelope.DecodeData(&trades); err != nil {
		return nil, err
	}
	return trades, nil
}
