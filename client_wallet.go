package bullsbears

import "context"

type amountPayload struct {
	Amount float64 `json:"amount"`
}

// Transactions returns the caller's wallet ledger. An empty ledger decodes to
// an empty slice even when the backend flags the envelope.
//
// Transactions may return an error when input validation, dependency calls, or security checks fail.
// Transactions does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Client) Transactions(ctx context.Context) ([]Transaction, error) {
	envelope, err := c.get(ctx, "wallet.transactions", "/api/transaction/")
	if err != nil {
		return nil, err
	}

	var txns []Transaction
	if err := envelope.DecodeData(&txns); err != nil {
		return nil, err
	}
	return txns, nil
}

// RequestDeposit files a deposit for admin approval. The balance only moves
// once an admin approves the transaction.
//
// RequestDeposit may return an error when input validation, dependency calls, or security checks fail.
func (c *Client) RequestDeposit(ctx context.Context, amount float64) (*Envelope, error) {
	if amount <= 0 {
		return nil, ErrAmountInvalid
	}
	return c.post(ctx, "wallet.deposit", "/api/transaction/deposit", amountPayload{Amount: amount})
}

// RequestWithdraw files a withdrawal for admin approval.
//
// RequestWithdraw may return an error when input validation, dependency calls, or security checks fail.
func (c *Client) RequestWithdraw(ctx context.Context, amount float64) (*Envelope, error) {
	if amount <= 0 {
		return nil, ErrAmountInvalid
	}
	return c.post(ctx, "wallet.withdraw", "/api/transaction/withdraw", amountPayload{Amount: amount})
}
