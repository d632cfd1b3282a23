package bullsbears

import (
	"context"
	"strings"
)

type actionPayload struct {
	Action ApprovalAction `json:"action"`
}

func validateApproval(id string, action ApprovalAction) error {
	if strings.TrimSpace(id) == "" {
		return ErrIDRequired
	}
	if action != ActionApprove && action != ActionReject {
		return ErrActionInvalid
	}
	return nil
}

/*
====================================
USER APPROVAL
====================================
*/

// Users returns every registered account, pending and approved alike.
// Callers filter by status client-side.
//
// Users may return an error when input validation, dependency calls, or security checks fail.
// Users does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Client) Users(ctx context.Context) ([]User, error) {
	envelope, err := c.get(ctx, "admin.users", "/api/admin/users")
	if err != nil {
		return nil, err
	}

	var users []User
	if err := envelope.DecodeData(&users); err != nil {
		return nil, err
	}
	return users, nil
}

// ApproveUser approves or rejects a pending account.
//
// ApproveUser may return an error when input validation, dependency calls, or security checks fail.
// ApproveUser does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Client) ApproveUser(ctx context.Context, userID string, action ApprovalAction) (*Envelope, error) {
	if err := validateApproval(userID, action); err != nil {
		return nil, err
	}
	return c.put(ctx, "admin.approve_user", "/api/admin/"+userID, actionPayload{Action: action})
}

/*
====================================
PASSWORD TICKETS
====================================
*/

// PasswordRequests returns the pending password-change tickets.
//
// PasswordRequests may return an error when input validation, dependency calls, or security checks fail.
// PasswordRequests does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Client) PasswordRequests(ctx context.Context) ([]PasswordChangeTicket, error) {
	envelope, err := c.get(ctx, "admin.password_requests", "/api/admin/password-requests")
	if err != nil {
		return nil, err
	}

	var tickets []PasswordChangeTicket
	if err := envelope.DecodeData(&tickets); err != nil {
		return nil, err
	}
	return tickets, nil
}

// ApprovePasswordChange resolves a password-change ticket.
//
// ApprovePasswordChange may return an error when input validation, dependency calls, or security checks fail.
// ApprovePasswordChange does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Client) ApprovePasswordChange(ctx context.Context, ticketID string, action ApprovalAction) (*Envelope, error) {
	if err := validateApproval(ticketID, action); err != nil {
		return nil, err
	}
	return c.patch(ctx, "admin.approve_password", "/api/admin/change-password/approve/"+ticketID, actionPayload{Action: action})
}

/*
====================================
TRANSACTION APPROVAL
====================================
*/

// AllTransactions returns every wallet transaction on the platform.
//
// AllTransactions may return an error when input validation, dependency calls, or security checks fail.
// AllTransactions does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Client) AllTransactions(ctx context.Context) ([]Transaction, error) {
	envelope, err := c.get(ctx, "admin.transactions", "/api/admin/get-all-transactions")
	if err != nil {
		return nil, err
	}

	var txns []Transaction
	if err := envelope.DecodeData(&txns); err != nil {
		return nil, err
	}
	return txns, nil
}

// ApproveTransaction resolves a pending deposit or withdrawal.
//
// ApproveTransaction may return an error when input validation, dependency calls, or security checks fail.
// ApproveTransaction does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Client) ApproveTransaction(ctx context.Context, transactionID string, action ApprovalAction) (*Envelope, error) {
	if err := validateApproval(transactionID, action); err != nil {
		return nil, err
	}
	return c.put(ctx, "admin.approve_transaction", "/api/admin/transactions/"+transactionID, actionPayload{Action: action})
}
