package payment

import (
	"context"
	"errors"
)

// ErrUnavailable is the single outcome every gateway-side failure collapses
// into: timeouts, network errors, non-200 responses, malformed bodies.
// Callers branch on it with errors.Is and show a generic message.
var ErrUnavailable = errors.New("payment gateway unavailable")

// InitializeRequest carries everything the hosted-payment provider needs to
// start a checkout for one submission.
type InitializeRequest struct {
	Amount      string
	Currency    string
	Email       string
	FirstName   string
	LastName    string
	TxRef       string
	CallbackURL string
	ReturnURL   string
	Title       string
}

// Gateway is the outbound payment provider contract. Initialize returns the
// hosted checkout URL the customer is redirected to; Verify re-checks a
// transaction's final state by reference and must never report true unless
// the provider confirmed it.
type Gateway interface {
	Initialize(ctx context.Context, req InitializeRequest) (string, error)
	Verify(ctx context.Context, txRef string) bool
	Configured() bool
}
