package interfaces

import "context"

// SessionRequest describes the checkout session the storefront needs for one
// order: the discounted monthly amount, the commitment term, and where the
// provider should send the customer afterwards.
type SessionRequest struct {
	BundleID      string
	Description   string
	AmountMonthly float64
	TermMonths    int
	SuccessURL    string
	CancelURL     string
}

// SessionResult is the provider's handle for a created checkout session.
type SessionResult struct {
	SessionID   string
	RedirectURL string
}

// IPaymentSessionProvider abstracts the subscription-checkout provider
// (e.g. Mercado Pago Checkout Pro). Completion is reported asynchronously by
// the provider to the payment-confirmation endpoint, not through this
// interface.
type IPaymentSessionProvider interface {
	CreateSession(ctx context.Context, req SessionRequest) (SessionResult, error)
}
