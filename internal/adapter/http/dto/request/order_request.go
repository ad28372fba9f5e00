package request

// CreateOrderRequest saves a bundle. BundleID is empty on the first save; the
// service generates one. Selection maps service name to tier
// (Base | Standard | Premium); an empty selection is a valid zero-price draft.
type CreateOrderRequest struct {
	BundleID   string            `json:"bundle_id"`
	BundleName string            `json:"bundle_name" binding:"required"`
	Selection  map[string]string `json:"selection"`
	TermMonths int               `json:"term_months" binding:"required"`
}

// QuoteRequest prices a bundle without persisting anything.
type QuoteRequest struct {
	Selection  map[string]string `json:"selection"`
	TermMonths int               `json:"term_months" binding:"required"`
}

// CustomerInfoRequest is the storefront contact form.
type CustomerInfoRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"required"`
	Address string `json:"address"`
}

// AgreementRequest records the contract signature. SignedAt is optional
// RFC 3339; the server clock is used when absent.
type AgreementRequest struct {
	SignatureText  string `json:"signature_text" binding:"required"`
	PolicyAccepted bool   `json:"policy_accepted"`
	SignedAt       string `json:"signed_at"`
}

// PaymentSessionRequest asks for a checkout session with the provider.
type PaymentSessionRequest struct {
	SuccessURL string `json:"success_url" binding:"required,url"`
	CancelURL  string `json:"cancel_url" binding:"required,url"`
}

// PaymentDiscountRequest is promo metadata the provider reports on
// completion.
type PaymentDiscountRequest struct {
	Code      string  `json:"code"`
	PctOff    float64 `json:"pct_off"`
	AmountOff float64 `json:"amount_off"`
}

// PaymentConfirmationRequest is the provider-delivered completion event.
type PaymentConfirmationRequest struct {
	SessionID string                  `json:"session_id" binding:"required"`
	Discount  *PaymentDiscountRequest `json:"discount"`
}

// AbandonRequest closes an order the customer walked away from.
type AbandonRequest struct {
	AtStep string `json:"at_step" binding:"required"`
}

// RejectRequest closes an order with an operator-supplied reason.
type RejectRequest struct {
	Reason string `json:"reason" binding:"required"`
}
