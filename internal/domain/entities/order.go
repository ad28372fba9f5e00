package entities

import "time"

// OrderStatus represents the lifecycle of a bundle order.
//
// Domain notes:
//   - The order advances linearly: created -> customer_info_added ->
//     agreement_signed -> payment_initiated -> paid.
//   - abandoned and rejected are side exits reachable from any non-terminal
//     status; paid is the sole success terminal.
//   - Transitions are driven by the storefront flow (bundle save, contact form,
//     contract signature, checkout session, provider confirmation).

type OrderStatus string

const (
	OrderStatusCreated           OrderStatus = "CREATED"
	OrderStatusCustomerInfoAdded OrderStatus = "CUSTOMER_INFO_ADDED"
	OrderStatusAgreementSigned   OrderStatus = "AGREEMENT_SIGNED"
	OrderStatusPaymentInitiated  OrderStatus = "PAYMENT_INITIATED"
	OrderStatusPaid              OrderStatus = "PAID"
	OrderStatusAbandoned         OrderStatus = "ABANDONED"
	OrderStatusRejected          OrderStatus = "REJECTED"
)

// Terminal reports whether no further transition may leave this status.
func (s OrderStatus) Terminal() bool {
	switch s {
	case OrderStatusPaid, OrderStatusAbandoned, OrderStatusRejected:
		return true
	}
	return false
}

// CustomerInfo carries the contact fields collected by the storefront form.
type CustomerInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address,omitempty"`
}

// Agreement records the signed service contract.
//
// DocumentRef is the reference returned by the document/e-signature provider;
// it is optional and empty when the provider is not configured.
type Agreement struct {
	SignatureText  string    `json:"signature_text"`
	PolicyAccepted bool      `json:"policy_accepted"`
	SignedAt       time.Time `json:"signed_at"`
	DocumentRef    string    `json:"document_ref,omitempty"`
}

// PaymentDiscount is promo metadata reported by the payment provider on
// confirmation. Either PctOff or AmountOff may be set, never both.
type PaymentDiscount struct {
	Code      string  `json:"code,omitempty"`
	PctOff    float64 `json:"pct_off,omitempty"`
	AmountOff float64 `json:"amount_off,omitempty"`
}

// PaymentInfo tracks the checkout session and its outcome.
type PaymentInfo struct {
	SessionID string          `json:"session_id,omitempty"`
	Paid      bool            `json:"paid"`
	PaidAt    time.Time       `json:"paid_at,omitzero"`
	Discount  PaymentDiscount `json:"discount,omitzero"`
}

// Order is the bundle order persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: bundle_id
//
// One bundle id maps to exactly one order row; re-saving the same bundle is an
// upsert, never a duplicate.
//
// Monetary representation:
//   - FinalMonthly/RawTotal are dollars with cent precision; two-decimal
//     rounding happens at presentation time only.
type Order struct {
	BundleID   string `json:"bundle_id"`
	BundleName string `json:"bundle_name"`

	Selection  map[string]string `json:"selection"`
	TermMonths int               `json:"term_months"`

	RawTotal                float64 `json:"raw_total"`
	FinalMonthly            float64 `json:"final_monthly"`
	BundleDiscountPct       float64 `json:"bundle_discount_pct"`
	SubscriptionDiscountPct float64 `json:"subscription_discount_pct"`

	Customer  CustomerInfo `json:"customer,omitzero"`
	Agreement Agreement    `json:"agreement,omitzero"`
	Payment   PaymentInfo  `json:"payment,omitzero"`

	// AbandonedAtStep / RejectReason are set by the abandon/reject exits.
	AbandonedAtStep string `json:"abandoned_at_step,omitempty"`
	RejectReason    string `json:"reject_reason,omitempty"`

	Status    OrderStatus `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}
