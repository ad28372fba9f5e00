package response

import (
	"growthbundles/internal/domain/entities"
	"growthbundles/internal/domain/pricing"
	"math"
	"time"
)

// round2 rounds for display only; stored prices keep full precision.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

type QuoteResponse struct {
	RawTotal                float64 `json:"raw_total"`
	FinalMonthly            float64 `json:"final_monthly"`
	TotalSaved              float64 `json:"total_saved"`
	BundleDiscountPct       float64 `json:"bundle_discount_pct"`
	SubscriptionDiscountPct float64 `json:"subscription_discount_pct"`
	ProductCount            int     `json:"product_count"`
}

func FromQuote(q pricing.Quote) QuoteResponse {
	return QuoteResponse{
		RawTotal:                round2(q.RawTotal),
		FinalMonthly:            round2(q.FinalMonthly),
		TotalSaved:              round2(q.TotalSaved),
		BundleDiscountPct:       q.BundleDiscountPct,
		SubscriptionDiscountPct: q.SubscriptionDiscountPct,
		ProductCount:            q.ProductCount,
	}
}

type CustomerResponse struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address,omitempty"`
}

type AgreementResponse struct {
	SignatureText  string    `json:"signature_text"`
	PolicyAccepted bool      `json:"policy_accepted"`
	SignedAt       time.Time `json:"signed_at"`
	DocumentRef    string    `json:"document_ref,omitempty"`
}

type PaymentResponse struct {
	SessionID string     `json:"session_id,omitempty"`
	Paid      bool       `json:"paid"`
	PaidAt    *time.Time `json:"paid_at,omitempty"`
}

type OrderResponse struct {
	BundleID   string            `json:"bundle_id"`
	BundleName string            `json:"bundle_name"`
	Selection  map[string]string `json:"selection"`
	TermMonths int               `json:"term_months"`

	RawTotal                float64 `json:"raw_total"`
	FinalMonthly            float64 `json:"final_monthly"`
	BundleDiscountPct       float64 `json:"bundle_discount_pct"`
	SubscriptionDiscountPct float64 `json:"subscription_discount_pct"`

	Customer  *CustomerResponse  `json:"customer,omitempty"`
	Agreement *AgreementResponse `json:"agreement,omitempty"`
	Payment   PaymentResponse    `json:"payment"`

	AbandonedAtStep string `json:"abandoned_at_step,omitempty"`
	RejectReason    string `json:"reject_reason,omitempty"`

	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromOrder(o entities.Order) OrderResponse {
	resp := OrderResponse{
		BundleID:                o.BundleID,
		BundleName:              o.BundleName,
		Selection:               o.Selection,
		TermMonths:              o.TermMonths,
		RawTotal:                round2(o.RawTotal),
		FinalMonthly:            round2(o.FinalMonthly),
		BundleDiscountPct:       o.BundleDiscountPct,
		SubscriptionDiscountPct: o.SubscriptionDiscountPct,
		Payment: PaymentResponse{
			SessionID: o.Payment.SessionID,
			Paid:      o.Payment.Paid,
		},
		AbandonedAtStep: o.AbandonedAtStep,
		RejectReason:    o.RejectReason,
		Status:          string(o.Status),
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
	if o.Customer != (entities.CustomerInfo{}) {
		resp.Customer = &CustomerResponse{
			Name:    o.Customer.Name,
			Email:   o.Customer.Email,
			Phone:   o.Customer.Phone,
			Address: o.Customer.Address,
		}
	}
	if o.Agreement.SignatureText != "" {
		resp.Agreement = &AgreementResponse{
			SignatureText:  o.Agreement.SignatureText,
			PolicyAccepted: o.Agreement.PolicyAccepted,
			SignedAt:       o.Agreement.SignedAt,
			DocumentRef:    o.Agreement.DocumentRef,
		}
	}
	if !o.Payment.PaidAt.IsZero() {
		paidAt := o.Payment.PaidAt
		resp.Payment.PaidAt = &paidAt
	}
	return resp
}

// PaymentSessionResponse pairs the updated order with the provider redirect.
type PaymentSessionResponse struct {
	Order       OrderResponse `json:"order"`
	RedirectURL string        `json:"redirect_url"`
}
