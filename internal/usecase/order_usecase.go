package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/mail"
	"strings"
	"time"

	"growthbundles/internal/domain/entities"
	"growthbundles/internal/domain/pricing"
	"growthbundles/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound          = errors.New("order not found")
	ErrInvalidBundleID        = errors.New("invalid bundle id")
	ErrInvalidStateTransition = errors.New("invalid state transition")
	ErrSessionMismatch        = errors.New("payment session mismatch")
	ErrPriceNotComputed       = errors.New("order has no payable price")
	ErrPaymentProviderMissing = errors.New("payment session provider not configured")
)

// ValidationError names the request field that failed a lifecycle precondition.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s %s", e.Field, e.Reason)
}

func invalidField(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// CreateOrderInput is the bundle the storefront asks to save. BundleID may be
// empty on the first save; one is generated then.
type CreateOrderInput struct {
	BundleID   string
	BundleName string
	Selection  map[string]string
	TermMonths int
}

// ConfirmPaymentInput carries the provider's completion event.
type ConfirmPaymentInput struct {
	SessionID string
	Discount  entities.PaymentDiscount
}

// IOrderUseCase exposes the order lifecycle operations.
//
// Each method is one status transition of the bundle order:
//   - CreateOrder          => CREATED (idempotent upsert per bundle id)
//   - RecordCustomerInfo   => CUSTOMER_INFO_ADDED
//   - RecordAgreement      => AGREEMENT_SIGNED
//   - InitiatePayment      => PAYMENT_INITIATED
//   - ConfirmPayment       => PAID
//   - Abandon / Reject     => ABANDONED / REJECTED

type IOrderUseCase interface {
	CreateOrder(ctx context.Context, in CreateOrderInput) (entities.Order, error)
	GetByBundleID(ctx context.Context, bundleID string) (entities.Order, error)
	RecordCustomerInfo(ctx context.Context, bundleID string, c entities.CustomerInfo) (entities.Order, error)
	RecordAgreement(ctx context.Context, bundleID, signatureText string, policyAccepted bool, signedAt time.Time) (entities.Order, error)
	InitiatePayment(ctx context.Context, bundleID, successURL, cancelURL string) (entities.Order, string, error)
	ConfirmPayment(ctx context.Context, bundleID string, in ConfirmPaymentInput) (entities.Order, error)
	Abandon(ctx context.Context, bundleID, atStep string) (entities.Order, error)
	Reject(ctx context.Context, bundleID, reason string) (entities.Order, error)
}

type OrderUseCase struct {
	repo     interfaces.IOrderRepository
	payments interfaces.IPaymentSessionProvider
	docs     interfaces.IDocumentProvider
	exporter interfaces.IOrderExporter
	catalog  pricing.Catalog
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(
	repo interfaces.IOrderRepository,
	payments interfaces.IPaymentSessionProvider,
	docs interfaces.IDocumentProvider,
	exporter interfaces.IOrderExporter,
	catalog pricing.Catalog,
) *OrderUseCase {
	if catalog == nil {
		catalog = pricing.DefaultCatalog()
	}
	return &OrderUseCase{repo: repo, payments: payments, docs: docs, exporter: exporter, catalog: catalog}
}

// CreateOrder saves a bundle and prices it. Saving the same bundle id again
// while the order is still CREATED replaces the selection and recomputes the
// price; once the order has advanced, the stored order is returned untouched.
func (u *OrderUseCase) CreateOrder(ctx context.Context, in CreateOrderInput) (entities.Order, error) {
	in.BundleID = strings.TrimSpace(in.BundleID)
	in.BundleName = strings.TrimSpace(in.BundleName)
	if in.BundleName == "" {
		return entities.Order{}, invalidField("bundle_name", "must not be empty")
	}

	sel := make(pricing.Selection, len(in.Selection))
	for service, tier := range in.Selection {
		sel[service] = pricing.Tier(tier)
	}

	quote, err := pricing.ComputeFinalPrice(sel, in.TermMonths, u.catalog)
	if err != nil {
		return entities.Order{}, err
	}

	now := time.Now().UTC()
	o := entities.Order{
		BundleID:                in.BundleID,
		BundleName:              in.BundleName,
		Selection:               in.Selection,
		TermMonths:              in.TermMonths,
		RawTotal:                quote.RawTotal,
		FinalMonthly:            quote.FinalMonthly,
		BundleDiscountPct:       quote.BundleDiscountPct,
		SubscriptionDiscountPct: quote.SubscriptionDiscountPct,
		Status:                  entities.OrderStatusCreated,
		CreatedAt:               now,
		UpdatedAt:               now,
	}

	if o.BundleID == "" {
		o.BundleID = uuid.NewString()
		return u.repo.Create(ctx, o)
	}

	existing, err := u.repo.GetByBundleID(ctx, o.BundleID)
	if err != nil {
		return entities.Order{}, err
	}
	if existing.BundleID == "" {
		return u.repo.Create(ctx, o)
	}
	if existing.Status != entities.OrderStatusCreated {
		// The order already advanced; a late re-save must not regress it.
		return existing, nil
	}

	o.CreatedAt = existing.CreatedAt
	updated, err := u.repo.ReplaceBundle(ctx, o)
	if err != nil {
		return entities.Order{}, err
	}
	if updated.BundleID == "" {
		return entities.Order{}, ErrInvalidStateTransition
	}
	return updated, nil
}

func (u *OrderUseCase) GetByBundleID(ctx context.Context, bundleID string) (entities.Order, error) {
	bundleID = strings.TrimSpace(bundleID)
	if bundleID == "" {
		return entities.Order{}, ErrInvalidBundleID
	}

	o, err := u.repo.GetByBundleID(ctx, bundleID)
	if err != nil {
		return entities.Order{}, err
	}
	if o.BundleID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

// RecordCustomerInfo merges the contact form into the order. Resubmitting the
// form while still on the contact step is allowed.
func (u *OrderUseCase) RecordCustomerInfo(ctx context.Context, bundleID string, c entities.CustomerInfo) (entities.Order, error) {
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.TrimSpace(c.Email)
	c.Phone = strings.TrimSpace(c.Phone)
	c.Address = strings.TrimSpace(c.Address)

	if c.Name == "" {
		return entities.Order{}, invalidField("name", "must not be empty")
	}
	if c.Email == "" {
		return entities.Order{}, invalidField("email", "must not be empty")
	}
	if _, err := mail.ParseAddress(c.Email); err != nil {
		return entities.Order{}, invalidField("email", "must be a valid address")
	}
	if c.Phone == "" {
		return entities.Order{}, invalidField("phone", "must not be empty")
	}

	o, err := u.GetByBundleID(ctx, bundleID)
	if err != nil {
		return entities.Order{}, err
	}
	switch o.Status {
	case entities.OrderStatusCreated, entities.OrderStatusCustomerInfoAdded:
	default:
		return entities.Order{}, ErrInvalidStateTransition
	}

	updated, err := u.repo.UpdateCustomerInfo(ctx, o.BundleID, o.Status, c)
	if err != nil {
		return entities.Order{}, err
	}
	if updated.BundleID == "" {
		return entities.Order{}, ErrInvalidStateTransition
	}
	return updated, nil
}

// RecordAgreement stores the signed contract. The signature text must match
// the recorded customer name, compared case-insensitively.
func (u *OrderUseCase) RecordAgreement(ctx context.Context, bundleID, signatureText string, policyAccepted bool, signedAt time.Time) (entities.Order, error) {
	signatureText = strings.TrimSpace(signatureText)
	if signatureText == "" {
		return entities.Order{}, invalidField("signature_text", "must not be empty")
	}
	if !policyAccepted {
		return entities.Order{}, invalidField("policy_accepted", "must be accepted")
	}
	if signedAt.IsZero() {
		signedAt = time.Now().UTC()
	}

	o, err := u.GetByBundleID(ctx, bundleID)
	if err != nil {
		return entities.Order{}, err
	}
	if o.Status != entities.OrderStatusCustomerInfoAdded {
		return entities.Order{}, ErrInvalidStateTransition
	}
	if !strings.EqualFold(signatureText, strings.TrimSpace(o.Customer.Name)) {
		return entities.Order{}, invalidField("signature_text", "must match the customer name")
	}

	agreement := entities.Agreement{
		SignatureText:  signatureText,
		PolicyAccepted: true,
		SignedAt:       signedAt.UTC(),
	}

	if u.docs != nil {
		ref, err := u.docs.SubmitAgreement(ctx, interfaces.AgreementSubmission{
			BundleID:      o.BundleID,
			BundleName:    o.BundleName,
			CustomerName:  o.Customer.Name,
			CustomerEmail: o.Customer.Email,
			SignatureText: signatureText,
			SignedAt:      agreement.SignedAt,
			MonthlyPrice:  o.FinalMonthly,
			TermMonths:    o.TermMonths,
		})
		if err != nil {
			log.Printf("[order][usecase] document provider failed bundle_id=%s err=%v", o.BundleID, err)
			return entities.Order{}, err
		}
		agreement.DocumentRef = ref
	}

	updated, err := u.repo.UpdateAgreement(ctx, o.BundleID, o.Status, agreement)
	if err != nil {
		return entities.Order{}, err
	}
	if updated.BundleID == "" {
		return entities.Order{}, ErrInvalidStateTransition
	}
	return updated, nil
}

// InitiatePayment creates a checkout session for the order's monthly price and
// stores the session reference. Returns the provider redirect URL.
func (u *OrderUseCase) InitiatePayment(ctx context.Context, bundleID, successURL, cancelURL string) (entities.Order, string, error) {
	o, err := u.GetByBundleID(ctx, bundleID)
	if err != nil {
		return entities.Order{}, "", err
	}
	if o.Status != entities.OrderStatusAgreementSigned {
		return entities.Order{}, "", ErrInvalidStateTransition
	}
	if o.FinalMonthly <= 0 {
		return entities.Order{}, "", ErrPriceNotComputed
	}
	if u.payments == nil {
		return entities.Order{}, "", ErrPaymentProviderMissing
	}

	log.Printf("[order][usecase] creating payment session bundle_id=%s amount=%.2f term=%d", o.BundleID, o.FinalMonthly, o.TermMonths)
	session, err := u.payments.CreateSession(ctx, interfaces.SessionRequest{
		BundleID:      o.BundleID,
		Description:   fmt.Sprintf("%s (%d months)", o.BundleName, o.TermMonths),
		AmountMonthly: o.FinalMonthly,
		TermMonths:    o.TermMonths,
		SuccessURL:    successURL,
		CancelURL:     cancelURL,
	})
	if err != nil {
		log.Printf("[order][usecase] payment session failed bundle_id=%s err=%v", o.BundleID, err)
		return entities.Order{}, "", err
	}

	updated, err := u.repo.UpdatePaymentSession(ctx, o.BundleID, o.Status, session.SessionID)
	if err != nil {
		return entities.Order{}, "", err
	}
	if updated.BundleID == "" {
		return entities.Order{}, "", ErrInvalidStateTransition
	}
	log.Printf("[order][usecase] payment session created bundle_id=%s session_id=%s", o.BundleID, session.SessionID)
	return updated, session.RedirectURL, nil
}

// ConfirmPayment applies the provider's completion event. Replaying the same
// session on an already paid order is a no-op returning the stored order.
func (u *OrderUseCase) ConfirmPayment(ctx context.Context, bundleID string, in ConfirmPaymentInput) (entities.Order, error) {
	in.SessionID = strings.TrimSpace(in.SessionID)
	if in.SessionID == "" {
		return entities.Order{}, invalidField("session_id", "must not be empty")
	}

	o, err := u.GetByBundleID(ctx, bundleID)
	if err != nil {
		return entities.Order{}, err
	}

	if o.Status == entities.OrderStatusPaid {
		if o.Payment.SessionID == in.SessionID {
			log.Printf("[order][usecase] confirmation replay bundle_id=%s session_id=%s", o.BundleID, in.SessionID)
			return o, nil
		}
		return entities.Order{}, ErrSessionMismatch
	}
	if o.Status != entities.OrderStatusPaymentInitiated {
		return entities.Order{}, ErrInvalidStateTransition
	}
	if o.Payment.SessionID != in.SessionID {
		return entities.Order{}, ErrSessionMismatch
	}

	updated, err := u.repo.MarkPaid(ctx, o.BundleID, o.Status, in.Discount)
	if err != nil {
		return entities.Order{}, err
	}
	if updated.BundleID == "" {
		// Lost the conditional write; a concurrent confirmation may have won.
		current, err := u.repo.GetByBundleID(ctx, o.BundleID)
		if err != nil {
			return entities.Order{}, err
		}
		if current.Status == entities.OrderStatusPaid && current.Payment.SessionID == in.SessionID {
			return current, nil
		}
		return entities.Order{}, ErrInvalidStateTransition
	}
	log.Printf("[order][usecase] order paid bundle_id=%s session_id=%s", updated.BundleID, in.SessionID)

	if u.exporter != nil {
		if err := u.exporter.ExportOrder(ctx, updated); err != nil {
			// Export is best-effort; the order stays paid.
			log.Printf("[order][usecase] export failed bundle_id=%s err=%v", updated.BundleID, err)
		}
	}
	return updated, nil
}

// Abandon closes the order from whichever non-terminal step the customer left.
func (u *OrderUseCase) Abandon(ctx context.Context, bundleID, atStep string) (entities.Order, error) {
	atStep = strings.TrimSpace(atStep)
	if atStep == "" {
		return entities.Order{}, invalidField("at_step", "must not be empty")
	}
	return u.closeOrder(ctx, bundleID, entities.OrderStatusAbandoned, atStep)
}

// Reject closes the order with an operator-supplied reason.
func (u *OrderUseCase) Reject(ctx context.Context, bundleID, reason string) (entities.Order, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return entities.Order{}, invalidField("reason", "must not be empty")
	}
	return u.closeOrder(ctx, bundleID, entities.OrderStatusRejected, reason)
}

func (u *OrderUseCase) closeOrder(ctx context.Context, bundleID string, to entities.OrderStatus, detail string) (entities.Order, error) {
	o, err := u.GetByBundleID(ctx, bundleID)
	if err != nil {
		return entities.Order{}, err
	}
	if o.Status.Terminal() {
		return entities.Order{}, ErrInvalidStateTransition
	}

	updated, err := u.repo.Close(ctx, o.BundleID, o.Status, to, detail)
	if err != nil {
		return entities.Order{}, err
	}
	if updated.BundleID == "" {
		return entities.Order{}, ErrInvalidStateTransition
	}
	return updated, nil
}
