package interfaces

import (
	"context"
	"growthbundles/internal/domain/entities"
)

// IOrderRepository abstracts DynamoDB persistence for Order.
//
// Every mutating call except Create and ReplaceBundle carries the status the
// caller observed; the store applies the update only if the row still holds
// that status, so concurrent transitions on the same bundle id cannot both
// land. A zero-value Order return with a nil error means the conditional
// check failed (row missing or status moved underneath the caller).

type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByBundleID(ctx context.Context, bundleID string) (entities.Order, error)

	// ReplaceBundle re-saves the selection, term and pricing snapshot of an
	// order that is still in CREATED.
	ReplaceBundle(ctx context.Context, o entities.Order) (entities.Order, error)

	UpdateCustomerInfo(ctx context.Context, bundleID string, from entities.OrderStatus, c entities.CustomerInfo) (entities.Order, error)
	UpdateAgreement(ctx context.Context, bundleID string, from entities.OrderStatus, a entities.Agreement) (entities.Order, error)
	UpdatePaymentSession(ctx context.Context, bundleID string, from entities.OrderStatus, sessionID string) (entities.Order, error)
	MarkPaid(ctx context.Context, bundleID string, from entities.OrderStatus, d entities.PaymentDiscount) (entities.Order, error)
	Close(ctx context.Context, bundleID string, from entities.OrderStatus, to entities.OrderStatus, detail string) (entities.Order, error)
}
