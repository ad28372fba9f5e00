package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"growthbundles/internal/domain/entities"
	"growthbundles/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPendingOrdersTableName = "pending_orders"

type customerItem struct {
	Name    string `dynamodbav:"name"`
	Email   string `dynamodbav:"email"`
	Phone   string `dynamodbav:"phone"`
	Address string `dynamodbav:"address,omitempty"`
}

type agreementItem struct {
	SignatureText  string `dynamodbav:"signature_text"`
	PolicyAccepted bool   `dynamodbav:"policy_accepted"`
	SignedAt       string `dynamodbav:"signed_at"`
	DocumentRef    string `dynamodbav:"document_ref,omitempty"`
}

type discountItem struct {
	Code      string `dynamodbav:"code,omitempty"`
	PctOff    string `dynamodbav:"pct_off,omitempty"`
	AmountOff string `dynamodbav:"amount_off,omitempty"`
}

type orderItem struct {
	BundleID   string            `dynamodbav:"bundle_id"`
	BundleName string            `dynamodbav:"bundle_name"`
	Selection  map[string]string `dynamodbav:"selection"`
	TermMonths int               `dynamodbav:"term_months"`

	RawTotal                string `dynamodbav:"raw_total"`
	FinalMonthly            string `dynamodbav:"final_monthly"`
	BundleDiscountPct       string `dynamodbav:"bundle_discount_pct"`
	SubscriptionDiscountPct string `dynamodbav:"subscription_discount_pct"`

	Customer  *customerItem  `dynamodbav:"customer,omitempty"`
	Agreement *agreementItem `dynamodbav:"agreement,omitempty"`

	PaymentSessionID string        `dynamodbav:"payment_session_id,omitempty"`
	Paid             bool          `dynamodbav:"paid"`
	PaidAt           string        `dynamodbav:"paid_at,omitempty"`
	PaymentDiscount  *discountItem `dynamodbav:"payment_discount,omitempty"`

	AbandonedAtStep string `dynamodbav:"abandoned_at_step,omitempty"`
	RejectReason    string `dynamodbav:"reject_reason,omitempty"`

	Status    string `dynamodbav:"status"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: bundle_id (string)
//
// Every transition is a single conditional UpdateItem guarded on the status
// the caller observed, so the row either moves atomically or the write is
// rejected and reported as a zero-value order.

type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PENDING_ORDERS_TABLE", defaultPendingOrdersTableName),
	}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	it := toOrderItem(o)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Order{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#bundle_id)"),
		ExpressionAttributeNames: map[string]string{
			"#bundle_id": "bundle_id",
		},
	})
	if err != nil {
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByBundleID(ctx context.Context, bundleID string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"bundle_id": &types.AttributeValueMemberS{Value: bundleID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) ReplaceBundle(ctx context.Context, o entities.Order) (entities.Order, error) {
	selection, err := attributevalue.Marshal(o.Selection)
	if err != nil {
		return entities.Order{}, err
	}

	return r.update(ctx, o.BundleID, entities.OrderStatusCreated, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #bundle_name = :bundle_name, #selection = :selection, #term_months = :term_months, " +
			"#raw_total = :raw_total, #final_monthly = :final_monthly, " +
			"#bundle_discount_pct = :bundle_discount_pct, #subscription_discount_pct = :subscription_discount_pct, " +
			"#updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":bundle_name":               &types.AttributeValueMemberS{Value: o.BundleName},
			":selection":                 selection,
			":term_months":               &types.AttributeValueMemberN{Value: strconv.Itoa(o.TermMonths)},
			":raw_total":                 &types.AttributeValueMemberS{Value: floatToString(o.RawTotal)},
			":final_monthly":             &types.AttributeValueMemberS{Value: floatToString(o.FinalMonthly)},
			":bundle_discount_pct":       &types.AttributeValueMemberS{Value: floatToString(o.BundleDiscountPct)},
			":subscription_discount_pct": &types.AttributeValueMemberS{Value: floatToString(o.SubscriptionDiscountPct)},
			":updated_at":                &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#bundle_name":               "bundle_name",
			"#selection":                 "selection",
			"#term_months":               "term_months",
			"#raw_total":                 "raw_total",
			"#final_monthly":             "final_monthly",
			"#bundle_discount_pct":       "bundle_discount_pct",
			"#subscription_discount_pct": "subscription_discount_pct",
			"#updated_at":                "updated_at",
		}
		return expr, vals, names
	})
}

func (r *OrderDynamoRepository) UpdateCustomerInfo(ctx context.Context, bundleID string, from entities.OrderStatus, c entities.CustomerInfo) (entities.Order, error) {
	customer, err := attributevalue.Marshal(customerItem{
		Name:    c.Name,
		Email:   c.Email,
		Phone:   c.Phone,
		Address: c.Address,
	})
	if err != nil {
		return entities.Order{}, err
	}

	return r.update(ctx, bundleID, from, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #customer = :customer, #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":customer":   customer,
			":status":     &types.AttributeValueMemberS{Value: string(entities.OrderStatusCustomerInfoAdded)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#customer":   "customer",
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *OrderDynamoRepository) UpdateAgreement(ctx context.Context, bundleID string, from entities.OrderStatus, a entities.Agreement) (entities.Order, error) {
	agreement, err := attributevalue.Marshal(agreementItem{
		SignatureText:  a.SignatureText,
		PolicyAccepted: a.PolicyAccepted,
		SignedAt:       a.SignedAt.UTC().Format(time.RFC3339Nano),
		DocumentRef:    a.DocumentRef,
	})
	if err != nil {
		return entities.Order{}, err
	}

	return r.update(ctx, bundleID, from, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #agreement = :agreement, #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":agreement":  agreement,
			":status":     &types.AttributeValueMemberS{Value: string(entities.OrderStatusAgreementSigned)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#agreement":  "agreement",
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *OrderDynamoRepository) UpdatePaymentSession(ctx context.Context, bundleID string, from entities.OrderStatus, sessionID string) (entities.Order, error) {
	return r.update(ctx, bundleID, from, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #payment_session_id = :payment_session_id, #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":payment_session_id": &types.AttributeValueMemberS{Value: sessionID},
			":status":             &types.AttributeValueMemberS{Value: string(entities.OrderStatusPaymentInitiated)},
			":updated_at":         &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#payment_session_id": "payment_session_id",
			"#status":             "status",
			"#updated_at":         "updated_at",
		}
		return expr, vals, names
	})
}

func (r *OrderDynamoRepository) MarkPaid(ctx context.Context, bundleID string, from entities.OrderStatus, d entities.PaymentDiscount) (entities.Order, error) {
	discount, err := attributevalue.Marshal(toDiscountItem(d))
	if err != nil {
		return entities.Order{}, err
	}

	return r.update(ctx, bundleID, from, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #paid = :paid, #paid_at = :paid_at, #payment_discount = :payment_discount, #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":paid":             &types.AttributeValueMemberBOOL{Value: true},
			":paid_at":          &types.AttributeValueMemberS{Value: now},
			":payment_discount": discount,
			":status":           &types.AttributeValueMemberS{Value: string(entities.OrderStatusPaid)},
			":updated_at":       &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#paid":             "paid",
			"#paid_at":          "paid_at",
			"#payment_discount": "payment_discount",
			"#status":           "status",
			"#updated_at":       "updated_at",
		}
		return expr, vals, names
	})
}

func (r *OrderDynamoRepository) Close(ctx context.Context, bundleID string, from, to entities.OrderStatus, detail string) (entities.Order, error) {
	detailAttr := "abandoned_at_step"
	if to == entities.OrderStatusRejected {
		detailAttr = "reject_reason"
	}

	return r.update(ctx, bundleID, from, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #detail = :detail, #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":detail":     &types.AttributeValueMemberS{Value: detail},
			":status":     &types.AttributeValueMemberS{Value: string(to)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#detail":     detailAttr,
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *OrderDynamoRepository) update(
	ctx context.Context,
	bundleID string,
	from entities.OrderStatus,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Order, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)

	values[":from_status"] = &types.AttributeValueMemberS{Value: string(from)}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"bundle_id": &types.AttributeValueMemberS{Value: bundleID},
		},
		ConditionExpression:       aws.String("attribute_exists(#bundle_id) AND #status = :from_status"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#bundle_id": "bundle_id", "#status": "status"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Order{}, nil
		}
		return entities.Order{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Order{}, nil
	}
	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func toOrderItem(o entities.Order) orderItem {
	it := orderItem{
		BundleID:                o.BundleID,
		BundleName:              o.BundleName,
		Selection:               o.Selection,
		TermMonths:              o.TermMonths,
		RawTotal:                floatToString(o.RawTotal),
		FinalMonthly:            floatToString(o.FinalMonthly),
		BundleDiscountPct:       floatToString(o.BundleDiscountPct),
		SubscriptionDiscountPct: floatToString(o.SubscriptionDiscountPct),
		PaymentSessionID:        o.Payment.SessionID,
		Paid:                    o.Payment.Paid,
		AbandonedAtStep:         o.AbandonedAtStep,
		RejectReason:            o.RejectReason,
		Status:                  string(o.Status),
		CreatedAt:               o.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:               o.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if o.Customer != (entities.CustomerInfo{}) {
		it.Customer = &customerItem{
			Name:    o.Customer.Name,
			Email:   o.Customer.Email,
			Phone:   o.Customer.Phone,
			Address: o.Customer.Address,
		}
	}
	if o.Agreement.SignatureText != "" {
		it.Agreement = &agreementItem{
			SignatureText:  o.Agreement.SignatureText,
			PolicyAccepted: o.Agreement.PolicyAccepted,
			SignedAt:       o.Agreement.SignedAt.UTC().Format(time.RFC3339Nano),
			DocumentRef:    o.Agreement.DocumentRef,
		}
	}
	if !o.Payment.PaidAt.IsZero() {
		it.PaidAt = o.Payment.PaidAt.UTC().Format(time.RFC3339Nano)
	}
	if o.Payment.Discount != (entities.PaymentDiscount{}) {
		d := toDiscountItem(o.Payment.Discount)
		it.PaymentDiscount = &d
	}
	return it
}

func fromOrderItem(it orderItem) entities.Order {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	o := entities.Order{
		BundleID:                it.BundleID,
		BundleName:              it.BundleName,
		Selection:               it.Selection,
		TermMonths:              it.TermMonths,
		RawTotal:                stringToFloat(it.RawTotal),
		FinalMonthly:            stringToFloat(it.FinalMonthly),
		BundleDiscountPct:       stringToFloat(it.BundleDiscountPct),
		SubscriptionDiscountPct: stringToFloat(it.SubscriptionDiscountPct),
		AbandonedAtStep:         it.AbandonedAtStep,
		RejectReason:            it.RejectReason,
		Status:                  entities.OrderStatus(it.Status),
		CreatedAt:               createdAt,
		UpdatedAt:               updatedAt,
	}
	if it.Customer != nil {
		o.Customer = entities.CustomerInfo{
			Name:    it.Customer.Name,
			Email:   it.Customer.Email,
			Phone:   it.Customer.Phone,
			Address: it.Customer.Address,
		}
	}
	if it.Agreement != nil {
		signedAt, _ := time.Parse(time.RFC3339Nano, it.Agreement.SignedAt)
		o.Agreement = entities.Agreement{
			SignatureText:  it.Agreement.SignatureText,
			PolicyAccepted: it.Agreement.PolicyAccepted,
			SignedAt:       signedAt,
			DocumentRef:    it.Agreement.DocumentRef,
		}
	}
	o.Payment.SessionID = it.PaymentSessionID
	o.Payment.Paid = it.Paid
	if it.PaidAt != "" {
		paidAt, _ := time.Parse(time.RFC3339Nano, it.PaidAt)
		o.Payment.PaidAt = paidAt
	}
	if it.PaymentDiscount != nil {
		o.Payment.Discount = entities.PaymentDiscount{
			Code:      it.PaymentDiscount.Code,
			PctOff:    stringToFloat(it.PaymentDiscount.PctOff),
			AmountOff: stringToFloat(it.PaymentDiscount.AmountOff),
		}
	}
	return o
}

func toDiscountItem(d entities.PaymentDiscount) discountItem {
	it := discountItem{Code: d.Code}
	if d.PctOff != 0 {
		it.PctOff = floatToString(d.PctOff)
	}
	if d.AmountOff != 0 {
		it.AmountOff = floatToString(d.AmountOff)
	}
	return it
}
