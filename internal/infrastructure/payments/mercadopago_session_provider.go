package payments

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"growthbundles/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoProviderNotConfigured = errors.New("mercado pago session provider not configured")

// MercadoPagoSessionProvider creates Checkout Pro preferences for bundle
// orders. The preference id becomes the order's payment session id and the
// init point is the redirect URL handed back to the storefront.
type MercadoPagoSessionProvider struct {
	client   preference.Client
	mockMode bool
}

var _ interfaces.IPaymentSessionProvider = (*MercadoPagoSessionProvider)(nil)

func NewMercadoPagoSessionProvider(accessToken string) (*MercadoPagoSessionProvider, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][provider] mock mode enabled")
		return &MercadoPagoSessionProvider{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[payment][provider] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][provider] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][provider] Mercado Pago client initialized")

	return &MercadoPagoSessionProvider{client: preference.NewClient(cfg)}, nil
}

func (p *MercadoPagoSessionProvider) CreateSession(ctx context.Context, req interfaces.SessionRequest) (interfaces.SessionResult, error) {
	if p != nil && p.mockMode {
		id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		log.Printf("[payment][provider] mock session created bundle_id=%s session_id=%s", req.BundleID, id)
		return interfaces.SessionResult{
			SessionID:   id,
			RedirectURL: fmt.Sprintf("https://sandbox.mercadopago.local/checkout/%s", id),
		}, nil
	}

	if p == nil || p.client == nil {
		log.Printf("[payment][provider] provider not configured")
		return interfaces.SessionResult{}, ErrMercadoPagoProviderNotConfigured
	}
	log.Printf("[payment][provider] create session start bundle_id=%s amount=%.2f", req.BundleID, req.AmountMonthly)

	prefReq := preference.Request{
		Items: []preference.ItemRequest{
			{
				ID:          req.BundleID,
				Title:       req.Description,
				Description: fmt.Sprintf("Monthly marketing bundle, %d month commitment", req.TermMonths),
				Quantity:    1,
				UnitPrice:   req.AmountMonthly,
			},
		},
		ExternalReference: req.BundleID,
		BackURLs: &preference.BackURLsRequest{
			Success: req.SuccessURL,
			Pending: req.SuccessURL,
			Failure: req.CancelURL,
		},
		AutoReturn: "approved",
	}

	resp, err := p.client.Create(ctx, prefReq)
	if err != nil {
		log.Printf("[payment][provider] sdk create failed bundle_id=%s err=%v", req.BundleID, err)
		return interfaces.SessionResult{}, err
	}
	log.Printf("[payment][provider] create session success bundle_id=%s session_id=%s", req.BundleID, resp.ID)

	return interfaces.SessionResult{
		SessionID:   resp.ID,
		RedirectURL: resp.InitPoint,
	}, nil
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
