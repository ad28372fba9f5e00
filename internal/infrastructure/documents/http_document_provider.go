package documents

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"growthbundles/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// HTTPDocumentProvider submits signed agreements to an external e-signature
// service as JSON and returns the reference the service assigns.
//
// Env vars:
//   - DOCUMENT_PROVIDER_URL  endpoint receiving the agreement payload
//   - DOCUMENT_PROVIDER_MOCK enable mock mode (no network calls)
type HTTPDocumentProvider struct {
	endpoint string
	client   *http.Client
	mockMode bool
}

var _ interfaces.IDocumentProvider = (*HTTPDocumentProvider)(nil)

// NewHTTPDocumentProvider returns nil when neither an endpoint nor mock mode
// is configured; the agreement step then simply skips the provider.
func NewHTTPDocumentProvider() *HTTPDocumentProvider {
	if isMockEnabled("DOCUMENT_PROVIDER_MOCK") {
		log.Printf("[document][provider] mock mode enabled")
		return &HTTPDocumentProvider{mockMode: true}
	}

	endpoint := strings.TrimSpace(os.Getenv("DOCUMENT_PROVIDER_URL"))
	if endpoint == "" {
		log.Printf("[document][provider] DOCUMENT_PROVIDER_URL not set; agreements will not be submitted")
		return nil
	}

	return &HTTPDocumentProvider{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 15 * time.Second},
	}
}

type agreementPayload struct {
	BundleID      string  `json:"bundle_id"`
	BundleName    string  `json:"bundle_name"`
	CustomerName  string  `json:"customer_name"`
	CustomerEmail string  `json:"customer_email"`
	SignatureText string  `json:"signature_text"`
	SignedAt      string  `json:"signed_at"`
	MonthlyPrice  float64 `json:"monthly_price"`
	TermMonths    int     `json:"term_months"`
}

type agreementReceipt struct {
	DocumentRef string `json:"document_ref"`
	ID          string `json:"id"`
}

func (p *HTTPDocumentProvider) SubmitAgreement(ctx context.Context, sub interfaces.AgreementSubmission) (string, error) {
	if p.mockMode {
		ref := "doc-" + uuid.NewString()
		log.Printf("[document][provider] mock submit bundle_id=%s document_ref=%s", sub.BundleID, ref)
		return ref, nil
	}

	body, err := json.Marshal(agreementPayload{
		BundleID:      sub.BundleID,
		BundleName:    sub.BundleName,
		CustomerName:  sub.CustomerName,
		CustomerEmail: sub.CustomerEmail,
		SignatureText: sub.SignatureText,
		SignedAt:      sub.SignedAt.Format(time.RFC3339Nano),
		MonthlyPrice:  sub.MonthlyPrice,
		TermMonths:    sub.TermMonths,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		log.Printf("[document][provider] submit failed bundle_id=%s err=%v", sub.BundleID, err)
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("[document][provider] submit rejected bundle_id=%s status=%d", sub.BundleID, resp.StatusCode)
		return "", fmt.Errorf("document provider returned status %d", resp.StatusCode)
	}

	var receipt agreementReceipt
	if err := json.Unmarshal(raw, &receipt); err != nil {
		return "", fmt.Errorf("document provider returned invalid body: %w", err)
	}
	ref := receipt.DocumentRef
	if ref == "" {
		ref = receipt.ID
	}
	if ref == "" {
		return "", fmt.Errorf("document provider returned no reference")
	}
	log.Printf("[document][provider] submit success bundle_id=%s document_ref=%s", sub.BundleID, ref)
	return ref, nil
}

func isMockEnabled(key string) bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
