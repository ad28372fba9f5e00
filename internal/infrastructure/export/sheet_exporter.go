package export

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"sort"
	"strings"
	"time"

	"growthbundles/internal/domain/entities"
	"growthbundles/internal/usecase/interfaces"
)

// SheetExporter posts one flattened row per paid order to a spreadsheet
// web-app endpoint.
//
// Env vars:
//   - SHEET_EXPORT_URL  endpoint receiving the row payload
//   - SHEET_EXPORT_MOCK enable mock mode (log only)
type SheetExporter struct {
	endpoint string
	client   *http.Client
	mockMode bool
}

var _ interfaces.IOrderExporter = (*SheetExporter)(nil)

// NewSheetExporter returns nil when neither an endpoint nor mock mode is
// configured; paid orders are then simply not exported.
func NewSheetExporter() *SheetExporter {
	if isMockEnabled("SHEET_EXPORT_MOCK") {
		log.Printf("[export][sheet] mock mode enabled")
		return &SheetExporter{mockMode: true}
	}

	endpoint := strings.TrimSpace(os.Getenv("SHEET_EXPORT_URL"))
	if endpoint == "" {
		log.Printf("[export][sheet] SHEET_EXPORT_URL not set; paid orders will not be exported")
		return nil
	}

	return &SheetExporter{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 15 * time.Second},
	}
}

type orderRow struct {
	BundleID                string `json:"bundle_id"`
	BundleName              string `json:"bundle_name"`
	Services                string `json:"services"`
	TermMonths              int    `json:"term_months"`
	FinalMonthly            string `json:"final_monthly"`
	BundleDiscountPct       string `json:"bundle_discount_pct"`
	SubscriptionDiscountPct string `json:"subscription_discount_pct"`
	CustomerName            string `json:"customer_name"`
	CustomerEmail           string `json:"customer_email"`
	CustomerPhone           string `json:"customer_phone"`
	DiscountCode            string `json:"discount_code,omitempty"`
	PaidAt                  string `json:"paid_at"`
}

func (e *SheetExporter) ExportOrder(ctx context.Context, o entities.Order) error {
	row := toOrderRow(o)

	if e.mockMode {
		log.Printf("[export][sheet] mock export bundle_id=%s services=%q", o.BundleID, row.Services)
		return nil
	}

	body, err := json.Marshal(row)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<20))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("sheet export returned status %d", resp.StatusCode)
	}
	log.Printf("[export][sheet] export success bundle_id=%s", o.BundleID)
	return nil
}

func toOrderRow(o entities.Order) orderRow {
	services := make([]string, 0, len(o.Selection))
	for service, tier := range o.Selection {
		services = append(services, service+": "+tier)
	}
	sort.Strings(services)

	row := orderRow{
		BundleID:                o.BundleID,
		BundleName:              o.BundleName,
		Services:                strings.Join(services, ", "),
		TermMonths:              o.TermMonths,
		FinalMonthly:            fmt.Sprintf("%.2f", o.FinalMonthly),
		BundleDiscountPct:       fmt.Sprintf("%g", o.BundleDiscountPct),
		SubscriptionDiscountPct: fmt.Sprintf("%g", o.SubscriptionDiscountPct),
		CustomerName:            o.Customer.Name,
		CustomerEmail:           o.Customer.Email,
		CustomerPhone:           o.Customer.Phone,
		DiscountCode:            o.Payment.Discount.Code,
	}
	if !o.Payment.PaidAt.IsZero() {
		row.PaidAt = o.Payment.PaidAt.UTC().Format(time.RFC3339)
	}
	return row
}

func isMockEnabled(key string) bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
