package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"growthbundles/internal/adapter/http/handlers/mocks"
	"growthbundles/internal/domain/entities"
	"growthbundles/internal/domain/pricing"
	"growthbundles/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestOrderHandler_CreateOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders", h.CreateOrder)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing bundle name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders", h.CreateOrder)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(`{"term_months":3,"selection":{"SEO":"Base"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders", h.CreateOrder)

		uc.EXPECT().CreateOrder(gomock.Any(), usecase.CreateOrderInput{
			BundleName: "Growth",
			Selection:  map[string]string{"SEO": "Base", "Meta Ads": "Base"},
			TermMonths: 3,
		}).Return(entities.Order{
			BundleID:     "b-1",
			BundleName:   "Growth",
			Status:       entities.OrderStatusCreated,
			FinalMonthly: 1544.3999999,
		}, nil)

		body := `{"bundle_name":"Growth","selection":{"SEO":"Base","Meta Ads":"Base"},"term_months":3}`
		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}

		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["bundle_id"] != "b-1" || resp["status"] != "CREATED" {
			t.Fatalf("unexpected response: %v", resp)
		}
		// Display rounding happens at the response boundary.
		if resp["final_monthly"] != 1544.40 {
			t.Fatalf("expected rounded price, got %v", resp["final_monthly"])
		}
	})

	t.Run("pricing error maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders", h.CreateOrder)

		uc.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(entities.Order{}, pricing.ErrInvalidTerm)

		body := `{"bundle_name":"Growth","selection":{"SEO":"Base"},"term_months":3}`
		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestOrderHandler_RecordCustomerInfo(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("binding rejects malformed email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.PATCH("/v1/orders/:bundle_id/customer", h.RecordCustomerInfo)

		body := `{"name":"Jane Roe","email":"nope","phone":"1"}`
		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/b-1/customer", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.PATCH("/v1/orders/:bundle_id/customer", h.RecordCustomerInfo)

		info := entities.CustomerInfo{Name: "Jane Roe", Email: "jane@example.com", Phone: "+1 555 0100"}
		uc.EXPECT().RecordCustomerInfo(gomock.Any(), "b-1", info).
			Return(entities.Order{BundleID: "b-1", Status: entities.OrderStatusCustomerInfoAdded, Customer: info}, nil)

		body := `{"name":"Jane Roe","email":"jane@example.com","phone":"+1 555 0100"}`
		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/b-1/customer", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("not found maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.PATCH("/v1/orders/:bundle_id/customer", h.RecordCustomerInfo)

		uc.EXPECT().RecordCustomerInfo(gomock.Any(), "missing", gomock.Any()).
			Return(entities.Order{}, usecase.ErrOrderNotFound)

		body := `{"name":"Jane Roe","email":"jane@example.com","phone":"1"}`
		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/missing/customer", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestOrderHandler_RecordAgreement(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("signature mismatch maps to 400 with field", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.PATCH("/v1/orders/:bundle_id/agreement", h.RecordAgreement)

		uc.EXPECT().RecordAgreement(gomock.Any(), "b-1", "John Doe", true, gomock.Any()).
			Return(entities.Order{}, &usecase.ValidationError{Field: "signature_text", Reason: "must match the customer name"})

		body := `{"signature_text":"John Doe","policy_accepted":true}`
		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/b-1/agreement", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}

		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["code"] != "VALIDATION_FAILED" {
			t.Fatalf("unexpected error code: %v", resp["code"])
		}
	})

	t.Run("bad signed_at timestamp", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.PATCH("/v1/orders/:bundle_id/agreement", h.RecordAgreement)

		body := `{"signature_text":"Jane Roe","policy_accepted":true,"signed_at":"yesterday"}`
		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/b-1/agreement", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestOrderHandler_PaymentFlow(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("initiate returns redirect url", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders/:bundle_id/payment-session", h.InitiatePayment)

		uc.EXPECT().InitiatePayment(gomock.Any(), "b-1", "https://shop/success", "https://shop/cancel").
			Return(entities.Order{
				BundleID: "b-1",
				Status:   entities.OrderStatusPaymentInitiated,
				Payment:  entities.PaymentInfo{SessionID: "sess-1"},
			}, "https://pay.example/sess-1", nil)

		body := `{"success_url":"https://shop/success","cancel_url":"https://shop/cancel"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/orders/b-1/payment-session", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["redirect_url"] != "https://pay.example/sess-1" {
			t.Fatalf("unexpected redirect: %v", resp["redirect_url"])
		}
	})

	t.Run("out-of-order confirmation maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders/:bundle_id/payment-confirmation", h.ConfirmPayment)

		uc.EXPECT().ConfirmPayment(gomock.Any(), "b-1", usecase.ConfirmPaymentInput{SessionID: "sess-1"}).
			Return(entities.Order{}, usecase.ErrInvalidStateTransition)

		body := `{"session_id":"sess-1"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/orders/b-1/payment-confirmation", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("confirmation with discount metadata", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders/:bundle_id/payment-confirmation", h.ConfirmPayment)

		uc.EXPECT().ConfirmPayment(gomock.Any(), "b-1", usecase.ConfirmPaymentInput{
			SessionID: "sess-1",
			Discount:  entities.PaymentDiscount{Code: "LAUNCH10", PctOff: 10},
		}).Return(entities.Order{BundleID: "b-1", Status: entities.OrderStatusPaid, Payment: entities.PaymentInfo{Paid: true, SessionID: "sess-1"}}, nil)

		body := `{"session_id":"sess-1","discount":{"code":"LAUNCH10","pct_off":10}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/orders/b-1/payment-confirmation", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestOrderHandler_CloseEndpoints(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("abandon", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.PATCH("/v1/orders/:bundle_id/abandon", h.Abandon)

		uc.EXPECT().Abandon(gomock.Any(), "b-1", "agreement").
			Return(entities.Order{BundleID: "b-1", Status: entities.OrderStatusAbandoned, AbandonedAtStep: "agreement"}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/b-1/abandon", bytes.NewBufferString(`{"at_step":"agreement"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("reject on terminal order maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.PATCH("/v1/orders/:bundle_id/reject", h.Reject)

		uc.EXPECT().Reject(gomock.Any(), "b-1", "duplicate").
			Return(entities.Order{}, usecase.ErrInvalidStateTransition)

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/b-1/reject", bytes.NewBufferString(`{"reason":"duplicate"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestOrderHandler_GetOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/orders/:bundle_id", h.GetOrder)

		uc.EXPECT().GetByBundleID(gomock.Any(), "b-1").
			Return(entities.Order{BundleID: "b-1", Status: entities.OrderStatusPaid}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/b-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("unexpected error maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/orders/:bundle_id", h.GetOrder)

		uc.EXPECT().GetByBundleID(gomock.Any(), "b-1").Return(entities.Order{}, errors.New("db down"))

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/b-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
