package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	request "growthbundles/internal/adapter/http/dto/request"
	response "growthbundles/internal/adapter/http/dto/response"
	"growthbundles/internal/domain/entities"
	"growthbundles/internal/domain/pricing"
	"growthbundles/internal/usecase"
	"growthbundles/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)
)

// OrderHandler handles HTTP requests for the bundle order lifecycle.
//
// Each endpoint maps onto exactly one lifecycle transition; there is no
// shared action discriminator.

type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// CreateOrder saves a bundle selection and prices it.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var payload request.CreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.CreateOrder(c.Request.Context(), usecase.CreateOrderInput{
		BundleID:   payload.BundleID,
		BundleName: payload.BundleName,
		Selection:  payload.Selection,
		TermMonths: payload.TermMonths,
	})
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromOrder(order))
}

// GetOrder returns an order by bundle id.
func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.usecase.GetByBundleID(c.Request.Context(), c.Param("bundle_id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

// RecordCustomerInfo merges the contact form into the order.
func (h *OrderHandler) RecordCustomerInfo(c *gin.Context) {
	var payload request.CustomerInfoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.RecordCustomerInfo(c.Request.Context(), c.Param("bundle_id"), entities.CustomerInfo{
		Name:    payload.Name,
		Email:   payload.Email,
		Phone:   payload.Phone,
		Address: payload.Address,
	})
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

// RecordAgreement stores the signed contract.
func (h *OrderHandler) RecordAgreement(c *gin.Context) {
	var payload request.AgreementRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	var signedAt time.Time
	if payload.SignedAt != "" {
		parsed, err := time.Parse(time.RFC3339, payload.SignedAt)
		if err != nil {
			c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
			return
		}
		signedAt = parsed
	}

	order, err := h.usecase.RecordAgreement(c.Request.Context(), c.Param("bundle_id"), payload.SignatureText, payload.PolicyAccepted, signedAt)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

// InitiatePayment creates a checkout session and returns the redirect URL.
func (h *OrderHandler) InitiatePayment(c *gin.Context) {
	bundleID := c.Param("bundle_id")
	log.Printf("[order][handler] payment-session start bundle_id=%s", bundleID)

	var payload request.PaymentSessionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[order][handler] invalid payment-session payload bundle_id=%s err=%v", bundleID, err)
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, redirectURL, err := h.usecase.InitiatePayment(c.Request.Context(), bundleID, payload.SuccessURL, payload.CancelURL)
	if err != nil {
		log.Printf("[order][handler] payment-session failed bundle_id=%s err=%v", bundleID, err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[order][handler] payment-session success bundle_id=%s session_id=%s", bundleID, order.Payment.SessionID)

	c.JSON(http.StatusOK, response.PaymentSessionResponse{
		Order:       response.FromOrder(order),
		RedirectURL: redirectURL,
	})
}

// ConfirmPayment applies the provider's completion event.
func (h *OrderHandler) ConfirmPayment(c *gin.Context) {
	bundleID := c.Param("bundle_id")
	log.Printf("[order][handler] payment-confirmation start bundle_id=%s", bundleID)

	var payload request.PaymentConfirmationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[order][handler] invalid confirmation payload bundle_id=%s err=%v", bundleID, err)
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	in := usecase.ConfirmPaymentInput{SessionID: payload.SessionID}
	if payload.Discount != nil {
		in.Discount = entities.PaymentDiscount{
			Code:      payload.Discount.Code,
			PctOff:    payload.Discount.PctOff,
			AmountOff: payload.Discount.AmountOff,
		}
	}

	order, err := h.usecase.ConfirmPayment(c.Request.Context(), bundleID, in)
	if err != nil {
		log.Printf("[order][handler] payment-confirmation failed bundle_id=%s err=%v", bundleID, err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[order][handler] payment-confirmation success bundle_id=%s status=%s", bundleID, order.Status)

	c.JSON(http.StatusOK, response.FromOrder(order))
}

// Abandon closes an order the customer walked away from.
func (h *OrderHandler) Abandon(c *gin.Context) {
	var payload request.AbandonRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.Abandon(c.Request.Context(), c.Param("bundle_id"), payload.AtStep)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

// Reject closes an order with a reason.
func (h *OrderHandler) Reject(c *gin.Context) {
	var payload request.RejectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.Reject(c.Request.Context(), c.Param("bundle_id"), payload.Reason)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

func mapOrderError(err error) *pkg.AppError {
	var ve *usecase.ValidationError
	switch {
	case errors.As(err, &ve):
		return pkg.NewDomainErrorSimple("VALIDATION_FAILED", "Invalid field: "+ve.Field, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidBundleID),
		errors.Is(err, pricing.ErrInvalidTerm),
		errors.Is(err, pricing.ErrInvalidTier),
		errors.Is(err, pricing.ErrPriceNotInCatalog):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidStateTransition):
		return pkg.NewDomainErrorSimple("INVALID_STATE_TRANSITION", "Order is not in a compatible status", http.StatusConflict)
	case errors.Is(err, usecase.ErrSessionMismatch):
		return pkg.NewDomainErrorSimple("SESSION_MISMATCH", "Unknown payment session for this order", http.StatusConflict)
	case errors.Is(err, usecase.ErrPriceNotComputed):
		return pkg.NewDomainErrorSimple("PRICE_NOT_COMPUTED", "Order has no payable price", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentProviderMissing):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
