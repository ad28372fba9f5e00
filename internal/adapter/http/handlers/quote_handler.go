package handlers

import (
	"net/http"

	request "growthbundles/internal/adapter/http/dto/request"
	response "growthbundles/internal/adapter/http/dto/response"
	"growthbundles/internal/domain/pricing"
	"growthbundles/pkg"

	"github.com/gin-gonic/gin"
)

// QuoteHandler prices bundles without touching the order store. The storefront
// calls it on every selection change.

type QuoteHandler struct {
	catalog pricing.Catalog
}

func NewQuoteHandler(catalog pricing.Catalog) *QuoteHandler {
	if catalog == nil {
		catalog = pricing.DefaultCatalog()
	}
	return &QuoteHandler{catalog: catalog}
}

// CreateQuote computes the discounted monthly price for a selection and term.
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	sel := make(pricing.Selection, len(payload.Selection))
	for service, tier := range payload.Selection {
		sel[service] = pricing.Tier(tier)
	}

	quote, err := pricing.ComputeFinalPrice(sel, payload.TermMonths, h.catalog)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}
