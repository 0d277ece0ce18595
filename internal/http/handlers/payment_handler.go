// README: Payment-intent and PayPal order handlers.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"easymove/internal/payments"
	"easymove/internal/types"
)

type PaymentHandler struct {
	stripe *payments.StripeService
	paypal *payments.PayPalClient
}

func NewPaymentHandler(stripeSvc *payments.StripeService, paypalClient *payments.PayPalClient) *PaymentHandler {
	return &PaymentHandler{stripe: stripeSvc, paypal: paypalClient}
}

type createIntentReq struct {
	Amount     float64 `json:"amount" binding:"required,gt=0"`
	BookingRef string  `json:"bookingRef"`
}

// CreateIntent handles POST /api/create-payment-intent. The amount is the
// quoted 2-decimal total in pounds; conversion to pence happens here.
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	var req createIntentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "valid amount is required")
		return
	}
	if !h.stripe.Enabled() {
		writeError(c, http.StatusServiceUnavailable, "payment processing unavailable")
		return
	}
	if req.BookingRef == "" {
		req.BookingRef = uuid.NewString()
	}

	secret, err := h.stripe.CreateIntent(c.Request.Context(), types.FromPounds(req.Amount), req.BookingRef)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "failed to create payment intent")
		return
	}
	writeJSON(c, http.StatusOK, gin.H{
		"clientSecret": secret,
		"bookingRef":   req.BookingRef,
	})
}

type createPayPalOrderReq struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

// CreatePayPalOrder handles POST /api/paypal/orders.
func (h *PaymentHandler) CreatePayPalOrder(c *gin.Context) {
	var req createPayPalOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "valid amount is required")
		return
	}
	if !h.paypal.Enabled() {
		writeError(c, http.StatusServiceUnavailable, "payment processing unavailable")
		return
	}

	orderID, err := h.paypal.CreateOrder(c.Request.Context(), types.FromPounds(req.Amount))
	if err != nil {
		writeError(c, http.StatusInternalServerError, "failed to create paypal order")
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"orderID": orderID})
}

// CapturePayPalOrder handles POST /api/paypal/orders/:id/capture.
func (h *PaymentHandler) CapturePayPalOrder(c *gin.Context) {
	orderID := c.Param("id")
	if orderID == "" {
		writeError(c, http.StatusBadRequest, "missing order id")
		return
	}
	if !h.paypal.Enabled() {
		writeError(c, http.StatusServiceUnavailable, "payment processing unavailable")
		return
	}

	status, err := h.paypal.CaptureOrder(c.Request.Context(), orderID)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "failed to capture paypal order")
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"status": status})
}
