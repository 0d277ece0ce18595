// README: Quote calculation and distance handlers.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"easymove/internal/modules/distance"
	"easymove/internal/modules/pricing"
)

type QuoteHandler struct {
	pricing  *pricing.Service
	distance *distance.Service
}

func NewQuoteHandler(pricingSvc *pricing.Service, distanceSvc *distance.Service) *QuoteHandler {
	return &QuoteHandler{pricing: pricingSvc, distance: distanceSvc}
}

type distanceReq struct {
	Origin      string `json:"origin" binding:"required"`
	Destination string `json:"destination" binding:"required"`
}

// Distance handles POST /api/distance.
func (h *QuoteHandler) Distance(c *gin.Context) {
	var req distanceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "origin and destination are required")
		return
	}
	res := h.distance.Resolve(c.Request.Context(), req.Origin, req.Destination)
	writeJSON(c, http.StatusOK, res)
}

type calculateQuoteReq struct {
	PickupAddress   string    `json:"pickupAddress" binding:"required"`
	DeliveryAddress string    `json:"deliveryAddress" binding:"required"`
	VanSize         string    `json:"vanSize"`
	MoveDate        time.Time `json:"moveDate"`
	EstimatedHours  float64   `json:"estimatedHours"`
	Helpers         int       `json:"helpers"`
	FloorAccess     string    `json:"floorAccess"`
	LiftAvailable   bool      `json:"liftAvailable"`
	Urgency         string    `json:"urgency"`
}

type quoteResponse struct {
	QuoteRef string                  `json:"quoteRef"`
	Quote    *pricing.PriceBreakdown `json:"quote"`
	Distance distance.Result         `json:"distance"`
	Currency string                  `json:"currency"`
}

// Calculate handles POST /api/quotes/calculate: resolves the distance (live
// or fallback), then builds the price breakdown.
func (h *QuoteHandler) Calculate(c *gin.Context) {
	var req calculateQuoteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	res := h.distance.Resolve(c.Request.Context(), req.PickupAddress, req.DeliveryAddress)

	breakdown, err := h.pricing.BuildBreakdown(pricing.QuoteParams{
		PickupAddress:   req.PickupAddress,
		DeliveryAddress: req.DeliveryAddress,
		DistanceMiles:   res.Miles,
		VanSize:         pricing.VanSize(req.VanSize),
		MoveDate:        req.MoveDate,
		EstimatedHours:  req.EstimatedHours,
		Helpers:         req.Helpers,
		FloorAccess:     pricing.FloorAccess(req.FloorAccess),
		LiftAvailable:   req.LiftAvailable,
		Urgency:         pricing.Urgency(req.Urgency),
		DurationMinutes: float64(res.DurationMinutes),
	})
	if err != nil {
		writeQuoteError(c, err)
		return
	}

	writeJSON(c, http.StatusOK, quoteResponse{
		QuoteRef: uuid.NewString(),
		Quote:    breakdown,
		Distance: res,
		Currency: breakdown.Currency,
	})
}
