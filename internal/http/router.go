// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"easymove/internal/http/handlers"
	"easymove/internal/http/middleware"
	"easymove/internal/modules/distance"
	"easymove/internal/modules/pricing"
	"easymove/internal/payments"
)

func NewRouter(
	pricingSvc *pricing.Service,
	distanceSvc *distance.Service,
	stripeSvc *payments.StripeService,
	paypalClient *payments.PayPalClient,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logging(), middleware.Recovery())

	quoteHandler := handlers.NewQuoteHandler(pricingSvc, distanceSvc)
	r.POST("/api/distance", quoteHandler.Distance)
	r.POST("/api/quotes/calculate", quoteHandler.Calculate)

	paymentHandler := handlers.NewPaymentHandler(stripeSvc, paypalClient)
	r.POST("/api/create-payment-intent", paymentHandler.CreateIntent)
	r.POST("/api/paypal/orders", paymentHandler.CreatePayPalOrder)
	r.POST("/api/paypal/orders/:id/capture", paymentHandler.CapturePayPalOrder)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
