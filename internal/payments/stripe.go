// README: Stripe payment-intent creation for quote checkout.
package payments

import (
	"context"
	"errors"
	"strings"

	stripe "github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/paymentintent"

	"easymove/internal/types"
)

// ErrPaymentsDisabled is returned when no Stripe key is configured.
var ErrPaymentsDisabled = errors.New("payment processing unavailable")

type StripeService struct {
	enabled bool
}

// NewStripeService configures the Stripe SDK. An empty key leaves the service
// disabled rather than failing startup.
func NewStripeService(secretKey string) *StripeService {
	if secretKey == "" {
		return &StripeService{}
	}
	stripe.Key = secretKey
	return &StripeService{enabled: true}
}

func (s *StripeService) Enabled() bool {
	return s.enabled
}

// CreateIntent charges the quoted total, already converted to minor units,
// and returns the client secret for checkout.
func (s *StripeService) CreateIntent(ctx context.Context, amount types.Money, bookingRef string) (string, error) {
	if !s.enabled {
		return "", ErrPaymentsDisabled
	}
	if amount.Amount <= 0 {
		return "", errors.New("valid amount is required")
	}

	params := &stripe.PaymentIntentParams{
		Params:   stripe.Params{Context: ctx},
		Amount:   stripe.Int64(amount.Amount),
		Currency: stripe.String(strings.ToLower(amount.Currency)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.AddMetadata("booking_ref", bookingRef)

	pi, err := paymentintent.New(params)
	if err != nil {
		return "", err
	}
	return pi.ClientSecret, nil
}
