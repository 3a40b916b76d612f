// utils/payment.go
package utils

import (
	"fmt"
	"math"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/paymentintent"
)

// MinimumChargeAmount is the processor's stated floor in minor currency
// units; anything below it is rejected before reaching the processor.
const MinimumChargeAmount = 50

// PaymentService creates payment intents against Stripe
type PaymentService struct{}

// NewPaymentService sets the account key and returns a PaymentService
func NewPaymentService(secretKey string) *PaymentService {
	if secretKey == "" {
		panic("STRIPE_SECRET_KEY is not set in environment variables")
	}
	stripe.Key = secretKey
	return &PaymentService{}
}

// ChargeAmount converts a unit price and quantity into minor currency
// units (cents). The unit price is rounded to a whole number of cents
// first so that 10.00 * 3 is exactly 3000, not a float artifact.
func ChargeAmount(unitPrice float64, quantity int) int64 {
	return int64(math.Round(unitPrice*100)) * int64(quantity)
}

// CreateIntent creates a payment intent for the given amount in minor
// units and returns the client secret for the checkout page.
func (ps *PaymentService) CreateIntent(amount int64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(string(stripe.CurrencyUSD)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	pi, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create payment intent: %w", err)
	}
	return pi.ClientSecret, nil
}
