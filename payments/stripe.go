// Package payments wraps the hosted-checkout provider. Controllers depend on
// the Provider interface so order flow can be exercised without Stripe.
package payments

import (
	"fmt"

	"github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/checkout/session"
	"github.com/stripe/stripe-go/v80/webhook"
)

// LineItem is one cart line priced in integer cents, the unit Stripe expects.
type LineItem struct {
	Name       string
	Image      string
	UnitAmount int64
	Quantity   int64
}

// CheckoutSession identifies a hosted checkout page.
type CheckoutSession struct {
	ID  string
	URL string
}

type Provider interface {
	CreateCheckoutSession(userID, email string, items []LineItem) (*CheckoutSession, error)
	ConstructWebhookEvent(payload []byte, sigHeader string) (stripe.Event, error)
}

// StripeProvider talks to the real Stripe API.
type StripeProvider struct {
	secretKey     string
	webhookSecret string
	frontendURL   string
}

func NewStripeProvider(secretKey, webhookSecret, frontendURL string) *StripeProvider {
	return &StripeProvider{
		secretKey:     secretKey,
		webhookSecret: webhookSecret,
		frontendURL:   frontendURL,
	}
}

// CreateCheckoutSession requests a hosted card-payment page for the given
// line items. The session id comes back to us later on the webhook.
func (p *StripeProvider) CreateCheckoutSession(userID, email string, items []LineItem) (*CheckoutSession, error) {
	stripe.Key = p.secretKey

	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(items))
	for _, item := range items {
		priceData := &stripe.CheckoutSessionLineItemPriceDataParams{
			Currency:   stripe.String("usd"),
			UnitAmount: stripe.Int64(item.UnitAmount),
			ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
				Name: stripe.String(item.Name),
			},
		}
		if item.Image != "" {
			priceData.ProductData.Images = []*string{stripe.String(item.Image)}
		}
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: priceData,
			Quantity:  stripe.Int64(item.Quantity),
		})
	}

	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems:          lineItems,
		SuccessURL:         stripe.String(p.frontendURL + "/order/success?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:          stripe.String(p.frontendURL + "/cart"),
		CustomerEmail:      stripe.String(email),
		Metadata:           map[string]string{"userId": userID},
	}

	s, err := session.New(params)
	if err != nil {
		return nil, fmt.Errorf("create checkout session: %w", err)
	}
	return &CheckoutSession{ID: s.ID, URL: s.URL}, nil
}

// ConstructWebhookEvent verifies the Stripe-Signature header against the raw
// payload before anything downstream trusts the event.
func (p *StripeProvider) ConstructWebhookEvent(payload []byte, sigHeader string) (stripe.Event, error) {
	return webhook.ConstructEvent(payload, sigHeader, p.webhookSecret)
}
