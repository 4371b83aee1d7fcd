// internal/service/stripe_provider.go
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	zlog "github.com/rs/zerolog/log"
	stripe "github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/checkout/session"
	"github.com/stripe/stripe-go/v81/webhook"
)

// CheckoutSessionCompleted is the only provider event type that triggers a
// wallet credit.
const CheckoutSessionCompleted = "checkout.session.completed"

// Checkout metadata keys set by the frontend when creating the session.
const (
	metadataUserIDKey    = "userId"
	metadataProductIDKey = "productId"
)

type stripeProvider struct {
	webhookSecret string
}

// NewStripeProvider configures the Stripe client and returns a
// CheckoutProvider backed by it.
func NewStripeProvider(secretKey, webhookSecret string) CheckoutProvider {
	stripe.Key = secretKey
	return &stripeProvider{webhookSecret: webhookSecret}
}

// sessionFromStripe maps a Stripe checkout session into the provider-neutral
// view, parsing the crediting metadata. Missing or malformed metadata errors
// carry ErrSessionMetadata so callers can tell them apart from signature
// failures.
func sessionFromStripe(sess *stripe.CheckoutSession) (*CheckoutSession, error) {
	out := &CheckoutSession{
		ID:            sess.ID,
		PaymentStatus: string(sess.PaymentStatus),
	}

	userIDRaw, ok := sess.Metadata[metadataUserIDKey]
	if !ok {
		return nil, fmt.Errorf("%w: checkout session %s has no %s metadata", ErrSessionMetadata, sess.ID, metadataUserIDKey)
	}
	userID, err := strconv.Atoi(userIDRaw)
	if err != nil {
		return nil, fmt.Errorf("%w: checkout session %s has malformed %s metadata %q: %v", ErrSessionMetadata, sess.ID, metadataUserIDKey, userIDRaw, err)
	}
	out.UserID = userID

	productID, ok := sess.Metadata[metadataProductIDKey]
	if !ok {
		return nil, fmt.Errorf("%w: checkout session %s has no %s metadata", ErrSessionMetadata, sess.ID, metadataProductIDKey)
	}
	out.ProductID = productID

	return out, nil
}

// VerifyWebhook checks the Stripe-Signature header against the endpoint
// secret and decodes the event. Non-checkout events come back with a nil
// Session so callers can ignore them without caring about their payloads.
func (p *stripeProvider) VerifyWebhook(payload []byte, signature string) (*CheckoutEvent, error) {
	event, err := webhook.ConstructEvent(payload, signature, p.webhookSecret)
	if err != nil {
		return nil, fmt.Errorf("webhook signature verification failed: %w", err)
	}

	out := &CheckoutEvent{Type: string(event.Type)}
	if out.Type != CheckoutSessionCompleted {
		return out, nil
	}

	var sess stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		return nil, fmt.Errorf("failed to decode checkout session from event: %w", err)
	}

	checkout, err := sessionFromStripe(&sess)
	if err != nil {
		return nil, err
	}
	out.Session = checkout
	return out, nil
}

// GetSession retrieves a checkout session from Stripe by id.
func (p *stripeProvider) GetSession(ctx context.Context, sessionID string) (*CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx

	sess, err := session.Get(sessionID, params)
	if err != nil {
		zlog.Warn().Err(err).Str("session_id", sessionID).Msg("Service: Stripe session retrieval failed")
		return nil, fmt.Errorf("failed to retrieve checkout session: %w", err)
	}
	return sessionFromStripe(sess)
}
