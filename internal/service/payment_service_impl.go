// internal/service/payment_service_impl.go
package service

import (
	"context"
	"errors"
	"fmt"

	zlog "github.com/rs/zerolog/log"
	"github.com/tamagotcho/tamagotcho-be/internal/catalog"
	"github.com/tamagotcho/tamagotcho-be/internal/models"
	"github.com/tamagotcho/tamagotcho-be/internal/repository"
)

var (
	ErrPaymentNotCompleted = errors.New("payment is not completed")
	ErrSessionNotFound     = errors.New("checkout session not found")
	ErrSessionOwnership    = errors.New("checkout session belongs to another user")
	ErrWebhookVerification = errors.New("webhook verification failed")
	ErrSessionMetadata     = errors.New("checkout session metadata is unusable")
)

type paymentServiceImpl struct {
	pool        TxBeginner
	paymentRepo repository.PaymentRepository
	walletRepo  repository.WalletRepository
	provider    CheckoutProvider
}

// NewPaymentService creates a new instance of PaymentService.
func NewPaymentService(pool TxBeginner, paymentRepo repository.PaymentRepository, walletRepo repository.WalletRepository, provider CheckoutProvider) PaymentService {
	return &paymentServiceImpl{
		pool:        pool,
		paymentRepo: paymentRepo,
		walletRepo:  walletRepo,
		provider:    provider,
	}
}

// creditCheckout credits the wallet for a paid checkout session exactly once.
// The dedup row insert and the wallet credit share a transaction, so a
// concurrent webhook and manual verification cannot both pay out. Returns
// whether this call did the crediting, the koin amount and the resulting
// balance (0 when already credited).
func (s *paymentServiceImpl) creditCheckout(ctx context.Context, sess *CheckoutSession) (credited bool, koins int, balance int, err error) {
	koins, ok := catalog.KoinsForProduct(sess.ProductID)
	if !ok {
		zlog.Error().Str("session_id", sess.ID).Str("product_id", sess.ProductID).Msg("Service: Checkout session references unknown product")
		return false, 0, 0, fmt.Errorf("unknown product %q in checkout session", sess.ProductID)
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		zlog.Error().Err(err).Msg("Service: Failed to begin transaction for payment credit")
		return false, 0, 0, fmt.Errorf("internal server error: could not start operation")
	}

	defer func() {
		if p := recover(); p != nil {
			zlog.Error().Msgf("Service: Panic recovered during payment credit: %v", p)
			_ = tx.Rollback(ctx)
			panic(p)
		} else if err != nil {
			zlog.Warn().Err(err).Str("session_id", sess.ID).Msg("Service: Rolling back transaction due to error during payment credit")
			rbErr := tx.Rollback(ctx)
			if rbErr != nil {
				zlog.Error().Err(rbErr).Msg("Service: Failed to rollback transaction")
			}
		} else {
			err = tx.Commit(ctx)
			if err != nil {
				zlog.Error().Err(err).Str("session_id", sess.ID).Msg("Service: Failed to commit transaction for payment credit")
				err = fmt.Errorf("internal server error: could not finalize operation")
				credited = false
				balance = 0
			}
		}
	}()

	inserted, err := s.paymentRepo.InsertCreditTx(ctx, tx, &models.PaymentCredit{
		SessionID: sess.ID,
		UserID:    sess.UserID,
		ProductID: sess.ProductID,
		Koins:     koins,
	})
	if err != nil {
		zlog.Error().Err(err).Str("session_id", sess.ID).Msg("Service: Error recording payment credit")
		err = fmt.Errorf("internal server error: could not record payment")
		return false, 0, 0, err
	}
	if !inserted {
		zlog.Info().Str("session_id", sess.ID).Msg("Service: Checkout session already credited, skipping")
		return false, koins, 0, nil
	}

	balance, err = s.walletRepo.CreditTx(ctx, tx, sess.UserID, koins)
	if err != nil {
		zlog.Error().Err(err).Int("user_id", sess.UserID).Str("session_id", sess.ID).Msg("Service: Error crediting wallet for payment")
		err = fmt.Errorf("internal server error: could not credit wallet")
		return false, 0, 0, err
	}

	zlog.Info().Int("user_id", sess.UserID).Str("session_id", sess.ID).Str("product_id", sess.ProductID).Int("koins", koins).Int("new_balance", balance).Msg("Service: Koin purchase credited")
	return true, koins, balance, nil
}

// HandleWebhookEvent implements the asynchronous crediting path. A bad
// signature is an error (the caller answers 400 so the provider retries);
// irrelevant event types and sessions we cannot credit are acknowledged and
// logged so the provider does not retry a permanently broken event forever.
func (s *paymentServiceImpl) HandleWebhookEvent(ctx context.Context, payload []byte, signature string) error {
	event, err := s.provider.VerifyWebhook(payload, signature)
	if err != nil {
		// A session with missing or malformed metadata is permanently
		// broken; acknowledge it so the provider stops retrying. Only
		// signature failures bounce back to the caller.
		if errors.Is(err, ErrSessionMetadata) {
			zlog.Error().Err(err).Msg("Service: Completed session has unusable metadata, acknowledging without credit")
			return nil
		}
		zlog.Warn().Err(err).Msg("Service: Webhook event rejected")
		return fmt.Errorf("%w: %v", ErrWebhookVerification, err)
	}

	if event.Type != CheckoutSessionCompleted || event.Session == nil {
		zlog.Debug().Str("event_type", event.Type).Msg("Service: Ignoring webhook event type")
		return nil
	}

	if event.Session.PaymentStatus != "paid" {
		zlog.Info().Str("session_id", event.Session.ID).Str("payment_status", event.Session.PaymentStatus).Msg("Service: Completed session not paid yet, ignoring")
		return nil
	}

	if _, _, _, err := s.creditCheckout(ctx, event.Session); err != nil {
		zlog.Error().Err(err).Str("session_id", event.Session.ID).Msg("Service: Failed to credit webhook checkout session")
	}
	return nil
}

// VerifyCheckout implements the synchronous crediting path used by the
// post-checkout success page. Idempotent with the webhook: whichever runs
// first credits, the other reports the session as already credited.
func (s *paymentServiceImpl) VerifyCheckout(ctx context.Context, userID int, sessionID string) (*models.VerifyPaymentResult, error) {
	sess, err := s.provider.GetSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSessionNotFound, err)
	}

	if sess.UserID != userID {
		zlog.Warn().Int("caller_id", userID).Int("session_user_id", sess.UserID).Str("session_id", sessionID).Msg("Service: Checkout session ownership mismatch")
		return nil, ErrSessionOwnership
	}

	if sess.PaymentStatus != "paid" {
		return nil, ErrPaymentNotCompleted
	}

	credited, koins, balance, err := s.creditCheckout(ctx, sess)
	if err != nil {
		return nil, err
	}

	return &models.VerifyPaymentResult{
		SessionID: sessionID,
		Credited:  credited,
		Koins:     koins,
		Balance:   balance,
	}, nil
}
