package purchase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/eventra/eventra/internal/adapter"
	"github.com/eventra/eventra/internal/domain"
	"github.com/eventra/eventra/internal/ledger"
	"github.com/eventra/eventra/internal/logger"
	"github.com/eventra/eventra/internal/messaging"
	"github.com/eventra/eventra/internal/notification"
	"github.com/eventra/eventra/internal/payment"
	"github.com/eventra/eventra/internal/store"
	"github.com/eventra/eventra/internal/store/schema"
)

// Source is the entry point that initiated the purchase.
type Source int

const (
	// SourceDirect is the authenticated purchase action; a payment
	// reference, when present, is verified with the gateway.
	SourceDirect Source = iota
	// SourceWebhook is the gateway callback; the charge was already
	// authenticated by the webhook signature.
	SourceWebhook
)

// Input describes a purchase request from either entry point.
type Input struct {
	Source           Source
	BuyerID          string
	EventID          string
	TierID           string
	Quantity         int
	PaymentReference *string
}

// Result is the outcome of a completed (or short-circuited) purchase.
type Result struct {
	// AlreadyProcessed is true when the payment reference had materialized
	// tickets before this call; Tickets then holds the earlier batch.
	AlreadyProcessed bool
	Tickets          []schema.Ticket
	TransactionID    string
	ExplorerURL      string
	PointsEarned     int64
	BonusGranted     bool
}

// Service runs the shared purchase workflow for the direct action and the
// payment webhook.
type Service struct {
	store     store.Store
	ledger    ledger.Client
	gateway   payment.Gateway
	mailer    notification.Mailer
	publisher messaging.Publisher
	clock     adapter.Clock
}

// NewService wires the purchase workflow. mailer and publisher may be nil;
// their steps are best-effort and skipped when absent.
func NewService(
	st store.Store,
	ledgerClient ledger.Client,
	gateway payment.Gateway,
	mailer notification.Mailer,
	publisher messaging.Publisher,
	clock adapter.Clock,
) *Service {
	return &Service{
		store:     st,
		ledger:    ledgerClient,
		gateway:   gateway,
		mailer:    mailer,
		publisher: publisher,
		clock:     clock,
	}
}

// Purchase runs the full workflow: idempotency, eligibility, payment
// verification, on-ledger settlement, atomic materialization, rewards, and
// best-effort notifications. Nothing is written before settlement succeeds,
// and no step is retried.
func (s *Service) Purchase(ctx context.Context, input Input) (*Result, error) {
	if input.Quantity <= 0 {
		return nil, fmt.Errorf("quantity must be positive")
	}

	if input.PaymentReference != nil {
		existing, err := s.store.GetTicketsByPaymentReference(ctx, *input.PaymentReference)
		if err != nil {
			return nil, err
		}
		if len(existing) > 0 {
			return &Result{
				AlreadyProcessed: true,
				Tickets:          existing,
			}, nil
		}
	}

	event, tier, err := s.loadEventAndTier(ctx, input.EventID, input.TierID)
	if err != nil {
		return nil, err
	}

	owned, err := s.store.CountTicketsByBuyer(ctx, input.EventID, input.BuyerID)
	if err != nil {
		return nil, err
	}

	if err := domain.EvaluatePurchase(*event, *tier, input.BuyerID, int(owned), input.Quantity).Err(); err != nil {
		return nil, err
	}

	totalPrice := tier.Price.Mul(decimal.NewFromInt(int64(input.Quantity)))

	if input.Source == SourceDirect && input.PaymentReference != nil && event.IsPaid {
		if _, err := s.gateway.VerifyTransaction(ctx, *input.PaymentReference); err != nil {
			return nil, err
		}
	}

	transfer, err := s.ledger.TransferForPurchase(ctx, ledger.TransferInput{
		EventID:    input.EventID,
		TotalPrice: totalPrice,
	})
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	tickets := make([]*schema.Ticket, input.Quantity)
	for i := range tickets {
		metadata := domain.TicketMetadata{
			Blockchain:   "hedera",
			Network:      string(s.ledger.Network()),
			ExplorerURL:  transfer.ExplorerURL,
			BatchNumber:  i + 1,
			TotalInBatch: input.Quantity,
		}
		if input.PaymentReference != nil {
			metadata.PaymentReference = *input.PaymentReference
		}
		metadataJSON, err := json.Marshal(metadata)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal ticket metadata: %w", err)
		}

		tickets[i] = &schema.Ticket{
			EventID:          input.EventID,
			TierID:           input.TierID,
			BuyerID:          input.BuyerID,
			TransactionHash:  transfer.TransactionID,
			PaymentReference: input.PaymentReference,
			PurchasePrice:    tier.Price,
			NFTTokenID:       fmt.Sprintf("EVT-TIX-%s", ulid.Make()),
			Metadata:         datatypes.JSON(metadataJSON),
			PurchaseDate:     now,
		}
	}

	if err := s.store.MaterializePurchase(ctx, input.TierID, input.Quantity, tickets); err != nil {
		return nil, err
	}

	points := domain.ComputePoints(totalPrice)
	bonus, err := s.store.ApplyRewards(ctx, store.ApplyRewardsInput{
		UserID:       input.BuyerID,
		EventID:      input.EventID,
		EventTitle:   event.Title,
		PointsEarned: points,
		Now:          now,
	})
	if err != nil {
		return nil, err
	}

	result := &Result{
		TransactionID: transfer.TransactionID,
		ExplorerURL:   transfer.ExplorerURL,
		PointsEarned:  points,
		BonusGranted:  bonus,
	}
	result.Tickets = make([]schema.Ticket, len(tickets))
	for i, t := range tickets {
		result.Tickets[i] = *t
	}

	s.notify(ctx, input, event, result)

	return result, nil
}

// PaymentIntent is the pre-check result for initializing a gateway charge.
type PaymentIntent struct {
	// AmountSubunits is the charge amount in currency subunits.
	AmountSubunits int64
	// Metadata is echoed back by the gateway webhook so the charge can be
	// matched to its purchase intent.
	Metadata map[string]string
}

// PreparePayment runs the eligibility check up front and returns the charge
// parameters for the client-side gateway flow.
func (s *Service) PreparePayment(ctx context.Context, buyerID, eventID, tierID string, quantity int) (*PaymentIntent, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("quantity must be positive")
	}

	event, tier, err := s.loadEventAndTier(ctx, eventID, tierID)
	if err != nil {
		return nil, err
	}

	owned, err := s.store.CountTicketsByBuyer(ctx, eventID, buyerID)
	if err != nil {
		return nil, err
	}

	if err := domain.EvaluatePurchase(*event, *tier, buyerID, int(owned), quantity).Err(); err != nil {
		return nil, err
	}

	total := tier.Price.Mul(decimal.NewFromInt(int64(quantity)))

	return &PaymentIntent{
		AmountSubunits: total.Mul(decimal.NewFromInt(100)).IntPart(),
		Metadata: map[string]string{
			"eventId":  eventID,
			"tierId":   tierID,
			"quantity": fmt.Sprintf("%d", quantity),
			"userId":   buyerID,
		},
	}, nil
}

func (s *Service) loadEventAndTier(ctx context.Context, eventID, tierID string) (*domain.Event, *domain.TicketTier, error) {
	event, err := s.store.GetEvent(ctx, eventID)
	if err != nil {
		return nil, nil, err
	}
	if event == nil {
		return nil, nil, domain.ErrEventNotFound
	}

	tier, err := s.store.GetTier(ctx, tierID)
	if err != nil {
		return nil, nil, err
	}
	if tier == nil || tier.EventID != eventID {
		return nil, nil, domain.ErrTierNotFound
	}

	return &domain.Event{
			ID:                 event.ID,
			OrganizerID:        event.OrganizerID,
			Title:              event.Title,
			EventDate:          event.EventDate,
			IsPaid:             event.IsPaid,
			IsActive:           event.IsActive,
			MaxTicketsPerUser:  event.MaxTicketsPerUser,
			CertificateTokenID: event.CertificateTokenID,
		}, &domain.TicketTier{
			ID:            tier.ID,
			EventID:       tier.EventID,
			TierName:      tier.TierName,
			Price:         tier.Price,
			QuantityTotal: tier.QuantityTotal,
			QuantitySold:  tier.QuantitySold,
		}, nil
}

// notify handles the best-effort post-purchase steps. Failures are logged
// and never surface to the caller.
func (s *Service) notify(ctx context.Context, input Input, event *domain.Event, result *Result) {
	if s.mailer != nil {
		profile, err := s.store.GetProfile(ctx, input.BuyerID)
		if err != nil || profile == nil {
			logger.WarnCtx(ctx, "skipping purchase emails, buyer profile unavailable",
				zap.String("buyer_id", input.BuyerID), zap.Error(err))
		} else {
			receipt := notification.PurchaseReceipt(
				profile.FullName, event.Title, event.EventDate, input.Quantity, result.ExplorerURL)
			receipt.To = profile.Email
			if err := s.mailer.Send(ctx, receipt); err != nil {
				logger.WarnCtx(ctx, "failed to send purchase receipt", zap.Error(err))
			}

			if result.BonusGranted {
				welcome := notification.Welcome(profile.FullName, domain.FirstPurchaseBonus)
				welcome.To = profile.Email
				if err := s.mailer.Send(ctx, welcome); err != nil {
					logger.WarnCtx(ctx, "failed to send welcome email", zap.Error(err))
				}
			}
		}
	}

	if s.publisher != nil {
		published := messaging.TicketPurchased{
			EventID:       input.EventID,
			BuyerID:       input.BuyerID,
			TierID:        input.TierID,
			Quantity:      input.Quantity,
			TransactionID: result.TransactionID,
			PurchasedAt:   s.clock.Now(),
		}
		if input.PaymentReference != nil {
			published.PaymentReference = *input.PaymentReference
		}
		if err := s.publisher.PublishTicketPurchased(ctx, published); err != nil {
			logger.WarnCtx(ctx, "failed to publish ticket.purchased", zap.Error(err))
		}
	}
}
