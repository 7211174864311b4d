package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/eventra/eventra/internal/domain"
	"github.com/eventra/eventra/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM
// database connection. Zero values fall back to reasonable defaults.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if maxOpenConns <= 0 {
		maxOpenConns = 20
	}
	if maxIdleConns <= 0 {
		maxIdleConns = 5
	}
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}
	if connMaxLifetime <= 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime <= 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

func (s *pgStore) GetProfile(ctx context.Context, id string) (*schema.Profile, error) {
	var profile schema.Profile
	err := s.db.WithContext(ctx).
		Where("id = ?", id).
		First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &profile, nil
}

func (s *pgStore) GetProfilesByIDs(ctx context.Context, ids []string) ([]schema.Profile, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var profiles []schema.Profile
	err := s.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&profiles).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get profiles: %w", err)
	}
	return profiles, nil
}

func (s *pgStore) CreateEvent(ctx context.Context, event *schema.Event, tiers []*schema.TicketTier) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(event).Error; err != nil {
			return fmt.Errorf("failed to create event: %w", err)
		}

		for _, tier := range tiers {
			tier.EventID = event.ID
		}
		if len(tiers) > 0 {
			if err := tx.Create(tiers).Error; err != nil {
				return fmt.Errorf("failed to create ticket tiers: %w", err)
			}
		}

		return nil
	})
}

func (s *pgStore) GetEvent(ctx context.Context, id string) (*schema.Event, error) {
	var event schema.Event
	err := s.db.WithContext(ctx).
		Preload("Tiers").
		Where("id = ?", id).
		First(&event).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return &event, nil
}

func (s *pgStore) ListEvents(ctx context.Context, activeOnly bool) ([]schema.Event, error) {
	query := s.db.WithContext(ctx).Preload("Tiers")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var events []schema.Event
	if err := query.Order("event_date ASC").Find(&events).Error; err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

func (s *pgStore) ListEventsStartingBetween(ctx context.Context, from, to time.Time) ([]schema.Event, error) {
	var events []schema.Event
	err := s.db.WithContext(ctx).
		Where("is_active = ? AND event_date >= ? AND event_date < ?", true, from, to).
		Order("event_date ASC").
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list events starting between %s and %s: %w", from, to, err)
	}
	return events, nil
}

func (s *pgStore) SetEventCertificateToken(ctx context.Context, eventID, tokenID string) (bool, error) {
	result := s.db.WithContext(ctx).
		Model(&schema.Event{}).
		Where("id = ? AND certificate_token_id IS NULL", eventID).
		Update("certificate_token_id", tokenID)
	if result.Error != nil {
		return false, fmt.Errorf("failed to set certificate token: %w", result.Error)
	}
	return result.RowsAffected == 1, nil
}

func (s *pgStore) GetTier(ctx context.Context, id string) (*schema.TicketTier, error) {
	var tier schema.TicketTier
	err := s.db.WithContext(ctx).
		Where("id = ?", id).
		First(&tier).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get ticket tier: %w", err)
	}
	return &tier, nil
}

func (s *pgStore) CountTicketsByBuyer(ctx context.Context, eventID, buyerID string) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&schema.Ticket{}).
		Where("event_id = ? AND buyer_id = ?", eventID, buyerID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count tickets: %w", err)
	}
	return count, nil
}

func (s *pgStore) GetTicketsByPaymentReference(ctx context.Context, reference string) ([]schema.Ticket, error) {
	var tickets []schema.Ticket
	err := s.db.WithContext(ctx).
		Where("payment_reference = ?", reference).
		Find(&tickets).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get tickets by payment reference: %w", err)
	}
	return tickets, nil
}

// MaterializePurchase holds the inventory invariant: the sold counter only
// moves through a conditional update bounded by quantity_total, so two
// concurrent purchases of the last ticket resolve to one success and one
// domain.ErrSoldOut.
func (s *pgStore) MaterializePurchase(ctx context.Context, tierID string, quantity int, tickets []*schema.Ticket) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&schema.TicketTier{}).
			Where("id = ? AND quantity_sold + ? <= quantity_total", tierID, quantity).
			Update("quantity_sold", gorm.Expr("quantity_sold + ?", quantity))
		if result.Error != nil {
			return fmt.Errorf("failed to update tier inventory: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrSoldOut
		}

		if err := tx.Create(tickets).Error; err != nil {
			return fmt.Errorf("failed to create tickets: %w", err)
		}

		return nil
	})
}

func (s *pgStore) GetTicket(ctx context.Context, id string) (*schema.Ticket, error) {
	var ticket schema.Ticket
	err := s.db.WithContext(ctx).
		Preload("Event").
		Where("id = ?", id).
		First(&ticket).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}
	return &ticket, nil
}

func (s *pgStore) ListTicketsByBuyer(ctx context.Context, buyerID string) ([]schema.Ticket, error) {
	var tickets []schema.Ticket
	err := s.db.WithContext(ctx).
		Preload("Event").
		Where("buyer_id = ?", buyerID).
		Order("purchase_date DESC").
		Find(&tickets).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}
	return tickets, nil
}

func (s *pgStore) ListTicketHolderIDs(ctx context.Context, eventID string) ([]string, error) {
	var ids []string
	err := s.db.WithContext(ctx).
		Model(&schema.Ticket{}).
		Distinct("buyer_id").
		Where("event_id = ?", eventID).
		Pluck("buyer_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list ticket holders: %w", err)
	}
	return ids, nil
}

// ApplyRewards writes the balance increment and the ledger rows atomically.
// The first-purchase bonus rides on a conditional update of
// first_purchase_at, which can only succeed once per profile.
func (s *pgStore) ApplyRewards(ctx context.Context, input ApplyRewardsInput) (bool, error) {
	bonusGranted := false

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&schema.Profile{}).
			Where("id = ? AND first_purchase_at IS NULL", input.UserID).
			Update("first_purchase_at", input.Now)
		if result.Error != nil {
			return fmt.Errorf("failed to mark first purchase: %w", result.Error)
		}
		bonusGranted = result.RowsAffected == 1

		rows := []schema.PointsTransaction{
			{
				UserID:      input.UserID,
				Points:      input.PointsEarned,
				Type:        string(domain.PointsTypeEarned),
				Description: fmt.Sprintf("Ticket purchase: %s", input.EventTitle),
				EventID:     &input.EventID,
				CreatedAt:   input.Now,
			},
		}

		total := input.PointsEarned
		if bonusGranted {
			total += domain.FirstPurchaseBonus
			rows = append(rows, schema.PointsTransaction{
				UserID:      input.UserID,
				Points:      domain.FirstPurchaseBonus,
				Type:        string(domain.PointsTypeBonus),
				Description: "First purchase bonus",
				EventID:     &input.EventID,
				CreatedAt:   input.Now,
			})
		}

		if err := tx.Create(&rows).Error; err != nil {
			return fmt.Errorf("failed to append points transactions: %w", err)
		}

		err := tx.Model(&schema.Profile{}).
			Where("id = ?", input.UserID).
			Update("points", gorm.Expr("points + ?", total)).Error
		if err != nil {
			return fmt.Errorf("failed to increment points balance: %w", err)
		}

		return nil
	})
	if err != nil {
		return false, err
	}

	return bonusGranted, nil
}

func (s *pgStore) GetPointsTransactions(ctx context.Context, userID string) ([]schema.PointsTransaction, error) {
	var rows []schema.PointsTransaction
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get points transactions: %w", err)
	}
	return rows, nil
}

func (s *pgStore) CreateResaleListing(ctx context.Context, listing *schema.ResaleListing) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var active int64
		err := tx.Model(&schema.ResaleListing{}).
			Where("ticket_id = ? AND status = ?", listing.TicketID, string(domain.ListingStatusActive)).
			Count(&active).Error
		if err != nil {
			return fmt.Errorf("failed to check active listings: %w", err)
		}
		if active > 0 {
			return domain.ErrAlreadyListed
		}

		if err := tx.Create(listing).Error; err != nil {
			return fmt.Errorf("failed to create resale listing: %w", err)
		}

		return nil
	})
}

func (s *pgStore) GetResaleListing(ctx context.Context, id string) (*schema.ResaleListing, error) {
	var listing schema.ResaleListing
	err := s.db.WithContext(ctx).
		Preload("Ticket").
		Preload("Ticket.Event").
		Where("id = ?", id).
		First(&listing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resale listing: %w", err)
	}
	return &listing, nil
}

func (s *pgStore) ListActiveResaleListings(ctx context.Context) ([]schema.ResaleListing, error) {
	var listings []schema.ResaleListing
	err := s.db.WithContext(ctx).
		Preload("Ticket").
		Preload("Ticket.Event").
		Where("status = ?", string(domain.ListingStatusActive)).
		Order("created_at DESC").
		Find(&listings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list resale listings: %w", err)
	}
	return listings, nil
}

func (s *pgStore) CompleteResalePurchase(ctx context.Context, listingID, buyerID string, soldAt time.Time) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var listing schema.ResaleListing
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", listingID).
			First(&listing).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrListingNotFound
			}
			return fmt.Errorf("failed to get resale listing: %w", err)
		}
		if listing.Status != string(domain.ListingStatusActive) {
			return domain.ErrListingNotFound
		}

		err = tx.Model(&schema.ResaleListing{}).
			Where("id = ?", listingID).
			Updates(map[string]interface{}{
				"status":  string(domain.ListingStatusSold),
				"sold_at": soldAt,
			}).Error
		if err != nil {
			return fmt.Errorf("failed to mark listing sold: %w", err)
		}

		err = tx.Model(&schema.Ticket{}).
			Where("id = ?", listing.TicketID).
			Update("buyer_id", buyerID).Error
		if err != nil {
			return fmt.Errorf("failed to reassign ticket: %w", err)
		}

		return nil
	})
}

func (s *pgStore) GetCertificate(ctx context.Context, eventID, recipientID string) (*schema.Certificate, error) {
	var certificate schema.Certificate
	err := s.db.WithContext(ctx).
		Where("event_id = ? AND recipient_id = ?", eventID, recipientID).
		First(&certificate).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get certificate: %w", err)
	}
	return &certificate, nil
}

func (s *pgStore) CreateCertificate(ctx context.Context, certificate *schema.Certificate) error {
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(certificate).Error
	if err != nil {
		return fmt.Errorf("failed to create certificate: %w", err)
	}
	if certificate.ID == "" {
		return domain.ErrCertificateExists
	}
	return nil
}

func (s *pgStore) ListCertificatesByRecipient(ctx context.Context, recipientID string) ([]schema.Certificate, error) {
	var certificates []schema.Certificate
	err := s.db.WithContext(ctx).
		Preload("Event").
		Where("recipient_id = ?", recipientID).
		Order("issued_at DESC").
		Find(&certificates).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list certificates: %w", err)
	}
	return certificates, nil
}
