package store

import (
	"context"
	"time"

	"github.com/eventra/eventra/internal/store/schema"
)

//go:generate mockgen -source=store.go -destination=../mocks/mock_store.go -package=mocks -mock_names=Store=MockStore

// Store defines the interface for database operations
type Store interface {
	// GetProfile retrieves a profile by id
	GetProfile(ctx context.Context, id string) (*schema.Profile, error)
	// GetProfilesByIDs retrieves the profiles for the given ids
	GetProfilesByIDs(ctx context.Context, ids []string) ([]schema.Profile, error)

	// CreateEvent persists an event together with its ticket tiers
	CreateEvent(ctx context.Context, event *schema.Event, tiers []*schema.TicketTier) error
	// GetEvent retrieves an event with its tiers preloaded
	GetEvent(ctx context.Context, id string) (*schema.Event, error)
	// ListEvents retrieves events, optionally restricted to active ones, newest first
	ListEvents(ctx context.Context, activeOnly bool) ([]schema.Event, error)
	// ListEventsStartingBetween retrieves active events whose date falls in [from, to)
	ListEventsStartingBetween(ctx context.Context, from, to time.Time) ([]schema.Event, error)
	// SetEventCertificateToken records the certificate collection token id;
	// it reports false when the event already has one
	SetEventCertificateToken(ctx context.Context, eventID, tokenID string) (bool, error)

	// GetTier retrieves a ticket tier by id
	GetTier(ctx context.Context, id string) (*schema.TicketTier, error)

	// CountTicketsByBuyer counts tickets the buyer holds for the event
	CountTicketsByBuyer(ctx context.Context, eventID, buyerID string) (int64, error)
	// GetTicketsByPaymentReference retrieves the tickets stamped with the reference
	GetTicketsByPaymentReference(ctx context.Context, reference string) ([]schema.Ticket, error)
	// MaterializePurchase increments the tier's sold counter and inserts the
	// batch of tickets in one transaction. The increment is a conditional
	// update guarded by quantity_total; when no row qualifies the whole
	// transaction is abandoned and domain.ErrSoldOut is returned.
	MaterializePurchase(ctx context.Context, tierID string, quantity int, tickets []*schema.Ticket) error
	// GetTicket retrieves a ticket by id
	GetTicket(ctx context.Context, id string) (*schema.Ticket, error)
	// ListTicketsByBuyer retrieves the buyer's tickets with events preloaded, newest first
	ListTicketsByBuyer(ctx context.Context, buyerID string) ([]schema.Ticket, error)
	// ListTicketHolderIDs retrieves the distinct buyer ids holding tickets for the event
	ListTicketHolderIDs(ctx context.Context, eventID string) ([]string, error)

	// ApplyRewards appends the reward ledger rows and increments the cached
	// balance in one transaction. The first-purchase bonus is granted through
	// a conditional update on first_purchase_at; the return value reports
	// whether the bonus was included.
	ApplyRewards(ctx context.Context, input ApplyRewardsInput) (bool, error)
	// GetPointsTransactions retrieves the user's reward ledger, newest first
	GetPointsTransactions(ctx context.Context, userID string) ([]schema.PointsTransaction, error)

	// CreateResaleListing inserts a listing; domain.ErrAlreadyListed is
	// returned when the ticket already has an active listing
	CreateResaleListing(ctx context.Context, listing *schema.ResaleListing) error
	// GetResaleListing retrieves a listing with its ticket preloaded
	GetResaleListing(ctx context.Context, id string) (*schema.ResaleListing, error)
	// ListActiveResaleListings retrieves active listings with tickets and events preloaded
	ListActiveResaleListings(ctx context.Context) ([]schema.ResaleListing, error)
	// CompleteResalePurchase marks the listing sold and reassigns the ticket
	// to the buyer in one transaction. It reports domain.ErrListingNotFound
	// when the listing is no longer active.
	CompleteResalePurchase(ctx context.Context, listingID, buyerID string, soldAt time.Time) error

	// GetCertificate retrieves the certificate for an event and recipient
	GetCertificate(ctx context.Context, eventID, recipientID string) (*schema.Certificate, error)
	// CreateCertificate inserts a certificate; domain.ErrCertificateExists is
	// returned when the recipient already holds one for the event
	CreateCertificate(ctx context.Context, certificate *schema.Certificate) error
	// ListCertificatesByRecipient retrieves the recipient's certificates with events preloaded
	ListCertificatesByRecipient(ctx context.Context, recipientID string) ([]schema.Certificate, error)
}

// ApplyRewardsInput carries everything ApplyRewards writes.
type ApplyRewardsInput struct {
	UserID       string
	EventID      string
	EventTitle   string
	PointsEarned int64
	Now          time.Time
}
