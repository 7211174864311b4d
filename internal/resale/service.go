package resale

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/eventra/eventra/internal/adapter"
	"github.com/eventra/eventra/internal/domain"
	"github.com/eventra/eventra/internal/store"
	"github.com/eventra/eventra/internal/store/schema"
)

// Service manages the resale marketplace: listing owned tickets and buying
// listed ones. A bought ticket changes hands by buyer reassignment on the
// existing row.
type Service struct {
	store store.Store
	clock adapter.Clock
}

// NewService wires the resale marketplace.
func NewService(st store.Store, clock adapter.Clock) *Service {
	return &Service{
		store: st,
		clock: clock,
	}
}

// List puts a ticket the seller owns on the marketplace.
func (s *Service) List(ctx context.Context, sellerID, ticketID string, price decimal.Decimal) (*schema.ResaleListing, error) {
	if !price.IsPositive() {
		return nil, domain.ErrInvalidPrice
	}

	ticket, err := s.store.GetTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, domain.ErrTicketNotFound
	}
	if ticket.BuyerID != sellerID {
		return nil, domain.ErrNotTicketOwner
	}

	listing := &schema.ResaleListing{
		TicketID:      ticketID,
		SellerID:      sellerID,
		OriginalPrice: ticket.PurchasePrice,
		ResalePrice:   price,
		Status:        string(domain.ListingStatusActive),
	}

	if err := s.store.CreateResaleListing(ctx, listing); err != nil {
		return nil, err
	}

	return listing, nil
}

// Browse returns the active listings.
func (s *Service) Browse(ctx context.Context) ([]schema.ResaleListing, error) {
	return s.store.ListActiveResaleListings(ctx)
}

// Buy transfers a listed ticket to the buyer. Sellers cannot buy their own
// listings.
func (s *Service) Buy(ctx context.Context, buyerID, listingID string) (*schema.ResaleListing, error) {
	listing, err := s.store.GetResaleListing(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if listing == nil || listing.Status != string(domain.ListingStatusActive) {
		return nil, domain.ErrListingNotFound
	}
	if listing.SellerID == buyerID {
		return nil, domain.ErrSelfPurchase
	}

	soldAt := s.clock.Now()
	if err := s.store.CompleteResalePurchase(ctx, listingID, buyerID, soldAt); err != nil {
		return nil, err
	}

	listing.Status = string(domain.ListingStatusSold)
	listing.SoldAt = &soldAt
	return listing, nil
}
