package resale_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventra/eventra/internal/domain"
	"github.com/eventra/eventra/internal/mocks"
	"github.com/eventra/eventra/internal/resale"
	"github.com/eventra/eventra/internal/store/schema"
)

type testResaleMocks struct {
	ctrl    *gomock.Controller
	store   *mocks.MockStore
	clock   *mocks.MockClock
	service *resale.Service
}

func setupTest(t *testing.T) *testResaleMocks {
	ctrl := gomock.NewController(t)

	mockStore := mocks.NewMockStore(ctrl)
	mockClock := mocks.NewMockClock(ctrl)

	return &testResaleMocks{
		ctrl:    ctrl,
		store:   mockStore,
		clock:   mockClock,
		service: resale.NewService(mockStore, mockClock),
	}
}

func tearDownTest(tm *testResaleMocks) {
	tm.ctrl.Finish()
}

func ownedTicket() *schema.Ticket {
	return &schema.Ticket{
		ID:            "ticket-1",
		EventID:       "event-1",
		BuyerID:       "seller-1",
		PurchasePrice: decimal.RequireFromString("25.00"),
	}
}

func TestList(t *testing.T) {
	tm := setupTest(t)
	defer tearDownTest(tm)

	ctx := context.Background()

	tm.store.EXPECT().GetTicket(ctx, "ticket-1").Return(ownedTicket(), nil)
	tm.store.EXPECT().
		CreateResaleListing(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, listing *schema.ResaleListing) error {
			assert.Equal(t, "ticket-1", listing.TicketID)
			assert.Equal(t, "seller-1", listing.SellerID)
			assert.True(t, listing.OriginalPrice.Equal(decimal.RequireFromString("25.00")))
			assert.Equal(t, string(domain.ListingStatusActive), listing.Status)
			return nil
		})

	listing, err := tm.service.List(ctx, "seller-1", "ticket-1", decimal.RequireFromString("30.00"))
	require.NoError(t, err)
	assert.True(t, listing.ResalePrice.Equal(decimal.RequireFromString("30.00")))
}

func TestList_RejectsNonPositivePrice(t *testing.T) {
	tm := setupTest(t)
	defer tearDownTest(tm)

	_, err := tm.service.List(context.Background(), "seller-1", "ticket-1", decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrInvalidPrice)

	_, err = tm.service.List(context.Background(), "seller-1", "ticket-1", decimal.RequireFromString("-5"))
	assert.ErrorIs(t, err, domain.ErrInvalidPrice)
}

func TestList_NotOwner(t *testing.T) {
	tm := setupTest(t)
	defer tearDownTest(tm)

	ctx := context.Background()
	tm.store.EXPECT().GetTicket(ctx, "ticket-1").Return(ownedTicket(), nil)

	_, err := tm.service.List(ctx, "someone-else", "ticket-1", decimal.RequireFromString("30.00"))
	assert.ErrorIs(t, err, domain.ErrNotTicketOwner)
}

func TestList_AlreadyListed(t *testing.T) {
	tm := setupTest(t)
	defer tearDownTest(tm)

	ctx := context.Background()
	tm.store.EXPECT().GetTicket(ctx, "ticket-1").Return(ownedTicket(), nil)
	tm.store.EXPECT().CreateResaleListing(ctx, gomock.Any()).Return(domain.ErrAlreadyListed)

	_, err := tm.service.List(ctx, "seller-1", "ticket-1", decimal.RequireFromString("30.00"))
	assert.ErrorIs(t, err, domain.ErrAlreadyListed)
}

func TestBuy(t *testing.T) {
	tm := setupTest(t)
	defer tearDownTest(tm)

	ctx := context.Background()
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	tm.store.EXPECT().GetResaleListing(ctx, "listing-1").Return(&schema.ResaleListing{
		ID:       "listing-1",
		TicketID: "ticket-1",
		SellerID: "seller-1",
		Status:   string(domain.ListingStatusActive),
	}, nil)
	tm.clock.EXPECT().Now().Return(now)
	tm.store.EXPECT().CompleteResalePurchase(ctx, "listing-1", "buyer-2", now).Return(nil)

	listing, err := tm.service.Buy(ctx, "buyer-2", "listing-1")
	require.NoError(t, err)
	assert.Equal(t, string(domain.ListingStatusSold), listing.Status)
	require.NotNil(t, listing.SoldAt)
	assert.Equal(t, now, *listing.SoldAt)
}

func TestBuy_OwnListing(t *testing.T) {
	tm := setupTest(t)
	defer tearDownTest(tm)

	ctx := context.Background()
	tm.store.EXPECT().GetResaleListing(ctx, "listing-1").Return(&schema.ResaleListing{
		ID:       "listing-1",
		SellerID: "seller-1",
		Status:   string(domain.ListingStatusActive),
	}, nil)

	_, err := tm.service.Buy(ctx, "seller-1", "listing-1")
	assert.ErrorIs(t, err, domain.ErrSelfPurchase)
}

func TestBuy_SoldListing(t *testing.T) {
	tm := setupTest(t)
	defer tearDownTest(tm)

	ctx := context.Background()
	tm.store.EXPECT().GetResaleListing(ctx, "listing-1").Return(&schema.ResaleListing{
		ID:     "listing-1",
		Status: string(domain.ListingStatusSold),
	}, nil)

	_, err := tm.service.Buy(ctx, "buyer-2", "listing-1")
	assert.ErrorIs(t, err, domain.ErrListingNotFound)
}
