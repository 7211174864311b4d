package purchase_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventra/eventra/internal/domain"
	"github.com/eventra/eventra/internal/ledger"
	"github.com/eventra/eventra/internal/logger"
	"github.com/eventra/eventra/internal/mocks"
	"github.com/eventra/eventra/internal/purchase"
	"github.com/eventra/eventra/internal/store"
	"github.com/eventra/eventra/internal/store/schema"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

// testPurchaseMocks contains all the mocks needed for testing the purchase service
type testPurchaseMocks struct {
	ctrl      *gomock.Controller
	store     *mocks.MockStore
	ledger    *mocks.MockLedgerClient
	gateway   *mocks.MockGateway
	mailer    *mocks.MockMailer
	publisher *mocks.MockPublisher
	clock     *mocks.MockClock
	service   *purchase.Service
}

// setupTest creates all the mocks and the purchase service for testing
func setupTest(t *testing.T) *testPurchaseMocks {
	ctrl := gomock.NewController(t)

	mockStore := mocks.NewMockStore(ctrl)
	mockLedger := mocks.NewMockLedgerClient(ctrl)
	mockGateway := mocks.NewMockGateway(ctrl)
	mockMailer := mocks.NewMockMailer(ctrl)
	mockPublisher := mocks.NewMockPublisher(ctrl)
	mockClock := mocks.NewMockClock(ctrl)

	service := purchase.NewService(mockStore, mockLedger, mockGateway, mockMailer, mockPublisher, mockClock)

	return &testPurchaseMocks{
		ctrl:      ctrl,
		store:     mockStore,
		ledger:    mockLedger,
		gateway:   mockGateway,
		mailer:    mockMailer,
		publisher: mockPublisher,
		clock:     mockClock,
		service:   service,
	}
}

// tearDownTest cleans up the test mocks
func tearDownTest(tm *testPurchaseMocks) {
	tm.ctrl.Finish()
}

var testNow = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

func testEvent() *schema.Event {
	return &schema.Event{
		ID:          "event-1",
		OrganizerID: "organizer-1",
		Title:       "Go Conference",
		EventDate:   testNow.Add(30 * 24 * time.Hour),
		IsPaid:      true,
		IsActive:    true,
	}
}

func testTier() *schema.TicketTier {
	return &schema.TicketTier{
		ID:            "tier-1",
		EventID:       "event-1",
		TierName:      "General",
		Price:         decimal.RequireFromString("25.00"),
		QuantityTotal: 100,
		QuantitySold:  10,
	}
}

func testProfile() *schema.Profile {
	return &schema.Profile{
		ID:       "buyer-1",
		Email:    "buyer@example.com",
		FullName: "Buyer One",
	}
}

func TestPurchase_Success(t *testing.T) {
	tm := setupTest(t)
	defer tearDownTest(tm)

	ctx := context.Background()

	tm.store.EXPECT().GetEvent(ctx, "event-1").Return(testEvent(), nil)
	tm.store.EXPECT().GetTier(ctx, "tier-1").Return(testTier(), nil)
	tm.store.EXPECT().CountTicketsByBuyer(ctx, "event-1", "buyer-1").Return(int64(0), nil)

	tm.ledger.EXPECT().
		TransferForPurchase(ctx, ledger.TransferInput{
			EventID:    "event-1",
			TotalPrice: decimal.RequireFromString("50.00"),
		}).
		Return(&ledger.TransferResult{
			TransactionID: "0.0.1234@1700000000.000000001",
			ExplorerURL:   "https://hashscan.io/testnet/transaction/0.0.1234@1700000000.000000001",
		}, nil)
	tm.ledger.EXPECT().Network().Return(domain.NetworkTestnet)

	tm.clock.EXPECT().Now().Return(testNow).AnyTimes()

	tm.store.EXPECT().
		MaterializePurchase(ctx, "tier-1", 2, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, quantity int, tickets []*schema.Ticket) error {
			require.Len(t, tickets, quantity)
			for i, ticket := range tickets {
				assert.Equal(t, "buyer-1", ticket.BuyerID)
				assert.Equal(t, "0.0.1234@1700000000.000000001", ticket.TransactionHash)
				assert.True(t, ticket.PurchasePrice.Equal(decimal.RequireFromString("25.00")))
				assert.Contains(t, string(ticket.Metadata), fmt.Sprintf(`"batchNumber":%d`, i+1))
				assert.Contains(t, string(ticket.Metadata), `"totalInBatch":2`)
			}
			return nil
		})

	tm.store.EXPECT().
		ApplyRewards(ctx, store.ApplyRewardsInput{
			UserID:       "buyer-1",
			EventID:      "event-1",
			EventTitle:   "Go Conference",
			PointsEarned: 500,
			Now:          testNow,
		}).
		Return(true, nil)

	tm.store.EXPECT().GetProfile(ctx, "buyer-1").Return(testProfile(), nil)
	tm.mailer.EXPECT().Send(ctx, gomock.Any()).Return(nil).Times(2)
	tm.publisher.EXPECT().PublishTicketPurchased(ctx, gomock.Any()).Return(nil)

	result, err := tm.service.Purchase(ctx, purchase.Input{
		Source:   purchase.SourceDirect,
		BuyerID:  "buyer-1",
		EventID:  "event-1",
		TierID:   "tier-1",
		Quantity: 2,
	})
	require.NoError(t, err)

	assert.False(t, result.AlreadyProcessed)
	assert.Len(t, result.Tickets, 2)
	assert.EqualValues(t, 500, result.PointsEarned)
	assert.True(t, result.BonusGranted)
	assert.Equal(t, "0.0.1234@1700000000.000000001", result.TransactionID)
}

func TestPurchase_IdempotentReference(t *testing.T) {
	tm := setupTest(t)
	defer tearDownTest(tm)

	ctx := context.Background()
	reference := "PSK_123"

	tm.store.EXPECT().
		GetTicketsByPaymentReference(ctx, reference).
		Return([]schema.Ticket{{ID: "ticket-1"}, {ID: "ticket-2"}}, nil)

	result, err := tm.service.Purchase(ctx, purchase.Input{
		Source:           purchase.SourceWebhook,
		BuyerID:          "buyer-1",
		EventID:          "event-1",
		TierID:           "tier-1",
		Quantity:         2,
		PaymentReference: &reference,
	})
	require.NoError(t, err)

	assert.True(t, result.AlreadyProcessed)
	assert.Len(t, result.Tickets, 2)
}

func TestPurchase_OrganizerSelfPurchase(t *testing.T) {
	tm := setupTest(t)
	defer tearDownTest(tm)

	ctx := context.Background()

	tm.store.EXPECT().GetEvent(ctx, "event-1").Return(testEvent(), nil)
	tm.store.EXPECT().GetTier(ctx, "tier-1").Return(testTier(), nil)
	tm.store.EXPECT().CountTicketsByBuyer(ctx, "event-1", "organizer-1").Return(int64(0), nil)

	_, err := tm.service.Purchase(ctx, purchase.Input{
		Source:   purchase.SourceDirect,
		BuyerID:  "organizer-1",
		EventID:  "event-1",
		TierID:   "tier-1",
		Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrSelfPurchase)
}

func TestPurchase_LimitExceeded(t *testing.T) {
	tm := setupTest(t)
	defer tearDownTest(tm)

	ctx := context.Background()

	limit := 4
	event := testEvent()
	event.MaxTicketsPerUser = &limit

	tm.store.EXPECT().GetEvent(ctx, "event-1").Return(event, nil)
	tm.store.EXPECT().GetTier(ctx, "tier-1").Return(testTier(), nil)
	tm.store.EXPECT().CountTicketsByBuyer(ctx, "event-1", "buyer-1").Return(int64(3), nil)

	_, err := tm.service.Purchase(ctx, purchase.Input{
		Source:   purchase.SourceDirect,
		BuyerID:  "buyer-1",
		EventID:  "event-1",
		TierID:   "tier-1",
		Quantity: 2,
	})
	assert.ErrorIs(t, err, domain.ErrLimitExceeded)
}

func TestPurchase_SettlementFailureWritesNothing(t *testing.T) {
	tm := setupTest(t)
	defer tearDownTest(tm)

	ctx := context.Background()

	tm.store.EXPECT().GetEvent(ctx, "event-1").Return(testEvent(), nil)
	tm.store.EXPECT().GetTier(ctx, "tier-1").Return(testTier(), nil)
	tm.store.EXPECT().CountTicketsByBuyer(ctx, "event-1", "buyer-1").Return(int64(0), nil)

	tm.ledger.EXPECT().
		TransferForPurchase(ctx, gomock.Any()).
		Return(nil, domain.ErrSettlementFailed)

	// No MaterializePurchase, ApplyRewards, mail or publish expectations:
	// a failed settlement must leave the database untouched.
	_, err := tm.service.Purchase(ctx, purchase.Input{
		Source:   purchase.SourceDirect,
		BuyerID:  "buyer-1",
		EventID:  "event-1",
		TierID:   "tier-1",
		Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrSettlementFailed)
}

func TestPurchase_GatewayVerificationFailure(t *testing.T) {
	tm := setupTest(t)
	defer tearDownTest(tm)

	ctx := context.Background()
	reference := "PSK_456"

	tm.store.EXPECT().GetTicketsByPaymentReference(ctx, reference).Return(nil, nil)
	tm.store.EXPECT().GetEvent(ctx, "event-1").Return(testEvent(), nil)
	tm.store.EXPECT().GetTier(ctx, "tier-1").Return(testTier(), nil)
	tm.store.EXPECT().CountTicketsByBuyer(ctx, "event-1", "buyer-1").Return(int64(0), nil)

	tm.gateway.EXPECT().
		VerifyTransaction(ctx, reference).
		Return(nil, domain.ErrSettlementFailed)

	_, err := tm.service.Purchase(ctx, purchase.Input{
		Source:           purchase.SourceDirect,
		BuyerID:          "buyer-1",
		EventID:          "event-1",
		TierID:           "tier-1",
		Quantity:         1,
		PaymentReference: &reference,
	})
	assert.ErrorIs(t, err, domain.ErrSettlementFailed)
}

func TestPurchase_WebhookSkipsGatewayVerification(t *testing.T) {
	tm := setupTest(t)
	defer tearDownTest(tm)

	ctx := context.Background()
	reference := "PSK_789"

	tm.store.EXPECT().GetTicketsByPaymentReference(ctx, reference).Return(nil, nil)
	tm.store.EXPECT().GetEvent(ctx, "event-1").Return(testEvent(), nil)
	tm.store.EXPECT().GetTier(ctx, "tier-1").Return(testTier(), nil)
	tm.store.EXPECT().CountTicketsByBuyer(ctx, "event-1", "buyer-1").Return(int64(0), nil)

	tm.ledger.EXPECT().
		TransferForPurchase(ctx, gomock.Any()).
		Return(&ledger.TransferResult{TransactionID: "tx", ExplorerURL: "url"}, nil)
	tm.ledger.EXPECT().Network().Return(domain.NetworkTestnet)
	tm.clock.EXPECT().Now().Return(testNow).AnyTimes()

	tm.store.EXPECT().MaterializePurchase(ctx, "tier-1", 1, gomock.Any()).Return(nil)
	tm.store.EXPECT().ApplyRewards(ctx, gomock.Any()).Return(false, nil)

	tm.store.EXPECT().GetProfile(ctx, "buyer-1").Return(testProfile(), nil)
	tm.mailer.EXPECT().Send(ctx, gomock.Any()).Return(nil)
	tm.publisher.EXPECT().PublishTicketPurchased(ctx, gomock.Any()).Return(nil)

	result, err := tm.service.Purchase(ctx, purchase.Input{
		Source:           purchase.SourceWebhook,
		BuyerID:          "buyer-1",
		EventID:          "event-1",
		TierID:           "tier-1",
		Quantity:         1,
		PaymentReference: &reference,
	})
	require.NoError(t, err)
	assert.False(t, result.BonusGranted)
}

func TestPurchase_SoldOutAtMaterialization(t *testing.T) {
	tm := setupTest(t)
	defer tearDownTest(tm)

	ctx := context.Background()

	tm.store.EXPECT().GetEvent(ctx, "event-1").Return(testEvent(), nil)
	tm.store.EXPECT().GetTier(ctx, "tier-1").Return(testTier(), nil)
	tm.store.EXPECT().CountTicketsByBuyer(ctx, "event-1", "buyer-1").Return(int64(0), nil)

	tm.ledger.EXPECT().
		TransferForPurchase(ctx, gomock.Any()).
		Return(&ledger.TransferResult{TransactionID: "tx", ExplorerURL: "url"}, nil)
	tm.ledger.EXPECT().Network().Return(domain.NetworkTestnet)
	tm.clock.EXPECT().Now().Return(testNow)

	// Another buyer won the race between the eligibility read and the write.
	tm.store.EXPECT().
		MaterializePurchase(ctx, "tier-1", 1, gomock.Any()).
		Return(domain.ErrSoldOut)

	_, err := tm.service.Purchase(ctx, purchase.Input{
		Source:   purchase.SourceDirect,
		BuyerID:  "buyer-1",
		EventID:  "event-1",
		TierID:   "tier-1",
		Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrSoldOut)
}

func TestPurchase_EventNotFound(t *testing.T) {
	tm := setupTest(t)
	defer tearDownTest(tm)

	ctx := context.Background()

	tm.store.EXPECT().GetEvent(ctx, "missing").Return(nil, nil)

	_, err := tm.service.Purchase(ctx, purchase.Input{
		Source:   purchase.SourceDirect,
		BuyerID:  "buyer-1",
		EventID:  "missing",
		TierID:   "tier-1",
		Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestPurchase_TierFromDifferentEvent(t *testing.T) {
	tm := setupTest(t)
	defer tearDownTest(tm)

	ctx := context.Background()

	tier := testTier()
	tier.EventID = "event-2"

	tm.store.EXPECT().GetEvent(ctx, "event-1").Return(testEvent(), nil)
	tm.store.EXPECT().GetTier(ctx, "tier-1").Return(tier, nil)

	_, err := tm.service.Purchase(ctx, purchase.Input{
		Source:   purchase.SourceDirect,
		BuyerID:  "buyer-1",
		EventID:  "event-1",
		TierID:   "tier-1",
		Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrTierNotFound)
}

func TestPreparePayment(t *testing.T) {
	tm := setupTest(t)
	defer tearDownTest(tm)

	ctx := context.Background()

	tm.store.EXPECT().GetEvent(ctx, "event-1").Return(testEvent(), nil)
	tm.store.EXPECT().GetTier(ctx, "tier-1").Return(testTier(), nil)
	tm.store.EXPECT().CountTicketsByBuyer(ctx, "event-1", "buyer-1").Return(int64(0), nil)

	intent, err := tm.service.PreparePayment(ctx, "buyer-1", "event-1", "tier-1", 2)
	require.NoError(t, err)

	assert.EqualValues(t, 5000, intent.AmountSubunits)
	assert.Equal(t, map[string]string{
		"eventId":  "event-1",
		"tierId":   "tier-1",
		"quantity": "2",
		"userId":   "buyer-1",
	}, intent.Metadata)
}

func TestPreparePayment_SoldOut(t *testing.T) {
	tm := setupTest(t)
	defer tearDownTest(tm)

	ctx := context.Background()

	tier := testTier()
	tier.QuantitySold = tier.QuantityTotal

	tm.store.EXPECT().GetEvent(ctx, "event-1").Return(testEvent(), nil)
	tm.store.EXPECT().GetTier(ctx, "tier-1").Return(tier, nil)
	tm.store.EXPECT().CountTicketsByBuyer(ctx, "event-1", "buyer-1").Return(int64(0), nil)

	_, err := tm.service.PreparePayment(ctx, "buyer-1", "event-1", "tier-1", 1)
	assert.ErrorIs(t, err, domain.ErrSoldOut)
}
