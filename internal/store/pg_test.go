package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/eventra/eventra/internal/domain"
	"github.com/eventra/eventra/internal/store/schema"
)

var (
	testDB      *gorm.DB
	pgContainer *postgres.PostgresContainer
)

// TestMain sets up the test database before running tests
func TestMain(m *testing.M) {
	ctx := context.Background()

	// Check if we should use an external database (for CI or local development)
	dbHost := os.Getenv("TEST_DB_HOST")
	dbPort := os.Getenv("TEST_DB_PORT")
	dbUser := os.Getenv("TEST_DB_USER")
	dbPassword := os.Getenv("TEST_DB_PASSWORD")
	dbName := os.Getenv("TEST_DB_NAME")

	var dsn string
	var err error

	if dbHost != "" {
		if dbPort == "" {
			dbPort = "5432"
		}
		if dbUser == "" {
			dbUser = "postgres"
		}
		if dbPassword == "" {
			dbPassword = "postgres"
		}
		if dbName == "" {
			dbName = "test_db"
		}

		dsn = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			dbHost, dbPort, dbUser, dbPassword, dbName)

		fmt.Printf("Using external database: %s:%s/%s\n", dbHost, dbPort, dbName)
	} else {
		pgContainer, err = postgres.Run(ctx,
			"postgres:18-alpine",
			postgres.WithDatabase("test_db"),
			postgres.WithUsername("postgres"),
			postgres.WithPassword("postgres"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
		if err != nil {
			fmt.Printf("Failed to start PostgreSQL container: %v\n", err)
			os.Exit(1)
		}

		dsn, err = pgContainer.ConnectionString(ctx, "sslmode=disable")
		if err != nil {
			fmt.Printf("Failed to get connection string: %v\n", err)
			terminateContainer(ctx)
			os.Exit(1)
		}

		fmt.Printf("Started PostgreSQL container\n")
	}

	testDB, err = gorm.Open(pgdriver.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		fmt.Printf("Failed to connect to database: %v\n", err)
		terminateContainer(ctx)
		os.Exit(1)
	}

	if err := initializeTestDatabase(testDB); err != nil {
		fmt.Printf("Failed to initialize database: %v\n", err)
		terminateContainer(ctx)
		os.Exit(1)
	}

	code := m.Run()

	terminateContainer(ctx)
	os.Exit(code)
}

func terminateContainer(ctx context.Context) {
	if pgContainer != nil {
		if err := pgContainer.Terminate(ctx); err != nil {
			fmt.Printf("Failed to terminate PostgreSQL container: %v\n", err)
		}
	}
}

// initializeTestDatabase runs the schema initialization SQL
func initializeTestDatabase(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	schemaPath := filepath.Join("..", "..", "db", "init_pg_db.sql")
	schemaSQL, err := os.ReadFile(schemaPath) //nolint:gosec,G304
	if err != nil {
		return fmt.Errorf("failed to read schema file: %w", err)
	}

	if _, err := sqlDB.Exec(string(schemaSQL)); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}

	return nil
}

// Tests use freshly generated ids everywhere, so they are isolated without
// truncating tables between runs.

func createTestProfile(t *testing.T) *schema.Profile {
	t.Helper()
	profile := &schema.Profile{
		ID:       uuid.NewString(),
		Email:    fmt.Sprintf("%s@example.com", uuid.NewString()),
		FullName: "Test User",
	}
	require.NoError(t, testDB.Create(profile).Error)
	return profile
}

func createTestEvent(t *testing.T, organizerID string, total int, price string) (*schema.Event, *schema.TicketTier) {
	t.Helper()

	event := &schema.Event{
		OrganizerID: organizerID,
		Title:       "Test Conference",
		EventDate:   time.Now().Add(30 * 24 * time.Hour),
		IsPaid:      true,
		IsActive:    true,
	}
	require.NoError(t, testDB.Create(event).Error)

	tier := &schema.TicketTier{
		EventID:       event.ID,
		TierName:      "General",
		Price:         decimal.RequireFromString(price),
		QuantityTotal: total,
	}
	require.NoError(t, testDB.Create(tier).Error)

	return event, tier
}

func newTestTicket(event *schema.Event, tier *schema.TicketTier, buyerID string, reference *string) *schema.Ticket {
	return &schema.Ticket{
		EventID:          event.ID,
		TierID:           tier.ID,
		BuyerID:          buyerID,
		TransactionHash:  "0.0.1234@1700000000.000000001",
		PaymentReference: reference,
		PurchasePrice:    tier.Price,
		NFTTokenID:       fmt.Sprintf("EVT-%s", uuid.NewString()),
		PurchaseDate:     time.Now(),
	}
}

func TestMaterializePurchase(t *testing.T) {
	s := NewPGStore(testDB)
	ctx := context.Background()

	organizer := createTestProfile(t)
	buyer := createTestProfile(t)
	event, tier := createTestEvent(t, organizer.ID, 10, "25.00")

	t.Run("increments inventory and creates tickets", func(t *testing.T) {
		tickets := []*schema.Ticket{
			newTestTicket(event, tier, buyer.ID, nil),
			newTestTicket(event, tier, buyer.ID, nil),
		}

		require.NoError(t, s.MaterializePurchase(ctx, tier.ID, 2, tickets))

		updated, err := s.GetTier(ctx, tier.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, updated.QuantitySold)

		count, err := s.CountTicketsByBuyer(ctx, event.ID, buyer.ID)
		require.NoError(t, err)
		assert.EqualValues(t, 2, count)
	})

	t.Run("rejects oversell and rolls back tickets", func(t *testing.T) {
		tickets := make([]*schema.Ticket, 9)
		for i := range tickets {
			tickets[i] = newTestTicket(event, tier, buyer.ID, nil)
		}

		err := s.MaterializePurchase(ctx, tier.ID, 9, tickets)
		assert.ErrorIs(t, err, domain.ErrSoldOut)

		updated, err := s.GetTier(ctx, tier.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, updated.QuantitySold)

		count, err := s.CountTicketsByBuyer(ctx, event.ID, buyer.ID)
		require.NoError(t, err)
		assert.EqualValues(t, 2, count)
	})
}

func TestMaterializePurchaseConcurrent(t *testing.T) {
	s := NewPGStore(testDB)
	ctx := context.Background()

	organizer := createTestProfile(t)
	event, tier := createTestEvent(t, organizer.ID, 1, "10.00")

	buyers := []*schema.Profile{createTestProfile(t), createTestProfile(t)}

	var wg sync.WaitGroup
	results := make([]error, len(buyers))

	for i, buyer := range buyers {
		wg.Add(1)
		go func(i int, buyerID string) {
			defer wg.Done()
			ticket := newTestTicket(event, tier, buyerID, nil)
			results[i] = s.MaterializePurchase(ctx, tier.ID, 1, []*schema.Ticket{ticket})
		}(i, buyer.ID)
	}
	wg.Wait()

	// Exactly one of the two buyers gets the last ticket.
	successes, soldOuts := 0, 0
	for _, err := range results {
		switch {
		case err == nil:
			successes++
		case assert.ErrorIs(t, err, domain.ErrSoldOut):
			soldOuts++
		}
	}
	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, soldOuts)

	updated, err := s.GetTier(ctx, tier.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, updated.QuantitySold)
}

func TestApplyRewards(t *testing.T) {
	s := NewPGStore(testDB)
	ctx := context.Background()

	organizer := createTestProfile(t)
	buyer := createTestProfile(t)
	event, _ := createTestEvent(t, organizer.ID, 10, "25.00")

	input := ApplyRewardsInput{
		UserID:       buyer.ID,
		EventID:      event.ID,
		EventTitle:   event.Title,
		PointsEarned: 500,
		Now:          time.Now(),
	}

	t.Run("first purchase includes the bonus", func(t *testing.T) {
		bonus, err := s.ApplyRewards(ctx, input)
		require.NoError(t, err)
		assert.True(t, bonus)

		profile, err := s.GetProfile(ctx, buyer.ID)
		require.NoError(t, err)
		assert.EqualValues(t, 550, profile.Points)
		assert.NotNil(t, profile.FirstPurchaseAt)

		rows, err := s.GetPointsTransactions(ctx, buyer.ID)
		require.NoError(t, err)
		require.Len(t, rows, 2)
	})

	t.Run("subsequent purchases earn without the bonus", func(t *testing.T) {
		bonus, err := s.ApplyRewards(ctx, input)
		require.NoError(t, err)
		assert.False(t, bonus)

		profile, err := s.GetProfile(ctx, buyer.ID)
		require.NoError(t, err)
		assert.EqualValues(t, 1050, profile.Points)

		rows, err := s.GetPointsTransactions(ctx, buyer.ID)
		require.NoError(t, err)
		require.Len(t, rows, 3)
	})
}

func TestGetTicketsByPaymentReference(t *testing.T) {
	s := NewPGStore(testDB)
	ctx := context.Background()

	organizer := createTestProfile(t)
	buyer := createTestProfile(t)
	event, tier := createTestEvent(t, organizer.ID, 10, "25.00")

	reference := fmt.Sprintf("PSK_%s", uuid.NewString())
	tickets := []*schema.Ticket{
		newTestTicket(event, tier, buyer.ID, &reference),
		newTestTicket(event, tier, buyer.ID, &reference),
	}
	require.NoError(t, s.MaterializePurchase(ctx, tier.ID, 2, tickets))

	found, err := s.GetTicketsByPaymentReference(ctx, reference)
	require.NoError(t, err)
	assert.Len(t, found, 2)

	missing, err := s.GetTicketsByPaymentReference(ctx, "PSK_unknown")
	require.NoError(t, err)
	assert.Empty(t, missing)
}

func TestResaleListings(t *testing.T) {
	s := NewPGStore(testDB)
	ctx := context.Background()

	organizer := createTestProfile(t)
	seller := createTestProfile(t)
	buyer := createTestProfile(t)
	event, tier := createTestEvent(t, organizer.ID, 10, "25.00")

	ticket := newTestTicket(event, tier, seller.ID, nil)
	require.NoError(t, s.MaterializePurchase(ctx, tier.ID, 1, []*schema.Ticket{ticket}))

	listing := &schema.ResaleListing{
		TicketID:      ticket.ID,
		SellerID:      seller.ID,
		OriginalPrice: tier.Price,
		ResalePrice:   decimal.RequireFromString("30.00"),
		Status:        string(domain.ListingStatusActive),
	}
	require.NoError(t, s.CreateResaleListing(ctx, listing))

	t.Run("second active listing is rejected", func(t *testing.T) {
		dup := &schema.ResaleListing{
			TicketID:      ticket.ID,
			SellerID:      seller.ID,
			OriginalPrice: tier.Price,
			ResalePrice:   decimal.RequireFromString("40.00"),
			Status:        string(domain.ListingStatusActive),
		}
		err := s.CreateResaleListing(ctx, dup)
		assert.ErrorIs(t, err, domain.ErrAlreadyListed)
	})

	t.Run("buying reassigns the ticket and closes the listing", func(t *testing.T) {
		require.NoError(t, s.CompleteResalePurchase(ctx, listing.ID, buyer.ID, time.Now()))

		got, err := s.GetResaleListing(ctx, listing.ID)
		require.NoError(t, err)
		assert.Equal(t, string(domain.ListingStatusSold), got.Status)
		assert.NotNil(t, got.SoldAt)

		transferred, err := s.GetTicket(ctx, ticket.ID)
		require.NoError(t, err)
		assert.Equal(t, buyer.ID, transferred.BuyerID)
	})

	t.Run("sold listing cannot be bought again", func(t *testing.T) {
		err := s.CompleteResalePurchase(ctx, listing.ID, buyer.ID, time.Now())
		assert.ErrorIs(t, err, domain.ErrListingNotFound)
	})
}

func TestSetEventCertificateToken(t *testing.T) {
	s := NewPGStore(testDB)
	ctx := context.Background()

	organizer := createTestProfile(t)
	event, _ := createTestEvent(t, organizer.ID, 10, "25.00")

	ok, err := s.SetEventCertificateToken(ctx, event.ID, "0.0.5005")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.SetEventCertificateToken(ctx, event.ID, "0.0.6006")
	require.NoError(t, err)
	assert.False(t, ok)

	got, err := s.GetEvent(ctx, event.ID)
	require.NoError(t, err)
	require.NotNil(t, got.CertificateTokenID)
	assert.Equal(t, "0.0.5005", *got.CertificateTokenID)
}

func TestCreateCertificate(t *testing.T) {
	s := NewPGStore(testDB)
	ctx := context.Background()

	organizer := createTestProfile(t)
	recipient := createTestProfile(t)
	event, _ := createTestEvent(t, organizer.ID, 10, "25.00")

	certificate := &schema.Certificate{
		EventID:         event.ID,
		RecipientID:     recipient.ID,
		NFTTokenID:      "0.0.5005",
		NFTSerialNumber: 1,
		Role:            string(domain.CertificateRoleAttendee),
		IssuedAt:        time.Now(),
	}
	require.NoError(t, s.CreateCertificate(ctx, certificate))

	dup := &schema.Certificate{
		EventID:         event.ID,
		RecipientID:     recipient.ID,
		NFTTokenID:      "0.0.5005",
		NFTSerialNumber: 2,
		Role:            string(domain.CertificateRoleSpeaker),
		IssuedAt:        time.Now(),
	}
	err := s.CreateCertificate(ctx, dup)
	assert.ErrorIs(t, err, domain.ErrCertificateExists)

	certs, err := s.ListCertificatesByRecipient(ctx, recipient.ID)
	require.NoError(t, err)
	require.Len(t, certs, 1)
	assert.EqualValues(t, 1, certs[0].NFTSerialNumber)
}

func TestGetProfileNotFound(t *testing.T) {
	s := NewPGStore(testDB)

	profile, err := s.GetProfile(context.Background(), uuid.NewString())
	require.NoError(t, err)
	assert.Nil(t, profile)
}

func TestListTicketHolderIDs(t *testing.T) {
	s := NewPGStore(testDB)
	ctx := context.Background()

	organizer := createTestProfile(t)
	alice := createTestProfile(t)
	bob := createTestProfile(t)
	event, tier := createTestEvent(t, organizer.ID, 10, "25.00")

	batch := []*schema.Ticket{
		newTestTicket(event, tier, alice.ID, nil),
		newTestTicket(event, tier, alice.ID, nil),
		newTestTicket(event, tier, bob.ID, nil),
	}
	require.NoError(t, s.MaterializePurchase(ctx, tier.ID, 3, batch))

	ids, err := s.ListTicketHolderIDs(ctx, event.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{alice.ID, bob.ID}, ids)
}
