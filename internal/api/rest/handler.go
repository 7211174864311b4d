package rest

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/eventra/eventra/internal/api/middleware"
	"github.com/eventra/eventra/internal/certificate"
	"github.com/eventra/eventra/internal/domain"
	"github.com/eventra/eventra/internal/ledger"
	"github.com/eventra/eventra/internal/logger"
	"github.com/eventra/eventra/internal/purchase"
	"github.com/eventra/eventra/internal/reminder"
	"github.com/eventra/eventra/internal/resale"
	"github.com/eventra/eventra/internal/store"
	"github.com/eventra/eventra/internal/store/schema"
	"github.com/eventra/eventra/internal/webhook"
)

// Handler defines the interface for REST API handlers
// This interface allows for easy mocking and testing
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// PaystackWebhook processes gateway charge events; the raw body is
	// authenticated with the x-paystack-signature header
	// POST /api/v1/webhooks/paystack
	PaystackWebhook(c *gin.Context)

	// PurchaseTickets runs the direct purchase flow for the authenticated buyer
	// POST /api/v1/tickets/purchase
	PurchaseTickets(c *gin.Context)

	// ListMyTickets retrieves the authenticated buyer's tickets, newest first
	// GET /api/v1/tickets
	ListMyTickets(c *gin.Context)

	// InitializePayment runs the eligibility pre-check and returns the charge
	// amount in subunits plus the metadata to stamp on the gateway transaction
	// POST /api/v1/payments/initialize
	InitializePayment(c *gin.Context)

	// RunEventReminders sends reminder emails for events starting in three days
	// GET /api/v1/jobs/event-reminders (cron secret)
	RunEventReminders(c *gin.Context)

	// CreateEvent creates an event together with its ticket tiers
	// POST /api/v1/events
	CreateEvent(c *gin.Context)

	// ListEvents retrieves events, optionally only active ones
	// GET /api/v1/events?active=true
	ListEvents(c *gin.Context)

	// GetEvent retrieves a single event with its tiers
	// GET /api/v1/events/:id
	GetEvent(c *gin.Context)

	// CreateResaleListing lists one of the caller's tickets for resale
	// POST /api/v1/resale/listings
	CreateResaleListing(c *gin.Context)

	// ListResaleListings retrieves all active resale listings
	// GET /api/v1/resale/listings
	ListResaleListings(c *gin.Context)

	// BuyResaleListing buys an active listing and reassigns the ticket
	// POST /api/v1/resale/listings/:id/buy
	BuyResaleListing(c *gin.Context)

	// CreateCertificateCollection creates the event's NFT certificate
	// collection on-ledger (organizer only)
	// POST /api/v1/events/:id/certificates/collection
	CreateCertificateCollection(c *gin.Context)

	// MintCertificate mints a single certificate for a recipient (organizer only)
	// POST /api/v1/events/:id/certificates
	MintCertificate(c *gin.Context)

	// BatchMintCertificates mints certificates for many recipients; per-item
	// failures are reported, never aborting the batch (organizer only)
	// POST /api/v1/events/:id/certificates/batch
	BatchMintCertificates(c *gin.Context)

	// ListMyCertificates retrieves the authenticated user's certificates
	// GET /api/v1/certificates
	ListMyCertificates(c *gin.Context)

	// GetPoints retrieves the authenticated user's balance and reward ledger
	// GET /api/v1/points
	GetPoints(c *gin.Context)

	// VerifyLedgerTransaction looks a transaction up on the mirror node
	// GET /api/v1/ledger/transactions/:id/verify
	VerifyLedgerTransaction(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	store         store.Store
	purchases     *purchase.Service
	resales       *resale.Service
	certificates  *certificate.Service
	reminders     *reminder.Job
	ledger        ledger.Client
	webhookSecret string
}

// NewHandler creates a new REST API handler
func NewHandler(
	st store.Store,
	purchases *purchase.Service,
	resales *resale.Service,
	certificates *certificate.Service,
	reminders *reminder.Job,
	ledgerClient ledger.Client,
	webhookSecret string,
) Handler {
	return &handler{
		store:         st,
		purchases:     purchases,
		resales:       resales,
		certificates:  certificates,
		reminders:     reminders,
		ledger:        ledgerClient,
		webhookSecret: webhookSecret,
	}
}

// PaystackWebhook processes gateway charge events. The signature is checked
// against the raw body before anything is decoded; replays of an already
// materialized reference are acknowledged without reprocessing.
func (h *handler) PaystackWebhook(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		respondBadRequest(c, "Failed to read request body")
		return
	}

	signature := c.GetHeader(webhook.SignatureHeader)
	if !webhook.VerifySignature(h.webhookSecret, body, signature) {
		respondUnauthorized(c, "Invalid signature")
		return
	}

	var event webhook.PaystackEvent
	if err := json.Unmarshal(body, &event); err != nil {
		respondBadRequest(c, "Invalid webhook payload", err.Error())
		return
	}

	if event.Event != webhook.EventTypeChargeSuccess {
		c.JSON(http.StatusOK, gin.H{"message": "Event received"})
		return
	}

	quantity, err := event.Data.Metadata.Quantity.Int64()
	if err != nil || quantity <= 0 {
		respondBadRequest(c, "Invalid quantity in charge metadata")
		return
	}

	reference := event.Data.Reference
	result, err := h.purchases.Purchase(c.Request.Context(), purchase.Input{
		Source:           purchase.SourceWebhook,
		BuyerID:          event.Data.Metadata.UserID,
		EventID:          event.Data.Metadata.EventID,
		TierID:           event.Data.Metadata.TierID,
		Quantity:         int(quantity),
		PaymentReference: &reference,
	})
	if err != nil {
		logger.ErrorCtx(c.Request.Context(), err,
			zap.String("reference", reference),
			zap.String("event_id", event.Data.Metadata.EventID))
		respondDomainError(c, err)
		return
	}

	if result.AlreadyProcessed {
		c.JSON(http.StatusOK, gin.H{"message": "Already processed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":        "Tickets created",
		"tickets":        len(result.Tickets),
		"transaction_id": result.TransactionID,
	})
}

// purchaseRequest is the direct purchase input
type purchaseRequest struct {
	EventID          string  `json:"event_id" binding:"required"`
	TierID           string  `json:"tier_id" binding:"required"`
	Quantity         int     `json:"quantity" binding:"required,gt=0"`
	PaymentReference *string `json:"payment_reference"`
}

// PurchaseTickets runs the direct purchase flow for the authenticated buyer
func (h *handler) PurchaseTickets(c *gin.Context) {
	var req purchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	result, err := h.purchases.Purchase(c.Request.Context(), purchase.Input{
		Source:           purchase.SourceDirect,
		BuyerID:          middleware.Subject(c),
		EventID:          req.EventID,
		TierID:           req.TierID,
		Quantity:         req.Quantity,
		PaymentReference: req.PaymentReference,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}

	if result.AlreadyProcessed {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Already processed",
			"tickets": toTicketResponses(result.Tickets),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":        true,
		"message":        "Tickets purchased",
		"tickets":        toTicketResponses(result.Tickets),
		"transaction_id": result.TransactionID,
		"explorer_url":   result.ExplorerURL,
		"points_earned":  result.PointsEarned,
		"bonus_granted":  result.BonusGranted,
	})
}

// ListMyTickets retrieves the authenticated buyer's tickets
func (h *handler) ListMyTickets(c *gin.Context) {
	tickets, err := h.store.ListTicketsByBuyer(c.Request.Context(), middleware.Subject(c))
	if err != nil {
		respondInternalError(c, err, "Failed to list tickets")
		return
	}

	c.JSON(http.StatusOK, gin.H{"tickets": toTicketResponses(tickets)})
}

// initializePaymentRequest is the gateway pre-check input
type initializePaymentRequest struct {
	EventID  string `json:"event_id" binding:"required"`
	TierID   string `json:"tier_id" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,gt=0"`
}

// InitializePayment runs the eligibility pre-check and returns the charge
// parameters for the client-side gateway flow
func (h *handler) InitializePayment(c *gin.Context) {
	var req initializePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	intent, err := h.purchases.PreparePayment(c.Request.Context(), middleware.Subject(c), req.EventID, req.TierID, req.Quantity)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"amount":   intent.AmountSubunits,
		"metadata": intent.Metadata,
	})
}

// RunEventReminders runs the reminder job and reports the send summary
func (h *handler) RunEventReminders(c *gin.Context) {
	summary, err := h.reminders.Run(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "Reminder job failed")
		return
	}

	c.JSON(http.StatusOK, summary)
}

// createEventRequest is the event creation input
type createEventRequest struct {
	Title             string              `json:"title" binding:"required"`
	Description       string              `json:"description"`
	EventDate         time.Time           `json:"event_date" binding:"required"`
	Location          string              `json:"location"`
	ImageURL          string              `json:"image_url"`
	MaxTicketsPerUser *int                `json:"max_tickets_per_user"`
	Tiers             []createTierRequest `json:"tiers" binding:"required,min=1,dive"`
}

// createTierRequest is one tier of the event creation input
type createTierRequest struct {
	TierName      string          `json:"tier_name" binding:"required"`
	Price         decimal.Decimal `json:"price"`
	QuantityTotal int             `json:"quantity_total" binding:"required,gt=0"`
	Benefits      []string        `json:"benefits"`
}

// CreateEvent creates an event together with its ticket tiers. The event is
// paid when any tier carries a price greater than zero.
func (h *handler) CreateEvent(c *gin.Context) {
	var req createEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	event := &schema.Event{
		OrganizerID:       middleware.Subject(c),
		Title:             req.Title,
		Description:       req.Description,
		EventDate:         req.EventDate,
		Location:          req.Location,
		ImageURL:          req.ImageURL,
		IsActive:          true,
		MaxTicketsPerUser: req.MaxTicketsPerUser,
	}

	tiers := make([]*schema.TicketTier, 0, len(req.Tiers))
	for _, t := range req.Tiers {
		if t.Price.IsNegative() {
			respondValidationError(c, "tier price must not be negative")
			return
		}
		if t.Price.IsPositive() {
			event.IsPaid = true
		}

		tier := &schema.TicketTier{
			TierName:      t.TierName,
			Price:         t.Price,
			QuantityTotal: t.QuantityTotal,
		}
		if len(t.Benefits) > 0 {
			benefits, err := json.Marshal(t.Benefits)
			if err != nil {
				respondInternalError(c, err, "Failed to encode tier benefits")
				return
			}
			tier.Benefits = benefits
		}
		tiers = append(tiers, tier)
	}

	if err := h.store.CreateEvent(c.Request.Context(), event, tiers); err != nil {
		respondInternalError(c, err, "Failed to create event")
		return
	}

	for _, t := range tiers {
		event.Tiers = append(event.Tiers, *t)
	}

	c.JSON(http.StatusCreated, toEventResponse(*event))
}

// ListEvents retrieves events, optionally only active ones
func (h *handler) ListEvents(c *gin.Context) {
	activeOnly := c.Query("active") == "true"

	events, err := h.store.ListEvents(c.Request.Context(), activeOnly)
	if err != nil {
		respondInternalError(c, err, "Failed to list events")
		return
	}

	resp := make([]EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, toEventResponse(e))
	}

	c.JSON(http.StatusOK, gin.H{"events": resp})
}

// GetEvent retrieves a single event with its tiers
func (h *handler) GetEvent(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		respondBadRequest(c, "Event ID is required")
		return
	}

	event, err := h.store.GetEvent(c.Request.Context(), id)
	if err != nil {
		respondInternalError(c, err, "Failed to get event")
		return
	}
	if event == nil {
		respondDomainError(c, domain.ErrEventNotFound)
		return
	}

	c.JSON(http.StatusOK, toEventResponse(*event))
}

// createListingRequest is the resale listing input
type createListingRequest struct {
	TicketID    string          `json:"ticket_id" binding:"required"`
	ResalePrice decimal.Decimal `json:"resale_price" binding:"required"`
}

// CreateResaleListing lists one of the caller's tickets for resale
func (h *handler) CreateResaleListing(c *gin.Context) {
	var req createListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	listing, err := h.resales.List(c.Request.Context(), middleware.Subject(c), req.TicketID, req.ResalePrice)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toListingResponse(*listing))
}

// ListResaleListings retrieves all active resale listings
func (h *handler) ListResaleListings(c *gin.Context) {
	listings, err := h.resales.Browse(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "Failed to list resale listings")
		return
	}

	resp := make([]ListingResponse, 0, len(listings))
	for _, l := range listings {
		resp = append(resp, toListingResponse(l))
	}

	c.JSON(http.StatusOK, gin.H{"listings": resp})
}

// BuyResaleListing buys an active listing and reassigns the ticket
func (h *handler) BuyResaleListing(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		respondBadRequest(c, "Listing ID is required")
		return
	}

	listing, err := h.resales.Buy(c.Request.Context(), middleware.Subject(c), id)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, toListingResponse(*listing))
}

// CreateCertificateCollection creates the event's NFT certificate collection
func (h *handler) CreateCertificateCollection(c *gin.Context) {
	eventID := c.Param("id")
	if eventID == "" {
		respondBadRequest(c, "Event ID is required")
		return
	}

	result, err := h.certificates.CreateCollection(c.Request.Context(), middleware.Subject(c), eventID)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"token_id":     result.TokenID,
		"explorer_url": result.ExplorerURL,
	})
}

// mintCertificateRequest is the single mint input
type mintCertificateRequest struct {
	RecipientID string `json:"recipient_id" binding:"required"`
	Role        string `json:"role" binding:"required"`
}

// MintCertificate mints a single certificate for a recipient
func (h *handler) MintCertificate(c *gin.Context) {
	eventID := c.Param("id")
	if eventID == "" {
		respondBadRequest(c, "Event ID is required")
		return
	}

	var req mintCertificateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	cert, err := h.certificates.Mint(c.Request.Context(), middleware.Subject(c), eventID, req.RecipientID, domain.CertificateRole(req.Role))
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toCertificateResponse(*cert))
}

// batchMintRequest is the batch mint input
type batchMintRequest struct {
	Recipients []mintCertificateRequest `json:"recipients" binding:"required,min=1,dive"`
}

// batchMintItemResponse is one recipient's outcome within a batch mint
type batchMintItemResponse struct {
	RecipientID string               `json:"recipient_id"`
	Certificate *CertificateResponse `json:"certificate,omitempty"`
	Error       string               `json:"error,omitempty"`
}

// BatchMintCertificates mints certificates for many recipients; one
// recipient's failure never aborts the rest
func (h *handler) BatchMintCertificates(c *gin.Context) {
	eventID := c.Param("id")
	if eventID == "" {
		respondBadRequest(c, "Event ID is required")
		return
	}

	var req batchMintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	recipients := make([]certificate.Recipient, 0, len(req.Recipients))
	for _, r := range req.Recipients {
		recipients = append(recipients, certificate.Recipient{
			ProfileID: r.RecipientID,
			Role:      domain.CertificateRole(r.Role),
		})
	}

	results, err := h.certificates.BatchMint(c.Request.Context(), middleware.Subject(c), eventID, recipients)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	var minted, failed int
	items := make([]batchMintItemResponse, 0, len(results))
	for _, r := range results {
		item := batchMintItemResponse{RecipientID: r.RecipientID}
		if r.Err != nil {
			failed++
			item.Error = r.Err.Error()
		} else {
			minted++
			resp := toCertificateResponse(*r.Certificate)
			item.Certificate = &resp
		}
		items = append(items, item)
	}

	c.JSON(http.StatusOK, gin.H{
		"minted":  minted,
		"failed":  failed,
		"results": items,
	})
}

// ListMyCertificates retrieves the authenticated user's certificates
func (h *handler) ListMyCertificates(c *gin.Context) {
	certs, err := h.certificates.MyCertificates(c.Request.Context(), middleware.Subject(c))
	if err != nil {
		respondInternalError(c, err, "Failed to list certificates")
		return
	}

	resp := make([]CertificateResponse, 0, len(certs))
	for _, cert := range certs {
		resp = append(resp, toCertificateResponse(cert))
	}

	c.JSON(http.StatusOK, gin.H{"certificates": resp})
}

// GetPoints retrieves the authenticated user's cached balance and reward ledger
func (h *handler) GetPoints(c *gin.Context) {
	userID := middleware.Subject(c)

	profile, err := h.store.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondInternalError(c, err, "Failed to get profile")
		return
	}

	var balance int64
	if profile != nil {
		balance = profile.Points
	}

	transactions, err := h.store.GetPointsTransactions(c.Request.Context(), userID)
	if err != nil {
		respondInternalError(c, err, "Failed to get points transactions")
		return
	}

	resp := make([]PointsTransactionResponse, 0, len(transactions))
	for _, t := range transactions {
		resp = append(resp, PointsTransactionResponse{
			ID:          t.ID,
			Points:      t.Points,
			Type:        t.Type,
			Description: t.Description,
			EventID:     t.EventID,
			CreatedAt:   t.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"balance":      balance,
		"transactions": resp,
	})
}

// VerifyLedgerTransaction looks a settlement transaction up on the mirror node
func (h *handler) VerifyLedgerTransaction(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		respondBadRequest(c, "Transaction ID is required")
		return
	}

	status, err := h.ledger.VerifyTransaction(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, http.StatusBadGateway, errCodeServiceError, "Failed to verify transaction", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"transaction_id": status.TransactionID,
		"result":         status.Result,
		"verified":       status.Verified(),
		"consensus_at":   status.Consensus,
		"explorer_url":   status.ExplorerURL,
	})
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "eventra-api",
	})
}
