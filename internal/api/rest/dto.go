package rest

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/eventra/eventra/internal/store/schema"
)

// EventResponse is the API representation of an event
type EventResponse struct {
	ID                 string         `json:"id"`
	OrganizerID        string         `json:"organizer_id"`
	Title              string         `json:"title"`
	Description        string         `json:"description,omitempty"`
	EventDate          time.Time      `json:"event_date"`
	Location           string         `json:"location,omitempty"`
	ImageURL           string         `json:"image_url,omitempty"`
	IsPaid             bool           `json:"is_paid"`
	IsActive           bool           `json:"is_active"`
	MaxTicketsPerUser  *int           `json:"max_tickets_per_user,omitempty"`
	CertificateTokenID *string        `json:"certificate_token_id,omitempty"`
	Tiers              []TierResponse `json:"tiers,omitempty"`
	CreatedAt          time.Time      `json:"created_at"`
}

// TierResponse is the API representation of a ticket tier
type TierResponse struct {
	ID            string          `json:"id"`
	TierName      string          `json:"tier_name"`
	Price         decimal.Decimal `json:"price"`
	QuantityTotal int             `json:"quantity_total"`
	QuantitySold  int             `json:"quantity_sold"`
	Benefits      json.RawMessage `json:"benefits,omitempty"`
}

// TicketResponse is the API representation of a ticket
type TicketResponse struct {
	ID               string          `json:"id"`
	EventID          string          `json:"event_id"`
	TierID           string          `json:"tier_id"`
	BuyerID          string          `json:"buyer_id"`
	TransactionHash  string          `json:"transaction_hash"`
	PaymentReference *string         `json:"payment_reference,omitempty"`
	PurchasePrice    decimal.Decimal `json:"purchase_price"`
	NFTTokenID       string          `json:"nft_token_id"`
	Metadata         json.RawMessage `json:"metadata,omitempty"`
	PurchaseDate     time.Time       `json:"purchase_date"`
}

// ListingResponse is the API representation of a resale listing
type ListingResponse struct {
	ID            string          `json:"id"`
	TicketID      string          `json:"ticket_id"`
	SellerID      string          `json:"seller_id"`
	OriginalPrice decimal.Decimal `json:"original_price"`
	ResalePrice   decimal.Decimal `json:"resale_price"`
	Status        string          `json:"status"`
	SoldAt        *time.Time      `json:"sold_at,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// CertificateResponse is the API representation of a minted certificate
type CertificateResponse struct {
	ID              string          `json:"id"`
	EventID         string          `json:"event_id"`
	RecipientID     string          `json:"recipient_id"`
	NFTTokenID      string          `json:"nft_token_id"`
	NFTSerialNumber int64           `json:"nft_serial_number"`
	Role            string          `json:"role"`
	Metadata        json.RawMessage `json:"metadata,omitempty"`
	IssuedAt        time.Time       `json:"issued_at"`
}

// PointsTransactionResponse is one row of the reward ledger
type PointsTransactionResponse struct {
	ID          string    `json:"id"`
	Points      int64     `json:"points"`
	Type        string    `json:"type"`
	Description string    `json:"description,omitempty"`
	EventID     *string   `json:"event_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func toEventResponse(e schema.Event) EventResponse {
	resp := EventResponse{
		ID:                 e.ID,
		OrganizerID:        e.OrganizerID,
		Title:              e.Title,
		Description:        e.Description,
		EventDate:          e.EventDate,
		Location:           e.Location,
		ImageURL:           e.ImageURL,
		IsPaid:             e.IsPaid,
		IsActive:           e.IsActive,
		MaxTicketsPerUser:  e.MaxTicketsPerUser,
		CertificateTokenID: e.CertificateTokenID,
		CreatedAt:          e.CreatedAt,
	}
	for _, t := range e.Tiers {
		resp.Tiers = append(resp.Tiers, toTierResponse(t))
	}
	return resp
}

func toTierResponse(t schema.TicketTier) TierResponse {
	return TierResponse{
		ID:            t.ID,
		TierName:      t.TierName,
		Price:         t.Price,
		QuantityTotal: t.QuantityTotal,
		QuantitySold:  t.QuantitySold,
		Benefits:      json.RawMessage(t.Benefits),
	}
}

func toTicketResponse(t schema.Ticket) TicketResponse {
	return TicketResponse{
		ID:               t.ID,
		EventID:          t.EventID,
		TierID:           t.TierID,
		BuyerID:          t.BuyerID,
		TransactionHash:  t.TransactionHash,
		PaymentReference: t.PaymentReference,
		PurchasePrice:    t.PurchasePrice,
		NFTTokenID:       t.NFTTokenID,
		Metadata:         json.RawMessage(t.Metadata),
		PurchaseDate:     t.PurchaseDate,
	}
}

func toTicketResponses(tickets []schema.Ticket) []TicketResponse {
	resp := make([]TicketResponse, 0, len(tickets))
	for _, t := range tickets {
		resp = append(resp, toTicketResponse(t))
	}
	return resp
}

func toListingResponse(l schema.ResaleListing) ListingResponse {
	return ListingResponse{
		ID:            l.ID,
		TicketID:      l.TicketID,
		SellerID:      l.SellerID,
		OriginalPrice: l.OriginalPrice,
		ResalePrice:   l.ResalePrice,
		Status:        l.Status,
		SoldAt:        l.SoldAt,
		CreatedAt:     l.CreatedAt,
	}
}

func toCertificateResponse(c schema.Certificate) CertificateResponse {
	return CertificateResponse{
		ID:              c.ID,
		EventID:         c.EventID,
		RecipientID:     c.RecipientID,
		NFTTokenID:      c.NFTTokenID,
		NFTSerialNumber: c.NFTSerialNumber,
		Role:            c.Role,
		Metadata:        json.RawMessage(c.Metadata),
		IssuedAt:        c.IssuedAt,
	}
}
