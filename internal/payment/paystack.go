package payment

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/eventra/eventra/internal/adapter"
	"github.com/eventra/eventra/internal/domain"
)

//go:generate mockgen -source=paystack.go -destination=../mocks/mock_payment.go -package=mocks -mock_names=Gateway=MockGateway

// Gateway abstracts the payment provider verification call.
type Gateway interface {
	// VerifyTransaction confirms with the provider that the referenced
	// charge actually succeeded. It returns domain.ErrSettlementFailed when
	// the charge did not.
	VerifyTransaction(ctx context.Context, reference string) (*VerifyResult, error)
}

// VerifyResult is the provider's view of a verified charge.
type VerifyResult struct {
	Reference string
	// Amount is the charged amount in the main currency unit.
	Amount decimal.Decimal
	PaidAt string
}

const paystackBaseURL = "https://api.paystack.co"

type paystackGateway struct {
	secretKey string
	http      adapter.HTTPClient
}

// NewPaystackGateway returns a Gateway backed by the Paystack API.
func NewPaystackGateway(secretKey string, httpClient adapter.HTTPClient) Gateway {
	return &paystackGateway{
		secretKey: secretKey,
		http:      httpClient,
	}
}

type paystackVerifyResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		Status    string `json:"status"`
		Reference string `json:"reference"`
		// Amount is in currency subunits.
		Amount int64  `json:"amount"`
		PaidAt string `json:"paid_at"`
	} `json:"data"`
}

func (g *paystackGateway) VerifyTransaction(ctx context.Context, reference string) (*VerifyResult, error) {
	url := fmt.Sprintf("%s/transaction/verify/%s", paystackBaseURL, reference)
	headers := map[string]string{
		"Authorization": "Bearer " + g.secretKey,
	}

	var resp paystackVerifyResponse
	if err := g.http.Get(ctx, url, headers, &resp); err != nil {
		return nil, fmt.Errorf("failed to verify transaction with paystack: %w", err)
	}

	if !resp.Status || resp.Data.Status != "success" {
		return nil, fmt.Errorf("%w: charge %s is %q", domain.ErrSettlementFailed, reference, resp.Data.Status)
	}

	return &VerifyResult{
		Reference: resp.Data.Reference,
		Amount:    decimal.NewFromInt(resp.Data.Amount).Div(decimal.NewFromInt(100)),
		PaidAt:    resp.Data.PaidAt,
	}, nil
}
