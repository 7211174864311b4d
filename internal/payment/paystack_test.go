package payment_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventra/eventra/internal/domain"
	"github.com/eventra/eventra/internal/mocks"
	"github.com/eventra/eventra/internal/payment"
)

func TestVerifyTransaction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	httpClient := mocks.NewMockHTTPClient(ctrl)
	gateway := payment.NewPaystackGateway("sk_test_key", httpClient)

	httpClient.EXPECT().
		Get(gomock.Any(), "https://api.paystack.co/transaction/verify/PSK_123",
			map[string]string{"Authorization": "Bearer sk_test_key"}, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ map[string]string, result interface{}) error {
			return json.Unmarshal([]byte(`{
				"status": true,
				"data": {"status": "success", "reference": "PSK_123", "amount": 5000, "paid_at": "2026-08-01T10:00:00Z"}
			}`), result)
		})

	result, err := gateway.VerifyTransaction(context.Background(), "PSK_123")
	require.NoError(t, err)
	assert.Equal(t, "PSK_123", result.Reference)
	assert.Equal(t, "50", result.Amount.String())
}

func TestVerifyTransactionFailedCharge(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	httpClient := mocks.NewMockHTTPClient(ctrl)
	gateway := payment.NewPaystackGateway("sk_test_key", httpClient)

	httpClient.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ map[string]string, result interface{}) error {
			return json.Unmarshal([]byte(`{"status": true, "data": {"status": "abandoned", "reference": "PSK_456"}}`), result)
		})

	_, err := gateway.VerifyTransaction(context.Background(), "PSK_456")
	assert.ErrorIs(t, err, domain.ErrSettlementFailed)
}
