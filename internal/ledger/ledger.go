package ledger

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/eventra/eventra/internal/domain"
)

//go:generate mockgen -source=ledger.go -destination=../mocks/mock_ledger.go -package=mocks -mock_names=Client=MockLedgerClient

// Client abstracts the Hedera operations the services need: the settlement
// transfer for purchases, certificate collection management, and mirror-node
// transaction verification.
type Client interface {
	// TransferForPurchase settles a ticket purchase on-ledger and returns
	// the transaction id plus its explorer URL.
	TransferForPurchase(ctx context.Context, input TransferInput) (*TransferResult, error)
	// CreateCertificateCollection creates the NFT collection for an event.
	CreateCertificateCollection(ctx context.Context, input CollectionInput) (*CollectionResult, error)
	// MintCertificates mints one NFT per metadata blob into an existing
	// collection and returns the assigned serial numbers in order.
	MintCertificates(ctx context.Context, tokenID string, metadata [][]byte) (*MintResult, error)
	// VerifyTransaction looks the transaction up on the mirror node.
	VerifyTransaction(ctx context.Context, transactionID string) (*TransactionStatus, error)
	// Network reports which Hedera network the client operates on.
	Network() domain.Network
}

// TransferInput describes a purchase settlement.
type TransferInput struct {
	// EventID feeds the transaction memo.
	EventID string
	// TotalPrice is the fiat total; the HBAR amount is derived from it.
	TotalPrice decimal.Decimal
}

// TransferResult is the outcome of a settlement transfer.
type TransferResult struct {
	TransactionID string
	ExplorerURL   string
}

// CollectionInput describes an event certificate collection.
type CollectionInput struct {
	EventTitle string
}

// CollectionResult is the outcome of a collection creation.
type CollectionResult struct {
	TokenID     string
	ExplorerURL string
}

// MintResult is the outcome of a mint transaction.
type MintResult struct {
	TransactionID string
	SerialNumbers []int64
}

// TransactionStatus is the mirror-node view of a transaction.
type TransactionStatus struct {
	TransactionID string
	Result        string
	Consensus     string
	ExplorerURL   string
}

// Verified reports whether the transaction reached consensus successfully.
func (s *TransactionStatus) Verified() bool {
	return s.Result == "SUCCESS"
}
