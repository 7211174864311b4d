package ledger

import (
	"context"
	"fmt"
	"strings"

	"github.com/hashgraph/hedera-sdk-go/v2"
	"github.com/shopspring/decimal"

	"github.com/eventra/eventra/internal/adapter"
	"github.com/eventra/eventra/internal/domain"
)

// Config carries the Hedera credentials and network selection.
type Config struct {
	Network           string
	OperatorAccountID string
	OperatorKey       string
	TreasuryAccountID string
}

type hederaClient struct {
	client     *hedera.Client
	network    domain.Network
	operatorID hedera.AccountID
	treasuryID hedera.AccountID
	operator   hedera.PrivateKey
	http       adapter.HTTPClient
}

// NewHederaClient builds a Client for the configured network. The mirror
// node backing VerifyTransaction is reached through the injected HTTP
// adapter.
func NewHederaClient(cfg Config, httpClient adapter.HTTPClient) (Client, error) {
	operatorID, err := hedera.AccountIDFromString(cfg.OperatorAccountID)
	if err != nil {
		return nil, fmt.Errorf("invalid operator account id: %w", err)
	}

	operatorKey, err := hedera.PrivateKeyFromString(cfg.OperatorKey)
	if err != nil {
		return nil, fmt.Errorf("invalid operator key: %w", err)
	}

	treasuryID, err := hedera.AccountIDFromString(cfg.TreasuryAccountID)
	if err != nil {
		return nil, fmt.Errorf("invalid treasury account id: %w", err)
	}

	network := domain.Network(cfg.Network)
	var client *hedera.Client
	switch network {
	case domain.NetworkMainnet:
		client = hedera.ClientForMainnet()
	case domain.NetworkTestnet:
		client = hedera.ClientForTestnet()
	default:
		return nil, fmt.Errorf("unknown network %q", cfg.Network)
	}
	client.SetOperator(operatorID, operatorKey)

	return &hederaClient{
		client:     client,
		network:    network,
		operatorID: operatorID,
		treasuryID: treasuryID,
		operator:   operatorKey,
		http:       httpClient,
	}, nil
}

func (h *hederaClient) Network() domain.Network {
	return h.network
}

// hbarAmount converts the fiat total into whole HBAR: ceil(total / 10),
// never below 1.
func hbarAmount(totalPrice decimal.Decimal) int64 {
	amount := totalPrice.Div(decimal.NewFromInt(10)).Ceil().IntPart()
	if amount < 1 {
		amount = 1
	}
	return amount
}

func (h *hederaClient) TransferForPurchase(ctx context.Context, input TransferInput) (*TransferResult, error) {
	amount := hedera.NewHbar(float64(hbarAmount(input.TotalPrice)))

	resp, err := hedera.NewTransferTransaction().
		AddHbarTransfer(h.operatorID, amount.Negated()).
		AddHbarTransfer(h.treasuryID, amount).
		SetTransactionMemo(domain.SettlementMemo(input.EventID)).
		Execute(h.client)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSettlementFailed, err)
	}

	if _, err := resp.GetReceipt(h.client); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSettlementFailed, err)
	}

	transactionID := resp.TransactionID.String()
	return &TransferResult{
		TransactionID: transactionID,
		ExplorerURL:   domain.ExplorerTransactionURL(h.network, transactionID),
	}, nil
}

func (h *hederaClient) CreateCertificateCollection(ctx context.Context, input CollectionInput) (*CollectionResult, error) {
	name := input.EventTitle
	if len(name) > 25 {
		name = name[:25]
	}
	name += " Certificates"

	tx, err := hedera.NewTokenCreateTransaction().
		SetTokenName(name).
		SetTokenSymbol(domain.CertificateSymbol).
		SetTokenType(hedera.TokenTypeNonFungibleUnique).
		SetDecimals(0).
		SetInitialSupply(0).
		SetTreasuryAccountID(h.operatorID).
		SetSupplyType(hedera.TokenSupplyTypeFinite).
		SetMaxSupply(domain.CertificateCollectionMaxSupply).
		SetSupplyKey(h.operator.PublicKey()).
		FreezeWith(h.client)
	if err != nil {
		return nil, fmt.Errorf("failed to freeze token create transaction: %w", err)
	}

	resp, err := tx.Sign(h.operator).Execute(h.client)
	if err != nil {
		return nil, fmt.Errorf("failed to create certificate collection: %w", err)
	}

	receipt, err := resp.GetReceipt(h.client)
	if err != nil {
		return nil, fmt.Errorf("failed to get token create receipt: %w", err)
	}
	if receipt.TokenID == nil {
		return nil, fmt.Errorf("token create receipt missing token id")
	}

	tokenID := receipt.TokenID.String()
	return &CollectionResult{
		TokenID:     tokenID,
		ExplorerURL: domain.ExplorerTokenURL(h.network, tokenID),
	}, nil
}

func (h *hederaClient) MintCertificates(ctx context.Context, tokenID string, metadata [][]byte) (*MintResult, error) {
	tid, err := hedera.TokenIDFromString(tokenID)
	if err != nil {
		return nil, fmt.Errorf("invalid token id: %w", err)
	}

	for _, blob := range metadata {
		if len(blob) > domain.CertificateMetadataMaxBytes {
			return nil, fmt.Errorf("certificate metadata exceeds %d bytes", domain.CertificateMetadataMaxBytes)
		}
	}

	tx, err := hedera.NewTokenMintTransaction().
		SetTokenID(tid).
		SetMetadatas(metadata).
		FreezeWith(h.client)
	if err != nil {
		return nil, fmt.Errorf("failed to freeze mint transaction: %w", err)
	}

	resp, err := tx.Sign(h.operator).Execute(h.client)
	if err != nil {
		return nil, fmt.Errorf("failed to mint certificates: %w", err)
	}

	receipt, err := resp.GetReceipt(h.client)
	if err != nil {
		return nil, fmt.Errorf("failed to get mint receipt: %w", err)
	}

	return &MintResult{
		TransactionID: resp.TransactionID.String(),
		SerialNumbers: receipt.SerialNumbers,
	}, nil
}

// mirrorTransaction is the mirror-node representation of a transaction.
type mirrorTransaction struct {
	Result             string `json:"result"`
	ConsensusTimestamp string `json:"consensus_timestamp"`
}

type mirrorTransactionsResponse struct {
	Transactions []mirrorTransaction `json:"transactions"`
}

func (h *hederaClient) mirrorBaseURL() string {
	if h.network == domain.NetworkMainnet {
		return "https://mainnet-public.mirrornode.hedera.com"
	}
	return "https://testnet.mirrornode.hedera.com"
}

// mirrorTransactionID converts the SDK id form "0.0.x@sec.nanos" into the
// mirror-node path form "0.0.x-sec-nanos".
func mirrorTransactionID(transactionID string) string {
	parts := strings.SplitN(transactionID, "@", 2)
	if len(parts) != 2 {
		return transactionID
	}
	return parts[0] + "-" + strings.Replace(parts[1], ".", "-", 1)
}

func (h *hederaClient) VerifyTransaction(ctx context.Context, transactionID string) (*TransactionStatus, error) {
	url := fmt.Sprintf("%s/api/v1/transactions/%s", h.mirrorBaseURL(), mirrorTransactionID(transactionID))

	var resp mirrorTransactionsResponse
	if err := h.http.Get(ctx, url, nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to query mirror node: %w", err)
	}
	if len(resp.Transactions) == 0 {
		return nil, fmt.Errorf("transaction %s not found on mirror node", transactionID)
	}

	tx := resp.Transactions[0]
	return &TransactionStatus{
		TransactionID: transactionID,
		Result:        tx.Result,
		Consensus:     tx.ConsensusTimestamp,
		ExplorerURL:   domain.ExplorerTransactionURL(h.network, transactionID),
	}, nil
}
