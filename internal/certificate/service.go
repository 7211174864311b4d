package certificate

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gowebpki/jcs"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/eventra/eventra/internal/adapter"
	"github.com/eventra/eventra/internal/domain"
	"github.com/eventra/eventra/internal/ledger"
	"github.com/eventra/eventra/internal/logger"
	"github.com/eventra/eventra/internal/messaging"
	"github.com/eventra/eventra/internal/notification"
	"github.com/eventra/eventra/internal/store"
	"github.com/eventra/eventra/internal/store/schema"
)

// Service issues NFT attendance certificates: one collection per event, one
// serial per recipient.
type Service struct {
	store     store.Store
	ledger    ledger.Client
	mailer    notification.Mailer
	publisher messaging.Publisher
	clock     adapter.Clock
}

// NewService wires certificate issuance. mailer and publisher may be nil.
func NewService(
	st store.Store,
	ledgerClient ledger.Client,
	mailer notification.Mailer,
	publisher messaging.Publisher,
	clock adapter.Clock,
) *Service {
	return &Service{
		store:     st,
		ledger:    ledgerClient,
		mailer:    mailer,
		publisher: publisher,
		clock:     clock,
	}
}

// CreateCollection creates the event's NFT collection on-ledger and records
// its token id. Only the organizer may do this, and only once per event.
func (s *Service) CreateCollection(ctx context.Context, organizerID, eventID string) (*ledger.CollectionResult, error) {
	event, err := s.requireOrganizer(ctx, organizerID, eventID)
	if err != nil {
		return nil, err
	}
	if event.CertificateTokenID != nil {
		return nil, domain.ErrCollectionExists
	}

	result, err := s.ledger.CreateCertificateCollection(ctx, ledger.CollectionInput{
		EventTitle: event.Title,
	})
	if err != nil {
		return nil, err
	}

	recorded, err := s.store.SetEventCertificateToken(ctx, eventID, result.TokenID)
	if err != nil {
		return nil, err
	}
	if !recorded {
		// Lost a create race; the on-ledger token is orphaned but harmless.
		logger.WarnCtx(ctx, "certificate collection created twice",
			zap.String("event_id", eventID), zap.String("token_id", result.TokenID))
		return nil, domain.ErrCollectionExists
	}

	return result, nil
}

// MintResult is the outcome for one recipient in a mint call.
type MintResult struct {
	RecipientID string
	Certificate *schema.Certificate
	Err         error
}

// Mint issues a certificate to one recipient.
func (s *Service) Mint(ctx context.Context, organizerID, eventID, recipientID string, role domain.CertificateRole) (*schema.Certificate, error) {
	event, err := s.requireOrganizer(ctx, organizerID, eventID)
	if err != nil {
		return nil, err
	}

	results := s.mint(ctx, event, []Recipient{{ProfileID: recipientID, Role: role}})
	if results[0].Err != nil {
		return nil, results[0].Err
	}
	return results[0].Certificate, nil
}

// Recipient names one target of a batch mint.
type Recipient struct {
	ProfileID string
	Role      domain.CertificateRole
}

// BatchMint issues certificates to many recipients, aggregating per-item
// outcomes. One failed recipient never aborts the rest.
func (s *Service) BatchMint(ctx context.Context, organizerID, eventID string, recipients []Recipient) ([]MintResult, error) {
	event, err := s.requireOrganizer(ctx, organizerID, eventID)
	if err != nil {
		return nil, err
	}

	return s.mint(ctx, event, recipients), nil
}

// MyCertificates returns the recipient's certificates.
func (s *Service) MyCertificates(ctx context.Context, recipientID string) ([]schema.Certificate, error) {
	return s.store.ListCertificatesByRecipient(ctx, recipientID)
}

func (s *Service) requireOrganizer(ctx context.Context, organizerID, eventID string) (*schema.Event, error) {
	event, err := s.store.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, domain.ErrEventNotFound
	}
	if event.OrganizerID != organizerID {
		return nil, domain.ErrNotOrganizer
	}
	return event, nil
}

func (s *Service) mint(ctx context.Context, event *schema.Event, recipients []Recipient) []MintResult {
	results := make([]MintResult, len(recipients))

	for i, recipient := range recipients {
		results[i] = MintResult{RecipientID: recipient.ProfileID}
		certificate, err := s.mintOne(ctx, event, recipient)
		if err != nil {
			results[i].Err = err
			continue
		}
		results[i].Certificate = certificate
	}

	return results
}

func (s *Service) mintOne(ctx context.Context, event *schema.Event, recipient Recipient) (*schema.Certificate, error) {
	if event.CertificateTokenID == nil {
		return nil, domain.ErrCollectionNotFound
	}
	if !domain.ValidCertificateRole(recipient.Role) {
		return nil, fmt.Errorf("unknown certificate role %q", recipient.Role)
	}

	profile, err := s.store.GetProfile(ctx, recipient.ProfileID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, fmt.Errorf("recipient profile %s not found", recipient.ProfileID)
	}

	existing, err := s.store.GetCertificate(ctx, event.ID, recipient.ProfileID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrCertificateExists
	}

	now := s.clock.Now()
	metadata, err := certificateMetadata(event.ID, recipient.Role, now.Unix())
	if err != nil {
		return nil, err
	}

	mint, err := s.ledger.MintCertificates(ctx, *event.CertificateTokenID, [][]byte{metadata})
	if err != nil {
		return nil, err
	}
	if len(mint.SerialNumbers) == 0 {
		return nil, fmt.Errorf("mint receipt carried no serial numbers")
	}

	certificate := &schema.Certificate{
		EventID:         event.ID,
		RecipientID:     recipient.ProfileID,
		NFTTokenID:      *event.CertificateTokenID,
		NFTSerialNumber: mint.SerialNumbers[0],
		Role:            string(recipient.Role),
		Metadata:        datatypes.JSON(metadata),
		IssuedAt:        now,
	}
	if err := s.store.CreateCertificate(ctx, certificate); err != nil {
		return nil, err
	}

	s.notify(ctx, event, profile, certificate)

	return certificate, nil
}

// certificateMetadata builds the on-ledger metadata blob: canonical JSON
// with abbreviated keys and truncated values to respect the byte cap.
func certificateMetadata(eventID string, role domain.CertificateRole, issuedUnix int64) ([]byte, error) {
	shortEvent := eventID
	if len(shortEvent) > 8 {
		shortEvent = shortEvent[:8]
	}
	shortRole := string(role)
	if len(shortRole) > 25 {
		shortRole = shortRole[:25]
	}

	raw, err := json.Marshal(map[string]interface{}{
		"e": shortEvent,
		"r": shortRole,
		"t": issuedUnix,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal certificate metadata: %w", err)
	}

	canonical, err := jcs.Transform(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to canonicalize certificate metadata: %w", err)
	}
	if len(canonical) > domain.CertificateMetadataMaxBytes {
		return nil, fmt.Errorf("certificate metadata exceeds %d bytes", domain.CertificateMetadataMaxBytes)
	}

	return canonical, nil
}

func (s *Service) notify(ctx context.Context, event *schema.Event, profile *schema.Profile, certificate *schema.Certificate) {
	if s.mailer != nil {
		message := notification.CertificateIssued(
			profile.FullName,
			event.Title,
			certificate.Role,
			domain.ExplorerTokenURL(s.ledger.Network(), certificate.NFTTokenID),
		)
		message.To = profile.Email
		if err := s.mailer.Send(ctx, message); err != nil {
			logger.WarnCtx(ctx, "failed to send certificate email", zap.Error(err))
		}
	}

	if s.publisher != nil {
		err := s.publisher.PublishCertificateMinted(ctx, messaging.CertificateMinted{
			EventID:      event.ID,
			RecipientID:  certificate.RecipientID,
			TokenID:      certificate.NFTTokenID,
			SerialNumber: certificate.NFTSerialNumber,
			Role:         certificate.Role,
			MintedAt:     certificate.IssuedAt,
		})
		if err != nil {
			logger.WarnCtx(ctx, "failed to publish certificate.minted", zap.Error(err))
		}
	}
}
