package domain

import (
	"errors"
)

var (
	// ErrNotAuthenticated is returned when a request carries no valid identity.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrEventNotFound is returned when the referenced event does not exist.
	ErrEventNotFound = errors.New("event not found")

	// ErrTierNotFound is returned when the referenced ticket tier does not
	// exist or does not belong to the event.
	ErrTierNotFound = errors.New("ticket tier not found")

	// ErrTicketNotFound is returned when the referenced ticket does not exist.
	ErrTicketNotFound = errors.New("ticket not found")

	// ErrSelfPurchase is returned when an organizer attempts to buy tickets
	// for their own event.
	ErrSelfPurchase = errors.New("organizers cannot purchase tickets for their own event")

	// ErrLimitExceeded is returned when a purchase would push the buyer past
	// the event's per-user ticket limit.
	ErrLimitExceeded = errors.New("purchase exceeds the per-user ticket limit")

	// ErrSoldOut is returned when the tier has fewer unsold tickets than
	// requested.
	ErrSoldOut = errors.New("not enough tickets remaining")

	// ErrInvalidSignature is returned when a webhook payload fails
	// signature verification.
	ErrInvalidSignature = errors.New("invalid webhook signature")

	// ErrSettlementFailed is returned when the on-ledger settlement transfer
	// cannot be completed.
	ErrSettlementFailed = errors.New("settlement transfer failed")

	// ErrAlreadyProcessed is returned when a payment reference has already
	// materialized tickets.
	ErrAlreadyProcessed = errors.New("payment reference already processed")

	// ErrAlreadyListed is returned when a ticket already has an active
	// resale listing.
	ErrAlreadyListed = errors.New("ticket is already listed for resale")

	// ErrListingNotFound is returned when the referenced resale listing does
	// not exist or is no longer active.
	ErrListingNotFound = errors.New("resale listing not found")

	// ErrCertificateExists is returned when a certificate was already minted
	// for the ticket.
	ErrCertificateExists = errors.New("certificate already minted for ticket")

	// ErrCollectionExists is returned when the event already has a
	// certificate collection.
	ErrCollectionExists = errors.New("certificate collection already exists for event")

	// ErrCollectionNotFound is returned when the event has no certificate
	// collection yet.
	ErrCollectionNotFound = errors.New("certificate collection not found")

	// ErrNotOrganizer is returned when an operation reserved for the event
	// organizer is attempted by someone else.
	ErrNotOrganizer = errors.New("caller is not the event organizer")

	// ErrInvalidPrice is returned when a price is zero or negative.
	ErrInvalidPrice = errors.New("price must be greater than zero")

	// ErrNotTicketOwner is returned when an operation reserved for the
	// ticket owner is attempted by someone else.
	ErrNotTicketOwner = errors.New("caller does not own the ticket")
)
