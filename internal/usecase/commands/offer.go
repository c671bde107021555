package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"issuance-engine/internal/domain/offer"
	"issuance-engine/internal/domain/sequence"
	"issuance-engine/internal/pkg/clock"
	"issuance-engine/internal/pkg/errs"
	"issuance-engine/internal/pkg/metrics"
	"issuance-engine/internal/usecase/shared"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// validator instances cache struct metadata and are safe for concurrent use
var emailValidator = validator.New()

type OfferItemInput struct {
	Description string
	Quantity    decimal.Decimal
	Price       decimal.Decimal
	Discount    decimal.Decimal
	TaxRate     decimal.Decimal
}

type OfferInput struct {
	CustomerID       uuid.UUID
	Items            []OfferItemInput
	Notes            string
	DocumentTitle    string
	IntroductoryText string
	IssueDate        *time.Time
	ExpiryDate       *time.Time
	SendEmail        bool
}

type OfferResult struct {
	OfferID     uuid.UUID
	OfferNumber string
	Status      string
}

// OfferEmailPayload is the outbox payload for the offer_email job.
type OfferEmailPayload struct {
	OfferID       uuid.UUID `json:"offer_id"`
	OfferNumber   string    `json:"offer_number"`
	CustomerID    uuid.UUID `json:"customer_id"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	Total         string    `json:"total"`
}

//go:generate mockgen -source=offer.go -destination=../../../tests/mock/commands/offer_mock.go -package=commandsmock

type OfferCommands interface {
	CreateOffer(ctx context.Context, in OfferInput, actorID uuid.UUID) (*OfferResult, error)
	UpdateOffer(ctx context.Context, offerID uuid.UUID, in OfferInput) (*OfferResult, error)
	UpdateOfferStatus(ctx context.Context, offerID, customerID uuid.UUID, label string) error
	TrackEmailOpen(ctx context.Context, offerID, customerID uuid.UUID) (bool, error)
}

type offerUseCaseImpl struct {
	uow       shared.UnitOfWork
	allocator *SequenceAllocator
	clock     clock.Clock
	policy    Policy
	metrics   *metrics.Registry
}

func NewOfferUseCase(uow shared.UnitOfWork, allocator *SequenceAllocator, clk clock.Clock, policy Policy, m *metrics.Registry) OfferCommands {
	return &offerUseCaseImpl{
		uow:       uow,
		allocator: allocator,
		clock:     clk,
		policy:    policy,
		metrics:   m,
	}
}

func (in OfferInput) toContent() (offer.Content, error) {
	items := make([]offer.LineItem, 0, len(in.Items))
	for _, it := range in.Items {
		li, err := offer.NewLineItem(it.Description, it.Quantity, it.Price, it.Discount, it.TaxRate)
		if err != nil {
			return offer.Content{}, err
		}
		items = append(items, li)
	}
	content := offer.Content{
		Items:            items,
		Notes:            in.Notes,
		DocumentTitle:    in.DocumentTitle,
		IntroductoryText: in.IntroductoryText,
		IssueDate:        in.IssueDate,
		ExpiryDate:       in.ExpiryDate,
	}
	if err := content.Validate(); err != nil {
		return offer.Content{}, err
	}
	return content, nil
}

func (uc *offerUseCaseImpl) CreateOffer(ctx context.Context, in OfferInput, actorID uuid.UUID) (*OfferResult, error) {
	content, err := in.toContent()
	if err != nil {
		return nil, err
	}

	var created *offer.Offer
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()
		customer, err := uc.customerFor(ctx, tx, in.CustomerID, in.SendEmail)
		if err != nil {
			return err
		}

		key := sequence.OfferKeyAt(uc.policy.local(now))
		serial, err := uc.allocator.Allocate(ctx, tx, key, 1, Unbounded)
		if err != nil {
			return err
		}

		o, err := offer.NewOffer(offer.FormatNumber(uc.policy.OfferPrefix, key, serial), in.CustomerID, content, actorID, now)
		if err != nil {
			return err
		}
		if in.SendEmail {
			if err := o.MarkSent(now); err != nil {
				return err
			}
		}
		if err := tx.Offers().Create(ctx, o); err != nil {
			return err
		}
		if in.SendEmail {
			if err := enqueueOfferEmail(ctx, tx, o, customer, now); err != nil {
				return err
			}
		}
		created = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.metrics.RecordAllocation(string(sequence.DomainOffers), 1)
	uc.metrics.RecordOfferTransition(created.Status().String())
	slog.Info("offer created", "offer_id", created.ID(), "number", created.Number(), "status", created.Status())
	return resultOf(created), nil
}

// UpdateOffer rewrites a draft and optionally sends it. The number and the
// owning customer are never touched; a foreign customer id is NotFound.
func (uc *offerUseCaseImpl) UpdateOffer(ctx context.Context, offerID uuid.UUID, in OfferInput) (*OfferResult, error) {
	content, err := in.toContent()
	if err != nil {
		return nil, err
	}

	var updated *offer.Offer
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()
		o, err := tx.Offers().GetForUpdate(ctx, offerID)
		if err != nil {
			return notFoundAs(err, ErrOfferNotFound)
		}
		if !o.BelongsTo(in.CustomerID) {
			return errs.NotFound(ErrOfferNotFound)
		}
		if err := o.Edit(content, now); err != nil {
			return err
		}
		customer, err := uc.customerFor(ctx, tx, in.CustomerID, in.SendEmail)
		if err != nil {
			return err
		}
		if in.SendEmail {
			if err := o.MarkSent(now); err != nil {
				return err
			}
		}
		if err := tx.Offers().Update(ctx, o); err != nil {
			return err
		}
		if in.SendEmail {
			if err := enqueueOfferEmail(ctx, tx, o, customer, now); err != nil {
				return err
			}
		}
		updated = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	if in.SendEmail {
		uc.metrics.RecordOfferTransition(updated.Status().String())
	}
	return resultOf(updated), nil
}

func (uc *offerUseCaseImpl) UpdateOfferStatus(ctx context.Context, offerID, customerID uuid.UUID, label string) error {
	outcome, err := offer.ParseOutcome(label)
	if err != nil {
		return err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, err := tx.Offers().GetForUpdate(ctx, offerID)
		if err != nil {
			return notFoundAs(err, ErrOfferNotFound)
		}
		if !o.BelongsTo(customerID) {
			return errs.NotFound(ErrOfferNotFound)
		}
		if err := o.Close(outcome, uc.clock.Now()); err != nil {
			return err
		}
		return tx.Offers().Update(ctx, o)
	})
	if err != nil {
		return err
	}

	uc.metrics.RecordOfferTransition(outcome.String())
	return nil
}

// TrackEmailOpen moves a sent offer to seen. Anything else is a silent no-op;
// the returned bool reports whether the status changed.
func (uc *offerUseCaseImpl) TrackEmailOpen(ctx context.Context, offerID, customerID uuid.UUID) (bool, error) {
	var changed bool
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		changed = false
		o, err := tx.Offers().GetForUpdate(ctx, offerID)
		if err != nil {
			return notFoundAs(err, ErrOfferNotFound)
		}
		if !o.BelongsTo(customerID) || !o.MarkSeen(uc.clock.Now()) {
			return nil
		}
		changed = true
		return tx.Offers().Update(ctx, o)
	})
	if err != nil {
		return false, err
	}

	if changed {
		uc.metrics.RecordOfferTransition(offer.StatusSeen.String())
	}
	return changed, nil
}

func (uc *offerUseCaseImpl) customerFor(ctx context.Context, tx shared.Tx, id uuid.UUID, needsEmail bool) (*shared.CustomerSnapshot, error) {
	customer, err := tx.Reads().CustomerByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, ErrCustomerNotFound)
	}
	if needsEmail && !validEmail(customer.Email) {
		return nil, errs.FailedPrecondition(ErrNoContactAddress)
	}
	return customer, nil
}

// validEmail applies the same rule as the request DTOs' `binding:"email"`.
func validEmail(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	return emailValidator.Var(s, "required,email") == nil
}

func enqueueOfferEmail(ctx context.Context, tx shared.Tx, o *offer.Offer, customer *shared.CustomerSnapshot, now time.Time) error {
	payload, err := json.Marshal(OfferEmailPayload{
		OfferID:       o.ID(),
		OfferNumber:   o.Number().String(),
		CustomerID:    customer.ID,
		CustomerName:  customer.Name,
		CustomerEmail: strings.TrimSpace(customer.Email),
		Total:         o.Totals().Total.StringFixed(2),
	})
	if err != nil {
		return errs.Wrap(err, "marshal offer email payload")
	}
	return tx.Notifications().CreateJob(ctx, shared.NotificationKindOfferEmail, shared.NotificationTopicOffers, payload, now)
}

func resultOf(o *offer.Offer) *OfferResult {
	return &OfferResult{
		OfferID:     o.ID(),
		OfferNumber: o.Number().String(),
		Status:      o.Status().String(),
	}
}
