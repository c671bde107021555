package offer

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"issuance-engine/internal/pkg/errs"
)

var (
	ErrNotDraft          = errs.New("offer can only be edited while in draft")
	ErrInvalidTransition = errs.New("offer status transition not allowed")
	ErrInvalidDates      = errs.New("expiry date must not be before issue date")
)

const (
	MaxTitleLength = 200
	MaxNotesLength = 4000
)

// Content is everything editable while the offer is a draft.
type Content struct {
	Items            []LineItem
	Notes            string
	DocumentTitle    string
	IntroductoryText string
	IssueDate        *time.Time
	ExpiryDate       *time.Time
}

func (c Content) Validate() error {
	if len(c.Items) == 0 {
		return errs.InvalidArgument(ErrNoItems)
	}
	if c.IssueDate != nil && c.ExpiryDate != nil && c.ExpiryDate.Before(*c.IssueDate) {
		return errs.InvalidArgument(ErrInvalidDates)
	}
	if len(c.DocumentTitle) > MaxTitleLength {
		return errs.InvalidArgument(errs.Newf("document title exceeds %d characters", MaxTitleLength))
	}
	if len(c.Notes) > MaxNotesLength {
		return errs.InvalidArgument(errs.Newf("notes exceed %d characters", MaxNotesLength))
	}
	return nil
}

func (c Content) normalized() Content {
	c.Notes = strings.TrimSpace(c.Notes)
	c.DocumentTitle = strings.TrimSpace(c.DocumentTitle)
	c.IntroductoryText = strings.TrimSpace(c.IntroductoryText)
	c.Items = append([]LineItem(nil), c.Items...)
	return c
}

type Offer struct {
	id         uuid.UUID
	number     Number
	customerID uuid.UUID
	status     Status
	content    Content
	totals     Totals
	createdBy  uuid.UUID
	createdAt  time.Time
	updatedAt  time.Time
	sentAt     *time.Time
	seenAt     *time.Time
	closedAt   *time.Time

	// contentChanged is set by Edit and never persisted.
	contentChanged bool
}

// NewOffer builds a draft. The number must already be allocated by the caller.
func NewOffer(number Number, customerID uuid.UUID, content Content, createdBy uuid.UUID, now time.Time) (*Offer, error) {
	content = content.normalized()
	if err := content.Validate(); err != nil {
		return nil, err
	}
	return &Offer{
		id:         uuid.New(),
		number:     number,
		customerID: customerID,
		status:     StatusDraft,
		content:    content,
		totals:     ComputeTotals(content.Items),
		createdBy:  createdBy,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func (o *Offer) Edit(content Content, now time.Time) error {
	if o.status != StatusDraft {
		return errs.FailedPrecondition(ErrNotDraft)
	}
	content = content.normalized()
	if err := content.Validate(); err != nil {
		return err
	}
	o.content = content
	o.totals = ComputeTotals(content.Items)
	o.updatedAt = now
	o.contentChanged = true
	return nil
}

func (o *Offer) MarkSent(now time.Time) error {
	if o.status != StatusDraft {
		return errs.FailedPrecondition(errs.Wrapf(ErrInvalidTransition, "%s -> %s", o.status, StatusSent))
	}
	o.status = StatusSent
	o.sentAt = &now
	o.updatedAt = now
	return nil
}

// MarkSeen moves sent to seen and reports whether anything changed.
func (o *Offer) MarkSeen(now time.Time) bool {
	if o.status != StatusSent {
		return false
	}
	o.status = StatusSeen
	o.seenAt = &now
	o.updatedAt = now
	return true
}

func (o *Offer) Close(outcome Status, now time.Time) error {
	if !outcome.IsClosed() {
		return errs.InvalidArgument(errs.Wrapf(ErrInvalidOutcome, "got %q", outcome))
	}
	if o.status != StatusSent && o.status != StatusSeen {
		return errs.FailedPrecondition(errs.Wrapf(ErrInvalidTransition, "%s -> %s", o.status, outcome))
	}
	o.status = outcome
	o.closedAt = &now
	o.updatedAt = now
	return nil
}

func (o *Offer) BelongsTo(customerID uuid.UUID) bool {
	return o.customerID == customerID
}

func (o *Offer) ID() uuid.UUID         { return o.id }
func (o *Offer) Number() Number        { return o.number }
func (o *Offer) CustomerID() uuid.UUID { return o.customerID }
func (o *Offer) Status() Status        { return o.status }
func (o *Offer) Content() Content      { return o.content }
func (o *Offer) Items() []LineItem     { return append([]LineItem(nil), o.content.Items...) }
func (o *Offer) Totals() Totals        { return o.totals }
func (o *Offer) CreatedBy() uuid.UUID  { return o.createdBy }
func (o *Offer) CreatedAt() time.Time  { return o.createdAt }
func (o *Offer) UpdatedAt() time.Time  { return o.updatedAt }
func (o *Offer) SentAt() *time.Time    { return o.sentAt }
func (o *Offer) SeenAt() *time.Time    { return o.seenAt }
func (o *Offer) ClosedAt() *time.Time  { return o.closedAt }

// ContentChanged reports whether the draft content was edited since the offer
// was loaded, i.e. whether the stored line items are out of date.
func (o *Offer) ContentChanged() bool { return o.contentChanged }
