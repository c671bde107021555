package coupon

import (
	"time"

	"github.com/google/uuid"
)

// Snapshot is the flat persisted form of a coupon.
type Snapshot struct {
	Code            string
	PeriodKey       string
	Status          string
	Title           string
	Subtitle        string
	ValueText       string
	BgImageURL      string
	Terms           string
	ExpiresAt       *time.Time
	IssuedBy        uuid.UUID
	IssuedAt        time.Time
	IsIndividual    bool
	RecipientName   string
	SenderName      string
	RedeemedAt      *time.Time
	RedeemerName    string
	RedeemerContact string
	RedeemerChannel string
	RedeemedByAdmin *uuid.UUID
}

func FromSnapshot(s Snapshot) (*Coupon, error) {
	status, err := NewStatus(s.Status)
	if err != nil {
		return nil, err
	}
	c := &Coupon{
		code:      Code(s.Code),
		periodKey: s.PeriodKey,
		status:    status,
		template: Template{
			Title:      s.Title,
			Subtitle:   s.Subtitle,
			ValueText:  s.ValueText,
			BgImageURL: s.BgImageURL,
			Terms:      s.Terms,
			ExpiresAt:  s.ExpiresAt,
		},
		issuedBy:        s.IssuedBy,
		issuedAt:        s.IssuedAt,
		individual:      s.IsIndividual,
		recipient:       Recipient{RecipientName: s.RecipientName, SenderName: s.SenderName},
		redeemedAt:      s.RedeemedAt,
		redeemedByAdmin: s.RedeemedByAdmin,
	}
	if s.RedeemerName != "" || s.RedeemerContact != "" {
		c.redeemer = &Redeemer{Name: s.RedeemerName, Contact: s.RedeemerContact, Channel: Channel(s.RedeemerChannel)}
	}
	return c, nil
}

func (c *Coupon) Snapshot() Snapshot {
	s := Snapshot{
		Code:            c.code.String(),
		PeriodKey:       c.periodKey,
		Status:          c.status.String(),
		Title:           c.template.Title,
		Subtitle:        c.template.Subtitle,
		ValueText:       c.template.ValueText,
		BgImageURL:      c.template.BgImageURL,
		Terms:           c.template.Terms,
		ExpiresAt:       c.template.ExpiresAt,
		IssuedBy:        c.issuedBy,
		IssuedAt:        c.issuedAt,
		IsIndividual:    c.individual,
		RecipientName:   c.recipient.RecipientName,
		SenderName:      c.recipient.SenderName,
		RedeemedAt:      c.redeemedAt,
		RedeemedByAdmin: c.redeemedByAdmin,
	}
	if c.redeemer != nil {
		s.RedeemerName = c.redeemer.Name
		s.RedeemerContact = c.redeemer.Contact
		s.RedeemerChannel = string(c.redeemer.Channel)
	}
	return s
}
