package coupon

import (
	"crypto/rand"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"issuance-engine/internal/domain/sequence"
	"issuance-engine/internal/pkg/errs"
)

var (
	ErrInvalidCode       = errs.New("invalid coupon code format")
	ErrTitleRequired     = errs.New("title is required")
	ErrValueTextRequired = errs.New("value text is required")
	ErrRecipientRequired = errs.New("recipient name is required")
	ErrSenderRequired    = errs.New("sender name is required")
	ErrRedeemerRequired  = errs.New("redeemer name and contact are required")
	ErrInvalidChannel    = errs.New("invalid redemption channel")
	ErrInvalidStatus     = errs.New("invalid coupon status")
	ErrInvalidExpiry     = errs.New("expiry must be after issue time")
)

const (
	IndividualPrefix    = "IND"
	SerialWidth         = 4
	IndividualSuffixLen = 6
	suffixAlphabet      = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

var codeRegex = regexp.MustCompile(`^[A-Z0-9]{1,16}-[0-9]{6,13}-[A-Z0-9]{4,12}$`)

type Code string

func NewCode(s string) (Code, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if !codeRegex.MatchString(s) {
		return "", errs.InvalidArgument(ErrInvalidCode)
	}
	return Code(s), nil
}

// BatchCode renders PREFIX-PERIOD-SERIAL, e.g. DI-202505-0007.
func BatchCode(prefix, period string, serial int64) Code {
	return Code(fmt.Sprintf("%s-%s-%s", prefix, period, sequence.FormatSerial(serial, SerialWidth)))
}

// IndividualCode renders IND-<unix millis>-<suffix>.
func IndividualCode(at time.Time, suffix string) Code {
	return Code(fmt.Sprintf("%s-%d-%s", IndividualPrefix, at.UnixMilli(), suffix))
}

// suffixByteLimit is the largest multiple of the alphabet size that fits in a
// byte. Bytes at or above it are discarded so every symbol is equally likely.
const suffixByteLimit = 256 - 256%len(suffixAlphabet)

func RandomSuffix() (string, error) {
	return SuffixFrom(rand.Reader)
}

// SuffixFrom draws IndividualSuffixLen symbols from r by rejection sampling.
func SuffixFrom(r io.Reader) (string, error) {
	out := make([]byte, 0, IndividualSuffixLen)
	buf := make([]byte, IndividualSuffixLen*2)
	for len(out) < IndividualSuffixLen {
		if _, err := io.ReadFull(r, buf); err != nil {
			return "", errs.Wrap(err, "read random suffix")
		}
		for _, b := range buf {
			if int(b) >= suffixByteLimit {
				continue
			}
			out = append(out, suffixAlphabet[int(b)%len(suffixAlphabet)])
			if len(out) == IndividualSuffixLen {
				break
			}
		}
	}
	return string(out), nil
}

func (c Code) String() string { return string(c) }

type Status string

const (
	StatusActive   Status = "active"
	StatusRedeemed Status = "redeemed"
	StatusExpired  Status = "expired"
)

func (s Status) String() string { return string(s) }

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusRedeemed, StatusExpired:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusRedeemed || s == StatusExpired
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

// Template carries the promotional fields shared by every code of an issuance.
type Template struct {
	Title      string
	Subtitle   string
	ValueText  string
	BgImageURL string
	Terms      string
	ExpiresAt  *time.Time
}

func (t Template) Normalize() Template {
	t.Title = strings.TrimSpace(t.Title)
	t.Subtitle = strings.TrimSpace(t.Subtitle)
	t.ValueText = strings.TrimSpace(t.ValueText)
	t.BgImageURL = strings.TrimSpace(t.BgImageURL)
	t.Terms = strings.TrimSpace(t.Terms)
	return t
}

func (t Template) Validate(now time.Time) error {
	if t.Title == "" {
		return errs.InvalidArgument(ErrTitleRequired)
	}
	if t.ValueText == "" {
		return errs.InvalidArgument(ErrValueTextRequired)
	}
	if t.ExpiresAt != nil && !t.ExpiresAt.After(now) {
		return errs.InvalidArgument(ErrInvalidExpiry)
	}
	return nil
}

type Channel string

const (
	ChannelWeb      Channel = "web"
	ChannelWhatsApp Channel = "whatsapp"
	ChannelEmail    Channel = "email"
	ChannelPhone    Channel = "phone"
	ChannelInStore  Channel = "in_store"
)

func NewChannel(s string) (Channel, error) {
	c := Channel(strings.ToLower(strings.TrimSpace(s)))
	if c == "" {
		return ChannelWeb, nil
	}
	switch c {
	case ChannelWeb, ChannelWhatsApp, ChannelEmail, ChannelPhone, ChannelInStore:
		return c, nil
	default:
		return "", errs.InvalidArgument(errs.Wrapf(ErrInvalidChannel, "%q", s))
	}
}

// Redeemer identifies who claimed a coupon through the public path.
type Redeemer struct {
	Name    string
	Contact string
	Channel Channel
}

func NewRedeemer(name, contact, channel string) (Redeemer, error) {
	name = strings.TrimSpace(name)
	contact = strings.TrimSpace(contact)
	if name == "" || contact == "" {
		return Redeemer{}, errs.InvalidArgument(ErrRedeemerRequired)
	}
	ch, err := NewChannel(channel)
	if err != nil {
		return Redeemer{}, err
	}
	return Redeemer{Name: name, Contact: contact, Channel: ch}, nil
}

// Recipient is set only on individually issued coupons.
type Recipient struct {
	RecipientName string
	SenderName    string
}

func NewRecipient(recipient, sender string) (Recipient, error) {
	recipient = strings.TrimSpace(recipient)
	sender = strings.TrimSpace(sender)
	if recipient == "" {
		return Recipient{}, errs.InvalidArgument(ErrRecipientRequired)
	}
	if sender == "" {
		return Recipient{}, errs.InvalidArgument(ErrSenderRequired)
	}
	return Recipient{RecipientName: recipient, SenderName: sender}, nil
}
