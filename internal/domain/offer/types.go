package offer

import (
	"strings"

	"issuance-engine/internal/domain/sequence"
	"issuance-engine/internal/pkg/errs"
)

var (
	ErrInvalidStatus  = errs.New("invalid offer status")
	ErrInvalidOutcome = errs.New("status must be one of Aceptada, Rechazada, Vencida")
)

type Status string

const (
	StatusDraft    Status = "draft"
	StatusSent     Status = "sent"
	StatusSeen     Status = "seen"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
	StatusExpired  Status = "expired"
)

func (s Status) String() string { return string(s) }

func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusSent, StatusSeen, StatusAccepted, StatusRejected, StatusExpired:
		return true
	default:
		return false
	}
}

func (s Status) IsClosed() bool {
	return s == StatusAccepted || s == StatusRejected || s == StatusExpired
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

// ParseOutcome maps the manual closing labels to a terminal status.
func ParseOutcome(label string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "aceptada", "accepted":
		return StatusAccepted, nil
	case "rechazada", "rejected":
		return StatusRejected, nil
	case "vencida", "expired":
		return StatusExpired, nil
	default:
		return "", errs.InvalidArgument(errs.Wrapf(ErrInvalidOutcome, "got %q", label))
	}
}

const NumberSerialWidth = 4

// Number is the immutable human facing identifier, e.g. OFFERTA-2025-0042.
type Number string

func FormatNumber(prefix string, key sequence.CounterKey, serial int64) Number {
	return Number(NumberPrefix(prefix, key) + sequence.FormatSerial(serial, NumberSerialWidth))
}

// NumberPrefix is the shared leading part of every number allocated from key.
func NumberPrefix(prefix string, key sequence.CounterKey) string {
	return prefix + "-" + key.Period + "-"
}

func (n Number) String() string { return string(n) }
