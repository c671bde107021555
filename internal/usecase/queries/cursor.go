package queries

import (
	"encoding/base64"
	"strings"

	"issuance-engine/internal/pkg/errs"
)

const (
	MaxListLimit    = 600
	DefaultLimit    = 50
	CursorVersionV1 = "v1"
)

var ErrInvalidCursor = errs.New("invalid cursor")

// EncodeAfterCursor hides the last returned coupon code behind an opaque token.
func EncodeAfterCursor(code string) string {
	return base64.URLEncoding.EncodeToString([]byte(CursorVersionV1 + ":" + code))
}

func DecodeAfterCursor(cursor string) (string, error) {
	if cursor == "" {
		return "", errs.InvalidArgument(errs.Wrap(ErrInvalidCursor, "cursor cannot be empty"))
	}
	decoded, err := base64.URLEncoding.DecodeString(cursor)
	if err != nil {
		return "", errs.InvalidArgument(errs.Wrap(ErrInvalidCursor, err.Error()))
	}
	payload, ok := strings.CutPrefix(string(decoded), CursorVersionV1+":")
	if !ok || payload == "" {
		return "", errs.InvalidArgument(errs.Wrap(ErrInvalidCursor, "unsupported cursor version"))
	}
	return payload, nil
}

type Cursor struct {
	After string `json:"after,omitempty"`
}

func ValidateLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}
