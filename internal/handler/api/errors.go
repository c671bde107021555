package api

import "issuance-engine/internal/pkg/errs"

var (
	errUnauthenticated = errs.New("unauthenticated")
	errInvalidID       = errs.New("invalid id")
)
