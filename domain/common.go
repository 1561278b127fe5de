package domain

import (
	"errors"
)

var (
	MessageFailedBodyRequest = "failed to parse request body"
	MessageFailedIdentity    = "missing caller identity"

	ErrParseUUID     = errors.New("failed to parse UUID")
	ErrMissingUserID = errors.New("missing user id")
)
