package binder

import "errors"

var (
	ErrInvalidTarget        = errors.New("binding target must be a non-nil pointer to struct")
	ErrFailedToParseQuery   = errors.New("failed to parse query parameters")
	ErrFailedToParsePath    = errors.New("failed to parse path parameters")
	ErrFailedToParseHeaders = errors.New("failed to parse request headers")
)
