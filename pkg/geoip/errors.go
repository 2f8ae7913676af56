package geoip

import "errors"

var (
	ErrOpenDatabase        = errors.New("failed to open geoip database")
	ErrUnsupportedDatabase = errors.New("database has no country data")
	ErrInvalidAddress      = errors.New("invalid ip address")
	ErrNoRecord            = errors.New("no country record for address")
	ErrLookupFailed        = errors.New("geoip lookup failed")
	ErrClosed              = errors.New("geoip database is closed")
)
