package clientip

import "errors"

var (
	// ErrNoPeerAddress is returned when neither the connection nor the request carries a peer address
	ErrNoPeerAddress = errors.New("no peer address available")
	// ErrMalformedAddress is returned when the peer address cannot be parsed as an IP
	ErrMalformedAddress = errors.New("malformed peer address")
)
