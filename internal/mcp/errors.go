package mcp

import "errors"

var (
	// ErrToolNotFound indicates tools/call named a tool this server does not offer.
	ErrToolNotFound = errors.New("Tool not found")

	// ErrInvalidArguments indicates tool arguments were missing or malformed.
	ErrInvalidArguments = errors.New("invalid arguments")
)
