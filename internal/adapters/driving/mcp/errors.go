package mcp

import "errors"

// Port wiring errors returned by Ports.Validate.
var (
	ErrMissingResolver  = errors.New("subject resolver is required")
	ErrMissingIconMaker = errors.New("icon maker is required")
)
