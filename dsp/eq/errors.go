package eq

import "errors"

// Configuration errors returned by the Port.
var (
	ErrUnknownParameter = errors.New("eq: unknown parameter")
	ErrInvalidValue     = errors.New("eq: invalid parameter value")
	// ErrClamped is informational: the value was pulled into range and
	// applied.
	ErrClamped = errors.New("eq: value clamped to range")
)

// Precondition errors returned by ProcessBlock and ProcessInterleaved.
// Builds with the eqdebug tag panic instead.
var (
	ErrNotPrepared     = errors.New("eq: not prepared")
	ErrChannelMismatch = errors.New("eq: channel count mismatch")
	ErrFrameMismatch   = errors.New("eq: channels differ in length")
	ErrBlockTooLarge   = errors.New("eq: block exceeds max block size")
)
