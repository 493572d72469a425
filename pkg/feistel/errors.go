package feistel

import "errors"

var (
	// ErrNegativeRounds is returned when the round count is below zero.
	ErrNegativeRounds = errors.New("negative round count")
	// ErrNilRoundFunc is returned when no round function is supplied.
	ErrNilRoundFunc = errors.New("round function is nil")
	// ErrWidthMismatch is returned when the half width is not exactly half the block width.
	ErrWidthMismatch = errors.New("half width must be half the block width")
)
