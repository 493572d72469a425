package feistel

import "fmt"

// RoundFunc maps a half-block and a key to a new half-block.
// It must be deterministic and defined for every input. It need not be invertible.
type RoundFunc[H, K Word] func(half H, key K) H

// Engine runs a fixed number of Feistel rounds with a single round function.
// Its configuration is immutable, so an Engine may be shared between goroutines
// as long as the round function tolerates concurrent calls.
type Engine[B, H, K Word] struct {
	// rounds is the number of times the round function is applied
	rounds int

	// fn is the substitution function, owned by the caller
	fn RoundFunc[H, K]
}

// Engine16 is an engine with the reference widths: 16-bit blocks, 8-bit halves and an 8-bit key.
type Engine16 = Engine[uint16, uint8, uint8]

// New creates an engine applying fn for the given number of rounds.
// Zero rounds is allowed and yields the identity transform.
func New[B, H, K Word](rounds int, fn RoundFunc[H, K]) (*Engine[B, H, K], error) {
	if rounds < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeRounds, rounds)
	}

	if fn == nil {
		return nil, ErrNilRoundFunc
	}

	if 2*Bits[H]() != Bits[B]() {
		return nil, fmt.Errorf("%w: %d-bit block, %d-bit half", ErrWidthMismatch, Bits[B](), Bits[H]())
	}

	return &Engine[B, H, K]{rounds: rounds, fn: fn}, nil
}

// New16 creates an engine with the reference widths.
func New16(rounds int, fn RoundFunc[uint8, uint8]) (*Engine16, error) {
	return New[uint16](rounds, fn)
}

// Rounds returns the configured round count.
func (e *Engine[B, H, K]) Rounds() int {
	return e.rounds
}

// Encrypt runs the rounds forward over plaintext.
func (e *Engine[B, H, K]) Encrypt(plaintext B, key K) B {
	left, right := Split[B, H](plaintext)

	for range e.rounds {
		left, right = right, e.fn(right, key)^left
	}

	return Join[B](left, right)
}

// Decrypt runs the rounds backward over ciphertext, undoing Encrypt with the same key.
func (e *Engine[B, H, K]) Decrypt(ciphertext B, key K) B {
	left, right := Split[B, H](ciphertext)

	for range e.rounds {
		left, right = e.fn(left, key)^right, left
	}

	return Join[B](left, right)
}
