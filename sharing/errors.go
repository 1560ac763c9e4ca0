package sharing

import "errors"

var (
	// ErrInvalidThreshold is returned when the threshold is less than 1 or
	// greater than the number of shares to generate.
	ErrInvalidThreshold = errors.New("sharing: threshold must be at least 1 and at most the share count")

	// ErrNoInverse is returned when a required modular inverse does not exist,
	// i.e. the operand is congruent to zero or shares a factor with the
	// modulus. During reconstruction this always points at a duplicate or
	// zero x-coordinate, or a modulus that is not the one the shares were
	// generated with.
	ErrNoInverse = errors.New("sharing: modular inverse does not exist")

	// ErrInsufficientShares is returned when fewer than 2 shares are supplied
	// to reconstruction. Interpolation needs at least two points; a
	// threshold-1 scheme is not special-cased (see RecoverSecret).
	ErrInsufficientShares = errors.New("sharing: at least 2 shares are required for reconstruction")

	// ErrDuplicateCoordinate is returned when two supplied shares have the
	// same x-coordinate modulo the prime.
	ErrDuplicateCoordinate = errors.New("sharing: duplicate share x-coordinate")

	// ErrInvalidShareFormat is returned when share text cannot be parsed.
	ErrInvalidShareFormat = errors.New("sharing: invalid share format, expected \"x,y\"")
)
