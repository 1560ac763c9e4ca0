// Package sharing implements Shamir's threshold secret sharing over the
// integers modulo a large prime.
//
// A secret is split into N shares such that any K of them reconstruct it
// exactly while fewer than K reveal nothing about it. The package provides:
// - Creating random shares from a secret
// - Recovering a secret from a threshold number of shares
// - The modular arithmetic (including inverses) both operations rest on
//
// Based on: https://en.wikipedia.org/wiki/Shamir%27s_secret_sharing
//
// The modulus is never checked for primality; generator and reconstructor
// must agree on the exact same prime or reconstruction silently produces a
// wrong result. Share holders already have to trust the issuer, so the prime
// travels with that trust.
package sharing

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

// Share is one (x, y) coordinate pair of the secret-encoding polynomial.
// Shares are independent and freely copyable; no share reveals anything about
// the secret on its own.
type Share struct {
	X, Y *big.Int
}

// evalAt evaluates the polynomial (coefficient slice, constant term first) at
// x using Horner's method, reducing mod prime at every step.
func evalAt(poly []*big.Int, x, prime *big.Int) *big.Int {
	result := new(big.Int)
	for i := len(poly) - 1; i >= 0; i-- {
		result.Mul(result, x)
		result.Add(result, poly[i])
		result.Mod(result, prime)
	}
	return result
}

// MakeRandomShares splits secret into shareCount shares of which any
// threshold with distinct x-coordinates suffice to recover it. Coefficients
// are drawn from crypto/rand.
//
// Shares are produced at x = 1, 2, ..., shareCount in increasing x order. The
// ordering is not required by the scheme but is the contract callers can rely
// on for display and indexing. A threshold of 1 is allowed and yields
// constant shares with y = secret mod prime.
func MakeRandomShares(secret *big.Int, threshold, shareCount int, prime *big.Int) ([]*Share, error) {
	return MakeRandomSharesFrom(rand.Reader, secret, threshold, shareCount, prime)
}

// MakeRandomSharesFrom is MakeRandomShares with the randomness source made
// explicit. Production callers should pass crypto/rand.Reader (or use
// MakeRandomShares); tests may pass a deterministic reader. Nothing about the
// polynomial outlives the call.
func MakeRandomSharesFrom(random io.Reader, secret *big.Int, threshold, shareCount int, prime *big.Int) ([]*Share, error) {
	if threshold < 1 || threshold > shareCount {
		return nil, fmt.Errorf("%w: threshold %d, share count %d", ErrInvalidThreshold, threshold, shareCount)
	}

	// Random polynomial with the secret as constant term.
	poly := make([]*big.Int, threshold)
	poly[0] = new(big.Int).Mod(secret, prime)

	for i := 1; i < threshold; i++ {
		coeff, err := rand.Int(random, prime)
		if err != nil {
			return nil, fmt.Errorf("drawing coefficient %d: %w", i, err)
		}
		poly[i] = coeff
	}

	points := make([]*Share, shareCount)
	for i := 0; i < shareCount; i++ {
		x := big.NewInt(int64(i + 1))
		points[i] = &Share{X: x, Y: evalAt(poly, x, prime)}
	}

	return points, nil
}

// RecoverSecret recovers the secret from at least as many shares as the
// threshold the shares were generated with, using Lagrange interpolation
// evaluated at x = 0. Share order does not matter.
//
// The share count is not validated against the original threshold, which the
// shares do not carry: given fewer shares than that threshold the
// computation still completes and returns a value unrelated to the secret.
// That is the scheme's confidentiality property, not a failure. Fewer than 2
// shares is rejected with ErrInsufficientShares; a 1-of-N scheme (where every
// share's y already equals the secret) is deliberately not special-cased
// here.
func RecoverSecret(shares []*Share, prime *big.Int) (*big.Int, error) {
	if len(shares) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInsufficientShares, len(shares))
	}

	// Duplicate x mod prime would make a zero denominator below; reject it
	// before computing anything.
	seen := make(map[string]struct{}, len(shares))
	for _, share := range shares {
		key := new(big.Int).Mod(share.X, prime).String()
		if _, ok := seen[key]; ok {
			return nil, fmt.Errorf("%w: x = %s", ErrDuplicateCoordinate, share.X)
		}
		seen[key] = struct{}{}
	}

	// secret = sum over j of y[j] * L_j(0), with
	// L_j(0) = product over m != j of (-x[m]) / (x[j] - x[m]).
	secret := new(big.Int)

	for j, shareJ := range shares {
		numerator := big.NewInt(1)
		denominator := big.NewInt(1)

		for m, shareM := range shares {
			if m == j {
				continue
			}
			numerator = fieldMul(numerator, fieldNeg(shareM.X, prime), prime)
			denominator = fieldMul(denominator, fieldSub(shareJ.X, shareM.X, prime), prime)
		}

		inverse, err := ModularInverse(denominator, prime)
		if err != nil {
			return nil, err
		}

		term := fieldMul(shareJ.Y, fieldMul(numerator, inverse, prime), prime)
		secret = fieldAdd(secret, term, prime)
	}

	return secret, nil
}
