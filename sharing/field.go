package sharing

import (
	"fmt"
	"math/big"
)

// defaultPrime is 2^127 - 1, the Mersenne prime the command-line tools use
// when no modulus is given. Any prime larger than the secret works.
var defaultPrime = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))

// DefaultPrime returns a copy of the default field modulus, 2^127 - 1.
func DefaultPrime() *big.Int {
	return new(big.Int).Set(defaultPrime)
}

// ModularInverse returns b such that (a * b) mod prime == 1, computed with the
// extended Euclidean algorithm. It returns ErrNoInverse when a is congruent to
// zero modulo prime, or when gcd(a mod prime, prime) != 1 (only possible when
// the modulus is not actually prime). The error is never substituted with a
// value: a missing inverse during reconstruction means a duplicate or zero
// x-coordinate, or a mismatched modulus, and must surface to the caller.
func ModularInverse(a, prime *big.Int) (*big.Int, error) {
	aa := new(big.Int).Mod(a, prime)
	if aa.Sign() == 0 {
		return nil, fmt.Errorf("%w: %s mod %s is zero", ErrNoInverse, a, prime)
	}

	gcd, x, _ := extendedGCD(aa, prime)
	if gcd.Cmp(big.NewInt(1)) != 0 {
		return nil, fmt.Errorf("%w: gcd(%s, %s) = %s", ErrNoInverse, aa, prime, gcd)
	}

	// The Bezout coefficient may be negative; normalize into [0, prime).
	return x.Mod(x, prime), nil
}

// extendedGCD returns gcd(a, b) together with Bezout coefficients x, y such
// that a*x + b*y = gcd(a, b). Iterative so that arbitrarily large operands do
// not grow the stack.
func extendedGCD(a, b *big.Int) (gcd, x, y *big.Int) {
	oldR, r := new(big.Int).Set(a), new(big.Int).Set(b)
	oldS, s := big.NewInt(1), big.NewInt(0)
	oldT, t := big.NewInt(0), big.NewInt(1)

	for r.Sign() != 0 {
		q := new(big.Int).Div(oldR, r)

		oldR, r = r, new(big.Int).Sub(oldR, new(big.Int).Mul(q, r))
		oldS, s = s, new(big.Int).Sub(oldS, new(big.Int).Mul(q, s))
		oldT, t = t, new(big.Int).Sub(oldT, new(big.Int).Mul(q, t))
	}

	return oldR, oldS, oldT
}

// fieldAdd computes (a + b) mod prime.
func fieldAdd(a, b, prime *big.Int) *big.Int {
	result := new(big.Int).Add(a, b)
	return result.Mod(result, prime)
}

// fieldSub computes (a - b) mod prime. big.Int.Mod is Euclidean, so the
// result is already normalized into [0, prime) even when a < b.
func fieldSub(a, b, prime *big.Int) *big.Int {
	result := new(big.Int).Sub(a, b)
	return result.Mod(result, prime)
}

// fieldMul computes (a * b) mod prime.
func fieldMul(a, b, prime *big.Int) *big.Int {
	result := new(big.Int).Mul(a, b)
	return result.Mod(result, prime)
}

// fieldNeg computes (-a) mod prime.
func fieldNeg(a, prime *big.Int) *big.Int {
	result := new(big.Int).Neg(a)
	return result.Mod(result, prime)
}
