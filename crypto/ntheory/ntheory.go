// Copyright © 2021 Io FinNet Group, Inc.

// Package ntheory holds the number theory used by the RSA attacks: gcd and Bezout coefficients,
// modular inverses, the Carmichael totient of a two-prime modulus, integer k-th roots and
// Chinese remainder reconstruction.
//
// Every function is pure and leaves its arguments untouched.
package ntheory

import (
	big "github.com/iofinnet/zdrsa/common/int"
	"github.com/pkg/errors"
)

var (
	ErrNotInvertible    = errors.New("ntheory: value is not invertible")
	ErrNonCoprimeModuli = errors.New("ntheory: moduli are not pairwise coprime")
	ErrInvalidArgument  = errors.New("ntheory: invalid argument")

	zero = big.NewInt(0)
	one  = big.NewInt(1)
)

// GCD returns the non-negative greatest common divisor of a and b. GCD(a, 0) == |a|.
func GCD(a, b *big.Int) *big.Int {
	x, y := new(big.Int).Abs(a), new(big.Int).Abs(b)
	for y.Sign() > 0 {
		x.Mod(x, y)
		x, y = y, x
	}
	return x
}

// ExtendedGCD returns (g, x, y) such that a*x + b*y = g = gcd(a, b), with g >= 0.
// Quotients use floor division, so the coefficients match the classic iterative algorithm.
func ExtendedGCD(a, b *big.Int) (g, x, y *big.Int) {
	a, b = a.Clone(), b.Clone()
	x0, x1 := big.NewInt(0), big.NewInt(1)
	y0, y1 := big.NewInt(1), big.NewInt(0)
	q, r := new(big.Int), new(big.Int)
	for a.Sign() != 0 {
		q.FloorDivMod(b, a, r)
		b, a = a, r.Clone()
		y0, y1 = y1, new(big.Int).Sub(y0, new(big.Int).Mul(q, y1))
		x0, x1 = x1, new(big.Int).Sub(x0, new(big.Int).Mul(q, x1))
	}
	if b.Sign() < 0 {
		b.Neg(b)
		x0.Neg(x0)
		y0.Neg(y0)
	}
	return b, x0, y0
}

// BezoutCoeffs returns (x, y) such that x*a + y*b = gcd(a, b).
func BezoutCoeffs(a, b *big.Int) (x, y *big.Int) {
	_, x, y = ExtendedGCD(a, b)
	return
}

// ModInverse returns x in [0, n) with a*x = 1 (mod n).
func ModInverse(a, n *big.Int) (*big.Int, error) {
	if n.Sign() <= 0 {
		return nil, errors.Wrapf(ErrNotInvertible, "modulus %s is not positive", n)
	}
	g, x, _ := ExtendedGCD(new(big.Int).Mod(a, n), n)
	if g.Cmp(one) != 0 {
		return nil, errors.Wrapf(ErrNotInvertible, "gcd(a, n) = %s", g)
	}
	return x.Mod(x, n), nil
}

// LCM returns the non-negative least common multiple of a and b, or 0 if either is 0.
func LCM(a, b *big.Int) *big.Int {
	if a.Sign() == 0 || b.Sign() == 0 {
		return big.NewInt(0)
	}
	l := new(big.Int).Mul(a, b)
	l.Abs(l)
	return l.Div(l, GCD(a, b))
}

// CarmichaelTotient returns lambda(p*q) = lcm(p-1, q-1) for distinct primes p and q.
func CarmichaelTotient(p, q *big.Int) *big.Int {
	return LCM(new(big.Int).Sub(p, one), new(big.Int).Sub(q, one))
}

// Prod returns the product of xs; the empty product is 1.
func Prod(xs []*big.Int) *big.Int {
	r := big.NewInt(1)
	for _, x := range xs {
		r.Mul(r, x)
	}
	return r
}

// PairwiseCoprime reports the first pair of xs that share a factor.
func PairwiseCoprime(xs []*big.Int) error {
	for i := 0; i < len(xs); i++ {
		for j := i + 1; j < len(xs); j++ {
			if g := GCD(xs[i], xs[j]); g.Cmp(one) != 0 {
				return errors.Wrapf(ErrNonCoprimeModuli, "gcd(n%d, n%d) = %s", i+1, j+1, g)
			}
		}
	}
	return nil
}
