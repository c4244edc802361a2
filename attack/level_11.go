// Copyright © 2021 Io FinNet Group, Inc.

package attack

import (
	"github.com/iofinnet/zdrsa/common"
	big "github.com/iofinnet/zdrsa/common/int"
	"github.com/iofinnet/zdrsa/crypto/ntheory"
)

// DefaultProbe is the base a of the gcd(n, a^(e*dp) - a) factorisation.
const DefaultProbe = 3

type (
	leakedDP struct {
		probe *big.Int
	}

	LeakedDPOption func(*leakedDP)
)

func WithProbe(a int64) LeakedDPOption {
	return func(s *leakedDP) {
		s.probe = big.NewInt(a)
	}
}

func NewLeakedDPSolver(opts ...LeakedDPOption) Solver {
	s := &leakedDP{probe: big.NewInt(DefaultProbe)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (*leakedDP) Level() Level { return LeakedDP }

func (*leakedDP) Description() string {
	return "e*dp = 1 mod p-1, so p divides a^(e*dp) - a; factor n with a gcd and decrypt"
}

// Solve relies on Fermat's little theorem: with b = e*dp = 1 + k(p-1), a^b = a (mod p) for any
// a, so p | gcd(n, a^b - a mod n). The gcd is n only if the same also holds modulo q.
func (s *leakedDP) Solve(params Params) (*Result, error) {
	p, ok := params.(*Level11Params)
	if !ok {
		return nil, wrongParams(LeakedDP, params)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	n := p.N
	if n.Sign() <= 0 {
		return nil, preconditionf("modulus must be positive")
	}
	b := new(big.Int).Mul(p.E, p.DP)
	modN := big.ModInt(n)
	diff := modN.Sub(modN.Exp(s.probe, b), s.probe)
	f := ntheory.GCD(n, diff)
	if f.Cmp(big.NewInt(1)) <= 0 || f.Cmp(n) >= 0 {
		return nil, preconditionf("gcd(n, %s^(e*dp) - %s) = %s is not a proper factor", s.probe, s.probe, f)
	}
	q := new(big.Int).Div(n, f)
	if new(big.Int).Mul(f, q).Cmp(n) != 0 {
		return nil, preconditionf("recovered factor does not divide n")
	}
	common.Logger.Infof("%s: recovered p = ...%s", LeakedDP, common.FormatBigInt(f))
	return decryptWithFactors(LeakedDP, p.E, f, q, p.C)
}
