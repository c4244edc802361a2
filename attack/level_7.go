// Copyright © 2021 Io FinNet Group, Inc.

package attack

import (
	"github.com/iofinnet/zdrsa/common"
	big "github.com/iofinnet/zdrsa/common/int"
)

// KnownSmallFactor is the factor of the challenge modulus listed in factordb.
const KnownSmallFactor = 3133337

type (
	smallFactor struct {
		factor      *big.Int
		searchLimit int64
	}

	SmallFactorOption func(*smallFactor)
)

// WithKnownFactor replaces KnownSmallFactor.
func WithKnownFactor(f *big.Int) SmallFactorOption {
	return func(s *smallFactor) {
		s.factor = f.Clone()
	}
}

// WithFactorSearch makes the solver trial-divide n by the primes up to limit instead of
// assuming the known factor. A factor given in the parameters still takes precedence.
func WithFactorSearch(limit int64) SmallFactorOption {
	return func(s *smallFactor) {
		s.searchLimit = limit
	}
}

func NewSmallFactorSolver(opts ...SmallFactorOption) Solver {
	s := &smallFactor{factor: big.NewInt(KnownSmallFactor)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (*smallFactor) Level() Level { return SmallFactor }

func (*smallFactor) Description() string {
	return "split n with a known small prime factor, then decrypt as level 6"
}

func (s *smallFactor) Solve(params Params) (*Result, error) {
	p, ok := params.(*Level7Params)
	if !ok {
		return nil, wrongParams(SmallFactor, params)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	f, err := s.findFactor(p)
	if err != nil {
		return nil, err
	}
	q := new(big.Int).Div(p.N, f)
	common.Logger.Infof("%s: n = %s * q", SmallFactor, f)
	return decryptWithFactors(SmallFactor, p.E, f, q, p.Ciphertext)
}

func (s *smallFactor) findFactor(p *Level7Params) (*big.Int, error) {
	f := s.factor
	switch {
	case p.Factor != nil:
		f = p.Factor
	case s.searchLimit > 0:
		if f = common.FindSmallFactor(p.N, s.searchLimit); f == nil {
			return nil, preconditionf("n has no prime factor <= %d", s.searchLimit)
		}
	}
	if f.Cmp(big.NewInt(1)) <= 0 || f.Cmp(p.N) >= 0 {
		return nil, preconditionf("%s is not a proper factor of n", f)
	}
	if new(big.Int).Mod(p.N, f).Sign() != 0 {
		return nil, preconditionf("%s does not divide n", f)
	}
	return f, nil
}
