// Copyright © 2021 Io FinNet Group, Inc.

package attack

import (
	"github.com/iofinnet/zdrsa/common"
	big "github.com/iofinnet/zdrsa/common/int"
	"github.com/iofinnet/zdrsa/crypto/ntheory"
)

type commonModulus struct{}

func (commonModulus) Level() Level { return CommonModulus }

func (commonModulus) Description() string {
	return "one message under one modulus and two coprime exponents: m = c1^x * c2^y with x*e1 + y*e2 = 1"
}

func (commonModulus) Solve(params Params) (*Result, error) {
	p, ok := params.(*Level10Params)
	if !ok {
		return nil, wrongParams(CommonModulus, params)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if p.N1.Cmp(p.N2) != 0 {
		return nil, preconditionf("the two moduli differ")
	}
	n := p.N1
	if n.Sign() <= 0 {
		return nil, preconditionf("modulus must be positive")
	}
	g, x, y := ntheory.ExtendedGCD(p.E1, p.E2)
	if g.Cmp(big.NewInt(1)) != 0 {
		return nil, preconditionf("gcd(e1, e2) = %s", g)
	}
	// m = m^(x*e1 + y*e2) = c1^x * c2^y mod n; one of x, y is negative
	t1, err := powSigned(p.C1, x, n, "c1")
	if err != nil {
		return nil, err
	}
	t2, err := powSigned(p.C2, y, n, "c2")
	if err != nil {
		return nil, err
	}
	return plaintext(CommonModulus, big.ModInt(n).Mul(t1, t2))
}

// powSigned returns c^k mod n, inverting c first when k is negative.
func powSigned(c, k, n *big.Int, name string) (*big.Int, error) {
	if k.Sign() >= 0 {
		return new(big.Int).Exp(c, k, n), nil
	}
	c = new(big.Int).Mod(c, n)
	if !common.IsNumberInMultiplicativeGroup(n, c) {
		return nil, preconditionf("%s is not invertible modulo n", name)
	}
	inv, err := ntheory.ModInverse(c, n)
	if err != nil {
		return nil, err
	}
	return new(big.Int).Exp(inv, new(big.Int).Neg(k), n), nil
}
