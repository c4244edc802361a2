// Copyright © 2021 Io FinNet Group, Inc.

package attack

import (
	"github.com/iofinnet/zdrsa/common"
	big "github.com/iofinnet/zdrsa/common/int"
	"github.com/iofinnet/zdrsa/crypto/ntheory"
)

type smallExponent struct{}

func (smallExponent) Level() Level { return SmallExponent }

func (smallExponent) Description() string {
	return "m^e < n never wrapped around the modulus, so m is the integer e-th root of c"
}

// Solve assumes m^e < n. When that does not hold the rounded root is still returned and the
// answer is garbage, or fails to decode.
func (smallExponent) Solve(params Params) (*Result, error) {
	p, ok := params.(*Level8Params)
	if !ok {
		return nil, wrongParams(SmallExponent, params)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	k, err := exponent(p.E)
	if err != nil {
		return nil, err
	}
	m, err := rootOf(SmallExponent, p.Ciphertext, k)
	if err != nil {
		return nil, err
	}
	return plaintext(SmallExponent, m)
}

// rootOf returns round(x^(1/k)) and warns when x is not an exact k-th power.
func rootOf(l Level, x *big.Int, k uint) (*big.Int, error) {
	m, err := ntheory.IntegerKthRoot(x, k)
	if err != nil {
		return nil, err
	}
	if !ntheory.IsPerfectPower(x, k) {
		common.Logger.Warnf("%s: the value is not a perfect %d-th power, m^e probably wrapped around", l, k)
	}
	return m, nil
}
