// Copyright © 2021 Io FinNet Group, Inc.

package attack

import (
	"github.com/pkg/errors"

	"github.com/iofinnet/zdrsa/common"
	big "github.com/iofinnet/zdrsa/common/int"
	"github.com/iofinnet/zdrsa/crypto/ntheory"
)

type broadcast struct{}

func (broadcast) Level() Level { return Broadcast }

func (broadcast) Description() string {
	return "one message under three coprime moduli: CRT gives m^e, then take the e-th root"
}

// Solve assumes m^e < n1*n2*n3, see smallExponent.
func (broadcast) Solve(params Params) (*Result, error) {
	p, ok := params.(*Level9Params)
	if !ok {
		return nil, wrongParams(Broadcast, params)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	k, err := exponent(p.E)
	if err != nil {
		return nil, err
	}
	common.Logger.Debugf("%s: moduli (low bits)%s", Broadcast, common.BigIntsToString([]*big.Int{p.N1, p.N2, p.N3}))
	// x = m^e mod n1*n2*n3, which is m^e itself while m^e is below the product
	x, err := ntheory.CRTReconstruct([]*big.Int{p.N1, p.N2, p.N3}, []*big.Int{p.C1, p.C2, p.C3})
	if err != nil {
		return nil, errors.Wrap(err, "recombining the ciphertexts")
	}
	m, err := rootOf(Broadcast, x, k)
	if err != nil {
		return nil, err
	}
	return plaintext(Broadcast, m)
}
