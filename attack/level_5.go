// Copyright © 2021 Io FinNet Group, Inc.

package attack

import (
	"github.com/iofinnet/zdrsa/crypto/rsa"
)

type crtDecrypt struct{}

func (crtDecrypt) Level() Level { return CRTDecrypt }

func (crtDecrypt) Description() string {
	return "decrypt from the CRT private values (p, q, dp, dq, qinv)"
}

func (crtDecrypt) Solve(params Params) (*Result, error) {
	p, ok := params.(*Level5Params)
	if !ok {
		return nil, wrongParams(CRTDecrypt, params)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := rsa.ValidateCRT(p.P, p.Q, p.DQ, p.DP, p.QInv); err != nil {
		return nil, preconditionf("inconsistent CRT parameters: %v", err)
	}
	m := rsa.DecryptCRT(p.Ciphertext, p.P, p.Q, p.DQ, p.DP, p.QInv)
	return plaintext(CRTDecrypt, m)
}
