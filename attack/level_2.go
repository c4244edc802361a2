// Copyright © 2021 Io FinNet Group, Inc.

package attack

import (
	"github.com/iofinnet/zdrsa/crypto/rsa"
)

type textbookDecrypt struct{}

func (textbookDecrypt) Level() Level { return TextbookDecrypt }

func (textbookDecrypt) Description() string {
	return "decrypt the ciphertext with (n, d): m = c^d mod n"
}

func (textbookDecrypt) Solve(params Params) (*Result, error) {
	p, ok := params.(*Level2Params)
	if !ok {
		return nil, wrongParams(TextbookDecrypt, params)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if p.N.Sign() <= 0 {
		return nil, preconditionf("modulus must be positive")
	}
	if p.D.Sign() < 0 {
		return nil, preconditionf("exponent d = %s is negative", p.D)
	}
	return plaintext(TextbookDecrypt, rsa.Decrypt(p.Ciphertext, p.D, p.N))
}
