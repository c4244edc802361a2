// Copyright © 2021 Io FinNet Group, Inc.

package attack

import (
	"github.com/iofinnet/zdrsa/crypto/codec"
	"github.com/iofinnet/zdrsa/crypto/rsa"
)

type textbookEncrypt struct{}

func (textbookEncrypt) Level() Level { return TextbookEncrypt }

func (textbookEncrypt) Description() string {
	return "encrypt the message with (n, e): c = m^e mod n"
}

func (textbookEncrypt) Solve(params Params) (*Result, error) {
	p, ok := params.(*Level1Params)
	if !ok {
		return nil, wrongParams(TextbookEncrypt, params)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if p.N.Sign() <= 0 {
		return nil, preconditionf("modulus must be positive")
	}
	if p.E.Sign() < 0 {
		return nil, preconditionf("exponent e = %s is negative", p.E)
	}
	m := codec.StringToInt(*p.Message)
	return &Result{Level: TextbookEncrypt, Ciphertext: rsa.Encrypt(m, p.E, p.N)}, nil
}
