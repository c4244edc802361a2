// Copyright © 2021 Io FinNet Group, Inc.

package attack

import (
	"github.com/iofinnet/zdrsa/crypto/rsa"
)

type keyDecrypt struct{}

func (keyDecrypt) Level() Level { return KeyDecrypt }

func (keyDecrypt) Description() string {
	return "import an encoded private key and decrypt with it"
}

func (keyDecrypt) Solve(params Params) (*Result, error) {
	p, ok := params.(*Level4Params)
	if !ok {
		return nil, wrongParams(KeyDecrypt, params)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	key, err := importPrivateKey(KeyDecrypt, p.Key)
	if err != nil {
		return nil, err
	}
	return plaintext(KeyDecrypt, rsa.Decrypt(p.Ciphertext, key.D, key.N))
}
