// Copyright © 2021 Io FinNet Group, Inc.

package attack

import (
	"github.com/pkg/errors"

	big "github.com/iofinnet/zdrsa/common/int"
	"github.com/iofinnet/zdrsa/crypto/rsa"
)

type factorsDecrypt struct{}

func (factorsDecrypt) Level() Level { return FactorsDecrypt }

func (factorsDecrypt) Description() string {
	return "rebuild d = e^-1 mod lcm(p-1, q-1) from the factors and decrypt"
}

func (factorsDecrypt) Solve(params Params) (*Result, error) {
	p, ok := params.(*Level6Params)
	if !ok {
		return nil, wrongParams(FactorsDecrypt, params)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return decryptWithFactors(FactorsDecrypt, p.E, p.P, p.Q, p.Ciphertext)
}

// decryptWithFactors recovers the private key of n = p*q and decrypts c with it.
func decryptWithFactors(l Level, e, p, q, c *big.Int) (*Result, error) {
	sk, err := rsa.NewPrivateKey(p, q, e)
	if err != nil {
		return nil, errors.Wrap(err, "rebuilding the private key")
	}
	return plaintext(l, rsa.Decrypt(c, sk.D, sk.N))
}
