// Copyright © 2021 Io FinNet Group, Inc.

package attack

import (
	"github.com/pkg/errors"

	"github.com/iofinnet/zdrsa/common"
	"github.com/iofinnet/zdrsa/crypto/rsa"
)

type keyExtraction struct{}

func (keyExtraction) Level() Level { return KeyExtraction }

func (keyExtraction) Description() string {
	return "read n, d and e out of an encoded private key"
}

func (keyExtraction) Solve(params Params) (*Result, error) {
	p, ok := params.(*Level3Params)
	if !ok {
		return nil, wrongParams(KeyExtraction, params)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	key, err := importPrivateKey(KeyExtraction, p.Key)
	if err != nil {
		return nil, err
	}
	triple, _ := key.Triple()
	return &Result{Level: KeyExtraction, Key: triple}, nil
}

func importPrivateKey(l Level, blob string) (*rsa.ImportedKey, error) {
	key, err := rsa.ImportKey([]byte(blob))
	if err != nil {
		return nil, err
	}
	common.Logger.Debugf("%s: imported %s", l, &key.PublicKey)
	if !key.IsPrivate() {
		return nil, errors.Wrap(ErrPrecondition, "the key has no private exponent")
	}
	return key, nil
}
