// Copyright © 2021 Io FinNet Group, Inc.

package rsa

import (
	"bytes"
	stdrsa "crypto/rsa"
	"crypto/x509"
	"encoding/pem"

	"github.com/pkg/errors"
	"golang.org/x/crypto/ssh"

	big "github.com/iofinnet/zdrsa/common/int"
)

// ErrKeyFormat is returned for key blobs that cannot be parsed as an RSA key.
var ErrKeyFormat = errors.New("rsa: malformed key")

// ImportedKey holds the numeric components of an imported key. D and the primes are nil for
// public keys.
type ImportedKey struct {
	PublicKey
	D      *big.Int
	Primes []*big.Int
}

// ImportKey decodes an RSA key from PEM (PKCS#1, PKCS#8, PKIX or OpenSSH private key), an
// OpenSSH authorized_keys line, or bare DER.
func ImportKey(blob []byte) (*ImportedKey, error) {
	data := bytes.TrimSpace(blob)
	if len(data) == 0 {
		return nil, errors.Wrap(ErrKeyFormat, "empty key")
	}
	if bytes.HasPrefix(data, []byte("ssh-rsa ")) {
		return importAuthorizedKey(data)
	}
	block, _ := pem.Decode(data)
	if block == nil {
		return importDER(data)
	}
	var (
		key interface{}
		err error
	)
	switch block.Type {
	case "RSA PRIVATE KEY":
		key, err = x509.ParsePKCS1PrivateKey(block.Bytes)
	case "PRIVATE KEY":
		key, err = x509.ParsePKCS8PrivateKey(block.Bytes)
	case "RSA PUBLIC KEY":
		key, err = x509.ParsePKCS1PublicKey(block.Bytes)
	case "PUBLIC KEY":
		key, err = x509.ParsePKIXPublicKey(block.Bytes)
	case "OPENSSH PRIVATE KEY":
		key, err = ssh.ParseRawPrivateKey(data)
	default:
		return nil, errors.Wrapf(ErrKeyFormat, "unsupported PEM block %q", block.Type)
	}
	if err != nil {
		return nil, errors.Wrapf(ErrKeyFormat, "%s: %v", block.Type, err)
	}
	return fromStdKey(key)
}

func importDER(der []byte) (*ImportedKey, error) {
	if key, err := x509.ParsePKCS1PrivateKey(der); err == nil {
		return fromStdKey(key)
	}
	if key, err := x509.ParsePKCS8PrivateKey(der); err == nil {
		return fromStdKey(key)
	}
	if key, err := x509.ParsePKIXPublicKey(der); err == nil {
		return fromStdKey(key)
	}
	if key, err := x509.ParsePKCS1PublicKey(der); err == nil {
		return fromStdKey(key)
	}
	return nil, errors.Wrap(ErrKeyFormat, "not a PEM block or a DER encoded RSA key")
}

func importAuthorizedKey(line []byte) (*ImportedKey, error) {
	pub, _, _, _, err := ssh.ParseAuthorizedKey(line)
	if err != nil {
		return nil, errors.Wrapf(ErrKeyFormat, "authorized key: %v", err)
	}
	cpk, ok := pub.(ssh.CryptoPublicKey)
	if !ok {
		return nil, errors.Wrapf(ErrKeyFormat, "authorized key of type %s", pub.Type())
	}
	return fromStdKey(cpk.CryptoPublicKey())
}

func fromStdKey(key interface{}) (*ImportedKey, error) {
	switch k := key.(type) {
	case *stdrsa.PrivateKey:
		ik := &ImportedKey{
			PublicKey: PublicKey{N: big.Wrap(k.N), E: big.NewInt(int64(k.E))},
			D:         big.Wrap(k.D),
		}
		for _, p := range k.Primes {
			ik.Primes = append(ik.Primes, big.Wrap(p))
		}
		return ik, nil
	case *stdrsa.PublicKey:
		return &ImportedKey{PublicKey: PublicKey{N: big.Wrap(k.N), E: big.NewInt(int64(k.E))}}, nil
	default:
		return nil, errors.Wrapf(ErrKeyFormat, "%T is not an RSA key", key)
	}
}

func (ik *ImportedKey) IsPrivate() bool {
	return ik.D != nil
}

// Triple returns (n, d, e), or an error for a public key.
func (ik *ImportedKey) Triple() (*KeyTriple, error) {
	if !ik.IsPrivate() {
		return nil, errors.Wrap(ErrInvalidKey, "public key has no private exponent")
	}
	return &KeyTriple{N: ik.N, D: ik.D, E: ik.E}, nil
}
