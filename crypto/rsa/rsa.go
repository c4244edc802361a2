// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// Textbook (unpadded) RSA over a two-prime modulus N = P*Q.
//
// * Encryption is c = m^E mod N
// * Decryption is m = c^D mod N, with D = E^-1 mod lambda(N) and lambda(N) = lcm(P-1, Q-1)
// * CRT decryption recombines m1 = c^Dp mod P and m2 = c^Dq mod Q with Garner's formula
//
// There is no padding; this package exists to reproduce and break weak RSA instances.

package rsa

import (
	"github.com/pkg/errors"

	"github.com/iofinnet/zdrsa/common"
	big "github.com/iofinnet/zdrsa/common/int"
	"github.com/iofinnet/zdrsa/crypto/ntheory"
)

type (
	PublicKey struct {
		N, E *big.Int
	}

	PrivateKey struct {
		PublicKey
		D,
		P, Q,
		LambdaN *big.Int // lcm(p-1, q-1)
		Precomputed CRTValues
	}

	// CRTValues are the PKCS#1 private exponents and coefficient of a two-prime key.
	CRTValues struct {
		Dp, // D mod (P-1)
		Dq, // D mod (Q-1)
		Qinv *big.Int // Q^-1 mod P
	}

	// KeyTriple is the (n, d, e) view of a private key.
	KeyTriple struct {
		N, D, E *big.Int
	}
)

var (
	ErrMessageTooLong = errors.New("rsa: the message is too large or < 0")
	ErrInvalidKey     = errors.New("rsa: invalid key")

	zero = big.NewInt(0)
	one  = big.NewInt(1)
)

// Encrypt computes m^e mod n with no range check on m.
func Encrypt(m, e, n *big.Int) *big.Int {
	return new(big.Int).Exp(m, e, n)
}

// Decrypt computes c^d mod n with no range check on c.
func Decrypt(c, d, n *big.Int) *big.Int {
	return new(big.Int).Exp(c, d, n)
}

// DecryptCRT computes c^d mod p*q from the CRT parameters:
// m1 = c^dp mod p, m2 = c^dq mod q, h = qinv*(m1-m2) mod p, m = m2 + h*q.
func DecryptCRT(c, p, q, dq, dp, qinv *big.Int) *big.Int {
	modP := big.ModInt(p)
	m1 := modP.Exp(c, dp)
	m2 := new(big.Int).Exp(c, dq, q)
	h := modP.Mul(qinv, new(big.Int).Sub(m1, m2))
	m := new(big.Int).Mul(h, q)
	return m.Add(m, m2)
}

// NewPrivateKey derives the private exponent and CRT values of the key (p*q, e).
// The exponent is inverted modulo the Carmichael totient, as in PKCS#1 v2.
func NewPrivateKey(p, q, e *big.Int) (*PrivateKey, error) {
	if p == nil || q == nil || e == nil {
		return nil, errors.Wrap(ErrInvalidKey, "NewPrivateKey received nil value(s)")
	}
	if p.Cmp(one) <= 0 || q.Cmp(one) <= 0 || p.Cmp(q) == 0 {
		return nil, errors.Wrapf(ErrInvalidKey, "p and q must be distinct and > 1")
	}
	lambdaN := ntheory.CarmichaelTotient(p, q)
	d, err := ntheory.ModInverse(e, lambdaN)
	if err != nil {
		return nil, errors.Wrapf(err, "e is not invertible modulo lambda(n)")
	}
	sk := &PrivateKey{
		PublicKey: PublicKey{N: new(big.Int).Mul(p, q), E: e.Clone()},
		D:         d,
		P:         p.Clone(),
		Q:         q.Clone(),
		LambdaN:   lambdaN,
	}
	if err = sk.Precompute(); err != nil {
		return nil, err
	}
	return sk, nil
}

// GenerateKey returns a key with two random primes of bits/2 bits each. Intended for tests
// and challenge construction, never for protecting anything.
func GenerateKey(bits int, e *big.Int) (*PrivateKey, error) {
	if bits < 16 {
		return nil, errors.Wrapf(ErrInvalidKey, "modulus of %d bits is too small", bits)
	}
	for {
		p, q := common.GetRandomPrimeInt(bits/2), common.GetRandomPrimeInt(bits-bits/2)
		if p.Cmp(q) == 0 {
			continue
		}
		sk, err := NewPrivateKey(p, q, e)
		if errors.Is(err, ntheory.ErrNotInvertible) {
			continue
		}
		return sk, err
	}
}

// ----- //

func (pk *PublicKey) Encrypt(m *big.Int) (*big.Int, error) {
	if m.Cmp(zero) == -1 || m.Cmp(pk.N) != -1 { // m < 0 || m >= N ?
		return nil, ErrMessageTooLong
	}
	return Encrypt(m, pk.E, pk.N), nil
}

// ----- //

func (sk *PrivateKey) Decrypt(c *big.Int) (*big.Int, error) {
	if c.Cmp(zero) == -1 || c.Cmp(sk.N) != -1 {
		return nil, ErrMessageTooLong
	}
	return Decrypt(c, sk.D, sk.N), nil
}

func (sk *PrivateKey) DecryptCRT(c *big.Int) (*big.Int, error) {
	if c.Cmp(zero) == -1 || c.Cmp(sk.N) != -1 {
		return nil, ErrMessageTooLong
	}
	if sk.Precomputed.Qinv == nil {
		if err := sk.Precompute(); err != nil {
			return nil, err
		}
	}
	pre := sk.Precomputed
	return DecryptCRT(c, sk.P, sk.Q, pre.Dq, pre.Dp, pre.Qinv), nil
}

// Precompute fills in Precomputed from D, P and Q.
func (sk *PrivateKey) Precompute() error {
	if sk.D == nil || sk.P == nil || sk.Q == nil {
		return errors.Wrap(ErrInvalidKey, "Precompute needs d, p and q")
	}
	qInv := big.ModInt(sk.P).Inverse(sk.Q)
	if qInv == nil {
		return errors.Wrap(ntheory.ErrNotInvertible, "q is not invertible modulo p")
	}
	sk.Precomputed = CRTValues{
		Dp:   big.ModInt(new(big.Int).Sub(sk.P, one)).Reduce(sk.D),
		Dq:   big.ModInt(new(big.Int).Sub(sk.Q, one)).Reduce(sk.D),
		Qinv: qInv,
	}
	return nil
}

func (sk *PrivateKey) Triple() *KeyTriple {
	return &KeyTriple{N: sk.N, D: sk.D, E: sk.E}
}

// ValidateCRT checks the relations a CRT decryption relies on: p and q prime and distinct,
// qinv*q = 1 mod p, and dp, dq positive. dp and dq need not be reduced modulo p-1 and q-1;
// any exponent congruent to d works, d itself included.
func ValidateCRT(p, q, dq, dp, qinv *big.Int) error {
	if !p.ProbablyPrime(common.PrimeTestN) || !q.ProbablyPrime(common.PrimeTestN) {
		return errors.Wrap(ErrInvalidKey, "p and q must be prime")
	}
	if p.Cmp(q) == 0 {
		return errors.Wrap(ErrInvalidKey, "p and q must be distinct")
	}
	if check := big.ModInt(p).Mul(qinv, q); check.Cmp(one) != 0 {
		return errors.Wrap(ErrInvalidKey, "qinv*q != 1 mod p")
	}
	if dp.Sign() <= 0 || dq.Sign() <= 0 {
		return errors.Wrap(ErrInvalidKey, "dp and dq must be positive")
	}
	return nil
}

func (pk *PublicKey) String() string {
	if pk == nil {
		return "<nil>"
	}
	return "rsa.PublicKey{N:" + common.FormatBigInt(pk.N) + ", E:" + pk.E.String() + "}"
}
