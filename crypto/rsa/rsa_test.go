// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package rsa_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iofinnet/zdrsa/common"
	big "github.com/iofinnet/zdrsa/common/int"
	"github.com/iofinnet/zdrsa/crypto/codec"
	"github.com/iofinnet/zdrsa/crypto/ntheory"
	. "github.com/iofinnet/zdrsa/crypto/rsa"
)

const (
	testModulusBits = 512
)

var (
	e65537 = big.NewInt(65537)
)

func TestTextbookScenario(t *testing.T) {
	n, e, d := big.NewInt(3233), big.NewInt(17), big.NewInt(413)
	m := codec.StringToInt("A")
	assert.Equal(t, "65", m.String())

	c := Encrypt(m, e, n)
	assert.Equal(t, "2790", c.String())

	m2 := Decrypt(c, d, n)
	assert.Equal(t, "65", m2.String())
	s, err := codec.IntToString(m2)
	assert.NoError(t, err)
	assert.Equal(t, "A", s)
}

func TestNewPrivateKey(t *testing.T) {
	sk, err := NewPrivateKey(big.NewInt(61), big.NewInt(53), big.NewInt(17))
	require.NoError(t, err)
	assert.Equal(t, "3233", sk.N.String())
	assert.Equal(t, "780", sk.LambdaN.String())
	assert.Equal(t, "413", sk.D.String())
	assert.Equal(t, "53", sk.Precomputed.Dp.String())  // 413 mod 60
	assert.Equal(t, "49", sk.Precomputed.Dq.String())  // 413 mod 52
	assert.Equal(t, "38", sk.Precomputed.Qinv.String()) // 53*38 = 2014 = 33*61 + 1

	_, err = NewPrivateKey(big.NewInt(61), big.NewInt(53), big.NewInt(3))
	assert.True(t, errors.Is(err, ntheory.ErrNotInvertible), "gcd(3, 780) != 1")

	_, err = NewPrivateKey(big.NewInt(61), big.NewInt(61), big.NewInt(17))
	assert.True(t, errors.Is(err, ErrInvalidKey))
}

func TestEncryptDecryptInverse(t *testing.T) {
	for i := 0; i < 10; i++ {
		sk, err := GenerateKey(testModulusBits, e65537)
		require.NoError(t, err)
		m := common.GetRandomPositiveInt(sk.N)

		c, err := sk.PublicKey.Encrypt(m)
		require.NoError(t, err)
		m2, err := sk.Decrypt(c)
		require.NoError(t, err)
		assert.Equal(t, 0, m.Cmp(m2))
	}
}

func TestDecryptCRTEquivalence(t *testing.T) {
	for i := 0; i < 10; i++ {
		sk, err := GenerateKey(testModulusBits, e65537)
		require.NoError(t, err)
		pre := sk.Precomputed
		require.NoError(t, ValidateCRT(sk.P, sk.Q, pre.Dq, pre.Dp, pre.Qinv))

		c := common.GetRandomPositiveInt(sk.N)
		want := new(big.Int).Exp(c, sk.D, new(big.Int).Mul(sk.P, sk.Q))
		got := DecryptCRT(c, sk.P, sk.Q, pre.Dq, pre.Dp, pre.Qinv)
		assert.Equal(t, 0, want.Cmp(got))

		got, err = sk.DecryptCRT(c)
		require.NoError(t, err)
		assert.Equal(t, 0, want.Cmp(got))
	}
}

func TestValidateCRTRejectsInconsistentParams(t *testing.T) {
	sk, err := NewPrivateKey(big.NewInt(61), big.NewInt(53), big.NewInt(17))
	require.NoError(t, err)
	pre := sk.Precomputed

	err = ValidateCRT(sk.P, sk.Q, pre.Dq, pre.Dp, big.NewInt(39))
	assert.True(t, errors.Is(err, ErrInvalidKey))

	err = ValidateCRT(big.NewInt(60), sk.Q, pre.Dq, pre.Dp, pre.Qinv)
	assert.True(t, errors.Is(err, ErrInvalidKey))
}

func TestValidateCRTAcceptsUnreducedExponents(t *testing.T) {
	sk, err := NewPrivateKey(big.NewInt(61), big.NewInt(53), big.NewInt(17))
	require.NoError(t, err)
	qinv := sk.Precomputed.Qinv

	// dp = dq = d is congruent to d modulo p-1 and q-1
	require.NoError(t, ValidateCRT(sk.P, sk.Q, sk.D, sk.D, qinv))
	m := DecryptCRT(big.NewInt(2790), sk.P, sk.Q, sk.D, sk.D, qinv)
	assert.Equal(t, "65", m.String())

	assert.Equal(t, "rsa.PublicKey{N:ca1, E:17}", sk.PublicKey.String())

	err = ValidateCRT(sk.P, sk.Q, sk.Precomputed.Dq, big.NewInt(0), qinv)
	assert.True(t, errors.Is(err, ErrInvalidKey))
}

func TestMessageRange(t *testing.T) {
	sk, err := NewPrivateKey(big.NewInt(61), big.NewInt(53), big.NewInt(17))
	require.NoError(t, err)
	_, err = sk.PublicKey.Encrypt(big.NewInt(3233))
	assert.Equal(t, ErrMessageTooLong, err)
	_, err = sk.PublicKey.Encrypt(big.NewInt(-1))
	assert.Equal(t, ErrMessageTooLong, err)
	_, err = sk.Decrypt(big.NewInt(5000))
	assert.Equal(t, ErrMessageTooLong, err)
}

func TestConstantTimeExponentiation(t *testing.T) {
	sk, err := GenerateKey(testModulusBits, e65537)
	require.NoError(t, err)
	m := common.GetRandomPositiveInt(sk.N)
	c := Encrypt(m, sk.E, sk.N)

	big.EnableConstantTimeArithmetic()
	defer big.DisableConstantTimeArithmetic()
	assert.True(t, big.ConstantTimeArithmeticEnabled())
	m2, err := sk.Decrypt(c)
	require.NoError(t, err)
	assert.Equal(t, 0, m.Cmp(m2))
}
