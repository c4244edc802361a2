// Copyright © 2021 Io FinNet Group, Inc.

package ntheory_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iofinnet/zdrsa/common"
	big "github.com/iofinnet/zdrsa/common/int"
	. "github.com/iofinnet/zdrsa/crypto/ntheory"
)

func n(x int64) *big.Int { return big.NewInt(x) }

func TestGCD(t *testing.T) {
	tests := []struct {
		a, b, want int64
	}{
		{12, 18, 6},
		{18, 12, 6},
		{17, 5, 1},
		{42, 0, 42},
		{0, 42, 42},
		{0, 0, 0},
		{-12, 18, 6},
		{12, -18, 6},
	}
	for _, tt := range tests {
		assert.Equal(t, 0, GCD(n(tt.a), n(tt.b)).Cmp(n(tt.want)), "gcd(%d, %d)", tt.a, tt.b)
	}
}

func TestExtendedGCDClassicCoefficients(t *testing.T) {
	g, x, y := ExtendedGCD(n(3), n(5))
	assert.Equal(t, "1", g.String())
	assert.Equal(t, "2", x.String())
	assert.Equal(t, "-1", y.String())

	g, x, y = ExtendedGCD(n(240), n(46))
	assert.Equal(t, "2", g.String())
	assert.Equal(t, "-9", x.String())
	assert.Equal(t, "47", y.String())

	g, x, y = ExtendedGCD(n(0), n(7))
	assert.Equal(t, "7", g.String())
	assert.Equal(t, "0", x.String())
	assert.Equal(t, "1", y.String())
}

func TestBezoutCoeffsIdentity(t *testing.T) {
	pairs := [][2]int64{
		{3, 5}, {5, 3}, {17, 65537}, {240, 46}, {46, 240}, {12, 18}, {1, 1},
		{7, 0}, {0, 7}, {-3, 5}, {3, -5}, {-240, -46}, {1071, 462},
	}
	for _, p := range pairs {
		a, b := n(p[0]), n(p[1])
		x, y := BezoutCoeffs(a, b)
		lhs := new(big.Int).Add(new(big.Int).Mul(x, a), new(big.Int).Mul(y, b))
		assert.Equal(t, 0, lhs.Cmp(GCD(a, b)), "x*a + y*b == gcd(a, b) for %v", p)
	}
}

func TestModInverse(t *testing.T) {
	inv, err := ModInverse(n(17), n(3120))
	require.NoError(t, err)
	assert.Equal(t, "2753", inv.String())

	inv, err = ModInverse(n(-1), n(5))
	require.NoError(t, err)
	assert.Equal(t, "4", inv.String())

	inv, err = ModInverse(n(5+3*7), n(7))
	require.NoError(t, err)
	assert.Equal(t, "3", inv.String())

	_, err = ModInverse(n(6), n(9))
	assert.True(t, errors.Is(err, ErrNotInvertible))

	_, err = ModInverse(n(3), n(0))
	assert.True(t, errors.Is(err, ErrNotInvertible))
}

func TestModInverseRandom(t *testing.T) {
	for i := 0; i < 20; i++ {
		p := common.GetRandomPrimeInt(256)
		a := common.GetRandomPositiveInt(p)
		inv, err := ModInverse(a, p)
		require.NoError(t, err)
		assert.True(t, inv.Sign() >= 0 && inv.Cmp(p) < 0)
		prod := new(big.Int).Mul(a, inv)
		assert.Equal(t, "1", prod.Mod(prod, p).String())
	}
}

func TestLCMAndCarmichaelTotient(t *testing.T) {
	assert.Equal(t, "36", LCM(n(12), n(18)).String())
	assert.Equal(t, "0", LCM(n(0), n(18)).String())
	// lambda(61*53) = lcm(60, 52) = 780
	assert.Equal(t, "780", CarmichaelTotient(n(61), n(53)).String())
}

func TestPairwiseCoprime(t *testing.T) {
	assert.NoError(t, PairwiseCoprime([]*big.Int{n(3), n(5), n(7)}))
	err := PairwiseCoprime([]*big.Int{n(3), n(5), n(21)})
	assert.True(t, errors.Is(err, ErrNonCoprimeModuli))
}

func TestCRTReconstructSmall(t *testing.T) {
	// x = 2 mod 3, 3 mod 5, 2 mod 7 -> 23
	x, err := CRTReconstruct([]*big.Int{n(3), n(5), n(7)}, []*big.Int{n(2), n(3), n(2)})
	require.NoError(t, err)
	assert.Equal(t, "23", x.String())

	x, err = CRTReconstruct([]*big.Int{n(11), n(13)}, []*big.Int{n(0), n(0)})
	require.NoError(t, err)
	assert.Equal(t, "0", x.String())
}

func TestCRTReconstructRandom(t *testing.T) {
	for round := 0; round < 5; round++ {
		moduli := []*big.Int{
			common.GetRandomPrimeInt(128), common.GetRandomPrimeInt(128),
			common.GetRandomPrimeInt(128), common.GetRandomPrimeInt(128),
		}
		if PairwiseCoprime(moduli) != nil {
			continue
		}
		residues := make([]*big.Int, len(moduli))
		for i, m := range moduli {
			residues[i] = common.GetRandomPositiveInt(m)
		}
		x, err := CRTReconstruct(moduli, residues)
		require.NoError(t, err)
		assert.True(t, x.Sign() >= 0 && x.Cmp(Prod(moduli)) < 0)
		for i, m := range moduli {
			assert.Equal(t, 0, new(big.Int).Mod(x, m).Cmp(residues[i]))
		}
	}
}

func TestCRTReconstructErrors(t *testing.T) {
	_, err := CRTReconstruct([]*big.Int{n(6), n(9)}, []*big.Int{n(1), n(2)})
	assert.True(t, errors.Is(err, ErrNonCoprimeModuli))

	_, err = CRTReconstruct([]*big.Int{n(5)}, []*big.Int{n(1), n(2)})
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	_, err = CRTReconstruct(nil, nil)
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	_, err = CRTReconstruct([]*big.Int{n(5), n(-7)}, []*big.Int{n(1), n(2)})
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}
