// Copyright © 2021 Io FinNet Group, Inc.

package common_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/iofinnet/zdrsa/common"
	big "github.com/iofinnet/zdrsa/common/int"
)

func TestGetPrimesUpTo(t *testing.T) {
	assert.Equal(t, []int64{2, 3, 5, 7, 11, 13}, GetPrimesUpTo(13))
	assert.Empty(t, GetPrimesUpTo(1))
	assert.Len(t, GetPrimesUpTo(10000), 1229)
}

func TestFindSmallFactor(t *testing.T) {
	q := GetRandomPrimeInt(128)
	n := new(big.Int).Mul(big.NewInt(7919), q)

	f := FindSmallFactor(n, 10000)
	require.NotNil(t, f)
	assert.Equal(t, int64(7919), f.Int64())

	assert.Nil(t, FindSmallFactor(n, 7000))
	assert.Nil(t, FindSmallFactor(big.NewInt(7919), 10000), "a prime is not its own small factor")
	assert.Nil(t, FindSmallFactor(big.NewInt(1), 10000))
	assert.Equal(t, int64(2), FindSmallFactor(big.NewInt(1<<20), 10).Int64())
}

func TestFormatBigInt(t *testing.T) {
	assert.Equal(t, "<nil>", FormatBigInt(nil))
	x, _ := big.SetString("123456789abcdef0123456789", 16)
	assert.Equal(t, "23456789", FormatBigInt(x))
	assert.Equal(t, " 0:1  1:ff ", BigIntsToString([]*big.Int{big.NewInt(1), big.NewInt(255)}))
	assert.NoError(t, SetLogLevel("info"))
	assert.Error(t, SetLogLevel("nonsense"))
}
