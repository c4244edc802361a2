// Copyright © 2021 Io FinNet Group, Inc.

package codec_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iofinnet/zdrsa/common"
	big "github.com/iofinnet/zdrsa/common/int"
	. "github.com/iofinnet/zdrsa/crypto/codec"
)

func TestStringToInt(t *testing.T) {
	assert.Equal(t, "65", StringToInt("A").String())
	assert.Equal(t, "16706", StringToInt("AB").String())
	assert.Equal(t, "0", StringToInt("").String())
}

func TestIntToString(t *testing.T) {
	s, err := IntToString(big.NewInt(65))
	require.NoError(t, err)
	assert.Equal(t, "A", s)

	s, err = IntToString(big.NewInt(0))
	require.NoError(t, err)
	assert.Equal(t, "", s)
}

func TestRoundTrip(t *testing.T) {
	for _, s := range []string{
		"A",
		"hello, world",
		"λ(n) = lcm(p−1, q−1)",
		"emoji 🔐 and \ttabs\n",
		"� is a legitimate rune",
		"ZD{a,b,c}",
	} {
		got, err := IntToString(StringToInt(s))
		require.NoError(t, err, s)
		assert.Equal(t, s, got)
	}
}

func TestRoundTripRandomValidText(t *testing.T) {
	alphabet := []rune("abcdefghijklmnopqrstuvwxyzÀÉÎÕÜßøπλΩ€😀 ")
	for i := 0; i < 50; i++ {
		r := common.MustGetRandomInt(64)
		var rs []rune
		for j := 0; j < 1+int(r.Uint64()%40); j++ {
			rs = append(rs, alphabet[(r.Uint64()>>uint(j%32))%uint64(len(alphabet))])
		}
		s := string(rs)
		got, err := IntToString(StringToInt(s))
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
}

func TestLeadingZeroBytesAreLost(t *testing.T) {
	got, err := IntToString(StringToInt("\x00\x00A"))
	require.NoError(t, err)
	assert.Equal(t, "A", got)
}

func TestIntToStringRejectsInvalidUTF8(t *testing.T) {
	_, err := IntToString(BytesToInt([]byte{0xff, 0xfe, 0x41}))
	assert.True(t, errors.Is(err, ErrDecode))

	_, err = IntToString(BytesToInt([]byte{0xe2, 0x82}))
	assert.True(t, errors.Is(err, ErrDecode))

	_, err = IntToString(BytesToInt([]byte("ok \xc3(")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "0xc3 at offset 3 of 5")

	_, err = IntToString(big.NewInt(-65))
	assert.True(t, errors.Is(err, ErrDecode))
}
