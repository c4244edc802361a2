// Copyright © 2021 Io FinNet Group, Inc.

package attack_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/iofinnet/zdrsa/attack"
	big "github.com/iofinnet/zdrsa/common/int"
)

func TestSolvers(t *testing.T) {
	all := Solvers()
	require.Len(t, all, int(MaxLevel))
	for i, s := range all {
		l := Level(i + 1)
		assert.Equal(t, l, s.Level())
		assert.NotEmpty(t, s.Description())

		byLevel, err := SolverFor(l)
		require.NoError(t, err)
		assert.Equal(t, l, byLevel.Level())

		params, err := NewParams(l)
		require.NoError(t, err)
		assert.Equal(t, l, params.Level())
		assert.True(t, errors.Is(params.Validate(), ErrMissingField), l.String())
	}
	all[0] = nil
	assert.NotNil(t, Solvers()[0])
}

func TestUnknownLevel(t *testing.T) {
	for _, l := range []Level{0, -1, 12, 100} {
		assert.False(t, l.Valid())
		_, err := SolverFor(l)
		assert.True(t, errors.Is(err, ErrUnknownLevel))
		_, err = NewParams(l)
		assert.True(t, errors.Is(err, ErrUnknownLevel))
	}
	assert.Equal(t, "level 12", Level(12).String())
	assert.Equal(t, "level 9 (broadcast to three moduli)", Broadcast.String())
}

func TestFormatAnswer(t *testing.T) {
	assert.Equal(t, "ZD{}", FormatAnswer())
	assert.Equal(t, "ZD{abc}", FormatAnswer("abc"))
	assert.Equal(t, "ZD{3233,2753,17}", FormatAnswer(big.NewInt(3233), big.NewInt(2753), big.NewInt(17)))
}
