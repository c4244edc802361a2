// Copyright © 2021 Io FinNet Group, Inc.

package attack

import (
	"github.com/pkg/errors"

	"github.com/iofinnet/zdrsa/common"
	big "github.com/iofinnet/zdrsa/common/int"
	"github.com/iofinnet/zdrsa/crypto/codec"
)

// The level set is fixed by the challenge, so the registry is closed.
var solvers = [...]Solver{
	textbookEncrypt{},
	textbookDecrypt{},
	keyExtraction{},
	keyDecrypt{},
	crtDecrypt{},
	factorsDecrypt{},
	NewSmallFactorSolver(),
	smallExponent{},
	broadcast{},
	commonModulus{},
	NewLeakedDPSolver(),
}

// Solvers returns the eleven solvers, ordered by level.
func Solvers() []Solver {
	out := make([]Solver, len(solvers))
	copy(out, solvers[:])
	return out
}

func SolverFor(l Level) (Solver, error) {
	if !l.Valid() {
		return nil, errors.Wrapf(ErrUnknownLevel, "%d is not between %d and %d", int(l), int(MinLevel), int(MaxLevel))
	}
	return solvers[l-MinLevel], nil
}

// Solve runs the solver of the level params belong to. Failures are returned as *Error.
func Solve(params Params) (*Result, error) {
	if params == nil {
		return nil, errors.Wrap(ErrWrongParams, "nil parameters")
	}
	solver, err := SolverFor(params.Level())
	if err != nil {
		return nil, err
	}
	return run(solver, params)
}

// SolveWith runs a configured solver, such as one built by NewSmallFactorSolver, with the same
// logging and error tagging as Solve.
func SolveWith(solver Solver, params Params) (*Result, error) {
	if solver == nil {
		return nil, errors.Wrap(ErrWrongParams, "nil solver")
	}
	return run(solver, params)
}

func run(solver Solver, params Params) (*Result, error) {
	l := solver.Level()
	common.Logger.Debugf("%s: solving", l)
	res, err := solver.Solve(params)
	if err != nil {
		common.Logger.Debugf("%s: failed: %v", l, err)
		return nil, &Error{l, err}
	}
	common.Logger.Debugf("%s: solved", l)
	return res, nil
}

// plaintext decodes a recovered message integer into the level's result.
func plaintext(l Level, m *big.Int) (*Result, error) {
	s, err := codec.IntToString(m)
	if err != nil {
		return nil, err
	}
	return &Result{Level: l, Plaintext: s}, nil
}

func wrongParams(l Level, params Params) error {
	if params == nil {
		return errors.Wrapf(ErrWrongParams, "%s got nil parameters", l)
	}
	return errors.Wrapf(ErrWrongParams, "%s got parameters of %s", l, params.Level())
}

const maxRootDegree = 1 << 20

// exponent narrows e to a root degree.
func exponent(e *big.Int) (uint, error) {
	if e.Sign() <= 0 || !e.IsUint64() || e.Uint64() > maxRootDegree {
		return 0, preconditionf("exponent %s is not a small positive integer", e)
	}
	return uint(e.Uint64()), nil
}
