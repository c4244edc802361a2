// Copyright © 2021 Io FinNet Group, Inc.

package ntheory

import (
	big "github.com/iofinnet/zdrsa/common/int"
	"github.com/pkg/errors"
)

// CRTReconstruct returns the unique x in [0, prod(moduli)) with x = residues[i] (mod moduli[i])
// for every i, using Gauss's explicit sum x = sum(c_i * b_i * b_i^-1 mod n_i) mod N, b_i = N/n_i.
// The moduli must be positive and pairwise coprime.
func CRTReconstruct(moduli, residues []*big.Int) (*big.Int, error) {
	if len(moduli) == 0 || len(moduli) != len(residues) {
		return nil, errors.Wrapf(ErrInvalidArgument, "got %d moduli and %d residues", len(moduli), len(residues))
	}
	for i, n := range moduli {
		if n == nil || residues[i] == nil {
			return nil, errors.Wrapf(ErrInvalidArgument, "missing modulus or residue #%d", i+1)
		}
		if n.Sign() <= 0 {
			return nil, errors.Wrapf(ErrInvalidArgument, "modulus #%d is not positive", i+1)
		}
	}
	if err := PairwiseCoprime(moduli); err != nil {
		return nil, err
	}

	N := Prod(moduli)
	result := big.NewInt(0)
	for i, n := range moduli {
		b := new(big.Int).Div(N, n)
		inv, err := ModInverse(b, n)
		if err != nil {
			// unreachable for pairwise coprime moduli
			return nil, errors.Wrapf(err, "CRTReconstruct: inverting N/n%d", i+1)
		}
		term := new(big.Int).Mul(residues[i], b)
		result.Add(result, term.Mul(term, inv))
	}
	return result.Mod(result, N), nil
}
