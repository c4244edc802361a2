// Copyright © 2021 Io FinNet Group, Inc.

package common

import (
	big "github.com/iofinnet/zdrsa/common/int"
	"github.com/otiai10/primes"
)

// PrimeTestN is the number of Miller-Rabin rounds used whenever an input is required to be prime.
const PrimeTestN = 20

// GetPrimesUpTo returns every prime <= limit, in increasing order.
func GetPrimesUpTo(limit int64) []int64 {
	if limit < 2 {
		return []int64{}
	}
	return primes.Until(limit).List()
}

// FindSmallFactor trial-divides n by every prime <= limit and returns the first one that divides
// it, or nil. A prime equal to n itself is not reported.
func FindSmallFactor(n *big.Int, limit int64) *big.Int {
	if n == nil || n.Cmp(two) < 0 {
		return nil
	}
	r := new(big.Int)
	for _, p := range GetPrimesUpTo(limit) {
		bp := big.NewInt(p)
		if bp.Cmp(n) >= 0 {
			break
		}
		if r.Mod(n, bp).Sign() == 0 {
			return bp
		}
	}
	return nil
}
