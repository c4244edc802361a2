// Copyright © 2021 Io FinNet Group, Inc.

package ntheory

import (
	big "github.com/iofinnet/zdrsa/common/int"
	"github.com/pkg/errors"
)

// FloorKthRoot returns the largest r with r^k <= n, by binary search over [0, 2^ceil(bitlen(n)/k)].
func FloorKthRoot(n *big.Int, k uint) (*big.Int, error) {
	if k == 0 {
		return nil, errors.Wrap(ErrInvalidArgument, "root degree must be positive")
	}
	if n.Sign() < 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "cannot take the root of negative %s", n)
	}
	if k == 1 || n.Cmp(one) <= 0 {
		return n.Clone(), nil
	}
	bitLen := n.BitLen()
	if k >= uint(bitLen) {
		// 2^k > n, so the root is 1
		return big.NewInt(1), nil
	}
	kBig := new(big.Int).SetUint64(uint64(k))
	low := big.NewInt(1)
	high := new(big.Int).Lsh(one, (uint(bitLen)+k-1)/k)

	mid := new(big.Int)
	midPower := new(big.Int)
	for low.Cmp(high) <= 0 {
		mid.Add(low, high)
		mid.Rsh(mid, 1)
		midPower.Exp(mid, kBig, nil)

		switch midPower.Cmp(n) {
		case 0:
			return mid.Clone(), nil
		case -1:
			low.Add(mid, one)
		case 1:
			high.Sub(mid, one)
		}
	}
	return high, nil
}

// IntegerKthRoot returns round(n^(1/k)), the integer nearest the real k-th root of n.
//
// The result is exact only when n really is a k-th power (or negligibly off one). For any
// other n it is still the nearest integer, which is a plausible but wrong plaintext when used
// to undo RSA with an exponent whose power wrapped around the modulus.
func IntegerKthRoot(n *big.Int, k uint) (*big.Int, error) {
	r, err := FloorKthRoot(n, k)
	if err != nil {
		return nil, err
	}
	kBig := new(big.Int).SetUint64(uint64(k))
	if new(big.Int).Exp(r, kBig, nil).Cmp(n) == 0 {
		return r, nil
	}
	// round up iff n^(1/k) > r + 1/2, that is 2^k * n > (2r+1)^k
	lhs := new(big.Int).Lsh(n, k)
	half := new(big.Int).Lsh(r, 1)
	half.Add(half, one)
	if lhs.Cmp(half.Exp(half, kBig, nil)) > 0 {
		return r.Add(r, one), nil
	}
	return r, nil
}

// IsPerfectPower reports whether n == r^k for some integer r.
func IsPerfectPower(n *big.Int, k uint) bool {
	r, err := FloorKthRoot(n, k)
	if err != nil {
		return false
	}
	return new(big.Int).Exp(r, new(big.Int).SetUint64(uint64(k)), nil).Cmp(n) == 0
}
