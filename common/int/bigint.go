// Optionally constant time big.Int (best effort)

package int

import (
	"math/big"

	big_const "github.com/cronokirby/saferith"
)

type (
	// Int is a signed arbitrary-precision integer. The zero value is 0 and ready to use.
	Int struct {
		i *big.Int
	}
)

var (
	constantTimeIntEnabled = false
)

// EnableConstantTimeArithmetic routes modular exponentiation with an odd modulus through saferith.
// Must be called before any solver runs, or behaviour may be unpredictable.
func EnableConstantTimeArithmetic() (enabled bool) {
	constantTimeIntEnabled = true
	return constantTimeIntEnabled
}

// DisableConstantTimeArithmetic restores the math/big code paths.
func DisableConstantTimeArithmetic() {
	constantTimeIntEnabled = false
}

func ConstantTimeArithmeticEnabled() bool {
	return constantTimeIntEnabled
}

func NewInt(x int64) *Int {
	return &Int{big.NewInt(x)}
}

// Wrap copies i2 into a new *Int.
func Wrap(i2 *big.Int) *Int {
	if i2 == nil {
		return nil
	}
	return &Int{new(big.Int).Set(i2)}
}

func (z *Int) Set(x *Int) *Int {
	z.ensureInitialized()
	x.ensureInitialized()
	z.i.Set(x.i)
	return z
}
func (z *Int) SetBytes(data []byte) *Int {
	z.ensureInitialized()
	z.i.SetBytes(data)
	return z
}
func (z *Int) SetInt64(x int64) *Int {
	z.ensureInitialized()
	z.i.SetInt64(x)
	return z
}
func (z *Int) SetUint64(x uint64) *Int {
	z.ensureInitialized()
	z.i.SetUint64(x)
	return z
}
func (z *Int) SetString(s string, base int) (*Int, bool) {
	z.ensureInitialized()
	if _, ok := z.i.SetString(s, base); !ok {
		return nil, false
	}
	return z, true
}
func (z *Int) Clone() *Int {
	z.ensureInitialized()
	return &Int{new(big.Int).Set(z.i)}
}
func (z *Int) Cmp(y *Int) (r int) {
	z.ensureInitialized()
	y.ensureInitialized()
	return z.i.Cmp(y.i)
}
func (z *Int) BitLen() int {
	z.ensureInitialized()
	return z.i.BitLen()
}
func (z *Int) Neg(x *Int) *Int {
	z.ensureInitialized()
	x.ensureInitialized()
	z.i.Neg(x.i)
	return z
}
func (z *Int) Abs(x *Int) *Int {
	z.ensureInitialized()
	x.ensureInitialized()
	z.i.Abs(x.i)
	return z
}
func (z *Int) Add(x, y *Int) *Int {
	z.ensureInitialized()
	x.ensureInitialized()
	y.ensureInitialized()
	z.i.Add(x.i, y.i)
	return z
}
func (z *Int) Sub(x, y *Int) *Int {
	z.ensureInitialized()
	x.ensureInitialized()
	y.ensureInitialized()
	z.i.Sub(x.i, y.i)
	return z
}
func (z *Int) Mul(x, y *Int) *Int {
	z.ensureInitialized()
	x.ensureInitialized()
	y.ensureInitialized()
	z.i.Mul(x.i, y.i)
	return z
}

// Div is Euclidean division (see math/big); use FloorDiv for floor semantics with a negative divisor.
func (z *Int) Div(x, y *Int) *Int {
	z.ensureInitialized()
	x.ensureInitialized()
	y.ensureInitialized()
	z.i.Div(x.i, y.i)
	return z
}

// Mod is the Euclidean modulus, always in [0, |y|).
func (z *Int) Mod(x, y *Int) *Int {
	z.ensureInitialized()
	x.ensureInitialized()
	y.ensureInitialized()
	z.i.Mod(x.i, y.i)
	return z
}

// FloorDivMod sets z to floor(x/y) and m to x - y*z, so m carries the sign of y.
func (z *Int) FloorDivMod(x, y, m *Int) (*Int, *Int) {
	z.ensureInitialized()
	x.ensureInitialized()
	y.ensureInitialized()
	m.ensureInitialized()
	q, r := new(big.Int), new(big.Int)
	q.DivMod(x.i, y.i, r)
	if y.i.Sign() < 0 && r.Sign() != 0 {
		q.Sub(q, bigOne)
		r.Add(r, y.i)
	}
	z.i.Set(q)
	m.i.Set(r)
	return z, m
}

func (z *Int) String() string {
	if z == nil {
		return "<nil>"
	}
	z.ensureInitialized()
	return z.i.String()
}
func (z *Int) Text(base int) string {
	z.ensureInitialized()
	return z.i.Text(base)
}
func (z *Int) Lsh(x *Int, n uint) *Int {
	z.ensureInitialized()
	x.ensureInitialized()
	z.i.Lsh(x.i, n)
	return z
}
func (z *Int) Rsh(x *Int, n uint) *Int {
	z.ensureInitialized()
	x.ensureInitialized()
	z.i.Rsh(x.i, n)
	return z
}
func (z *Int) And(x, y *Int) *Int {
	z.ensureInitialized()
	x.ensureInitialized()
	y.ensureInitialized()
	z.i.And(x.i, y.i)
	return z
}

// Exp sets z = x**y mod |m| (see math/big for nil or zero m). With constant time arithmetic
// enabled, non-negative operands and an odd modulus > 1 are exponentiated by saferith.
func (z *Int) Exp(x, y, m *Int) *Int {
	z.ensureInitialized()
	x.ensureInitialized()
	y.ensureInitialized()
	if m == nil {
		z.i.Exp(x.i, y.i, nil)
		return z
	}
	m.ensureInitialized()
	if constantTimeIntEnabled && x.i.Sign() >= 0 && y.i.Sign() >= 0 && m.i.Bit(0) == 1 && m.i.Cmp(bigOne) > 0 {
		mod := big_const.ModulusFromBytes(m.i.Bytes())
		base := new(big_const.Nat).SetBig(x.i, x.i.BitLen())
		base = base.Mod(base, mod)
		exp := new(big_const.Nat).SetBig(y.i, y.i.BitLen())
		z.i.Set(new(big_const.Nat).Exp(base, exp, mod).Big())
		return z
	}
	if z.i.Exp(x.i, y.i, m.i) == nil {
		return nil
	}
	return z
}

// ModInverse sets z to the inverse of g in the ring Z/nZ. If g and n are not relatively prime
// (or n is zero) z is unchanged and nil is returned, as in math/big.
func (z *Int) ModInverse(g, n *Int) *Int {
	z.ensureInitialized()
	g.ensureInitialized()
	n.ensureInitialized()
	if n.i.Sign() == 0 || z.i.ModInverse(g.i, n.i) == nil {
		return nil
	}
	return z
}
func (z *Int) GCD(x, y, a, b *Int) *Int {
	z.ensureInitialized()
	a.ensureInitialized()
	b.ensureInitialized()
	var xi, yi *big.Int
	if x != nil {
		x.ensureInitialized()
		xi = x.i
	}
	if y != nil {
		y.ensureInitialized()
		yi = y.i
	}
	z.i.GCD(xi, yi, a.i, b.i)
	return z
}
func (z *Int) ProbablyPrime(n int) bool {
	z.ensureInitialized()
	return z.i.ProbablyPrime(n)
}

// getters
func (z *Int) Sign() int {
	z.ensureInitialized()
	return z.i.Sign()
}
func (z *Int) Int64() int64 {
	z.ensureInitialized()
	return z.i.Int64()
}
func (z *Int) IsInt64() bool {
	z.ensureInitialized()
	return z.i.IsInt64()
}
func (z *Int) Uint64() uint64 {
	z.ensureInitialized()
	return z.i.Uint64()
}
func (z *Int) IsUint64() bool {
	z.ensureInitialized()
	return z.i.IsUint64()
}
func (z *Int) Bit(i int) uint {
	z.ensureInitialized()
	return z.i.Bit(i)
}

// Bytes returns the absolute value of z as a big-endian byte slice.
func (z *Int) Bytes() []byte {
	z.ensureInitialized()
	return z.i.Bytes()
}

// Big returns a copy of z as a *big.Int.
func (z *Int) Big() *big.Int {
	z.ensureInitialized()
	return new(big.Int).Set(z.i)
}

// -----

var bigOne = big.NewInt(1)

func (z *Int) ensureInitialized() {
	if z.i == nil {
		z.i = new(big.Int)
	}
}

func SetString(s string, base int) (*Int, bool) {
	return new(Int).SetString(s, base)
}
