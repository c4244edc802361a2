// Copyright © 2021 Io FinNet Group, Inc.

// Package codec maps message text to and from the integers RSA operates on.
// A string is read as the big-endian integer of its UTF-8 bytes.
package codec

import (
	big "github.com/iofinnet/zdrsa/common/int"
	"github.com/pkg/errors"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// ErrDecode is returned when a recovered integer is not the encoding of any text, which usually
// means the attack that produced it failed.
var ErrDecode = errors.New("codec: integer does not decode to valid UTF-8 text")

func BytesToInt(b []byte) *big.Int {
	return new(big.Int).SetBytes(b)
}

// IntToBytes returns the minimal big-endian encoding of n; 0 encodes to an empty slice.
func IntToBytes(n *big.Int) ([]byte, error) {
	if n == nil || n.Sign() < 0 {
		return nil, errors.Wrap(ErrDecode, "negative or missing integer")
	}
	return n.Bytes(), nil
}

func StringToInt(s string) *big.Int {
	return BytesToInt([]byte(s))
}

// IntToString inverts StringToInt. Strings that begin with NUL bytes do not survive the round
// trip, since leading zero bytes carry no weight in the integer.
func IntToString(n *big.Int) (string, error) {
	b, err := IntToBytes(n)
	if err != nil {
		return "", err
	}
	s := string(b)
	if err := validateUTF8(s); err != nil {
		return "", err
	}
	return s, nil
}

// validateUTF8 reports the offset of the first ill-formed byte. The spanning side of
// ReplaceIllFormed stops exactly there, so nothing is copied for valid text.
func validateUTF8(s string) error {
	b := []byte(s)
	n, err := runes.ReplaceIllFormed().Span(b, true)
	switch {
	case err == nil:
		return nil
	case err == transform.ErrEndOfSpan && n < len(b):
		return errors.Wrapf(ErrDecode, "ill-formed byte 0x%02x at offset %d of %d", b[n], n, len(b))
	}
	return errors.Wrap(ErrDecode, err.Error())
}
