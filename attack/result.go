// Copyright © 2021 Io FinNet Group, Inc.

package attack

import (
	"fmt"
	"strings"

	big "github.com/iofinnet/zdrsa/common/int"
	"github.com/iofinnet/zdrsa/crypto/rsa"
)

type Result struct {
	Level Level
	// Plaintext is the recovered message; empty for levels 1 and 3.
	Plaintext string
	// Ciphertext is set by level 1 only.
	Ciphertext *big.Int
	// Key is set by level 3 only.
	Key *rsa.KeyTriple
}

// FormatAnswer renders values in the challenge's answer template, ZD{v1,v2,...}.
func FormatAnswer(values ...interface{}) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	return "ZD{" + strings.Join(parts, ",") + "}"
}

// Answer is the string submitted for the level. Levels 2 and 4 expect the bare plaintext.
func (r *Result) Answer() string {
	switch {
	case r.Ciphertext != nil:
		return FormatAnswer(r.Ciphertext)
	case r.Key != nil:
		return FormatAnswer(r.Key.N, r.Key.D, r.Key.E)
	case r.Level == TextbookDecrypt || r.Level == KeyDecrypt:
		return r.Plaintext
	}
	return FormatAnswer(r.Plaintext)
}

func (r *Result) String() string {
	return r.Answer()
}
