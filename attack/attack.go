// Copyright © 2021 Io FinNet Group, Inc.

// Package attack implements the eleven levels of the Zero Days RSA challenge. Each level is a
// Solver that turns one typed parameter record into the challenge answer by exploiting a single
// algebraic weakness of the key material it is given.
package attack

import (
	"fmt"

	"github.com/pkg/errors"
)

type (
	// Level identifies a challenge level, 1 through 11.
	Level int

	// Params is the parameter record of exactly one level.
	Params interface {
		Level() Level
		// Validate reports every required field that is missing.
		Validate() error
	}

	Solver interface {
		Level() Level
		Description() string
		Solve(params Params) (*Result, error)
	}

	// Error tags a solver failure with its level.
	Error struct {
		Level Level
		Err   error
	}
)

const (
	TextbookEncrypt Level = iota + 1
	TextbookDecrypt
	KeyExtraction
	KeyDecrypt
	CRTDecrypt
	FactorsDecrypt
	SmallFactor
	SmallExponent
	Broadcast
	CommonModulus
	LeakedDP

	MinLevel = TextbookEncrypt
	MaxLevel = LeakedDP
)

var (
	ErrPrecondition  = errors.New("attack: precondition violated")
	ErrUnknownLevel  = errors.New("attack: unknown level")
	ErrMissingField  = errors.New("attack: missing field")
	ErrWrongParams   = errors.New("attack: parameters belong to another level")
	ErrLevelNotFound = errors.New("attack: no data for level")
)

var levelNames = map[Level]string{
	TextbookEncrypt: "textbook encryption",
	TextbookDecrypt: "textbook decryption",
	KeyExtraction:   "private key extraction",
	KeyDecrypt:      "private key decryption",
	CRTDecrypt:      "CRT decryption",
	FactorsDecrypt:  "decryption from the factors",
	SmallFactor:     "small prime factor",
	SmallExponent:   "small public exponent",
	Broadcast:       "broadcast to three moduli",
	CommonModulus:   "common modulus",
	LeakedDP:        "leaked CRT exponent dp",
}

func (l Level) Valid() bool {
	return MinLevel <= l && l <= MaxLevel
}

// Name is the short name of the weakness the level exploits, or "" for an unknown level.
func (l Level) Name() string {
	return levelNames[l]
}

func (l Level) String() string {
	if name := l.Name(); name != "" {
		return fmt.Sprintf("level %d (%s)", int(l), name)
	}
	return fmt.Sprintf("level %d", int(l))
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Level, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func preconditionf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrPrecondition, format, args...)
}
