// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package common

import (
	"fmt"

	big "github.com/iofinnet/zdrsa/common/int"

	"github.com/ipfs/go-log"
)

const LoggerName = "zdrsa"

var Logger = log.Logger(LoggerName)

// SetLogLevel changes the level of the package logger ("debug", "info", "warn", "error").
func SetLogLevel(level string) error {
	return log.SetLogLevel(LoggerName, level)
}

// FormatBigInt prints the low 32 bits of a in hex, so secrets never reach the log in full.
func FormatBigInt(a *big.Int) string {
	if a == nil {
		return "<nil>"
	}
	var aux = big.NewInt(0xFFFFFFFF)
	return func(i *big.Int) string {
		return new(big.Int).And(i, aux).Text(16)
	}(a)
}

func BigIntsToString(array []*big.Int) string {
	r := ""
	for a, b := range array {
		r = fmt.Sprintf("%s %d:%s ", r, a, FormatBigInt(b))
	}
	return r
}
