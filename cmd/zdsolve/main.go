// Copyright © 2021 Io FinNet Group, Inc.

// Command zdsolve solves one level of the Zero Days RSA challenge from a JSON data file.
//
//	zdsolve [-v] [-ct] [-search limit] <level> <file.json>
//	zdsolve -list
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"

	"github.com/iofinnet/zdrsa/attack"
	"github.com/iofinnet/zdrsa/common"
	big "github.com/iofinnet/zdrsa/common/int"
)

const (
	exitOK = iota
	exitFailure
	exitUsage
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("zdsolve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		list    = fs.Bool("list", false, "print the level catalog and exit")
		verbose = fs.Bool("v", false, "debug logging")
		ct      = fs.Bool("ct", false, "constant time modular exponentiation for odd moduli")
		search  = fs.Int64("search", 0, "level 7: trial-divide n by the primes up to this limit instead of using the known factor")
	)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: zdsolve [-v] [-ct] [-search limit] <level> <file.json>\n       zdsolve -list")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if *list {
		printCatalog(stdout)
		return exitOK
	}
	if fs.NArg() != 2 {
		fs.Usage()
		return exitUsage
	}
	if *verbose {
		if err := common.SetLogLevel("debug"); err != nil {
			fmt.Fprintln(stderr, err)
			return exitUsage
		}
	}
	if *ct {
		big.EnableConstantTimeArithmetic()
		defer big.DisableConstantTimeArithmetic()
	}

	n, err := strconv.Atoi(fs.Arg(0))
	if err != nil || !attack.Level(n).Valid() {
		fmt.Fprintf(stderr, "unknown level %q, expected %d to %d\n", fs.Arg(0), int(attack.MinLevel), int(attack.MaxLevel))
		return exitUsage
	}
	l := attack.Level(n)
	params, err := attack.LoadParamsFile(fs.Arg(1), l)
	if err != nil {
		fmt.Fprintln(stderr, err)
		if errors.Is(err, attack.ErrMissingField) || errors.Is(err, attack.ErrLevelNotFound) {
			return exitFailure
		}
		return exitUsage
	}

	solver, err := attack.SolverFor(l)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	if l == attack.SmallFactor && *search > 0 {
		solver = attack.NewSmallFactorSolver(attack.WithFactorSearch(*search))
	}
	res, err := attack.SolveWith(solver, params)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitFailure
	}
	fmt.Fprintln(stdout, res.Answer())
	return exitOK
}

func printCatalog(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Level", "Attack", "Method"})
	table.SetAutoWrapText(false)
	for _, s := range attack.Solvers() {
		l := s.Level()
		table.Append([]string{strconv.Itoa(int(l)), l.Name(), s.Description()})
	}
	table.Render()
}
