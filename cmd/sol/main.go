// Command sol is the launcher for the Sol interpreter: it runs programs and
// exposes the scanner and parser surfaces for inspection.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

const version = "0.1.0"

func main() {
	app := &cli.App{
		Name:    "sol",
		Usage:   "interpreter for the Sol language",
		Version: version,
		Commands: []*cli.Command{
			{
				Name:      "run",
				Usage:     "scan, parse, and interpret a source file",
				ArgsUsage: "<file>",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "debug",
						Usage: "dump the parse tree before interpreting",
					},
				},
				Action: runAction,
			},
			{
				Name:      "scan",
				Usage:     "print the token sequence of a source file",
				ArgsUsage: "<file>",
				Action:    scanAction,
			},
			{
				Name:      "print-ast",
				Usage:     "print the parenthesized parse tree of a source file",
				ArgsUsage: "<file>",
				Action:    printASTAction,
			},
			{
				Name:      "test",
				Usage:     "run the fixtures declared in sol_tests.yml",
				ArgsUsage: "[dir]",
				Action:    testAction,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func sourceArg(c *cli.Context, command string) (string, error) {
	if c.NArg() != 1 {
		return "", cli.Exit(fmt.Sprintf("sol %s expects exactly one source file", command), 1)
	}
	return c.Args().First(), nil
}
