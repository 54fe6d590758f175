package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/repr"
	"github.com/urfave/cli/v2"

	"sol/interpreter-go/pkg/ast"
	"sol/interpreter-go/pkg/driver"
	"sol/interpreter-go/pkg/interpreter"
)

func runAction(c *cli.Context) error {
	path, err := sourceArg(c, "run")
	if err != nil {
		return err
	}
	program, err := driver.Load(path)
	if err != nil {
		return exitWithDiagnostic(err, program)
	}

	if c.Bool("debug") {
		repr.Println(program.Tree, repr.Indent("  "), repr.OmitEmpty(true))
	}

	err = interpreter.Interpret(program.Tree,
		interpreter.WithStdout(os.Stdout),
		interpreter.WithStderr(os.Stderr),
		interpreter.WithCommandRunner(runSubprocess),
	)
	if err != nil {
		return exitWithDiagnostic(err, program)
	}
	return nil
}

func scanAction(c *cli.Context) error {
	path, err := sourceArg(c, "scan")
	if err != nil {
		return err
	}
	program, err := driver.ScanOnly(path)
	if err != nil {
		return exitWithDiagnostic(err, program)
	}
	for _, tok := range program.Tokens {
		fmt.Println(formatToken(tok))
	}
	return nil
}

func printASTAction(c *cli.Context) error {
	path, err := sourceArg(c, "print-ast")
	if err != nil {
		return err
	}
	program, err := driver.Load(path)
	if err != nil {
		return exitWithDiagnostic(err, program)
	}
	fmt.Print(ast.Print(program.Tree))
	return nil
}
