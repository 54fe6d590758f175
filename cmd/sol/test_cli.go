package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"sol/interpreter-go/pkg/driver"
	"sol/interpreter-go/pkg/interpreter"
)

var (
	passColor = color.New(color.FgGreen)
	failColor = color.New(color.FgRed, color.Bold)
)

func testAction(c *cli.Context) error {
	dir := "."
	if c.NArg() > 0 {
		dir = c.Args().First()
	}
	manifestPath, err := driver.FindManifest(dir)
	if err != nil {
		return cli.Exit(fmt.Sprintf("sol test: %v", err), 1)
	}
	failed, err := runFixtures(manifestPath, os.Stdout)
	if err != nil {
		return cli.Exit(fmt.Sprintf("sol test: %v", err), 2)
	}
	if failed > 0 {
		return cli.Exit("", 1)
	}
	return nil
}

// runFixtures executes every fixture in the manifest, reporting one line per
// fixture and a final summary. It returns the number of failures.
func runFixtures(manifestPath string, out io.Writer) (int, error) {
	manifest, err := driver.LoadManifest(manifestPath)
	if err != nil {
		return 0, err
	}
	if len(manifest.Fixtures) == 0 {
		fmt.Fprintln(out, "sol test: no fixtures declared")
		return 0, nil
	}

	failed := 0
	for _, fixture := range manifest.Fixtures {
		if reason := runFixture(fixture); reason != "" {
			failed++
			fmt.Fprintf(out, "%s %s: %s\n", failColor.Sprint("FAIL"), fixture.Name, reason)
		} else {
			fmt.Fprintf(out, "%s %s\n", passColor.Sprint("PASS"), fixture.Name)
		}
	}
	fmt.Fprintf(out, "%d passed, %d failed\n", len(manifest.Fixtures)-failed, failed)
	return failed, nil
}

// runFixture runs one fixture with in-memory sinks and compares the stdout
// transcript and expected error. An empty result means the fixture passed.
func runFixture(fixture driver.Fixture) string {
	var transcript bytes.Buffer
	program, err := driver.Load(fixture.SourcePath())
	if err == nil {
		err = interpreter.Interpret(program.Tree,
			interpreter.WithStdout(&transcript),
			interpreter.WithStderr(&transcript),
			interpreter.WithCommandRunner(runSubprocess),
		)
	}

	if fixture.ExpectsError() {
		if err == nil {
			return fmt.Sprintf("expected error containing %q, program succeeded", fixture.Error)
		}
		rendered := driver.Render(err, nil)
		if !strings.Contains(rendered, fixture.Error) {
			return fmt.Sprintf("expected error containing %q, got %q", fixture.Error, rendered)
		}
	} else if err != nil {
		return fmt.Sprintf("unexpected error: %v", err)
	}

	if fixture.Stdout != nil {
		want := strings.Join(fixture.Stdout, "\n")
		if len(fixture.Stdout) > 0 {
			want += "\n"
		}
		if transcript.String() != want {
			return fmt.Sprintf("stdout mismatch:\n--- want ---\n%s--- got ---\n%s", want, transcript.String())
		}
	}
	return ""
}
