// Package main provides fitcheck-cli, an offline runner for the fit-check engine.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// errNotPassed signals a layout with blocking issues; it maps to exit code 1.
var errNotPassed = errors.New("layout did not pass")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit code:
// 0 passed, 1 not passed, 2 input or configuration error.
func run(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout)
	root.SetArgs(args)
	root.SetErr(stderr)

	err := root.Execute()
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errNotPassed):
		return 1
	default:
		fmt.Fprintln(stderr, err)
		return 2
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:   "fitcheck-cli",
		Short: "Check furniture layouts against fit rules",
		Long: `fitcheck-cli evaluates a room layout file against the fit-check rules
without running the service.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)

	root.PersistentFlags().String("rules", "", "rule file (JSON or YAML; default: built-in rules)")

	root.AddCommand(newCheckCmd())
	root.AddCommand(newRulesCmd())
	return root
}
