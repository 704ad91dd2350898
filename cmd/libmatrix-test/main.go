// libmatrix-test - directed functional test utility for libmatrix.
//
// Runs the named matrix, stack and generator checks and prints one line per
// test. The exit status is non-zero when any test fails.
//
//	libmatrix-test               run every test
//	libmatrix-test --verbose     also print intermediate matrices
//	libmatrix-test lookAt scale  run only the named tests
//	libmatrix-test --list        print the test names
package main

import (
	"context"
	"fmt"
	"os"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"github.com/taigrr/libmatrix/internal/harness"
)

var (
	passStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4672")).Bold(true)
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#777777"))
)

func main() {
	if err := fang.Execute(context.Background(), newRootCmd()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts harness.Options
	var list bool

	cmd := &cobra.Command{
		Use:          "libmatrix-test [test...]",
		Short:        "Directed functional test utility for libmatrix",
		Long:         "Directed functional test utility for libmatrix.\nRuns the matrix, stack and transform generator checks.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			tests := harness.Default()
			out := cmd.OutOrStdout()

			if list {
				for _, t := range tests {
					fmt.Fprintln(out, t.Name)
				}
				return nil
			}

			if len(args) > 0 {
				var err error
				if tests, err = harness.Select(tests, args); err != nil {
					return err
				}
			}

			results := harness.Run(tests, opts, out, func(r harness.Result) {
				status := passStyle.Render("PASS")
				if !r.Pass() {
					status = failStyle.Render("FAIL")
				}
				fmt.Fprintf(out, "%s %-20s %s\n", status, r.Name, dimStyle.Render(r.Duration.String()))
				if !r.Pass() {
					fmt.Fprintf(out, "     %v\n", r.Err)
				}
			})

			if failed := harness.Failed(results); failed > 0 {
				return fmt.Errorf("%d of %d tests failed", failed, len(results))
			}
			fmt.Fprintf(out, "%d tests passed\n", len(results))
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.Verbose, "verbose", false, "Enable verbose output during test runs")
	cmd.Flags().BoolVar(&list, "list", false, "Print the available test names")
	return cmd
}
