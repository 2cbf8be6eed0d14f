package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/lvlgrid/internal/domain"
	"github.com/aalvaropc/lvlgrid/internal/usecase/check"
)

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <level.json>",
		Short: "Verify the structural invariants of a level file",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			results, err := check.File(args[0])
			if err != nil {
				return err
			}

			printChecks(os.Stdout, results)

			if fails := domain.Failures(results); fails > 0 {
				return fmt.Errorf("check failed (%d failed check(s))", fails)
			}
			return nil
		},
	}
}

func printChecks(w io.Writer, results []domain.CheckResult) {
	for _, r := range results {
		mark := "✓"
		if !r.Passed {
			mark = "✗"
		}
		fmt.Fprintf(w, "%s %s — %s\n", mark, r.Name, r.Message)
	}
}
