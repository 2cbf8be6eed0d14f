package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/lvlgrid/internal/usecase/query"
)

func inspectCmd() *cobra.Command {
	var expr string

	c := &cobra.Command{
		Use:   "inspect <level.json>",
		Short: "Query a level file with a JSONPath expression",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			val, err := query.File(args[0], expr)
			if err != nil {
				return err
			}

			out, err := query.Render(val)
			if err != nil {
				return err
			}
			fmt.Println(out)
			return nil
		},
	}

	c.Flags().StringVarP(&expr, "query", "q", "$", "JSONPath expression to evaluate")
	return c
}
