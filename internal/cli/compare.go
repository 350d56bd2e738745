package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"vspcatalog/internal/app"
)

type compareOptions struct {
	A string
	B string
}

func newCompareCommand() *cobra.Command {
	opts := compareOptions{}
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare two state files",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCompare(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.A, "a", "", "First state file")
	cmd.Flags().StringVar(&opts.B, "b", "", "Second state file")
	return cmd
}

func runCompare(ctx context.Context, cmd *cobra.Command, opts compareOptions) error {
	service := newAppService()
	result, err := service.Compare(ctx, app.CompareRequest{APath: opts.A, BPath: opts.B})
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, result.Status)
	if result.Diff != "" {
		fmt.Fprint(out, result.Diff)
	}
	return nil
}
