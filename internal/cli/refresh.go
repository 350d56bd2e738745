package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"vspcatalog/internal/app"
)

type refreshOptions struct {
	State    string
	Geometry string
	Output   string
	Prompt   string
}

func newRefreshCommand() *cobra.Command {
	opts := refreshOptions{}
	cmd := &cobra.Command{
		Use:   "refresh",
		Short: "Read computed outputs back from an applied geometry file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRefresh(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.State, "state", "", "State file to refresh")
	cmd.Flags().StringVar(&opts.Geometry, "geometry", "", "Geometry file written after applying the design file")
	cmd.Flags().StringVar(&opts.Output, "out", "", "Write the refreshed state here")
	addPromptFlag(cmd, &opts.Prompt)
	return cmd
}

func runRefresh(ctx context.Context, cmd *cobra.Command, opts refreshOptions) error {
	ack, err := resolveAcknowledger(cmd, opts.Prompt)
	if err != nil {
		return err
	}
	service := newAppService()
	result, err := service.Refresh(ctx, app.RefreshRequest{
		StatePath:    resolveString(cmd, opts.State, "state", "state"),
		GeometryPath: resolveString(cmd, opts.Geometry, "geometry", "geometry"),
		OutputPath:   resolveString(cmd, opts.Output, "output", "out"),
		Acknowledger: ack,
	})
	if err != nil {
		return err
	}
	printWarnings(cmd.OutOrStdout(), result.Warnings)
	fmt.Fprintf(cmd.OutOrStdout(), "refreshed: %d variables\n", len(result.Snapshot.Variables))
	return nil
}
