package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"vspcatalog/internal/app"
)

type ingestOptions struct {
	State    string
	CompGeom string
	MassProp string
	Output   string
}

func newIngestCommand() *cobra.Command {
	opts := ingestOptions{}
	cmd := &cobra.Command{
		Use:   "ingest",
		Short: "Copy computed aggregate and mass-property results into a state file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runIngest(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.State, "state", "", "State file to update")
	cmd.Flags().StringVar(&opts.CompGeom, "compgeom", "", "Aggregate geometry results (csv)")
	cmd.Flags().StringVar(&opts.MassProp, "massprop", "", "Mass properties results (txt)")
	cmd.Flags().StringVar(&opts.Output, "out", "", "Write the updated state here")
	return cmd
}

func runIngest(ctx context.Context, cmd *cobra.Command, opts ingestOptions) error {
	service := newAppService()
	result, err := service.Ingest(ctx, app.IngestRequest{
		StatePath:    resolveString(cmd, opts.State, "state", "state"),
		CompGeomPath: opts.CompGeom,
		MassPropPath: opts.MassProp,
		OutputPath:   resolveString(cmd, opts.Output, "output", "out"),
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "ingested: %d variables\n", len(result.Snapshot.Variables))
	return nil
}
