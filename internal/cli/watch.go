package cli

import (
	"context"

	"github.com/spf13/cobra"

	"vspcatalog/internal/app"
)

type watchOptions struct {
	Geometry string
	CompGeom string
	State    string
	AddID    bool
	Prompt   string
}

func newWatchCommand() *cobra.Command {
	opts := watchOptions{}
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Keep a state file reconciled while its geometry file changes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWatch(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Geometry, "geometry", "", "Geometry file path (defaults to the one recorded in the state)")
	cmd.Flags().StringVar(&opts.CompGeom, "compgeom", "", "Aggregate geometry results read on every reload")
	cmd.Flags().StringVar(&opts.State, "state", "", "State file to keep in step")
	cmd.Flags().BoolVar(&opts.AddID, "add-id", false, "Suffix display names with the geometry id")
	addPromptFlag(cmd, &opts.Prompt)
	return cmd
}

func runWatch(ctx context.Context, cmd *cobra.Command, opts watchOptions) error {
	ack, err := resolveAcknowledger(cmd, opts.Prompt)
	if err != nil {
		return err
	}
	service := newAppService()
	return service.Watch(ctx, app.WatchRequest{
		GeometryPath: resolveString(cmd, opts.Geometry, "geometry", "geometry"),
		CompGeomPath: resolveString(cmd, opts.CompGeom, "compgeom", "compgeom"),
		StatePath:    resolveString(cmd, opts.State, "state", "state"),
		AddID:        resolveBool(cmd, opts.AddID, "add_id", "add-id"),
		Acknowledger: ack,
	})
}
