package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"vspcatalog/internal/app"
)

type selectOptions struct {
	Geometry  string
	CompGeom  string
	Selection string
	State     string
	Settings  settingsOptions
}

func newSelectCommand() *cobra.Command {
	opts := selectOptions{}
	cmd := &cobra.Command{
		Use:   "select",
		Short: "Build a state file from a selection manifest",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSelect(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Geometry, "geometry", "", "Geometry file path")
	cmd.Flags().StringVar(&opts.CompGeom, "compgeom", "", "Aggregate geometry results used to fill CompGeom containers")
	cmd.Flags().StringVar(&opts.Selection, "selection", "", "Selection manifest (yaml)")
	cmd.Flags().StringVar(&opts.State, "state", "", "State file to write")
	addSettingsFlags(cmd, &opts.Settings)
	return cmd
}

func runSelect(ctx context.Context, cmd *cobra.Command, opts selectOptions) error {
	settings, err := resolveSettings(cmd, opts.Settings)
	if err != nil {
		return err
	}
	service := newAppService()
	result, err := service.Select(ctx, app.SelectRequest{
		GeometryPath:  resolveString(cmd, opts.Geometry, "geometry", "geometry"),
		CompGeomPath:  resolveString(cmd, opts.CompGeom, "compgeom", "compgeom"),
		SelectionPath: resolveString(cmd, opts.Selection, "selection", "selection"),
		StatePath:     resolveString(cmd, opts.State, "state", "state"),
		Settings:      settings,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "selected: %d variables\n", len(result.Snapshot.Variables))
	return nil
}
