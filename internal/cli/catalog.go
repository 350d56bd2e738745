package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"vspcatalog/internal/app"
	"vspcatalog/internal/types"
)

type catalogOptions struct {
	Geometry     string
	CompGeom     string
	Workbook     string
	FlatNames    bool
	AddID        bool
	GroupOutputs bool
}

func newCatalogCommand() *cobra.Command {
	opts := catalogOptions{}
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the design variables of a geometry file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCatalog(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Geometry, "geometry", "", "Geometry file path")
	cmd.Flags().StringVar(&opts.CompGeom, "compgeom", "", "Aggregate geometry results used to fill CompGeom containers")
	cmd.Flags().StringVar(&opts.Workbook, "xlsx", "", "Write the catalog to an xlsx workbook")
	cmd.Flags().BoolVar(&opts.FlatNames, "flat-names", false, "Join display names with underscores")
	cmd.Flags().BoolVar(&opts.AddID, "add-id", false, "Suffix display names with the geometry id")
	cmd.Flags().BoolVar(&opts.GroupOutputs, "group-outputs", false, "Prefix display names with Input/Output")
	return cmd
}

func runCatalog(ctx context.Context, cmd *cobra.Command, opts catalogOptions) error {
	naming := types.NamingOptions{
		FlatNames:    resolveBool(cmd, opts.FlatNames, "flat_names", "flat-names"),
		AddID:        resolveBool(cmd, opts.AddID, "add_id", "add-id"),
		GroupOutputs: resolveBool(cmd, opts.GroupOutputs, "group_outputs", "group-outputs"),
	}
	service := newAppService()
	result, err := service.Catalog(ctx, app.CatalogRequest{
		GeometryPath: resolveString(cmd, opts.Geometry, "geometry", "geometry"),
		AddID:        naming.AddID,
		CompGeomPath: opts.CompGeom,
		WorkbookPath: opts.Workbook,
	})
	if err != nil {
		return err
	}
	printCatalog(cmd.OutOrStdout(), result.Catalog, naming)
	return nil
}

func printCatalog(w io.Writer, catalog types.Catalog, naming types.NamingOptions) {
	for _, container := range catalog.Containers {
		fmt.Fprintln(w, container.Name)
		for _, group := range container.Groups {
			fmt.Fprintf(w, "  %s\n", group.Name)
			for _, v := range catalog.GroupVariables(group) {
				fmt.Fprintf(w, "    %s = %s [%s]\n", v.DisplayName(naming), v.Value, v.Classification())
			}
		}
	}
}
