package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"vspcatalog/internal/app"
)

type exportOptions struct {
	State      string
	Format     string
	Output     string
	ApplyOrder bool
	WorkDir    string
}

func newExportCommand() *cobra.Command {
	opts := exportOptions{}
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a state file as a design, XDDM, state or script file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExport(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.State, "state", "", "State file to export")
	cmd.Flags().StringVar(&opts.Format, "format", string(app.ExportDes), "Output format: des, xddm, state or script")
	cmd.Flags().StringVar(&opts.Output, "out", "", "Output file path")
	cmd.Flags().BoolVar(&opts.ApplyOrder, "apply-order", true, "Sort design variables in application order")
	cmd.Flags().StringVar(&opts.WorkDir, "work-dir", "", "Directory scripts write their files to (defaults to the output directory)")
	return cmd
}

func runExport(ctx context.Context, cmd *cobra.Command, opts exportOptions) error {
	service := newAppService()
	result, err := service.Export(ctx, app.ExportRequest{
		StatePath:  resolveString(cmd, opts.State, "state", "state"),
		Format:     app.ExportFormat(opts.Format),
		OutputPath: resolveString(cmd, opts.Output, "output", "out"),
		ApplyOrder: resolveBool(cmd, opts.ApplyOrder, "apply_order", "apply-order"),
		WorkDir:    opts.WorkDir,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "exported: %s\n", result.OutputPath)
	return nil
}
