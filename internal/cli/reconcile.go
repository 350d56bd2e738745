package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"vspcatalog/internal/app"
	"vspcatalog/internal/types"
)

type reconcileOptions struct {
	Geometry string
	CompGeom string
	State    string
	Output   string
	AddID    bool
	Prompt   string
}

func newReconcileCommand() *cobra.Command {
	opts := reconcileOptions{}
	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Restore a state file onto a reloaded geometry",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReconcile(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Geometry, "geometry", "", "Geometry file path (defaults to the one recorded in the state)")
	cmd.Flags().StringVar(&opts.CompGeom, "compgeom", "", "Aggregate geometry results used to fill CompGeom containers")
	cmd.Flags().StringVar(&opts.State, "state", "", "State file to restore")
	cmd.Flags().StringVar(&opts.Output, "out", "", "Write the reconciled state here")
	cmd.Flags().BoolVar(&opts.AddID, "add-id", false, "Suffix display names with the geometry id")
	addPromptFlag(cmd, &opts.Prompt)
	return cmd
}

func runReconcile(ctx context.Context, cmd *cobra.Command, opts reconcileOptions) error {
	ack, err := resolveAcknowledger(cmd, opts.Prompt)
	if err != nil {
		return err
	}
	service := newAppService()
	result, err := service.Reconcile(ctx, app.ReconcileRequest{
		GeometryPath: resolveString(cmd, opts.Geometry, "geometry", "geometry"),
		CompGeomPath: resolveString(cmd, opts.CompGeom, "compgeom", "compgeom"),
		StatePath:    resolveString(cmd, opts.State, "state", "state"),
		OutputPath:   resolveString(cmd, opts.Output, "output", "out"),
		AddID:        resolveBool(cmd, opts.AddID, "add_id", "add-id"),
		Acknowledger: ack,
	})
	if err != nil {
		return err
	}
	printReport(cmd.OutOrStdout(), result.Result.Report)
	return nil
}

func printReport(w io.Writer, report types.ReconcileReport) {
	fmt.Fprintf(w, "matched: %d\n", report.Matched)
	for _, sub := range report.Substitutions {
		verdict := "rejected"
		if sub.Accepted {
			verdict = "accepted"
		}
		fmt.Fprintf(w, "substitution %s: %s -> %s\n", verdict, sub.Missing, sub.Candidate)
	}
	printWarnings(w, report.Warnings)
	for _, name := range report.Unselected {
		fmt.Fprintf(w, "unselected: %s\n", name)
	}
}

func printWarnings(w io.Writer, warnings []types.Warning) {
	for _, warning := range warnings {
		fmt.Fprintf(w, "warning: %s\n", warning)
	}
}
