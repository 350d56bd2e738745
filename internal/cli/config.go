package cli

import (
	"strconv"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"vspcatalog/internal/adapters"
	"vspcatalog/internal/policies"
	"vspcatalog/internal/ports"
	"vspcatalog/internal/types"
)

func resolveString(cmd *cobra.Command, value string, key string, flagName string) string {
	if cmd == nil {
		if value != "" {
			return value
		}
		return viper.GetString(key)
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	return value
}

func resolveBool(cmd *cobra.Command, value bool, key string, flagName string) bool {
	if cmd == nil {
		return value
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	if viper.IsSet(key) {
		return viper.GetBool(key)
	}
	return value
}

func resolveInt(cmd *cobra.Command, value int, key string, flagName string) int {
	if cmd == nil {
		return value
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	if viper.IsSet(key) {
		return viper.GetInt(key)
	}
	return value
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil || strings.TrimSpace(name) == "" {
		return false
	}
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag.Changed
	}
	if flag := cmd.PersistentFlags().Lookup(name); flag != nil {
		return flag.Changed
	}
	return false
}

type settingsOptions struct {
	FlatNames    bool
	AddID        bool
	GroupOutputs bool
	Epsilon      string
	SetID        int
	NApplyDes    int
}

func addSettingsFlags(cmd *cobra.Command, opts *settingsOptions) {
	cmd.Flags().BoolVar(&opts.FlatNames, "flat-names", false, "Join display names with underscores")
	cmd.Flags().BoolVar(&opts.AddID, "add-id", false, "Suffix display names with the geometry id")
	cmd.Flags().BoolVar(&opts.GroupOutputs, "group-outputs", false, "Prefix display names with Input/Output")
	cmd.Flags().StringVar(&opts.Epsilon, "epsilon", "", "Tolerance for verifying applied inputs")
	cmd.Flags().IntVar(&opts.SetID, "set-id", 1, "Geometry set written by export scripts")
	cmd.Flags().IntVar(&opts.NApplyDes, "n-apply-des", 1, "Times the design file is applied")
}

func resolveSettings(cmd *cobra.Command, opts settingsOptions) (types.Settings, error) {
	settings := types.DefaultSettings()
	settings.Naming = types.NamingOptions{
		FlatNames:    resolveBool(cmd, opts.FlatNames, "flat_names", "flat-names"),
		AddID:        resolveBool(cmd, opts.AddID, "add_id", "add-id"),
		GroupOutputs: resolveBool(cmd, opts.GroupOutputs, "group_outputs", "group-outputs"),
	}
	settings.SetID = resolveInt(cmd, opts.SetID, "set_id", "set-id")
	settings.NApplyDes = resolveInt(cmd, opts.NApplyDes, "n_apply_des", "n-apply-des")
	if settings.NApplyDes < 1 {
		return settings, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("n-apply-des must be at least 1")
	}
	if raw := strings.TrimSpace(resolveString(cmd, opts.Epsilon, "epsilon", "epsilon")); raw != "" {
		eps, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return settings, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("invalid epsilon: " + raw).
				WithCause(err)
		}
		settings.Epsilon = &eps
	}
	return settings, nil
}

func addPromptFlag(cmd *cobra.Command, prompt *string) {
	cmd.Flags().StringVar(prompt, "prompt", "reject", "How questions are answered: interactive, accept or reject")
}

func resolveAcknowledger(cmd *cobra.Command, prompt string) (ports.AcknowledgerPort, error) {
	mode, err := policies.ParsePromptMode(resolveString(cmd, prompt, "prompt", "prompt"))
	if err != nil {
		return nil, err
	}
	return adapters.NewAcknowledger(mode, cmd.InOrStdin(), cmd.ErrOrStderr()), nil
}
