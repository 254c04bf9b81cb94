package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/repotidy/config"
	clierrors "github.com/randalmurphal/repotidy/errors"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change settings",
	}
	cmd.AddCommand(newConfigListCmd(a), newConfigSetCmd(a), newConfigUnsetCmd(a))
	return cmd
}

func newConfigListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every setting with the layer it came from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resolver := config.NewResolver(a.configPath).WithErrWriter(a.errOut)
			resolved := resolver.ResolveWithFlags(a.flagOverrides(cmd.Flags()))

			w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
			for _, key := range config.Keys {
				value, source := resolved.GetWithSource(key)
				fmt.Fprintf(w, "%s\t%s\t(%s)\n", key, value, source)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			if _, err := config.FromResolved(resolved); err != nil {
				return clierrors.WrapConfigError(err, a.configPath)
			}
			return nil
		},
	}
}

func newConfigSetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Persist a setting to the global config file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]
			if err := config.SaveGlobal(a.configPath, key, value); err != nil {
				return err
			}

			// Warn about values that would make every later run fail.
			resolved := config.NewResolver(a.configPath).WithErrWriter(nil).Resolve()
			if _, err := config.FromResolved(resolved); err != nil {
				fmt.Fprintf(a.errOut, "Warning: %v\n", clierrors.WrapConfigError(err, a.configPath))
			}

			fmt.Fprintf(a.out, "Set %s = %s in %s\n", key, value, a.configPath)
			return nil
		},
	}
}

func newConfigUnsetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "unset <key>",
		Short: "Remove a setting from the global config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !config.ValidKey(args[0]) {
				return fmt.Errorf("unknown config key: %s", args[0])
			}
			if err := config.DeleteGlobalKey(a.configPath, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Removed %s from %s\n", args[0], a.configPath)
			return nil
		},
	}
}
