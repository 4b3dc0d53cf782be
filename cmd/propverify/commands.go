package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/nomagicln/propverify/pkg/casestore"
	"github.com/nomagicln/propverify/pkg/completion"
	"github.com/nomagicln/propverify/pkg/config"
	"github.com/nomagicln/propverify/pkg/replay"
	"github.com/nomagicln/propverify/pkg/testcase"
)

// ReplayMismatchError is returned when a replayed case does not end the way
// it was recorded.
type ReplayMismatchError struct {
	ID       string
	Recorded testcase.Outcome
	Replayed testcase.Outcome
}

func (e *ReplayMismatchError) Error() string {
	return fmt.Sprintf("case %s was recorded as %s but replayed as %s", e.ID, e.Recorded, e.Replayed)
}

func replayed(res *replay.Result, err error) error {
	if err != nil {
		return err
	}
	if !res.Matches {
		return &ReplayMismatchError{ID: res.Case.ID, Recorded: res.Case.Outcome, Replayed: res.Outcome}
	}
	return nil
}

// newCasesCmd creates the cases subcommand
func (a *app) newCasesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cases",
		Short: "Manage recorded cases",
		Long: `Inspect, export, import and delete the cases recorded for failing paths.

Example:
  propverify cases list --property vec_sorted
  propverify cases show 3f2a9c1e
  propverify cases export 3f2a9c1e -f failing.yaml`,
	}

	cmd.AddCommand(
		a.newCasesListCmd(),
		a.newCasesShowCmd(),
		a.newCasesExportCmd(),
		a.newCasesImportCmd(),
		a.newCasesDeleteCmd(),
	)
	return cmd
}

func (a *app) newCasesListCmd() *cobra.Command {
	var (
		property string
		outcome  string
		limit    int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded cases, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(); err != nil {
				return err
			}
			filter := casestore.Filter{Property: property, Outcome: testcase.Outcome(outcome), Limit: limit}
			return a.handler.ListCases(cmd.Context(), filter, a.output)
		},
	}

	cmd.Flags().StringVar(&property, "property", "", "Only cases of this property")
	cmd.Flags().StringVar(&outcome, "outcome", "", "Only cases with this outcome: failed, passed, pruned")
	cmd.Flags().IntVar(&limit, "limit", 0, "Show at most this many cases")
	_ = cmd.RegisterFlagCompletionFunc("property", a.completeRecordedProperties)
	_ = cmd.RegisterFlagCompletionFunc("outcome", completeFlag("outcome"))
	return cmd
}

func (a *app) newCasesShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "show <case-id>",
		Short:             "Show a recorded case and its symbolic bytes",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: a.completeCaseIDs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(); err != nil {
				return err
			}
			return a.handler.ShowCase(cmd.Context(), args[0], a.output)
		},
	}
}

func (a *app) newCasesExportCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:               "export <case-id>",
		Short:             "Export a recorded case as YAML",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: a.completeCaseIDs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(); err != nil {
				return err
			}
			if file == "" {
				return a.handler.ExportCase(cmd.Context(), args[0], a.stdout)
			}

			f, err := os.Create(file)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", file, err)
			}
			if err := a.handler.ExportCase(cmd.Context(), args[0], f); err != nil {
				_ = f.Close()
				return err
			}
			return f.Close()
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Write to this file instead of stdout")
	return cmd
}

func (a *app) newCasesImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import an exported case into the store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(); err != nil {
				return err
			}
			c, err := a.handler.ImportCase(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(a.stdout, "Imported case %s of property '%s'\n", c.ID, c.Property)
			return nil
		},
	}
}

func (a *app) newCasesDeleteCmd() *cobra.Command {
	var property string

	cmd := &cobra.Command{
		Use:               "delete [case-id...]",
		Short:             "Delete recorded cases",
		ValidArgsFunction: a.completeCaseIDs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if property == "" && len(args) == 0 {
				return errors.New("give case ids or --property")
			}
			if err := a.setup(); err != nil {
				return err
			}

			for _, id := range args {
				if err := a.handler.DeleteCase(cmd.Context(), id); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(a.stdout, "Deleted case %s\n", id)
			}
			if property != "" {
				n, err := a.handler.DeleteProperty(cmd.Context(), property)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(a.stdout, "Deleted %d case(s) of property '%s'\n", n, property)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&property, "property", "", "Delete every case of this property")
	_ = cmd.RegisterFlagCompletionFunc("property", a.completeRecordedProperties)
	return cmd
}

// newConfigCmd creates the config subcommand
func (a *app) newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or create the configuration file",
	}

	path := &cobra.Command{
		Use:   "path",
		Short: "Print the configuration and store paths",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(a.stdout, "config: %s\n", a.mgr.ConfigPath())
			_, _ = fmt.Fprintf(a.stdout, "store:  %s\n", a.mgr.StorePath(a.cfg))
			return nil
		},
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(); err != nil {
				return err
			}
			data, err := yaml.Marshal(a.cfg)
			if err != nil {
				return fmt.Errorf("failed to format configuration: %w", err)
			}
			_, err = a.stdout.Write(data)
			return err
		},
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a configuration file with the default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []config.ManagerOption
			if a.configDir != "" {
				opts = append(opts, config.WithConfigDir(a.configDir))
			}
			mgr, err := config.NewManager(opts...)
			if err != nil {
				return err
			}
			if _, err := os.Stat(mgr.ConfigPath()); err == nil && !force {
				return fmt.Errorf("%s already exists, use --force to overwrite it", mgr.ConfigPath())
			}
			if err := mgr.Save(config.Default()); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(a.stdout, "Wrote %s\n", mgr.ConfigPath())
			return nil
		},
	}
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing configuration file")

	cmd.AddCommand(path, show, initCmd)
	return cmd
}

// yamlFiles completes property files and directories.
func yamlFiles(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return []string{"yaml", "yml"}, cobra.ShellCompDirectiveFilterFileExt
}

// completeNames completes property names declared in the paths given so far.
func (a *app) completeNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if err := a.setup(); err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	paths := args
	if len(paths) == 0 {
		paths = a.cfg.Properties
	}
	return a.completer.CompletePropertyNames(paths, toComplete), cobra.ShellCompDirectiveNoFileComp
}

// completeCaseIDs completes the first argument with recorded case ids and
// later ones with property files.
func (a *app) completeCaseIDs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if cmd.Name() == "replay" && len(args) > 0 {
		return yamlFiles(cmd, args, toComplete)
	}
	if err := a.setup(); err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return a.completer.CompleteCaseIDs(cmd.Context(), toComplete), cobra.ShellCompDirectiveNoFileComp
}

func (a *app) completeRecordedProperties(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if err := a.setup(); err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return a.completer.CompleteRecordedProperties(cmd.Context(), toComplete), cobra.ShellCompDirectiveNoFileComp
}

func completeFlag(flag string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return completion.NewProvider(nil).CompleteFlagValues(flag, toComplete), cobra.ShellCompDirectiveNoFileComp
	}
}
