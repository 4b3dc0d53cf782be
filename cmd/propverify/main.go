// Package main is the entry point for the propverify CLI.
// propverify explores declared properties over every input their strategies
// can generate, records the inputs of failing paths and replays them.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/nomagicln/propverify/pkg/casestore"
	"github.com/nomagicln/propverify/pkg/cli"
	"github.com/nomagicln/propverify/pkg/completion"
	"github.com/nomagicln/propverify/pkg/config"
)

// Build information, set via ldflags
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := Execute(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// Execute runs the root command with args and prints a formatted error.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	a := &app{stdout: stdout, stderr: stderr}
	defer a.close()

	root := a.rootCmd()
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, cli.NewErrorFormatter().FormatError(err))
	}
	return err
}

// app holds the dependencies shared by the commands. They are created on
// first use so that completion works without a full setup.
type app struct {
	stdout, stderr io.Writer

	configDir string
	storePath string
	logLevel  string
	output    string
	noColor   bool
	noStore   bool

	ready     bool
	mgr       *config.Manager
	cfg       *config.Config
	store     *casestore.Store
	logger    zerolog.Logger
	handler   *cli.Handler
	completer *completion.Provider
}

func (a *app) setup() error {
	if a.ready {
		return nil
	}

	var opts []config.ManagerOption
	if a.configDir != "" {
		opts = append(opts, config.WithConfigDir(a.configDir))
	}
	mgr, err := config.NewManager(opts...)
	if err != nil {
		return fmt.Errorf("failed to initialize config manager: %w", err)
	}
	cfg, err := mgr.Load()
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	level, err := cfg.LogLevel()
	if err != nil {
		return err
	}

	color := !a.noColor && os.Getenv("NO_COLOR") == "" && isTerminal(a.stdout)
	a.logger = zerolog.New(zerolog.ConsoleWriter{Out: a.stderr, NoColor: !color}).
		Level(level).With().Timestamp().Logger()

	if a.storePath != "" {
		cfg.Store.Path = a.storePath
	}
	if a.noStore {
		cfg.Store.Disabled = true
	}
	if !cfg.Store.Disabled {
		path := mgr.StorePath(cfg)
		store, err := casestore.Open(path)
		if err != nil {
			return err
		}
		a.store = store
		a.logger.Debug().Str("path", path).Msg("opened case store")
	}

	handlerOpts := []cli.HandlerOption{cli.WithOutput(a.stdout), cli.WithLogger(a.logger), cli.WithColor(color)}
	if a.store != nil {
		handlerOpts = append(handlerOpts, cli.WithStore(a.store))
	}
	a.mgr, a.cfg = mgr, cfg
	a.handler = cli.NewHandler(cfg, handlerOpts...)
	a.completer = completion.NewProvider(a.store)
	a.ready = true
	return nil
}

func (a *app) close() {
	if a.store != nil {
		_ = a.store.Close()
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// paths returns the property paths given on the command line, or the
// configured ones when none are given.
func (a *app) paths(args []string) ([]string, error) {
	if len(args) == 0 {
		args = a.cfg.Properties
	}
	if len(args) == 0 {
		return nil, errors.New("no property files given: pass paths or set properties in the configuration file")
	}
	return config.ResolvePaths(args)
}

func (a *app) rootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "propverify",
		Short: "propverify - exhaustive property exploration",
		Long: `propverify runs properties declared in YAML files. Each property binds
values drawn from strategies and asserts predicates over them. Every input the
strategies can produce is explored, and the inputs of failing paths are recorded
so they can be replayed.`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.CompletionOptions.DisableDefaultCmd = true

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configDir, "config-dir", "", "Configuration directory (default: platform config dir)")
	flags.StringVar(&a.storePath, "store", "", "Path of the case store database")
	flags.BoolVar(&a.noStore, "no-store", false, "Do not record or read cases")
	flags.StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	flags.StringVarP(&a.output, "output", "o", "table", "Output format: table, json, yaml")
	flags.BoolVar(&a.noColor, "no-color", false, "Disable colored output")
	_ = rootCmd.RegisterFlagCompletionFunc("output", completeFlag("output"))
	_ = rootCmd.RegisterFlagCompletionFunc("log-level", completeFlag("log-level"))

	rootCmd.AddCommand(
		a.newRunCmd(),
		a.newListCmd(),
		a.newReplayCmd(),
		a.newCasesCmd(),
		a.newConfigCmd(),
		a.newVersionCmd(),
		newCompletionCmd(),
	)
	return rootCmd
}

// newRunCmd creates the run subcommand
func (a *app) newRunCmd() *cobra.Command {
	var (
		names    []string
		watch    bool
		jobs     int
		maxRuns  int
		maxDepth int
		window   int
		timeout  time.Duration
		keepOn   bool
	)

	cmd := &cobra.Command{
		Use:   "run [paths...]",
		Short: "Explore declared properties",
		Long: `Explore the properties declared in the given files and directories.
Without paths, the properties listed in the configuration file are used.

Example:
  propverify run ./props
  propverify run props.yaml --name vec_sorted --max-runs 10000
  propverify run ./props --watch`,
		ValidArgsFunction: yamlFiles,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(); err != nil {
				return err
			}
			paths, err := a.paths(args)
			if err != nil {
				return err
			}

			e := &a.cfg.Explore
			changed := cmd.Flags().Changed
			if changed("jobs") {
				e.Jobs = jobs
			}
			if changed("max-runs") {
				e.MaxRuns = maxRuns
			}
			if changed("max-depth") {
				e.MaxDepth = maxDepth
			}
			if changed("window") {
				e.Window = window
			}
			if changed("keep-going") {
				e.StopOnFailure = !keepOn
			}
			if changed("timeout") {
				e.Timeout = config.Duration{Duration: timeout}
			}
			if err := config.Validate(a.cfg); err != nil {
				return err
			}

			if watch {
				return a.handler.Watch(cmd.Context(), paths, names)
			}
			_, err = a.handler.Run(cmd.Context(), paths, names)
			return err
		},
	}

	cmd.Flags().StringSliceVarP(&names, "name", "n", nil, "Only run the named properties")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Run again whenever a property file changes")
	cmd.Flags().IntVarP(&jobs, "jobs", "j", 0, "Properties explored at once")
	cmd.Flags().IntVar(&maxRuns, "max-runs", 0, "Paths executed per property (0: no bound)")
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "Symbolic regions per path")
	cmd.Flags().IntVar(&window, "window", 0, "Small values tried for multi-byte regions")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Time budget per property, e.g. 30s")
	cmd.Flags().BoolVar(&keepOn, "keep-going", false, "Keep exploring after the first failure")
	_ = cmd.RegisterFlagCompletionFunc("name", a.completeNames)

	return cmd
}

// newListCmd creates the list subcommand
func (a *app) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [paths...]",
		Short: "List declared properties",
		Long: `List the properties declared in the given files and directories.

Example:
  propverify list ./props
  propverify list props.yaml -o json`,
		ValidArgsFunction: yamlFiles,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(); err != nil {
				return err
			}
			paths, err := a.paths(args)
			if err != nil {
				return err
			}
			return a.handler.List(paths, a.output)
		},
	}
}

// newReplayCmd creates the replay subcommand
func (a *app) newReplayCmd() *cobra.Command {
	var caseFile string

	cmd := &cobra.Command{
		Use:   "replay <case-id> [paths...]",
		Short: "Replay a recorded case",
		Long: `Execute a property once on the inputs of a recorded case and print the
values it binds. The case is looked up in the store by id or unique id prefix,
or read from a file exported with 'propverify cases export'.

Example:
  propverify replay 3f2a9c1e ./props
  propverify replay --case failing.yaml ./props`,
		ValidArgsFunction: a.completeCaseIDs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if caseFile == "" && len(args) == 0 {
				return errors.New("a case id or --case is required")
			}
			if err := a.setup(); err != nil {
				return err
			}

			if caseFile != "" {
				c, err := cli.ReadCase(caseFile)
				if err != nil {
					return err
				}
				paths, err := a.paths(args)
				if err != nil {
					return err
				}
				return replayed(a.handler.ReplayCase(c, paths))
			}

			paths, err := a.paths(args[1:])
			if err != nil {
				return err
			}
			return replayed(a.handler.Replay(cmd.Context(), args[0], paths))
		},
	}

	cmd.Flags().StringVar(&caseFile, "case", "", "Replay the case exported to this file")
	return cmd
}

// newVersionCmd creates the version subcommand
func (a *app) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(a.stdout, "propverify %s\n", cmd.Root().Version)
		},
	}
}

// newCompletionCmd creates the completion subcommand
func newCompletionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish]",
		Short: "Generate shell completion script",
		Long: `Generate shell completion script for propverify.

Bash:
  source <(propverify completion bash)

Zsh:
  propverify completion zsh > "${fpath[1]}/_propverify"

Fish:
  propverify completion fish > ~/.config/fish/completions/propverify.fish`,
		ValidArgs:             []string{"bash", "zsh", "fish"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			}
			return nil
		},
	}

	return cmd
}
