// Package cli wires the cobra command surface: flag handling, config
// resolution and the handoff to the interactive shell.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/traceyt-cree8/gitterm-sub000/config"
	"github.com/traceyt-cree8/gitterm-sub000/git"
	"github.com/traceyt-cree8/gitterm-sub000/logging"
	"github.com/traceyt-cree8/gitterm-sub000/tui"
	"github.com/traceyt-cree8/gitterm-sub000/util/pathutil"
	"github.com/traceyt-cree8/gitterm-sub000/version"
)

// NewRootCommand builds the `gitview [path]` command.
func NewRootCommand() *cobra.Command {
	var (
		showHidden bool
		light      bool
		pollSecs   int
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "gitview [path]",
		Short: "Inspect a repository's working tree, index and diffs",
		Long: `gitview opens an interactive view of a git repository: staged,
unstaged and untracked files, per-file diffs with word-level change
emphasis, and syntax-highlighted file previews.

The repository is found by walking upward from the given path (default:
the current directory). Settings load from the nearest ` + config.ConfigFileName + `.

Examples:
  # open the repository containing the current directory
  gitview

  # open a specific repository with hidden files listed
  gitview ~/src/project --show-hidden

  # light terminal, faster polling
  gitview --light --poll 1`,
		Args:          cobra.MaximumNArgs(1),
		Version:       version.GetInfo().Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			start := "."
			if len(args) == 1 {
				start = args[0]
			}
			start, err := pathutil.Expand(start)
			if err != nil {
				return err
			}

			cfg, err := loadConfig(configPath, start)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("show-hidden") {
				cfg.ShowHidden = showHidden
			}
			if light {
				cfg.Theme = "light"
			}
			if cmd.Flags().Changed("poll") {
				cfg.PollIntervalSeconds = pollSecs
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logging.Configure(cfg.Logging)

			root, err := git.Discover(start)
			if err != nil {
				return err
			}
			return tui.Run(cfg, root)
		},
	}

	cmd.Flags().BoolVar(&showHidden, "show-hidden", false, "list dot-entries in the file tree")
	cmd.Flags().BoolVar(&light, "light", false, "use the light theme")
	cmd.Flags().IntVar(&pollSecs, "poll", 0, "status poll interval in seconds")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a "+config.ConfigFileName+" file")

	cmd.AddCommand(newVersionCommand())
	SetStyledHelp(cmd)
	return cmd
}

// loadConfig resolves the configuration: an explicit --config path wins,
// otherwise the nearest config file above startDir, otherwise defaults.
func loadConfig(configPath, startDir string) (*config.Config, error) {
	if configPath != "" {
		expanded, err := pathutil.Expand(configPath)
		if err != nil {
			return nil, err
		}
		return config.Load(expanded)
	}
	return config.LoadFrom(startDir)
}

// Execute runs the root command, printing coded errors in their friendly
// form before exiting non-zero.
func Execute() {
	cmd := NewRootCommand()
	if err := cmd.Execute(); err != nil {
		NewErrorHandler(os.Getenv("GITVIEW_DEBUG") != "").Handle(err)
		os.Exit(1)
	}
}
