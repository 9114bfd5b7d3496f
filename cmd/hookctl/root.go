package hookctl

import (
	"fmt"
	"io"

	"github.com/arthur-debert/hooks/internal/version"
	"github.com/arthur-debert/hooks/pkg/config"
	"github.com/arthur-debert/hooks/pkg/logging"
	"github.com/arthur-debert/hooks/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	// Plugins register their hooks from init()
	_ "github.com/arthur-debert/hooks/pkg/plugins/formal"
	_ "github.com/arthur-debert/hooks/pkg/plugins/shout"
	_ "github.com/arthur-debert/hooks/pkg/plugins/strict"
)

// app holds what PersistentPreRunE prepares for the subcommands.
// errRenderer reports a failed command on stderr in the chosen format.
type app struct {
	cfg         *config.Config
	renderer    ui.Renderer
	errRenderer ui.Renderer
}

// Execute runs hookctl with args and returns the process exit code.
// A failure is rendered in the selected output format once the command got
// far enough to build a renderer, and as a styled line otherwise.
func Execute(args []string, stdout, stderr io.Writer) int {
	var state app
	rootCmd := newRootCmd(&state)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	if err == nil {
		return 0
	}
	if state.errRenderer == nil || state.errRenderer.RenderError(err) != nil {
		styles := ui.NewStyles(stderr, ui.UseColor(ui.ColorAuto, stderr))
		fmt.Fprintln(stderr, styles.Error.Render(fmt.Sprintf("Error: %v", err)))
	}
	return 1
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(&app{})
}

func newRootCmd(state *app) *cobra.Command {
	var (
		verbosity int
		cfgFile   string
		format    string
	)

	rootCmd := &cobra.Command{
		Use:     "hookctl",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}

			// -v flags win over the configured level
			if verbosity > 0 {
				logging.SetupLogger(verbosity)
			} else if err := logging.SetupLoggerWithLevel(cfg.Logging.Level); err != nil {
				return err
			}
			log.Debug().Str("command", cmd.Name()).Msg("Command started")

			if cmd.Flags().Changed("format") {
				cfg.Output.Format = format
			}
			f, err := ui.ParseFormat(cfg.Output.Format)
			if err != nil {
				return err
			}
			color, err := ui.ParseColorMode(cfg.Output.Color)
			if err != nil {
				return err
			}
			opts := ui.Options{
				Format: f,
				Color:  color,
				Width:  cfg.Output.Width,
			}
			// stdout is built last so its color choice sticks for pterm
			errRenderer, err := ui.NewRenderer(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			renderer, err := ui.NewRenderer(opts, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			state.cfg = cfg
			state.renderer = renderer
			state.errRenderer = errRenderer
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// If we get here, no subcommand was provided
			_ = cmd.Help()
			return fmt.Errorf(MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVarP(&format, "format", "f", "", MsgFlagFormat)
	_ = rootCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		names := make([]string, len(ui.Formats))
		for i, f := range ui.Formats {
			names[i] = string(f)
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})

	// Add all commands
	rootCmd.AddCommand(newListCmd(state))
	rootCmd.AddCommand(newDescribeCmd(state))
	rootCmd.AddCommand(newInvokeCmd(state))
	rootCmd.AddCommand(newGreetCmd(state))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}
