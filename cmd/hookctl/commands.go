package hookctl

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/hooks/internal/inventory"
	"github.com/arthur-debert/hooks/internal/version"
	"github.com/arthur-debert/hooks/pkg/errors"
	"github.com/arthur-debert/hooks/pkg/greeting"
	"github.com/arthur-debert/hooks/pkg/hook"
	"github.com/arthur-debert/hooks/pkg/logging"
	"github.com/arthur-debert/hooks/pkg/shape"
	"github.com/arthur-debert/hooks/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newListCmd(state *app) *cobra.Command {
	var ids bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: MsgListShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			listing := inventory.Collect(hook.Global(), inventory.Options{IncludeIDs: ids})
			return state.renderer.RenderListing(listing)
		},
	}
	cmd.Flags().BoolVar(&ids, "ids", false, MsgFlagIDs)
	return cmd
}

func newDescribeCmd(state *app) *cobra.Command {
	var ids bool

	cmd := &cobra.Command{
		Use:   "describe <name>",
		Short: MsgDescribeShort,
		Args:  cobra.ExactArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			var names []string
			for _, h := range inventory.Collect(hook.Global(), inventory.Options{}).Hooks {
				if strings.HasPrefix(h.Name, toComplete) {
					names = append(names, h.Name)
				}
			}
			return names, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			found := inventory.Find(hook.Global(), args[0], inventory.Options{IncludeIDs: ids})
			if len(found) == 0 {
				return errors.Newf(errors.ErrHookNotFound, "no hook named %s", args[0]).
					WithDetail("name", args[0]).
					WithDetail("reason", errors.ReasonUnknownName)
			}
			return state.renderer.RenderHooks(found)
		},
	}
	cmd.Flags().BoolVar(&ids, "ids", false, MsgFlagIDs)
	return cmd
}

func newInvokeCmd(state *app) *cobra.Command {
	var try bool

	cmd := &cobra.Command{
		Use:   "invoke <name> <argument>",
		Short: MsgInvokeShort,
		Long:  MsgInvokeLong,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, arg := args[0], args[1]
			logger := logging.GetLogger("cmd.invoke")
			logger.Info().Str("hook", name).Bool("try", try).Msg("Invoking hook")

			var (
				results []string
				sig     shape.Signature
				err     error
			)
			if try {
				sig = shape.OfTry[string, string]()
				results, err = hook.TryInvokeAll[string](name, arg)
			} else {
				sig = shape.Of[string, string]()
				results, err = hook.InvokeAll[string](name, arg)
			}
			if err != nil {
				return err
			}

			return state.renderer.RenderInvocation(ui.Invocation{
				Hook:      name,
				Signature: sig.String(),
				Results:   results,
			})
		},
	}
	cmd.Flags().BoolVar(&try, "try", false, MsgFlagTry)
	return cmd
}

func newGreetCmd(state *app) *cobra.Command {
	return &cobra.Command{
		Use:   "greet [name]",
		Short: MsgGreetShort,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := state.cfg.Greeting.Name
			if len(args) == 1 {
				name = args[0]
			}

			transcript, err := greeting.Greet(name)
			if err != nil {
				return err
			}
			return state.renderer.RenderMessage(strings.Join(transcript.Lines(), "\n"))
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Args:  cobra.NoArgs,
		// version must work with a broken config
		PersistentPreRun: func(cmd *cobra.Command, args []string) {},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "hookctl version %s\n", version.Version)
			fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n", version.Commit)
			fmt.Fprintf(cmd.OutOrStdout(), "  built:  %s\n", version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: MsgCompletionShort,
		Long: `To load completions:

Bash:
  $ source <(hookctl completion bash)

Zsh:
  $ hookctl completion zsh > "${fpath[1]}/_hookctl"

Fish:
  $ hookctl completion fish | source

PowerShell:
  PS> hookctl completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		PersistentPreRun:      func(cmd *cobra.Command, args []string) {},
		Run: func(cmd *cobra.Command, args []string) {
			var err error
			switch args[0] {
			case "bash":
				err = cmd.Root().GenBashCompletion(cmd.OutOrStdout())
			case "zsh":
				err = cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				err = cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			case "powershell":
				err = cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
			if err != nil {
				log.Error().Err(err).Str("shell", args[0]).Msg("Failed to generate completion")
			}
		},
	}
}
