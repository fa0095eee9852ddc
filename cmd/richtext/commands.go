package richtext

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/richtext/internal/version"
	"github.com/arthur-debert/richtext/pkg/config"
	"github.com/arthur-debert/richtext/pkg/logging"
)

// app carries what the persistent pre-run resolves for every command.
type app struct {
	configPath string
	verbosity  int
	cfg        *config.Config
}

// flagBinding maps a command line flag onto a configuration key.
type flagBinding struct {
	flag string
	key  string
}

var flagBindings = []flagBinding{
	{"format", "render.format"},
	{"key-prefix", "render.key_prefix"},
	{"max-depth", "render.max_depth"},
	{"iterative", "render.iterative"},
	{"line-breaks", "render.line_breaks"},
	{"links", "render.links"},
	{"emit-keys", "html.emit_keys"},
	{"emit-keys", "xml.emit_keys"},
	{"indent", "xml.indent"},
	{"width", "terminal.width"},
	{"theme", "terminal.theme"},
	{"glamour-style", "glamour.style"},
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:     "richtext",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadWithOverrides(a.configPath, flagOverrides(cmd))
			if err != nil {
				return fmt.Errorf(MsgErrLoadConfig, err)
			}
			a.cfg = cfg

			logging.SetupLogger(max(a.verbosity, cfg.Logging.Verbosity))
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf(MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", MsgFlagConfig)

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})

	rootCmd.AddCommand(newRenderCmd(a))
	rootCmd.AddCommand(newInspectCmd(a))
	rootCmd.AddCommand(newFormatsCmd())
	rootCmd.AddCommand(newGenConfigCmd(a))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	return rootCmd
}

// flagOverrides collects the bound flags set on the command line.
func flagOverrides(cmd *cobra.Command) map[string]interface{} {
	out := map[string]interface{}{}
	for _, b := range flagBindings {
		f := cmd.Flags().Lookup(b.flag)
		if f != nil && f.Changed {
			out[b.key] = f.Value.String()
		}
	}
	return out
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}

func newManCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "man",
		Short:   MsgManShort,
		Args:    cobra.NoArgs,
		Hidden:  true,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			header := &doc.GenManHeader{
				Title:   "RICHTEXT",
				Section: "1",
				Source:  "richtext " + version.Version,
				Manual:  "richtext manual",
			}
			return doc.GenMan(cmd.Root(), header, cmd.OutOrStdout())
		},
	}
}

// stdoutFile returns the command's output as a file, when it is one.
func stdoutFile(cmd *cobra.Command) *os.File {
	if f, ok := cmd.OutOrStdout().(*os.File); ok {
		return f
	}
	return nil
}
