package richtext

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/richtext/pkg/output"
)

func newInspectCmd(a *app) *cobra.Command {
	var (
		asYAML      bool
		summaryOnly bool
	)

	cmd := &cobra.Command{
		Use:               "inspect [FILE]",
		Short:             MsgInspectShort,
		Long:              MsgInspectLong,
		Args:              cobra.MaximumNArgs(1),
		GroupID:           "core",
		ValidArgsFunction: documentCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readDocument(cmd.InOrStdin(), inputPath(args), asYAML)
			if err != nil {
				return err
			}
			if stdout := stdoutFile(cmd); stdout == nil || !output.ColorEnabled(stdout) {
				pterm.DisableStyling()
			}

			out := cmd.OutOrStdout()
			prefix := a.cfg.Render.KeyPrefix
			if !summaryOnly {
				tree, err := output.Tree(doc, prefix)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, tree)
			}
			table, err := output.SummaryTable(output.Summarize(doc, prefix))
			if err != nil {
				return err
			}
			fmt.Fprintln(out, table)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asYAML, "yaml", false, MsgFlagYAML)
	cmd.Flags().BoolVar(&summaryOnly, "summary", false, MsgFlagSummary)
	cmd.Flags().String("key-prefix", "", MsgFlagKeyPrefix)
	return cmd
}
