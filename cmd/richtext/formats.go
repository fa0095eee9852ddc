package richtext

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/richtext/pkg/formats"
)

func newFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "formats",
		Short:   MsgFormatsShort,
		Long:    MsgFormatsLong,
		Args:    cobra.NoArgs,
		GroupID: "core",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, MsgAvailableTitle)
			for _, f := range formats.All() {
				fmt.Fprintf(out, MsgFormatItem, f.Name, f.Description)
			}
		},
	}
}
