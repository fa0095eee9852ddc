package richtext

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/richtext/pkg/config"
)

func newGenConfigCmd(a *app) *cobra.Command {
	var (
		commented bool
		write     bool
		force     bool
		target    string
	)

	cmd := &cobra.Command{
		Use:     "genconfig",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := config.Generate(a.cfg, commented)
			if err != nil {
				return err
			}
			if !write {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}

			path := target
			if path == "" {
				path = config.DefaultPath()
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf(MsgErrConfigExists, path)
			}
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return fmt.Errorf(MsgErrWriteOutput, path, err)
			}
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return fmt.Errorf(MsgErrWriteOutput, path, err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), MsgWroteConfig, path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&commented, "commented", false, MsgFlagCommented)
	cmd.Flags().BoolVar(&write, "write", false, MsgFlagWrite)
	cmd.Flags().BoolVar(&force, "force", false, MsgFlagForce)
	cmd.Flags().StringVar(&target, "path", "", MsgFlagPath)
	return cmd
}
