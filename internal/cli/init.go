package cli

import (
	"github.com/conf-cli/conf/internal/ops"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:     "init",
	Aliases: []string{"i"},
	Short:   "Create the config file if it does not exist",
	Args:    exactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		return ops.Init(s, cmd.OutOrStdout())
	},
}
