package cli

import (
	"github.com/conf-cli/conf/internal/ops"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(clearCmd)
}

var clearCmd = &cobra.Command{
	Use:     "clear",
	Aliases: []string{"c"},
	Short:   "Replace the config file with an empty object",
	Args:    exactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		return ops.Clear(s, cmd.OutOrStdout())
	},
}
