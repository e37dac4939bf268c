package cli

import (
	"github.com/conf-cli/conf/internal/ops"
	"github.com/spf13/cobra"
)

var removeForceCreate bool

func init() {
	removeCmd.Flags().BoolVarP(&removeForceCreate, "force-create", "f", false, forceCreateUsage)
	rootCmd.AddCommand(removeCmd)
}

var removeCmd = &cobra.Command{
	Use:     "remove <key>",
	Aliases: []string{"r"},
	Short:   "Remove a value",
	Example: "  conf remove editor",
	Args:    exactPassthroughArgs(1),

	// Values may start with a dash (-1, --no-cache).
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		args, err := passthroughArgs(cmd, args)
		if err != nil {
			return err
		}
		s, err := openStore()
		if err != nil {
			return err
		}
		return ops.Remove(s, cmd.OutOrStdout(), args[0], ops.Options{ForceCreate: removeForceCreate})
	},
}
