package cli

import (
	"github.com/conf-cli/conf/internal/ops"
	"github.com/spf13/cobra"
)

var setForceCreate bool

func init() {
	setCmd.Flags().BoolVarP(&setForceCreate, "force-create", "f", false, forceCreateUsage)
	rootCmd.AddCommand(setCmd)
}

var setCmd = &cobra.Command{
	Use:     "set <key> <value>",
	Aliases: []string{"s"},
	Short:   "Set a value",
	Example: "  conf set editor vim\n  conf set editor vim --force-create\n  conf set offset -1\n  conf set -- -f value",
	Args:    exactPassthroughArgs(2),

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
		return ops.Set(s, cmd.OutOrStdout(), args[0], args[1], ops.Options{ForceCreate: setForceCreate})
	},
}
