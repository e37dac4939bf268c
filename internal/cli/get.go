package cli

import (
	"github.com/conf-cli/conf/internal/ops"
	"github.com/spf13/cobra"
)

// Shared flag descriptions.
const (
	forceCreateUsage = "Create the config file if it doesn't exist"
	ignoreNullUsage  = "Print an empty line instead of failing when the key is missing"
)

var (
	getForceCreate bool
	getIgnoreNull  bool
)

func init() {
	getCmd.Flags().BoolVarP(&getForceCreate, "force-create", "f", false, forceCreateUsage)
	getCmd.Flags().BoolVarP(&getIgnoreNull, "ignore-null", "i", false, ignoreNullUsage)
	rootCmd.AddCommand(getCmd)
}

var getCmd = &cobra.Command{
	Use:     "get <key>",
	Aliases: []string{"g"},
	Short:   "Get a value",
	Example: "  conf get editor\n  conf get editor --ignore-null",
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
		return ops.Get(s, cmd.OutOrStdout(), args[0], ops.Options{
			ForceCreate: getForceCreate,
			IgnoreNull:  getIgnoreNull,
		})
	},
}
