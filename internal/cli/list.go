package cli

import (
	"github.com/conf-cli/conf/internal/ops"
	"github.com/spf13/cobra"
)

var listForceCreate bool

func init() {
	listCmd.Flags().BoolVarP(&listForceCreate, "force-create", "f", false, forceCreateUsage)
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"l"},
	Short:   "List all keys and values",
	Long:    `Print every entry as "key<TAB>value", one per line, in file order.`,
	Args:    exactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		return ops.List(s, cmd.OutOrStdout(), ops.Options{ForceCreate: listForceCreate})
	},
}
