package cli

import (
	"encoding/json"
	"fmt"

	"github.com/conf-cli/conf/internal/branding"
	"github.com/conf-cli/conf/internal/version"
	"github.com/spf13/cobra"
)

var (
	versionShort bool
	versionJSON  bool
)

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print version number only")
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Print version info as JSON")
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  exactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		info := version.New(buildVersion, buildCommit, buildDate)
		out := cmd.OutOrStdout()

		if versionShort {
			fmt.Fprintln(out, info.Version)
			return nil
		}

		if versionJSON {
			data, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling version info: %w", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		fmt.Fprintf(out, "%s version %s (commit: %s, built: %s)\n", branding.CLIName(), info.Version, info.Commit, info.Date)
		return nil
	},
}
