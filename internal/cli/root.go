package cli

import (
	"github.com/conf-cli/conf/internal/branding"
	"github.com/conf-cli/conf/internal/config"
	"github.com/conf-cli/conf/internal/logging"
	"github.com/conf-cli/conf/internal/store"
	"github.com/conf-cli/conf/internal/version"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string

	verbose bool
)

func init() {
	// Long-only: cobra claims -v for --version.
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Print debug diagnostics to stderr")
	rootCmd.SetVersionTemplate(branding.CLIName() + " version {{.Version}}\n")
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` keeps a flat set of string keys and values in a single JSON
object at ~/` + branding.ConfigFile() + `.

Every command reads the whole file and mutating commands rewrite it. There is
no locking: run one instance at a time.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(cmd.ErrOrStderr(), verbose || config.Verbose())
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(ver, commit, date string) error {
	buildVersion = ver
	buildCommit = commit
	buildDate = date
	rootCmd.Version = version.Normalize(buildVersion)
	return rootCmd.Execute()
}

// openStore resolves the document path and returns a store on the real
// filesystem.
func openStore() (*store.Store, error) {
	path, err := config.Path()
	if err != nil {
		return nil, err
	}
	logrus.WithField("path", path).Debug("resolved config path")
	return store.NewOS(path), nil
}
