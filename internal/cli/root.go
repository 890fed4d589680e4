package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd builds the weblogctl command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "weblogctl",
		Short: "Web server log analyzer",
		Long: `weblogctl parses an Apache/Nginx access log and a ModSecurity audit log from local files,
buckets the requests of one day by status class and prints the rankings.`,
		SilenceUsage: true,
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.AddCommand(newAnalyzeCmd())
	return rootCmd
}

func Execute() error {
	return NewRootCmd().Execute()
}
