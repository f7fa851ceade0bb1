package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd builds the dbforge command tree around rt.
func NewRootCmd(rt *Runtime) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dbforge",
		Short: "Generate Go entity and service code from database tables",
		Long: `dbforge reads table definitions from a MySQL or SQLite database and writes
gorm models, typed query code and service stubs into a Go project.

The last used settings are restored from the settings file; flags override them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOut(rt.Out)
	rootCmd.SetErr(rt.Err)
	rootCmd.PersistentFlags().BoolVarP(&rt.verbose, "verbose", "v", false, "Show debug and info log lines")

	rootCmd.AddCommand(GenerateCmd(rt))
	rootCmd.AddCommand(DeriveCmd(rt))
	rootCmd.AddCommand(ShowCmd(rt))
	rootCmd.AddCommand(HistoryCmd(rt))

	return rootCmd
}
