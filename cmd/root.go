package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "wikt",
	Short: "Query and maintain a parsed Wiktionary database",
	Long: `wikt reads dictionary entries from a parsed Wiktionary database: pages,
their language and part-of-speech groups, meanings, semantic relations and
translations. It also keeps the relation_type table in line with the known
relation kinds.

The database is configured in wikt.yml or through WIKT_* variables,
e.g. WIKT_DATABASE_DRIVER=postgres WIKT_DATABASE_DSN=...`,
	Example: `wikt db migrate
wikt relation reconcile
wikt page get -t apple
wikt page prefix S -l 5 --skip-redirects --lang en --definition
wikt page add -t apple -w 120 -k 14
wikt jobs run`,
	SilenceUsage: true,
}

// Execute runs the wikt command line, it exits with status 1 on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	for _, c := range []*cobra.Command{dbCmd, relationCmd, pageCmd, jobsCmd} {
		rootCmd.AddCommand(c)
	}

	rootCmd.SetHelpCommand(&cobra.Command{Use: "no-help", Hidden: true})
	rootCmd.CompletionOptions.HiddenDefaultCmd = true
	cobra.EnableCommandSorting = false
}
