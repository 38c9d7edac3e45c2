package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize the salary columns of the corpus",
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	a, _, _, cleanup, err := bootstrap(cmd.Context())
	if err != nil {
		return err
	}
	defer cleanup()

	stats, err := a.recommend.CorpusStats(cmd.Context())
	if err != nil {
		return userError(err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderStats(stats))
	return nil
}
