package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var fitCmd = &cobra.Command{
	Use:   "fit",
	Short: "Fit a model over the corpus and persist it",
	RunE:  runFit,
}

var fitReset bool

func init() {
	fitCmd.Flags().BoolVar(&fitReset, "reset", false, "delete the persisted model before fitting")
	rootCmd.AddCommand(fitCmd)
}

func runFit(cmd *cobra.Command, _ []string) error {
	a, _, _, cleanup, err := bootstrap(cmd.Context())
	if err != nil {
		return err
	}
	defer cleanup()

	if fitReset {
		if err := a.models.Reset(cmd.Context()); err != nil {
			return err
		}
	}
	info, err := a.recommend.Refit(cmd.Context())
	if err != nil {
		return userError(err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderModel(info))
	return nil
}
