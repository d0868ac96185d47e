package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "presscraft",
	Short: "A CLI for managing the PressCraft services",
	Long: `PressCraft drafts press releases from fact sheets, keeps the PR calendar
and runs scheduled news clipping and coverage reports.

Services:
  api-service        HTTP API and subscription scheduler
  execution-service  clipping task consumer
  migrate            database migrations`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Whoops. There was an error while executing your CLI '%s'", err)
		os.Exit(1)
	}
}
