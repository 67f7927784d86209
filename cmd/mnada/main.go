package main

import (
	"os"

	"github.com/spf13/cobra"

	"mnada/internal/interfaces/cli/generate"
	"mnada/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "mnada",
		Short: "Mnada - TMX auction announcement generator",
		Long:  `Mnada generates bilingual auction announcements, poster layouts, and daily price boards for the Tanzania Mercantile Exchange.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		generate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
