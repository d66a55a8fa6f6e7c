package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/itssocoldhere/glowbio/cmd/do/cmd"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "do",
		Short:        "Operator tools for glowbio",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(cmd.DispatchCmd())
	rootCmd.AddCommand(cmd.ShowCmd())
	rootCmd.AddCommand(cmd.MigrateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
