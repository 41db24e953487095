package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/campus-pulse/campuspulse/internal/interfaces/cli/admin"
	"github.com/campus-pulse/campuspulse/internal/interfaces/cli/migrate"
	"github.com/campus-pulse/campuspulse/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "campuspulse",
		Short: "Campus Pulse - live classroom feedback",
		Long:  `Campus Pulse lets students post questions during a lecture and lets the lecturer work through them. It ships the web server, migration tools and administrative commands.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		admin.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
