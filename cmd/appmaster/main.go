package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/appmaster-hq/appmaster/internal/interfaces/cli/migrate"
	"github.com/appmaster-hq/appmaster/internal/interfaces/cli/server"
	"github.com/appmaster-hq/appmaster/internal/interfaces/cli/version"
)

// @title AppMaster API
// @version 1.0
// @description CRM, helpdesk and device console API.
// @BasePath /
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
func main() {
	rootCmd := &cobra.Command{
		Use:          "appmaster",
		Short:        "AppMaster - CRM, helpdesk and device console API",
		Long:         `AppMaster serves the CRM, helpdesk and device-action API with built-in migration and seeding commands.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		version.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
