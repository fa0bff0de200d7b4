package version

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/appmaster-hq/appmaster/internal/shared/version"
)

func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.Get()
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "appmaster %s (commit %s)\n", info.Version, info.Commit)
			return err
		},
	}
}
