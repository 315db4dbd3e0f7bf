package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/luaugen/luaugen/internal/version"
)

// GetVersionString returns the version string reported by the root command.
func GetVersionString() string {
	return fmt.Sprintf("%s (%s)", version.Version, version.Revision)
}

// NewVersionCmd returns the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cc *cobra.Command, _ []string) {
			fmt.Fprintln(cc.OutOrStdout(), GetVersionString())
		},
		SilenceUsage: true,
	}
}
