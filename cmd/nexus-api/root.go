package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "nexus-api",
		Short: "Nexus Repository Manager API",
		Long: `nexus-api serves an in-memory registry of package repositories and
package records over a JSON REST API.`,
		SilenceUsage: true,
	}

	root.AddCommand(newServeCmd())
	root.AddCommand(newVersionCmd())

	return root
}
