package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ip-solutions-lab/nexus-repository-api/internal/infrastructure/buildinfo"
	"github.com/ip-solutions-lab/nexus-repository-api/internal/infrastructure/config"
)

func newVersionCmd() *cobra.Command {
	var asJSON, short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display the API version together with module, toolchain and VCS build stamps.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			if short {
				fmt.Fprintln(out, config.Version)
				return nil
			}

			info := buildinfo.Read(config.LoadOrDefault().App.Environment)
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(info)
			}

			fmt.Fprintf(out, "nexus-api %s\n", config.Version)
			fmt.Fprintf(out, "Module: %s %s\n", info.Module, info.Version)
			fmt.Fprintf(out, "Go: %s %s\n", info.GoVersion, info.Platform)
			if info.VCS != nil {
				fmt.Fprintf(out, "Commit: %s (modified: %t)\n", info.VCS.Revision, info.VCS.Modified)
				if info.VCS.Time != "" {
					fmt.Fprintf(out, "Built: %s\n", info.VCS.Time)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&short, "short", "s", false, "Show only the API version")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print build information as JSON")

	return cmd
}
