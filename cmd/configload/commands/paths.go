package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-config-load/internal/logger"
)

func newPathsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "paths",
		Short: "Print the resolved config file paths in load order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := logger.FromContext(cmd.Context()).GetChildLogger(cmd.Name())
			paths := a.newLoader(log).Paths()
			log.Debug().Int("count", len(paths)).Msg("config paths resolved")

			for _, path := range paths {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), path); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
