package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newEndpointsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "endpoints",
		Short: "Print the OAuth2 endpoints of a tenant and user flow",
		Long: `Prints the endpoints of the configured tenant and user flow. Values are read
from flags, then B2C_TENANT and B2C_FLOW, then the --config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.configuration()
			if err != nil {
				return err
			}

			e := cfg.Endpoints()
			out := cmd.OutOrStdout()
			for _, line := range [][2]string{
				{"authorization", e.Authorization},
				{"token", e.Token},
				{"userinfo", e.UserInfo},
				{"end_session", e.EndSession},
				{"well_known", cfg.WellKnownURL()},
			} {
				if _, err := fmt.Fprintf(out, "%s: %s\n", line[0], line[1]); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().String("tenant", "", "name of the B2C tenant")
	cmd.Flags().String("flow", "", "name of the B2C user flow")

	return cmd
}
