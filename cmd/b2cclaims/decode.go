package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/MatthewWilkes/openid-connect-azure-b2c/claims"
)

func newDecodeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "decode <token>",
		Short: "Print the payload of a compact token as JSON",
		Long: `Prints the claims carried in the payload of a compact token. The signature
is not verified. A malformed token prints an empty object.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := claims.DecodePayload(args[0])
			if len(c) == 0 {
				a.log.Warn("token payload could not be decoded")
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(c)
		},
	}
}
