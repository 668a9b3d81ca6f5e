package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/MatthewWilkes/openid-connect-azure-b2c/claims"
	"github.com/MatthewWilkes/openid-connect-azure-b2c/email"
)

func newEmailCommand(a *app) *cobra.Command {
	var showSource bool

	cmd := &cobra.Command{
		Use:   "email [file]",
		Short: "Print the email address resolved from a claims JSON document",
		Long: `Reads a claims JSON document from file, or from standard input when no
file is given, and prints the email address resolved from it. An empty line
is printed when no claim carries an email address.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			c, err := claims.Parse(data)
			if err != nil {
				return err
			}

			r, err := email.New(email.WithLogger(email.NewLogrusLogger(a.log)))
			if err != nil {
				return err
			}

			res := r.Resolve(cmd.Context(), c)
			if showSource {
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", res.Email, res.Source)
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), res.Email)
			return err
		},
	}

	cmd.Flags().BoolVar(&showSource, "source", false, "also print the claim the address was read from")

	return cmd
}

func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("could not read claims: %w", err)
	}
	return data, nil
}
