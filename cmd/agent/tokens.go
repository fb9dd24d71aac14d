package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTokensCmd(build func() (*app, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens",
		Short: "List access tokens held by the agent's wallet",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := build()
			if err != nil {
				return err
			}

			listing, err := app.broker.ListTokens(cmd.Context(), app.client.Address())
			if err != nil {
				return err
			}

			if len(listing.Tokens) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no access tokens held")
				return nil
			}
			for _, token := range listing.Tokens {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\tbalance=%d\t%s\n",
					token.AssetID, token.Symbol, token.Balance, token.Status)
			}
			return nil
		},
	}
}
