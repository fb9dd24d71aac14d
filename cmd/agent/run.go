package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRunCmd(build func() (*app, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "run [city...]",
		Short: "Request weather for each city, buying tokens as needed",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := build()
			if err != nil {
				return err
			}

			app.client.RunDemo(cmd.Context(), args)

			stats := app.client.Stats()
			fmt.Fprintf(cmd.OutOrStdout(), "wallet:    %s\n", app.client.Address())
			fmt.Fprintf(cmd.OutOrStdout(), "requests:  %d (%d successful)\n",
				stats.RequestsIssued, stats.SuccessfulRequests)
			fmt.Fprintf(cmd.OutOrStdout(), "purchases: %d (%d failed attempts)\n",
				stats.TokensPurchased, stats.AcquireFailures)
			fmt.Fprintf(cmd.OutOrStdout(), "success:   %.1f%%\n", stats.SuccessRate())
			return nil
		},
	}
}
