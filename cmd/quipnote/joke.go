package main

import (
	"github.com/spf13/cobra"
)

func newJokeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "joke",
		Short: "Fetch and print a random joke",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.open(cmd.Context(), false)
			if err != nil {
				return err
			}
			defer s.Close()

			fetchErr := s.FetchJoke(cmd.Context())
			a.renderer(cmd.OutOrStdout()).RenderJoke(cmd.OutOrStdout(), s.View())
			return outcome(fetchErr)
		},
	}
}
