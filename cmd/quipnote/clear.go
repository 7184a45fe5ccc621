package main

import (
	"github.com/spf13/cobra"
)

func newClearCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every note and delete the slot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.open(cmd.Context(), true)
			if err != nil {
				return err
			}
			defer s.Close()

			clearErr := s.ClearNotes(cmd.Context())
			a.renderer(cmd.OutOrStdout()).RenderNotes(cmd.OutOrStdout(), s.View())
			return outcome(clearErr)
		},
	}
}
