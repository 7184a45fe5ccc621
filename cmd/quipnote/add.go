package main

import (
	"strings"

	"github.com/spf13/cobra"
)

func newAddCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add <text...>",
		Short: "Append a note",
		Long: `Append a note to the end of the list and save the whole list.
Surrounding whitespace is trimmed; blank text is ignored.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.open(cmd.Context(), true)
			if err != nil {
				return err
			}
			defer s.Close()

			addErr := s.AddNote(cmd.Context(), strings.Join(args, " "))
			a.renderer(cmd.OutOrStdout()).RenderNotes(cmd.OutOrStdout(), s.View())
			return outcome(addErr)
		},
	}
}
