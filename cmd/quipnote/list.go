package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/aretw0/quipnote/pkg/core"
)

func newListCmd(a *app) *cobra.Command {
	var listJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List notes in insertion order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.open(cmd.Context(), true)
			if err != nil {
				return err
			}
			defer s.Close()

			v := s.View()
			if listJSON {
				out := struct {
					Notes core.NoteList `json:"notes"`
					Error string        `json:"error,omitempty"`
				}{Notes: v.Notes.Notes, Error: v.Notes.Message()}

				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				if err := encoder.Encode(out); err != nil {
					return err
				}
				return outcome(v.Notes.Err)
			}

			a.renderer(cmd.OutOrStdout()).RenderNotes(cmd.OutOrStdout(), v)
			return outcome(v.Notes.Err)
		},
	}
	cmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	return cmd
}
