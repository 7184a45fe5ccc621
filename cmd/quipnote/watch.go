package main

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/aretw0/quipnote/pkg/core"
	"github.com/aretw0/quipnote/pkg/screen"
)

func newWatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Print the notes again whenever another process changes them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			s, err := a.open(ctx, true)
			if err != nil {
				return err
			}
			defer s.Close()

			out := cmd.OutOrStdout()
			r := a.renderer(out)
			r.RenderNotes(out, s.View())

			return s.Follow(ctx, func(e core.Event, v screen.View) {
				fmt.Fprintf(out, "\n[%s] %s\n", time.Unix(e.Timestamp, 0).Format(time.TimeOnly), e)
				r.RenderNotes(out, v)
			})
		},
	}
}
