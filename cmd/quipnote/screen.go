package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/aretw0/quipnote"
	"github.com/aretw0/quipnote/pkg/screen"
)

func newScreenCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "screen",
		Short: "Interactive screen with both the joke and the notes",
		Long: `Reads one command per line:

  j           fetch a joke (runs in the background)
  a <text>    add a note
  c           clear all notes
  r           reload notes from the slot
  p           print the screen
  q           quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.open(cmd.Context(), false)
			if err != nil {
				return err
			}
			defer s.Close()

			r := a.renderer(cmd.OutOrStdout())
			r.Hints = true
			sess := &session{screen: s, out: cmd.OutOrStdout(), renderer: r}

			// The notes section shows Loading... until Start settles.
			sess.draw()
			_ = s.Start(cmd.Context())
			sess.draw()

			return sess.run(cmd.Context(), cmd.InOrStdin())
		},
	}
}

// session is one interactive run. Background actions redraw when they
// settle, so every write to out goes through draw.
type session struct {
	screen   *quipnote.Screen
	out      io.Writer
	renderer *screen.Renderer

	mu      sync.Mutex
	pending sync.WaitGroup
}

func (s *session) draw() {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintln(s.out)
	s.renderer.Render(s.out, s.screen.View())
}

func (s *session) run(ctx context.Context, in io.Reader) error {
	defer s.pending.Wait()

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()
		verb, rest, _ := strings.Cut(strings.TrimLeft(line, " \t"), " ")

		switch verb {
		case "j":
			s.pending.Add(1)
			done := s.screen.Dispatch(ctx, "joke", s.screen.FetchJoke)
			s.draw()
			go func() {
				defer s.pending.Done()
				<-done
				s.draw()
			}()
		case "a":
			s.screen.SetInput(rest)
			_ = s.screen.Submit(ctx)
			s.draw()
		case "c":
			_ = s.screen.ClearNotes(ctx)
			s.draw()
		case "r":
			_ = s.screen.ReloadNotes(ctx)
			s.draw()
		case "p", "":
			s.draw()
		case "q":
			return nil
		default:
			s.mu.Lock()
			fmt.Fprintf(s.out, "unknown command %q\n", verb)
			s.mu.Unlock()
		}
	}
	return scanner.Err()
}
