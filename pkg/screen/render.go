package screen

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

const (
	LoadingText     = "Loading..."
	EmptyNotesText  = "No notes yet."
	NoJokeText      = "No joke yet."
	SectionRuleJoke = "== Joke =="
	SectionRuleNote = "== Notes =="
)

// Renderer draws views as plain text, one section above the other.
type Renderer struct {
	errLine *color.Color
	heading *color.Color
	muted   *color.Color
	// Hints adds the key bindings used by the interactive mode.
	Hints bool
}

// NewRenderer creates a Renderer. Colors are emitted only when useColor is set.
func NewRenderer(useColor bool) *Renderer {
	r := &Renderer{
		errLine: color.New(color.FgRed),
		heading: color.New(color.Bold),
		muted:   color.New(color.Faint),
	}
	for _, c := range []*color.Color{r.errLine, r.heading, r.muted} {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r
}

// Render draws the whole surface: the joke section, a blank line, then the
// notes section.
func (r *Renderer) Render(w io.Writer, v View) {
	r.RenderJoke(w, v)
	fmt.Fprintln(w)
	r.RenderNotes(w, v)
}

// RenderJoke draws the joke section. The joke lines are hidden while a fetch
// is pending or the last one failed.
func (r *Renderer) RenderJoke(w io.Writer, v View) {
	fmt.Fprintln(w, r.heading.Sprint(SectionRuleJoke))
	if r.Hints {
		fmt.Fprintln(w, r.muted.Sprint("[j] Get a joke"))
	}

	j := v.Joke
	switch {
	case j.Busy:
		fmt.Fprintln(w, r.muted.Sprint(LoadingText))
	case j.Err != nil:
		fmt.Fprintln(w, r.errLine.Sprint(j.Message()))
	case j.Visible():
		fmt.Fprintln(w, j.Joke.Setup)
		fmt.Fprintln(w, j.Joke.Punchline)
	default:
		fmt.Fprintln(w, r.muted.Sprint(NoJokeText))
	}
}

// RenderNotes draws the notes section with the list numbered from 1.
func (r *Renderer) RenderNotes(w io.Writer, v View) {
	fmt.Fprintln(w, r.heading.Sprint(SectionRuleNote))
	if r.Hints {
		fmt.Fprintf(w, "> %s\n", v.Input)
		fmt.Fprintln(w, r.muted.Sprint("[a <text>] Add  [c] Clear  [r] Reload  [q] Quit"))
	}

	n := v.Notes
	if n.Busy || !n.Loaded {
		fmt.Fprintln(w, r.muted.Sprint(LoadingText))
	}
	if n.Err != nil {
		fmt.Fprintln(w, r.errLine.Sprint(n.Message()))
	}
	if len(n.Notes) == 0 {
		fmt.Fprintln(w, r.muted.Sprint(EmptyNotesText))
		return
	}
	for i, note := range n.Notes {
		fmt.Fprintf(w, "%d. %s\n", i+1, note)
	}
}
