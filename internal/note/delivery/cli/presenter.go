package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"notes-client/internal/model"
)

var (
	alertColor = color.New(color.FgYellow, color.Bold)
	infoColor  = color.New(color.FgGreen)
)

// presenter prints use-case output to a terminal. Alerts go to errOut so
// that stdout stays pipeable.
type presenter struct {
	out    io.Writer
	errOut io.Writer
}

func (p *presenter) ShowAuth(ctx context.Context) {
	infoColor.Fprintln(p.out, "Signed out.")
}

func (p *presenter) ShowNotes(ctx context.Context) {
	infoColor.Fprintln(p.out, "Signed in.")
}

func (p *presenter) RenderNotes(ctx context.Context, notes []model.Note) {
	if len(notes) == 0 {
		fmt.Fprintln(p.out, "No notes.")
		return
	}

	tw := table.NewWriter()
	tw.AppendHeader(table.Row{"ID", "Title", "Content"})
	for _, n := range notes {
		tw.AppendRow(table.Row{n.ID, n.Title, n.Content})
	}
	fmt.Fprintln(p.out, tw.Render())
}

func (p *presenter) Alert(ctx context.Context, msg string) {
	alertColor.Fprintln(p.errOut, msg)
}
