package view

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
)

// AboutInfo is what the about screen shows.
type AboutInfo struct {
	Name      string
	Version   string
	SourceURL string
}

func RenderAbout(w io.Writer, info AboutInfo) error {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.SetTitle("About")
	t.AppendRows([]table.Row{
		{"App", info.Name},
		{"Version", info.Version},
		{"Data source", info.SourceURL},
	})
	_, err := fmt.Fprintln(w, t.Render())
	return err
}
