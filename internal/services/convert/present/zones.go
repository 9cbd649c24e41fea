package present

import (
	"fmt"

	"tzconv/internal/services/convert/domain"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Zones renders the zone listing as a table; an empty listing prints a note instead
func (p *Printer) Zones(rows []domain.ZoneRow, filter string) {
	if len(rows) == 0 {
		fmt.Fprintf(p.out, "\n[%s] no zones match %q\n\n", p.st.warn.Render("WARNING"), filter)
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(p.out)
	t.SetStyle(table.StyleRounded)
	t.Style().Options.SeparateColumns = false
	if p.colored {
		t.Style().Color.Header = text.Colors{text.FgHiCyan, text.Bold}
		t.Style().Color.RowAlternate = text.Colors{text.FgHiBlack}
	} else {
		t.Style().Options.DoNotColorBordersAndSeparators = true
	}

	t.AppendHeader(table.Row{"Key", "Zone", "Kind", "UTC offset"})
	for _, r := range rows {
		t.AppendRow(table.Row{r.Key, r.Name, r.Kind, r.Offset})
	}
	t.SetCaption("%d zone(s)", len(rows))
	t.Render()
}
