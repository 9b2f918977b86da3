package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/pterm/pterm"

	"github.com/Hugo-git31/site-hugo-adopte-un-dev/internal/board"
	"github.com/Hugo-git31/site-hugo-adopte-un-dev/internal/screens"
)

// CompanyList renders the company directory cards and its pagination bar.
type CompanyList struct {
	Out io.Writer
}

func (v *CompanyList) Render(items []board.Company) {
	if len(items) == 0 {
		fmt.Fprintln(v.Out, pterm.Gray("Aucune entreprise pour le moment."))
		return
	}
	for _, c := range items {
		rule(v.Out)
		fmt.Fprintln(v.Out, pterm.LightGreen(board.Escape(c.Name)))
		if meta := tagLine(c.Sector, c.HQCity); meta != "" {
			fmt.Fprintln(v.Out, pterm.Cyan(meta))
		}
		if c.Description != nil {
			fmt.Fprintln(v.Out, board.TruncateAtWord(board.StripTags(*c.Description), snippetLen))
		}
	}
	rule(v.Out)
}

func (v *CompanyList) RenderError(msg string) {
	fmt.Fprintln(v.Out, pterm.Red("Impossible de charger les entreprises: ")+msg)
}

func (v *CompanyList) RenderPagination(state screens.PageState) {
	renderPagination(v.Out, state)
}

// CompanyPopup renders one company's detail overlay.
type CompanyPopup struct {
	Out io.Writer
}

func (v *CompanyPopup) Show(c board.Company) {
	fmt.Fprintln(v.Out, pterm.LightGreen("══ "+board.Escape(c.Name)+" ══"))
	if meta := tagLine(c.Sector, c.HQCity); meta != "" {
		fmt.Fprintln(v.Out, pterm.Cyan(meta))
	}
	if c.Headcount != nil && *c.Headcount != "" {
		fmt.Fprintln(v.Out, pterm.Gray("effectif: ")+headcountLabel(*c.Headcount))
	}
	if c.Website != nil && *c.Website != "" {
		fmt.Fprintln(v.Out, pterm.Gray("site: ")+board.Escape(*c.Website))
	}
	if c.Description != nil && *c.Description != "" {
		fmt.Fprintln(v.Out)
		fmt.Fprintln(v.Out, board.StripTags(*c.Description))
	}
}

func (v *CompanyPopup) Hide() {}

// headcountLabel formats plain numeric headcounts; free-form values like
// "50-100" pass through untouched.
func headcountLabel(raw string) string {
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return humanize.Comma(n)
	}
	return board.Escape(raw)
}
