package render

import (
	"fmt"
	"io"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/dustin/go-humanize"
	"github.com/pterm/pterm"

	"github.com/Hugo-git31/site-hugo-adopte-un-dev/internal/board"
	"github.com/Hugo-git31/site-hugo-adopte-un-dev/internal/screens"
)

const snippetLen = 160

// JobList renders the job listing cards and its pagination bar.
type JobList struct {
	Out io.Writer
}

func (v *JobList) Render(items []board.JobPosting) {
	if len(items) == 0 {
		fmt.Fprintln(v.Out, pterm.Gray("Aucune offre pour le moment."))
		return
	}
	for _, job := range items {
		rule(v.Out)
		fmt.Fprintln(v.Out, pterm.LightGreen(board.Escape(job.Title))+pterm.Gray(" · ")+board.Escape(job.CompanyName))
		meta := tagLine(job.ContractType, job.WorkMode, job.Location)
		if meta != "" {
			fmt.Fprintln(v.Out, pterm.Cyan(meta))
		}
		if job.ShortDesc != nil {
			txt := board.TruncateAtWord(board.StripTags(*job.ShortDesc), snippetLen)
			fmt.Fprintln(v.Out, txt)
		}
	}
	rule(v.Out)
}

func (v *JobList) RenderError(msg string) {
	fmt.Fprintln(v.Out, pterm.Red("Impossible de charger les offres: ")+msg)
}

func (v *JobList) RenderPagination(state screens.PageState) {
	renderPagination(v.Out, state)
}

// JobPopup renders one job's detail overlay. The full description comes
// back as HTML and is shown as markdown.
type JobPopup struct {
	Out io.Writer
}

func (v *JobPopup) Show(job board.JobPosting) {
	fmt.Fprintln(v.Out, pterm.LightGreen("══ "+board.Escape(job.Title)+" ══"))
	fmt.Fprintln(v.Out, pterm.Gray("chez ")+board.Escape(job.CompanyName))
	if meta := tagLine(job.ContractType, job.WorkMode, job.Location); meta != "" {
		fmt.Fprintln(v.Out, pterm.Cyan(meta))
	}
	if job.FullDesc != nil && *job.FullDesc != "" {
		md, err := htmltomarkdown.ConvertString(*job.FullDesc)
		if err != nil {
			md = board.StripTags(*job.FullDesc)
		}
		fmt.Fprintln(v.Out)
		fmt.Fprintln(v.Out, board.Escape(md))
	} else if job.ShortDesc != nil {
		fmt.Fprintln(v.Out)
		fmt.Fprintln(v.Out, board.StripTags(*job.ShortDesc))
	}
}

func (v *JobPopup) Hide() {}

func tagLine(parts ...*string) string {
	line := ""
	for _, p := range parts {
		if p == nil || *p == "" {
			continue
		}
		if line != "" {
			line += " · "
		}
		line += board.Escape(*p)
	}
	return line
}

func renderPagination(w io.Writer, state screens.PageState) {
	if !state.Visible {
		return
	}
	if state.Total > 0 {
		fmt.Fprintf(w, "Page %s / %s\n",
			humanize.Comma(int64(state.Current)), humanize.Comma(int64(state.Total)))
		return
	}
	fmt.Fprintf(w, "Page %s\n", humanize.Comma(int64(state.Current)))
}
