package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/pterm/pterm"

	"github.com/Hugo-git31/site-hugo-adopte-un-dev/internal/board"
	"github.com/Hugo-git31/site-hugo-adopte-un-dev/internal/screens"
)

// ProfileList renders the candidate search result cards and its
// pagination bar.
type ProfileList struct {
	Out io.Writer
}

func (v *ProfileList) Render(items []board.CandidateProfile) {
	if len(items) == 0 {
		fmt.Fprintln(v.Out, pterm.Gray("Aucun profil ne correspond à la recherche."))
		return
	}
	for _, p := range items {
		rule(v.Out)
		fmt.Fprintln(v.Out, pterm.LightGreen(board.Escape(p.FirstName+" "+p.LastName))+pterm.Gray(" · ")+board.Escape(p.City))
		if p.JobTarget != nil && *p.JobTarget != "" {
			fmt.Fprintln(v.Out, pterm.Cyan(board.Escape(*p.JobTarget)))
		}
		if p.Skills != nil && *p.Skills != "" {
			fmt.Fprintln(v.Out, board.TruncateRunes(board.Escape(*p.Skills), snippetLen, "…"))
		}
	}
	rule(v.Out)
}

func (v *ProfileList) RenderError(msg string) {
	fmt.Fprintln(v.Out, pterm.Red("Impossible de charger les profils: ")+msg)
}

func (v *ProfileList) RenderPagination(state screens.PageState) {
	renderPagination(v.Out, state)
}

// ProfilePopup renders one candidate's detail overlay.
type ProfilePopup struct {
	Out io.Writer
}

func (v *ProfilePopup) Show(p board.CandidateProfile) {
	fmt.Fprintln(v.Out, pterm.LightGreen("══ "+board.Escape(p.FirstName+" "+p.LastName)+" ══"))
	fmt.Fprintln(v.Out, pterm.Cyan(board.Escape(p.City)))
	if p.JobTarget != nil && *p.JobTarget != "" {
		fmt.Fprintln(v.Out, pterm.Gray("recherche: ")+board.Escape(*p.JobTarget))
	}
	if p.ExperienceYears != nil {
		fmt.Fprintln(v.Out, pterm.Gray("expérience: ")+strconv.Itoa(*p.ExperienceYears)+" ans")
	}
	if p.Skills != nil && *p.Skills != "" {
		fmt.Fprintln(v.Out, pterm.Gray("compétences: ")+board.Escape(*p.Skills))
	}
	if p.Diplomas != nil && *p.Diplomas != "" {
		fmt.Fprintln(v.Out, pterm.Gray("diplômes: ")+board.Escape(*p.Diplomas))
	}
	if p.Languages != nil && *p.Languages != "" {
		fmt.Fprintln(v.Out, pterm.Gray("langues: ")+board.Escape(*p.Languages))
	}
	if p.Motivation != nil && *p.Motivation != "" {
		fmt.Fprintln(v.Out)
		fmt.Fprintln(v.Out, board.StripTags(*p.Motivation))
	}
}

func (v *ProfilePopup) Hide() {}
