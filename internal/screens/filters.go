package screens

import (
	"context"
	"net/url"
	"strings"

	"github.com/Hugo-git31/site-hugo-adopte-un-dev/internal/api"
	"github.com/Hugo-git31/site-hugo-adopte-un-dev/internal/board"
)

// FilterPanel collects the candidate-search criteria: free text, city,
// multi-select facets, and an experience band. The facet option lists
// come from the facets endpoint, fetched once before any filtering.
type FilterPanel struct {
	client *api.Client

	open   bool
	facets *board.FacetOptions

	Query           string
	City            string
	Skills          []string
	Diplomas        []string
	Languages       []string
	ExperienceYears string
}

// NewFilterPanel builds a closed panel backed by client.
func NewFilterPanel(client *api.Client) *FilterPanel {
	return &FilterPanel{client: client}
}

// Toggle flips panel visibility and reports the new state.
func (p *FilterPanel) Toggle() bool {
	p.open = !p.open
	return p.open
}

// Open reports whether the panel is showing.
func (p *FilterPanel) Open() bool { return p.open }

// Close hides the panel.
func (p *FilterPanel) Close() { p.open = false }

// DismissOutside closes the panel on a click outside it. insidePanel is
// whether the click target sits within the panel or its trigger.
func (p *FilterPanel) DismissOutside(insidePanel bool) {
	if !insidePanel {
		p.open = false
	}
}

// Facets returns the selectable option lists, fetching them on first
// use. Subsequent calls reuse the loaded lists.
func (p *FilterPanel) Facets(ctx context.Context) (board.FacetOptions, error) {
	if p.facets != nil {
		return *p.facets, nil
	}
	opts, err := p.client.CandidateFilters(ctx)
	if err != nil {
		return board.FacetOptions{}, err
	}
	p.facets = &opts
	return opts, nil
}

// Collect renders the current selections as listing query parameters.
// All selected constraints combine by logical AND on the server.
func (p *FilterPanel) Collect() url.Values {
	return api.ProfileFilter{
		Query:           strings.TrimSpace(p.Query),
		City:            strings.TrimSpace(p.City),
		Skills:          p.Skills,
		Diplomas:        p.Diplomas,
		Languages:       p.Languages,
		ExperienceYears: p.ExperienceYears,
	}.Values()
}

// JobFilter is the jobs-screen filter, applied client-side over the
// loaded page the way the original screen filtered its in-memory array.
// Contract types, work modes and currencies are deliberately separate
// selections; the original screen fed one checkbox set into all three
// dimensions, which is flagged as a defect rather than reproduced.
type JobFilter struct {
	Query         string
	City          string
	ContractTypes []string
	WorkModes     []string
}

// Matches reports whether job satisfies every set constraint.
func (f JobFilter) Matches(job board.JobPosting) bool {
	if q := strings.ToLower(strings.TrimSpace(f.Query)); q != "" {
		if !strings.Contains(strings.ToLower(job.Title), q) {
			return false
		}
	}
	if city := strings.ToLower(strings.TrimSpace(f.City)); city != "" {
		if job.Location == nil || !strings.Contains(strings.ToLower(*job.Location), city) {
			return false
		}
	}
	if len(f.ContractTypes) > 0 {
		if job.ContractType == nil || !containsFold(f.ContractTypes, *job.ContractType) {
			return false
		}
	}
	if len(f.WorkModes) > 0 {
		if job.WorkMode == nil || !containsFold(f.WorkModes, *job.WorkMode) {
			return false
		}
	}
	return true
}

// Apply returns the jobs satisfying the filter, preserving order.
func (f JobFilter) Apply(jobs []board.JobPosting) []board.JobPosting {
	out := make([]board.JobPosting, 0, len(jobs))
	for _, job := range jobs {
		if f.Matches(job) {
			out = append(out, job)
		}
	}
	return out
}

func containsFold(haystack []string, needle string) bool {
	for _, s := range haystack {
		if strings.EqualFold(s, needle) {
			return true
		}
	}
	return false
}
