package screens

import (
	"context"
	"strings"

	"golang.org/x/time/rate"

	"github.com/Hugo-git31/site-hugo-adopte-un-dev/internal/api"
	"github.com/Hugo-git31/site-hugo-adopte-un-dev/internal/board"
)

const (
	suggestLimit = 5
	// one refresh per 200ms, matching the input debounce window
	suggestRate = rate.Limit(5)
)

// SuggestView shows or hides the suggestion dropdown under the search
// input.
type SuggestView interface {
	ShowSuggestions(titles []string)
	HideSuggestions()
}

// Suggest drives the job-title typeahead over the listing endpoint.
// Refreshes are throttled so fast typing coalesces into one request.
type Suggest struct {
	client  *api.Client
	view    SuggestView
	limiter *rate.Limiter

	Input   string
	visible bool
}

// NewSuggest wires the typeahead over the listing API.
func NewSuggest(client *api.Client, view SuggestView) *Suggest {
	return &Suggest{
		client:  client,
		view:    view,
		limiter: rate.NewLimiter(suggestRate, 1),
	}
}

// Type records the current input and refreshes the dropdown. Blank
// input hides it without a request; throttled keystrokes are dropped,
// the next allowed one picks up the latest input.
func (s *Suggest) Type(ctx context.Context, input string) error {
	s.Input = input
	q := strings.TrimSpace(input)
	if q == "" {
		s.hide()
		return nil
	}
	if !s.limiter.Allow() {
		return nil
	}
	board.IncrSuggestRequests()

	page, err := s.client.ListJobs(ctx, 1, suggestLimit, q)
	if err != nil {
		s.hide()
		return err
	}
	titles := make([]string, 0, len(page.Items))
	for _, job := range page.Items {
		titles = append(titles, job.Title)
	}
	if len(titles) == 0 {
		s.hide()
		return nil
	}
	s.visible = true
	s.view.ShowSuggestions(titles)
	return nil
}

// Pick copies the chosen title into the input and closes the dropdown.
func (s *Suggest) Pick(title string) {
	s.Input = title
	s.hide()
}

// DismissOutside closes the dropdown on a click outside the search box.
func (s *Suggest) DismissOutside(insideSearch bool) {
	if !insideSearch {
		s.hide()
	}
}

// Visible reports whether the dropdown is currently shown.
func (s *Suggest) Visible() bool { return s.visible }

func (s *Suggest) hide() {
	s.visible = false
	s.view.HideSuggestions()
}
