package screens

import (
	"context"
	"net/url"

	"github.com/Hugo-git31/site-hugo-adopte-un-dev/internal/board"
)

// PageState describes the pagination bar.
type PageState struct {
	Current int
	Total   int
	Visible bool
}

// ListingView is the rendering surface a listing controller draws on.
// Render receives the page's items in server order; an empty slice means
// the no-results placeholder.
type ListingView[T any] interface {
	Render(items []T)
	RenderError(msg string)
	RenderPagination(state PageState)
}

// FetchPage loads one page of a listing from the API.
type FetchPage[T any] func(ctx context.Context, page, pageSize int, filters url.Values) (board.Page[T], error)

// Listing drives a paginated card grid: jobs, companies, or candidate
// profiles. One instance per screen; current page and filters live here
// rather than in package state.
type Listing[T any] struct {
	fetch    FetchPage[T]
	view     ListingView[T]
	pageSize int

	page       int
	totalPages int
	// clamped pins totalPages after an overshoot proved the page after
	// it empty, so a full reloaded page does not bump the estimate back.
	clamped bool
	filters url.Values
}

// NewListing builds a listing controller over fetch, drawing on view.
func NewListing[T any](fetch FetchPage[T], view ListingView[T], pageSize int) *Listing[T] {
	if pageSize <= 0 {
		pageSize = board.Cfg.PageSize
	}
	return &Listing[T]{fetch: fetch, view: view, pageSize: pageSize, page: 1, totalPages: 1}
}

// Page returns the current 1-based page number.
func (l *Listing[T]) Page() int { return l.page }

// TotalPages returns the current page-count estimate.
func (l *Listing[T]) TotalPages() int { return l.totalPages }

// SetFilters replaces the active filters without reloading, for callers
// that pick their own starting page.
func (l *Listing[T]) SetFilters(filters url.Values) {
	l.filters = filters
	l.clamped = false
}

// ApplyFilters replaces the active filters and reloads from page 1.
func (l *Listing[T]) ApplyFilters(ctx context.Context, filters url.Values) error {
	l.SetFilters(filters)
	return l.LoadPage(ctx, 1)
}

// LoadPage fetches page and renders its cards. When the requested page
// comes back empty, the page number is past 1 and the server reported no
// total, the page number overshot the real last page: clamp the estimate
// and retry one page back. The backend does not always return a reliable
// total count, so this fallback must stay explicit.
func (l *Listing[T]) LoadPage(ctx context.Context, page int) error {
	if page < 1 {
		page = 1
	}
	board.IncrListingLoads()

	result, err := l.fetch(ctx, page, l.pageSize, l.filters)
	if err != nil {
		l.view.RenderError(err.Error())
		l.view.RenderPagination(PageState{Visible: false})
		return err
	}

	if len(result.Items) == 0 && page > 1 && result.Total == nil {
		board.IncrOvershootRetries()
		l.totalPages = page - 1
		if l.totalPages < 1 {
			l.totalPages = 1
		}
		l.clamped = true
		l.view.RenderPagination(l.pageState())
		return l.LoadPage(ctx, page-1)
	}

	l.page = page
	if n := result.TotalPages(l.pageSize); n > 0 {
		l.totalPages = n
		l.clamped = false
	} else if l.clamped {
		// An overshoot already proved where the listing ends.
	} else if len(result.Items) < l.pageSize {
		// No total and a short page: this is the last one.
		l.totalPages = page
	} else {
		// Full page, no total: optimistically assume one more.
		l.totalPages = page + 1
	}

	l.view.Render(result.Items)
	l.view.RenderPagination(l.pageState())
	return nil
}

// Next loads the following page, clamped to the last known page.
func (l *Listing[T]) Next(ctx context.Context) error {
	if l.page >= l.totalPages {
		return nil
	}
	return l.LoadPage(ctx, l.page+1)
}

// Prev loads the preceding page, clamped to page 1.
func (l *Listing[T]) Prev(ctx context.Context) error {
	if l.page <= 1 {
		return nil
	}
	return l.LoadPage(ctx, l.page-1)
}

func (l *Listing[T]) pageState() PageState {
	return PageState{
		Current: l.page,
		Total:   l.totalPages,
		Visible: l.totalPages > 1,
	}
}
