package screens

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/Hugo-git31/site-hugo-adopte-un-dev/internal/board"
)

type fakeListingView[T any] struct {
	rendered   [][]T
	errors     []string
	pagination []PageState
}

func (v *fakeListingView[T]) Render(items []T)             { v.rendered = append(v.rendered, items) }
func (v *fakeListingView[T]) RenderError(msg string)       { v.errors = append(v.errors, msg) }
func (v *fakeListingView[T]) RenderPagination(s PageState) { v.pagination = append(v.pagination, s) }
func (v *fakeListingView[T]) lastPagination() PageState    { return v.pagination[len(v.pagination)-1] }

func intp(n int) *int { return &n }

func pageFetcher(pages map[int]board.Page[string], calls *[]int) FetchPage[string] {
	return func(_ context.Context, page, pageSize int, _ url.Values) (board.Page[string], error) {
		*calls = append(*calls, page)
		return pages[page], nil
	}
}

func TestLoadPageRendersItemsInOrder(t *testing.T) {
	view := &fakeListingView[string]{}
	var calls []int
	l := NewListing(pageFetcher(map[int]board.Page[string]{
		1: {Items: []string{"a", "b", "c"}, Total: intp(3)},
	}, &calls), view, 3)

	if err := l.LoadPage(context.Background(), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(view.rendered) != 1 {
		t.Fatalf("expected 1 render, got %d", len(view.rendered))
	}
	got := view.rendered[0]
	if len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Errorf("rendered %v, want [a b c] in order", got)
	}
	if l.TotalPages() != 1 {
		t.Errorf("TotalPages = %d, want 1", l.TotalPages())
	}
	if view.lastPagination().Visible {
		t.Error("single-page listing should hide pagination")
	}
}

func TestLoadPageEmptyFirstPage(t *testing.T) {
	view := &fakeListingView[string]{}
	var calls []int
	l := NewListing(pageFetcher(map[int]board.Page[string]{
		1: {Items: nil, Total: intp(0)},
	}, &calls), view, 3)

	if err := l.LoadPage(context.Background(), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(view.rendered) != 1 || len(view.rendered[0]) != 0 {
		t.Error("empty first page should still render (placeholder state)")
	}
	if view.lastPagination().Visible {
		t.Error("empty listing should hide pagination")
	}
}

func TestLoadPageOvershootRetriesPreviousPage(t *testing.T) {
	view := &fakeListingView[string]{}
	var calls []int
	l := NewListing(pageFetcher(map[int]board.Page[string]{
		1: {Items: []string{"a", "b", "c"}}, // full page, no total
		2: {Items: nil},                     // overshot: empty, no total
	}, &calls), view, 3)

	if err := l.LoadPage(context.Background(), 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(calls) != 2 || calls[0] != 2 || calls[1] != 1 {
		t.Fatalf("calls = %v, want [2 1]", calls)
	}
	if l.Page() != 1 {
		t.Errorf("Page = %d, want 1 after overshoot fallback", l.Page())
	}
	if l.TotalPages() != 1 {
		t.Errorf("TotalPages = %d, want 1 (clamped)", l.TotalPages())
	}
	if len(view.rendered) != 1 {
		t.Errorf("expected a single render of the fallback page, got %d", len(view.rendered))
	}
}

func TestLoadPageTotalInference(t *testing.T) {
	tests := []struct {
		name      string
		page      board.Page[string]
		loadPage  int
		wantTotal int
	}{
		{"server total", board.Page[string]{Items: []string{"a"}, Total: intp(19)}, 1, 7},
		{"short page no total", board.Page[string]{Items: []string{"a", "b"}}, 2, 2},
		{"full page no total", board.Page[string]{Items: []string{"a", "b", "c"}}, 2, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := &fakeListingView[string]{}
			var calls []int
			l := NewListing(pageFetcher(map[int]board.Page[string]{tt.loadPage: tt.page}, &calls), view, 3)
			if err := l.LoadPage(context.Background(), tt.loadPage); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if l.TotalPages() != tt.wantTotal {
				t.Errorf("TotalPages = %d, want %d", l.TotalPages(), tt.wantTotal)
			}
		})
	}
}

func TestLoadPageErrorHidesPagination(t *testing.T) {
	view := &fakeListingView[string]{}
	l := NewListing(func(context.Context, int, int, url.Values) (board.Page[string], error) {
		return board.Page[string]{}, errors.New("boom")
	}, view, 3)

	if err := l.LoadPage(context.Background(), 1); err == nil {
		t.Fatal("expected error")
	}
	if len(view.errors) != 1 {
		t.Fatalf("expected 1 error render, got %d", len(view.errors))
	}
	if view.lastPagination().Visible {
		t.Error("failed load should hide pagination")
	}
	if len(view.rendered) != 0 {
		t.Error("failed load should render no cards")
	}
}

func TestNextPrevClamped(t *testing.T) {
	view := &fakeListingView[string]{}
	var calls []int
	l := NewListing(pageFetcher(map[int]board.Page[string]{
		1: {Items: []string{"a", "b", "c"}, Total: intp(6)},
		2: {Items: []string{"d", "e", "f"}, Total: intp(6)},
	}, &calls), view, 3)
	ctx := context.Background()

	if err := l.LoadPage(ctx, 1); err != nil {
		t.Fatal(err)
	}
	if err := l.Prev(ctx); err != nil {
		t.Fatal(err)
	}
	if l.Page() != 1 {
		t.Errorf("Prev on page 1 moved to %d", l.Page())
	}
	if err := l.Next(ctx); err != nil {
		t.Fatal(err)
	}
	if l.Page() != 2 {
		t.Errorf("Next moved to %d, want 2", l.Page())
	}
	if err := l.Next(ctx); err != nil {
		t.Fatal(err)
	}
	if l.Page() != 2 {
		t.Errorf("Next on last page moved to %d", l.Page())
	}
}

func TestApplyFiltersResetsToPageOne(t *testing.T) {
	view := &fakeListingView[string]{}
	var gotFilters url.Values
	var gotPages []int
	l := NewListing(func(_ context.Context, page, _ int, filters url.Values) (board.Page[string], error) {
		gotFilters = filters
		gotPages = append(gotPages, page)
		return board.Page[string]{Items: []string{"x"}, Total: intp(10)}, nil
	}, view, 3)
	ctx := context.Background()

	if err := l.LoadPage(ctx, 3); err != nil {
		t.Fatal(err)
	}
	f := url.Values{}
	f.Set("city", "Paris")
	if err := l.ApplyFilters(ctx, f); err != nil {
		t.Fatal(err)
	}
	if l.Page() != 1 {
		t.Errorf("ApplyFilters left page at %d, want 1", l.Page())
	}
	if gotFilters.Get("city") != "Paris" {
		t.Errorf("filters not passed to fetch: %v", gotFilters)
	}
	if gotPages[len(gotPages)-1] != 1 {
		t.Errorf("last fetch was page %d, want 1", gotPages[len(gotPages)-1])
	}
}
