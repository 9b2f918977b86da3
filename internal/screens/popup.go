package screens

import (
	"context"
	"fmt"
)

// Navigator carries the navigation marker the browser original kept in
// the location hash, so that "back" also dismisses an open popup.
type Navigator interface {
	SetMarker(marker string)
	ClearMarker()
	Marker() string
}

// PopupView shows or hides a single modal overlay. Show receives the
// full record; the view decides which optional sub-elements to hide.
type PopupView[T any] interface {
	Show(item T)
	Hide()
}

// popupState is the show/hide core shared by both popup variants.
type popupState struct {
	nav     Navigator
	marker  string
	visible bool
}

// Visible reports whether the popup is showing.
func (p *popupState) Visible() bool { return p.visible }

func (p *popupState) reveal() {
	p.visible = true
	if p.nav != nil {
		p.nav.SetMarker(p.marker)
	}
}

func (p *popupState) dismiss() {
	p.visible = false
	if p.nav != nil && p.nav.Marker() == p.marker {
		p.nav.ClearMarker()
	}
}

// BackdropClicked handles a click on the overlay region: the popup
// closes only when the click target is the overlay itself, not one of
// its descendants.
func (p *popupState) backdropClicked(targetIsOverlay bool) bool {
	if p.visible && targetIsOverlay {
		p.visible = false
		return true
	}
	return false
}

// NavChanged handles a navigation-marker change; moving away from this
// popup's marker closes it.
func (p *popupState) navChanged(marker string) bool {
	if p.visible && marker != p.marker {
		p.visible = false
		return true
	}
	return false
}

// IndexPopup is a detail popup over an already-fetched in-memory index,
// the way the company directory keeps an id → record map.
type IndexPopup[T any] struct {
	popupState
	view PopupView[T]
	byID map[int64]T
}

// NewIndexPopup builds an index-backed popup. nav may be nil when the
// host has no back-navigation concept.
func NewIndexPopup[T any](view PopupView[T], nav Navigator, marker string) *IndexPopup[T] {
	return &IndexPopup[T]{
		popupState: popupState{nav: nav, marker: marker},
		view:       view,
		byID:       make(map[int64]T),
	}
}

// Index replaces the lookup table from a freshly rendered listing page.
func (p *IndexPopup[T]) Index(items []T, id func(T) int64) {
	p.byID = make(map[int64]T, len(items))
	for _, item := range items {
		p.byID[id(item)] = item
	}
}

// Open looks up id and reveals the popup. Unknown ids are an error and
// leave the popup untouched.
func (p *IndexPopup[T]) Open(id int64) error {
	item, ok := p.byID[id]
	if !ok {
		return fmt.Errorf("popup: no record %d in index", id)
	}
	p.view.Show(item)
	p.reveal()
	return nil
}

// Close hides the popup and clears the navigation marker.
func (p *IndexPopup[T]) Close() {
	p.dismiss()
	p.view.Hide()
}

// BackdropClicked dismisses on overlay clicks. targetIsOverlay is
// whether the click landed on the overlay element itself.
func (p *IndexPopup[T]) BackdropClicked(targetIsOverlay bool) {
	if p.backdropClicked(targetIsOverlay) {
		p.view.Hide()
	}
}

// NavChanged dismisses when navigation moves away from this popup.
func (p *IndexPopup[T]) NavChanged(marker string) {
	if p.navChanged(marker) {
		p.view.Hide()
	}
}

// FetchPopup is a detail popup that fetches its record by id on open,
// the way the job detail view does.
type FetchPopup[T any] struct {
	popupState
	view  PopupView[T]
	fetch func(ctx context.Context, id int64) (T, error)
}

// NewFetchPopup builds a fetch-on-open popup.
func NewFetchPopup[T any](fetch func(ctx context.Context, id int64) (T, error), view PopupView[T], nav Navigator, marker string) *FetchPopup[T] {
	return &FetchPopup[T]{
		popupState: popupState{nav: nav, marker: marker},
		view:       view,
		fetch:      fetch,
	}
}

// Open fetches id and reveals the popup. Fetch failures leave the popup
// hidden and surface the error to the caller.
func (p *FetchPopup[T]) Open(ctx context.Context, id int64) error {
	item, err := p.fetch(ctx, id)
	if err != nil {
		return fmt.Errorf("popup: %w", err)
	}
	p.view.Show(item)
	p.reveal()
	return nil
}

// Close hides the popup and clears the navigation marker.
func (p *FetchPopup[T]) Close() {
	p.dismiss()
	p.view.Hide()
}

// BackdropClicked dismisses on overlay clicks.
func (p *FetchPopup[T]) BackdropClicked(targetIsOverlay bool) {
	if p.backdropClicked(targetIsOverlay) {
		p.view.Hide()
	}
}

// NavChanged dismisses when navigation moves away from this popup.
func (p *FetchPopup[T]) NavChanged(marker string) {
	if p.navChanged(marker) {
		p.view.Hide()
	}
}
