package screens

import "testing"

type fakeMenuView struct {
	shows, hides int
}

func (v *fakeMenuView) ShowMenu() { v.shows++ }
func (v *fakeMenuView) HideMenu() { v.hides++ }

type fakeStaticView struct {
	shown  []string
	hidden []string
}

func (v *fakeStaticView) ShowStatic(name string) { v.shown = append(v.shown, name) }
func (v *fakeStaticView) HideStatic(name string) { v.hidden = append(v.hidden, name) }

func TestBurgerMenuToggleAndOutsideClick(t *testing.T) {
	view := &fakeMenuView{}
	m := NewBurgerMenu(view)

	m.Toggle()
	if !m.Open() || view.shows != 1 {
		t.Error("first toggle should open")
	}
	m.DismissOutside(true)
	if !m.Open() {
		t.Error("inside click should not close")
	}
	m.DismissOutside(false)
	if m.Open() || view.hides != 1 {
		t.Error("outside click should close")
	}
	m.DismissOutside(false)
	if view.hides != 1 {
		t.Error("closing a closed menu should be a no-op")
	}
}

func TestPopupRegistrySingleOpen(t *testing.T) {
	view := &fakeStaticView{}
	r := NewPopupRegistry(view, "mentions", "contact", "apropos")

	r.OpenPopup("mentions")
	if r.OpenName() != "mentions" {
		t.Errorf("open = %q", r.OpenName())
	}
	r.OpenPopup("contact")
	if r.OpenName() != "contact" {
		t.Errorf("open = %q, want contact", r.OpenName())
	}
	if len(view.hidden) != 1 || view.hidden[0] != "mentions" {
		t.Errorf("hidden = %v, opening one overlay should close the other", view.hidden)
	}

	r.OpenPopup("unknown")
	if r.OpenName() != "contact" {
		t.Error("unknown names must be ignored")
	}

	r.BackdropClicked("contact", true)
	if r.OpenName() != "contact" {
		t.Error("content click should not dismiss")
	}
	r.BackdropClicked("contact", false)
	if r.OpenName() != "" {
		t.Error("backdrop click should dismiss")
	}
}

func TestAccountMenuEntriesByRole(t *testing.T) {
	srv := &boardServer{role: "user"}
	auth, _, nav, store := newAuthFixture(t, srv)
	view := &fakeMenuView{}
	m := NewAccountMenu(view, nav, auth)

	entries := m.Entries()
	if len(entries) != 1 || entries[0].Screen != "login" {
		t.Errorf("logged-out entries = %v", entries)
	}

	if err := store.SetToken("tok"); err != nil {
		t.Fatal(err)
	}
	if err := store.SetRole("user"); err != nil {
		t.Fatal(err)
	}
	entries = m.Entries()
	if len(entries) != 2 || entries[0].Screen != "profile" {
		t.Errorf("candidate entries = %v", entries)
	}

	if err := store.SetRole("recruiter"); err != nil {
		t.Fatal(err)
	}
	entries = m.Entries()
	if len(entries) != 2 || entries[0].Screen != "company_profile" {
		t.Errorf("recruiter entries = %v", entries)
	}
}

func TestAccountMenuSelect(t *testing.T) {
	srv := &boardServer{role: "user"}
	auth, _, nav, store := newAuthFixture(t, srv)
	if err := store.SetToken("tok"); err != nil {
		t.Fatal(err)
	}
	view := &fakeMenuView{}
	m := NewAccountMenu(view, nav, auth)

	m.Toggle()
	if err := m.Select(AccountEntry{Label: "Mon profil", Screen: "profile"}); err != nil {
		t.Fatal(err)
	}
	if m.Open() {
		t.Error("select should close the menu")
	}
	if nav.last() != "profile" {
		t.Errorf("navigated to %q", nav.last())
	}

	if err := m.Select(AccountEntry{Label: "Se déconnecter", Screen: "logout"}); err != nil {
		t.Fatal(err)
	}
	if store.Token() != "" {
		t.Error("logout entry should clear the session")
	}
}
