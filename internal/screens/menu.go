package screens

// MenuView shows or hides a toggleable overlay menu.
type MenuView interface {
	ShowMenu()
	HideMenu()
}

// BurgerMenu drives the mobile navigation drawer. A click on the button
// toggles it, any click outside closes it.
type BurgerMenu struct {
	view MenuView
	open bool
}

// NewBurgerMenu wires the drawer over its view.
func NewBurgerMenu(view MenuView) *BurgerMenu {
	return &BurgerMenu{view: view}
}

// Toggle flips the drawer on a button click.
func (m *BurgerMenu) Toggle() {
	if m.open {
		m.close()
		return
	}
	m.open = true
	m.view.ShowMenu()
}

// DismissOutside closes the drawer on a click outside it and its button.
func (m *BurgerMenu) DismissOutside(insideMenu bool) {
	if m.open && !insideMenu {
		m.close()
	}
}

// Open reports whether the drawer is shown.
func (m *BurgerMenu) Open() bool { return m.open }

func (m *BurgerMenu) close() {
	m.open = false
	m.view.HideMenu()
}

// AccountEntry is one option in the account dropdown.
type AccountEntry struct {
	Label  string
	Screen string
}

// AccountMenu drives the header account dropdown. Its entries depend on
// the logged-in side: candidates get their profile editor, recruiters
// their company editor.
type AccountMenu struct {
	view MenuView
	nav  ScreenNavigator
	auth *Auth
	open bool
}

// NewAccountMenu wires the dropdown over the auth state.
func NewAccountMenu(view MenuView, nav ScreenNavigator, auth *Auth) *AccountMenu {
	return &AccountMenu{view: view, nav: nav, auth: auth}
}

// Entries returns the dropdown options for the current session.
func (m *AccountMenu) Entries() []AccountEntry {
	if !m.auth.LoggedIn() {
		return []AccountEntry{{Label: "Se connecter", Screen: "login"}}
	}
	if m.auth.Mode("", false, "") == ModeCompany {
		return []AccountEntry{
			{Label: "Mon entreprise", Screen: "company_profile"},
			{Label: "Se déconnecter", Screen: "logout"},
		}
	}
	return []AccountEntry{
		{Label: "Mon profil", Screen: "profile"},
		{Label: "Se déconnecter", Screen: "logout"},
	}
}

// Toggle flips the dropdown on an avatar click.
func (m *AccountMenu) Toggle() {
	if m.open {
		m.close()
		return
	}
	m.open = true
	m.view.ShowMenu()
}

// Select activates an entry, closing the dropdown. "logout" ends the
// session in place, other screens are navigated to.
func (m *AccountMenu) Select(entry AccountEntry) error {
	m.close()
	if entry.Screen == "logout" {
		return m.auth.Logout()
	}
	m.nav.Navigate(entry.Screen)
	return nil
}

// DismissOutside closes the dropdown on a click outside it.
func (m *AccountMenu) DismissOutside(insideMenu bool) {
	if m.open && !insideMenu {
		m.close()
	}
}

// Open reports whether the dropdown is shown.
func (m *AccountMenu) Open() bool { return m.open }

func (m *AccountMenu) close() {
	m.open = false
	m.view.HideMenu()
}

// StaticPopup is a fixed informational overlay (legal notices, contact,
// about) identified by name.
type StaticPopup struct {
	Name    string
	visible bool
}

// PopupRegistry tracks the static overlays of a page so only one is
// shown at a time.
type PopupRegistry struct {
	popups map[string]*StaticPopup
	view   StaticPopupView
}

// StaticPopupView renders named static overlays.
type StaticPopupView interface {
	ShowStatic(name string)
	HideStatic(name string)
}

// NewPopupRegistry registers the page's static overlays by name.
func NewPopupRegistry(view StaticPopupView, names ...string) *PopupRegistry {
	r := &PopupRegistry{popups: make(map[string]*StaticPopup, len(names)), view: view}
	for _, name := range names {
		r.popups[name] = &StaticPopup{Name: name}
	}
	return r
}

// OpenPopup shows the named overlay, closing any other open one. Unknown
// names are ignored.
func (r *PopupRegistry) OpenPopup(name string) {
	p, ok := r.popups[name]
	if !ok {
		return
	}
	for _, other := range r.popups {
		if other.visible && other.Name != name {
			other.visible = false
			r.view.HideStatic(other.Name)
		}
	}
	p.visible = true
	r.view.ShowStatic(name)
}

// ClosePopup hides the named overlay.
func (r *PopupRegistry) ClosePopup(name string) {
	p, ok := r.popups[name]
	if !ok || !p.visible {
		return
	}
	p.visible = false
	r.view.HideStatic(name)
}

// BackdropClicked closes the overlay when the click landed on its
// backdrop rather than its content.
func (r *PopupRegistry) BackdropClicked(name string, onContent bool) {
	if !onContent {
		r.ClosePopup(name)
	}
}

// OpenName returns the currently visible overlay's name, "" when none.
func (r *PopupRegistry) OpenName() string {
	for _, p := range r.popups {
		if p.visible {
			return p.Name
		}
	}
	return ""
}
