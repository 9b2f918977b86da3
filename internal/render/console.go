// Package render draws the board's screens on a terminal. Every type
// here implements one of the view ports in internal/screens.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"

	"github.com/Hugo-git31/site-hugo-adopte-un-dev/internal/board"
	"github.com/Hugo-git31/site-hugo-adopte-un-dev/internal/screens"
)

// Console is the shared terminal surface. It carries the header, status
// line, menus and the navigation marker, so one value satisfies the
// chrome-level view ports of internal/screens.
type Console struct {
	Out    io.Writer
	marker string
}

// NewConsole draws on w.
func NewConsole(w io.Writer) *Console {
	return &Console{Out: w}
}

// --- screens.HeaderView ---

func (c *Console) SetLoggedIn(mode screens.Mode, loggedIn bool) {
	if !loggedIn {
		fmt.Fprintln(c.Out, pterm.Gray("not logged in"))
		return
	}
	side := "candidate"
	if mode == screens.ModeCompany {
		side = "recruiter"
	}
	fmt.Fprintln(c.Out, pterm.Green("logged in")+pterm.Gray(" ("+side+")"))
}

func (c *Console) SetAvatar(path string) {
	fmt.Fprintln(c.Out, pterm.Gray("avatar: ")+board.Escape(path))
}

func (c *Console) Reset() {
	fmt.Fprintln(c.Out, pterm.Gray("logged out"))
}

// --- screens.StatusView ---

func (c *Console) SetMessage(msg string, ok bool) {
	if ok {
		fmt.Fprintln(c.Out, pterm.Green("✓ ")+msg)
		return
	}
	fmt.Fprintln(c.Out, pterm.Red("✗ ")+msg)
}

func (c *Console) SetGuard(msg string) {
	if msg == "" {
		return
	}
	fmt.Fprintln(c.Out, pterm.Yellow(msg))
}

// --- screens.SuggestView ---

func (c *Console) ShowSuggestions(titles []string) {
	for _, t := range titles {
		fmt.Fprintln(c.Out, pterm.Cyan("  ▸ ")+board.Escape(t))
	}
}

func (c *Console) HideSuggestions() {}

// --- screens.MenuView ---

func (c *Console) ShowMenu() { fmt.Fprintln(c.Out, pterm.Gray("[menu open]")) }
func (c *Console) HideMenu() {}

// --- screens.StaticPopupView ---

func (c *Console) ShowStatic(name string) {
	fmt.Fprintln(c.Out, pterm.Gray("── "+name+" ──"))
}

func (c *Console) HideStatic(name string) {}

// --- screens.Navigator ---

func (c *Console) SetMarker(marker string) { c.marker = marker }
func (c *Console) ClearMarker()            { c.marker = "" }
func (c *Console) Marker() string          { return c.marker }

// --- screens.ScreenNavigator ---

func (c *Console) Navigate(screen string) {
	fmt.Fprintln(c.Out, pterm.LightGreen("→ "+screen))
}

// rule renders a horizontal separator sized to the card width.
func rule(w io.Writer) {
	fmt.Fprintln(w, pterm.Gray(strings.Repeat("─", 60)))
}
