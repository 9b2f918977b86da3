// Package screens holds the per-screen controllers. Each controller is
// constructed once per screen, owns its pagination/filter state as plain
// fields, and talks to the terminal through narrow view interfaces so it
// stays host-independent.
package screens

import (
	"strings"

	"github.com/Hugo-git31/site-hugo-adopte-un-dev/internal/board"
)

// Mode is the active side of the site.
type Mode string

const (
	ModeCandidate Mode = "candidate"
	ModeCompany   Mode = "company"
)

// ResolveMode computes the active side from, in priority order: the
// recruiter pin, an explicit parameter, a screen-level override, the
// screen's identity, falling back to candidate. A logged-in recruiter is
// always pinned to the company side.
func ResolveMode(explicit string, override bool, screenIdentity string, role board.Role) Mode {
	if role == board.RoleRecruiter {
		return ModeCompany
	}
	switch strings.ToLower(explicit) {
	case "company":
		return ModeCompany
	case "candidate":
		return ModeCandidate
	}
	if override {
		return ModeCompany
	}
	id := strings.ToLower(screenIdentity)
	if strings.Contains(id, "entreprises") || strings.Contains(id, "company_profile") {
		return ModeCompany
	}
	return ModeCandidate
}

// Other returns the opposite side, used by the side-switch control.
func (m Mode) Other() Mode {
	if m == ModeCompany {
		return ModeCandidate
	}
	return ModeCompany
}
