package screens

import (
	"testing"

	"github.com/Hugo-git31/site-hugo-adopte-un-dev/internal/board"
)

func TestResolveMode(t *testing.T) {
	tests := []struct {
		name     string
		explicit string
		override bool
		screen   string
		role     board.Role
		want     Mode
	}{
		{"default", "", false, "", board.RoleUnknown, ModeCandidate},
		{"explicit company", "company", false, "", board.RoleUnknown, ModeCompany},
		{"explicit candidate", "candidate", false, "entreprises", board.RoleUnknown, ModeCandidate},
		{"explicit case-insensitive", "Company", false, "", board.RoleUnknown, ModeCompany},
		{"unknown explicit ignored", "admin", false, "", board.RoleUnknown, ModeCandidate},
		{"override", "", true, "", board.RoleUnknown, ModeCompany},
		{"explicit beats override", "candidate", true, "", board.RoleUnknown, ModeCandidate},
		{"screen entreprises", "", false, "entreprises", board.RoleUnknown, ModeCompany},
		{"screen company_profile", "", false, "company_profile", board.RoleUnknown, ModeCompany},
		{"screen jobs", "", false, "offres", board.RoleUnknown, ModeCandidate},
		{"recruiter pinned", "candidate", false, "", board.RoleRecruiter, ModeCompany},
		{"recruiter pinned over screen", "", false, "offres", board.RoleRecruiter, ModeCompany},
		{"candidate role not pinned", "company", false, "", board.RoleUser, ModeCompany},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveMode(tt.explicit, tt.override, tt.screen, tt.role)
			if got != tt.want {
				t.Errorf("ResolveMode(%q, %v, %q, %q) = %q, want %q",
					tt.explicit, tt.override, tt.screen, tt.role, got, tt.want)
			}
		})
	}
}

func TestModeOther(t *testing.T) {
	if ModeCandidate.Other() != ModeCompany {
		t.Error("candidate.Other() should be company")
	}
	if ModeCompany.Other() != ModeCandidate {
		t.Error("company.Other() should be candidate")
	}
}
