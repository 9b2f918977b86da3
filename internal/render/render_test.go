package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Hugo-git31/site-hugo-adopte-un-dev/internal/board"
)

func strp(s string) *string { return &s }

// API text is attacker-controlled; a hostile title must not be able to
// clear the screen or retitle the terminal.
const (
	clearSeq = "\x1b[2J"
	oscSeq   = "\x1b]0;pwned\x07"
)

func TestJobListNeutralizesControlSequences(t *testing.T) {
	var buf bytes.Buffer
	v := &JobList{Out: &buf}
	v.Render([]board.JobPosting{{
		Title:       clearSeq + "Senior Go dev",
		CompanyName: "Acme " + clearSeq + "Corp",
		Location:    strp(oscSeq + "Paris"),
		ShortDesc:   strp("<p>backend" + clearSeq + " role</p>"),
	}})
	out := buf.String()
	for _, want := range []string{"Senior Go dev", "Corp", "Paris", "backend"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	for _, hostile := range []string{clearSeq, oscSeq, "\x07"} {
		if strings.Contains(out, hostile) {
			t.Errorf("hostile sequence %q reached output:\n%q", hostile, out)
		}
	}
}

func TestJobPopupNeutralizesControlSequences(t *testing.T) {
	var buf bytes.Buffer
	v := &JobPopup{Out: &buf}
	v.Show(board.JobPosting{
		Title:       "Dev " + clearSeq + "fullstack",
		CompanyName: oscSeq + "Acme",
		FullDesc:    strp("<p>mission" + clearSeq + " longue</p>"),
	})
	out := buf.String()
	if !strings.Contains(out, "fullstack") || !strings.Contains(out, "mission") {
		t.Fatalf("popup lost legitimate text:\n%s", out)
	}
	if strings.Contains(out, clearSeq) || strings.Contains(out, oscSeq) {
		t.Errorf("hostile sequence reached popup output:\n%q", out)
	}
}

func TestProfileListNeutralizesControlSequences(t *testing.T) {
	var buf bytes.Buffer
	v := &ProfileList{Out: &buf}
	v.Render([]board.CandidateProfile{{
		FirstName: clearSeq + "Alice",
		LastName:  "Martin",
		City:      "Lyon" + clearSeq,
		JobTarget: strp(oscSeq + "dev backend"),
		Skills:    strp("Go, SQL" + clearSeq),
	}})
	out := buf.String()
	for _, want := range []string{"Alice", "Martin", "Lyon", "dev backend", "Go, SQL"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, clearSeq) || strings.Contains(out, oscSeq) {
		t.Errorf("hostile sequence reached output:\n%q", out)
	}
}

func TestCompanyPopupNeutralizesControlSequences(t *testing.T) {
	var buf bytes.Buffer
	v := &CompanyPopup{Out: &buf}
	v.Show(board.Company{
		Name:        "Acme" + clearSeq,
		Sector:      strp(oscSeq + "tech"),
		Headcount:   strp("50-" + clearSeq + "100"),
		Website:     strp("https://acme.example" + clearSeq),
		Description: strp("<p>on recrute" + clearSeq + "</p>"),
	})
	out := buf.String()
	for _, want := range []string{"Acme", "tech", "50-", "100", "on recrute"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, clearSeq) || strings.Contains(out, oscSeq) {
		t.Errorf("hostile sequence reached output:\n%q", out)
	}
}

func TestHeadcountLabel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"120", "120"},
		{"12000", "12,000"},
		{"50-100", "50-100"},
	}
	for _, tt := range tests {
		if got := headcountLabel(tt.in); got != tt.want {
			t.Errorf("headcountLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
