package session

import (
	"path/filepath"
	"testing"

	"github.com/Hugo-git31/site-hugo-adopte-un-dev/internal/board"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "session.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStoreGetSetDelete(t *testing.T) {
	s := openTestStore(t)

	if got := s.Get("missing"); got != "" {
		t.Errorf("Get(missing) = %q, want empty", got)
	}
	if err := s.Set("k", "v1"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if got := s.Get("k"); got != "v1" {
		t.Errorf("Get = %q, want v1", got)
	}
	if err := s.Set("k", "v2"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	if got := s.Get("k"); got != "v2" {
		t.Errorf("Get after overwrite = %q, want v2", got)
	}
	if err := s.Delete("k"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if got := s.Get("k"); got != "" {
		t.Errorf("Get after delete = %q, want empty", got)
	}
}

func TestStoreTypedAccessors(t *testing.T) {
	s := openTestStore(t)

	if s.Token() != "" {
		t.Error("fresh store should have no token")
	}
	if err := s.SetToken("tok-123"); err != nil {
		t.Fatalf("set token: %v", err)
	}
	if got := s.Token(); got != "tok-123" {
		t.Errorf("Token = %q", got)
	}

	if got := s.Role(); got != board.RoleUnknown {
		t.Errorf("fresh role = %q, want unknown", got)
	}
	if err := s.SetRole(board.RoleRecruiter); err != nil {
		t.Fatalf("set role: %v", err)
	}
	if got := s.Role(); got != board.RoleRecruiter {
		t.Errorf("Role = %q, want recruiter", got)
	}

	if err := s.SetAvatarPath("/uploads/a.png"); err != nil {
		t.Fatalf("set avatar: %v", err)
	}
	if got := s.AvatarPath(); got != "/uploads/a.png" {
		t.Errorf("AvatarPath = %q", got)
	}
}

func TestStoreClear(t *testing.T) {
	s := openTestStore(t)
	if err := s.SetToken("tok"); err != nil {
		t.Fatal(err)
	}
	if err := s.SetRole(board.RoleUser); err != nil {
		t.Fatal(err)
	}
	if err := s.SetAvatarPath("/uploads/a.png"); err != nil {
		t.Fatal(err)
	}

	if err := s.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if s.Token() != "" || s.Role() != board.RoleUnknown || s.AvatarPath() != "" {
		t.Error("clear left session data behind")
	}
}

func TestStorePersistsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.db")
	s1, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := s1.SetToken("persisted"); err != nil {
		t.Fatal(err)
	}
	s1.Close()

	s2, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer s2.Close()
	if got := s2.Token(); got != "persisted" {
		t.Errorf("Token after reopen = %q, want persisted", got)
	}
}
