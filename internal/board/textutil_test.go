package board

import "testing"

func TestEscape(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "hello", "hello"},
		{"accents kept", "développeur à Lyon", "développeur à Lyon"},
		{"clear screen", "\x1b[2JGo dev", "[2JGo dev"},
		{"osc title", "\x1b]0;pwned\x07senior", "]0;pwnedsenior"},
		{"carriage return", "fake\rreal", "fakereal"},
		{"newline and tab kept", "a\n\tb", "a\n\tb"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Escape(tt.in); got != tt.want {
				t.Errorf("Escape(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestStripTags(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "no markup here", "no markup here"},
		{"simple", "<p>hello</p>", "hello"},
		{"nested", "<div><b>a</b> <i>b</i></div>", "a b"},
		{"malformed", "<p>unclosed <b>bold", "unclosed bold"},
		{"control in text node", "<p>red\x1b[31malert</p>", "red[31malert"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripTags(tt.in); got != tt.want {
				t.Errorf("StripTags(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeUploadPath(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"absolute url", "http://localhost:8000/uploads/a.png", "/uploads/a.png"},
		{"https url", "https://cdn.example.com/uploads/b.jpg", "/uploads/b.jpg"},
		{"already path", "/uploads/c.png", "/uploads/c.png"},
		{"bare relative", "uploads/d.png", "/uploads/d.png"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeUploadPath(tt.in); got != tt.want {
				t.Errorf("NormalizeUploadPath(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestAssetURL(t *testing.T) {
	tests := []struct {
		name string
		base string
		path string
		want string
	}{
		{"empty path", "http://api", "", ""},
		{"relative path", "http://api", "uploads/a.png", "http://api/uploads/a.png"},
		{"rooted path", "http://api/", "/uploads/a.png", "http://api/uploads/a.png"},
		{"absolute passthrough", "http://api", "https://cdn/x.png", "https://cdn/x.png"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AssetURL(tt.base, tt.path); got != tt.want {
				t.Errorf("AssetURL(%q, %q) = %q, want %q", tt.base, tt.path, got, tt.want)
			}
		})
	}
}

func TestPageTotalPages(t *testing.T) {
	intp := func(n int) *int { return &n }
	tests := []struct {
		name     string
		total    *int
		pageSize int
		want     int
	}{
		{"no total", nil, 9, 0},
		{"exact fit", intp(18), 9, 2},
		{"partial last page", intp(19), 9, 3},
		{"zero total", intp(0), 9, 1},
		{"bad page size", intp(10), 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Page[int]{Total: tt.total}
			if got := p.TotalPages(tt.pageSize); got != tt.want {
				t.Errorf("TotalPages(%d) = %d, want %d", tt.pageSize, got, tt.want)
			}
		})
	}
}
