package board

import (
	"net/url"
	"strings"
	"unicode"

	"github.com/anatolykoptev/go-kit/strutil"
	xhtml "golang.org/x/net/html"
)

// Escape neutralizes terminal control sequences in API-provided text
// before it is interpolated into rendered output. A hostile title like
// "\x1b[2J" must not clear the reader's screen. Tabs and newlines
// survive, every other control rune (ESC included) is dropped.
func Escape(s string) string {
	if !strings.ContainsFunc(s, isControlRune) {
		return s
	}
	return strings.Map(func(r rune) rune {
		if isControlRune(r) {
			return -1
		}
		return r
	}, s)
}

func isControlRune(r rune) bool {
	if r == '\n' || r == '\t' {
		return false
	}
	return unicode.IsControl(r)
}

// StripTags removes markup from API-provided rich text, keeping the text
// nodes. Tokenizer-based rather than regex so nested and malformed tags
// are handled.
func StripTags(s string) string {
	if !strings.ContainsRune(s, '<') {
		return Escape(strings.TrimSpace(s))
	}
	z := xhtml.NewTokenizer(strings.NewReader(s))
	var sb strings.Builder
	for {
		tt := z.Next()
		if tt == xhtml.ErrorToken {
			break
		}
		if tt == xhtml.TextToken {
			sb.Write(z.Text())
		}
	}
	return Escape(strings.TrimSpace(sb.String()))
}

// TruncateRunes caps s at limit runes, appending suffix if truncated.
// Safe for UTF-8 (accented text, CJK, emoji).
func TruncateRunes(s string, limit int, suffix string) string {
	return strutil.TruncateWith(s, limit, suffix)
}

// TruncateAtWord truncates a string to maxLen runes at a word boundary.
func TruncateAtWord(s string, maxLen int) string {
	return strutil.TruncateAtWord(s, maxLen)
}

// NormalizeUploadPath reduces an uploaded asset URL to its path-only
// form, so display-time URL construction is consistent whether the API
// echoed an absolute or relative URL.
func NormalizeUploadPath(raw string) string {
	if raw == "" {
		return ""
	}
	if u, err := url.Parse(raw); err == nil && u.Scheme != "" {
		return u.Path
	}
	if !strings.HasPrefix(raw, "/") {
		return "/" + raw
	}
	return raw
}

// AssetURL builds a display URL for a stored asset path. Absolute URLs
// pass through unchanged.
func AssetURL(base, path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return strings.TrimRight(base, "/") + path
}
