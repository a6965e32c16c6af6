package sanitizer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/htmlkit/core/sanitizer"
)

func TestIsDangerousValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		value    string
		expected bool
	}{
		{name: "plain text", value: "hello world", expected: false},
		{name: "http url", value: "http://example.com/page", expected: false},
		{name: "https url", value: "https://example.com/page", expected: false},
		{name: "relative url", value: "/images/logo.png", expected: false},
		{name: "empty value", value: "", expected: false},

		{name: "javascript scheme", value: "javascript:alert(1)", expected: true},
		{name: "javascript scheme uppercase", value: "JavaScript:alert(1)", expected: true},
		{name: "javascript scheme embedded", value: "xxjavascript:alert(1)", expected: true},
		{name: "vbscript scheme", value: "vbscript:msgbox(1)", expected: true},
		{name: "script open tag", value: `<script>alert(1)</script>`, expected: true},
		{name: "script close tag only", value: `</script><script src=x>`, expected: true},

		{name: "data base64 payload", value: "data:text/html;base64,PHNjcmlwdD4=", expected: true},
		{name: "plain data html is tolerated", value: "data:text/html,<b>x</b>", expected: false},
		{name: "plain data javascript is tolerated", value: "data:text/javascript,void(0)", expected: false},
		{name: "base64 without data prefix", value: "base64,AAAA", expected: false},

		{name: "file scheme", value: "file:///etc/passwd", expected: true},
		{name: "ftp scheme", value: "ftp://host/file", expected: true},
		{name: "protocol relative", value: "//evil.example.com/x.js", expected: true},

		{name: "quoted dangerous value", value: `"javascript:alert(1)"`, expected: true},
		{name: "quoted protocol relative", value: `"//evil.example.com"`, expected: true},
		{name: "quoted safe value", value: `"https://example.com"`, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.IsDangerousValue(tt.value))
		})
	}
}

func TestIsDangerousValue_ScanCap(t *testing.T) {
	t.Parallel()

	// A dangerous marker pushed past the scan cap is treated as not
	// dangerous. Bounded-cost policy, not a security guarantee.
	padded := strings.Repeat("a", sanitizer.DefaultMaxValueScanLength) + "javascript:alert(1)"
	assert.False(t, sanitizer.IsDangerousValue(padded))

	// The same payload inside the cap is flagged.
	inside := strings.Repeat("a", 100) + "javascript:alert(1)"
	assert.True(t, sanitizer.IsDangerousValue(inside))
}

func TestProfileScanCap(t *testing.T) {
	t.Parallel()

	payload := strings.Repeat("a", 2000) + "javascript:alert(1)"
	attr := `<a href="` + payload + `">x</a>`

	t.Run("default cap lets long payload through", func(t *testing.T) {
		t.Parallel()
		out, err := sanitizer.Clean(attr, sanitizer.StrictProfile())
		assert.NoError(t, err)
		assert.Contains(t, out, "href")
	})

	t.Run("unbounded scan flags it", func(t *testing.T) {
		t.Parallel()
		p := sanitizer.StrictProfile()
		p.MaxValueScanLength = sanitizer.ScanUnbounded
		out, err := sanitizer.Clean(attr, p)
		assert.NoError(t, err)
		assert.NotContains(t, out, "href")
	})

	t.Run("raised cap flags it", func(t *testing.T) {
		t.Parallel()
		p := sanitizer.StrictProfile()
		p.MaxValueScanLength = 4096
		out, err := sanitizer.Clean(attr, p)
		assert.NoError(t, err)
		assert.NotContains(t, out, "href")
	})
}
