package sanitizer_test

import (
	"testing"

	"github.com/dmitrymomot/htmlkit/core/sanitizer"
)

func BenchmarkIsKnownAttribute(b *testing.B) {
	attrs := []string{"href", "data-foo", "onclick", "zzz", "aria-label"}

	for _, attr := range attrs {
		b.Run(attr, func(b *testing.B) {
			b.ResetTimer()
			for b.Loop() {
				_ = sanitizer.IsKnownAttribute(attr)
			}
		})
	}
}

func BenchmarkIsDangerousValue(b *testing.B) {
	values := []string{
		"https://example.com/page",
		"javascript:alert(1)",
		"data:text/html;base64,PHNjcmlwdD4=",
		"/relative/path",
	}

	for _, v := range values {
		b.Run(v, func(b *testing.B) {
			b.ResetTimer()
			for b.Loop() {
				_ = sanitizer.IsDangerousValue(v)
			}
		})
	}
}

func BenchmarkClean(b *testing.B) {
	input := `<div id="wrap" onclick="x()"><script>alert(1)</script>` +
		`<a href="javascript:alert(1)" title="t">link</a>` +
		`<my-widget phx-click="go">w</my-widget>` +
		`<!-- note --><p data-k="v" zzz="y">text</p></div>`
	profile := sanitizer.StrictProfile()

	b.ResetTimer()
	for b.Loop() {
		_, _ = sanitizer.Clean(input, profile)
	}
}
