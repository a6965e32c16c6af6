package normalizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/dmitrymomot/htmlkit/core/dom"
	"github.com/dmitrymomot/htmlkit/core/normalizer"
)

func TestPreservesWhitespace(t *testing.T) {
	t.Parallel()

	preserve := normalizer.DefaultProfile().PreserveWhitespaceIn

	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "direct pre parent", input: `<pre>text</pre>`, expected: true},
		{name: "direct code parent", input: `<code>text</code>`, expected: true},
		{name: "direct textarea parent", input: `<textarea>text</textarea>`, expected: true},
		{name: "plain div parent", input: `<div>text</div>`, expected: false},
		{name: "plain paragraph parent", input: `<p>text</p>`, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			root, err := dom.ParseFragmentString(tt.input)
			require.NoError(t, err)

			text := firstTextNode(root)
			require.NotNil(t, text)
			assert.Equal(t, tt.expected, normalizer.PreservesWhitespace(text, preserve))
		})
	}

	t.Run("preserving ancestor above intermediate element", func(t *testing.T) {
		t.Parallel()
		root, err := dom.ParseFragmentString(`<pre><span>text</span></pre>`)
		require.NoError(t, err)

		text := firstTextNode(root)
		require.NotNil(t, text)
		assert.True(t, normalizer.PreservesWhitespace(text, preserve))
	})

	t.Run("empty preserve set never matches", func(t *testing.T) {
		t.Parallel()
		root, err := dom.ParseFragmentString(`<pre>text</pre>`)
		require.NoError(t, err)

		text := firstTextNode(root)
		require.NotNil(t, text)
		assert.False(t, normalizer.PreservesWhitespace(text, nil))
	})
}

func firstTextNode(n *html.Node) *html.Node {
	if n.Type == html.TextNode {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := firstTextNode(c); found != nil {
			return found
		}
	}
	return nil
}
