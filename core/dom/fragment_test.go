package dom_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/htmlkit/core/dom"
)

func TestParseRenderRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{name: "simple paragraph", input: `<p>Hello</p>`},
		{name: "nested markup", input: `<div><b>bold</b> and <i>italic</i></div>`},
		{name: "comment survives", input: `<p>A</p><!--note--><p>B</p>`},
		{name: "custom element", input: `<my-widget data-x="1">w</my-widget>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			root, err := dom.ParseFragment(strings.NewReader(tt.input))
			require.NoError(t, err)

			out, err := dom.RenderFragmentString(root)
			require.NoError(t, err)
			assert.Equal(t, tt.input, out)
		})
	}
}

func TestParseFragment_BodyWrapper(t *testing.T) {
	t.Parallel()

	root, err := dom.ParseFragmentString(`<p>x</p>`)
	require.NoError(t, err)

	// The returned node is the synthetic body, not part of the output.
	assert.Equal(t, "body", dom.TagName(root))

	out, err := dom.RenderFragmentString(root)
	require.NoError(t, err)
	assert.Equal(t, `<p>x</p>`, out)
}

func TestRenderFragment_NilRoot(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	assert.ErrorIs(t, dom.RenderFragment(&sb, nil), dom.ErrNilNode)
}
