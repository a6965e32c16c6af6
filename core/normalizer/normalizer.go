package normalizer

import (
	"errors"
	"strings"

	"golang.org/x/net/html"

	"github.com/dmitrymomot/htmlkit/core/dom"
)

// textMerge is the transient work item produced for one contiguous run
// of sibling text nodes. The first node of the run becomes the merge
// target; the rest are removed once the walk has finished.
type textMerge struct {
	target  *html.Node
	content string
	remove  []*html.Node
}

// Normalize cleans the text content of the subtree rooted at root
// according to p. Two sub-phases run in order: a removal phase dropping
// comments, processing instructions, and whitespace-only text nodes,
// then a merge phase collapsing runs of adjacent text siblings. Both
// phases collect their work during the walk and mutate afterwards, so a
// node handle is never dereferenced after its removal.
func Normalize(root *html.Node, p Profile) error {
	if root == nil {
		return ErrNilRoot
	}
	if err := removePhase(root, p); err != nil {
		return err
	}
	return mergePhase(root, p)
}

// Clean parses s as a body fragment, normalizes it under p, and renders
// the result.
func Clean(s string, p Profile) (string, error) {
	root, err := dom.ParseFragmentString(s)
	if err != nil {
		return "", err
	}
	if err := Normalize(root, p); err != nil {
		return "", err
	}
	return dom.RenderFragmentString(root)
}

func removePhase(root *html.Node, p Profile) error {
	if !p.RemoveComments && !p.RemoveProcessingInstructions && !p.RemoveWhitespaceNodes {
		return nil
	}

	var doomed []*html.Node
	walk(root, func(n *html.Node) {
		if n == root {
			return
		}
		switch n.Type {
		case html.CommentNode:
			if isProcessingInstruction(n) {
				if p.RemoveProcessingInstructions {
					doomed = append(doomed, n)
				}
			} else if p.RemoveComments {
				doomed = append(doomed, n)
			}
		case html.TextNode:
			if p.RemoveWhitespaceNodes &&
				strings.TrimSpace(n.Data) == "" &&
				!PreservesWhitespace(n, p.PreserveWhitespaceIn) {
				doomed = append(doomed, n)
			}
		}
	})

	for _, n := range doomed {
		if err := detach(n); err != nil {
			return err
		}
	}
	return nil
}

func mergePhase(root *html.Node, p Profile) error {
	var ops []textMerge
	walk(root, func(n *html.Node) {
		if n.Type == html.ElementNode || n == root {
			collectRuns(n, p, &ops)
		}
	})

	for _, op := range ops {
		if err := dom.SetText(op.target, op.content); err != nil {
			return errors.Join(ErrMutationFailed, err)
		}
		for _, n := range op.remove {
			if err := detach(n); err != nil {
				return err
			}
		}
	}
	return nil
}

// collectRuns scans the immediate children of n left to right and emits
// one merge operation per maximal run of two or more text siblings.
func collectRuns(n *html.Node, p Profile, ops *[]textMerge) {
	var run []*html.Node
	flush := func() {
		if len(run) >= 2 {
			*ops = append(*ops, newTextMerge(run, p))
		}
		run = nil
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			run = append(run, c)
			continue
		}
		flush()
	}
	flush()
}

// newTextMerge computes the merged content for one run. In trimming mode
// outside preserving containers, each fragment is trimmed and non-empty
// fragments are joined with single spaces, so a merge boundary never
// produces doubled whitespace. Otherwise the fragments are concatenated
// verbatim.
func newTextMerge(run []*html.Node, p Profile) textMerge {
	var content string
	if p.TrimText && !PreservesWhitespace(run[0], p.PreserveWhitespaceIn) {
		parts := make([]string, 0, len(run))
		for _, n := range run {
			if t := strings.TrimSpace(n.Data); t != "" {
				parts = append(parts, t)
			}
		}
		content = strings.Join(parts, " ")
	} else {
		var sb strings.Builder
		for _, n := range run {
			sb.WriteString(n.Data)
		}
		content = sb.String()
	}
	return textMerge{target: run[0], content: content, remove: run[1:]}
}

// walk visits the subtree rooted at n in document (pre-)order. Visitors
// must not mutate the tree; both phases defer mutation until after the
// walk completes.
func walk(n *html.Node, visit func(*html.Node)) {
	visit(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, visit)
	}
}

// isProcessingInstruction matches the comment-node representation the
// parser uses for <?...?> input.
func isProcessingInstruction(n *html.Node) bool {
	return strings.HasPrefix(n.Data, "?")
}

func detach(n *html.Node) error {
	if err := dom.Detach(n); err != nil {
		return errors.Join(ErrMutationFailed, err)
	}
	return nil
}
