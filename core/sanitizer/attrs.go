package sanitizer

import "strings"

// knownAttrs is the static HTML specification table: attribute names that
// are recognized as benign on standard elements. Built once at package
// init and never mutated afterwards.
var knownAttrs = func() map[string]struct{} {
	names := []string{
		// Global attributes
		"accesskey", "autocapitalize", "autofocus", "class",
		"contenteditable", "dir", "draggable", "enterkeyhint", "hidden",
		"id", "inert", "inputmode", "is", "itemid", "itemprop", "itemref",
		"itemscope", "itemtype", "lang", "nonce", "part", "popover",
		"role", "slot", "spellcheck", "style", "tabindex", "title",
		"translate",

		// Forms and inputs
		"accept", "accept-charset", "action", "autocomplete", "capture",
		"checked", "cols", "dirname", "disabled", "enctype", "for",
		"form", "formaction", "formenctype", "formmethod",
		"formnovalidate", "formtarget", "high", "list", "low", "max",
		"maxlength", "method", "min", "minlength", "multiple", "name",
		"novalidate", "optimum", "pattern", "placeholder", "readonly",
		"required", "rows", "selected", "size", "step", "type", "value",
		"wrap",

		// Links, media, and embedding
		"allow", "allowfullscreen", "alt", "as", "async", "charset",
		"cite", "content", "controls", "coords", "crossorigin",
		"datetime", "decoding", "default", "defer", "download",
		"fetchpriority", "height", "href", "hreflang", "http-equiv",
		"integrity", "ismap", "kind", "label", "loading", "loop",
		"media", "muted", "open", "ping", "playsinline", "poster",
		"preload", "referrerpolicy", "rel", "rev", "reversed", "sandbox",
		"scope", "shape", "sizes", "span", "src", "srcdoc", "srclang",
		"srcset", "start", "target", "usemap", "width",

		// Tables
		"abbr", "align", "axis", "bgcolor", "border", "cellpadding",
		"cellspacing", "char", "charoff", "colspan", "headers",
		"rowspan", "summary", "valign",
	}
	m := make(map[string]struct{}, len(names))
	for _, n := range names {
		m[n] = struct{}{}
	}
	return m
}()

// knownAttrPrefixes whitelists dynamic attribute families: ARIA, data-*,
// and the binding conventions of the common frontend frameworks
// (Phoenix LiveView, Alpine, Vue, HTMX).
var knownAttrPrefixes = []string{
	"aria-",
	"data-",
	"phx-value-",
	"x-on:",
	"x-bind:",
	"v-on:",
	"v-bind:",
	"hx-",
}

// IsKnownAttribute reports whether name is a recognized, benign HTML,
// ARIA, or framework attribute. Inline event handlers (on*) are never
// known, regardless of any other rule. The function is pure and total:
// same input, same output, no failure mode beyond "not known".
func IsKnownAttribute(name string) bool {
	name = strings.ToLower(name)

	// Event handlers cannot be whitelisted by any other rule. Their
	// names never collide with the prefixes below, so checking first is
	// equivalent to checking last.
	if len(name) > 2 && strings.HasPrefix(name, "on") {
		return false
	}

	if _, ok := knownAttrs[name]; ok {
		return true
	}
	for _, prefix := range knownAttrPrefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}
