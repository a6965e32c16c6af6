package sanitizer

import "strings"

// IsDangerousValue reports whether an attribute value matches one of the
// known script-injection or dangerous-URI heuristics, using the default
// scan cap and full URI validation. http: and https: are always
// permitted.
func IsDangerousValue(value string) bool {
	return scanValue(value, DefaultMaxValueScanLength, true)
}

// isDangerousValue is the profile-aware scan used by the tree walker.
func (p Profile) isDangerousValue(value string) bool {
	return scanValue(value, p.scanLimit(), p.StrictURIValidation)
}

// scanValue applies the detection rules to value. A limit of 0 means
// unbounded; otherwise values longer than limit are treated as not
// dangerous, bounding scan cost on adversarial input.
func scanValue(value string, limit int, strictURI bool) bool {
	// Markup generators occasionally double-wrap values in quotes; a
	// single matching pair is stripped so the prefix rules still apply.
	if len(value) >= 2 && value[0] == '"' && value[len(value)-1] == '"' {
		value = value[1 : len(value)-1]
	}

	if limit > 0 && len(value) > limit {
		return false
	}

	v := strings.ToLower(value)

	if strings.Contains(v, "<script") || strings.Contains(v, "</script") {
		return true
	}
	if strings.Contains(v, "javascript:") || strings.Contains(v, "vbscript:") {
		return true
	}

	// Encoded payloads only. Plain data:text/html and data:text/javascript
	// are neutralized by the parser's own escaping at render time.
	if rest, ok := strings.CutPrefix(v, "data:"); ok && strings.Contains(rest, "base64") {
		return true
	}

	if strictURI {
		if strings.HasPrefix(v, "file:") || strings.HasPrefix(v, "ftp:") || strings.HasPrefix(v, "//") {
			return true
		}
	}

	return false
}
