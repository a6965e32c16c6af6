package sanitizer

// DefaultMaxValueScanLength caps how many bytes of an attribute value the
// threat scanner inspects. Values longer than the cap are treated as not
// dangerous; the cap bounds scan cost, it is not a security guarantee.
const DefaultMaxValueScanLength = 1024

// ScanUnbounded disables the value-scan length cap when assigned to
// Profile.MaxValueScanLength.
const ScanUnbounded = -1

// Profile selects which categories of content a sanitize pass strips.
// It is a plain value, constructed by the caller and immutable for the
// duration of one pass. Fields carry env tags so front ends can load a
// profile straight from the environment.
type Profile struct {
	// SkipComments removes comment nodes from the subtree.
	SkipComments bool `env:"SANITIZER_SKIP_COMMENTS" envDefault:"true"`

	// RemoveScripts removes <script> elements together with their content.
	RemoveScripts bool `env:"SANITIZER_REMOVE_SCRIPTS" envDefault:"true"`

	// RemoveStyles removes <style> elements together with their content.
	RemoveStyles bool `env:"SANITIZER_REMOVE_STYLES" envDefault:"true"`

	// StrictURIValidation extends value scanning beyond script-injection
	// markers to the milder schemes: file:, ftp:, and protocol-relative
	// URLs. javascript:, vbscript:, inline <script> markers, and base64
	// data: payloads are flagged regardless of this setting.
	StrictURIValidation bool `env:"SANITIZER_STRICT_URI_VALIDATION" envDefault:"true"`

	// AllowCustomElements keeps non-standard elements (e.g. <my-widget>)
	// in the tree. Their attributes are still value-scanned but exempt
	// from the known-name whitelist, since custom elements are expected
	// to carry non-standard attribute names.
	AllowCustomElements bool `env:"SANITIZER_ALLOW_CUSTOM_ELEMENTS" envDefault:"false"`

	// MaxValueScanLength bounds the attribute-value scan. Zero means
	// DefaultMaxValueScanLength; ScanUnbounded removes the cap.
	MaxValueScanLength int `env:"SANITIZER_MAX_VALUE_SCAN_LENGTH" envDefault:"1024"`
}

// StrictProfile returns the preset for untrusted input: no custom
// elements, scripts, styles, and comments removed, full URI validation.
func StrictProfile() Profile {
	return Profile{
		SkipComments:        true,
		RemoveScripts:       true,
		RemoveStyles:        true,
		StrictURIValidation: true,
		AllowCustomElements: false,
	}
}

// PermissiveProfile returns the preset for trusted-framework markup:
// custom elements and their attributes survive, styles are kept, scripts
// are still removed.
func PermissiveProfile() Profile {
	return Profile{
		SkipComments:        false,
		RemoveScripts:       true,
		RemoveStyles:        false,
		StrictURIValidation: false,
		AllowCustomElements: true,
	}
}

func (p Profile) scanLimit() int {
	switch {
	case p.MaxValueScanLength == ScanUnbounded:
		return 0
	case p.MaxValueScanLength > 0:
		return p.MaxValueScanLength
	default:
		return DefaultMaxValueScanLength
	}
}
