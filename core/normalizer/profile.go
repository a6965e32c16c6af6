package normalizer

// Profile selects what a normalize pass removes and how text runs are
// joined. Constructed by the caller, immutable for the duration of one
// pass. Fields carry env tags so front ends can load a profile straight
// from the environment.
type Profile struct {
	// RemoveWhitespaceNodes drops text nodes whose trimmed content is
	// empty, outside whitespace-preserving containers.
	RemoveWhitespaceNodes bool `env:"NORMALIZER_REMOVE_WHITESPACE_NODES" envDefault:"true"`

	// TrimText strips leading/trailing whitespace from merged text runs
	// and collapses run boundaries to single spaces.
	TrimText bool `env:"NORMALIZER_TRIM_TEXT" envDefault:"true"`

	// RemoveComments drops comment nodes.
	RemoveComments bool `env:"NORMALIZER_REMOVE_COMMENTS" envDefault:"true"`

	// RemoveProcessingInstructions drops processing instructions. The
	// x/net/html parser surfaces <?...?> as comment nodes whose data
	// starts with a question mark; those are matched here independently
	// of RemoveComments.
	RemoveProcessingInstructions bool `env:"NORMALIZER_REMOVE_PROCESSING_INSTRUCTIONS" envDefault:"true"`

	// PreserveWhitespaceIn lists container tags whose text content is
	// never trimmed or dropped.
	PreserveWhitespaceIn []string `env:"NORMALIZER_PRESERVE_WHITESPACE_IN" envDefault:"pre,code,textarea,script,style" envSeparator:","`
}

// DefaultProfile returns the preset used for presentation cleanup:
// everything enabled, standard preserve set.
func DefaultProfile() Profile {
	return Profile{
		RemoveWhitespaceNodes:        true,
		TrimText:                     true,
		RemoveComments:               true,
		RemoveProcessingInstructions: true,
		PreserveWhitespaceIn:         []string{"pre", "code", "textarea", "script", "style"},
	}
}
