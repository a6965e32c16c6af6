package main

import (
	"github.com/dmitrymomot/htmlkit/core/normalizer"
	"github.com/dmitrymomot/htmlkit/core/sanitizer"
)

type Config struct {
	AppEnv string `env:"APP_ENV" envDefault:"development"`

	// Charset of the input document; anything the WHATWG encoding
	// registry knows (utf-8, windows-1251, shift_jis, ...).
	Charset string `env:"HTMLCLEAN_CHARSET" envDefault:"utf-8"`

	// Pass toggles.
	Sanitize  bool `env:"HTMLCLEAN_SANITIZE" envDefault:"true"`
	Normalize bool `env:"HTMLCLEAN_NORMALIZE" envDefault:"true"`

	// Preset selects the sanitizer baseline. Under "strict" (the
	// default) the env-loaded Sanitizer profile is used as is; its env
	// defaults match StrictProfile, so SANITIZER_* variables override
	// individual fields. Under "permissive" the permissive baseline
	// replaces the loaded profile and only
	// SANITIZER_MAX_VALUE_SCAN_LENGTH carries over. NORMALIZER_*
	// variables always apply.
	Preset string `env:"HTMLCLEAN_PRESET" envDefault:"strict"`

	Sanitizer  sanitizer.Profile
	Normalizer normalizer.Profile
}

// sanitizerProfile resolves the preset baseline; see the Preset field
// for which env-loaded fields survive under each preset.
func (c Config) sanitizerProfile() sanitizer.Profile {
	if c.Preset == "permissive" {
		p := sanitizer.PermissiveProfile()
		p.MaxValueScanLength = c.Sanitizer.MaxValueScanLength
		return p
	}
	return c.Sanitizer
}
