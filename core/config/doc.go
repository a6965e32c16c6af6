// Package config provides type-safe environment variable loading with
// caching using Go generics. Each configuration type is loaded once and
// cached for subsequent calls.
//
// The package automatically loads .env files on first use and uses the
// caarlos0/env library for parsing environment variables into struct
// fields.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/htmlkit/core/config"
//
//	type CleanConfig struct {
//		InputPath string `env:"HTMLCLEAN_INPUT"`
//		Charset   string `env:"HTMLCLEAN_CHARSET" envDefault:"utf-8"`
//	}
//
//	func main() {
//		var cfg CleanConfig
//
//		// Load with error handling
//		if err := config.Load(&cfg); err != nil {
//			log.Fatal(err)
//		}
//
//		// Or panic on failure (useful for startup)
//		config.MustLoad(&cfg)
//	}
//
// # Caching Behavior
//
// Each configuration type is loaded only once per process lifetime;
// repeated loads of the same type return the cached value. Different
// types are cached independently.
package config
