// Command htmlclean reads an HTML document or fragment from a file or
// stdin, runs the htmlkit sanitize and normalize passes over it, and
// writes the cleaned markup to stdout or a file.
//
// Configuration comes from the environment (see Config); the input path
// is the single positional argument, "-" or absent for stdin.
//
//	htmlclean page.html > clean.html
//	HTMLCLEAN_PRESET=permissive htmlclean -out clean.html widget.html
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"

	"github.com/dmitrymomot/htmlkit/core/config"
	"github.com/dmitrymomot/htmlkit/core/dom"
	"github.com/dmitrymomot/htmlkit/core/logger"
	"github.com/dmitrymomot/htmlkit/core/normalizer"
	"github.com/dmitrymomot/htmlkit/core/sanitizer"
)

func main() {
	outPath := flag.String("out", "", "write output to file instead of stdout")
	flag.Parse()

	var cfg Config
	config.MustLoad(&cfg)

	log := logger.New(logger.WithDevelopment("htmlclean"))
	if cfg.AppEnv == "production" {
		log = logger.New(logger.WithProduction("htmlclean"))
	}

	if err := run(cfg, flag.Arg(0), *outPath, log); err != nil {
		log.Error("clean failed", logger.Error(err))
		os.Exit(1)
	}
}

func run(cfg Config, inPath, outPath string, log *slog.Logger) error {
	start := time.Now()

	in, closeIn, err := openInput(inPath)
	if err != nil {
		return err
	}
	defer closeIn()

	decoded, err := decodeCharset(in, cfg.Charset)
	if err != nil {
		return err
	}

	root, err := dom.ParseFragment(decoded)
	if err != nil {
		return err
	}

	if cfg.Sanitize {
		if err := sanitizer.Sanitize(root, cfg.sanitizerProfile()); err != nil {
			return fmt.Errorf("sanitize: %w", err)
		}
	}
	if cfg.Normalize {
		if err := normalizer.Normalize(root, cfg.Normalizer); err != nil {
			return fmt.Errorf("normalize: %w", err)
		}
	}

	out, closeOut, err := openOutput(outPath)
	if err != nil {
		return err
	}
	if err := dom.RenderFragment(out, root); err != nil {
		closeOut()
		return err
	}
	if err := closeOut(); err != nil {
		return err
	}

	log.Info("clean completed",
		logger.Path(inPath),
		logger.Elapsed(start),
	)
	return nil
}

func openInput(path string) (io.Reader, func(), error) {
	if path == "" || path == "-" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open input: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

func openOutput(path string) (io.Writer, func() error, error) {
	if path == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create output: %w", err)
	}
	return f, f.Close, nil
}

// decodeCharset wraps r with a decoder for the named charset. The name
// is resolved against the WHATWG encoding registry, so HTML-style labels
// like "latin1" or "shift_jis" work.
func decodeCharset(r io.Reader, charset string) (io.Reader, error) {
	enc, err := htmlindex.Get(charset)
	if err != nil {
		return nil, fmt.Errorf("unknown charset %q: %w", charset, err)
	}
	return transform.NewReader(r, enc.NewDecoder()), nil
}
