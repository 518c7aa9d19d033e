// Command inkan renders a seal image from text.
//
// Configuration comes from INKAN_* environment variables (see
// inkan.LoadConfigFromEnv), overridden by flags.
//
//	inkan -text 田中 -output seal.png
//	inkan -watch -output seal.png    # re-render on every stdin line
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"unicode/utf16"

	"github.com/gogpu/inkan"
)

func main() {
	var (
		text    = flag.String("text", "", "seal text")
		output  = flag.String("output", "seal.png", "output PNG file")
		font    = flag.String("font", "", "TTF/OTF file for the seal face")
		size    = flag.Int("size", 0, "output image size in pixels (default INKAN_DISPLAY_SIZE or 200)")
		maxLen  = flag.Int("max", 0, "maximum number of characters (default INKAN_MAX_CHARACTERS or 12)")
		watch   = flag.Bool("watch", false, "read text from stdin and re-render on every line")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	inkan.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg, err := inkan.LoadConfigFromEnv()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *font != "" {
		cfg.FontPath = *font
	}
	if *size > 0 {
		cfg.DisplaySize = *size
	}
	if *maxLen > 0 {
		cfg.MaxCharacters = *maxLen
	}

	r, err := inkan.New(cfg)
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
	}
	defer func() { _ = r.Close() }()

	if !*watch {
		if err := renderTo(r, *text, *output); err != nil {
			log.Fatalf("Failed to render: %v", err)
		}
		log.Printf("Seal saved to %s (%s)", *output, count(*text, cfg))
		return
	}

	if err := watchInput(r, os.Stdin, *output); err != nil {
		log.Fatalf("Failed to read input: %v", err)
	}
}

// watchInput re-renders the seal for every line read from in.
func watchInput(r *inkan.Renderer, in io.Reader, output string) error {
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		line := sc.Text()
		if err := renderTo(r, line, output); err != nil {
			return err
		}
		log.Printf("%s -> %s", count(line, r.Config()), output)
	}
	return sc.Err()
}

func renderTo(r *inkan.Renderer, s, path string) error {
	f, err := os.Create(path) // #nosec G304 -- output path is provided by the user
	if err != nil {
		return err
	}
	if err := r.EncodePNG(f, s); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// count formats the running character count the way the input field shows it.
func count(s string, cfg inkan.Config) string {
	n := len(utf16.Encode([]rune(inkan.Normalize(s))))
	return fmt.Sprintf("%d/%d", n, cfg.MaxCharacters)
}
