// Package main provides the CLI entry point for ogimage.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/ogimage/pkg/adapters/filesink"
	"github.com/user/ogimage/pkg/adapters/ggrenderer"
	"github.com/user/ogimage/pkg/adapters/logger"
	"github.com/user/ogimage/pkg/adapters/nullsink"
	"github.com/user/ogimage/pkg/adapters/osfilesystem"
	"github.com/user/ogimage/pkg/adapters/photofetch"
	"github.com/user/ogimage/pkg/composer"
	"github.com/user/ogimage/pkg/config"
	"github.com/user/ogimage/pkg/ports"
	"github.com/user/ogimage/pkg/product"
	"github.com/user/ogimage/pkg/summarizer"
)

var version = "dev"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, l10n.T("Interrupted, shutting down..."))
		cancel()
	}()

	app := newApp(osfilesystem.New(), os.Stdout, os.Stderr)
	if err := app.RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, l10n.F("Error: %s", err))
		os.Exit(1)
	}
}

func newApp(fs ports.FileSystem, stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "ogimage",
		Usage:     l10n.T("Generate Open Graph images for product pages"),
		Version:   version,
		Writer:    stdout,
		ErrWriter: stderr,
		// Data URIs contain commas.
		DisableSliceFlagSeparator: true,
		Commands: []*cli.Command{
			generateCommand(fs, stdout),
		},
	}
}

func generateCommand(fs ports.FileSystem, stdout io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "generate",
		Usage: l10n.T("Render a 1200x630 product card"),
		Flags: []cli.Flag{
			// Product
			&cli.StringFlag{Name: "product", Aliases: []string{"p"}, Category: l10n.T("Product"), Usage: l10n.T("Product file (YAML or JSON)")},
			&cli.StringFlag{Name: "title", Aliases: []string{"t"}, Category: l10n.T("Product"), Usage: l10n.T("Product title")},
			&cli.StringFlag{Name: "description", Category: l10n.T("Product"), Usage: l10n.T("Product description")},
			&cli.StringFlag{Name: "price", Category: l10n.T("Product"), Usage: l10n.T("Display price, e.g. $450")},
			&cli.StringFlag{Name: "category", Category: l10n.T("Product"), Usage: l10n.T("Product category")},
			&cli.StringSliceFlag{Name: "image", Aliases: []string{"i"}, Category: l10n.T("Product"), Usage: l10n.T("Photo URL, data URI or path; the first one is drawn")},

			// Output
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Category: l10n.T("Output"), Usage: l10n.T("Output image path")},
			&cli.BoolFlag{Name: "data-uri", Category: l10n.T("Output"), Usage: l10n.T("Print the image as a data URI")},
			&cli.StringFlag{Name: "summary", Category: l10n.T("Output"), Usage: l10n.T("Write a Markdown summary to this path")},
			&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Category: l10n.T("Output"), Usage: l10n.T("Output format (png, jpeg)")},
			&cli.IntFlag{Name: "quality", Aliases: []string{"q"}, Category: l10n.T("Output"), Usage: l10n.T("JPEG quality (1-100)")},
			&cli.Int64Flag{Name: "seed", Category: l10n.T("Output"), Usage: l10n.T("Seed for the decorative dots (0 = random)")},

			// Config
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Category: l10n.T("Config"), Usage: l10n.T("YAML configuration file")},

			// Debug
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Category: l10n.T("Debug"), Usage: l10n.T("Save intermediate images")},
			&cli.StringFlag{Name: "debug-dir", Category: l10n.T("Debug"), Usage: l10n.T("Directory for debug output")},

			// Logging
			&cli.StringFlag{Name: "log-level", Aliases: []string{"l"}, Category: l10n.T("Logging"), Usage: l10n.T("Log level (debug, info, warn, error, quiet)")},
			&cli.StringFlag{Name: "log-file", Category: l10n.T("Logging"), Usage: l10n.T("Also append logs to this rotating file")},
		},
		Action: func(c *cli.Context) error {
			return runGenerate(c, fs, stdout)
		},
	}
}

func runGenerate(c *cli.Context, fs ports.FileSystem, stdout io.Writer) error {
	cfg, err := loadConfig(c, fs)
	if err != nil {
		return err
	}

	log, closeLog := buildLogger(cfg, c.Bool("data-uri"))
	defer closeLog()

	p, err := loadProduct(c, fs)
	if err != nil {
		log.Error("Failed to load product: %s", err)
		return err
	}

	output := c.String("output")
	if output == "" && !c.Bool("data-uri") {
		return errors.New(l10n.T("either --output or --data-uri is required"))
	}

	opts, err := cfg.ToComposerOptions()
	if err != nil {
		return err
	}

	renderer, err := buildRenderer(cfg, fs)
	if err != nil {
		return err
	}

	var sink ports.DebugSink
	if cfg.Debug {
		if err := fs.MkdirAll(cfg.DebugDir); err != nil {
			return fmt.Errorf("create debug directory: %w", err)
		}
		log.Info("Debug output enabled in %s", cfg.DebugDir)
		sink = filesink.New(cfg.DebugDir, fs, renderer)
	} else {
		sink = nullsink.New()
	}

	fetcher := photofetch.New(fs, log, cfg.ToFetcherOptions())
	comp := composer.New(renderer, fetcher, fs, sink, log, opts)

	log.Info("Generating OG image for %s", p.Title)
	result, err := comp.Generate(c.Context, p)
	if err != nil {
		log.Error("Failed to generate image: %s", err)
		return err
	}

	if output != "" {
		if err := comp.Download(result, output); err != nil {
			log.Error("Failed to write output: %s", err)
			return err
		}
		log.Info("Image saved to %s (%d bytes)", output, len(result.Data))
	}

	if c.Bool("data-uri") {
		fmt.Fprintln(stdout, result.DataURI())
	}

	if path := c.String("summary"); path != "" {
		if err := writeSummary(fs, path, p, result, output, opts.Seed); err != nil {
			log.Error("Failed to write output: %s", err)
			return err
		}
		log.Info("Summary written to %s", path)
	}

	log.Info("Generation completed in %d ms", result.Duration.Milliseconds())
	return nil
}

// loadConfig reads --config and applies flag overrides.
func loadConfig(c *cli.Context, fs ports.FileSystem) (config.Config, error) {
	cfg := config.Defaults()
	if path := c.String("config"); path != "" {
		loaded, err := config.LoadFromFile(fs, path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	if c.IsSet("format") {
		cfg.Output.Format = strings.ToLower(c.String("format"))
	}
	if c.IsSet("quality") {
		cfg.Output.Quality = c.Int("quality")
	}
	if c.IsSet("seed") {
		cfg.Decorations.Seed = c.Int64("seed")
	}
	if c.IsSet("debug") {
		cfg.Debug = c.Bool("debug")
	}
	if c.IsSet("debug-dir") {
		cfg.DebugDir = c.String("debug-dir")
	}
	if c.IsSet("log-level") {
		cfg.Log.Level = c.String("log-level")
	}
	if c.IsSet("log-file") {
		cfg.Log.File = c.String("log-file")
	}

	return cfg, cfg.Validate()
}

// loadProduct reads --product, then lets individual flags override its fields.
func loadProduct(c *cli.Context, fs ports.FileSystem) (product.Product, error) {
	var p product.Product
	if path := c.String("product"); path != "" {
		loaded, err := product.LoadFromFile(fs, path)
		if err != nil {
			return p, err
		}
		p = loaded
	}

	if c.IsSet("title") {
		p.Title = c.String("title")
	}
	if c.IsSet("description") {
		p.Description = c.String("description")
	}
	if c.IsSet("price") {
		p.Price = c.String("price")
	}
	if c.IsSet("category") {
		p.Category = c.String("category")
	}
	if c.IsSet("image") {
		p.Images = c.StringSlice("image")
	}

	if strings.TrimSpace(p.Title) == "" {
		return p, errors.New(l10n.T("a product title is required (--title or --product)"))
	}
	return p, nil
}

// buildLogger keeps stdout clean when it carries the data URI.
func buildLogger(cfg config.Config, dataURI bool) (ports.Logger, func()) {
	level := ports.ParseLogLevel(cfg.Log.Level)

	var console ports.Logger
	switch {
	case level == ports.LevelQuiet:
		console = logger.NewNoop()
	case dataURI:
		console = logger.NewWriter(os.Stderr, level)
	default:
		console = logger.NewConsole(level)
	}

	if cfg.Log.File == "" {
		return console, func() {}
	}

	file, closer := logger.NewFile(cfg.Log.File, ports.LevelDebug, logger.FileOptions{
		MaxSizeMB:  10,
		MaxBackups: 3,
		MaxAgeDays: 28,
	})
	return logger.NewMulti(console, file), func() {
		closer.Close()
		if n := file.Dropped(); n > 0 {
			console.Warn("%d log lines could not be written to %s", n, cfg.Log.File)
		}
	}
}

func buildRenderer(cfg config.Config, fs ports.FileSystem) (*ggrenderer.Renderer, error) {
	if cfg.Fonts.Regular == "" && cfg.Fonts.Bold == "" {
		return ggrenderer.New(), nil
	}

	var regular, bold []byte
	var err error
	if cfg.Fonts.Regular != "" {
		if regular, err = fs.ReadFile(cfg.Fonts.Regular); err != nil {
			return nil, fmt.Errorf("read font %s: %w", cfg.Fonts.Regular, err)
		}
	}
	if cfg.Fonts.Bold != "" {
		if bold, err = fs.ReadFile(cfg.Fonts.Bold); err != nil {
			return nil, fmt.Errorf("read font %s: %w", cfg.Fonts.Bold, err)
		}
	}
	return ggrenderer.NewWithFonts(regular, bold)
}

func writeSummary(fs ports.FileSystem, path string, p product.Product, result *composer.Result, output string, seed int64) error {
	summary := summarizer.NewBuilder().
		WithProduct(summarizer.ProductInfo{
			Title:      p.Title,
			Price:      p.Price,
			Category:   p.Category,
			ImageCount: len(p.Images),
		}).
		WithPhoto(result.Photo.Source, result.Photo.Err == nil && result.Photo.Source != "", photoErr(result.Photo.Err)).
		WithOutput(summarizer.OutputInfo{
			Path:     output,
			Format:   result.Format.String(),
			Width:    result.Width,
			Height:   result.Height,
			FileSize: int64(len(result.Data)),
			Seed:     seed,
		}).
		WithDuration(result.Duration).
		Build()

	translate := func(key string) string { return l10n.T(key) }
	writer := summarizer.NewWriter(summarizer.NewMarkdownFormatter(summarizer.WithTranslator(translate)), fs)
	return writer.Write(path, summary)
}

// photoErr hides the expected "no images" outcome from the summary.
func photoErr(err error) error {
	if errors.Is(err, composer.ErrNoPhoto) {
		return nil
	}
	return err
}
