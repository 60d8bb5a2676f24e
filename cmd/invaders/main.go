package main

import (
	"errors"
	"fmt"
	"image/color"
	"io/ioutil"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bodgit/invaders"
	"github.com/bodgit/invaders/layout"
	"github.com/bodgit/invaders/palette"
	"github.com/bodgit/invaders/raster"
	"github.com/muesli/termenv"
	"github.com/urfave/cli/v2"
)

const (
	defaultOutput = "invader.png"

	// Mixed into the seed for the colour source
	colorSeed = 0x5deece66d
)

type format int

const (
	formatText format = iota
	formatANSI
	formatPNG
)

var (
	errFormat   = errors.New("exactly one of --text, --ansi or --png is required")
	errConflict = errors.New("conflicting options")
	errRange    = errors.New("value out of range")
)

type params struct {
	format   format
	geometry layout.Geometry
	raster   raster.Options
	palette  color.Palette
	seed     *int64
	output   string
	verbose  bool
}

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newApp() *cli.App {
	app := cli.NewApp()

	app.Name = "invaders"
	app.Usage = "Generate symmetric space invader sprites"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "text",
			Aliases: []string{"t"},
			Usage:   "generate as text",
		},
		&cli.BoolFlag{
			Name:    "ansi",
			Aliases: []string{"a"},
			Usage:   "generate as coloured text",
		},
		&cli.BoolFlag{
			Name:    "png",
			Aliases: []string{"p"},
			Usage:   "generate as PNG",
		},
		&cli.IntFlag{
			Name:  "x",
			Value: layout.DefaultTileWidth,
			Usage: "number of un-mirrored, un-scaled pixels on the X axis of a tile",
		},
		&cli.IntFlag{
			Name:  "y",
			Value: layout.DefaultTileHeight,
			Usage: "number of un-scaled pixels on the Y axis of a tile",
		},
		&cli.IntFlag{
			Name:    "scale",
			Aliases: []string{"s"},
			Value:   1,
			Usage:   "scaling factor for a tile",
		},
		&cli.IntFlag{
			Name:    "wide",
			Aliases: []string{"w"},
			Value:   1,
			Usage:   "number of tiles wide",
		},
		&cli.IntFlag{
			Name:    "high",
			Aliases: []string{"H"},
			Value:   1,
			Usage:   "number of tiles high",
		},
		&cli.IntFlag{
			Name:  "px-width",
			Usage: "fit as many tiles as possible into this many pixels across",
		},
		&cli.IntFlag{
			Name:  "px-height",
			Usage: "fit as many tiles as possible into this many pixels down",
		},
		&cli.IntFlag{
			Name:    "border",
			Aliases: []string{"b"},
			Usage:   "border width around each tile",
		},
		&cli.Float64Flag{
			Name:    "blur",
			Aliases: []string{"g"},
			Value:   raster.DefaultBlur,
			Usage:   "Gaussian blur sigma, PNG only",
		},
		&cli.IntFlag{
			Name:    "colors",
			Aliases: []string{"c"},
			Usage:   "reduce the PNG to this many colors, 0 for true color",
		},
		&cli.StringFlag{
			Name:  "palette",
			Value: "classic",
			Usage: "palette to paint with (" + strings.Join(palette.Names(), ", ") + ")",
		},
		&cli.Int64Flag{
			Name:    "seed",
			EnvVars: []string{"INVADERS_SEED"},
			Usage:   "random seed for tile generation",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Value:   defaultOutput,
			Usage:   "file to save the PNG to",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	return app
}

func outputFormat(c *cli.Context) (format, error) {
	var formats []format
	if c.Bool("text") {
		formats = append(formats, formatText)
	}
	if c.Bool("ansi") {
		formats = append(formats, formatANSI)
	}
	if c.Bool("png") {
		formats = append(formats, formatPNG)
	}
	if len(formats) != 1 {
		return 0, errFormat
	}
	return formats[0], nil
}

func atLeast(c *cli.Context, name string, min int) (int, error) {
	v := c.Int(name)
	if v < min {
		return 0, fmt.Errorf("%w: --%s %d is less than %d", errRange, name, v, min)
	}
	return v, nil
}

func parseParams(c *cli.Context) (*params, error) {
	f, err := outputFormat(c)
	if err != nil {
		return nil, err
	}

	p := &params{
		format:  f,
		output:  c.String("output"),
		verbose: c.Bool("verbose"),
	}

	for _, pair := range [][2]string{{"wide", "px-width"}, {"high", "px-height"}} {
		if c.IsSet(pair[0]) && c.IsSet(pair[1]) {
			return nil, fmt.Errorf("%w: --%s and --%s", errConflict, pair[0], pair[1])
		}
	}

	if f != formatPNG {
		for _, name := range []string{"blur", "colors", "output"} {
			if c.IsSet(name) {
				return nil, fmt.Errorf("%w: --%s is only valid with --png", errConflict, name)
			}
		}
	}

	g := layout.Geometry{}
	for _, field := range []struct {
		name string
		min  int
		dst  *int
	}{
		{"x", 1, &g.TileWidth},
		{"y", 1, &g.TileHeight},
		{"scale", 1, &g.Scale},
		{"wide", 1, &g.TilesWide},
		{"high", 1, &g.TilesHigh},
		{"border", 0, &g.Border},
	} {
		if *field.dst, err = atLeast(c, field.name, field.min); err != nil {
			return nil, err
		}
	}

	// Check early so the pixel budget isn't reported instead
	if err := layout.CheckBits(g.TileWidth, g.TileHeight); err != nil {
		return nil, err
	}

	var width, height int
	if c.IsSet("px-width") {
		if width, err = atLeast(c, "px-width", 1); err != nil {
			return nil, err
		}
	}
	if c.IsSet("px-height") {
		if height, err = atLeast(c, "px-height", 1); err != nil {
			return nil, err
		}
	}
	if p.geometry, err = layout.Fit(g, width, height); err != nil {
		return nil, err
	}
	if err := p.geometry.Validate(); err != nil {
		return nil, err
	}

	if f == formatPNG {
		p.raster = raster.Options{
			Blur:   float32(c.Float64("blur")),
			Colors: c.Int("colors"),
		}
		if err := p.raster.Validate(); err != nil {
			return nil, err
		}
	}

	if p.palette, err = palette.ByName(c.String("palette")); err != nil {
		return nil, err
	}

	if c.IsSet("seed") {
		seed := c.Int64("seed")
		p.seed = &seed
	}

	return p, nil
}

// sources returns the sprite value and colour sources. Both are derived
// from seed, or the current time if there isn't one.
func sources(seed *int64) (*rand.Rand, *rand.Rand) {
	s := time.Now().UnixNano()
	if seed != nil {
		s = *seed
	}
	return rand.New(rand.NewSource(s)), rand.New(rand.NewSource(s ^ colorSeed))
}

func generate(c *cli.Context, p *params) error {
	logger := log.New(ioutil.Discard, "", 0)
	if p.verbose {
		logger.SetOutput(os.Stderr)
	}

	values, colors := sources(p.seed)

	g, err := invaders.New(p.geometry, values, colors, logger, invaders.WithPalette(p.palette))
	if err != nil {
		return err
	}

	switch p.format {
	case formatText:
		fmt.Fprint(c.App.Writer, g.Text())
	case formatANSI:
		fmt.Fprint(c.App.Writer, g.ANSI(termenv.EnvColorProfile()))
	case formatPNG:
		file, err := filepath.Abs(p.output)
		if err != nil {
			return err
		}
		if err := raster.Save(file, g.Image(), p.raster); err != nil {
			return err
		}
		fmt.Fprintf(c.App.Writer, "Saved to %s\n", file)
	}

	return nil
}

func main() {
	app := newApp()

	app.Action = func(c *cli.Context) error {
		p, err := parseParams(c)
		if err != nil {
			cli.ShowAppHelp(c)
			return cli.NewExitError(err, 1)
		}

		if err := generate(c, p); err != nil {
			return cli.NewExitError(err, 1)
		}

		return nil
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
