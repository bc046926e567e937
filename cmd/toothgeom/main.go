// Command toothgeom draws a single tooth surface.
//
// It prints the outline as SVG path data, renders it with gg, or writes its
// coverage mask:
//
//	toothgeom -tooth 36 -view occlusal -surface "mesio-buccal cusp"
//	toothgeom -tooth 11 -format png -color "#F59E0B" -out 11.png
//	toothgeom -tooth 11 -view top -surface buccal -format mask -out mask.png
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/png"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/gogpu/gg"

	"github.com/dentchart/toothgeom"
	"github.com/dentchart/toothgeom/chart"
	"github.com/dentchart/toothgeom/config"
	"github.com/dentchart/toothgeom/raster"
)

var errNothingToDraw = errors.New("nothing to draw")

type options struct {
	tooth     string
	view      string
	surface   string
	width     int
	height    int
	config    string
	format    string
	out       string
	color     string
	precision int
	dump      bool
	verbose   bool
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	var o options
	fs := flag.NewFlagSet("toothgeom", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.tooth, "tooth", "11", "ISO 3950 tooth number")
	fs.StringVar(&o.view, "view", "frontal", "view: frontal, lingual, top, occlusal, ...")
	fs.StringVar(&o.surface, "surface", string(toothgeom.SurfaceWhole), "surface name or letter code")
	fs.IntVar(&o.width, "width", 0, "target width; 0 uses the reference frame")
	fs.IntVar(&o.height, "height", 0, "target height; 0 uses the reference frame")
	fs.StringVar(&o.config, "config", "", "YAML config file")
	fs.StringVar(&o.format, "format", "svg", "output format: svg, png or mask")
	fs.StringVar(&o.out, "out", "-", "output file, - for stdout")
	fs.StringVar(&o.color, "color", chart.DecayColor, "fill color for png output")
	fs.IntVar(&o.precision, "precision", 3, "maximum decimals of svg output, 0 for exact")
	fs.BoolVar(&o.dump, "dump", false, "dump the path elements to stderr")
	fs.BoolVar(&o.verbose, "v", false, "log debug output to stderr")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	switch o.format {
	case "svg", "png", "mask":
	default:
		return nil, fmt.Errorf("unknown format %q", o.format)
	}
	return &o, nil
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("toothgeom: ")
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	o, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	if o.verbose {
		l := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		toothgeom.SetLogger(l)
		gg.SetLogger(l)
	}

	cfg := config.Default()
	if o.config != "" {
		if cfg, err = config.Load(o.config); err != nil {
			return err
		}
	}

	tooth, err := toothgeom.ParseToothNumber(o.tooth)
	if err != nil {
		return err
	}
	surface := toothgeom.ParseSurface(o.surface)
	gen := toothgeom.GeneratorFor(tooth.Category(), toothgeom.NormalizeView(o.view))
	if !gen.Supports(surface) {
		return fmt.Errorf("%w: %s has no %q surface (%s): want one of %q",
			errNothingToDraw, tooth, surface, gen.Name, gen.Surfaces())
	}

	w, h := o.width, o.height
	if w <= 0 {
		w = int(gen.Frame.Width)
	}
	if h <= 0 {
		h = int(gen.Frame.Height)
	}
	size := toothgeom.Sz(float64(w), float64(h))

	engine := cfg.Engine()
	p := engine.SurfacePath(tooth, o.view, surface, size)
	if o.dump {
		spew.Fdump(stderr, p)
	}

	write := func(out io.Writer) error {
		switch o.format {
		case "svg":
			if err := p.WriteSVG(out, toothgeom.SVGOptions{MaxPrecision: o.precision}); err != nil {
				return fmt.Errorf("failed to write svg: %w", err)
			}
			_, err := fmt.Fprintln(out)
			return err
		case "png":
			return renderPNG(out, cfg, size, tooth, o.view, surface, o.color)
		default:
			m, err := raster.Mask(engine, tooth, o.view, surface, w, h)
			if err != nil {
				return err
			}
			return png.Encode(out, m)
		}
	}
	if o.out == "-" {
		return write(stdout)
	}
	f, err := os.Create(o.out)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	return writeAndClose(f, write)
}

// writeAndClose calls write with wc and closes it. An error from Close is
// returned only if write succeeded.
func writeAndClose(wc io.WriteCloser, write func(io.Writer) error) (err error) {
	defer func() {
		if cerr := wc.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output: %w", cerr)
		}
	}()
	return write(wc)
}

func renderPNG(w io.Writer, cfg *config.Config, size toothgeom.Size, tooth toothgeom.ToothNumber, view string, surface toothgeom.Surface, color string) (err error) {
	dc := gg.NewContext(int(size.Width), int(size.Height))
	defer func() {
		if cerr := dc.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to release context: %w", cerr)
		}
	}()

	r := chart.NewRenderer(cfg, size)
	err = r.DrawTooth(dc, toothgeom.Pt(0, 0), tooth, view, []chart.Condition{{Surface: surface, Color: color}})
	if err != nil {
		return err
	}
	return dc.EncodePNG(w)
}
