// Command life advances a seed file through a number of generations and
// writes the surviving cells as "<row>, <col>" lines.
//
//	life -in seed.txt -out final.txt -generations 10
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"sparse-life/pkg/sims/life"
)

// config holds the command-line parameters.
type config struct {
	In           string
	Out          string
	Generations  int
	Order        string
	Neighborhood string
	Strict       bool
	Verbose      bool
}

func (c *config) bind(fs *flag.FlagSet) {
	fs.StringVar(&c.In, "in", c.In, "seed file, one \"row col\" pair per line (- for stdin)")
	fs.StringVar(&c.Out, "out", c.Out, "output file (- for stdout)")
	fs.IntVar(&c.Generations, "generations", c.Generations, "number of generations to run")
	fs.StringVar(&c.Order, "order", c.Order, "output order: row or column")
	fs.StringVar(&c.Neighborhood, "neighborhood", c.Neighborhood, "neighbour set: orthogonal or moore")
	fs.BoolVar(&c.Strict, "strict", c.Strict, "validate grid invariants after every pass")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "log bounds and per-generation population")
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("life: ")
	if err := run(os.Args[1:], os.Stdin, os.Stdout, log.Default()); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer, logger *log.Logger) error {
	cfg := config{Out: "-", Order: "row", Neighborhood: "orthogonal"}
	fs := flag.NewFlagSet("life", flag.ContinueOnError)
	fs.SetOutput(logger.Writer())
	cfg.bind(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if cfg.In == "" {
		return errors.New("missing -in seed file")
	}
	if cfg.Generations < 0 {
		return fmt.Errorf("%w: got %d", life.ErrNegativeSteps, cfg.Generations)
	}
	if cfg.Order != "row" && cfg.Order != "column" {
		return fmt.Errorf("unknown -order %q (want row or column)", cfg.Order)
	}
	hood, err := life.ParseNeighborhood(cfg.Neighborhood)
	if err != nil {
		return err
	}

	in := stdin
	if cfg.In != "-" {
		f, err := os.Open(cfg.In)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	engine, err := life.Load(in, life.WithNeighborhood(hood), life.WithStrict(cfg.Strict))
	if err != nil {
		return fmt.Errorf("%s: %w", cfg.In, err)
	}

	if cfg.Verbose {
		b := engine.Bounds()
		logger.Printf("window %dx%d, %s neighbours, %d live", b.Height, b.Width, hood, engine.Population())
	}
	for i := 1; i <= cfg.Generations; i++ {
		engine.Step()
		if cfg.Verbose {
			logger.Printf("generation %d: %d live, %d nodes", i, engine.Population(), engine.Nodes())
		}
	}

	cells := engine.Live()
	if cfg.Order == "column" {
		cells = engine.LiveByColumn()
	}
	if cfg.Out == "-" {
		return life.WriteCells(stdout, cells)
	}
	f, err := os.Create(cfg.Out)
	if err != nil {
		return err
	}
	if err := life.WriteCells(f, cells); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
