package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/frizinak/goconj/common"
	"github.com/frizinak/goconj/config"
	"github.com/frizinak/goconj/conj"
)

var (
	errMissingVerb = errors.New("¿Qué verbo?")
	errTooMany     = errors.New("un verbo, por favor")
	errUsage       = errors.New("usage")
)

type app struct {
	stdout io.Writer
	stderr io.Writer
	index  func() (*conj.Index, error)
}

func (a *app) logger(verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	w := zerolog.ConsoleWriter{Out: a.stderr, NoColor: true, TimeFormat: time.Kitchen}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

func (a *app) load(db string, log zerolog.Logger) (*conj.Index, error) {
	start := time.Now()
	if db == "" {
		ix, err := a.index()
		if err != nil {
			return nil, err
		}
		log.Debug().
			Str("source", "bundled").
			Int("records", ix.Records()).
			Int("verbs", ix.Len()).
			Dur("took", time.Since(start)).
			Msg("dataset loaded")
		return ix, nil
	}

	verbs, err := common.LoadVerbs(db)
	if err != nil {
		return nil, err
	}
	ix := conj.New(verbs)
	log.Debug().
		Str("source", db).
		Int("records", ix.Records()).
		Int("verbs", ix.Len()).
		Dur("took", time.Since(start)).
		Msg("dataset loaded")
	return ix, nil
}

func (a *app) conjugate(args []string) error {
	var mood, db, cfgFile string
	var color, verbose bool

	flags := flag.NewFlagSet("goconj", flag.ContinueOnError)
	flags.SetOutput(a.stderr)
	flags.Usage = func() {
		fmt.Fprintln(flags.Output(), "usage: goconj [flags] <infinitive>")
		flags.PrintDefaults()
	}
	flags.StringVar(&mood, "m", "", "mood, e.g. Indicativo, Subjuntivo (default Indicativo)")
	flags.StringVar(&db, "db", "", "load a .csv or .gob dataset instead of the bundled one")
	flags.StringVar(&cfgFile, "config", "", "yaml file with defaults for mood, color and db")
	flags.BoolVar(&color, "c", false, "colorize output")
	flags.BoolVar(&verbose, "v", false, "debug logging to stderr")
	parse := func(args []string) error {
		if err := flags.Parse(args); err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return err
			}
			return errUsage
		}
		return nil
	}

	if err := parse(args); err != nil {
		return err
	}
	if flags.NArg() == 0 {
		return errMissingVerb
	}

	// flag stops at the first positional, allow flags after the verb too.
	verb := flags.Arg(0)
	if err := parse(flags.Args()[1:]); err != nil {
		return err
	}
	if flags.NArg() != 0 {
		return fmt.Errorf("%w: %s", errTooMany, strings.Join(flags.Args(), " "))
	}

	log := a.logger(verbose)

	cfg := config.Default()
	if cfgFile != "" {
		var err error
		if cfg, err = config.Load(cfgFile); err != nil {
			return err
		}
		log.Debug().Str("file", cfgFile).Interface("config", cfg).Msg("config loaded")
	}

	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "m":
			if mood != "" {
				cfg.Mood = mood
			}
		case "db":
			cfg.DB = db
		case "c":
			cfg.Color = color
		}
	})

	ix, err := a.load(cfg.DB, log)
	if err != nil {
		return err
	}

	rows, err := ix.Conjugate(verb, cfg.Mood)
	if err != nil {
		return err
	}
	log.Debug().Str("verb", verb).Str("mood", cfg.Mood).Int("rows", len(rows)).Msg("conjugated")

	return common.Render(a.stdout, rows, common.RenderOptions{Color: cfg.Color})
}

func (a *app) run(args []string) int {
	err := a.conjugate(args)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, flag.ErrHelp):
		return 0
	case errors.Is(err, errUsage):
		return 2
	}

	fmt.Fprintln(a.stderr, err)
	return 1
}

func main() {
	a := &app{
		stdout: os.Stdout,
		stderr: os.Stderr,
		index:  common.GetIndex,
	}
	os.Exit(a.run(os.Args[1:]))
}
