// Command postat prints translation statistics for gettext `.po`
// catalogue files.
//
//	postat [-obsolete] file.po [file.po ...]
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/romshark/poreader"
)

func main() {
	if err := run(os.Args, os.Stdout); err != nil {
		fmt.Println("ERR:", err)
		os.Exit(1)
	}
}

var ErrNoInput = errors.New("no input files")

type config struct {
	CountObsolete bool
	Files         []string
}

func parseCLIArgs(osArgs []string) (config, error) {
	var conf config
	fs := flag.NewFlagSet(osArgs[0], flag.ContinueOnError)
	fs.BoolVar(&conf.CountObsolete, "obsolete", false,
		"include obsolete units in the statistics")
	if err := fs.Parse(osArgs[1:]); err != nil {
		return config{}, err
	}
	conf.Files = fs.Args()
	if len(conf.Files) == 0 {
		return config{}, ErrNoInput
	}
	return conf, nil
}

func run(osArgs []string, out io.Writer) error {
	conf, err := parseCLIArgs(osArgs)
	if err != nil {
		return fmt.Errorf("parsing arguments: %w", err)
	}
	for _, file := range conf.Files {
		if err := printStats(out, file, conf.CountObsolete); err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
	}
	return nil
}

type stats struct {
	Units        int
	Translated   int
	NeedsWork    int
	Untranslated int
	Obsolete     int
}

func collectStats(r *poreader.Reader, countObsolete bool) (stats, error) {
	var s stats
	for r.Next() {
		u := r.Unit()
		if u.IsObsolete() {
			s.Obsolete++
			if !countObsolete {
				continue
			}
		}
		s.Units++
		switch u.State() {
		case poreader.StateFinal:
			s.Translated++
		case poreader.StateNeedsWork:
			s.NeedsWork++
		default:
			s.Untranslated++
		}
	}
	return s, r.Err()
}

func printStats(out io.Writer, file string, countObsolete bool) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	r, err := poreader.NewReader(f)
	if err != nil {
		return err
	}
	s, err := collectStats(r, countObsolete)
	if err != nil {
		return err
	}
	lang := "unknown"
	if tag := r.TargetLanguage(); !tag.IsRoot() {
		lang = tag.String()
	}
	fmt.Fprintf(out,
		"%s: language %s, %d units, %d translated, %d need work, "+
			"%d untranslated, %d obsolete\n",
		file, lang, s.Units, s.Translated, s.NeedsWork, s.Untranslated, s.Obsolete)
	return nil
}
