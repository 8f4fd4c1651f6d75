// SPDX-License-Identifier: MIT
//
// seqmatch finds the windows of a JSON item array that satisfy a YAML
// pattern document and prints them as a JSON array of index arrays.
//
//	seqmatch -pattern chunker.yaml -items tokens.json
//	cat tokens.json | SEQMATCH_PATTERN=chunker.yaml seqmatch -keep-embedded
//
// Every flag may also be set through a SEQMATCH_* environment variable or a
// "name value" line in the file named by -config.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/namsral/flag"
	"github.com/pkg/errors"

	"github.com/katalvlaran/seqmatch/logging"
	"github.com/katalvlaran/seqmatch/matcher"
	"github.com/katalvlaran/seqmatch/patternfile"
)

// errNoPattern indicates a run without -pattern.
var errNoPattern = errors.New("no pattern document given (use -pattern or SEQMATCH_PATTERN)")

type config struct {
	itemsPath    string
	patternPath  string
	keepEmbedded bool
	ordering     string
	debug        bool
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run is main without the process globals; it returns the exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var cfg config
	fs := flag.NewFlagSetWithEnvPrefix("seqmatch", "SEQMATCH", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.itemsPath, "items", "", "JSON array of items (default: stdin)")
	fs.StringVar(&cfg.patternPath, "pattern", "", "YAML pattern document")
	fs.BoolVar(&cfg.keepEmbedded, "keep-embedded", false, "keep matches nested in longer matches")
	fs.StringVar(&cfg.ordering, "ordering", "", "numeric or lexical (default: the document's, else numeric)")
	fs.BoolVar(&cfg.debug, "debug", false, "log evaluation phases to stderr")
	fs.String(flag.DefaultConfigFlagname, "", "path to a config file of \"name value\" lines")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}

		return 1
	}

	matches, err := execute(ctx, cfg, stdin, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "seqmatch: %v\n", err)

		return 1
	}

	enc := json.NewEncoder(stdout)
	if err = enc.Encode(matches); err != nil {
		fmt.Fprintf(stderr, "seqmatch: can't write matches: %v\n", err)

		return 1
	}

	return 0
}

func execute(ctx context.Context, cfg config, stdin io.Reader, stderr io.Writer) ([]matcher.Match, error) {
	if cfg.patternPath == "" {
		return nil, errNoPattern
	}
	doc, err := patternfile.LoadFile(cfg.patternPath)
	if err != nil {
		return nil, err
	}

	items, err := readItems(cfg.itemsPath, stdin)
	if err != nil {
		return nil, err
	}

	opts := doc.Options()
	if cfg.keepEmbedded {
		opts = append(opts, matcher.WithDiscardEmbedded(false))
	}
	if cfg.ordering != "" {
		ord, err := matcher.ParseOrdering(cfg.ordering)
		if err != nil {
			return nil, err
		}
		opts = append(opts, matcher.WithOrdering(ord))
	}
	if cfg.debug {
		opts = append(opts, matcher.WithDebug(true), matcher.WithLogger(logging.New(stderr)))
	}

	return matcher.Find(ctx, items, doc.Pattern(), opts...)
}

// readItems decodes a JSON array from path, or from stdin when path is
// empty. Numbers stay json.Number so integers keep their exact text.
func readItems(path string, stdin io.Reader) ([]any, error) {
	r := stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrap(err, "can't open items")
		}
		defer f.Close()
		r = f
	}

	dec := json.NewDecoder(r)
	dec.UseNumber()
	var items []any
	if err := dec.Decode(&items); err != nil {
		return nil, errors.Wrap(err, "can't decode items as a JSON array")
	}

	return items, nil
}
