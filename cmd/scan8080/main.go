// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"bufio"
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/tebeka/atexit"

	"github.com/ezrec/i8080/listing"
	"github.com/ezrec/i8080/translate"
)

func main() {
	var verbose bool
	var keepGoing bool
	var where string
	var catalog bool

	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.BoolVar(&keepGoing, "k", false, "Keep going after a bad line")
	flag.StringVar(&where, "w", "", "Starlark expression selecting tokens to list")
	flag.BoolVar(&catalog, "l", false, "List the instruction catalog and exit")

	flag.Parse()

	out := bufio.NewWriter(os.Stdout)
	atexit.Register(func() { out.Flush() })

	if catalog {
		if err := listing.WriteCatalog(out); err != nil {
			atexit.Fatalf("%v: %v", os.Args[0], err)
		}
		atexit.Exit(0)
	}

	filter, err := listing.Compile(where)
	if err != nil {
		atexit.Fatalf("%v: %v", os.Args[0], err)
	}

	paths := flag.Args()
	if len(paths) == 0 {
		paths = []string{"-"}
	}

	if verbose {
		log.Printf("%v: scanning %d files, messages in %v", os.Args[0], len(paths), translate.Language())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	atexit.Register(stop)

	opts := listing.Options{
		Verbose:   verbose,
		KeepGoing: keepGoing,
	}

	files, err := opts.ScanFiles(ctx, paths...)
	if err != nil {
		atexit.Fatal(err)
	}

	failed := false
	for _, file := range files {
		err = listing.Write(out, file, filter)
		if err != nil {
			atexit.Fatal(err)
		}

		if len(file.Errs) > 0 {
			failed = true
			out.Flush()
			err = listing.WriteErrors(os.Stderr, file)
			if err != nil {
				atexit.Fatal(err)
			}
		}
	}

	if failed {
		atexit.Exit(1)
	}

	atexit.Exit(0)
}
