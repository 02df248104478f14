package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/frizinak/goconj/data"
	"github.com/frizinak/goconj/jehle"
)

func exit(err error) {
	if err == nil {
		return
	}

	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

func main() {
	var in, out string
	flag.StringVar(&in, "i", "", "jehle csv export (default: bundled dataset)")
	flag.StringVar(&out, "o", "", "gob file to write")
	flag.Parse()

	if out == "" {
		exit(errors.New("please provide an output file with -o"))
	}

	var verbs jehle.Verbs
	var err error
	if in == "" {
		verbs, err = data.Verbs()
	} else {
		verbs, err = jehle.LoadCSV(in)
	}
	exit(err)

	exit(jehle.StoreGOB(out, verbs))
	fmt.Fprintf(os.Stderr, "stored %d records in %s\n", len(verbs), out)
}
