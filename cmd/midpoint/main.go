// Command midpoint prints the begin, end and mid points of the segment
// between two points.
//
//	midpoint [flags] [--] X1 Y1 X2 Y2
//
// Use "--" before the coordinates when the first one is negative.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/hnimtadd/planar"
	"github.com/hnimtadd/planar/logger"
	"github.com/hnimtadd/planar/plane/point"
	"golang.org/x/text/language"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("midpoint", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: midpoint [flags] [--] X1 Y1 X2 Y2")
		fs.PrintDefaults()
	}
	levelName := fs.String("log-level", "info", "log level: debug, info, warn or error")
	typeName := fs.String("log-format", "text", "log format: text or json")
	lang := fs.String("lang", "en", "BCP 47 language tag used to format numbers")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	level, err := logger.ParseLevel(*levelName)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	logType, err := logger.ParseType(*typeName)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	log := logger.New(logger.Options{Buffer: stderr, Level: level, Type: logType})

	tag, err := language.Parse(*lang)
	if err != nil {
		log.Error("invalid language", "lang", *lang, "err", err)
		return exitUsage
	}

	if fs.NArg() != 4 {
		log.Error("expected four coordinates", "got", fs.NArg())
		fs.Usage()
		return exitUsage
	}
	var coords [4]int
	for i, arg := range fs.Args() {
		n, err := strconv.Atoi(arg)
		if err != nil {
			log.Error("invalid coordinate", "arg", arg, "err", err)
			return exitUsage
		}
		coords[i] = n
	}

	p1 := point.New(coords[0], coords[1])
	p2 := point.New(coords[2], coords[3])
	out, err := planar.New(planar.Options{Logger: log, Language: tag}).Describe(&p1, &p2)
	if err != nil {
		log.Error("describe segment", "err", err)
		return exitError
	}
	fmt.Fprint(stdout, out)
	return exitOK
}
