// wayleave-classify is a one-shot analysis tool: it classifies a single
// PDF and, for wayleave documents, reports the dialect. Useful for
// checking how a troublesome file scores without starting the server.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/darlands/wayleave-scanner/internal/classify"
	"github.com/darlands/wayleave-scanner/internal/config"
	"github.com/darlands/wayleave-scanner/internal/wayleave"
)

func main() {
	verbose := pflag.BoolP("verbose", "v", false, "print scoring details to stderr")
	maxFileSize := pflag.Int64("maxfilesize", config.DefaultMaxFileSize, "maximum PDF file size in bytes")
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <pdf-path>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Classify a single PDF as wayleave document, site map, generated letter, or unknown.\n\n")
		pflag.PrintDefaults()
	}
	pflag.Parse()

	if pflag.NArg() != 1 {
		pflag.Usage()
		os.Exit(2)
	}
	path := pflag.Arg(0)

	if _, err := os.Stat(path); err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot access %s: %v\n", path, err)
		os.Exit(1)
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(zerolog.WarnLevel)
	if *verbose {
		logger = logger.Level(zerolog.DebugLevel)
	}

	service := wayleave.NewService(*maxFileSize, logger)

	result, err := service.ClassifyPDF(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s: %s", result.Path, result.TypeName)
	if result.Type == classify.TypeDocument && result.WayleaveType != classify.WayleaveUnknown {
		fmt.Printf(" (%s wayleave)", result.Dialect)
	}
	fmt.Println()
}
