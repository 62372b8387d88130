// Command ariafetch pulls the portal images of one radiotherapy plan
// from an Aria system into a directory.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/radonc-qa/aria-connector-go/aria"
	"github.com/radonc-qa/aria-connector-go/aria/models"
	"github.com/radonc-qa/aria-connector-go/internals/config"
	"github.com/radonc-qa/aria-connector-go/internals/utils"
)

func main() {
	patientID := flag.String("patient", "", "patient id")
	planLabel := flag.String("plan", "", "rt plan label")
	imageType := flag.String("imagetype", aria.DefaultImageType, "image type of the series to retrieve")
	date := flag.String("date", "", "only keep images acquired on this date (YYYYMMDD or YYYY-MM-DD)")
	includeKV := flag.Bool("include-kv", false, "also keep the kV setup images")
	outDir := flag.String("out", "", "output directory (default: a fresh directory in the system temp dir)")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	if err := run(*patientID, *planLabel, *imageType, *date, *includeKV, *outDir, *debug); err != nil {
		fmt.Fprintf(os.Stderr, "ariafetch: %s\n", err)
		os.Exit(1)
	}
}

func run(patientID, planLabel, imageType, date string, includeKV bool, outDir string, debug bool) error {
	if patientID == "" || planLabel == "" {
		return errors.New("-patient and -plan are required")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if debug {
		cfg.Debug = true
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	opts := models.RetrieveOptions{IncludeKV: includeKV}
	if date != "" {
		opts.SeriesDate, err = utils.ParseDate(date)
		if err != nil {
			return err
		}
	}
	if outDir == "" {
		outDir = filepath.Join(os.TempDir(), "aria-images-"+uuid.New().String())
	}

	a, err := aria.Create(patientID, planLabel, cfg.Local, cfg.Remote, aria.WithLogger(logger))
	if err != nil {
		return err
	}
	acquired, err := a.RetrieveSeries(outDir, imageType, opts)
	if err != nil {
		return err
	}
	if acquired == "" {
		fmt.Println("no images matched")
		return nil
	}
	fmt.Printf("acquired %s\n%s\n", acquired, outDir)
	return nil
}
