package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/handiism/met-downloader/internal/cache"
	"github.com/handiism/met-downloader/internal/config"
	"github.com/handiism/met-downloader/internal/console"
	"github.com/handiism/met-downloader/internal/fetch"
	"github.com/handiism/met-downloader/internal/http"
	ioutils "github.com/handiism/met-downloader/internal/io"
	"github.com/handiism/met-downloader/internal/met"
	"github.com/handiism/met-downloader/internal/report"
	"github.com/spf13/afero"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, settings, err := config.ParseArgs(args, stderr, config.LoadOrDefault)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}

	printer := console.NewPrinter(stdout, stderr, opts.Verbose)
	if err != nil {
		printer.Errorf("Failed to validate arguments: %v", err)
		return 1
	}

	// Handle interrupts
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			fmt.Fprintln(stdout, "\nInterrupted, cancelling...")
			cancel()
		case <-ctx.Done():
		}
	}()

	printer.Banner()
	useSettingsFile(printer, opts.ConfigPath, settings)

	client := http.NewClient(settings.UserAgent, settings.RequestTimeout())
	if opts.CachePath != "" {
		store, err := cache.Open(opts.CachePath, settings.CacheTTL())
		if err != nil {
			printer.Handle(fetch.ProgressEvent{Message: fmt.Sprintf("Response cache disabled: %v", err), Level: fetch.LevelWarning})
		} else {
			defer store.Close()
			client = client.WithCache(store)
			if n, err := store.Len(); err == nil {
				printer.Handle(fetch.ProgressEvent{Message: fmt.Sprintf("Response cache %s holds %d entries", opts.CachePath, n), Level: fetch.LevelVerbose})
			}
		}
	}

	fs := afero.NewOsFs()
	source := met.NewClient(client, settings.APIBaseURL)
	sink := ioutils.NewImageSink(fs, ioutils.NewImageService(), opts.MaxImageSize)
	fetcher := fetch.NewFetcher(source, sink, opts, printer.Handle)

	viewed, err := fetcher.Run(ctx)
	if err != nil {
		if ctx.Err() != nil {
			fmt.Fprintln(stdout, "\nDownload cancelled.")
			return 130
		}
		printer.Errorf("Error: %v", err)
		return 1
	}

	if opts.Report {
		path, err := report.NewWriter(fs, opts.ReportPath).Emit(ctx, report.New(opts, viewed))
		if err != nil {
			printer.Errorf("Error: %v", err)
			return 1
		}
		printer.Infof("Report written to %s", path)
	} else {
		printer.Infof("Skipping report generation")
	}

	printer.Summary(opts.Count, viewed)
	return 0
}

// useSettingsFile reports which settings file the run uses. A --config path
// that does not exist yet is created with the settings in effect.
func useSettingsFile(printer *console.Printer, path string, settings *config.Settings) {
	if path == "" {
		return
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := settings.Save(path); err != nil {
			printer.Handle(fetch.ProgressEvent{Message: fmt.Sprintf("Could not write settings to %s: %v", path, err), Level: fetch.LevelWarning})
			return
		}
		printer.Handle(fetch.ProgressEvent{Message: fmt.Sprintf("Wrote default settings to %s", path), Level: fetch.LevelInfo})
		return
	}

	printer.Handle(fetch.ProgressEvent{Message: fmt.Sprintf("Using settings from %s", path), Level: fetch.LevelVerbose})
}
