package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"path/filepath"
)

// MaxCount is the largest number of artworks a single run may request.
const MaxCount = 100

var (
	// ErrNoQuery is returned when neither a query nor --random was given.
	ErrNoQuery = errors.New("a query is required unless --random is set")

	// ErrCountRange is returned when --count is outside [1, MaxCount].
	ErrCountRange = fmt.Errorf("count must be between 1 and %d", MaxCount)

	// ErrTooManyArgs is returned when more than one positional query is given.
	ErrTooManyArgs = errors.New("only one query may be given; quote queries that contain spaces")
)

// Options is the validated configuration of a single run.
//
// Options is built once by ParseArgs and passed by value from then on.
// Nothing downstream reads flags or settings directly.
type Options struct {
	// Query is the free text search. Empty means "any object".
	Query string

	// Random selects candidates at random from the top of the search result
	// instead of walking it in order.
	Random bool

	// Count is the number of artworks to try to download.
	Count int

	// OutDir is the resolved directory images are saved to.
	OutDir string

	// Report enables writing the summary report.
	Report bool

	// ReportPath is where the report is written when Report is set.
	ReportPath string

	// Verbose enables verbose progress output.
	Verbose bool

	// MaxImageSize bounds image dimensions in pixels; 0 keeps the original bytes.
	MaxImageSize int

	// ConfigPath is the settings file the run was configured from, if any.
	ConfigPath string

	// CachePath is the response cache database; empty disables caching.
	CachePath string
}

// ParseArgs parses command line arguments into validated Options.
//
// Flags have a short and a long form that share one variable. Flags and the
// positional query may appear in any order. Settings provide the defaults
// for the output directory, image size and cache path; loadSettings is
// called with the --config value (possibly empty) once flags are parsed.
//
// flag.ErrHelp is returned unchanged when -h or --help is given.
func ParseArgs(args []string, usage io.Writer, loadSettings func(path string) (*Settings, error)) (Options, *Settings, error) {
	fs := flag.NewFlagSet("met-dl", flag.ContinueOnError)
	fs.SetOutput(usage)

	var (
		random     bool
		outDir     string
		count      int
		verbose    bool
		report     bool
		configPath string
		cachePath  string
		maxSize    int
	)

	fs.BoolVar(&random, "r", false, "Select a random object from the top results. Without a query, selects from any object.")
	fs.BoolVar(&random, "random", false, "Same as -r")
	fs.StringVar(&outDir, "o", "", "The directory to save the images to")
	fs.StringVar(&outDir, "outdir", "", "Same as -o")
	fs.IntVar(&count, "n", 1, "The number of images to download")
	fs.IntVar(&count, "count", 1, "Same as -n")
	fs.BoolVar(&verbose, "v", false, "Show verbose output")
	fs.BoolVar(&verbose, "verbose", false, "Same as -v")
	fs.BoolVar(&report, "e", false, "Write a JSON report of the downloaded artworks")
	fs.BoolVar(&report, "report", false, "Same as -e")
	fs.StringVar(&configPath, "c", "", "Path to a JSON settings file")
	fs.StringVar(&configPath, "config", "", "Same as -c")
	fs.StringVar(&cachePath, "cache", "", "SQLite file used to cache API responses (overrides settings)")
	fs.IntVar(&maxSize, "max-size", 0, "Resize images to fit within this many pixels (0 keeps originals)")

	var positional []string
	rest := args
	for {
		if err := fs.Parse(rest); err != nil {
			return Options{}, nil, err
		}
		rest = fs.Args()
		if len(rest) == 0 {
			break
		}
		positional = append(positional, rest[0])
		rest = rest[1:]
	}

	if len(positional) > 1 {
		return Options{}, nil, ErrTooManyArgs
	}

	opts := Options{
		Random:     random,
		Count:      count,
		Verbose:    verbose,
		Report:     report,
		ConfigPath: configPath,
	}
	if len(positional) == 1 {
		opts.Query = positional[0]
	}

	if err := opts.validate(); err != nil {
		return Options{}, nil, err
	}
	if maxSize < 0 {
		return Options{}, nil, errors.New("max-size must not be negative")
	}

	maxSizeSet := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "max-size" {
			maxSizeSet = true
		}
	})

	settings, err := loadSettings(configPath)
	if err != nil {
		return Options{}, nil, fmt.Errorf("loading settings: %w", err)
	}

	opts.OutDir = outDir
	if opts.OutDir == "" {
		opts.OutDir = settings.DownloadsPath
	}
	opts.OutDir = filepath.Clean(opts.OutDir)
	opts.ReportPath = filepath.Join(opts.OutDir, settings.ReportFileName)

	opts.MaxImageSize = settings.MaxImageSize
	if maxSizeSet {
		opts.MaxImageSize = maxSize
	}

	opts.CachePath = settings.CachePath
	if cachePath != "" {
		opts.CachePath = cachePath
	}

	return opts, settings, nil
}

func (o Options) validate() error {
	if o.Query == "" && !o.Random {
		return ErrNoQuery
	}
	if o.Count < 1 || o.Count > MaxCount {
		return ErrCountRange
	}
	return nil
}

// LoadOrDefault loads settings from path, or returns the defaults when path is empty.
func LoadOrDefault(path string) (*Settings, error) {
	if path == "" {
		return DefaultSettings(), nil
	}
	return Load(path)
}
