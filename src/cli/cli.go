// Package cli implements the lyricount command line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ironsmile/lyricount/src/cache"
	"github.com/ironsmile/lyricount/src/config"
	"github.com/ironsmile/lyricount/src/logging"
	"github.com/ironsmile/lyricount/src/lyrics"
	"github.com/ironsmile/lyricount/src/musicbrainz"
	"github.com/ironsmile/lyricount/src/pipeline"
	"github.com/ironsmile/lyricount/src/report"
	"github.com/ironsmile/lyricount/src/version"
)

// defaultCacheFlag is the value of --cache when it is given without a path.
const defaultCacheFlag = "default"

// ErrInterrupted is returned when the run was cancelled before all artists were
// processed.
var ErrInterrupted = errors.New("interrupted")

type options struct {
	configPath  string
	debug       bool
	concurrency int
	timeout     time.Duration
	maxPages    int
	histogram   bool
	bins        int
	plotDir     string
	cache       string
	version     bool
}

type app struct {
	stdout io.Writer
	stderr io.Writer
	fs     afero.Fs
	opts   options
}

// Execute runs lyricount with the command line arguments args and returns the
// process exit status. Reports are written in stdout and logs in stderr. The
// configuration file is read and plots are written through fs. Cancelling ctx
// abandons all requests in flight.
func Execute(
	ctx context.Context,
	args []string,
	stdout, stderr io.Writer,
	fs afero.Fs,
) int {
	cmd := NewCommand(stdout, stderr, fs)
	cmd.SetArgs(args)

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", err)
		return 1
	}

	return 0
}

// NewCommand returns the lyricount root command.
func NewCommand(stdout, stderr io.Writer, fs afero.Fs) *cobra.Command {
	a := &app{
		stdout: stdout,
		stderr: stderr,
		fs:     fs,
	}

	defaults := config.Default()

	cmd := &cobra.Command{
		Use:   "lyricount [flags] ARTIST[,ARTIST...]",
		Short: "Statistics about the number of words in the songs of artists",
		Long: `lyricount finds every work of the given artists in MusicBrainz, counts the
words in their lyrics from lyrics.ovh and prints the mean, standard deviation,
variance, minimum and maximum word count per artist.

Artist names are separated by commas:
  lyricount Radiohead
  lyricount Pink Floyd, Queen`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          a.run,
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	f := cmd.Flags()
	f.StringVar(&a.opts.configPath, "config", "",
		"Path to a YAML configuration file (default: user directory config.yaml)")
	f.BoolVarP(&a.opts.debug, "debug", "D", false, "Write debug logs")
	f.IntVarP(&a.opts.concurrency, "concurrency", "c", defaults.Concurrency,
		"Maximum number of lyrics requests in flight per artist")
	f.DurationVar(&a.opts.timeout, "timeout", defaults.RequestTimeout,
		"Timeout for every outbound request")
	f.IntVar(&a.opts.maxPages, "max-pages", defaults.MaxPages,
		"Maximum number of MusicBrainz catalog pages per artist")
	f.BoolVar(&a.opts.histogram, "histogram", false,
		"Print a histogram of the word counts")
	f.IntVar(&a.opts.bins, "bins", defaults.HistogramBins, "Number of histogram bins")
	f.StringVar(&a.opts.plotDir, "plot-dir", "",
		"Write a PNG histogram for every artist in this directory")
	f.StringVar(&a.opts.cache, "cache", "",
		"SQLite database for caching word counts between runs (default path when given without value)")
	f.Lookup("cache").NoOptDefVal = defaultCacheFlag
	f.BoolVarP(&a.opts.version, "version", "v", false, "Show version and build information")

	return cmd
}

func (a *app) run(cmd *cobra.Command, args []string) error {
	if a.opts.version {
		version.Print(a.stdout)
		return nil
	}

	artists := SplitArtists(args)
	if len(artists) == 0 {
		return errors.New("at least one artist name is required")
	}

	cfg, err := a.loadConfig(cmd.Flags())
	if err != nil {
		return err
	}

	logger := logging.New(a.opts.debug, zapcore.AddSync(a.stderr))
	defer func() {
		_ = logger.Sync()
	}()

	httpClient := newHTTPClient(cfg)
	mbClient := musicbrainz.NewClient(cfg, httpClient, logger)

	var counter pipeline.LyricsCounter = lyrics.NewClient(cfg, httpClient, logger)
	if cfg.CacheDatabase != "" {
		wordsCache, err := cache.Open(cfg.CacheDatabase, logger)
		if err != nil {
			logger.Warn("word count cache disabled", zap.Error(err))
		} else {
			defer wordsCache.Close()
			counter = wordsCache.Wrap(counter)
		}
	}

	ctx := cmd.Context()
	outcomes := pipeline.New(mbClient, mbClient, counter, cfg, logger).
		AnalyseAll(ctx, artists)

	w := report.NewWriter(a.stdout, a.fs, report.Options{
		Histogram: a.opts.histogram,
		Bins:      cfg.HistogramBins,
		PlotDir:   a.opts.plotDir,
	})
	for i, outcome := range outcomes {
		if i > 0 {
			fmt.Fprintln(a.stdout)
		}
		if err := w.Write(outcome); err != nil {
			logger.Error("writing report",
				zap.String("artist", outcome.Query),
				zap.Error(err),
			)
		}
	}

	if ctx.Err() != nil {
		return ErrInterrupted
	}

	return nil
}

// loadConfig returns the configuration from the config file with the explicitly
// set command line flags on top of it.
func (a *app) loadConfig(flags *pflag.FlagSet) (config.Config, error) {
	cfg, err := config.FindAndParse(a.fs, a.opts.configPath)
	if err != nil {
		return cfg, err
	}

	if flags.Changed("concurrency") {
		cfg.Concurrency = a.opts.concurrency
	}
	if flags.Changed("timeout") {
		cfg.RequestTimeout = a.opts.timeout
	}
	if flags.Changed("max-pages") {
		cfg.MaxPages = a.opts.maxPages
	}
	if flags.Changed("bins") {
		cfg.HistogramBins = a.opts.bins
	}
	if flags.Changed("cache") {
		cfg.CacheDatabase = a.opts.cache
	}

	if cfg.CacheDatabase == defaultCacheFlag {
		cfg.CacheDatabase, err = config.DefaultCachePath()
		if err != nil {
			return cfg, fmt.Errorf("finding cache database path: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// newHTTPClient returns the client shared by all outbound requests. It keeps
// enough idle connections for all concurrent lyrics requests.
func newHTTPClient(cfg config.Config) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.MaxIdleConnsPerHost = max(cfg.Concurrency, 2)

	return &http.Client{Transport: transport}
}
