// Package pipeline puts together the stages of a lyrics count: resolve the artist,
// list its works, count the words of every work concurrently and describe the
// counts.
package pipeline

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/ironsmile/lyricount/src/config"
	"github.com/ironsmile/lyricount/src/fanout"
	"github.com/ironsmile/lyricount/src/music"
	"github.com/ironsmile/lyricount/src/stats"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate . ArtistResolver

// ArtistResolver finds the canonical artist for a free text name.
type ArtistResolver interface {
	ResolveArtist(ctx context.Context, name string) (music.Artist, error)
}

//counterfeiter:generate . CatalogLister

// CatalogLister lists all works of an artist.
type CatalogLister interface {
	ListWorks(ctx context.Context, artistID string) (music.Catalog, error)
}

//counterfeiter:generate . LyricsCounter

// LyricsCounter counts the words in the lyrics of a single song. It never fails,
// failures are absent word counts.
type LyricsCounter interface {
	CountWords(ctx context.Context, artist, title string) music.WordCount
}

// Result is everything known about a single artist after running the pipeline
// for it. Fields are filled in up to the stage which failed.
type Result struct {
	// Query is the artist name as given by the user.
	Query string

	Artist  music.Artist
	Catalog music.Catalog

	// Counts is aligned with Catalog.Titles.
	Counts []music.WordCount

	// Values are the present word counts.
	Values []float64

	// Summary is only valid when the pipeline finished without an error.
	Summary stats.Summary
}

// Outcome is a Result together with the error which stopped the pipeline, if any.
type Outcome struct {
	Result
	Err error
}

// Pipeline runs the lyrics count for artists. It is safe for concurrent use as
// long as its stages are.
type Pipeline struct {
	resolver ArtistResolver
	lister   CatalogLister
	counter  LyricsCounter
	logger   *zap.Logger

	concurrency       int
	artistConcurrency int
}

// New returns a Pipeline which uses the given stages. The concurrency limits are
// taken from cfg.
func New(
	resolver ArtistResolver,
	lister CatalogLister,
	counter LyricsCounter,
	cfg config.Config,
	logger *zap.Logger,
) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Pipeline{
		resolver:          resolver,
		lister:            lister,
		counter:           counter,
		logger:            logger.Named("pipeline"),
		concurrency:       cfg.Concurrency,
		artistConcurrency: cfg.ArtistConcurrency,
	}
}

// Analyse runs the whole pipeline for the artist `query`.
//
// Errors wrapping music.ErrNotFound mean there is no such artist and nothing else
// was attempted. stats.ErrNoData means the artist was found but none of its
// works had lyrics. In this case the returned Result still describes what was
// found. When ctx is done while lyrics are being counted no counts are returned
// at all.
func (p *Pipeline) Analyse(ctx context.Context, query string) (Result, error) {
	res := Result{Query: query}

	artist, err := p.resolver.ResolveArtist(ctx, query)
	if err != nil {
		return res, err
	}
	res.Artist = artist

	catalog, err := p.lister.ListWorks(ctx, artist.ID)
	if err != nil {
		return res, err
	}
	res.Catalog = catalog

	p.logger.Info("counting lyrics",
		zap.String("artist", artist.Name),
		zap.Int("works", len(catalog.Titles)),
		zap.Bool("truncated", catalog.Truncated),
	)

	counts := fanout.Map(ctx, p.concurrency, catalog.Titles,
		func(ctx context.Context, title string) music.WordCount {
			count := p.counter.CountWords(ctx, artist.Name, title)
			count.Title = title
			return count
		},
	)
	if err := ctx.Err(); err != nil {
		return res, err
	}
	res.Counts = counts
	res.Values = stats.Present(counts)

	summary, err := stats.Summarize(res.Values)
	if err != nil {
		return res, err
	}
	res.Summary = summary

	p.logger.Info("lyrics counted",
		zap.String("artist", artist.Name),
		zap.Int("with_lyrics", summary.Count),
		zap.Int("works", len(counts)),
	)

	return res, nil
}

// AnalyseAll runs Analyse for every one of queries. The returned outcomes are in
// the order of queries. An error for one artist does not affect the others.
func (p *Pipeline) AnalyseAll(ctx context.Context, queries []string) []Outcome {
	return fanout.Map(ctx, p.artistConcurrency, queries,
		func(ctx context.Context, query string) Outcome {
			res, err := p.Analyse(ctx, query)
			p.logOutcome(query, err)
			return Outcome{Result: res, Err: err}
		},
	)
}

func (p *Pipeline) logOutcome(query string, err error) {
	switch {
	case err == nil:
	case errors.Is(err, music.ErrNotFound):
		p.logger.Warn("artist not found", zap.String("query", query))
	case errors.Is(err, stats.ErrNoData):
		p.logger.Warn("no lyrics found for any work", zap.String("query", query))
	case errors.Is(err, context.Canceled):
		p.logger.Info("interrupted", zap.String("query", query))
	default:
		p.logger.Error("artist failed", zap.String("query", query), zap.Error(err))
	}
}
