package fetch

import (
	"context"
	"errors"
	"fmt"

	"github.com/handiism/met-downloader/internal/config"
	"github.com/handiism/met-downloader/internal/model"
)

// ErrNoRecord is returned when a Source yields neither a record nor an error.
var ErrNoRecord = errors.New("source returned no record")

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate . Source

// Source finds and retrieves artworks. Every error it returns ends the run.
type Source interface {
	// Search returns candidate identifiers for query, best match first.
	Search(ctx context.Context, query string) ([]int, error)

	// Fetch returns the full record for one identifier.
	Fetch(ctx context.Context, id int) (*model.Artwork, error)

	// Image downloads the bytes at an image URL.
	Image(ctx context.Context, url string) ([]byte, error)
}

//counterfeiter:generate . Sink

// Sink persists downloaded images.
type Sink interface {
	// Save writes data for artwork id into dir and returns the file path.
	Save(ctx context.Context, id int, ext string, data []byte, dir string) (string, error)
}

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a progress update.
//
// Artwork is set on the LevelSuccess event emitted for every accepted artwork.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
	Artwork *model.Artwork
}

// Fetcher runs the selection loop: it turns a search result into a set of
// distinct, downloaded artworks.
type Fetcher struct {
	source Source
	sink   Sink
	opts   config.Options
	policy Policy

	onProgress func(ProgressEvent)
}

// NewFetcher creates a Fetcher for one run described by opts.
func NewFetcher(source Source, sink Sink, opts config.Options, onProgress func(ProgressEvent)) *Fetcher {
	return &Fetcher{
		source:     source,
		sink:       sink,
		opts:       opts,
		policy:     NewPolicy(opts.Random),
		onProgress: onProgress,
	}
}

// WithPolicy replaces the candidate selection policy.
func (f *Fetcher) WithPolicy(p Policy) *Fetcher {
	f.policy = p
	return f
}

// Run searches for the configured query once and then selects from the result.
//
// On error the artworks downloaded so far are returned along with it.
func (f *Fetcher) Run(ctx context.Context) (*model.ViewedSet, error) {
	if f.opts.Query == "" {
		f.progress(ProgressEvent{Message: "Listing the collection", Level: LevelVerbose})
	} else {
		f.progress(ProgressEvent{Message: fmt.Sprintf("Searching for %q", f.opts.Query), Level: LevelVerbose})
	}

	ids, err := f.source.Search(ctx, f.opts.Query)
	if err != nil {
		return model.NewViewedSet(), fmt.Errorf("searching artwork: %w", err)
	}

	if len(ids) == 0 {
		f.progress(ProgressEvent{Message: fmt.Sprintf("No artworks matched %q", f.opts.Query), Level: LevelWarning})
	} else {
		f.progress(ProgressEvent{Message: fmt.Sprintf("Found %d matching objects", len(ids)), Level: LevelVerbose})
	}

	return f.Select(ctx, ids)
}

// Select fills opts.Count slots from ids.
//
// Each slot gets up to RetryBudget attempts. Artworks without an image and
// artworks already downloaded use up an attempt; a slot that runs out of
// attempts yields nothing and the loop moves on. The loop always visits
// exactly opts.Count slots, so fewer artworks than requested is a normal
// outcome.
//
// Fetch, download and save failures stop the loop immediately and are
// returned with the artworks accepted before the failure.
func (f *Fetcher) Select(ctx context.Context, ids []int) (*model.ViewedSet, error) {
	viewed := model.NewViewedSet()

	for slot := 0; slot < f.opts.Count; slot++ {
		accepted, err := f.fillSlot(ctx, ids, viewed)
		if err != nil {
			return viewed, err
		}
		if !accepted {
			f.progress(ProgressEvent{Message: fmt.Sprintf("No artwork for slot %d/%d", slot+1, f.opts.Count), Level: LevelVerbose})
		}
	}

	return viewed, nil
}

func (f *Fetcher) fillSlot(ctx context.Context, ids []int, viewed *model.ViewedSet) (bool, error) {
	for attempt := 0; attempt < RetryBudget; attempt++ {
		if err := ctx.Err(); err != nil {
			return false, err
		}

		id, ok := f.policy.Candidate(ids, attempt)
		if !ok {
			return false, nil
		}

		f.progress(ProgressEvent{Message: fmt.Sprintf("Fetching artwork id %d (attempt %d/%d)", id, attempt+1, RetryBudget), Level: LevelVerbose})

		art, err := f.source.Fetch(ctx, id)
		if err != nil {
			return false, fmt.Errorf("getting artwork %d: %w", id, err)
		}
		if art == nil {
			return false, fmt.Errorf("getting artwork %d: %w", id, ErrNoRecord)
		}

		if verdict := Evaluate(art, viewed); verdict != Accept {
			f.progress(ProgressEvent{Message: fmt.Sprintf("Skipping artwork id %d because %s.", art.ID, verdict.Reason()), Level: LevelInfo})
			continue
		}

		if err := f.download(ctx, art, viewed); err != nil {
			return false, err
		}
		return true, nil
	}

	return false, nil
}

func (f *Fetcher) download(ctx context.Context, art *model.Artwork, viewed *model.ViewedSet) error {
	data, err := f.source.Image(ctx, art.PrimaryImage)
	if err != nil {
		return fmt.Errorf("downloading artwork %d: %w", art.ID, err)
	}

	path, err := f.sink.Save(ctx, art.ID, art.ImageExt(), data, f.opts.OutDir)
	if err != nil {
		return fmt.Errorf("saving artwork %d: %w", art.ID, err)
	}

	accepted := *art
	accepted.SavedPath = path

	f.progress(ProgressEvent{Message: fmt.Sprintf("Downloaded artwork id %d to %s", accepted.ID, path), Level: LevelSuccess, Artwork: &accepted})
	viewed.Add(&accepted)

	return nil
}

func (f *Fetcher) progress(event ProgressEvent) {
	if f.onProgress != nil {
		f.onProgress(event)
	}
}
