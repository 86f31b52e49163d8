package report

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/handiism/met-downloader/internal/config"
	ioutils "github.com/handiism/met-downloader/internal/io"
	"github.com/handiism/met-downloader/internal/model"
	"github.com/spf13/afero"
)

// Report summarizes one run.
type Report struct {
	RunID       string    `json:"run_id"`
	GeneratedAt time.Time `json:"generated_at"`
	Query       string    `json:"query"`
	Random      bool      `json:"random"`
	Requested   int       `json:"requested"`
	Downloaded  int       `json:"downloaded"`
	Artworks    []Entry   `json:"artworks"`
}

// Entry is one downloaded artwork: where it was saved and the record it came from.
type Entry struct {
	File   string          `json:"file"`
	Object json.RawMessage `json:"object"`
}

// New builds the report for a finished run. Entries keep the order in which
// artworks were accepted.
func New(opts config.Options, viewed *model.ViewedSet) Report {
	artworks := viewed.Artworks()

	r := Report{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Query:       opts.Query,
		Random:      opts.Random,
		Requested:   opts.Count,
		Downloaded:  len(artworks),
		Artworks:    make([]Entry, 0, len(artworks)),
	}

	for _, a := range artworks {
		r.Artworks = append(r.Artworks, Entry{File: a.SavedPath, Object: objectJSON(a)})
	}

	return r
}

// objectJSON returns the raw record, or a minimal one when the raw bytes
// were not kept.
func objectJSON(a *model.Artwork) json.RawMessage {
	if len(a.Raw) > 0 && json.Valid(a.Raw) {
		return a.Raw
	}

	data, err := json.Marshal(struct {
		ObjectID     int    `json:"objectID"`
		Title        string `json:"title"`
		Artist       string `json:"artistDisplayName"`
		PrimaryImage string `json:"primaryImage"`
		ObjectURL    string `json:"objectURL"`
	}{a.ID, a.Title, a.Artist, a.PrimaryImage, a.ObjectURL})
	if err != nil {
		return json.RawMessage("null")
	}
	return data
}

// Writer writes reports to a fixed path.
type Writer struct {
	fs   afero.Fs
	path string
}

// NewWriter creates a Writer for path on fs.
func NewWriter(fs afero.Fs, path string) *Writer {
	return &Writer{fs: fs, path: path}
}

// Emit writes r as indented JSON, replacing any previous report, and
// returns the path written.
func (w *Writer) Emit(ctx context.Context, r Report) (string, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding report: %w", err)
	}
	data = append(data, '\n')

	if err := ioutils.EnsureDir(w.fs, filepath.Dir(w.path)); err != nil {
		return "", err
	}

	if err := ioutils.WriteFile(ctx, w.fs, w.path, data); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}

	return w.path, nil
}
