package model

import (
	"encoding/json"
	"net/url"
	"path"
	"strings"
)

// Artwork represents a single object from the museum collection.
//
// Only the fields the downloader needs are decoded into named fields. The
// complete record, exactly as the API returned it, is kept in Raw so the
// report can pass it through untouched.
//
// Example:
//
//	art := &Artwork{ID: 436535, PrimaryImage: "https://images.metmuseum.org/.../DT1567.jpg"}
//	art.HasImage() // true
//	art.ImageExt() // ".jpg"
type Artwork struct {
	// ID is the collection object identifier.
	ID int

	// PrimaryImage is the URL of the full size image.
	// Empty string means the object has no downloadable image.
	PrimaryImage string

	// PrimaryImageSmall is the URL of a web sized rendition.
	PrimaryImageSmall string

	Title        string
	Artist       string
	Date         string
	Medium       string
	Department   string
	Culture      string
	ObjectURL    string
	PublicDomain bool

	// Raw is the undecoded API record.
	Raw json.RawMessage

	// SavedPath is where the image was written. Set once the artwork
	// has been accepted and downloaded.
	SavedPath string
}

// HasImage returns true if the artwork has a primary image available for download.
func (a *Artwork) HasImage() bool {
	return a != nil && a.PrimaryImage != ""
}

// ImageExt returns the file extension of the primary image, including the dot.
//
// The extension is taken from the URL path and lower-cased. URLs without a
// recognizable extension fall back to ".jpg", which is what the collection
// serves.
func (a *Artwork) ImageExt() string {
	p := a.PrimaryImage
	if u, err := url.Parse(p); err == nil {
		p = u.Path
	}

	ext := strings.ToLower(path.Ext(p))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".gif", ".tif", ".tiff", ".webp":
		return ext
	default:
		return ".jpg"
	}
}

// DisplayArtist returns the artist name or a placeholder for anonymous works.
func (a *Artwork) DisplayArtist() string {
	if a.Artist == "" {
		return "Unknown artist"
	}
	return a.Artist
}
