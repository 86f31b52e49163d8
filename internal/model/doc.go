// Package model defines the core data structures used throughout
// the met-downloader application.
//
// # Artwork
//
// Artwork is one collection object. Only a handful of fields are decoded;
// the rest of the record travels in Raw:
//
//	if art.HasImage() {
//	    fmt.Println(art.PrimaryImage, art.ImageExt())
//	}
//
// # ViewedSet
//
// ViewedSet accumulates the artworks downloaded in a run and guarantees that
// no identifier appears twice:
//
//	viewed := model.NewViewedSet()
//	viewed.Add(art)      // true
//	viewed.Add(art)      // false, already present
//	viewed.Contains(art.ID)
package model
